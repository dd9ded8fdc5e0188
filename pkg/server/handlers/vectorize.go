package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quantext/stylo"
	"github.com/quantext/stylo/pkg/server/dto"
	"github.com/quantext/stylo/pkg/vectorizer"
)

// VectorizeHandler handles vectorization requests
type VectorizeHandler struct {
	store *CorpusStore
}

// NewVectorizeHandler creates a new vectorize handler
func NewVectorizeHandler(store *CorpusStore) *VectorizeHandler {
	return &VectorizeHandler{store: store}
}

// Vectorize handles POST /api/v1/vectorize
func (h *VectorizeHandler) Vectorize(c *gin.Context) {
	var req dto.VectorizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortError(c, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	if h.store.Len() == 0 {
		abortError(c, http.StatusConflict, "empty_corpus", "no documents have been added")
		return
	}

	result, err := h.store.Vectorize(req)
	if err != nil {
		switch {
		case errors.Is(err, stylo.ErrEmptyCorpus),
			errors.Is(err, vectorizer.ErrNoDocuments):
			// Tokenization bounds can drop every document.
			abortError(c, http.StatusConflict, "empty_corpus", err.Error())
		case errors.Is(err, vectorizer.ErrEmptyVocabulary):
			abortError(c, http.StatusUnprocessableEntity, "empty_vocabulary", err.Error())
		case errors.Is(err, vectorizer.ErrInvalidNgramSize),
			errors.Is(err, vectorizer.ErrInvalidDFBounds):
			abortError(c, http.StatusBadRequest, "invalid_request", err.Error())
		default:
			abortError(c, http.StatusBadRequest, "vectorization_failed", err.Error())
		}
		return
	}

	rows, cols := result.Matrix.Shape()
	c.JSON(http.StatusOK, dto.VectorizeResponse{
		Rows:        rows,
		Columns:     cols,
		VectorSpace: string(result.Space),
		Features:    result.FeatureNames(),
		Titles:      result.Titles,
		Authors:     result.Authors,
		Matrix:      result.Matrix.Rows,
	})
}

// VectorSpaces handles GET /api/v1/vector-spaces
func (h *VectorizeHandler) VectorSpaces(c *gin.Context) {
	spaces := vectorizer.VectorSpaces()
	names := make([]string, len(spaces))
	for i, s := range spaces {
		names[i] = string(s)
	}
	c.JSON(http.StatusOK, dto.VectorSpacesResponse{
		VectorSpaces: names,
		NgramTypes: []string{
			string(vectorizer.NgramWord),
			string(vectorizer.NgramChar),
			string(vectorizer.NgramCharWB),
		},
	})
}
