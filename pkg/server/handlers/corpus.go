package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quantext/stylo/pkg/server/dto"
)

// CorpusHandler handles corpus management requests
type CorpusHandler struct {
	store *CorpusStore
}

// NewCorpusHandler creates a new corpus handler
func NewCorpusHandler(store *CorpusStore) *CorpusHandler {
	return &CorpusHandler{store: store}
}

// abortError writes the uniform error payload and stops the request.
func abortError(c *gin.Context, status int, errCode, message string) {
	c.AbortWithStatusJSON(status, dto.ErrorResponse{
		Error:   errCode,
		Message: message,
	})
}

// AddDocuments handles POST /api/v1/corpus/documents
func (h *CorpusHandler) AddDocuments(c *gin.Context) {
	var req dto.AddDocumentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortError(c, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		abortError(c, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	total := h.store.Add(req.Documents)
	c.JSON(http.StatusCreated, gin.H{
		"added":     len(req.Documents),
		"documents": total,
	})
}

// GetCorpus handles GET /api/v1/corpus
func (h *CorpusHandler) GetCorpus(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Summary())
}

// ClearCorpus handles DELETE /api/v1/corpus
func (h *CorpusHandler) ClearCorpus(c *gin.Context) {
	h.store.Clear()
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}
