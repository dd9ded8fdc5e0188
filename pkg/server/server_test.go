package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantext/stylo/pkg/config"
	"github.com/quantext/stylo/pkg/server/dto"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := &config.Config{
		Server: config.ServerConfig{Host: "localhost", Port: 0, Mode: "test"},
		Corpus: config.CorpusConfig{Language: "en"},
	}
	s := New(cfg, nil)
	s.Setup()
	return s
}

func doJSON(t *testing.T, s *Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	return w
}

func addSampleDocs(t *testing.T, s *Server) {
	t.Helper()
	w := doJSON(t, s, http.MethodPost, "/api/v1/corpus/documents", dto.AddDocumentsRequest{
		Documents: []dto.DocumentPayload{
			{Title: "moby", Author: "melville", Text: "The sea and the whale."},
			{Title: "emma", Author: "austen", Text: "The village and the sea."},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestHealthEndpoints(t *testing.T) {
	s := newTestServer(t)

	for _, path := range []string{"/health", "/ready", "/live"} {
		w := doJSON(t, s, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestAddAndSummarizeCorpus(t *testing.T) {
	s := newTestServer(t)
	addSampleDocs(t, s)

	w := doJSON(t, s, http.MethodGet, "/api/v1/corpus", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var summary dto.CorpusSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Equal(t, 2, summary.Documents)
	assert.Equal(t, "en", summary.Language)
	assert.Equal(t, []string{"moby", "emma"}, summary.Titles)
}

func TestAddDocumentsValidation(t *testing.T) {
	s := newTestServer(t)

	t.Run("empty body", func(t *testing.T) {
		w := doJSON(t, s, http.MethodPost, "/api/v1/corpus/documents", map[string]interface{}{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("blank text", func(t *testing.T) {
		w := doJSON(t, s, http.MethodPost, "/api/v1/corpus/documents", dto.AddDocumentsRequest{
			Documents: []dto.DocumentPayload{{Title: "x", Text: "   "}},
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "invalid_request", resp.Error)
	})
}

func TestClearCorpus(t *testing.T) {
	s := newTestServer(t)
	addSampleDocs(t, s)

	w := doJSON(t, s, http.MethodDelete, "/api/v1/corpus", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, s, http.MethodGet, "/api/v1/corpus", nil)
	var summary dto.CorpusSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Equal(t, 0, summary.Documents)
}

func TestVectorizeEndpoint(t *testing.T) {
	s := newTestServer(t)
	addSampleDocs(t, s)

	maxFeatures := 0
	w := doJSON(t, s, http.MethodPost, "/api/v1/vectorize", dto.VectorizeRequest{
		MaxFeatures: &maxFeatures,
		VectorSpace: "tf_idf",
		Preprocess:  true,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp dto.VectorizeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Rows)
	assert.Equal(t, "tf_idf", resp.VectorSpace)
	assert.Equal(t, len(resp.Features), resp.Columns)
	assert.Len(t, resp.Matrix, 2)
	assert.Equal(t, []string{"melville", "austen"}, resp.Authors)
}

func TestVectorizeEmptyCorpus(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/api/v1/vectorize", dto.VectorizeRequest{})
	assert.Equal(t, http.StatusConflict, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "empty_corpus", resp.Error)
}

func TestVectorizeInvalidSpace(t *testing.T) {
	s := newTestServer(t)
	addSampleDocs(t, s)

	w := doJSON(t, s, http.MethodPost, "/api/v1/vectorize", dto.VectorizeRequest{
		VectorSpace: "hyperbolic",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVectorSpacesEndpoint(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodGet, "/api/v1/vector-spaces", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.VectorSpacesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.ElementsMatch(t, []string{"tf", "tf_scaled", "tf_std", "tf_idf", "bin"}, resp.VectorSpaces)
	assert.Contains(t, resp.NgramTypes, "char_wb")
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/corpus", nil)
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
