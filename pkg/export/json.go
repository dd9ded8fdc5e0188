package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/quantext/stylo/pkg/corpus"
	"github.com/quantext/stylo/pkg/vectorizer"
)

// JSONResult is the interchange form of a fitted vectorization: the matrix
// together with its row and column labels.
type JSONResult struct {
	Titles      []string               `json:"titles"`
	Authors     []string               `json:"authors"`
	Features    []string               `json:"features"`
	VectorSpace vectorizer.VectorSpace `json:"vector_space"`
	Rows        [][]float64            `json:"rows"`
}

// WriteJSON writes the matrix and its labels as a single JSON document.
func WriteJSON(path string, docs []*corpus.Document, m *vectorizer.Matrix, space vectorizer.VectorSpace) error {
	if len(docs) != len(m.Rows) {
		return fmt.Errorf("document count %d does not match matrix rows %d", len(docs), len(m.Rows))
	}

	result := JSONResult{
		Titles:      make([]string, len(docs)),
		Authors:     make([]string, len(docs)),
		Features:    m.Terms,
		VectorSpace: space,
		Rows:        m.Rows,
	}
	for i, doc := range docs {
		result.Titles[i] = doc.Title
		result.Authors[i] = doc.Author
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// ReadJSON reads back a result written by WriteJSON.
func ReadJSON(path string) (*JSONResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var result JSONResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to parse result file %s: %w", path, err)
	}
	return &result, nil
}
