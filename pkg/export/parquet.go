// Package export writes fitted vectorization results to disk for downstream
// analysis tools.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/parquet-go/parquet-go"

	"github.com/quantext/stylo/pkg/corpus"
	"github.com/quantext/stylo/pkg/vectorizer"
)

// Parquet file metadata keys.
const (
	MetaFeatures    = "stylo.features"
	MetaVectorSpace = "stylo.vector_space"
)

// DocumentVector is the Parquet schema for one matrix row.
type DocumentVector struct {
	ID     string    `parquet:"id"`
	Title  string    `parquet:"title"`
	Author string    `parquet:"author"`
	Vector []float64 `parquet:"vector"`
}

// WriteParquet writes one row per document to a Parquet file at path. The
// selected feature names and the vector space are stored in the file's
// key-value metadata. docs and m must be row-aligned.
func WriteParquet(path string, docs []*corpus.Document, m *vectorizer.Matrix, space vectorizer.VectorSpace) error {
	if len(docs) != len(m.Rows) {
		return fmt.Errorf("document count %d does not match matrix rows %d", len(docs), len(m.Rows))
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	rows := make([]DocumentVector, len(docs))
	for i, doc := range docs {
		rows[i] = DocumentVector{
			ID:     doc.ID,
			Title:  doc.Title,
			Author: doc.Author,
			Vector: m.Rows[i],
		}
	}

	featuresJSON, err := json.Marshal(m.Terms)
	if err != nil {
		return fmt.Errorf("failed to marshal feature names: %w", err)
	}

	return parquet.WriteFile(path, rows,
		parquet.KeyValueMetadata(MetaFeatures, string(featuresJSON)),
		parquet.KeyValueMetadata(MetaVectorSpace, string(space)),
	)
}

// ReadParquet reads back rows written by WriteParquet.
func ReadParquet(path string) ([]DocumentVector, error) {
	rows, err := parquet.ReadFile[DocumentVector](path)
	if err != nil {
		return nil, fmt.Errorf("failed to read parquet file %s: %w", path, err)
	}
	return rows, nil
}
