package vectorizer

import (
	"encoding/json"

	"github.com/quantext/stylo/pkg/utils"
)

// Matrix is a dense documents-by-terms table. Row order follows the order
// of the transformed documents; column order follows FeatureNames.
type Matrix struct {
	Rows  [][]float64 `json:"rows"`
	Terms []string    `json:"terms"`
}

// Shape returns (documents, terms).
func (m *Matrix) Shape() (int, int) {
	return len(m.Rows), len(m.Terms)
}

// Row returns row i, or nil when out of range.
func (m *Matrix) Row(i int) []float64 {
	if i < 0 || i >= len(m.Rows) {
		return nil
	}
	return m.Rows[i]
}

// Column returns the values of column j across all rows, or nil when out of
// range.
func (m *Matrix) Column(j int) []float64 {
	if j < 0 || j >= len(m.Terms) {
		return nil
	}
	col := make([]float64, len(m.Rows))
	for i, row := range m.Rows {
		col[i] = row[j]
	}
	return col
}

// Similarity returns the cosine similarity between rows i and j.
func (m *Matrix) Similarity(i, j int) float64 {
	return utils.CosineSimilarity(m.Row(i), m.Row(j))
}

// Model is the serializable state of a fitted vectorizer, used for
// persistence and cache storage.
type Model struct {
	Config     Config    `json:"config"`
	Vocabulary []string  `json:"vocabulary"`
	IDF        []float64 `json:"idf"`
	Documents  int       `json:"documents"`
}

// Model exports the fitted state. Returns ErrNotFitted before Fit has run.
func (v *Vectorizer) Model() (*Model, error) {
	if !v.fitted {
		return nil, ErrNotFitted
	}
	return &Model{
		Config:     v.cfg,
		Vocabulary: append([]string(nil), v.vocab...),
		IDF:        append([]float64(nil), v.idf...),
		Documents:  v.nDocs,
	}, nil
}

// FromModel restores a fitted vectorizer from exported state.
func FromModel(m *Model) (*Vectorizer, error) {
	v, err := New(m.Config, nil)
	if err != nil {
		return nil, err
	}
	v.vocab = append([]string(nil), m.Vocabulary...)
	v.idf = append([]float64(nil), m.IDF...)
	v.nDocs = m.Documents
	v.index = make(map[string]int, len(v.vocab))
	for i, term := range v.vocab {
		v.index[term] = i
	}
	v.fitted = true
	return v, nil
}

// MarshalBinary encodes the model as JSON for storage back ends.
func (m *Model) MarshalBinary() ([]byte, error) {
	return json.Marshal(m)
}

// UnmarshalBinary decodes a model previously encoded with MarshalBinary.
func (m *Model) UnmarshalBinary(data []byte) error {
	return json.Unmarshal(data, m)
}
