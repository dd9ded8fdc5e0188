package dto

import (
	"github.com/quantext/stylo/pkg/vectorizer"
)

// VectorizeRequest runs a vectorization over the held corpus. Field
// defaults follow the library defaults: tf space, word unigrams, the 100
// most frequent features, lower-casing on.
type VectorizeRequest struct {
	MaxFeatures *int     `json:"max_features,omitempty"`
	NgramType   string   `json:"ngram_type,omitempty"`
	NgramSize   *int     `json:"ngram_size,omitempty"`
	VectorSpace string   `json:"vector_space,omitempty"`
	Lowercase   *bool    `json:"lowercase,omitempty"`
	MinDF       *float64 `json:"min_df,omitempty"`
	MaxDF       *float64 `json:"max_df,omitempty"`
	Ignore      []string `json:"ignore,omitempty"`

	// Preprocess runs text canonicalization before tokenizing.
	Preprocess bool `json:"preprocess,omitempty"`
	// MinSize and MaxSize bound document token counts during tokenization.
	MinSize int `json:"min_size,omitempty"`
	MaxSize int `json:"max_size,omitempty"`
}

// ToConfig merges the request over the library defaults.
func (r *VectorizeRequest) ToConfig() vectorizer.Config {
	cfg := vectorizer.DefaultConfig()
	if r.MaxFeatures != nil {
		cfg.MaxFeatures = *r.MaxFeatures
	}
	if r.NgramType != "" {
		cfg.NgramType = vectorizer.NgramType(r.NgramType)
	}
	if r.NgramSize != nil {
		cfg.NgramSize = *r.NgramSize
	}
	if r.VectorSpace != "" {
		cfg.VectorSpace = vectorizer.VectorSpace(r.VectorSpace)
	}
	if r.Lowercase != nil {
		cfg.Lowercase = *r.Lowercase
	}
	if r.MinDF != nil {
		cfg.MinDF = *r.MinDF
	}
	if r.MaxDF != nil {
		cfg.MaxDF = *r.MaxDF
	}
	return cfg
}

// VectorizeResponse returns the fitted matrix with its labels.
type VectorizeResponse struct {
	Rows        int         `json:"rows"`
	Columns     int         `json:"columns"`
	VectorSpace string      `json:"vector_space"`
	Features    []string    `json:"features"`
	Titles      []string    `json:"titles"`
	Authors     []string    `json:"authors"`
	Matrix      [][]float64 `json:"matrix"`
}

// VectorSpacesResponse enumerates the supported spaces.
type VectorSpacesResponse struct {
	VectorSpaces []string `json:"vector_spaces"`
	NgramTypes   []string `json:"ngram_types"`
}
