// Package vectorizer turns tokenized documents into documents-by-terms
// numeric matrices under a configurable vector space.
package vectorizer

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/quantext/stylo/pkg/stopwords"
	"github.com/quantext/stylo/pkg/tokenizer"
)

// NgramType selects the feature unit extracted from documents.
type NgramType string

const (
	// NgramWord uses word token n-grams.
	NgramWord NgramType = "word"
	// NgramChar uses character n-grams over the full token stream.
	NgramChar NgramType = "char"
	// NgramCharWB uses character n-grams confined to word boundaries.
	NgramCharWB NgramType = "char_wb"
)

// VectorSpace selects the normalization scheme applied to term counts.
type VectorSpace string

const (
	// SpaceTF is raw relative term frequency.
	SpaceTF VectorSpace = "tf"
	// SpaceTFScaled is relative frequency min-max scaled per feature.
	SpaceTFScaled VectorSpace = "tf_scaled"
	// SpaceTFStd is relative frequency scaled by the per-feature standard
	// deviation, without mean centering.
	SpaceTFStd VectorSpace = "tf_std"
	// SpaceTFIDF is smooth TF-IDF with L2-normalized rows.
	SpaceTFIDF VectorSpace = "tf_idf"
	// SpaceBinary marks term presence with 1.
	SpaceBinary VectorSpace = "bin"
)

// VectorSpaces lists the supported vector spaces.
func VectorSpaces() []VectorSpace {
	return []VectorSpace{SpaceTF, SpaceTFScaled, SpaceTFStd, SpaceTFIDF, SpaceBinary}
}

// Configuration and state errors
var (
	ErrNoDocuments      = errors.New("no documents to vectorize")
	ErrNotFitted        = errors.New("vectorizer has not been fitted")
	ErrEmptyVocabulary  = errors.New("vocabulary is empty after culling")
	ErrInvalidNgramSize = errors.New("ngram size must be at least 1")
	ErrInvalidDFBounds  = errors.New("min_df must not exceed max_df and both must be in [0,1]")
)

// Config holds the named options of the vectorizer.
type Config struct {
	// MaxFeatures keeps only the N most frequent vocabulary items
	// (0 keeps everything).
	MaxFeatures int `json:"max_features" mapstructure:"max_features"`
	// NgramType selects word, char, or char_wb analysis.
	NgramType NgramType `json:"ngram_type" mapstructure:"ngram_type"`
	// NgramSize is the n in n-gram.
	NgramSize int `json:"ngram_size" mapstructure:"ngram_size"`
	// VectorSpace selects the normalization scheme.
	VectorSpace VectorSpace `json:"vector_space" mapstructure:"vector_space"`
	// Lowercase folds features to lower case before analysis.
	Lowercase bool `json:"lowercase" mapstructure:"lowercase"`
	// MinDF and MaxDF bound the proportion of documents a term may appear
	// in; terms outside the range are culled.
	MinDF float64 `json:"min_df" mapstructure:"min_df"`
	MaxDF float64 `json:"max_df" mapstructure:"max_df"`
	// Ignore lists terms excluded from the vocabulary. For word n-grams a
	// feature is dropped when any of its member tokens is ignored.
	Ignore stopwords.Set `json:"ignore,omitempty" mapstructure:"-"`
	// Vocabulary fixes the feature set up front, skipping vocabulary
	// fitting. Document-frequency culling and MaxFeatures do not apply.
	Vocabulary []string `json:"vocabulary,omitempty" mapstructure:"-"`
}

// DefaultConfig mirrors the defaults of the original wrapper: the hundred
// most frequent lower-cased word unigrams in tf space.
func DefaultConfig() Config {
	return Config{
		MaxFeatures: 100,
		NgramType:   NgramWord,
		NgramSize:   1,
		VectorSpace: SpaceTF,
		Lowercase:   true,
		MinDF:       0.0,
		MaxDF:       1.0,
	}
}

// Validate checks the config for contradictions.
func (c Config) Validate() error {
	switch c.NgramType {
	case NgramWord, NgramChar, NgramCharWB:
	default:
		return fmt.Errorf("unknown ngram type %q", c.NgramType)
	}
	switch c.VectorSpace {
	case SpaceTF, SpaceTFScaled, SpaceTFStd, SpaceTFIDF, SpaceBinary:
	default:
		return fmt.Errorf("unknown vector space %q", c.VectorSpace)
	}
	if c.NgramSize < 1 {
		return ErrInvalidNgramSize
	}
	if c.MinDF < 0 || c.MaxDF > 1 || c.MinDF > c.MaxDF {
		return ErrInvalidDFBounds
	}
	return nil
}

// Vectorizer maps tokenized documents onto a fixed vocabulary.
type Vectorizer struct {
	cfg    Config
	vocab  []string
	index  map[string]int
	idf    []float64
	nDocs  int
	fitted bool
	logger *slog.Logger
}

// New creates a Vectorizer from cfg. Returns an error when the config is
// invalid.
func New(cfg Config, logger *slog.Logger) (*Vectorizer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid vectorizer config: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Vectorizer{cfg: cfg, logger: logger}, nil
}

// Config returns the vectorizer configuration.
func (v *Vectorizer) Config() Config {
	return v.cfg
}

// FeatureNames returns the selected vocabulary in column order.
// Returns ErrNotFitted before Fit has run.
func (v *Vectorizer) FeatureNames() ([]string, error) {
	if !v.fitted {
		return nil, ErrNotFitted
	}
	return v.vocab, nil
}

// analyze extracts features from one tokenized document according to the
// configured n-gram type and size.
func (v *Vectorizer) analyze(tokens []string) []string {
	if v.cfg.Lowercase {
		lowered := make([]string, len(tokens))
		for i, t := range tokens {
			lowered[i] = strings.ToLower(t)
		}
		tokens = lowered
	}
	switch v.cfg.NgramType {
	case NgramChar:
		return tokenizer.CharNgrams(strings.Join(tokens, " "), v.cfg.NgramSize)
	case NgramCharWB:
		return tokenizer.CharNgramsWB(tokens, v.cfg.NgramSize)
	default:
		return tokenizer.WordNgrams(tokens, v.cfg.NgramSize)
	}
}

// ignored reports whether a feature is excluded by the ignore list.
func (v *Vectorizer) ignored(feature string) bool {
	if len(v.cfg.Ignore) == 0 {
		return false
	}
	if v.cfg.NgramType == NgramWord {
		for _, part := range strings.Split(feature, " ") {
			if v.cfg.Ignore.Contains(part) {
				return true
			}
		}
		return false
	}
	return v.cfg.Ignore.Contains(feature)
}

// Fit builds the vocabulary from the corpus: features are culled by the
// document-frequency bounds and the ignore list, then ranked by corpus
// frequency with alphabetical tie-breaks, and the top MaxFeatures survive.
// A fixed Config.Vocabulary bypasses selection but IDF weights are still
// estimated from docs.
func (v *Vectorizer) Fit(docs [][]string) error {
	if len(docs) == 0 {
		return ErrNoDocuments
	}

	df := make(map[string]int)
	totals := make(map[string]int)
	for _, tokens := range docs {
		seen := make(map[string]bool)
		for _, f := range v.analyze(tokens) {
			totals[f]++
			if !seen[f] {
				df[f]++
				seen[f] = true
			}
		}
	}

	if len(v.cfg.Vocabulary) > 0 {
		v.vocab = make([]string, len(v.cfg.Vocabulary))
		for i, term := range v.cfg.Vocabulary {
			if v.cfg.Lowercase {
				term = strings.ToLower(term)
			}
			v.vocab[i] = term
		}
	} else {
		v.vocab = v.selectVocabulary(df, totals, len(docs))
		if len(v.vocab) == 0 {
			return ErrEmptyVocabulary
		}
	}

	v.index = make(map[string]int, len(v.vocab))
	for i, term := range v.vocab {
		v.index[term] = i
	}

	v.nDocs = len(docs)
	v.idf = smoothIDF(v.vocab, df, len(docs))
	v.fitted = true

	v.logger.Debug("fitted vectorizer",
		"documents", len(docs),
		"candidates", len(df),
		"vocabulary", len(v.vocab),
		"vector_space", string(v.cfg.VectorSpace))
	return nil
}

// selectVocabulary applies df culling, the ignore list, and the MaxFeatures
// cut to the candidate feature set.
func (v *Vectorizer) selectVocabulary(df, totals map[string]int, nDocs int) []string {
	n := float64(nDocs)
	candidates := make([]string, 0, len(df))
	for term, count := range df {
		prop := float64(count) / n
		if prop < v.cfg.MinDF || prop > v.cfg.MaxDF {
			continue
		}
		if v.ignored(term) {
			continue
		}
		candidates = append(candidates, term)
	}

	// Most frequent first, ties alphabetical, so column order is
	// deterministic across runs.
	sort.Slice(candidates, func(i, j int) bool {
		if totals[candidates[i]] != totals[candidates[j]] {
			return totals[candidates[i]] > totals[candidates[j]]
		}
		return candidates[i] < candidates[j]
	})

	if v.cfg.MaxFeatures > 0 && len(candidates) > v.cfg.MaxFeatures {
		candidates = candidates[:v.cfg.MaxFeatures]
	}
	return candidates
}

// smoothIDF computes log((1+n)/(1+df)) + 1 per vocabulary term.
func smoothIDF(vocab []string, df map[string]int, nDocs int) []float64 {
	idf := make([]float64, len(vocab))
	for i, term := range vocab {
		idf[i] = smoothIDFValue(df[term], nDocs)
	}
	return idf
}

// Transform maps documents onto the fitted vocabulary and applies the
// configured vector space.
func (v *Vectorizer) Transform(docs [][]string) (*Matrix, error) {
	if !v.fitted {
		return nil, ErrNotFitted
	}
	if len(docs) == 0 {
		return nil, ErrNoDocuments
	}

	rows := make([][]float64, len(docs))
	for i, tokens := range docs {
		rows[i] = v.termFrequencies(tokens)
	}

	applySpace(v.cfg.VectorSpace, rows, v.idf)

	return &Matrix{
		Rows:  rows,
		Terms: append([]string(nil), v.vocab...),
	}, nil
}

// termFrequencies counts in-vocabulary features of one document and divides
// by the document's total analyzed feature count, yielding relative
// frequencies. A document with no analyzable features yields a zero row.
func (v *Vectorizer) termFrequencies(tokens []string) []float64 {
	row := make([]float64, len(v.vocab))
	features := v.analyze(tokens)
	if len(features) == 0 {
		return row
	}
	for _, f := range features {
		if idx, ok := v.index[f]; ok {
			row[idx]++
		}
	}
	total := float64(len(features))
	for j := range row {
		row[j] /= total
	}
	return row
}

// FitTransform fits the vocabulary and transforms the same documents.
func (v *Vectorizer) FitTransform(docs [][]string) (*Matrix, error) {
	if err := v.Fit(docs); err != nil {
		return nil, err
	}
	return v.Transform(docs)
}
