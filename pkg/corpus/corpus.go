// Package corpus manages ordered collections of text documents and the
// preprocessing steps that prepare them for vectorization.
package corpus

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/quantext/stylo/pkg/tokenizer"
)

// Validation errors
var (
	ErrEmptyCorpus   = errors.New("corpus contains no documents")
	ErrNotTokenized  = errors.New("corpus has not been tokenized")
	ErrEmptyText     = errors.New("document text cannot be empty")
	ErrInvalidWindow = errors.New("segment size must be positive")
)

// Document is a single text sample in a corpus.
type Document struct {
	ID     string   `json:"id"`
	Title  string   `json:"title"`
	Author string   `json:"author"`
	Text   string   `json:"text"`
	Tokens []string `json:"tokens,omitempty"`
}

// Corpus is an ordered collection of documents. Document order is stable:
// Titles and Authors stay index-aligned with matrix rows produced from it.
type Corpus struct {
	docs     []*Document
	language string
	logger   *slog.Logger
}

// New creates an empty corpus. The language code selects the built-in
// stop-word list used downstream; pass "" to skip language handling.
func New(language string, logger *slog.Logger) *Corpus {
	if logger == nil {
		logger = slog.Default()
	}
	return &Corpus{language: language, logger: logger}
}

// Language returns the corpus language code.
func (c *Corpus) Language() string {
	return c.language
}

// AddDocument appends a document to the corpus and returns it.
func (c *Corpus) AddDocument(title, author, text string) (*Document, error) {
	if text == "" {
		return nil, ErrEmptyText
	}
	doc := &Document{
		ID:     uuid.New().String(),
		Title:  title,
		Author: author,
		Text:   text,
	}
	c.docs = append(c.docs, doc)
	return doc, nil
}

// Documents returns the documents in insertion order.
func (c *Corpus) Documents() []*Document {
	return c.docs
}

// Len returns the number of documents.
func (c *Corpus) Len() int {
	return len(c.docs)
}

// Titles returns the document titles in row order.
func (c *Corpus) Titles() []string {
	titles := make([]string, len(c.docs))
	for i, d := range c.docs {
		titles[i] = d.Title
	}
	return titles
}

// Authors returns the document authors in row order.
func (c *Corpus) Authors() []string {
	authors := make([]string, len(c.docs))
	for i, d := range c.docs {
		authors[i] = d.Author
	}
	return authors
}

// Texts returns the raw document texts in row order.
func (c *Corpus) Texts() []string {
	texts := make([]string, len(c.docs))
	for i, d := range c.docs {
		texts[i] = d.Text
	}
	return texts
}

// Tokenize splits every document into word tokens. Documents with fewer
// than minSize tokens are dropped; documents longer than maxSize tokens are
// truncated. A zero bound disables that bound.
func (c *Corpus) Tokenize(minSize, maxSize int) error {
	if len(c.docs) == 0 {
		return ErrEmptyCorpus
	}

	kept := c.docs[:0]
	dropped := 0
	for _, doc := range c.docs {
		tokens := tokenizer.Tokenize(doc.Text)
		if minSize > 0 && len(tokens) < minSize {
			dropped++
			continue
		}
		if maxSize > 0 && len(tokens) > maxSize {
			tokens = tokens[:maxSize]
		}
		doc.Tokens = tokens
		kept = append(kept, doc)
	}
	c.docs = kept

	if dropped > 0 {
		c.logger.Info("dropped short documents during tokenization",
			"dropped", dropped, "min_size", minSize)
	}
	return nil
}

// Tokenized reports whether every document has a token stream.
func (c *Corpus) Tokenized() bool {
	if len(c.docs) == 0 {
		return false
	}
	for _, d := range c.docs {
		if d.Tokens == nil {
			return false
		}
	}
	return true
}

// Segment slices every tokenized document into windows of size tokens,
// advancing by step tokens between windows (step <= 0 means non-overlapping
// windows). Each window becomes its own document titled "<title>-<n>". The
// trailing remainder shorter than size is kept as a final window.
func (c *Corpus) Segment(size, step int) error {
	if size <= 0 {
		return ErrInvalidWindow
	}
	if !c.Tokenized() {
		return ErrNotTokenized
	}
	if step <= 0 {
		step = size
	}

	var segmented []*Document
	for _, doc := range c.docs {
		for i, n := 0, 0; i < len(doc.Tokens); i, n = i+step, n+1 {
			end := i + size
			if end > len(doc.Tokens) {
				end = len(doc.Tokens)
			}
			window := doc.Tokens[i:end]
			segmented = append(segmented, &Document{
				ID:     uuid.New().String(),
				Title:  fmt.Sprintf("%s-%d", doc.Title, n+1),
				Author: doc.Author,
				Tokens: append([]string(nil), window...),
			})
			if end == len(doc.Tokens) {
				break
			}
		}
	}

	c.logger.Info("segmented corpus",
		"documents", len(c.docs), "segments", len(segmented), "size", size, "step", step)
	c.docs = segmented
	return nil
}

// TokenStreams returns the per-document token slices in row order.
// Returns ErrNotTokenized when Tokenize has not run yet.
func (c *Corpus) TokenStreams() ([][]string, error) {
	if len(c.docs) == 0 {
		return nil, ErrEmptyCorpus
	}
	if !c.Tokenized() {
		return nil, ErrNotTokenized
	}
	streams := make([][]string, len(c.docs))
	for i, d := range c.docs {
		streams[i] = d.Tokens
	}
	return streams, nil
}
