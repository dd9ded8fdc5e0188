package stylo

import "github.com/quantext/stylo/pkg/vectorizer"

// This file defines focused interfaces over the client. Consumers should
// depend on the smallest interface that meets their needs.

// CorpusManager provides operations for assembling and preparing a corpus.
type CorpusManager interface {
	// AddDocument appends a single document.
	AddDocument(title, author, text string) error

	// AddDirectory loads every .txt file in a directory, taking author and
	// title from the author_title.txt filename convention.
	AddDirectory(path string) error

	// LoadManifest loads documents listed in a YAML manifest.
	LoadManifest(path string) error

	// Preprocess canonicalizes document texts.
	Preprocess() error

	// Tokenize splits documents into word tokens within the size bounds.
	Tokenize(minSize, maxSize int) error

	// Segment slices tokenized documents into fixed-size windows.
	Segment(size, step int) error

	// Titles returns document titles in matrix row order.
	Titles() []string

	// Authors returns document authors in matrix row order.
	Authors() []string
}

// Vectorizing provides the vectorization operation over a prepared corpus.
type Vectorizing interface {
	// Vectorize fits and applies a vectorizer, returning the matrix with
	// its row and column labels.
	Vectorize(cfg vectorizer.Config) (*Result, error)
}

// Compile-time check that Client satisfies the composed surface.
var _ interface {
	CorpusManager
	Vectorizing
} = (*Client)(nil)
