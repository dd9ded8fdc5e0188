package stylo

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/quantext/stylo/pkg/cache"
	"github.com/quantext/stylo/pkg/corpus"
	"github.com/quantext/stylo/pkg/stopwords"
	"github.com/quantext/stylo/pkg/vectorizer"
)

var (
	// ErrEmptyCorpus is returned when an operation needs documents and the
	// corpus has none.
	ErrEmptyCorpus = corpus.ErrEmptyCorpus
	// ErrNotTokenized is returned when vectorization runs before Tokenize.
	ErrNotTokenized = corpus.ErrNotTokenized
)

// Config holds configuration for the stylo client.
type Config struct {
	// Language selects the built-in stop-word list (ISO 639-1 code).
	Language string
	// Preprocess overrides the default preprocessing options.
	Preprocess *corpus.PreprocessOptions
	// StopWords culls the language's built-in stop words during
	// vectorization, in addition to any per-run ignore list.
	StopWords bool
	// CacheDir enables the fitted-model cache at the given directory.
	CacheDir string
}

// Client is the main entry point: a corpus plus the machinery to vectorize
// it. It implements CorpusManager and Vectorizing.
type Client struct {
	corpus *corpus.Corpus
	config *Config
	cache  *cache.Store
	logger *slog.Logger
}

// Result is a fitted vectorization: the matrix with its row and column
// labels, index-aligned with the corpus at the time of the call.
type Result struct {
	Matrix    *vectorizer.Matrix
	Documents []*corpus.Document
	Titles    []string
	Authors   []string
	Space     vectorizer.VectorSpace
}

// FeatureNames returns the selected vocabulary in column order.
func (r *Result) FeatureNames() []string {
	return r.Matrix.Terms
}

// NewClient creates a client with an empty corpus. A nil config gets
// English defaults; a nil logger falls back to slog.Default. When
// Config.CacheDir is set the model cache is opened lazily on first use.
func NewClient(config *Config, logger *slog.Logger) *Client {
	if config == nil {
		config = &Config{Language: "en"}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		corpus: corpus.New(config.Language, logger),
		config: config,
		logger: logger,
	}
}

// Corpus exposes the underlying corpus.
func (c *Client) Corpus() *corpus.Corpus {
	return c.corpus
}

// AddDocument appends a document to the corpus.
func (c *Client) AddDocument(title, author, text string) error {
	_, err := c.corpus.AddDocument(title, author, text)
	return err
}

// AddDirectory loads every .txt file in path, reading author and title from
// the author_title.txt filename convention.
func (c *Client) AddDirectory(path string) error {
	return c.corpus.AddDirectory(path)
}

// LoadManifest loads documents listed in a YAML manifest.
func (c *Client) LoadManifest(path string) error {
	return c.corpus.LoadManifest(path)
}

// Preprocess canonicalizes document texts using the configured options, or
// the defaults (lowercase, strip punctuation and digits) when none are set.
func (c *Client) Preprocess() error {
	opts := corpus.DefaultPreprocessOptions()
	if c.config.Preprocess != nil {
		opts = *c.config.Preprocess
	}
	return c.corpus.Preprocess(opts)
}

// Tokenize splits documents into word tokens, dropping documents shorter
// than minSize tokens and truncating at maxSize (zero disables a bound).
func (c *Client) Tokenize(minSize, maxSize int) error {
	return c.corpus.Tokenize(minSize, maxSize)
}

// Segment slices tokenized documents into windows of size tokens advancing
// by step.
func (c *Client) Segment(size, step int) error {
	return c.corpus.Segment(size, step)
}

// Titles returns document titles in matrix row order.
func (c *Client) Titles() []string {
	return c.corpus.Titles()
}

// Authors returns document authors in matrix row order.
func (c *Client) Authors() []string {
	return c.corpus.Authors()
}

// Vectorize fits a vectorizer on the corpus and transforms it. Documents
// that have not been tokenized yet are tokenized first with no size bounds.
// When Config.StopWords is set, the built-in list for the corpus language
// is merged into the run's ignore list. A configured cache is consulted
// before fitting.
func (c *Client) Vectorize(cfg vectorizer.Config) (*Result, error) {
	if c.corpus.Len() == 0 {
		return nil, ErrEmptyCorpus
	}
	if !c.corpus.Tokenized() {
		if err := c.corpus.Tokenize(0, 0); err != nil {
			return nil, err
		}
	}
	docs, err := c.corpus.TokenStreams()
	if err != nil {
		return nil, err
	}

	if c.config.StopWords {
		builtin := stopwords.ForLanguage(c.corpus.Language())
		if cfg.Ignore == nil {
			cfg.Ignore = builtin
		} else {
			cfg.Ignore = cfg.Ignore.Merge(builtin)
		}
	}

	v, err := c.fitted(cfg, docs)
	if err != nil {
		return nil, err
	}

	matrix, err := v.Transform(docs)
	if err != nil {
		return nil, err
	}

	return &Result{
		Matrix:    matrix,
		Documents: c.corpus.Documents(),
		Titles:    c.corpus.Titles(),
		Authors:   c.corpus.Authors(),
		Space:     cfg.VectorSpace,
	}, nil
}

// fitted returns a fitted vectorizer for docs, consulting the model cache
// when one is configured.
func (c *Client) fitted(cfg vectorizer.Config, docs [][]string) (*vectorizer.Vectorizer, error) {
	store, err := c.openCache()
	if err != nil {
		return nil, err
	}
	if store == nil {
		v, err := vectorizer.New(cfg, c.logger)
		if err != nil {
			return nil, err
		}
		if err := v.Fit(docs); err != nil {
			return nil, err
		}
		return v, nil
	}

	key := cache.Fingerprint(cfg, docs)
	if model, err := store.GetModel(key); err == nil {
		c.logger.Debug("reusing cached model", "key", key)
		return vectorizer.FromModel(model)
	} else if !errors.Is(err, cache.ErrNotFound) {
		return nil, err
	}

	v, err := vectorizer.New(cfg, c.logger)
	if err != nil {
		return nil, err
	}
	if err := v.Fit(docs); err != nil {
		return nil, err
	}
	model, err := v.Model()
	if err != nil {
		return nil, err
	}
	if err := store.PutModel(key, model); err != nil {
		return nil, fmt.Errorf("failed to cache fitted model: %w", err)
	}
	return v, nil
}

func (c *Client) openCache() (*cache.Store, error) {
	if c.config.CacheDir == "" {
		return nil, nil
	}
	if c.cache == nil {
		store, err := cache.Open(c.config.CacheDir, c.logger)
		if err != nil {
			return nil, err
		}
		c.cache = store
	}
	return c.cache, nil
}

// Close releases resources held by the client, currently the model cache.
func (c *Client) Close() error {
	if c.cache == nil {
		return nil
	}
	err := c.cache.Close()
	c.cache = nil
	return err
}
