package handlers

import (
	"log/slog"
	"sync"

	"github.com/quantext/stylo"
	"github.com/quantext/stylo/pkg/server/dto"
	"github.com/quantext/stylo/pkg/stopwords"
)

// CorpusStore holds the documents submitted over the API. Vectorization
// requests build a fresh client over the stored documents so that
// request-scoped options (preprocessing, token bounds) never mutate the
// shared state.
type CorpusStore struct {
	mu       sync.Mutex
	language string
	docs     []dto.DocumentPayload
	logger   *slog.Logger
}

// NewCorpusStore creates an empty store for the given corpus language.
func NewCorpusStore(language string, logger *slog.Logger) *CorpusStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &CorpusStore{language: language, logger: logger}
}

// Add appends documents and returns the new corpus size.
func (s *CorpusStore) Add(docs []dto.DocumentPayload) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs = append(s.docs, docs...)
	return len(s.docs)
}

// Clear removes all documents.
func (s *CorpusStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs = nil
}

// Summary describes the held corpus.
func (s *CorpusStore) Summary() dto.CorpusSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	summary := dto.CorpusSummary{
		Documents: len(s.docs),
		Language:  s.language,
		Titles:    make([]string, len(s.docs)),
		Authors:   make([]string, len(s.docs)),
	}
	for i, d := range s.docs {
		summary.Titles[i] = d.Title
		summary.Authors[i] = d.Author
	}
	return summary
}

// Len returns the number of held documents.
func (s *CorpusStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.docs)
}

// Vectorize runs one vectorization over a snapshot of the held documents.
func (s *CorpusStore) Vectorize(req dto.VectorizeRequest) (*stylo.Result, error) {
	s.mu.Lock()
	docs := append([]dto.DocumentPayload(nil), s.docs...)
	s.mu.Unlock()

	client := stylo.NewClient(&stylo.Config{Language: s.language}, s.logger)
	for _, d := range docs {
		if err := client.AddDocument(d.Title, d.Author, d.Text); err != nil {
			return nil, err
		}
	}

	if req.Preprocess {
		if err := client.Preprocess(); err != nil {
			return nil, err
		}
	}
	if err := client.Tokenize(req.MinSize, req.MaxSize); err != nil {
		return nil, err
	}

	cfg := req.ToConfig()
	if len(req.Ignore) > 0 {
		cfg.Ignore = stopwords.NewSet(req.Ignore)
	}
	return client.Vectorize(cfg)
}
