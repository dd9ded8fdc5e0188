// Package cache persists fitted vectorizer models in a local Badger store
// so repeat runs over an unchanged corpus skip re-fitting.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/quantext/stylo/pkg/vectorizer"
)

// ErrNotFound is returned when no model is cached under a key.
var ErrNotFound = errors.New("model not found in cache")

const modelPrefix = "model/"

// Store is a Badger-backed model cache.
type Store struct {
	db     *badger.DB
	logger *slog.Logger
}

// Open opens (or creates) a cache store at dir.
func Open(dir string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache at %s: %w", dir, err)
	}
	return &Store{db: db, logger: logger}, nil
}

// Close releases the underlying store.
func (s *Store) Close() error {
	return s.db.Close()
}

// PutModel stores a fitted model under key, overwriting any previous entry.
func (s *Store) PutModel(key string, m *vectorizer.Model) error {
	data, err := m.MarshalBinary()
	if err != nil {
		return fmt.Errorf("failed to encode model: %w", err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(modelPrefix+key), data)
	})
	if err != nil {
		return fmt.Errorf("failed to store model %s: %w", key, err)
	}
	s.logger.Debug("cached fitted model", "key", key, "vocabulary", len(m.Vocabulary))
	return nil
}

// GetModel retrieves a fitted model by key. Returns ErrNotFound when the
// key has never been stored.
func (s *Store) GetModel(key string) (*vectorizer.Model, error) {
	var m vectorizer.Model
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(modelPrefix + key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return m.UnmarshalBinary(val)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load model %s: %w", key, err)
	}
	return &m, nil
}

// Delete removes a cached model. Deleting a missing key is not an error.
func (s *Store) Delete(key string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(modelPrefix + key))
	})
	if err != nil {
		return fmt.Errorf("failed to delete model %s: %w", key, err)
	}
	return nil
}

// Keys lists the cached model keys.
func (s *Store) Keys() ([]string, error) {
	var keys []string
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()
		prefix := []byte(modelPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			keys = append(keys, string(it.Item().Key()[len(prefix):]))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list cached models: %w", err)
	}
	return keys, nil
}

// Fingerprint derives a stable cache key from a vectorizer config and the
// token streams it will be fitted on.
func Fingerprint(cfg vectorizer.Config, docs [][]string) string {
	h := sha256.New()
	if data, err := json.Marshal(cfg); err == nil {
		h.Write(data)
	}
	for _, tokens := range docs {
		for _, tok := range tokens {
			h.Write([]byte(tok))
			h.Write([]byte{0})
		}
		h.Write([]byte{1})
	}
	return hex.EncodeToString(h.Sum(nil))
}
