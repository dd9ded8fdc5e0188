// Package stopwords holds the built-in stop-word lists and loaders for
// user-supplied ignore lists.
package stopwords

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Set is a case-folded membership set of terms to exclude from vocabularies.
type Set map[string]bool

// NewSet builds a Set from a slice of words, folding each to lower case.
func NewSet(words []string) Set {
	s := make(Set, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			s[w] = true
		}
	}
	return s
}

// Contains reports whether term is in the set. The check is case-insensitive.
func (s Set) Contains(term string) bool {
	return s[strings.ToLower(term)]
}

// Merge returns a new Set containing the union of s and other.
func (s Set) Merge(other Set) Set {
	merged := make(Set, len(s)+len(other))
	for w := range s {
		merged[w] = true
	}
	for w := range other {
		merged[w] = true
	}
	return merged
}

// Words returns the members of the set in unspecified order.
func (s Set) Words() []string {
	words := make([]string, 0, len(s))
	for w := range s {
		words = append(words, w)
	}
	return words
}

// ForLanguage returns the built-in stop-word set for an ISO 639-1 language
// code. Unknown codes yield an empty set rather than an error so that a
// corpus in an unsupported language simply skips stop-word culling.
func ForLanguage(code string) Set {
	switch strings.ToLower(code) {
	case "en", "eng", "english":
		return NewSet(english)
	default:
		return Set{}
	}
}

// LoadFile reads a stop-word list from disk. Files ending in .yaml or .yml
// must contain a YAML sequence of strings; anything else is read as plain
// text with one word per line, blank lines and #-comments ignored.
func LoadFile(path string) (Set, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return loadYAML(path)
	default:
		return loadPlain(path)
	}
}

func loadYAML(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read stop-word file: %w", err)
	}
	var words []string
	if err := yaml.Unmarshal(data, &words); err != nil {
		return nil, fmt.Errorf("failed to parse stop-word file %s: %w", path, err)
	}
	return NewSet(words), nil
}

func loadPlain(path string) (Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open stop-word file: %w", err)
	}
	defer f.Close()

	s := Set{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		s[strings.ToLower(line)] = true
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read stop-word file %s: %w", path, err)
	}
	return s, nil
}
