package corpus

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// UnknownAuthor is assigned to files whose name does not carry author
// metadata.
const UnknownAuthor = "unknown"

// AddDirectory loads every .txt file under path (non-recursively) into the
// corpus. Filenames follow the author_title.txt convention; a name without
// an underscore yields author "unknown" and the basename as title.
func (c *Corpus) AddDirectory(path string) error {
	entries, err := os.ReadDir(path)
	if err != nil {
		return fmt.Errorf("failed to read corpus directory %s: %w", path, err)
	}

	loaded := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(path, entry.Name()))
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", entry.Name(), err)
		}
		author, title := splitFilename(entry.Name())
		if _, err := c.AddDocument(title, author, string(data)); err != nil {
			return fmt.Errorf("failed to add %s: %w", entry.Name(), err)
		}
		loaded++
	}

	if loaded == 0 {
		return fmt.Errorf("no .txt files found in %s", path)
	}
	c.logger.Info("loaded corpus directory", "path", path, "documents", loaded)
	return nil
}

// splitFilename extracts (author, title) from an author_title.txt filename.
func splitFilename(name string) (author, title string) {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	author, title, found := strings.Cut(base, "_")
	if !found {
		return UnknownAuthor, base
	}
	return author, title
}

// manifest is the on-disk schema for a corpus manifest file.
type manifest struct {
	Documents []manifestEntry `yaml:"documents"`
}

type manifestEntry struct {
	Path   string `yaml:"path"`
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
}

// LoadManifest loads documents listed in a YAML manifest. Relative paths in
// the manifest resolve against the manifest's own directory. Title defaults
// to the file basename and author to "unknown" when omitted.
func (c *Corpus) LoadManifest(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read manifest: %w", err)
	}

	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}
	if len(m.Documents) == 0 {
		return fmt.Errorf("manifest %s lists no documents", path)
	}

	baseDir := filepath.Dir(path)
	for _, entry := range m.Documents {
		docPath := entry.Path
		if !filepath.IsAbs(docPath) {
			docPath = filepath.Join(baseDir, docPath)
		}
		data, err := os.ReadFile(docPath)
		if err != nil {
			return fmt.Errorf("failed to read manifest document %s: %w", entry.Path, err)
		}

		title := entry.Title
		if title == "" {
			title = strings.TrimSuffix(filepath.Base(entry.Path), filepath.Ext(entry.Path))
		}
		author := entry.Author
		if author == "" {
			author = UnknownAuthor
		}
		if _, err := c.AddDocument(title, author, string(data)); err != nil {
			return fmt.Errorf("failed to add manifest document %s: %w", entry.Path, err)
		}
	}

	c.logger.Info("loaded corpus manifest", "path", path, "documents", len(m.Documents))
	return nil
}
