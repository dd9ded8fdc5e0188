package stopwords

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForLanguage(t *testing.T) {
	t.Parallel()

	en := ForLanguage("en")
	assert.True(t, en.Contains("the"))
	assert.True(t, en.Contains("The"), "lookup should be case-insensitive")
	assert.False(t, en.Contains("whale"))

	// Aliases resolve to the same list.
	assert.True(t, ForLanguage("english").Contains("and"))

	// Unknown languages yield an empty, usable set.
	xx := ForLanguage("xx")
	assert.Empty(t, xx.Words())
	assert.False(t, xx.Contains("the"))
}

func TestSetMerge(t *testing.T) {
	t.Parallel()

	a := NewSet([]string{"alpha", "beta"})
	b := NewSet([]string{"beta", "gamma"})
	merged := a.Merge(b)

	assert.Len(t, merged.Words(), 3)
	assert.True(t, merged.Contains("alpha"))
	assert.True(t, merged.Contains("gamma"))
	// Merge does not mutate the receivers.
	assert.False(t, a.Contains("gamma"))
}

func TestNewSetNormalizes(t *testing.T) {
	t.Parallel()

	s := NewSet([]string{" The ", "AND", ""})
	assert.Len(t, s.Words(), 2)
	assert.True(t, s.Contains("the"))
	assert.True(t, s.Contains("and"))
}

func TestLoadFilePlain(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "ignore.txt")
	content := "# stage directions\nEnter\nExeunt\n\nchorus\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	s, err := LoadFile(path)
	require.NoError(t, err)
	assert.True(t, s.Contains("enter"))
	assert.True(t, s.Contains("exeunt"))
	assert.True(t, s.Contains("chorus"))
	assert.False(t, s.Contains("# stage directions"))
	assert.Len(t, s.Words(), 3)
}

func TestLoadFileYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "ignore.yaml")
	content := "- enter\n- exeunt\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	s, err := LoadFile(path)
	require.NoError(t, err)
	assert.True(t, s.Contains("enter"))
	assert.Len(t, s.Words(), 2)
}

func TestLoadFileMissing(t *testing.T) {
	t.Parallel()

	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}
