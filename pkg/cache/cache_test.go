package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantext/stylo/pkg/vectorizer"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func fittedModel(t *testing.T) *vectorizer.Model {
	t.Helper()
	v, err := vectorizer.New(vectorizer.DefaultConfig(), nil)
	require.NoError(t, err)
	require.NoError(t, v.Fit([][]string{{"a", "b"}, {"b", "c"}}))
	m, err := v.Model()
	require.NoError(t, err)
	return m
}

func TestPutGetModel(t *testing.T) {
	s := openStore(t)
	m := fittedModel(t)

	require.NoError(t, s.PutModel("k1", m))

	got, err := s.GetModel("k1")
	require.NoError(t, err)
	assert.Equal(t, m.Vocabulary, got.Vocabulary)
	assert.Equal(t, m.IDF, got.IDF)
	assert.Equal(t, m.Documents, got.Documents)

	// The restored model transforms like the original.
	v, err := vectorizer.FromModel(got)
	require.NoError(t, err)
	matrix, err := v.Transform([][]string{{"b"}})
	require.NoError(t, err)
	assert.Len(t, matrix.Rows, 1)
}

func TestGetModelMissing(t *testing.T) {
	s := openStore(t)

	_, err := s.GetModel("never-stored")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete(t *testing.T) {
	s := openStore(t)
	m := fittedModel(t)

	require.NoError(t, s.PutModel("k1", m))
	require.NoError(t, s.Delete("k1"))

	_, err := s.GetModel("k1")
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting again is a no-op.
	assert.NoError(t, s.Delete("k1"))
}

func TestKeys(t *testing.T) {
	s := openStore(t)
	m := fittedModel(t)

	require.NoError(t, s.PutModel("alpha", m))
	require.NoError(t, s.PutModel("beta", m))

	keys, err := s.Keys()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"alpha", "beta"}, keys)
}

func TestFingerprint(t *testing.T) {
	t.Parallel()

	cfg := vectorizer.DefaultConfig()
	docs := [][]string{{"a", "b"}, {"c"}}

	f1 := Fingerprint(cfg, docs)
	f2 := Fingerprint(cfg, docs)
	assert.Equal(t, f1, f2, "fingerprint must be stable")

	// Token boundaries matter: ["ab"] differs from ["a","b"].
	f3 := Fingerprint(cfg, [][]string{{"ab"}, {"c"}})
	assert.NotEqual(t, f1, f3)

	// Config changes change the key.
	cfg.VectorSpace = vectorizer.SpaceTFIDF
	f4 := Fingerprint(cfg, docs)
	assert.NotEqual(t, f1, f4)
}
