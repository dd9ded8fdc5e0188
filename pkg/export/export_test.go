package export

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantext/stylo/pkg/corpus"
	"github.com/quantext/stylo/pkg/vectorizer"
)

func fixture() ([]*corpus.Document, *vectorizer.Matrix) {
	docs := []*corpus.Document{
		{ID: "d1", Title: "moby", Author: "melville"},
		{ID: "d2", Title: "emma", Author: "austen"},
	}
	m := &vectorizer.Matrix{
		Rows:  [][]float64{{0.5, 0.25}, {0.0, 1.0}},
		Terms: []string{"whale", "sea"},
	}
	return docs, m
}

func TestWriteReadParquet(t *testing.T) {
	t.Parallel()

	docs, m := fixture()
	path := filepath.Join(t.TempDir(), "out", "matrix.parquet")

	require.NoError(t, WriteParquet(path, docs, m, vectorizer.SpaceTF))

	rows, err := ReadParquet(path)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "d1", rows[0].ID)
	assert.Equal(t, "moby", rows[0].Title)
	assert.Equal(t, "melville", rows[0].Author)
	assert.Equal(t, []float64{0.5, 0.25}, rows[0].Vector)
	assert.Equal(t, "austen", rows[1].Author)
}

func TestWriteParquetRowMismatch(t *testing.T) {
	t.Parallel()

	docs, m := fixture()
	path := filepath.Join(t.TempDir(), "matrix.parquet")
	assert.Error(t, WriteParquet(path, docs[:1], m, vectorizer.SpaceTF))
}

func TestWriteReadJSON(t *testing.T) {
	t.Parallel()

	docs, m := fixture()
	path := filepath.Join(t.TempDir(), "out", "matrix.json")

	require.NoError(t, WriteJSON(path, docs, m, vectorizer.SpaceTFIDF))

	result, err := ReadJSON(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"moby", "emma"}, result.Titles)
	assert.Equal(t, []string{"melville", "austen"}, result.Authors)
	assert.Equal(t, []string{"whale", "sea"}, result.Features)
	assert.Equal(t, vectorizer.SpaceTFIDF, result.VectorSpace)
	require.Len(t, result.Rows, 2)
	assert.Equal(t, 0.25, result.Rows[0][1])
}

func TestReadJSONMissing(t *testing.T) {
	t.Parallel()

	_, err := ReadJSON(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
