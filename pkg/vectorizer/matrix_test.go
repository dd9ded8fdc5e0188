package vectorizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatrixAccessors(t *testing.T) {
	t.Parallel()

	m := &Matrix{
		Rows:  [][]float64{{1, 0}, {0, 1}, {1, 1}},
		Terms: []string{"a", "b"},
	}

	rows, cols := m.Shape()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 2, cols)

	assert.Equal(t, []float64{0, 1}, m.Row(1))
	assert.Nil(t, m.Row(-1))
	assert.Nil(t, m.Row(3))

	assert.Equal(t, []float64{1, 0, 1}, m.Column(0))
	assert.Nil(t, m.Column(2))
}

func TestMatrixSimilarity(t *testing.T) {
	t.Parallel()

	m := &Matrix{
		Rows:  [][]float64{{1, 0}, {0, 1}, {1, 0}},
		Terms: []string{"a", "b"},
	}

	assert.InDelta(t, 1.0, m.Similarity(0, 2), 1e-9)
	assert.InDelta(t, 0.0, m.Similarity(0, 1), 1e-9)
	assert.Equal(t, 0.0, m.Similarity(0, 5), "out of range rows compare as zero")
}

func TestModelRoundTrip(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.VectorSpace = SpaceTFIDF
	cfg.MaxFeatures = 0
	v, err := New(cfg, nil)
	require.NoError(t, err)
	require.NoError(t, v.Fit(sampleDocs()))

	model, err := v.Model()
	require.NoError(t, err)

	data, err := model.MarshalBinary()
	require.NoError(t, err)

	var restored Model
	require.NoError(t, restored.UnmarshalBinary(data))

	v2, err := FromModel(&restored)
	require.NoError(t, err)

	want, err := v.Transform(sampleDocs())
	require.NoError(t, err)
	got, err := v2.Transform(sampleDocs())
	require.NoError(t, err)

	assert.Equal(t, want.Terms, got.Terms)
	require.Equal(t, len(want.Rows), len(got.Rows))
	for i := range want.Rows {
		for j := range want.Rows[i] {
			assert.InDelta(t, want.Rows[i][j], got.Rows[i][j], 1e-12)
		}
	}
}

func TestModelBeforeFit(t *testing.T) {
	t.Parallel()

	v, err := New(DefaultConfig(), nil)
	require.NoError(t, err)
	_, err = v.Model()
	assert.ErrorIs(t, err, ErrNotFitted)
}
