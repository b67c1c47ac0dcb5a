package ldl

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFactorizationStatsAndNNZ(t *testing.T) {
	a := buildArrowhead(t)
	f, err := NewFactorization(a, nil, Config{})
	require.NoError(t, err)

	stats := f.Stats()
	require.Equal(t, 5, stats.Size)
	require.Equal(t, f.NNZ(), stats.NNZ)
	require.Equal(t, 5, stats.PositiveInertia)
	require.Equal(t, 0, stats.RegularizedEntries)
}

func TestWriteStatusGatedByAnnotate(t *testing.T) {
	a, err := NewCSC(1, []int{0, 1}, []int{0}, []float64{4})
	require.NoError(t, err)

	silent, err := NewFactorization(a.Clone(), nil, Config{})
	require.NoError(t, err)
	var buf bytes.Buffer
	silent.WriteStatus(&buf)
	require.Empty(t, buf.String())

	loud, err := NewFactorization(a.Clone(), nil, Config{Annotate: 1})
	require.NoError(t, err)
	buf.Reset()
	loud.WriteStatus(&buf)
	require.NotEmpty(t, buf.String())
}

func TestFactorizationRejectsNilMatrix(t *testing.T) {
	_, err := NewFactorization(nil, nil, Config{})
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestFactorizationRejectsMismatchedDsigns(t *testing.T) {
	a := buildArrowhead(t)
	_, err := NewFactorization(a, nil, Config{Dsigns: []float64{1, 1}})
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestPatternMatchesNNZ(t *testing.T) {
	a := buildArrowhead(t)
	f, err := NewFactorization(a, nil, Config{})
	require.NoError(t, err)

	rows, cols := f.Pattern()
	require.Len(t, rows, f.NNZ())
	require.Len(t, cols, f.NNZ())
}
