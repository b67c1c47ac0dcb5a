package ldl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSolveRoundTripsWithPermutation(t *testing.T) {
	// S6: perm = (2,0,1) explicitly vs. no permutation, same A and b.
	colptr := []int{0, 1, 3, 6}
	rowval := []int{0, 0, 1, 0, 1, 2}
	nzval := []float64{4, 1, 3, 1, 1, 5}
	a, err := NewCSC(3, colptr, rowval, nzval)
	require.NoError(t, err)

	b := []float64{1, 2, 3}

	plain, err := NewFactorization(a.Clone(), nil, Config{})
	require.NoError(t, err)
	xPlain, err := plain.Solve(b)
	require.NoError(t, err)

	// iperm: old index i -> new index iperm[i]. perm = (2,0,1) means
	// new-position 0 holds old row 2, new-position 1 holds old row 0,
	// new-position 2 holds old row 1, so iperm[2]=0, iperm[0]=1, iperm[1]=2.
	iperm := []int{1, 2, 0}
	permd, err := NewFactorization(a.Clone(), iperm, Config{})
	require.NoError(t, err)
	xPermd, err := permd.Solve(b)
	require.NoError(t, err)

	for i := range xPlain {
		require.InDelta(t, xPlain[i], xPermd[i], 1e-9)
	}
}

func TestSolveDoesNotMutateInput(t *testing.T) {
	a, err := NewCSC(2, []int{0, 1, 3}, []int{0, 0, 1}, []float64{4, 1, 3})
	require.NoError(t, err)
	f, err := NewFactorization(a, nil, Config{})
	require.NoError(t, err)

	b := []float64{1, 2}
	_, err = f.Solve(b)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2}, b)
}

func TestSolveInPlace(t *testing.T) {
	a, err := NewCSC(2, []int{0, 1, 3}, []int{0, 0, 1}, []float64{4, 1, 3})
	require.NoError(t, err)
	f, err := NewFactorization(a, nil, Config{})
	require.NoError(t, err)

	b := []float64{1, 2}
	require.NoError(t, f.SolveInPlace(b))
	require.InDelta(t, 1.0/11.0, b[0], 1e-10)
	require.InDelta(t, 7.0/11.0, b[1], 1e-10)
}

func TestSolveWrongLength(t *testing.T) {
	a, err := NewCSC(2, []int{0, 1, 3}, []int{0, 0, 1}, []float64{4, 1, 3})
	require.NoError(t, err)
	f, err := NewFactorization(a, nil, Config{})
	require.NoError(t, err)

	_, err = f.Solve([]float64{1, 2, 3})
	require.ErrorIs(t, err, ErrInvalidArgument)
}
