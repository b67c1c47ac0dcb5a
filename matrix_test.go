package ldl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewCSCValidatesShape(t *testing.T) {
	cases := []struct {
		name    string
		n       int
		colptr  []int
		rowval  []int
		nzval   []float64
		wantErr error
	}{
		{
			name:    "non-positive size",
			n:       0,
			colptr:  []int{0},
			wantErr: ErrInvalidArgument,
		},
		{
			name:    "colptr wrong length",
			n:       2,
			colptr:  []int{0, 1},
			rowval:  []int{0},
			nzval:   []float64{1},
			wantErr: ErrInvalidArgument,
		},
		{
			name:    "colptr[0] nonzero",
			n:       1,
			colptr:  []int{1, 2},
			rowval:  []int{0},
			nzval:   []float64{1},
			wantErr: ErrInvalidArgument,
		},
		{
			name:    "row out of range",
			n:       1,
			colptr:  []int{0, 1},
			rowval:  []int{5},
			nzval:   []float64{1},
			wantErr: ErrInvalidArgument,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewCSC(tc.n, tc.colptr, tc.rowval, tc.nzval)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestNewCSCAccepts2x2(t *testing.T) {
	m, err := NewCSC(2, []int{0, 1, 3}, []int{0, 0, 1}, []float64{4, 1, 3})
	require.NoError(t, err)
	require.Equal(t, 2, m.N())
	require.Equal(t, 3, m.NNZ())
	require.True(t, m.IsUpperTriangular())
}

func TestTriuReordersDiagonalLast(t *testing.T) {
	// column 0 stores its diagonal first, then a strictly-lower entry that
	// Triu must drop since only the upper triangle belongs in triuA.
	m, err := NewCSC(2, []int{0, 2, 3}, []int{0, 1, 1}, []float64{4, 99, 3})
	require.NoError(t, err)

	triu, srcIdx, err := m.Triu()
	require.NoError(t, err)
	require.True(t, triu.IsUpperTriangular())
	require.Equal(t, 2, triu.NNZ())
	require.Len(t, srcIdx, 2)
}

func TestTriuEmptyColumn(t *testing.T) {
	m := &CSC{n: 1, Colptr: []int{0, 0}, Rowval: nil, Nzval: nil}
	_, _, err := m.Triu()
	require.ErrorIs(t, err, ErrEmptyColumn)
}

func TestCSCClone(t *testing.T) {
	m, err := NewCSC(2, []int{0, 1, 3}, []int{0, 0, 1}, []float64{4, 1, 3})
	require.NoError(t, err)
	c := m.Clone()
	c.Nzval[0] = 999
	require.NotEqual(t, m.Nzval[0], c.Nzval[0])
}
