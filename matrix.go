package ldl

import "fmt"

// CSC is a compressed-sparse-column view of a square matrix. Colptr has
// length n+1 with Colptr[0] == 0; Rowval and Nzval run parallel over the
// Colptr[n] stored entries, column-major. Colptr and Rowval are treated as
// the matrix's shape and are never mutated in place once built; Nzval is
// the one mutable field (see UpdateValues, ScaleValues, OffsetValues).
type CSC struct {
	n      int
	Colptr []int
	Rowval []int
	Nzval  []float64
}

// NewCSC builds a CSC view over caller-supplied shape and value slices. The
// slices are not copied; the caller must not alias them with another live
// CSC if it intends to mutate Nzval independently.
func NewCSC(n int, colptr, rowval []int, nzval []float64) (*CSC, error) {
	if n <= 0 {
		return nil, fmt.Errorf("ldl: NewCSC: size %d must be positive: %w", n, ErrInvalidArgument)
	}
	if len(colptr) != n+1 {
		return nil, fmt.Errorf("ldl: NewCSC: colptr has length %d, want %d: %w", len(colptr), n+1, ErrInvalidArgument)
	}
	if colptr[0] != 0 {
		return nil, fmt.Errorf("ldl: NewCSC: colptr[0] = %d, want 0: %w", colptr[0], ErrInvalidArgument)
	}
	nnz := colptr[n]
	if len(rowval) != nnz || len(nzval) != nnz {
		return nil, fmt.Errorf("ldl: NewCSC: rowval/nzval length (%d,%d) does not match colptr[n]=%d: %w",
			len(rowval), len(nzval), nnz, ErrInvalidArgument)
	}
	for j := 0; j < n; j++ {
		if colptr[j+1] < colptr[j] {
			return nil, fmt.Errorf("ldl: NewCSC: colptr is not monotone at column %d: %w", j, ErrInvalidArgument)
		}
	}
	for _, r := range rowval {
		if r < 0 || r >= n {
			return nil, fmt.Errorf("ldl: NewCSC: row index %d out of range [0,%d): %w", r, n, ErrInvalidArgument)
		}
	}
	return &CSC{n: n, Colptr: colptr, Rowval: rowval, Nzval: nzval}, nil
}

// N returns the matrix order.
func (m *CSC) N() int { return m.n }

// NNZ returns the number of stored entries.
func (m *CSC) NNZ() int { return m.Colptr[m.n] }

// IsUpperTriangular reports whether every stored entry (rowval[k], j) of
// column j satisfies rowval[k] <= j and the diagonal, if present, is the
// last stored entry of its column.
func (m *CSC) IsUpperTriangular() bool {
	for j := 0; j < m.n; j++ {
		lo, hi := m.Colptr[j], m.Colptr[j+1]
		for k := lo; k < hi; k++ {
			if m.Rowval[k] > j {
				return false
			}
		}
		if hi > lo && m.Rowval[hi-1] != j {
			// a diagonal entry exists somewhere in the column but isn't last
			for k := lo; k < hi-1; k++ {
				if m.Rowval[k] == j {
					return false
				}
			}
		}
	}
	return true
}

// Triu returns the upper-triangular part of m in CSC form, re-triangulating
// if necessary, with the diagonal guaranteed to be the last stored entry of
// each column. The returned matrix never shares Nzval with m. sourceIdx[k]
// is the index into m.Nzval that triu.Nzval[k] came from. A column with no
// stored entries fails with ErrEmptyColumn, and a column with no diagonal
// entry fails with ErrMissingDiagonal.
func (m *CSC) Triu() (triu *CSC, sourceIdx []int, err error) {
	colptr := make([]int, m.n+1)
	var rowval []int
	var nzval []float64
	var source []int

	for j := 0; j < m.n; j++ {
		lo, hi := m.Colptr[j], m.Colptr[j+1]
		if hi == lo {
			return nil, nil, fmt.Errorf("ldl: Triu: column %d has no stored entries: %w", j, ErrEmptyColumn)
		}
		diagIdx := -1
		for k := lo; k < hi; k++ {
			if m.Rowval[k] == j {
				diagIdx = k
				continue
			}
			if m.Rowval[k] < j {
				rowval = append(rowval, m.Rowval[k])
				nzval = append(nzval, m.Nzval[k])
				source = append(source, k)
			}
		}
		if diagIdx < 0 {
			return nil, nil, fmt.Errorf("ldl: Triu: column %d has no diagonal entry: %w", j, ErrMissingDiagonal)
		}
		rowval = append(rowval, j)
		nzval = append(nzval, m.Nzval[diagIdx])
		source = append(source, diagIdx)
		colptr[j+1] = len(rowval)
	}

	return &CSC{n: m.n, Colptr: colptr, Rowval: rowval, Nzval: nzval}, source, nil
}

// Clone makes a deep copy, duplicating Colptr, Rowval and Nzval.
func (m *CSC) Clone() *CSC {
	colptr := append([]int(nil), m.Colptr...)
	rowval := append([]int(nil), m.Rowval...)
	nzval := append([]float64(nil), m.Nzval...)
	return &CSC{n: m.n, Colptr: colptr, Rowval: rowval, Nzval: nzval}
}
