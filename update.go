package ldl

import "fmt"

// UpdateValues overwrites the values at the given original (pre-permutation)
// Nzval indices, translating each through AtoPAPt into f.triuA.Nzval. It
// does not refactor; call Refactor afterward. Indices that map to -1
// (entries Triu dropped as redundant lower-triangular duplicates) are
// rejected rather than silently ignored.
func (f *Factorization) UpdateValues(indices []int, values []float64) error {
	if len(indices) != len(values) {
		return fmt.Errorf("ldl: UpdateValues: indices/values length mismatch (%d,%d): %w", len(indices), len(values), ErrInvalidArgument)
	}
	for k, idx := range indices {
		dst, err := f.translate(idx)
		if err != nil {
			return err
		}
		f.triuA.Nzval[dst] = values[k]
	}
	return nil
}

// ScaleValues multiplies the values at the given original Nzval indices by
// the supplied scale factors.
func (f *Factorization) ScaleValues(indices []int, scales []float64) error {
	if len(indices) != len(scales) {
		return fmt.Errorf("ldl: ScaleValues: indices/scales length mismatch (%d,%d): %w", len(indices), len(scales), ErrInvalidArgument)
	}
	for k, idx := range indices {
		dst, err := f.translate(idx)
		if err != nil {
			return err
		}
		f.triuA.Nzval[dst] *= scales[k]
	}
	return nil
}

// OffsetValues adds the supplied deltas to the values at the given original
// Nzval indices.
func (f *Factorization) OffsetValues(indices []int, deltas []float64) error {
	if len(indices) != len(deltas) {
		return fmt.Errorf("ldl: OffsetValues: indices/deltas length mismatch (%d,%d): %w", len(indices), len(deltas), ErrInvalidArgument)
	}
	for k, idx := range indices {
		dst, err := f.translate(idx)
		if err != nil {
			return err
		}
		f.triuA.Nzval[dst] += deltas[k]
	}
	return nil
}

// UpdateDiagonal overwrites the diagonal entries at original rows/columns
// rows with values. Every entry in rows must name a row that has a stored
// diagonal; this is a convenience over UpdateValues for callers that only
// track row indices, not raw Nzval offsets.
func (f *Factorization) UpdateDiagonal(rows []int, values []float64) error {
	if len(rows) != len(values) {
		return fmt.Errorf("ldl: UpdateDiagonal: rows/values length mismatch (%d,%d): %w", len(rows), len(values), ErrInvalidArgument)
	}
	for k, row := range rows {
		col := row
		if f.iperm != nil {
			col = f.iperm[row]
		}
		lo, hi := f.triuA.Colptr[col], f.triuA.Colptr[col+1]
		found := false
		for p := lo; p < hi; p++ {
			if f.triuA.Rowval[p] == col {
				f.triuA.Nzval[p] = values[k]
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("ldl: UpdateDiagonal: row %d has no stored diagonal entry: %w", row, ErrMissingDiagonal)
		}
	}
	return nil
}

// translate maps an original Nzval index through AtoPAPt, rejecting
// out-of-range indices and indices that Triu dropped.
func (f *Factorization) translate(origIdx int) (int, error) {
	if origIdx < 0 || origIdx >= len(f.atoPAPt) {
		return 0, fmt.Errorf("ldl: update: index %d out of range [0,%d): %w", origIdx, len(f.atoPAPt), ErrInvalidArgument)
	}
	dst := f.atoPAPt[origIdx]
	if dst < 0 {
		return 0, fmt.Errorf("ldl: update: index %d names an entry not retained by Triu: %w", origIdx, ErrInvalidArgument)
	}
	return dst, nil
}
