package ldl

import "fmt"

// Solve returns x solving A x = b, where A is the matrix this Factorization
// was built from. b is read, not mutated; the permutation, forward solve,
// diagonal scale and backward solve of §4.4 all run through
// f.ws.solveScratch.
func (f *Factorization) Solve(b []float64) ([]float64, error) {
	x := make([]float64, len(b))
	copy(x, b)
	if err := f.SolveInPlace(x); err != nil {
		return nil, err
	}
	return x, nil
}

// SolveInPlace solves A x = b with b overwritten by x. It fails with
// ErrLogicalOnly if the factorization never ran the numeric stage.
func (f *Factorization) SolveInPlace(b []float64) error {
	if f.logical {
		return fmt.Errorf("ldl: Solve: %w", ErrLogicalOnly)
	}
	if len(b) != f.n {
		return fmt.Errorf("ldl: Solve: b has length %d, want %d: %w", len(b), f.n, ErrInvalidArgument)
	}

	scratch := f.ws.solveScratch
	if f.iperm != nil {
		for i := 0; i < f.n; i++ {
			scratch[f.iperm[i]] = b[i]
		}
	} else {
		copy(scratch, b)
	}

	lsolve(f.ws, scratch)
	dsolve(f.ws, scratch)
	ltsolve(f.ws, scratch)

	if f.iperm != nil {
		for i := 0; i < f.n; i++ {
			b[i] = scratch[f.iperm[i]]
		}
	} else {
		copy(b, scratch)
	}
	return nil
}

// lsolve overwrites x with L^-1 x, unit lower triangular, column by column
// in increasing order, using the same Lp/Li/Lx shape factorNumeric fills.
func lsolve(w *Workspace, x []float64) {
	for j := 0; j < w.n; j++ {
		xj := x[j]
		if xj == 0 {
			continue
		}
		for p := w.Lp[j]; p < w.Lp[j+1]; p++ {
			x[w.Li[p]] -= w.Lx[p] * xj
		}
	}
}

// ltsolve overwrites x with L^-T x, unit upper triangular, column by column
// in decreasing order.
func ltsolve(w *Workspace, x []float64) {
	for j := w.n - 1; j >= 0; j-- {
		xj := x[j]
		for p := w.Lp[j]; p < w.Lp[j+1]; p++ {
			xj -= w.Lx[p] * x[w.Li[p]]
		}
		x[j] = xj
	}
}

// dsolve overwrites x with D^-1 x.
func dsolve(w *Workspace, x []float64) {
	for j := 0; j < w.n; j++ {
		x[j] *= w.Dinv[j]
	}
}
