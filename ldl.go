package ldl

import (
	"fmt"
	"io"
)

// Factorization is the external handle of §6: it owns the permuted
// upper-triangular matrix, the elimination tree, the factor workspace, and
// enough bookkeeping to support Refactor and the Update* family without
// redoing symbolic analysis.
type Factorization struct {
	n int

	triuA *CSC
	ws    *Workspace
	etree []int

	// perm[newCol] = oldCol, iperm[oldCol] = newCol. Both are nil when the
	// factorization was built with no permutation, in which case the
	// internal column order is the input order.
	perm  []int
	iperm []int

	// atoPAPt[m] is the index into triuA.Nzval that the m'th entry of the
	// caller's original (pre-permutation, pre-triu-extraction) Nzval now
	// occupies, or -1 if that entry was never stored (a redundant
	// lower-triangular duplicate dropped by CSC.Triu). Update* translates
	// through this map exclusively (§4.5, §8 property 5).
	atoPAPt []int

	cfg            Config
	logical        bool
	dsignsInternal []float64

	positiveInertia    int
	regularizedEntries int
}

// NewFactorization runs symbolic analysis and the first numeric
// factorization of a (an n-by-n CSC matrix whose upper triangle, diagonal
// included, defines the symmetric matrix - the lower triangle is derived by
// symmetry and need not be present; strictly lower entries that are stored
// are dropped by CSC.Triu). iperm, if non-nil, maps each original column/row index to its
// position in the internally factored, permuted matrix; pass nil to
// factor in the input's own order.
func NewFactorization(a *CSC, iperm []int, cfg Config) (*Factorization, error) {
	if a == nil {
		return nil, fmt.Errorf("ldl: NewFactorization: nil matrix: %w", ErrInvalidArgument)
	}
	n := a.n

	triu, srcIdx, err := a.Triu()
	if err != nil {
		return nil, fmt.Errorf("ldl: NewFactorization: %w", err)
	}

	var finalA *CSC
	var perm []int
	var atoPAPt []int

	if iperm == nil {
		finalA = triu
		atoPAPt = invertIndexMap(srcIdx, len(a.Nzval))
	} else {
		permuted, triuToPAPt, err := Permute(triu, iperm)
		if err != nil {
			return nil, fmt.Errorf("ldl: NewFactorization: %w", err)
		}
		finalA = permuted

		perm = make([]int, n)
		for old, nw := range iperm {
			perm[nw] = old
		}

		// srcIdx[triuIdx] = origIdx, triuToPAPt[triuIdx] = dst; compose to
		// get atoPAPt[origIdx] = dst directly.
		atoPAPt = make([]int, len(a.Nzval))
		for i := range atoPAPt {
			atoPAPt[i] = -1
		}
		for triuIdx, origIdx := range srcIdx {
			atoPAPt[origIdx] = triuToPAPt[triuIdx]
		}
	}

	etree, lnz, err := EliminationTree(finalA)
	if err != nil {
		return nil, fmt.Errorf("ldl: NewFactorization: %w", err)
	}

	var dsignsInternal []float64
	if cfg.Dsigns != nil {
		if len(cfg.Dsigns) != n {
			return nil, fmt.Errorf("ldl: NewFactorization: Dsigns has length %d, want %d: %w", len(cfg.Dsigns), n, ErrInvalidArgument)
		}
		dsignsInternal = make([]float64, n)
		for k := range dsignsInternal {
			if perm != nil {
				dsignsInternal[k] = cfg.Dsigns[perm[k]]
			} else {
				dsignsInternal[k] = cfg.Dsigns[k]
			}
		}
	}

	if cfg.RegularizeEps == 0 {
		cfg.RegularizeEps = defaultConfig().RegularizeEps
	}
	if cfg.RegularizeDelta == 0 {
		cfg.RegularizeDelta = defaultConfig().RegularizeDelta
	}

	f := &Factorization{
		n:              n,
		triuA:          finalA,
		ws:             NewWorkspace(n, lnz),
		etree:          etree,
		perm:           perm,
		iperm:          iperm,
		atoPAPt:        atoPAPt,
		cfg:            cfg,
		logical:        cfg.Logical,
		dsignsInternal: dsignsInternal,
	}

	if err := f.factorNumeric(); err != nil {
		return nil, err
	}
	return f, nil
}

// invertIndexMap builds m such that m[srcIdx[k]] = k for every k, with -1
// at positions never hit; domainLen is the length of the returned map.
func invertIndexMap(srcIdx []int, domainLen int) []int {
	m := make([]int, domainLen)
	for i := range m {
		m[i] = -1
	}
	for k, orig := range srcIdx {
		m[orig] = k
	}
	return m
}

// Refactor reruns numeric factorization over the existing symbolic
// skeleton and permuted triuA.Nzval (already updated by Update*, or by a
// caller mutating the original matrix and reapplying UpdateValues). It
// never reallocates Lp/Li.
func (f *Factorization) Refactor() error {
	return f.factorNumeric()
}

// NNZ returns the number of stored entries in L.
func (f *Factorization) NNZ() int { return f.ws.NNZ() }

// PositiveInertia returns the number of positive pivots from the most
// recent numeric factorization (§6).
func (f *Factorization) PositiveInertia() int { return f.positiveInertia }

// RegularizedEntries returns the number of pivots replaced by
// regularization during the most recent numeric factorization (§6).
func (f *Factorization) RegularizedEntries() int { return f.regularizedEntries }

// Pattern returns the (row, column) coordinates of every stored entry of
// L, in Lp/Li's own column-major order. It exists for diagnostic tools
// such as cmd/spy that want to draw the factor's fill pattern without
// reaching into package-private fields.
func (f *Factorization) Pattern() (rows, cols []int) {
	nnz := f.NNZ()
	rows = make([]int, 0, nnz)
	cols = make([]int, 0, nnz)
	for c := 0; c < f.n; c++ {
		for p := f.ws.Lp[c]; p < f.ws.Lp[c+1]; p++ {
			rows = append(rows, f.ws.Li[p])
			cols = append(cols, c)
		}
	}
	return rows, cols
}

// Stats bundles the bookkeeping an external caller of a quasidefinite
// solver typically wants after a factorization: inertia and regularization
// counts alongside the fill.
type Stats struct {
	Size               int
	NNZ                int
	PositiveInertia    int
	RegularizedEntries int
}

// Stats reports the counters accumulated by the most recent numeric
// factorization (NewFactorization or Refactor).
func (f *Factorization) Stats() Stats {
	return Stats{
		Size:               f.n,
		NNZ:                f.NNZ(),
		PositiveInertia:    f.positiveInertia,
		RegularizedEntries: f.regularizedEntries,
	}
}

// WriteStatus writes a short human-readable factorization summary to w,
// gated by cfg.Annotate the way the teacher's Configuration.Annotate gates
// sparse.Matrix debug output. It is silent when Annotate is 0.
func (f *Factorization) WriteStatus(w io.Writer) {
	if f.cfg.Annotate <= 0 {
		return
	}
	fmt.Fprintf(w, "ldl: n=%d nnz(L)=%d positive=%d negative=%d regularized=%d logical=%v\n",
		f.n, f.NNZ(), f.positiveInertia, f.n-f.positiveInertia, f.regularizedEntries, f.logical)
}

// writeStep is the per-pivot trace used when Annotate>=2; it intentionally
// writes to stdout like the teacher's own Annotate-gated trace calls
// rather than threading a writer through factorNumeric.
func (f *Factorization) writeStep(k int) {
	fmt.Printf("ldl: column %d: d=%g\n", k, f.ws.D[k])
}
