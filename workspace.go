package ldl

// Workspace owns every buffer a Factorization needs for its lifetime: the
// factor arrays (Lp, Li, Lx, D, Dinv), written once structurally and
// rewritten numerically on every (re)factorization, and scratch vectors
// reused across calls so that Refactor and SolveInPlace never allocate
// (§5, Allocation discipline); Solve allocates only the vector it returns.
type Workspace struct {
	n int

	Lp []int     // length n+1, prefix-summed from Lnz
	Li []int     // length Lp[n]
	Lx []float64 // length Lp[n]
	D  []float64 // length n
	Dinv []float64 // length n

	// yVals/yIdx/elimBuffer/marked are the row-assembly scratch of §4.3.
	// yVals must read as all-zero on entry to each step k; the inner loop
	// resets the slots it touched back to zero as it drains them.
	yVals      []float64
	yIdx       []int
	elimBuffer []int
	marked     []int

	// lNextSpaceInCol[c] is the next unused slot in column c of L.
	lNextSpaceInCol []int

	// solveScratch is the permutation/solve working vector of §4.4 and §5
	// ("the solve routine uses a workspace vector ... as the scratch for
	// permutation").
	solveScratch []float64
}

// NewWorkspace allocates the factor shape from lnz (the elimination tree's
// per-column L nonzero counts) and every scratch buffer sized to n or
// nnz(L). All allocation for the life of a Factorization happens here.
func NewWorkspace(n int, lnz []int) *Workspace {
	lp := make([]int, n+1)
	for i := 0; i < n; i++ {
		lp[i+1] = lp[i] + lnz[i]
	}
	nnzL := lp[n]

	w := &Workspace{
		n:               n,
		Lp:              lp,
		Li:              make([]int, nnzL),
		Lx:              make([]float64, nnzL),
		D:               make([]float64, n),
		Dinv:            make([]float64, n),
		yVals:           make([]float64, n),
		yIdx:            make([]int, n),
		elimBuffer:      make([]int, n),
		marked:          make([]int, n),
		lNextSpaceInCol: make([]int, n),
		solveScratch:    make([]float64, n),
	}
	for i := range w.marked {
		w.marked[i] = UnknownParent
	}
	return w
}

// NNZ returns the number of stored entries in L.
func (w *Workspace) NNZ() int { return w.Lp[w.n] }
