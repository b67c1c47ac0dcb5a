package ldl

import "fmt"

// Config controls numeric factorization. It mirrors the teacher's
// Configuration struct: a plain value type with defaults applied by the
// constructor, not a functional-options API.
type Config struct {
	// Logical, when true, runs the fill-pattern computation without any
	// arithmetic: Lx, D and Dinv are all forced to 1 (§4.3, "Logical-only
	// mode"). Solve fails with ErrLogicalOnly on such a factorization.
	Logical bool

	// Dsigns, if non-nil, must have length n and hold only +1/-1 entries.
	// When present it enables dynamic regularization (§4.3 step 4).
	Dsigns []float64

	// RegularizeEps and RegularizeDelta are the epsilon/delta of the
	// regularization rule. Zero values are replaced by the spec's
	// defaults (1e-12, 1e-7) by NewFactorization.
	RegularizeEps   float64
	RegularizeDelta float64

	// Annotate, in the spirit of the teacher's Configuration.Annotate,
	// gates diagnostic output: 0 none, 1 the one-line WriteStatus summary,
	// 2 additionally a per-pivot trace on stdout during each factorization.
	Annotate int
}

// defaultConfig mirrors sparse.Create's inline defaultConfig literal.
func defaultConfig() Config {
	return Config{
		RegularizeEps:   1e-12,
		RegularizeDelta: 1e-7,
	}
}

// factorNumeric runs the row-wise sparse LDLt inner loop of §4.3 over
// f.triuA into f.ws, (re)writing Lx, D, Dinv and the positive-inertia and
// regularization counters. f.ws.Lp/Li's shape is fixed by symbolic
// analysis and is never reallocated here.
func (f *Factorization) factorNumeric() error {
	n := f.triuA.n
	w := f.ws
	triu := f.triuA
	etree := f.etree

	for c := 0; c < n; c++ {
		w.lNextSpaceInCol[c] = w.Lp[c]
	}
	for i := range w.marked {
		w.marked[i] = UnknownParent
	}
	for i := range w.yVals {
		w.yVals[i] = 0
	}

	f.positiveInertia = 0
	f.regularizedEntries = 0

	for k := 0; k < n; k++ {
		w.marked[k] = k
		top := n

		lo, hi := triu.Colptr[k], triu.Colptr[k+1]
		haveDiag := false
		var diagVal float64

		// Step 1 + seed: walk each off-diagonal stored entry up the
		// elimination tree, collecting the reach set, while seeding
		// yVals from the column's stored values.
		for p := lo; p < hi; p++ {
			i := triu.Rowval[p]
			v := triu.Nzval[p]
			if i == k {
				diagVal = v
				haveDiag = true
				continue
			}

			w.yVals[i] = v
			if w.marked[i] == k {
				continue
			}

			// The chain i, etree[i], etree[etree[i]], ... is strictly
			// increasing (etree[j] > j whenever defined) and is pushed
			// into elimBuffer in that ascending walking order, then
			// popped onto the shared yIdx stack from its far end so
			// that within any one chain, ascending order survives.
			length := 0
			j := i
			for w.marked[j] != k {
				w.elimBuffer[length] = j
				length++
				w.marked[j] = k
				next := etree[j]
				if next == UnknownParent {
					break
				}
				j = next
			}
			for length > 0 {
				length--
				top--
				w.yIdx[top] = w.elimBuffer[length]
			}
		}

		if !haveDiag {
			return fmt.Errorf("ldl: factor: column %d has no diagonal entry: %w", k, ErrMissingDiagonal)
		}

		var dk float64
		if f.logical {
			dk = 1
		} else {
			dk = diagVal
		}

		// Step 3: row assembly. The reach buffer occupies yIdx[top:n) in a
		// topological order of the elimination tree (every node comes after
		// its descendants in the reach, though separate chains need not be
		// in ascending column order overall); scanning it low-to-high guarantees any
		// ancestor c is fully reduced before it is used to update larger
		// ancestors (and, at the end, row k itself).
		for idx := top; idx < n; idx++ {
			c := w.yIdx[idx]
			nextSlot := w.lNextSpaceInCol[c]
			yc := w.yVals[c]

			if f.logical {
				w.Lx[nextSlot] = 1
			} else {
				for j := w.Lp[c]; j < nextSlot; j++ {
					w.yVals[w.Li[j]] -= w.Lx[j] * yc
				}
				lkc := yc * w.Dinv[c]
				w.Lx[nextSlot] = lkc
				dk -= yc * lkc
			}

			w.Li[nextSlot] = k
			w.lNextSpaceInCol[c] = nextSlot + 1
			w.yVals[c] = 0
		}

		// Step 4: dynamic regularization.
		if f.dsignsInternal != nil {
			sign := f.dsignsInternal[k]
			if sign*dk < f.cfg.RegularizeEps {
				dk = f.cfg.RegularizeDelta * sign
				f.regularizedEntries++
			}
		}

		if f.logical {
			dk = 1
		}

		// Step 5: pivot check.
		if dk == 0 {
			return fmt.Errorf("ldl: factor: zero pivot at column %d: %w", k, ErrSingular)
		}

		w.D[k] = dk
		if f.logical {
			w.Dinv[k] = 1
		} else {
			w.Dinv[k] = 1 / dk
		}
		if dk > 0 {
			f.positiveInertia++
		}

		if f.cfg.Annotate >= 2 {
			f.writeStep(k)
		}
	}

	return nil
}
