package ldl

import "fmt"

// UnknownParent is the elimination-tree sentinel for root columns. It is
// never a valid column index.
const UnknownParent = -1

// EliminationTree computes the parent array and per-column strict
// sub-diagonal nonzero count of L for an upper-triangular CSC matrix a,
// via the skeleton-traversal algorithm of Davis, Direct Methods for Sparse
// Linear Systems (§4.2). work ensures each ancestor is charged at most
// once per column.
func EliminationTree(a *CSC) (etree []int, lnz []int, err error) {
	n := a.n
	etree = make([]int, n)
	lnz = make([]int, n)
	work := make([]int, n)
	for i := range etree {
		etree[i] = UnknownParent
	}

	for k := 0; k < n; k++ {
		work[k] = k

		lo, hi := a.Colptr[k], a.Colptr[k+1]
		if hi == lo {
			return nil, nil, fmt.Errorf("ldl: EliminationTree: column %d has no stored entries: %w", k, ErrEmptyColumn)
		}
		for p := lo; p < hi; p++ {
			i := a.Rowval[p]
			if i > k {
				return nil, nil, fmt.Errorf("ldl: EliminationTree: entry (%d,%d) is below the diagonal: %w", i, k, ErrNotUpperTriangular)
			}
			for ; work[i] != k; i = etree[i] {
				if etree[i] == UnknownParent {
					etree[i] = k
				}
				lnz[i]++
				work[i] = k
			}
		}
	}

	return etree, lnz, nil
}
