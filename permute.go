package ldl

import "fmt"

// Permute computes P = perm * A * perm^T restricted to its upper triangle,
// given iperm (the inverse of the caller's permutation) and A in
// upper-triangular CSC form. It follows the two-pass counting algorithm of
// Davis, Direct Methods for Sparse Linear Systems: a count pass fixes the
// column pointers of P, then a fill pass drops each entry of A into its
// destination column. AtoPAPt[k] is the index in P.Nzval that A.Nzval[k]
// now occupies; it is a bijection onto 0..nnz-1 (§8, property 5).
//
// Columns of the result are not sorted by row index - correctness of the
// later numeric factorization depends only on each (i, c) being visited
// once, not on ordering within a column.
func Permute(a *CSC, iperm []int) (p *CSC, atoPAPt []int, err error) {
	n := a.n
	if len(iperm) != n {
		return nil, nil, fmt.Errorf("ldl: Permute: iperm has length %d, want %d: %w", len(iperm), n, ErrInvalidArgument)
	}
	seen := make([]bool, n)
	for _, v := range iperm {
		if v < 0 || v >= n {
			return nil, nil, fmt.Errorf("ldl: Permute: iperm entry %d out of range [0,%d): %w", v, n, ErrInvalidArgument)
		}
		if seen[v] {
			return nil, nil, fmt.Errorf("ldl: Permute: iperm is not a permutation (duplicate %d): %w", v, ErrInvalidArgument)
		}
		seen[v] = true
	}

	nnz := a.NNZ()

	// Count pass: num_entries[c] becomes the number of stored entries
	// landing in destination column c.
	numEntries := make([]int, n)
	for j := 0; j < n; j++ {
		lo, hi := a.Colptr[j], a.Colptr[j+1]
		for k := lo; k < hi; k++ {
			rowA := a.Rowval[k]
			if rowA > j {
				return nil, nil, fmt.Errorf("ldl: Permute: input is not upper-triangular at (%d,%d): %w", rowA, j, ErrNotUpperTriangular)
			}
			rowP, colP := iperm[rowA], iperm[j]
			c := max(rowP, colP)
			numEntries[c]++
		}
	}

	// Column pointer pass: prefix-sum into Pc, then copy Pc[0:n] into a
	// separate running row_starts array.
	pc := make([]int, n+1)
	for c := 0; c < n; c++ {
		pc[c+1] = pc[c] + numEntries[c]
	}
	rowStarts := make([]int, n)
	copy(rowStarts, pc[:n])

	pr := make([]int, nnz)
	pv := make([]float64, nnz)
	atoPAPt = make([]int, nnz)

	// Fill pass: revisit A's entries in the same column-major order.
	for j := 0; j < n; j++ {
		lo, hi := a.Colptr[j], a.Colptr[j+1]
		for k := lo; k < hi; k++ {
			rowA := a.Rowval[k]
			rowP, colP := iperm[rowA], iperm[j]
			c := max(rowP, colP)
			dst := rowStarts[c]
			rowStarts[c]++
			pr[dst] = min(rowP, colP)
			pv[dst] = a.Nzval[k]
			atoPAPt[k] = dst
		}
	}

	p = &CSC{n: n, Colptr: pc, Rowval: pr, Nzval: pv}
	return p, atoPAPt, nil
}

// IdentityMap returns the identity AtoPAPt map of length nnz (m[i] = i).
// NewFactorization does not call it: with no permutation it builds its
// entry map by inverting the source-index map returned by CSC.Triu.
func IdentityMap(nnz int) []int {
	m := make([]int, nnz)
	for i := range m {
		m[i] = i
	}
	return m
}
