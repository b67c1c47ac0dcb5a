package ldl

import "golang.org/x/exp/constraints"

// min and max are kept as small generic helpers in the teacher's own style
// (the original utils.go's min[T constraints.Ordered]) rather than reached
// for from the standard library's slices package. Used by the symmetric
// permutation's max(rowP, colP) destination-column and min(rowP, colP)
// destination-row rules.

func min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}
