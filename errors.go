package ldl

import "errors"

// Sentinel errors returned by the engine. Callers match with errors.Is;
// context is added by wrapping with fmt.Errorf("...: %w", ...) at the call
// site rather than by defining new error types.
var (
	// ErrInvalidArgument covers non-square matrices, a permutation that is
	// not a bijection on 0..n-1, and dimension mismatches on updates.
	ErrInvalidArgument = errors.New("ldl: invalid argument")

	// ErrNotUpperTriangular is returned when an input that is required to
	// be upper-triangular (after triu) still has a strictly lower entry,
	// or the elimination tree walk finds rowval[k] > j.
	ErrNotUpperTriangular = errors.New("ldl: matrix is not upper-triangular")

	// ErrMissingDiagonal is returned when a column has no stored diagonal
	// entry. (A diagonal stored elsewhere than last is moved last by
	// CSC.Triu, not rejected.)
	ErrMissingDiagonal = errors.New("ldl: column is missing its diagonal entry")

	// ErrEmptyColumn is returned when a column has zero stored entries.
	ErrEmptyColumn = errors.New("ldl: column has no stored entries")

	// ErrSingular is returned when a pivot evaluates to exactly zero
	// during numeric factorization.
	ErrSingular = errors.New("ldl: singular pivot")

	// ErrLogicalOnly is returned by Solve when called on a factorization
	// built with Config.Logical set.
	ErrLogicalOnly = errors.New("ldl: factorization is logical-only, no numeric factors")
)
