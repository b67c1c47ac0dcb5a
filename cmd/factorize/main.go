package main

import (
	"fmt"
	"os"

	"ldl"
)

// A simple end-to-end demo in the style of the teacher's cmd/factor1:
// build a small quasidefinite matrix by hand, factor it, and solve a
// right-hand side.
func main() {
	// A 5x5 symmetric matrix, upper triangle stored, arrowhead-ish
	// fill pattern (see the spec's S4 example):
	//   [ 10  0  0  1  2 ]
	//   [  0 20  1  0  0 ]
	//   [  0  1 30  0  0 ]
	//   [  1  0  0 40  1 ]
	//   [  2  0  0  1 -5 ]
	colptr := []int{0, 1, 2, 4, 6, 9}
	rowval := []int{
		0,
		1,
		1, 2,
		0, 3,
		0, 3, 4,
	}
	nzval := []float64{
		10,
		20,
		1, 30,
		1, 40,
		2, 1, -5,
	}

	a, err := ldl.NewCSC(5, colptr, rowval, nzval)
	if err != nil {
		fmt.Fprintln(os.Stderr, "build:", err)
		os.Exit(1)
	}

	dsigns := []float64{1, 1, 1, 1, -1}
	f, err := ldl.NewFactorization(a, nil, ldl.Config{
		Dsigns:   dsigns,
		Annotate: 1,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "factor:", err)
		os.Exit(1)
	}
	f.WriteStatus(os.Stdout)

	b := []float64{1, 2, 3, 4, 5}
	x, err := f.Solve(b)
	if err != nil {
		fmt.Fprintln(os.Stderr, "solve:", err)
		os.Exit(1)
	}

	fmt.Printf("x = %v\n", x)

	stats := f.Stats()
	fmt.Printf("nnz(L)=%d positive=%d regularized=%d\n", stats.NNZ, stats.PositiveInertia, stats.RegularizedEntries)
}
