package main

import (
	"fmt"
	"os"

	"ldl"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// spy renders the sparsity pattern of a factor L as a PNG scatter plot -
// one point per stored entry, row against column - the same matrix the
// teacher's cmd/factor1 dumped with A.Print, but visual rather than
// textual. It is a standalone tool, not part of the ldl package.
func main() {
	colptr := []int{0, 1, 3, 5, 8, 10}
	rowval := []int{
		0,
		1, 2,
		1, 2,
		0, 3, 4,
		0, 4,
	}
	nzval := []float64{
		10,
		20, 1,
		1, 30,
		1, 40, 1,
		2, -5,
	}

	a, err := ldl.NewCSC(5, colptr, rowval, nzval)
	if err != nil {
		fmt.Fprintln(os.Stderr, "build:", err)
		os.Exit(1)
	}

	f, err := ldl.NewFactorization(a, nil, ldl.Config{})
	if err != nil {
		fmt.Fprintln(os.Stderr, "factor:", err)
		os.Exit(1)
	}

	rows, cols := f.Pattern()
	pts := make(plotter.XYs, len(rows))
	for i := range rows {
		// Row 0 at the top, matching how a matrix is conventionally
		// printed, by negating Y.
		pts[i] = plotter.XY{X: float64(cols[i]), Y: -float64(rows[i])}
	}

	p := plot.New()
	p.Title.Text = "L sparsity pattern"
	p.X.Label.Text = "column"
	p.Y.Label.Text = "row"

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		fmt.Fprintln(os.Stderr, "scatter:", err)
		os.Exit(1)
	}
	p.Add(scatter)

	out := "spy.png"
	if len(os.Args) > 1 {
		out = os.Args[1]
	}
	if err := p.Save(4*vg.Inch, 4*vg.Inch, out); err != nil {
		fmt.Fprintln(os.Stderr, "save:", err)
		os.Exit(1)
	}
	fmt.Println("wrote", out)
}
