package qr_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qrkit/matrix"
	"github.com/katalvlaran/qrkit/qr"
)

// ExampleSolve solves a small diagonal system end to end. The arithmetic
// is exact for this input, so the solution prints cleanly.
func ExampleSolve() {
	a, _ := matrix.NewDense(2, 2)
	_ = a.Set(0, 0, 2)
	_ = a.Set(1, 1, 4)

	x, _ := qr.Solve(a, []float64{2, 8})
	fmt.Println(x)

	// Output:
	// [1 2]
}

// ExampleFactor runs the classic stability experiment: factor the 10×10
// Hilbert matrix, solve for a known solution of all ones, and report how
// many digits survive κ₂ ≈ 10¹³.
func ExampleFactor() {
	const n = 10
	a, _ := matrix.Hilbert(n)
	x := matrix.Ones(n)
	b, _ := matrix.MatVec(a, x)

	v, r, _ := qr.Factor(a)
	y, _ := qr.ApplyQT(v, b)
	got, _ := qr.BackSubstitute(r, y)

	diff := make([]float64, n)
	for i := range diff {
		diff[i] = got[i] - x[i]
	}
	errNorm := matrix.VecNorm2(diff)

	kappa, _ := matrix.Cond2(a, matrix.DefaultCondTol, matrix.DefaultCondSweeps)
	fmt.Printf("log10(cond) ≈ %.0f\n", math.Log10(kappa))
	fmt.Printf("error stays finite and small: %v\n", errNorm < 0.5 && !math.IsNaN(errNorm))

	// Output:
	// log10(cond) ≈ 13
	// error stays finite and small: true
}
