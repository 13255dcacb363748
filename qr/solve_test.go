// Package qr_test contains unit tests for back-substitution and the
// end-to-end Ax = b driver, including the Hilbert stability scenario.
package qr_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/qrkit/matrix"
	"github.com/katalvlaran/qrkit/qr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackSubstitute_HandChecked(t *testing.T) {
	// R = [2 1; 0 4], y = (4, 8) → x = (1, 2)
	r := mustDense(t, 2, 2)
	mustSet(t, r, 0, 0, 2)
	mustSet(t, r, 0, 1, 1)
	mustSet(t, r, 1, 1, 4)

	x, err := qr.BackSubstitute(r, []float64{4, 8})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, x)
}

func TestBackSubstitute_IgnoresStrictLower(t *testing.T) {
	// Back-substitution must never read below the diagonal: garbage there
	// cannot change the answer.
	r := mustDense(t, 2, 2)
	mustSet(t, r, 0, 0, 2)
	mustSet(t, r, 0, 1, 1)
	mustSet(t, r, 1, 1, 4)
	mustSet(t, r, 1, 0, 1e300)

	x, err := qr.BackSubstitute(r, []float64{4, 8})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, x)
}

func TestBackSubstitute_ZeroPivot(t *testing.T) {
	r := mustDense(t, 2, 2)
	mustSet(t, r, 0, 0, 2)
	// r[1,1] stays exactly zero

	_, err := qr.BackSubstitute(r, []float64{1, 1})
	assert.ErrorIs(t, err, qr.ErrSingular)
}

func TestBackSubstitute_TinyPivotIsNotAnError(t *testing.T) {
	// Near-singularity degrades accuracy; it must never fail.
	r := mustDense(t, 2, 2)
	mustSet(t, r, 0, 0, 1)
	mustSet(t, r, 1, 1, 1e-300)

	x, err := qr.BackSubstitute(r, []float64{1, 1})
	require.NoError(t, err)
	assert.False(t, math.IsNaN(x[1]))
	assert.False(t, math.IsInf(x[1], 0))
}

func TestBackSubstitute_Errors(t *testing.T) {
	r := mustDense(t, 2, 2)

	_, err := qr.BackSubstitute(nil, []float64{1, 1})
	assert.ErrorIs(t, err, qr.ErrNilMatrix)

	_, err = qr.BackSubstitute(r, []float64{1})
	assert.ErrorIs(t, err, qr.ErrDimensionMismatch)

	wide := mustDense(t, 2, 3)
	_, err = qr.BackSubstitute(wide, []float64{1, 1, 1})
	assert.ErrorIs(t, err, qr.ErrTooFewRows)
}

func TestSolve_Identity(t *testing.T) {
	a, err := matrix.Identity(3)
	require.NoError(t, err)

	b := []float64{5, -2, 1}
	x, err := qr.Solve(a, b)
	require.NoError(t, err)
	assert.Equal(t, b, x)
}

func TestSolve_WellConditioned(t *testing.T) {
	// Build b = A·x for a known x and a benign matrix; recovery should be
	// accurate to nearly full precision.
	const n = 6
	a := randomSquare(t, n, 17)
	for i := 0; i < n; i++ { // diagonal dominance keeps κ small
		mustSet(t, a, i, i, mustAt(t, a, i, i)+float64(n))
	}

	want := make([]float64, n)
	for i := range want {
		want[i] = float64(i + 1)
	}
	b, err := matrix.MatVec(a, want)
	require.NoError(t, err)

	got, err := qr.Solve(a, b)
	require.NoError(t, err)
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-12)
	}
}

// TestSolve_Hilbert10Stability — the headline experiment. κ₂(H₁₀) ≈ 1e13,
// so double precision can keep only ~16−13 = 3 digits: the error norm
// lands around 1e-3..1e-2 and, crucially, never diverges or degenerates
// into NaN/Inf.
func TestSolve_Hilbert10Stability(t *testing.T) {
	const n = 10
	a, err := matrix.Hilbert(n)
	require.NoError(t, err)

	want := matrix.Ones(n)
	b, err := matrix.MatVec(a, want)
	require.NoError(t, err)

	got, err := qr.Solve(a, b)
	require.NoError(t, err)

	diff := make([]float64, n)
	for i := range diff {
		diff[i] = got[i] - want[i]
		assert.False(t, math.IsNaN(got[i]), "solution must stay finite")
		assert.False(t, math.IsInf(got[i], 0), "solution must stay finite")
	}
	errNorm := matrix.VecNorm2(diff)

	// Backward stability predicts ~3 surviving digits, an error norm of
	// order 1e-3..1e-2. The bound leaves headroom for platform rounding
	// differences while still rejecting a solve that lost more digits
	// than conditioning accounts for.
	assert.Less(t, errNorm, 0.05, "error norm %g exceeds the predicted digit-loss band", errNorm)
	assert.Greater(t, errNorm, 1e-9, "error norm %g is implausibly small for κ≈1e13", errNorm)
}

// TestSolve_MultipleRHS — one factorization serves many right-hand sides.
func TestSolve_MultipleRHS(t *testing.T) {
	const n = 5
	a := randomSquare(t, n, 71)
	for i := 0; i < n; i++ {
		mustSet(t, a, i, i, mustAt(t, a, i, i)+float64(n))
	}

	v, r, err := qr.Factor(a)
	require.NoError(t, err)

	for _, seedShift := range []float64{1, 2, 3} {
		want := make([]float64, n)
		for i := range want {
			want[i] = seedShift * float64(i+1)
		}
		b, err := matrix.MatVec(a, want)
		require.NoError(t, err)

		y, err := qr.ApplyQT(v, b)
		require.NoError(t, err)
		got, err := qr.BackSubstitute(r, y)
		require.NoError(t, err)

		for i := range want {
			assert.InDelta(t, want[i], got[i], 1e-12, "rhs %v", seedShift)
		}
	}
}

func TestSolve_ShapeErrors(t *testing.T) {
	wide := mustDense(t, 2, 3)
	_, err := qr.Solve(wide, []float64{1, 1})
	assert.ErrorIs(t, err, qr.ErrTooFewRows)

	sq := randomSquare(t, 3, 1)
	_, err = qr.Solve(sq, []float64{1, 1})
	assert.ErrorIs(t, err, qr.ErrDimensionMismatch)
}
