// Package matrix_test contains unit tests for the Cond2 estimator.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/qrkit/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCond2_Identity(t *testing.T) {
	m, err := matrix.Identity(4)
	require.NoError(t, err)

	kappa, err := matrix.Cond2(m, matrix.DefaultCondTol, matrix.DefaultCondSweeps)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, kappa, 1e-12, "identity has κ₂ = 1")
}

func TestCond2_Diagonal(t *testing.T) {
	// κ₂ of a diagonal matrix is max|d|/min|d|, exactly.
	m := MustDense(t, 3, 3)
	MustSet(t, m, 0, 0, 2)
	MustSet(t, m, 1, 1, 1000)
	MustSet(t, m, 2, 2, 0.5)

	kappa, err := matrix.Cond2(m, matrix.DefaultCondTol, matrix.DefaultCondSweeps)
	require.NoError(t, err)
	assert.InEpsilon(t, 2000.0, kappa, 1e-10)
}

func TestCond2_Hilbert5(t *testing.T) {
	// κ₂(H₅) = 4.7661e5, a classic reference value.
	m, err := matrix.Hilbert(5)
	require.NoError(t, err)

	kappa, err := matrix.Cond2(m, matrix.DefaultCondTol, matrix.DefaultCondSweeps)
	require.NoError(t, err)
	assert.InEpsilon(t, 4.7661e5, kappa, 1e-3)
}

func TestCond2_Hilbert10_OrderOfMagnitude(t *testing.T) {
	// κ₂(H₁₀) ≈ 1.6e13. One-sided Jacobi keeps relative accuracy on σmin,
	// so log10 must land near 13 despite σmin ≈ 1e-13.
	m, err := matrix.Hilbert(10)
	require.NoError(t, err)

	kappa, err := matrix.Cond2(m, matrix.DefaultCondTol, matrix.DefaultCondSweeps)
	require.NoError(t, err)

	lg := math.Log10(kappa)
	assert.Greater(t, lg, 12.5, "κ₂(H₁₀) must be ≈ 1e13, got 1e%.2f", lg)
	assert.Less(t, lg, 14.0, "κ₂(H₁₀) must be ≈ 1e13, got 1e%.2f", lg)
}

func TestCond2_Errors(t *testing.T) {
	// nil and non-square inputs
	_, err := matrix.Cond2(nil, matrix.DefaultCondTol, matrix.DefaultCondSweeps)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	rect := MustDense(t, 2, 3)
	_, err = matrix.Cond2(rect, matrix.DefaultCondTol, matrix.DefaultCondSweeps)
	assert.ErrorIs(t, err, matrix.ErrNonSquare)

	// bad iteration policy
	sq := MustDense(t, 2, 2)
	_, err = matrix.Cond2(sq, 0, matrix.DefaultCondSweeps)
	assert.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.Cond2(sq, matrix.DefaultCondTol, 0)
	assert.ErrorIs(t, err, matrix.ErrBadShape)

	// exactly singular: the zero matrix has σmin = 0
	_, err = matrix.Cond2(sq, matrix.DefaultCondTol, matrix.DefaultCondSweeps)
	assert.ErrorIs(t, err, matrix.ErrSingular)
}

func TestCond2_InterfaceInput(t *testing.T) {
	// a hidden wrapper must produce the same estimate as the bare Dense
	m, err := matrix.Hilbert(4)
	require.NoError(t, err)

	fast, err := matrix.Cond2(m, matrix.DefaultCondTol, matrix.DefaultCondSweeps)
	require.NoError(t, err)
	slow, err := matrix.Cond2(hide{m}, matrix.DefaultCondTol, matrix.DefaultCondSweeps)
	require.NoError(t, err)
	assert.Equal(t, fast, slow)
}
