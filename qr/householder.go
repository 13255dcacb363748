// SPDX-License-Identifier: MIT
// Package qr: Householder triangularization with compact reflector storage.

package qr

import (
	"fmt"

	"github.com/katalvlaran/qrkit/matrix"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opFactor      = "Factor"
	opApplyQT     = "ApplyQT"
	opApplyQ      = "ApplyQ"
	opReconstruct = "ReconstructQ"
	opBackSub     = "BackSubstitute"
	opSolve       = "Solve"
)

// qrErrorf wraps err with an operation tag, preserving the original error
// via %w so errors.Is keeps matching. Call only when err != nil.
func qrErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// signPos is sign(x) with signPos(0) = +1, pinned explicitly.
// The reflector perturbation x[0] += signPos(x[0])·‖x‖ must move the
// leading entry AWAY from zero; building the opposite reflector would
// cancel a same-signed leading entry catastrophically. Numeric libraries
// disagree on sign(0) (0, +1, even NaN), so the stability choice is made
// here rather than inherited from math.Copysign's treatment of ±0.
func signPos(x float64) float64 {
	if x < 0 {
		return -1.0
	}

	return 1.0
}

// Factor computes the Householder factorization of a, returning the
// compact reflector set V and the triangular factor R such that A = Q·R
// with Q carried implicitly by V (see ApplyQT, ReconstructQ).
//
// Implementation:
//   - Stage 1: Validate a (not nil, Rows ≥ Cols); materialize the working
//     copy R (a is read-only throughout) and a zero V of the same shape.
//   - Stage 2: For k = 0..n-2:
//     (a) extract x = R[k:, k] (the diagonal-and-below slice of column k);
//     (b) perturb the leading entry x[0] += signPos(x[0])·‖x‖₂;
//     (c) normalize x to unit length and store it as column k of V
//     (rows above k stay zero — the implicit leading-zero convention);
//     (d) for every column j ≥ k, update R[k:, j] -= 2·v·(vᵀ·R[k:, j]).
//     Column n-1 of V is never written: n−1 reflections triangularize an
//     n-column matrix.
//
// Behavior highlights:
//   - A sub-column whose below-diagonal tail is already zero needs no
//     reflection: the step is skipped and V's column stays zero. This
//     covers the all-zero sub-column (no division by zero, never a NaN)
//     and keeps already-triangular input — the identity above all — fixed
//     instead of being sign-flipped by a gratuitous reflection.
//   - Singular or ill-conditioned input factors normally — demonstrating
//     that is this package's reason to exist.
//   - Deterministic: identical input yields bit-identical (V, R).
//
// Inputs:
//   - a: m×n Matrix with m ≥ n. Never mutated.
//
// Returns:
//   - V: m×n Dense; column k holds the k-th unit reflector below row k.
//   - R: m×n Dense; the top n×n block is upper-triangular (entries below
//     the diagonal are round-off–level, not scrubbed to exact zero).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrTooFewRows (m < n).
//
// Complexity:
//   - Time O(mn²), Space O(mn) for V and R.
func Factor(a matrix.Matrix) (*matrix.Dense, *matrix.Dense, error) {
	// Validate input non-nil and tall.
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, nil, qrErrorf(opFactor, err)
	}
	if err := matrix.ValidateTall(a); err != nil {
		return nil, nil, qrErrorf(opFactor, err)
	}

	// Working copy R (the input stays pristine for residual checks).
	r, err := matrix.DenseCopy(a)
	if err != nil {
		return nil, nil, qrErrorf(opFactor, err)
	}
	// Reflector storage V, all-zero; unwritten entries are meaningful zeros.
	m, n := a.Rows(), a.Cols()
	v, err := matrix.NewDense(m, n)
	if err != nil {
		return nil, nil, qrErrorf(opFactor, err)
	}

	var (
		k, j, i  int       // elimination step, column, row iterators
		x, col   []float64 // reflector build buffer and column-update buffer
		norm     float64   // ‖x‖₂ before and after the perturbation
		dot      float64   // vᵀ·R[k:, j] accumulator
		tailZero bool      // column already eliminated below the diagonal
	)
	for k = 0; k < n-1; k++ {
		// (a) Extract the diagonal-and-below slice of column k.
		if x, err = r.SubCol(k, k); err != nil {
			return nil, nil, qrErrorf(opFactor, err)
		}

		// Already eliminated below the diagonal (all-zero sub-column
		// included): identity step, V's column stays zero.
		tailZero = true
		for i = 1; i < len(x); i++ {
			if x[i] != matrix.NormZero {
				tailZero = false
				break
			}
		}
		if tailZero {
			continue
		}

		// (b) Perturb the leading entry away from zero (stable reflector
		// choice; see signPos). The tail guarantees norm > 0.
		norm = matrix.VecNorm2(x)
		x[0] += signPos(x[0]) * norm

		// (c) Normalize to a unit reflector and store as column k of V.
		norm = matrix.VecNorm2(x)
		for i = range x {
			x[i] /= norm
		}
		if err = v.SetSubCol(k, k, x); err != nil {
			return nil, nil, qrErrorf(opFactor, err)
		}

		// (d) Reflect every remaining column of R.
		for j = k; j < n; j++ {
			if col, err = r.SubCol(j, k); err != nil {
				return nil, nil, qrErrorf(opFactor, err)
			}
			dot = matrix.ZeroSum
			for i = range col {
				dot += x[i] * col[i]
			}
			for i = range col {
				col[i] -= 2 * dot * x[i]
			}
			if err = r.SetSubCol(j, k, col); err != nil {
				return nil, nil, qrErrorf(opFactor, err)
			}
		}
	}

	return v, r, nil
}
