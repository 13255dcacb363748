// SPDX-License-Identifier: MIT
// Package qr: implicit application of the orthogonal factor, and its
// explicit reconstruction when diagnostics want a materialized Q.

package qr

import "github.com/katalvlaran/qrkit/matrix"

// applyReflectors multiplies x by the reflector sequence stored in v,
// in place on a fresh copy. Shared core of ApplyQT and ApplyQ; the only
// difference between the two is traversal direction.
//
// Ordering is correctness-critical, not stylistic. Factor composes each
// reflection on the left of the evolving R, so R = H_{n-2}···H₀·A and
// therefore Q = H₀·H₁···H_{n-2}. Applied to a vector:
//
//	Qᵀx = H_{n-2}···H₀ x  → apply k = 0 … n-2, the factorization order;
//	Q·x = H₀···H_{n-2} x  → apply k = n-2 … 0, last reflector first.
//
// Each individual Hₖ is symmetric (Hₖᵀ = Hₖ); only the composition order
// distinguishes Q from Qᵀ. A zero column of V (identity step, or the
// always-unused column n-1) contributes a zero dot product and drops out.
func applyReflectors(v matrix.Matrix, x []float64, transpose bool, opTag string) ([]float64, error) {
	// Validate V non-nil and the vector length against V's row count.
	if err := matrix.ValidateNotNil(v); err != nil {
		return nil, qrErrorf(opTag, err)
	}
	if err := matrix.ValidateVecLen(x, v.Rows()); err != nil {
		return nil, qrErrorf(opTag, err)
	}

	// Fresh output; the caller's vector stays untouched.
	y := make([]float64, len(x))
	copy(y, x)

	n := v.Cols()
	// Fixed traversal: k moves from first..last for Qᵀ, last..first for Q.
	first, last, step := 0, n-1, 1
	if !transpose {
		first, last, step = n-1, 0, -1
	}

	// Fast path: *Dense exposes contiguous reflector slices.
	if vd, ok := v.(*matrix.Dense); ok {
		var (
			i   int
			w   []float64 // reflector vₖ restricted to rows k..m-1
			dot float64
			err error
		)
		for k := first; k != last+step; k += step {
			if w, err = vd.SubCol(k, k); err != nil {
				return nil, qrErrorf(opTag, err)
			}
			dot = matrix.ZeroSum
			for i = range w {
				dot += w[i] * y[k+i]
			}
			if dot == matrix.ZeroSum {
				continue // zero reflector column: identity step
			}
			for i = range w {
				y[k+i] -= 2 * dot * w[i]
			}
		}

		return y, nil
	}

	// Fallback: interface path via At, same fixed order.
	var (
		i       int
		wi, dot float64
		err     error
		m       = v.Rows()
		w       = make([]float64, m) // reusable reflector buffer
	)
	for k := first; k != last+step; k += step {
		dot = matrix.ZeroSum
		for i = k; i < m; i++ {
			if wi, err = v.At(i, k); err != nil {
				return nil, qrErrorf(opTag, err)
			}
			w[i] = wi
			dot += wi * y[i]
		}
		if dot == matrix.ZeroSum {
			continue
		}
		for i = k; i < m; i++ {
			y[i] -= 2 * dot * w[i]
		}
	}

	return y, nil
}

// ApplyQT computes y = Qᵀx from the compact reflector set V produced by
// Factor, without ever materializing Q. Reflectors are applied in
// factorization order (k = 0 … n-2); see applyReflectors for why the
// direction encodes the transpose. This is the solve-path primitive:
// Solve feeds b through it to obtain Qᵀb.
//
// Behavior highlights:
//   - x is never mutated; a fresh vector is returned.
//   - One factorization serves any number of ApplyQT calls.
//
// Inputs:
//   - v: m×n reflector set from Factor.
//   - x: vector of length m.
//
// Errors:
//   - ErrNilMatrix (nil V), ErrDimensionMismatch (len(x) != m).
//
// Complexity:
//   - Time O(mn), Space O(m) for the result.
func ApplyQT(v matrix.Matrix, x []float64) ([]float64, error) {
	return applyReflectors(v, x, true, opApplyQT)
}

// ApplyQ computes y = Q·x from the compact reflector set V, applying the
// reflectors in reverse order (k = n-2 … 0). ReconstructQ builds explicit
// Q columns through this path; the solve path never needs it.
//
// Contract mirrors ApplyQT: fresh result, input untouched,
// ErrNilMatrix / ErrDimensionMismatch on misuse. O(mn).
func ApplyQ(v matrix.Matrix, x []float64) ([]float64, error) {
	return applyReflectors(v, x, false, opApplyQ)
}

// ReconstructQ materializes the explicit orthogonal factor Q from the
// compact reflector set V, column by column: column k of Q is Q·eₖ, the
// reflector sequence applied to the k-th standard basis vector. The same
// vector primitive as the solve path serves — no dedicated matrix
// accumulation loop exists.
//
// Q is m×n with orthonormal columns (QᵀQ ≈ I up to round-off) and
// satisfies A ≈ Q·R for the R returned alongside V.
//
// Diagnostic only: the solve path never calls this. Cost is O(n)
// applications of an O(mn) primitive, O(mn²) total — the same order as
// Factor itself.
//
// Errors:
//   - ErrNilMatrix (nil V), plus anything ApplyQ surfaces.
func ReconstructQ(v matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(v); err != nil {
		return nil, qrErrorf(opReconstruct, err)
	}

	m, n := v.Rows(), v.Cols()
	q, err := matrix.NewDense(m, n)
	if err != nil {
		return nil, qrErrorf(opReconstruct, err)
	}

	var (
		k   int
		e   []float64 // basis probe
		col []float64 // computed column of Q
	)
	for k = 0; k < n; k++ {
		if e, err = matrix.Basis(m, k); err != nil {
			return nil, qrErrorf(opReconstruct, err)
		}
		if col, err = ApplyQ(v, e); err != nil {
			return nil, qrErrorf(opReconstruct, err)
		}
		// Store the transformed probe as column k.
		if err = q.SetSubCol(k, 0, col); err != nil {
			return nil, qrErrorf(opReconstruct, err)
		}
	}

	return q, nil
}
