// SPDX-License-Identifier: MIT
// Package matrix: two-norm condition number via one-sided Jacobi sweeps.

package matrix

import "math"

// DefaultCondTol is the relative off-diagonal tolerance for Cond2 sweeps.
// 1e-12 resolves singular-value ratios beyond 1e13 (Hilbert n=10) without
// wasting sweeps chasing round-off.
const DefaultCondTol = 1e-12

// DefaultCondSweeps caps the number of full Jacobi sweeps in Cond2.
// Cyclic one-sided Jacobi converges quadratically; 30 sweeps is far past
// what any n ≤ a few hundred needs.
const DefaultCondSweeps = 30

// Cond2 computes the two-norm condition number κ₂(m) = σmax/σmin via
// one-sided Jacobi orthogonalization of the columns of m.
//
// Implementation:
//   - Stage 1: Validate m (not nil, square); clone into a working Dense.
//   - Stage 2: Cyclic sweeps over column pairs (p,q), p<q. For each pair,
//     compute app=‖a_p‖², aqq=‖a_q‖², apq=a_pᵀa_q; if the pair is not yet
//     orthogonal within tol (|apq| > tol·√(app·aqq)), apply the plane
//     rotation that zeroes the implicit (p,q) entry of mᵀm. This is the
//     one-sided form of a Jacobi eigenvalue sweep on mᵀm: the rotation
//     parameters are identical, but operating on columns of m keeps small
//     singular values at full relative accuracy (forming mᵀm explicitly
//     would square the condition number and drown σmin in round-off).
//   - Stage 3: Singular values are the column norms of the rotated matrix;
//     κ₂ = σmax/σmin.
//
// Behavior highlights:
//   - Deterministic cyclic pivot order (p→q), stable across runs.
//   - Ill-conditioning is the measurement, not an error: only an exactly
//     zero σmin reports ErrSingular.
//
// Inputs:
//   - m: square Matrix (n×n).
//   - tol: relative orthogonality threshold (use DefaultCondTol).
//   - maxSweeps: cap on full sweeps (use DefaultCondSweeps).
//
// Returns:
//   - float64: κ₂(m) ≥ 1.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrBadShape (tol/maxSweeps non-positive),
//     ErrSingular (σmin == 0), ErrEigenFailed (sweeps exhausted before
//     all column pairs were orthogonal within tol).
//
// Complexity:
//   - Time O(sweeps · n³), Space O(n²) for the working copy.
func Cond2(m Matrix, tol float64, maxSweeps int) (float64, error) {
	// Validate input non-nil and square
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opCond, err)
	}
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opCond, err)
	}
	// Validate iteration policy
	if tol <= 0 || maxSweeps <= 0 {
		return 0, matrixErrorf(opCond, ErrBadShape)
	}

	// Working copy: rotations mutate columns in place.
	n := m.Rows()
	a, err := DenseCopy(m)
	if err != nil {
		return 0, matrixErrorf(opCond, err)
	}

	var (
		sweep, p, q, i     int     // sweep counter and loop indices
		app, aqq, apq      float64 // implicit Gram entries for the (p,q) pair
		ap, aq             float64 // column temporaries a[i,p], a[i,q]
		theta, t, c, s     float64 // rotation parameters
		rotated, converged bool    // sweep bookkeeping
	)
	for sweep = 0; sweep < maxSweeps; sweep++ {
		rotated = false
		for p = 0; p < n-1; p++ {
			for q = p + 1; q < n; q++ {
				// Implicit Gram entries of aᵀa for the (p,q) pair.
				app, aqq, apq = NormZero, NormZero, NormZero
				for i = 0; i < n; i++ {
					ap = a.data[i*n+p]
					aq = a.data[i*n+q]
					app += ap * ap
					aqq += aq * aq
					apq += ap * aq
				}
				// Already orthogonal within tol (or a zero column): skip.
				if math.Abs(apq) <= tol*math.Sqrt(app*aqq) {
					continue
				}

				// Rotation parameters: identical to a two-sided Jacobi
				// step on the Gram matrix.
				theta = (aqq - app) / (2 * apq)
				t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
				c = 1.0 / math.Sqrt(t*t+1)
				s = t * c

				// Rotate columns p and q in place.
				for i = 0; i < n; i++ {
					ap = a.data[i*n+p]
					aq = a.data[i*n+q]
					a.data[i*n+p] = c*ap - s*aq
					a.data[i*n+q] = s*ap + c*aq
				}
				rotated = true
			}
		}
		// A sweep with no rotation means every pair is orthogonal within tol.
		if !rotated {
			converged = true
			break
		}
	}
	if !converged {
		return 0, matrixErrorf(opCond, ErrEigenFailed)
	}

	// Singular values are the column norms of the rotated matrix.
	var norm, sMax, sMin float64
	sMin = math.MaxFloat64
	for p = 0; p < n; p++ {
		norm = NormZero
		for i = 0; i < n; i++ {
			ap = a.data[i*n+p]
			norm += ap * ap
		}
		norm = math.Sqrt(norm)
		if norm > sMax {
			sMax = norm
		}
		if norm < sMin {
			sMin = norm
		}
	}
	// Only exact singularity is an error; tiny σmin is the whole point.
	if sMin == NormZero {
		return 0, matrixErrorf(opCond, ErrSingular)
	}

	return sMax / sMin, nil
}
