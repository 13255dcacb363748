// Package qr computes the Householder QR factorization of a dense real
// matrix and solves Ax = b with it, using a compact reflector
// representation of the orthogonal factor.
//
// 🚀 What is Householder QR?
//
//	Each step k builds a reflection Hₖ = I − 2vₖvₖᵀ that zeroes column k
//	below the diagonal. After n−1 steps A has become upper-triangular R,
//	and Q = H₀H₁···H_{n-2} is carried implicitly as the unit vectors vₖ.
//	The payoff is backward stability: even at κ₂(A) ≈ 10¹³ the computed
//	solution loses exactly the digits conditioning theory predicts, and
//	nothing blows up.
//
// ✨ Key operations:
//   - Factor: A → (V, R); column k of V holds vₖ with implicit leading zeros
//   - ApplyQT: y = Qᵀx, reflectors applied in factorization order, no Q formed
//   - ApplyQ: y = Q·x, the same reflectors applied last-to-first
//   - ReconstructQ: explicit Q, column k = ApplyQ(V, eₖ)
//   - BackSubstitute: upper-triangular solve Rx = y (zero pivot → ErrSingular)
//   - Solve: Factor → ApplyQT → BackSubstitute in one call
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/qrkit/qr"
//
//	V, R, err := qr.Factor(a)     // factor once
//	y, err  := qr.ApplyQT(V, b)   // per right-hand side
//	x, err  := qr.BackSubstitute(R, y)
//
//	// or simply
//	x, err := qr.Solve(a, b)
//
// A factorization is immutable once produced: one (V, R) pair serves any
// number of right-hand sides without refactoring.
//
// Ill-conditioning is never an error anywhere in this package; only an
// exactly zero pivot inside BackSubstitute reports ErrSingular.
//
// Performance:
//
//   - Factor:       O(mn²)
//   - ApplyQT:      O(mn)
//   - ReconstructQ: O(mn²)  (diagnostic; never on the solve path)
//
// See example_test.go for the classic Hilbert-matrix stability experiment.
package qr
