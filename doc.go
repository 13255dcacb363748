// Package qrkit solves dense linear systems Ax = b through Householder
// QR factorization, and demonstrates its backward stability on severely
// ill-conditioned input.
//
// 🚀 What is qrkit?
//
//	A compact, pure-Go numerical toolkit built around one algorithm done
//	well — Householder triangularization with a compact reflector
//	representation:
//		• Factor: A → (V, R), reflectors stored column-wise, R upper-triangular
//		• ApplyQT: y = Qᵀx without ever forming Q
//		• ReconstructQ: explicit orthonormal Q when you need it diagnostically
//		• BackSubstitute + Solve: the full Ax = b pipeline
//		• Hilbert builder + Cond2: an ill-conditioning stress bench
//
// ✨ Why choose qrkit?
//
//   - Predictable – deterministic kernels, fixed loop orders, no randomness
//   - Honest about conditioning – κ₂(A) degrades accuracy, never crashes
//   - Pure Go – no cgo, no BLAS binding, flat row-major storage
//   - Small API – sentinel errors matched with errors.Is, nothing hidden
//
// Under the hood, everything is organized under two subpackages:
//
//	matrix/ — Dense storage, kernels (Mul, MatVec, Transpose), builders, Cond2
//	qr/     — Factor, ApplyQT, ReconstructQ, BackSubstitute, Solve
//
// Quick numerical picture:
//
//	    A = Q·R,   Qᵀ applied as H_{n-2}···H₀
//
//	each Hₖ is a reflection that zeroes column k below the diagonal.
//
// The cmd/qrdemo binary runs the classic stability experiment: factor a
// Hilbert matrix (κ₂ ≈ 10¹³ at n=10), solve for a known x, and watch the
// error land exactly where conditioning theory predicts.
//
//	go get github.com/katalvlaran/qrkit
package qrkit
