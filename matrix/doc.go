// Package matrix provides the dense storage layer and generic kernels
// used by the qr package.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix behind the minimal Matrix
//     interface (Rows/Cols/At/Set/Clone), with column-slice helpers
//     used by factorization kernels.
//   - Generic kernels (Mul, Sub, Transpose, MatVec) with a flat
//     fast path for *Dense operands and a bounds-checked interface
//     fallback for everything else.
//   - Builders for test input (Identity, Hilbert, Basis) and norms
//     (VecNorm2, FrobeniusNorm, MaxAbs).
//   - Cond2, a two-norm condition number estimate via one-sided
//     Jacobi sweeps on the columns — diagnostic only, never on the
//     solve path.
//
// All functions perform strict fail-fast validation and return the
// package sentinels on misuse; check them with errors.Is.
// Ill-conditioned input is never an error anywhere in this package.
package matrix
