// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.
//
// Ill-conditioning is, deliberately, NOT represented here: a huge condition
// number is a measurement, not a failure. Only exact structural problems
// (nil input, bad shape, a zero pivot, a failed iteration) are errors.

var (
	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrBadShape is returned when a requested shape is invalid (r<=0 or c<=0).
	// Constructors must validate before allocation.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid
	// bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Sub with different shapes, Mul where a.Cols != b.Rows, or a vector
	// whose length does not match the required matrix dimension.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrTooFewRows signals that a tall matrix (Rows >= Cols) was required.
	ErrTooFewRows = errors.New("matrix: fewer rows than columns")

	// ErrSingular is returned when exact singularity is detected, e.g. a
	// zero singular value inside Cond2 or a zero pivot during triangular
	// solving. Near-singularity is never reported through this sentinel.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrEigenFailed indicates that the Jacobi sweep inside Cond2 failed to
	// converge under the given tolerance/iteration budget.
	ErrEigenFailed = errors.New("matrix: eigen iteration did not converge")
)
