// SPDX-License-Identifier: MIT
// Package qr: sentinel error surface.
// Shape and singularity conditions originate in the matrix package's
// central validators and sentinels; the aliases below let callers match
// them at this package's boundary without importing matrix.
// All sentinels are matched with errors.Is.

package qr

import "github.com/katalvlaran/qrkit/matrix"

// ErrTooFewRows signals that Factor was given a matrix with fewer rows
// than columns. Aliases matrix.ErrTooFewRows so errors.Is matches both.
var ErrTooFewRows = matrix.ErrTooFewRows

// ErrDimensionMismatch signals a vector/matrix length mismatch in
// ApplyQT, BackSubstitute or Solve. Aliases matrix.ErrDimensionMismatch.
var ErrDimensionMismatch = matrix.ErrDimensionMismatch

// ErrSingular is returned by BackSubstitute (and therefore Solve) when an
// exactly zero pivot is met on R's diagonal. Near-singular is NOT this:
// a tiny pivot divides through and degrades accuracy, as it should.
// Aliases matrix.ErrSingular.
var ErrSingular = matrix.ErrSingular

// ErrNilMatrix signals a nil matrix argument. Aliases matrix.ErrNilMatrix.
var ErrNilMatrix = matrix.ErrNilMatrix
