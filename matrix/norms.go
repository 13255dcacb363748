// SPDX-License-Identifier: MIT
// Package matrix: norms shared by kernels, diagnostics and tests.

package matrix

import "math"

// VecNorm2 returns the Euclidean (two-) norm of x.
// A nil or empty vector has norm 0 — no error surface is needed here.
// Determinism: fixed left-to-right accumulation.
// Complexity: O(len(x)).
func VecNorm2(x []float64) float64 {
	acc := NormZero
	for _, v := range x {
		acc += v * v
	}

	return math.Sqrt(acc)
}

// FrobeniusNorm returns sqrt(Σ m[i,j]²) over all entries.
//
// Errors: ErrNilMatrix (nil input).
// Complexity: O(r*c).
func FrobeniusNorm(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, err
	}

	// Fast-path: flat walk over the backing slice.
	if d, ok := m.(*Dense); ok {
		acc := NormZero
		for _, v := range d.data {
			acc += v * v
		}

		return math.Sqrt(acc), nil
	}

	// Fallback: fixed i→j interface walk.
	var (
		acc  = NormZero
		v    float64
		err  error
		i, j int
	)
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			v, err = m.At(i, j)
			if err != nil {
				return 0, err
			}
			acc += v * v
		}
	}

	return math.Sqrt(acc), nil
}

// MaxAbs returns the largest |m[i,j]| over all entries.
// Useful for "this block is numerically zero" assertions on triangular
// factors and orthogonality residuals.
//
// Errors: ErrNilMatrix (nil input).
// Complexity: O(r*c).
func MaxAbs(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, err
	}

	if d, ok := m.(*Dense); ok {
		max := NormZero
		for _, v := range d.data {
			if a := math.Abs(v); a > max {
				max = a
			}
		}

		return max, nil
	}

	var (
		max  = NormZero
		v    float64
		err  error
		i, j int
	)
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			v, err = m.At(i, j)
			if err != nil {
				return 0, err
			}
			if a := math.Abs(v); a > max {
				max = a
			}
		}
	}

	return max, nil
}
