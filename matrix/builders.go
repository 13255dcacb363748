// SPDX-License-Identifier: MIT
// Package matrix: deterministic builders for structured test matrices.
// These exist to feed the qr package's stability experiments; none of
// them appears on a solve path.

package matrix

// Identity returns the n×n identity matrix.
//
// Errors: ErrBadShape if n <= 0.
// Complexity: O(n²) time and memory.
func Identity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1.0
	}

	return m, nil
}

// Hilbert returns the n×n Hilbert matrix, entry (i,j) = 1/(i+j+1) for
// zero-based indices. The classic ill-conditioned benchmark: κ₂ grows
// roughly like e^{3.5n}, so even n=10 carries κ₂ ≈ 10¹³.
//
// Errors: ErrBadShape if n <= 0.
// Complexity: O(n²) time and memory.
func Hilbert(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opHilbert, err)
	}
	var i, j int // loop iterators (deterministic order)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			m.data[i*n+j] = 1.0 / float64(i+j+1)
		}
	}

	return m, nil
}

// Basis returns the k-th standard basis vector of length m
// (all zeros, a single 1 at index k).
//
// Errors: ErrBadShape if m <= 0, ErrOutOfRange if k is outside [0, m).
// Complexity: O(m).
func Basis(m, k int) ([]float64, error) {
	if m <= 0 {
		return nil, matrixErrorf(opBasis, ErrBadShape)
	}
	if k < 0 || k >= m {
		return nil, matrixErrorf(opBasis, ErrOutOfRange)
	}

	e := make([]float64, m)
	e[k] = 1.0

	return e, nil
}

// Ones returns a vector of n ones, the canonical known solution used by
// the stability harness (x = 1, b = A·x).
// Returns nil for n <= 0.
// Complexity: O(n).
func Ones(n int) []float64 {
	if n <= 0 {
		return nil
	}
	x := make([]float64, n)
	for i := range x {
		x[i] = 1.0
	}

	return x
}
