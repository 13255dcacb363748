// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/qrkit/matrix"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force the interface fallback path in kernels
// that special-case *Dense; results must match the fast path.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test (fatal on error).
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}
	return m
}

// MustAt reads m(i,j) or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}
	return v
}

// MustSet writes m(i,j)=v or fails the test.
func MustSet(t testing.TB, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d): %v", i, j, err)
	}
}

// RandomFill populates m with deterministic pseudo-random values in [-1, 1).
// The seed fixes the sequence so failures reproduce.
func RandomFill(t testing.TB, m matrix.Matrix, seed int64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			MustSet(t, m, i, j, 2*rng.Float64()-1)
		}
	}
}

// CompareClose asserts |want[i][j] − got(i,j)| ≤ tol everywhere.
func CompareClose(t testing.TB, want [][]float64, got matrix.Matrix, tol float64) {
	t.Helper()
	if len(want) != got.Rows() || (len(want) > 0 && len(want[0]) != got.Cols()) {
		t.Fatalf("shape mismatch: want %dx%d, got %dx%d",
			len(want), len(want[0]), got.Rows(), got.Cols())
	}
	for i := range want {
		for j := range want[i] {
			g := MustAt(t, got, i, j)
			if math.Abs(want[i][j]-g) > tol {
				t.Fatalf("element [%d,%d]: want %g, got %g (tol %g)", i, j, want[i][j], g, tol)
			}
		}
	}
}

// CompareExact is CompareClose with zero tolerance.
func CompareExact(t testing.TB, want [][]float64, got matrix.Matrix) {
	t.Helper()
	CompareClose(t, want, got, 0)
}
