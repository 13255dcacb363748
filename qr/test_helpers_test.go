// SPDX-License-Identifier: MIT
// Package qr_test contains test helpers shared by the factorization,
// application and solve tests. All fixtures are deterministic.

package qr_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/qrkit/matrix"
)

// hide wraps any Matrix to mask its concrete type, forcing kernels that
// special-case *Dense onto their interface fallback path.
type hide struct{ matrix.Matrix }

// mustDense allocates an r×c *Dense or aborts the test.
func mustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}
	return m
}

// mustAt reads m(i,j) or aborts the test.
func mustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}
	return v
}

// mustSet writes m(i,j)=v or aborts the test.
func mustSet(t testing.TB, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d): %v", i, j, err)
	}
}

// randomSquare returns a deterministic n×n matrix with entries in [-1, 1).
func randomSquare(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	m := mustDense(t, n, n)
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			mustSet(t, m, i, j, 2*rng.Float64()-1)
		}
	}
	return m
}

// maxAbsDiff returns max |a(i,j) − b(i,j)| over identically shaped a, b.
func maxAbsDiff(t testing.TB, a, b matrix.Matrix) float64 {
	t.Helper()
	d, err := matrix.Sub(a, b)
	if err != nil {
		t.Fatalf("Sub: %v", err)
	}
	v, err := matrix.MaxAbs(d)
	if err != nil {
		t.Fatalf("MaxAbs: %v", err)
	}
	return v
}
