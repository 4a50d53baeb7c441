// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures (seeded random systems, filled Dense).
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlda/matrix"
	"github.com/stretchr/testify/require"
)

// tolInverse is the acceptance bound for A·A⁻¹ ≈ I.
const tolInverse = 1e-9

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the generic (non-*Dense) path inside kernels.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err, "NewDense(%d,%d)", r, c)

	return m
}

// NewFilledDense builds an r×c Dense from row-major vals.
func NewFilledDense(t *testing.T, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseData(r, c, vals)
	require.NoError(t, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// MustSet writes (i,j) or fails the test.
func MustSet(t *testing.T, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	require.NoError(t, m.Set(i, j, v), "Set(%d,%d)", i, j)
}

// RandomDominant returns a seeded n×n matrix with entries in [-1,1) and n
// added to the diagonal, which keeps it comfortably invertible.
func RandomDominant(t *testing.T, n int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, n*n)
	for i := range vals {
		vals[i] = 2*rng.Float64() - 1
	}
	for i := 0; i < n; i++ {
		vals[i*n+i] += float64(n)
	}

	return NewFilledDense(t, n, n, vals)
}

// RequireIdentity asserts m ≈ I within tol.
func RequireIdentity(t *testing.T, m matrix.Matrix, tol float64) {
	t.Helper()
	n := m.Rows()
	require.Equal(t, n, m.Cols())
	var i, j int
	var want float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			want = 0
			if i == j {
				want = 1
			}
			require.InDelta(t, want, MustAt(t, m, i, j), tol, "entry (%d,%d)", i, j)
		}
	}
}
