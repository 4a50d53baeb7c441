// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlda/matrix"
	"github.com/stretchr/testify/require"
)

// 1) TestDefaultOptions_Documented verifies NewOptions() equals the documented defaults.
func TestDefaultOptions_Documented(t *testing.T) {
	o := matrix.NewOptions()
	if o.PivotTolerance() != matrix.DefaultPivotTolerance {
		t.Fatalf("pivot tolerance default mismatch: got %v, want %v", o.PivotTolerance(), matrix.DefaultPivotTolerance)
	}
}

// 2) TestWithPivotTolerance_LastWriterWins ensures the final setter is effective.
func TestWithPivotTolerance_LastWriterWins(t *testing.T) {
	o := matrix.NewOptions(matrix.WithPivotTolerance(1e-3), nil, matrix.WithPivotTolerance(0))
	require.Equal(t, 0.0, o.PivotTolerance())
}

// 3) TestWithPivotTolerance_Panics rejects nonsensical tolerances at construction.
func TestWithPivotTolerance_Panics(t *testing.T) {
	for _, tol := range []float64{-1e-12, math.NaN(), math.Inf(1)} {
		require.Panics(t, func() { matrix.WithPivotTolerance(tol) }, "tol=%v", tol)
	}
}

// 4) TestWithNoValidateNaNInf lets Set store non-finite values on Inverse output.
func TestWithNoValidateNaNInf(t *testing.T) {
	a, err := matrix.Identity(2)
	require.NoError(t, err)

	strict, err := matrix.Inverse(a)
	require.NoError(t, err)
	require.ErrorIs(t, strict.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)

	loose, err := matrix.Inverse(a, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, loose.Set(0, 0, math.Inf(1)))
}
