// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlda/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateNotNil covers untyped nil, typed-nil *Dense and a live matrix.
func TestValidateNotNil(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)

	var d *matrix.Dense
	require.ErrorIs(t, matrix.ValidateNotNil(d), matrix.ErrNilMatrix)

	require.NoError(t, matrix.ValidateNotNil(MustDense(t, 1, 1)))
}

// TestValidateSameShape verifies row and column mismatches separately.
func TestValidateSameShape(t *testing.T) {
	a := MustDense(t, 2, 3)
	require.NoError(t, matrix.ValidateSameShape(a, MustDense(t, 2, 3)))
	require.ErrorIs(t, matrix.ValidateSameShape(a, MustDense(t, 3, 3)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateSameShape(a, MustDense(t, 2, 2)), matrix.ErrDimensionMismatch)
}

// TestValidateSquare accepts n×n only.
func TestValidateSquare(t *testing.T) {
	require.NoError(t, matrix.ValidateSquare(MustDense(t, 4, 4)))
	require.ErrorIs(t, matrix.ValidateSquare(MustDense(t, 4, 5)), matrix.ErrDimensionMismatch)
}

// TestValidateBinarySameShape checks the nil-before-shape priority.
func TestValidateBinarySameShape(t *testing.T) {
	a := MustDense(t, 2, 2)
	require.ErrorIs(t, matrix.ValidateBinarySameShape(nil, a), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateBinarySameShape(a, nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateBinarySameShape(a, MustDense(t, 1, 2)), matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ValidateBinarySameShape(a, MustDense(t, 2, 2)))
}

// TestValidateVecLenAndFinite covers the vector validators.
func TestValidateVecLenAndFinite(t *testing.T) {
	require.NoError(t, matrix.ValidateVecLen(nil, 0))
	require.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)

	require.NoError(t, matrix.ValidateFinite([]float64{0, -1, math.MaxFloat64}))
	err := matrix.ValidateFinite([]float64{0, math.Inf(-1)})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	require.Contains(t, err.Error(), "[1]")
	require.ErrorIs(t, matrix.ValidateFinite([]float64{math.NaN()}), matrix.ErrNaNInf)
}
