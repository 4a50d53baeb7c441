// SPDX-License-Identifier: MIT
package lda_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlda/dataset"
	"github.com/katalvlaran/lvlda/lda"
	"github.com/katalvlaran/lvlda/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewModel(t *testing.T) {
	w := []float64{1, -1}
	m, err := lda.NewModel(w, 0.5, []float64{0, 0}, nil)
	require.NoError(t, err)

	w[0] = 99
	require.Equal(t, []float64{1, -1}, m.Weights(), "constructor copies its input")
	got := m.Weights()
	got[1] = 99
	require.Equal(t, []float64{1, -1}, m.Weights(), "accessor returns a copy")

	_, err = lda.NewModel([]float64{1}, 0, []float64{1, 2}, nil)
	require.ErrorIs(t, err, lda.ErrDimensionMismatch)
	_, err = lda.NewModel(nil, 0, nil, nil)
	require.ErrorIs(t, err, lda.ErrDimensionMismatch)
	_, err = lda.NewModel([]float64{1}, math.NaN(), []float64{1}, nil)
	require.ErrorIs(t, err, lda.ErrMalformedModel)
}

func TestModel_PredictAndScore(t *testing.T) {
	m, err := lda.NewModel([]float64{2, 1}, 1, []float64{0, 0}, nil)
	require.NoError(t, err)

	s, err := m.Score([]float64{0.25, 0.5})
	require.NoError(t, err)
	require.Equal(t, 1.0, s)

	cases := []struct {
		x    []float64
		want dataset.Label
	}{
		{[]float64{0.25, 0.5}, dataset.Negative},
		{[]float64{1, 0}, dataset.Positive},
		{[]float64{-1, 0}, dataset.Negative},
	}
	for _, tc := range cases {
		l, err := m.Predict(tc.x)
		require.NoError(t, err)
		assert.Equal(t, tc.want, l, "x=%v", tc.x)
	}

	_, err = m.Predict([]float64{1})
	require.ErrorIs(t, err, lda.ErrDimensionMismatch)

	X, err := matrix.NewDenseRows([][]float64{{0.25, 0.5}, {1, 0}})
	require.NoError(t, err)
	all, err := m.PredictAll(X)
	require.NoError(t, err)
	require.Equal(t, []dataset.Label{dataset.Negative, dataset.Positive}, all)

	wide, err := matrix.NewDense(1, 3)
	require.NoError(t, err)
	_, err = m.PredictAll(wide)
	require.ErrorIs(t, err, lda.ErrDimensionMismatch)
}

func TestModel_Nil(t *testing.T) {
	var m *lda.Model
	_, err := m.Predict([]float64{1})
	require.ErrorIs(t, err, lda.ErrNilModel)
	_, err = m.PredictAll(nil)
	require.ErrorIs(t, err, lda.ErrNilModel)
}
