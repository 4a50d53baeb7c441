// SPDX-License-Identifier: MIT
package lda_test

import (
	"math"
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/katalvlaran/lvlda/dataset"
	"github.com/katalvlaran/lvlda/lda"
	"github.com/katalvlaran/lvlda/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gonum.org/v1/gonum/mat"
)

func dense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseRows(rows)
	require.NoError(t, err)

	return m
}

// gaussianDataset draws n rows per class from N(0,1)^d and N(shift,1)^d,
// interleaving the classes.
func gaussianDataset(t *testing.T, d, n int, shift float64, seed uint64) *dataset.Dataset {
	t.Helper()
	rng := rand.New(rand.NewPCG(seed, 1))
	flat := make([]float64, 0, 2*n*d)
	ids := make([]string, 0, 2*n)
	ys := make([]dataset.Label, 0, 2*n)
	for i := 0; i < 2*n; i++ {
		y := dataset.Label(i % 2)
		off := 0.0
		if y == dataset.Positive {
			off = shift
		}
		for j := 0; j < d; j++ {
			flat = append(flat, off+rng.NormFloat64())
		}
		ids = append(ids, "s")
		ys = append(ys, y)
	}
	X, err := matrix.NewDenseData(2*n, d, flat)
	require.NoError(t, err)

	return &dataset.Dataset{IDs: ids, X: X, Y: ys}
}

func TestTrain_Known1D(t *testing.T) {
	x0 := dense(t, [][]float64{{0}, {2}})
	x1 := dense(t, [][]float64{{4}, {6}})
	m, err := lda.Train(x0, x1, lda.WithLambda(0))
	require.NoError(t, err)

	// Sw = 2 + 2, w = (5-1)/4, t = ½(1·1 + 1·5).
	require.Equal(t, []float64{1}, m.Weights())
	require.Equal(t, 3.0, m.Threshold())
	require.Equal(t, []float64{1}, m.Mean0())
	require.Empty(t, m.Priors())

	l, err := m.Predict([]float64{3})
	require.NoError(t, err)
	assert.Equal(t, dataset.Negative, l, "ties go to Negative")
	l, err = m.Predict([]float64{3.0001})
	require.NoError(t, err)
	assert.Equal(t, dataset.Positive, l)
}

func TestTrain_GaussianClustersHeldOut(t *testing.T) {
	ds := gaussianDataset(t, 5, 200, 4, 2024)
	train, test, err := dataset.Split(ds, 0.8, 42)
	require.NoError(t, err)

	m, err := lda.Fit(train)
	require.NoError(t, err)
	require.Equal(t, 5, m.Dim())

	pred, err := m.PredictAll(test.X)
	require.NoError(t, err)
	require.Equal(t, test.Y, pred, "well separated clusters are classified without error")
}

func TestTrain_ThresholdOrdering(t *testing.T) {
	for _, seed := range []uint64{1, 2, 3, 4, 5} {
		ds := gaussianDataset(t, 3, 40, 1.5, seed)
		x0, x1, err := ds.ByClass()
		require.NoError(t, err)
		m, err := lda.Train(x0, x1)
		require.NoError(t, err)

		mean1, err := matrix.ColumnMeans(x1)
		require.NoError(t, err)
		p0, err := m.Score(m.Mean0())
		require.NoError(t, err)
		p1, err := m.Score(mean1)
		require.NoError(t, err)
		require.Less(t, p0, m.Threshold(), "seed %d", seed)
		require.Less(t, m.Threshold(), p1, "seed %d", seed)
	}
}

func TestTrain_MatchesGonum(t *testing.T) {
	ds := gaussianDataset(t, 4, 30, 1, 77)
	x0, x1, err := ds.ByClass()
	require.NoError(t, err)
	m, err := lda.Train(x0, x1, lda.WithLambda(0.5))
	require.NoError(t, err)

	// Rebuild Sw with gonum and solve independently.
	mean0, _ := matrix.ColumnMeans(x0)
	mean1, _ := matrix.ColumnMeans(x1)
	cov0, _ := matrix.Covariance(x0, mean0)
	cov1, _ := matrix.Covariance(x1, mean1)
	d := 4
	sw := mat.NewDense(d, d, nil)
	for i := 0; i < d; i++ {
		for j := 0; j < d; j++ {
			a, _ := cov0.At(i, j)
			b, _ := cov1.At(i, j)
			v := a + b
			if i == j {
				v += 0.5
			}
			sw.Set(i, j, v)
		}
	}
	diff := mat.NewVecDense(d, nil)
	for j := 0; j < d; j++ {
		diff.SetVec(j, mean1[j]-mean0[j])
	}
	var w mat.VecDense
	require.NoError(t, w.SolveVec(sw, diff))

	got := m.Weights()
	for j := 0; j < d; j++ {
		require.InDelta(t, w.AtVec(j), got[j], 1e-9)
	}
}

func TestTrain_Errors(t *testing.T) {
	x := dense(t, [][]float64{{1, 2}, {3, 4}})
	empty, err := x.SelectRows(nil)
	require.NoError(t, err)
	narrow := dense(t, [][]float64{{1}, {2}})

	_, err = lda.Train(empty, x)
	require.ErrorIs(t, err, lda.ErrEmptyClass)
	_, err = lda.Train(x, empty)
	require.ErrorIs(t, err, lda.ErrEmptyClass)
	_, err = lda.Train(x, narrow)
	require.ErrorIs(t, err, lda.ErrDimensionMismatch)
	_, err = lda.Train(nil, x)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	for _, bad := range []float64{-1e-4, math.NaN(), math.Inf(1)} {
		_, err = lda.Train(x, x, lda.WithLambda(bad))
		require.ErrorIs(t, err, lda.ErrInvalidLambda, "λ=%v", bad)
	}
}

func TestTrain_SingularWithoutRidge(t *testing.T) {
	// Feature 1 is constant in both classes: its scatter row is all zero.
	x0 := dense(t, [][]float64{{0, 7}, {1, 7}, {2, 7}})
	x1 := dense(t, [][]float64{{5, 7}, {6, 7}, {8, 7}})

	m, err := lda.Train(x0, x1, lda.WithLambda(0))
	require.ErrorIs(t, err, lda.ErrSingular)
	require.Nil(t, m)

	m, err = lda.Train(x0, x1)
	require.NoError(t, err, "the default ridge term restores invertibility")
	require.Equal(t, 0.0, m.Weights()[1])
}

func TestTrain_PivotToleranceOption(t *testing.T) {
	x0 := dense(t, [][]float64{{0}, {1e-4}})
	x1 := dense(t, [][]float64{{1}, {1 + 1e-4}})
	_, err := lda.Train(x0, x1, lda.WithLambda(0), lda.WithPivotTolerance(1e-6))
	require.ErrorIs(t, err, lda.ErrSingular)

	_, err = lda.Train(x0, x1, lda.WithLambda(0))
	require.NoError(t, err)

	require.Panics(t, func() { lda.WithPivotTolerance(-1) })
}

func TestTrain_SingleRowClasses(t *testing.T) {
	x0 := dense(t, [][]float64{{0, 0}})
	x1 := dense(t, [][]float64{{1, 2}})
	m, err := lda.Train(x0, x1)
	require.NoError(t, err)
	// Zero covariances leave Sw = λI, so w = (mean1-mean0)/λ.
	w := m.Weights()
	require.InDelta(t, 1/lda.DefaultLambda, w[0], 1e-6)
	require.InDelta(t, 2/lda.DefaultLambda, w[1], 1e-6)
}

func TestFit_Unlabeled(t *testing.T) {
	ds := gaussianDataset(t, 2, 3, 1, 1)
	ds.Y = nil
	_, err := lda.Fit(ds)
	require.ErrorIs(t, err, dataset.ErrMalformedRow)
}

func TestTrain_LogsAtDebug(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	x0 := dense(t, [][]float64{{0}, {2}})
	x1 := dense(t, [][]float64{{4}, {6}})
	_, err := lda.Train(x0, x1, lda.WithLogger(zap.New(core)))
	require.NoError(t, err)
	require.Equal(t, 1, logs.FilterMessageSnippet("trained").Len())
}

func TestModel_ConcurrentPredictIsPure(t *testing.T) {
	ds := gaussianDataset(t, 5, 50, 2, 11)
	m, err := lda.Fit(ds)
	require.NoError(t, err)

	want, err := m.PredictAll(ds.X)
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < ds.Len(); i++ {
				row, _ := ds.X.Row(i)
				l, err := m.Predict(row)
				if err != nil {
					errs <- err
					return
				}
				if l != want[i] {
					errs <- assert.AnError
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	again, err := m.PredictAll(ds.X)
	require.NoError(t, err)
	require.Equal(t, want, again)
}
