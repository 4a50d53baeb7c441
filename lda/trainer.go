// SPDX-License-Identifier: MIT

package lda

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlda/dataset"
	"github.com/katalvlaran/lvlda/matrix"
)

// Operation tags for error wrapping.
const (
	opTrain = "Train"
	opFit   = "Fit"
)

// Train fits a model on the class-0 rows x0 and the class-1 rows x1.
// Implementation:
//   - Stage 1: validate λ and both classes (non-nil, ≥1 row, same d).
//   - Stage 2: per-class ColumnMeans and Covariance.
//   - Stage 3: Sw = cov0 + cov1 + λI; invert with partial pivoting.
//   - Stage 4: w = Sw⁻¹(mean1 − mean0); t = ½(w·mean0 + w·mean1).
//
// Behavior highlights:
//   - Training either returns a complete Model or (nil, err); there is no
//     partially trained state.
//
// Errors:
//   - ErrInvalidLambda, ErrEmptyClass, ErrDimensionMismatch, ErrSingular,
//     matrix.ErrNilMatrix.
//
// Complexity:
//   - Time O(n·d² + d³), Space O(d²).
func Train(x0, x1 matrix.Matrix, opts ...Option) (*Model, error) {
	o := gatherOptions(opts...)
	if math.IsNaN(o.lambda) || math.IsInf(o.lambda, 0) || o.lambda < 0 {
		return nil, fmt.Errorf("%s: λ=%g: %w", opTrain, o.lambda, ErrInvalidLambda)
	}
	for k, x := range []matrix.Matrix{x0, x1} {
		if err := matrix.ValidateNotNil(x); err != nil {
			return nil, fmt.Errorf("%s: class %d: %w", opTrain, k, err)
		}
		if x.Rows() == 0 {
			return nil, fmt.Errorf("%s: class %d: %w", opTrain, k, ErrEmptyClass)
		}
	}
	if x0.Cols() != x1.Cols() {
		return nil, fmt.Errorf("%s: class dims %d vs %d: %w", opTrain, x0.Cols(), x1.Cols(), ErrDimensionMismatch)
	}

	mean0, cov0, err := classStats(x0)
	if err != nil {
		return nil, fmt.Errorf("%s: class 0: %w", opTrain, err)
	}
	mean1, cov1, err := classStats(x1)
	if err != nil {
		return nil, fmt.Errorf("%s: class 1: %w", opTrain, err)
	}

	sw, err := matrix.Add(cov0, cov1)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opTrain, err)
	}
	if sw, err = matrix.AddDiagonal(sw, o.lambda); err != nil {
		return nil, fmt.Errorf("%s: %w", opTrain, err)
	}
	swInv, err := matrix.Inverse(sw, matrix.WithPivotTolerance(o.pivotTol))
	if err != nil {
		o.log.Debugf("scatter inversion failed: d=%d λ=%g: %v", x0.Cols(), o.lambda, err)
		return nil, fmt.Errorf("%s: %w", opTrain, err)
	}

	diff, err := matrix.VecSub(mean1, mean0)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opTrain, err)
	}
	w, err := matrix.MatVec(swInv, diff)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opTrain, err)
	}
	p0, _ := matrix.Dot(w, mean0)
	p1, _ := matrix.Dot(w, mean1)
	threshold := 0.5 * (p0 + p1)

	o.log.Debugf("trained: d=%d n0=%d n1=%d λ=%g w·μ0=%g w·μ1=%g t=%g",
		x0.Cols(), x0.Rows(), x1.Rows(), o.lambda, p0, p1, threshold)

	return NewModel(w, threshold, mean0, nil)
}

// classStats returns the mean and unbiased covariance of one class.
func classStats(x matrix.Matrix) ([]float64, matrix.Matrix, error) {
	mean, err := matrix.ColumnMeans(x)
	if err != nil {
		return nil, nil, err
	}
	cov, err := matrix.Covariance(x, mean)
	if err != nil {
		return nil, nil, err
	}

	return mean, cov, nil
}

// Fit partitions a labeled dataset by class and calls Train.
// Errors: those of Train, and dataset.ErrMalformedRow for unlabeled input.
func Fit(ds *dataset.Dataset, opts ...Option) (*Model, error) {
	x0, x1, err := ds.ByClass()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opFit, err)
	}
	m, err := Train(x0, x1, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opFit, err)
	}

	return m, nil
}
