// SPDX-License-Identifier: MIT
// Package matrix - column statistics over a data matrix (rows = observations,
// columns = features).
//
// Exposed API:
//   - ColumnMeans(X)        → per-column arithmetic mean (r ≥ 1).
//   - Covariance(X, mean)   → unbiased sample covariance, denominator r-1.
//
// Determinism & Performance:
//   - One pass over the rows for means; one pass accumulating the upper
//     triangle of the outer products for covariance, mirrored at the end so
//     the result is exactly symmetric.
//   - Scratch is a single length-c centered-row buffer; no per-row allocation.
package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opColumnMeans = "ColumnMeans"
	opCovariance  = "Covariance"
)

// ColumnMeans returns the arithmetic mean of every column of X.
// Implementation:
//   - Stage 1: validate X non-nil with at least one row.
//   - Stage 2: sum rows into a length-c accumulator, divide by r.
//
// Behavior highlights:
//   - A single-row input returns that row unchanged.
//
// Errors:
//   - ErrNilMatrix, ErrBadShape (r == 0; the mean of nothing is undefined).
//
// Complexity:
//   - Time O(r*c), Space O(c).
func ColumnMeans(X Matrix) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opColumnMeans, err)
	}
	if X.Rows() == 0 {
		return nil, matrixErrorf(opColumnMeans, fmt.Errorf("0 rows: %w", ErrBadShape))
	}
	d, err := toDense(X)
	if err != nil {
		return nil, matrixErrorf(opColumnMeans, err)
	}

	mean := make([]float64, d.c)
	var i, j int
	var row []float64
	for i = 0; i < d.r; i++ {
		row = d.rowSlice(i)
		for j = 0; j < d.c; j++ {
			mean[j] += row[j]
		}
	}
	if d.r > 1 {
		n := float64(d.r)
		for j = range mean {
			mean[j] /= n
		}
	}

	return mean, nil
}

// Covariance computes the unbiased sample covariance of the columns of X
// around the supplied mean: Cov(i,j) = Σ_k (x_ki−m_i)(x_kj−m_j) / (r−1).
// Implementation:
//   - Stage 1: validate X (non-nil, r ≥ 1) and len(mean) == c.
//   - Stage 2: r == 1 → c×c zero matrix (the single-observation case is
//     defined as "no spread" rather than a division by zero).
//   - Stage 3: center each row into scratch, accumulate the upper triangle.
//   - Stage 4: scale by 1/(r−1) and mirror into the lower triangle.
//
// Behavior highlights:
//   - Output is exactly symmetric; the diagonal holds per-column sample variances.
//
// Errors:
//   - ErrNilMatrix, ErrBadShape (r == 0), ErrDimensionMismatch (len(mean) != c).
//
// Complexity:
//   - Time O(r*c²), Space O(c²).
func Covariance(X Matrix, mean []float64) (Matrix, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opCovariance, err)
	}
	if X.Rows() == 0 {
		return nil, matrixErrorf(opCovariance, fmt.Errorf("0 rows: %w", ErrBadShape))
	}
	if err := ValidateVecLen(mean, X.Cols()); err != nil {
		return nil, matrixErrorf(opCovariance, err)
	}
	d, err := toDense(X)
	if err != nil {
		return nil, matrixErrorf(opCovariance, err)
	}

	c := d.c
	cov, err := NewDense(c, c)
	if err != nil {
		return nil, matrixErrorf(opCovariance, err)
	}
	if d.r < 2 {
		return cov, nil
	}

	centered := make([]float64, c)
	var (
		i, j, k int
		row     []float64
		ci      float64
		base    int
	)
	for k = 0; k < d.r; k++ {
		row = d.rowSlice(k)
		for j = 0; j < c; j++ {
			centered[j] = row[j] - mean[j]
		}
		for i = 0; i < c; i++ {
			ci = centered[i]
			if ci == 0 {
				continue
			}
			base = i * c
			for j = i; j < c; j++ {
				cov.data[base+j] += ci * centered[j]
			}
		}
	}

	denom := float64(d.r - 1)
	for i = 0; i < c; i++ {
		for j = i; j < c; j++ {
			cov.data[i*c+j] /= denom
			cov.data[j*c+i] = cov.data[i*c+j]
		}
	}

	return cov, nil
}
