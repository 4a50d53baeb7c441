// SPDX-License-Identifier: MIT
// Package matrix provides the linear-algebra kernels used by the discriminant
// trainer: element-wise Add, the ridge AddDiagonal, MatVec, vector Dot/VecSub
// and Gauss-Jordan Inverse with partial pivoting.
//
// Determinism & Performance:
//   - Fixed loop orders; pivot ties resolve to the first maximum found.
//   - Every kernel runs on the flat row-major buffer of *Dense. Non-Dense
//     inputs are copied into a Dense once (toDense) instead of paying an
//     interface call per element inside O(n³) loops.
package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial value for dot products and accumulations.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd         = "Add"
	opAddDiagonal = "AddDiagonal"
	opMatVec      = "MatVec"
	opDot         = "Dot"
	opVecSub      = "VecSub"
	opInverse     = "Inverse"
	opAllClose    = "AllClose"
	opMul         = "Mul"
)

// matrixErrorf wraps err with an operation tag: "Op: underlying".
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
// Implementation:
//   - Stage 1: validate both operands (non-nil, same shape).
//   - Stage 2: single flat loop over the two buffers.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	ad, err := toDense(a)
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	bd, err := toDense(b)
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	res := &Dense{r: ad.r, c: ad.c, data: make([]float64, len(ad.data)), validateNaNInf: ad.validateNaNInf}
	for k := range res.data {
		res.data[k] = ad.data[k] + bd.data[k]
	}

	return res, nil
}

// AddDiagonal returns m + alpha·I as a fresh Dense; m is left untouched.
// MAIN DESCRIPTION:
//   - Ridge (Tikhonov) regularization of a square matrix: every diagonal
//     entry is shifted by alpha, off-diagonal entries are copied.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square), ErrNaNInf (alpha not finite).
//
// Complexity:
//   - Time O(n²) for the copy, O(n) for the shift.
func AddDiagonal(m Matrix, alpha float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opAddDiagonal, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opAddDiagonal, err)
	}
	if isNonFinite(alpha) {
		return nil, matrixErrorf(opAddDiagonal, ErrNaNInf)
	}
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opAddDiagonal, err)
	}

	res := d.clone()
	for i := 0; i < res.r; i++ {
		res.data[i*res.c+i] += alpha
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; len(x) == m.Cols().
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]float64, d.r)
	var (
		i, j int
		acc  float64
		row  []float64
	)
	for i = 0; i < d.r; i++ {
		acc = ZeroSum
		row = d.rowSlice(i)
		for j = 0; j < d.c; j++ {
			acc += row[j] * x[j]
		}
		y[i] = acc
	}

	return y, nil
}

// Dot returns the inner product Σ a[i]*b[i].
// Errors: ErrDimensionMismatch when len(a) != len(b).
func Dot(a, b []float64) (float64, error) {
	if err := ValidateVecLen(b, len(a)); err != nil {
		return 0, matrixErrorf(opDot, err)
	}

	return dot(a, b), nil
}

// dot is the unchecked inner product; callers guarantee equal lengths.
func dot(a, b []float64) float64 {
	acc := ZeroSum
	for i := range a {
		acc += a[i] * b[i]
	}

	return acc
}

// VecSub returns the fresh vector a - b.
// Errors: ErrDimensionMismatch when len(a) != len(b).
func VecSub(a, b []float64) ([]float64, error) {
	if err := ValidateVecLen(b, len(a)); err != nil {
		return nil, matrixErrorf(opVecSub, err)
	}
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}

	return out, nil
}

// Inverse computes A^{-1} by Gauss-Jordan elimination with partial pivoting.
// MAIN DESCRIPTION:
//   - Reduce a working copy of A to the identity while applying the same row
//     operations to an augmented identity, which becomes A^{-1}.
//
// Implementation:
//   - Stage 1: validate (non-nil, square) and copy A; allocate I.
//   - Stage 2: for each pivot column i = 0..n-1:
//     a) choose the row p in [i,n) with the maximal |a(p,i)|; the first
//     maximum wins ties;
//     b) if that magnitude is below the pivot tolerance return ErrSingular;
//     c) swap rows i and p in both matrices;
//     d) divide row i of both matrices by the pivot;
//     e) eliminate column i from every other row of both matrices.
//   - Stage 3: return the augmented half.
//
// Behavior highlights:
//   - Never divides by a value below the tolerance; a NaN pivot column is
//     reported as singular as well.
//   - Output is either the complete inverse or an error, never a partial matrix.
//   - The input is not mutated.
//
// Inputs:
//   - m: square Matrix (n×n).
//   - opts: WithPivotTolerance (default DefaultPivotTolerance = 1e-12).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square), ErrSingular.
//
// Complexity:
//   - Time O(n³), Space O(n²) (working copy + inverse).
func Inverse(m Matrix, opts ...Option) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	o := gatherOptions(opts...)

	src, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	n := src.r
	work := src.clone()
	inv, err := Identity(n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	inv.validateNaNInf = o.validateNaNInf

	a, b := work.data, inv.data
	var (
		i, j, k, p  int
		best, v     float64
		pivot, f    float64
		baseI, base int
	)
	for i = 0; i < n; i++ {
		// a) partial pivot search over rows [i,n) of column i.
		p = i
		best = math.Abs(a[i*n+i])
		for k = i + 1; k < n; k++ {
			if v = math.Abs(a[k*n+i]); v > best {
				best, p = v, k
			}
		}
		// b) singularity guard; the negated form also rejects NaN.
		if !(best >= o.pivotTol) || best == 0 {
			return nil, matrixErrorf(opInverse, fmt.Errorf("pivot column %d (|pivot|=%g): %w", i, best, ErrSingular))
		}
		// c) bring the pivot row into position i.
		if p != i {
			swapRows(a, n, i, p)
			swapRows(b, n, i, p)
		}
		// d) normalize the pivot row.
		baseI = i * n
		pivot = a[baseI+i]
		for j = 0; j < n; j++ {
			a[baseI+j] /= pivot
			b[baseI+j] /= pivot
		}
		// e) clear column i in every other row.
		for k = 0; k < n; k++ {
			if k == i {
				continue
			}
			base = k * n
			f = a[base+i]
			if f == 0 {
				continue
			}
			for j = 0; j < n; j++ {
				a[base+j] -= f * a[baseI+j]
				b[base+j] -= f * b[baseI+j]
			}
		}
	}

	return inv, nil
}

// swapRows exchanges rows i and p of an n-column flat buffer in place.
func swapRows(buf []float64, n, i, p int) {
	ri := buf[i*n : (i+1)*n]
	rp := buf[p*n : (p+1)*n]
	for j := 0; j < n; j++ {
		ri[j], rp[j] = rp[j], ri[j]
	}
}

// AllClose reports whether a and b have the same shape and every pair of
// entries differs by at most tol.
// Errors: ErrNilMatrix; a shape mismatch is reported as (false, nil).
func AllClose(a, b Matrix, tol float64) (bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if ValidateSameShape(a, b) != nil {
		return false, nil
	}
	ad, err := toDense(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	bd, err := toDense(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	for k := range ad.data {
		if !equalWithin(ad.data[k], bd.data[k], tol) {
			return false, nil
		}
	}

	return true, nil
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Errors: ErrNilMatrix, ErrDimensionMismatch when a.Cols != b.Rows.
// Complexity: Time O(r*k*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if a.Cols() != b.Rows() {
		return nil, matrixErrorf(opMul, ErrDimensionMismatch)
	}
	ad, err := toDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	bd, err := toDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	r, inner, c := ad.r, ad.c, bd.c
	res := &Dense{r: r, c: c, data: make([]float64, r*c), validateNaNInf: ad.validateNaNInf}
	var i, k, j int
	var aik float64
	for i = 0; i < r; i++ {
		out := res.data[i*c : (i+1)*c]
		for k = 0; k < inner; k++ {
			aik = ad.data[i*inner+k]
			if aik == 0 {
				continue
			}
			row := bd.data[k*c : (k+1)*c]
			for j = 0; j < c; j++ {
				out[j] += aik * row[j]
			}
		}
	}

	return res, nil
}
