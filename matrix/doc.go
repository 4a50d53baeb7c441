// Package matrix provides the dense linear-algebra kernels behind the
// discriminant trainer.
//
// The matrix package provides:
//
//   - Dense, a row-major matrix over one flat []float64 buffer with explicit
//     row/column metadata (offset = i*cols + j), safe At/Set accessors and
//     row selection for class partitioning.
//   - Add, AddDiagonal (ridge term), MatVec, Dot and VecSub.
//   - Inverse, Gauss-Jordan elimination with partial pivoting against an
//     augmented identity. A pivot below the tolerance yields ErrSingular and
//     never a partially computed matrix.
//   - ColumnMeans and Covariance (unbiased, n-1 denominator) over the rows of
//     a data matrix.
//
// All kernels are deterministic: fixed loop orders, first-maximum pivot
// tie-breaking, no shared state. Results are fresh allocations; inputs are
// never mutated.
package matrix
