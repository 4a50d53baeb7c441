// SPDX-License-Identifier: MIT
// Package dataset: sentinel error set. Match with errors.Is; messages carry
// the 1-based input line where one exists.

package dataset

import "errors"

var (
	// ErrMalformedRow marks a data row that cannot be turned into a feature
	// vector: ragged width, missing label column, no feature columns, or (in
	// Strict mode) a non-numeric cell.
	ErrMalformedRow = errors.New("dataset: malformed row")

	// ErrUnknownLabel marks a label cell matching neither configured marker
	// while the label map rejects unknown markers.
	ErrUnknownLabel = errors.New("dataset: unknown label marker")

	// ErrNoRows is returned when the input holds no data rows.
	ErrNoRows = errors.New("dataset: no data rows")

	// ErrIO wraps failures of the underlying reader, writer or file system.
	ErrIO = errors.New("dataset: i/o failure")

	// ErrInvalidRatio is returned by Split for a train ratio outside (0,1).
	ErrInvalidRatio = errors.New("dataset: train ratio must be in (0,1)")

	// ErrInvalidLabelMap is returned for empty or identical class markers.
	ErrInvalidLabelMap = errors.New("dataset: invalid label map")

	// ErrPredictionCount is returned when the number of predictions differs
	// from the number of data rows being echoed.
	ErrPredictionCount = errors.New("dataset: prediction count does not match input rows")
)
