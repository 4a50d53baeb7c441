// SPDX-License-Identifier: MIT

package lda

import (
	"errors"

	"github.com/katalvlaran/lvlda/matrix"
)

var (
	// ErrEmptyClass is returned when either class has no rows.
	ErrEmptyClass = errors.New("lda: class has no rows")

	// ErrInvalidLambda is returned for a negative or non-finite ridge term.
	ErrInvalidLambda = errors.New("lda: lambda must be finite and non-negative")

	// ErrMalformedModel marks model text that does not follow the layout.
	ErrMalformedModel = errors.New("lda: malformed model")

	// ErrIO wraps failures of the underlying reader, writer or file system.
	ErrIO = errors.New("lda: i/o failure")

	// ErrNilModel is returned by methods invoked on a nil *Model.
	ErrNilModel = errors.New("lda: nil model")
)

// Re-exported matrix sentinels so callers of this package need one import.
var (
	ErrSingular          = matrix.ErrSingular
	ErrDimensionMismatch = matrix.ErrDimensionMismatch
)
