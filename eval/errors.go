// SPDX-License-Identifier: MIT

package eval

import "errors"

var (
	// ErrLengthMismatch is returned when truth and prediction lengths differ.
	ErrLengthMismatch = errors.New("eval: label sequences differ in length")

	// ErrEmpty is returned for zero-length input.
	ErrEmpty = errors.New("eval: no labels to evaluate")
)
