// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"
	"strings"
)

// Label is the binary class of a row.
type Label int

const (
	// Negative is class 0 (marked "H" by default).
	Negative Label = 0
	// Positive is class 1 (marked "P" by default).
	Positive Label = 1
)

// String renders the numeric class.
func (l Label) String() string {
	if l == Positive {
		return "1"
	}

	return "0"
}

// UnknownPolicy decides what happens to a label cell matching neither marker.
type UnknownPolicy int

const (
	// UnknownAsNegative maps the cell to Negative and records a CellIssue.
	UnknownAsNegative UnknownPolicy = iota
	// UnknownReject fails the row with ErrUnknownLabel.
	UnknownReject
)

// ParseUnknownPolicy maps the configuration names "negative" and "reject".
func ParseUnknownPolicy(s string) (UnknownPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "negative":
		return UnknownAsNegative, nil
	case "reject":
		return UnknownReject, nil
	default:
		return 0, fmt.Errorf("unknown label policy %q: %w", s, ErrInvalidLabelMap)
	}
}

// LabelMap is the explicit two-symbol encoding of the class column.
// A cell belongs to a class when it contains that class's marker; the
// positive marker is tested first, so "PH" decodes as Positive.
type LabelMap struct {
	Positive string
	Negative string
	Unknown  UnknownPolicy
}

// DefaultLabelMap returns P → Positive, H → Negative, unknown → Negative.
func DefaultLabelMap() LabelMap {
	return LabelMap{Positive: "P", Negative: "H", Unknown: UnknownAsNegative}
}

// Validate rejects empty or identical markers.
func (lm LabelMap) Validate() error {
	p, n := strings.TrimSpace(lm.Positive), strings.TrimSpace(lm.Negative)
	if p == "" || n == "" {
		return fmt.Errorf("empty marker: %w", ErrInvalidLabelMap)
	}
	if p == n {
		return fmt.Errorf("markers both %q: %w", p, ErrInvalidLabelMap)
	}

	return nil
}

// Decode maps a raw cell to a Label. known is false when the cell matched
// neither marker; err is set only under UnknownReject.
func (lm LabelMap) Decode(cell string) (l Label, known bool, err error) {
	switch {
	case strings.Contains(cell, strings.TrimSpace(lm.Positive)):
		return Positive, true, nil
	case strings.Contains(cell, strings.TrimSpace(lm.Negative)):
		return Negative, true, nil
	}
	if lm.Unknown == UnknownReject {
		return Negative, false, fmt.Errorf("%q: %w", cell, ErrUnknownLabel)
	}

	return Negative, false, nil
}

// Marker returns the symbol written for l in prediction output.
func (lm LabelMap) Marker(l Label) string {
	if l == Positive {
		return lm.Positive
	}

	return lm.Negative
}
