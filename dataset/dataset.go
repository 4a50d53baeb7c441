// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"

	"github.com/katalvlaran/lvlda/matrix"
)

// CellIssue records one cell that did not parse as intended. Line is the
// 1-based input line, Column the raw 0-based column index.
type CellIssue struct {
	Line   int
	Column int
	Value  string
	Reason string
}

// String renders the issue for logs.
func (c CellIssue) String() string {
	return fmt.Sprintf("line %d col %d %q: %s", c.Line, c.Column, c.Value, c.Reason)
}

// Dataset is an ordered table of feature rows.
//   - X holds n×d features in one flat row-major buffer.
//   - Y holds one Label per row for labeled input; nil for unlabeled input.
//   - IDs holds the dropped identifier column, row-aligned with X.
//   - FeatureCols maps feature j to its raw input column.
//   - Issues lists every recovered cell problem (ZeroFill / unknown labels).
type Dataset struct {
	Header      []string
	IDs         []string
	X           *matrix.Dense
	Y           []Label
	FeatureCols []int
	Issues      []CellIssue
}

// FeatureNames returns the header cell of every feature column, or nil when
// the input had no header (or a header narrower than the rows).
func (ds *Dataset) FeatureNames() []string {
	if ds == nil || len(ds.Header) == 0 || len(ds.FeatureCols) == 0 {
		return nil
	}
	names := make([]string, len(ds.FeatureCols))
	for j, col := range ds.FeatureCols {
		if col >= len(ds.Header) {
			return nil
		}
		names[j] = ds.Header[col]
	}

	return names
}

// Len is the number of rows.
func (ds *Dataset) Len() int {
	if ds == nil || ds.X == nil {
		return 0
	}

	return ds.X.Rows()
}

// Dim is the feature dimension d.
func (ds *Dataset) Dim() int {
	if ds == nil || ds.X == nil {
		return 0
	}

	return ds.X.Cols()
}

// Labeled reports whether the dataset carries class labels.
func (ds *Dataset) Labeled() bool {
	return ds != nil && ds.Y != nil
}

// ClassCounts returns the number of Negative and Positive rows.
func (ds *Dataset) ClassCounts() (neg, pos int) {
	for _, y := range ds.Y {
		if y == Positive {
			pos++
		} else {
			neg++
		}
	}

	return neg, pos
}

// ByClass partitions X into the Negative rows and the Positive rows, both
// in input order. Either result may have zero rows.
func (ds *Dataset) ByClass() (x0, x1 *matrix.Dense, err error) {
	if !ds.Labeled() {
		return nil, nil, fmt.Errorf("ByClass: unlabeled dataset: %w", ErrMalformedRow)
	}
	idx0 := make([]int, 0, len(ds.Y))
	idx1 := make([]int, 0, len(ds.Y))
	for i, y := range ds.Y {
		if y == Positive {
			idx1 = append(idx1, i)
		} else {
			idx0 = append(idx0, i)
		}
	}
	if x0, err = ds.X.SelectRows(idx0); err != nil {
		return nil, nil, fmt.Errorf("ByClass: %w", err)
	}
	if x1, err = ds.X.SelectRows(idx1); err != nil {
		return nil, nil, fmt.Errorf("ByClass: %w", err)
	}

	return x0, x1, nil
}

// Subset copies the listed rows (in the given order) into a new Dataset.
// Header and FeatureCols are shared; Issues are not carried over.
func (ds *Dataset) Subset(idx []int) (*Dataset, error) {
	x, err := ds.X.SelectRows(idx)
	if err != nil {
		return nil, fmt.Errorf("Subset: %w", err)
	}
	out := &Dataset{
		Header:      ds.Header,
		IDs:         make([]string, len(idx)),
		X:           x,
		FeatureCols: ds.FeatureCols,
	}
	if ds.Y != nil {
		out.Y = make([]Label, len(idx))
	}
	for k, i := range idx {
		out.IDs[k] = ds.IDs[i]
		if ds.Y != nil {
			out.Y[k] = ds.Y[i]
		}
	}

	return out, nil
}
