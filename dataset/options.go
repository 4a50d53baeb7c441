// SPDX-License-Identifier: MIT

package dataset

// ParseMode selects how a non-numeric feature cell is handled.
type ParseMode int

const (
	// ZeroFill replaces the cell with 0.0 and records a CellIssue.
	ZeroFill ParseMode = iota
	// Strict fails the row with ErrMalformedRow.
	Strict
)

// Options configures the CSV readers and the prediction writer.
//
// Fields:
//   - HasHeader: the first line is a header, kept in Dataset.Header and not parsed.
//   - LabelColumn: raw column index of the class cell in labeled input.
//     Negative values count from the end (-1 = last column). Column 0 is
//     always the row identifier and can't hold the label.
//   - Delimiter: field separator.
//   - Mode: ZeroFill or Strict for bad numeric cells.
//   - Labels: class marker mapping.
type Options struct {
	HasHeader   bool
	LabelColumn int
	Delimiter   rune
	Mode        ParseMode
	Labels      LabelMap
}

// DefaultOptions returns header on, label in the last column, comma
// separated, ZeroFill, DefaultLabelMap.
func DefaultOptions() Options {
	return Options{
		HasHeader:   true,
		LabelColumn: -1,
		Delimiter:   ',',
		Mode:        ZeroFill,
		Labels:      DefaultLabelMap(),
	}
}

func (o Options) delimiter() rune {
	if o.Delimiter == 0 {
		return ','
	}

	return o.Delimiter
}
