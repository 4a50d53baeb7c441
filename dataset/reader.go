// SPDX-License-Identifier: MIT

// Package dataset - delimited-text ingestion.
//
// Row layout:
//
//	id, f1, f2, ..., fk[, label][, ...]
//
// Column 0 is the identifier and never becomes a feature. In labeled input
// one column (Options.LabelColumn) holds the class marker; every other
// column is a feature. All data rows must have the width of the first one.
//
// Numeric policy: a cell that is not a finite float64 is either recorded and
// replaced by 0.0 (ZeroFill) or fails the row (Strict).

package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlda/matrix"
)

const (
	reasonNotNumber = "not a number"
	reasonNonFinite = "non-finite value"
	reasonUnknown   = "unknown label marker"
)

// ReadLabeled parses a training table.
// Errors: ErrNoRows, ErrMalformedRow, ErrUnknownLabel, ErrInvalidLabelMap, ErrIO.
func ReadLabeled(r io.Reader, opts Options) (*Dataset, error) {
	if err := opts.Labels.Validate(); err != nil {
		return nil, err
	}

	return read(r, opts, true)
}

// ReadUnlabeled parses a table of records to score (no label column).
// Errors: ErrNoRows, ErrMalformedRow, ErrIO.
func ReadUnlabeled(r io.Reader, opts Options) (*Dataset, error) {
	return read(r, opts, false)
}

// ReadLabeledFile opens path and calls ReadLabeled.
func ReadLabeledFile(path string, opts Options) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w: %w", path, ErrIO, err)
	}
	defer f.Close()

	ds, err := ReadLabeled(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return ds, nil
}

// ReadUnlabeledFile opens path and calls ReadUnlabeled.
func ReadUnlabeledFile(path string, opts Options) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w: %w", path, ErrIO, err)
	}
	defer f.Close()

	ds, err := ReadUnlabeled(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return ds, nil
}

// rowParser accumulates rows into one flat buffer.
type rowParser struct {
	opts     Options
	labeled  bool
	width    int // raw record width fixed by the first data row
	labelCol int // resolved raw label index (labeled only)
	dim      int
	cols     []int

	ids    []string
	flat   []float64
	labels []Label
	issues []CellIssue
}

func read(r io.Reader, opts Options, labeled bool) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.Comma = opts.delimiter()
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	p := &rowParser{opts: opts, labeled: labeled, width: -1}
	var header []string
	first := true
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return nil, fmt.Errorf("line %d: %w: %w", pe.Line, ErrMalformedRow, err)
			}
			return nil, fmt.Errorf("read: %w: %w", ErrIO, err)
		}
		line, _ := cr.FieldPos(0)
		if first && opts.HasHeader {
			header = append([]string(nil), rec...)
			first = false
			continue
		}
		first = false
		if err = p.add(line, rec); err != nil {
			return nil, err
		}
	}
	if len(p.ids) == 0 {
		return nil, ErrNoRows
	}

	X, err := matrix.NewDenseData(len(p.ids), p.dim, p.flat)
	if err != nil {
		return nil, fmt.Errorf("build features: %w", err)
	}

	return &Dataset{
		Header:      header,
		IDs:         p.ids,
		X:           X,
		Y:           p.labels,
		FeatureCols: p.cols,
		Issues:      p.issues,
	}, nil
}

// add validates one record and appends its features (and label).
func (p *rowParser) add(line int, rec []string) error {
	if p.width < 0 {
		if err := p.fixLayout(line, rec); err != nil {
			return err
		}
	}
	if len(rec) != p.width {
		return fmt.Errorf("line %d: %d columns, want %d: %w", line, len(rec), p.width, ErrMalformedRow)
	}

	for j := 1; j < len(rec); j++ {
		if p.labeled && j == p.labelCol {
			continue
		}
		v, err := p.parseCell(line, j, rec[j])
		if err != nil {
			return err
		}
		p.flat = append(p.flat, v)
	}
	if p.labeled {
		l, known, err := p.opts.Labels.Decode(rec[p.labelCol])
		if err != nil {
			return fmt.Errorf("line %d col %d: %w", line, p.labelCol, err)
		}
		if !known {
			p.issues = append(p.issues, CellIssue{Line: line, Column: p.labelCol, Value: rec[p.labelCol], Reason: reasonUnknown})
		}
		p.labels = append(p.labels, l)
	}
	p.ids = append(p.ids, rec[0])

	return nil
}

// fixLayout derives width, label index and feature dimension from the first row.
func (p *rowParser) fixLayout(line int, rec []string) error {
	p.width = len(rec)
	p.dim = p.width - 1
	if p.labeled {
		lc := p.opts.LabelColumn
		if lc < 0 {
			lc += p.width
		}
		if lc < 1 || lc >= p.width {
			return fmt.Errorf("line %d: label column %d outside 1..%d: %w", line, p.opts.LabelColumn, p.width-1, ErrMalformedRow)
		}
		p.labelCol = lc
		p.dim--
	}
	if p.dim < 1 {
		return fmt.Errorf("line %d: no feature columns: %w", line, ErrMalformedRow)
	}
	p.cols = make([]int, 0, p.dim)
	for j := 1; j < p.width; j++ {
		if !p.labeled || j != p.labelCol {
			p.cols = append(p.cols, j)
		}
	}

	return nil
}

// parseCell converts one feature cell under the configured ParseMode.
func (p *rowParser) parseCell(line, col int, cell string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	reason := ""
	switch {
	case err != nil:
		reason = reasonNotNumber
	case math.IsNaN(v) || math.IsInf(v, 0):
		reason = reasonNonFinite
	default:
		return v, nil
	}
	if p.opts.Mode == Strict {
		return 0, fmt.Errorf("line %d col %d %q: %s: %w", line, col, cell, reason, ErrMalformedRow)
	}
	p.issues = append(p.issues, CellIssue{Line: line, Column: col, Value: cell, Reason: reason})

	return 0, nil
}
