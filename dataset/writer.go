// SPDX-License-Identifier: MIT

package dataset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// PredictedColumn is the header cell appended to prediction output.
const PredictedColumn = "predicted_class"

// maxLine bounds a single input line (wide biomedical tables run to a few
// tens of KiB per row).
const maxLine = 4 << 20

// WritePredictions echoes input line by line to w, appending one column with
// the marker of the matching prediction. With opts.HasHeader the first line
// gets PredictedColumn instead. Blank lines are skipped, as the readers skip
// them, so preds[i] lines up with the i-th data row.
//
// Quoted cells spanning several physical lines are not supported here.
// Errors: ErrPredictionCount, ErrIO.
func WritePredictions(w io.Writer, input io.Reader, preds []Label, opts Options) error {
	sc := bufio.NewScanner(input)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	bw := bufio.NewWriter(w)
	sep := string(opts.delimiter())

	header := opts.HasHeader
	i := 0
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		var tail string
		if header {
			tail = PredictedColumn
			header = false
		} else {
			if i >= len(preds) {
				return fmt.Errorf("more than %d data rows: %w", len(preds), ErrPredictionCount)
			}
			tail = opts.Labels.Marker(preds[i])
			i++
		}
		if _, err := bw.WriteString(line + sep + tail + "\n"); err != nil {
			return fmt.Errorf("write: %w: %w", ErrIO, err)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read: %w: %w", ErrIO, err)
	}
	if i != len(preds) {
		return fmt.Errorf("%d data rows for %d predictions: %w", i, len(preds), ErrPredictionCount)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush: %w: %w", ErrIO, err)
	}

	return nil
}

// WritePredictionsFile re-reads inputPath and writes the echoed table to outputPath.
func WritePredictionsFile(outputPath, inputPath string, preds []Label, opts Options) (err error) {
	in, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("open %q: %w: %w", inputPath, ErrIO, err)
	}
	defer in.Close()

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create %q: %w: %w", outputPath, ErrIO, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %q: %w: %w", outputPath, ErrIO, cerr)
		}
	}()

	return WritePredictions(out, in, preds, opts)
}
