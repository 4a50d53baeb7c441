// SPDX-License-Identifier: MIT

package lda

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

// WriteText serializes m in the sequential text layout described in the
// package documentation.
// Errors: ErrNilModel, ErrIO.
func WriteText(w io.Writer, m *Model) error {
	if m == nil {
		return ErrNilModel
	}
	bw := bufio.NewWriter(w)
	writeVec(bw, m.mean0)
	writeVec(bw, m.weights)
	bw.WriteString(formatFloat(m.threshold))
	bw.WriteByte('\n')
	writeVec(bw, m.priors)
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("WriteText: %w: %w", ErrIO, err)
	}

	return nil
}

// writeVec emits "len\nv1 v2 ...\n". Write errors are sticky in bufio and
// surface at Flush.
func writeVec(bw *bufio.Writer, v []float64) {
	bw.WriteString(strconv.Itoa(len(v)))
	bw.WriteByte('\n')
	for i, x := range v {
		if i > 0 {
			bw.WriteByte(' ')
		}
		bw.WriteString(formatFloat(x))
	}
	bw.WriteByte('\n')
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// tokenReader yields whitespace-separated tokens; layout is not line-bound.
type tokenReader struct {
	sc  *bufio.Scanner
	pos int
}

func (t *tokenReader) next(what string) (string, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return "", fmt.Errorf("%w: %w", ErrIO, err)
		}
		return "", fmt.Errorf("token %d (%s): unexpected end of input: %w", t.pos, what, ErrMalformedModel)
	}
	t.pos++

	return t.sc.Text(), nil
}

func (t *tokenReader) float(what string) (float64, error) {
	tok, err := t.next(what)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("token %d (%s) %q: %w", t.pos, what, tok, ErrMalformedModel)
	}

	return v, nil
}

func (t *tokenReader) vec(what string) ([]float64, error) {
	tok, err := t.next(what + " count")
	if err != nil {
		return nil, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil || n < 0 {
		return nil, fmt.Errorf("token %d (%s count) %q: %w", t.pos, what, tok, ErrMalformedModel)
	}
	var out []float64
	for i := 0; i < n; i++ {
		v, err := t.float(what)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, nil
}

// ReadText parses a model written by WriteText (or any producer of the same
// token sequence). Extra tokens after the prior vector are rejected.
// Errors: ErrMalformedModel, ErrDimensionMismatch, ErrIO.
func ReadText(r io.Reader) (*Model, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), 1<<20)
	sc.Split(bufio.ScanWords)
	t := &tokenReader{sc: sc}

	mean0, err := t.vec("mean0")
	if err != nil {
		return nil, fmt.Errorf("ReadText: %w", err)
	}
	w, err := t.vec("weights")
	if err != nil {
		return nil, fmt.Errorf("ReadText: %w", err)
	}
	threshold, err := t.float("threshold")
	if err != nil {
		return nil, fmt.Errorf("ReadText: %w", err)
	}
	priors, err := t.vec("priors")
	if err != nil {
		return nil, fmt.Errorf("ReadText: %w", err)
	}
	if _, err = t.next("end"); err == nil {
		return nil, fmt.Errorf("ReadText: trailing data after priors: %w", ErrMalformedModel)
	} else if errors.Is(err, ErrIO) {
		return nil, fmt.Errorf("ReadText: %w", err)
	}

	m, err := NewModel(w, threshold, mean0, priors)
	if err != nil {
		return nil, fmt.Errorf("ReadText: %w: %w", ErrMalformedModel, err)
	}

	return m, nil
}

// SaveFile writes m to path, truncating any existing file.
func SaveFile(path string, m *Model) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("SaveFile %q: %w: %w", path, ErrIO, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("SaveFile %q: %w: %w", path, ErrIO, cerr)
		}
	}()

	return WriteText(f, m)
}

// LoadFile reads a model from path.
func LoadFile(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadFile %q: %w: %w", path, ErrIO, err)
	}
	defer f.Close()

	return ReadText(f)
}
