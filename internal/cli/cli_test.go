// SPDX-License-Identifier: MIT
package cli_test

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/lvlda/internal/cli"
	"github.com/katalvlaran/lvlda/lda"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixture holds temp paths shared by one test.
type fixture struct {
	dir, data, input, model, db string
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	dir := t.TempDir()
	f := fixture{
		dir:   dir,
		data:  filepath.Join(dir, "train.csv"),
		input: filepath.Join(dir, "new.csv"),
		model: filepath.Join(dir, "model.txt"),
		db:    filepath.Join(dir, "runs.db"),
	}

	var b strings.Builder
	b.WriteString("id,f1,f2,f3,class\n")
	for i := 0; i < 60; i++ {
		base, marker := 0.0, "H"
		if i%2 == 1 {
			base, marker = 5.0, "P"
		}
		fmt.Fprintf(&b, "s%d,%g,%g,%g,%s\n", i,
			base+0.1*float64(i%7), base+0.2*float64(i%3), 2*base+0.05*float64(i%11), marker)
	}
	require.NoError(t, os.WriteFile(f.data, []byte(b.String()), 0o600))
	require.NoError(t, os.WriteFile(f.input, []byte("id,f1,f2,f3\nn1,0.1,0.2,0.1\nn2,5.2,5.1,10.3\n"), 0o600))

	return f
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := cli.Run(context.Background(), append([]string{"--plain"}, args...), &out, &errOut)

	return out.String(), err
}

func TestTrainInspectPredict(t *testing.T) {
	f := newFixture(t)

	out, err := run(t, "train", "--data", f.data, "--model", f.model)
	require.NoError(t, err)
	assert.Contains(t, out, "Discriminant model")
	assert.Contains(t, out, "Features   3")
	assert.Contains(t, out, "f3")

	m, err := lda.LoadFile(f.model)
	require.NoError(t, err)
	assert.Equal(t, 3, m.Dim())

	out, err = run(t, "inspect", "--model", f.model, "--top", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Top 2 weights")

	out, err = run(t, "predict", "--model", f.model, "--input", f.input)
	require.NoError(t, err)
	assert.Equal(t, "id,f1,f2,f3,predicted_class\nn1,0.1,0.2,0.1,H\nn2,5.2,5.1,10.3,P\n", out)

	pred := filepath.Join(f.dir, "pred.csv")
	_, err = run(t, "predict", "--model", f.model, "--input", f.input, "--output", pred)
	require.NoError(t, err)
	got, err := os.ReadFile(pred)
	require.NoError(t, err)
	assert.Equal(t, out, string(got))
}

func TestEvaluateAndHistory(t *testing.T) {
	f := newFixture(t)

	out, err := run(t, "evaluate", "--data", f.data, "--history", f.db, "--seed", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Confusion matrix (12 records)")
	assert.Contains(t, out, "Accuracy   1.0000")

	_, err = run(t, "train", "--data", f.data, "--model", f.model)
	require.NoError(t, err)
	out, err = run(t, "evaluate", "--data", f.data, "--history", f.db, "--model", f.model)
	require.NoError(t, err)
	assert.Contains(t, out, "Accuracy   1.0000")

	out, err = run(t, "history", "--history", f.db)
	require.NoError(t, err)
	assert.Contains(t, out, "train.csv ("+f.model+")")
	assert.Equal(t, 2, strings.Count(out, "train.csv"), "two runs:\n%s", out)

	out, err = run(t, "history", "--history", f.db, "--limit", "1")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "train.csv"))
}

func TestRunEndToEnd(t *testing.T) {
	f := newFixture(t)
	pred := filepath.Join(f.dir, "out.csv")

	out, err := run(t, "run", "--data", f.data, "--input", f.input, "--output", pred,
		"--model", f.model, "--split", "0.75", "--lambda", "0.001")
	require.NoError(t, err)
	assert.Contains(t, out, "Confusion matrix (15 records)")

	_, err = lda.LoadFile(f.model)
	require.NoError(t, err)
	got, err := os.ReadFile(pred)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(got), "n2,5.2,5.1,10.3,P\n"), string(got))
}

func TestErrors(t *testing.T) {
	f := newFixture(t)

	_, err := run(t, "history")
	require.ErrorIs(t, err, cli.ErrHistoryDisabled)

	_, err = run(t, "train")
	require.Error(t, err, "--data is required")

	_, err = run(t, "train", "--data", filepath.Join(f.dir, "missing.csv"), "--model", f.model)
	require.Error(t, err)

	_, err = run(t, "evaluate", "--data", f.data, "--split", "1.5")
	require.Error(t, err)

	_, err = run(t, "predict", "--model", filepath.Join(f.dir, "none.txt"), "--input", f.input)
	require.ErrorIs(t, err, lda.ErrIO)

	_, err = run(t, "train", "--data", f.data, "--model", f.model)
	require.NoError(t, err)
	wide := filepath.Join(f.dir, "wide.csv")
	require.NoError(t, os.WriteFile(wide, []byte("id,a,b\nx,1,2\n"), 0o600))
	_, err = run(t, "predict", "--model", f.model, "--input", wide)
	require.ErrorIs(t, err, lda.ErrDimensionMismatch)
}
