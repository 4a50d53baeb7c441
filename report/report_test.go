// SPDX-License-Identifier: MIT
package report_test

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/lvlda/eval"
	"github.com/katalvlaran/lvlda/history"
	"github.com/katalvlaran/lvlda/lda"
	"github.com/katalvlaran/lvlda/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var halfReport = eval.Report{TP: 1, TN: 1, FP: 1, FN: 1,
	Accuracy: 0.5, ErrorRate: 0.5, Precision: 0.5, Recall: 0.5, F1: 0.5}

func TestEvaluation_Plain(t *testing.T) {
	got := report.Renderer{Plain: true}.Evaluation(halfReport)
	want := strings.Join([]string{
		"Confusion matrix (4 records)",
		"           pred 1   pred 0",
		"true 1          1        1",
		"true 0          1        1",
		"",
		"Metrics",
		"Accuracy   0.5000",
		"Error      0.5000",
		"Precision  0.5000",
		"Recall     0.5000",
		"F1         0.5000",
	}, "\n") + "\n"
	assert.Equal(t, want, got)
}

func TestEvaluation_Styled(t *testing.T) {
	got := report.Renderer{}.Evaluation(halfReport)
	assert.Contains(t, got, "Confusion matrix")
	assert.Contains(t, got, "0.5000")
	assert.Contains(t, got, "╭", "styled output is boxed")
}

func TestModel(t *testing.T) {
	m, err := lda.NewModel([]float64{0.1, -3, 2}, 0.75, []float64{1, 2, 2}, nil)
	require.NoError(t, err)

	got := report.Renderer{Plain: true}.Model(m, 2, []string{"age", "mmse", "tau"})
	assert.Contains(t, got, "Features   3\n")
	assert.Contains(t, got, "Threshold  0.75\n")
	assert.Contains(t, got, "|mean0|    3\n")
	assert.Contains(t, got, "Priors     0\n")
	assert.Contains(t, got, "Top 2 weights\n")
	mmse := strings.Index(got, "mmse")
	tau := strings.Index(got, "tau")
	require.True(t, mmse > 0 && tau > mmse, "weights ordered by magnitude")
	assert.NotContains(t, got, "age")

	unnamed := report.Renderer{Plain: true}.Model(m, 10, nil)
	assert.Contains(t, unnamed, "Top 3 weights")
	assert.Contains(t, unnamed, "f0")
}

func TestRuns(t *testing.T) {
	r := report.Renderer{Plain: true}
	assert.Equal(t, "no recorded runs\n", r.Runs(nil))

	id := uuid.MustParse("0d3e5a4c-1111-4222-8333-444455556666")
	got := r.Runs([]history.Run{{
		ID:        id,
		CreatedAt: time.Date(2026, 10, 1, 9, 30, 0, 0, time.Local),
		DataPath:  "train.csv",
		ModelPath: "m.txt",
		Lambda:    1e-4,
		Seed:      42,
		Split:     0.8,
		Report:    halfReport,
	}})
	assert.Contains(t, got, "0d3e5a4c")
	assert.Contains(t, got, "2026-10-01 09:30")
	assert.Contains(t, got, "0.5000")
	assert.Contains(t, got, "train.csv (m.txt)")
}
