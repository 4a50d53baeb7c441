// SPDX-License-Identifier: MIT

// Package report renders evaluation results, model summaries and run
// history for the terminal.
package report

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/katalvlaran/lvlda/eval"
	"github.com/katalvlaran/lvlda/history"
	"github.com/katalvlaran/lvlda/lda"
)

// Palette
var (
	primary = lipgloss.Color("#8B5CF6")
	accent  = lipgloss.Color("#14B8A6")
	dim     = lipgloss.Color("#94A3B8")
	border  = lipgloss.Color("#334155")
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(primary)
	valueStyle = lipgloss.NewStyle().Foreground(accent)
	hintStyle  = lipgloss.NewStyle().Foreground(dim).Italic(true)
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1)
)

// Renderer formats values as text blocks. Plain disables every style so the
// output is stable for pipes and tests.
type Renderer struct {
	Plain bool
}

func (r Renderer) title(s string) string {
	if r.Plain {
		return s
	}

	return titleStyle.Render(s)
}

func (r Renderer) value(s string) string {
	if r.Plain {
		return s
	}

	return valueStyle.Render(s)
}

func (r Renderer) hint(s string) string {
	if r.Plain {
		return s
	}

	return hintStyle.Render(s)
}

// frame boxes a finished block; plain output just ends with a newline.
func (r Renderer) frame(body string) string {
	body = strings.TrimRight(body, "\n")
	if r.Plain {
		return body + "\n"
	}

	return boxStyle.Render(body) + "\n"
}

// Evaluation renders the confusion matrix and derived metrics.
func (r Renderer) Evaluation(rep eval.Report) string {
	var b strings.Builder
	b.WriteString(r.title(fmt.Sprintf("Confusion matrix (%d records)", rep.Total())))
	b.WriteByte('\n')
	fmt.Fprintf(&b, "%-8s %8s %8s\n", "", "pred 1", "pred 0")
	fmt.Fprintf(&b, "%-8s %8d %8d\n", "true 1", rep.TP, rep.FN)
	fmt.Fprintf(&b, "%-8s %8d %8d\n", "true 0", rep.FP, rep.TN)
	b.WriteByte('\n')
	b.WriteString(r.title("Metrics"))
	b.WriteByte('\n')
	for _, m := range []struct {
		name string
		v    float64
	}{
		{"Accuracy", rep.Accuracy},
		{"Error", rep.ErrorRate},
		{"Precision", rep.Precision},
		{"Recall", rep.Recall},
		{"F1", rep.F1},
	} {
		fmt.Fprintf(&b, "%-10s %s\n", m.name, r.value(fmt.Sprintf("%.4f", m.v)))
	}

	return r.frame(b.String())
}

// Model renders dimensions, threshold and the top weights by magnitude.
// names, when len(names) == m.Dim(), labels the features; otherwise they are
// shown as f<index>.
func (r Renderer) Model(m *lda.Model, top int, names []string) string {
	w := m.Weights()
	var b strings.Builder
	b.WriteString(r.title("Discriminant model"))
	b.WriteByte('\n')
	fmt.Fprintf(&b, "%-10s %s\n", "Features", r.value(fmt.Sprint(m.Dim())))
	fmt.Fprintf(&b, "%-10s %s\n", "Threshold", r.value(fmt.Sprintf("%.6g", m.Threshold())))
	fmt.Fprintf(&b, "%-10s %s\n", "|w|", r.value(fmt.Sprintf("%.6g", norm(w))))
	fmt.Fprintf(&b, "%-10s %s\n", "|mean0|", r.value(fmt.Sprintf("%.6g", norm(m.Mean0()))))
	fmt.Fprintf(&b, "%-10s %s\n", "Priors", r.value(fmt.Sprint(len(m.Priors()))))

	if top > len(w) {
		top = len(w)
	}
	if top > 0 {
		idx := make([]int, len(w))
		for i := range idx {
			idx[i] = i
		}
		sort.SliceStable(idx, func(a, b int) bool { return math.Abs(w[idx[a]]) > math.Abs(w[idx[b]]) })

		b.WriteByte('\n')
		b.WriteString(r.title(fmt.Sprintf("Top %d weights", top)))
		b.WriteByte('\n')
		for _, i := range idx[:top] {
			name := fmt.Sprintf("f%d", i)
			if len(names) == len(w) {
				name = names[i]
			}
			fmt.Fprintf(&b, "%-16s %s\n", name, r.value(fmt.Sprintf("%+.6g", w[i])))
		}
	}

	return r.frame(b.String())
}

// Runs renders recorded evaluation runs, one per line.
func (r Renderer) Runs(runs []history.Run) string {
	if len(runs) == 0 {
		return r.hint("no recorded runs") + "\n"
	}
	var b strings.Builder
	b.WriteString(r.title(fmt.Sprintf("%-8s  %-16s  %-8s  %-6s  %-5s  %-8s  %-8s  %s",
		"id", "when", "lambda", "seed", "split", "accuracy", "f1", "data")))
	b.WriteByte('\n')
	for _, run := range runs {
		data := run.DataPath
		if run.ModelPath != "" {
			data += " (" + run.ModelPath + ")"
		}
		fmt.Fprintf(&b, "%-8s  %-16s  %-8.2g  %-6d  %-5.2f  %-8.4f  %-8.4f  %s\n",
			run.ID.String()[:8],
			run.CreatedAt.Local().Format("2006-01-02 15:04"),
			run.Lambda, run.Seed, run.Split,
			run.Report.Accuracy, run.Report.F1, data)
	}

	return r.frame(b.String())
}

func norm(v []float64) float64 {
	s := 0.0
	for _, x := range v {
		s += x * x
	}

	return math.Sqrt(s)
}
