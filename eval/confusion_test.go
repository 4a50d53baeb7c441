// SPDX-License-Identifier: MIT
package eval_test

import (
	"testing"

	"github.com/katalvlaran/lvlda/dataset"
	"github.com/katalvlaran/lvlda/eval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	P = dataset.Positive
	N = dataset.Negative
)

func TestEvaluate(t *testing.T) {
	cases := []struct {
		name        string
		truth, pred []dataset.Label
		want        eval.Report
	}{
		{
			name:  "one of each",
			truth: []dataset.Label{P, N, P, N},
			pred:  []dataset.Label{P, N, N, P},
			want: eval.Report{TP: 1, TN: 1, FP: 1, FN: 1,
				Accuracy: 0.5, ErrorRate: 0.5, Precision: 0.5, Recall: 0.5, F1: 0.5},
		},
		{
			name:  "perfect",
			truth: []dataset.Label{P, N, N},
			pred:  []dataset.Label{P, N, N},
			want: eval.Report{TP: 1, TN: 2,
				Accuracy: 1, ErrorRate: 0, Precision: 1, Recall: 1, F1: 1},
		},
		{
			name:  "never positive",
			truth: []dataset.Label{P, N},
			pred:  []dataset.Label{N, N},
			want: eval.Report{TN: 1, FN: 1,
				Accuracy: 0.5, ErrorRate: 0.5},
		},
		{
			name:  "all negative truth",
			truth: []dataset.Label{N, N, N, N},
			pred:  []dataset.Label{N, P, N, N},
			want: eval.Report{TN: 3, FP: 1,
				Accuracy: 0.75, ErrorRate: 0.25},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := eval.Evaluate(tc.truth, tc.pred)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, len(tc.truth), got.Total())
		})
	}
}

func TestEvaluate_Errors(t *testing.T) {
	_, err := eval.Evaluate([]dataset.Label{P}, nil)
	require.ErrorIs(t, err, eval.ErrLengthMismatch)

	_, err = eval.Evaluate(nil, nil)
	require.ErrorIs(t, err, eval.ErrEmpty)
}
