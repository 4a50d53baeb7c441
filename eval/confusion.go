// SPDX-License-Identifier: MIT

package eval

import (
	"fmt"

	"github.com/katalvlaran/lvlda/dataset"
)

// Report is the confusion matrix of a binary classifier and the metrics
// derived from it. Positive is the class of interest.
type Report struct {
	TP, TN, FP, FN int

	Accuracy  float64
	ErrorRate float64
	Precision float64
	Recall    float64
	F1        float64
}

// Total is the number of evaluated pairs.
func (r Report) Total() int { return r.TP + r.TN + r.FP + r.FN }

// Evaluate compares yTrue and yPred pairwise.
// Errors: ErrLengthMismatch, ErrEmpty.
// Complexity: O(n).
func Evaluate(yTrue, yPred []dataset.Label) (Report, error) {
	if len(yTrue) != len(yPred) {
		return Report{}, fmt.Errorf("Evaluate: %d truths, %d predictions: %w", len(yTrue), len(yPred), ErrLengthMismatch)
	}
	if len(yTrue) == 0 {
		return Report{}, fmt.Errorf("Evaluate: %w", ErrEmpty)
	}

	var r Report
	for i, t := range yTrue {
		p := yPred[i]
		switch {
		case t == dataset.Positive && p == dataset.Positive:
			r.TP++
		case t != dataset.Positive && p != dataset.Positive:
			r.TN++
		case p == dataset.Positive:
			r.FP++
		default:
			r.FN++
		}
	}

	r.Accuracy = ratio(r.TP+r.TN, r.Total())
	r.ErrorRate = 1 - r.Accuracy
	r.Precision = ratio(r.TP, r.TP+r.FP)
	r.Recall = ratio(r.TP, r.TP+r.FN)
	if s := r.Precision + r.Recall; s > 0 {
		r.F1 = 2 * r.Precision * r.Recall / s
	}

	return r, nil
}

func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}

	return float64(num) / float64(den)
}
