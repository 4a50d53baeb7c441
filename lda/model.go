// SPDX-License-Identifier: MIT

package lda

import (
	"fmt"

	"github.com/katalvlaran/lvlda/dataset"
	"github.com/katalvlaran/lvlda/matrix"
)

// Model is a trained discriminant: weights w, scalar threshold, the retained
// class-0 mean and an (always empty) prior vector. Fields are unexported and
// accessors return copies, so a Model never changes after construction.
type Model struct {
	weights   []float64
	threshold float64
	mean0     []float64
	priors    []float64
}

// NewModel builds a Model from its parts, copying every slice.
// Errors: ErrDimensionMismatch when len(mean0) != len(weights) or the
// dimension is 0, ErrMalformedModel for a non-finite value.
func NewModel(weights []float64, threshold float64, mean0, priors []float64) (*Model, error) {
	if len(weights) == 0 || len(mean0) != len(weights) {
		return nil, fmt.Errorf("NewModel: len(w)=%d len(mean0)=%d: %w", len(weights), len(mean0), ErrDimensionMismatch)
	}
	for _, vs := range [][]float64{weights, mean0, priors, {threshold}} {
		if err := matrix.ValidateFinite(vs); err != nil {
			return nil, fmt.Errorf("NewModel: %w: %w", ErrMalformedModel, err)
		}
	}

	return &Model{
		weights:   clone(weights),
		threshold: threshold,
		mean0:     clone(mean0),
		priors:    clone(priors),
	}, nil
}

func clone(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)

	return out
}

// Dim is the feature dimension d.
func (m *Model) Dim() int { return len(m.weights) }

// Weights returns a copy of w.
func (m *Model) Weights() []float64 { return clone(m.weights) }

// Threshold returns the decision threshold.
func (m *Model) Threshold() float64 { return m.threshold }

// Mean0 returns a copy of the retained class-0 mean.
func (m *Model) Mean0() []float64 { return clone(m.mean0) }

// Priors returns a copy of the prior vector (currently always empty).
func (m *Model) Priors() []float64 { return clone(m.priors) }

// Score returns the projection w·x.
// Errors: ErrNilModel, ErrDimensionMismatch.
func (m *Model) Score(x []float64) (float64, error) {
	if m == nil {
		return 0, ErrNilModel
	}
	s, err := matrix.Dot(m.weights, x)
	if err != nil {
		return 0, fmt.Errorf("Score: %w", err)
	}

	return s, nil
}

// Predict classifies x: Positive iff w·x > threshold, ties go to Negative.
// Errors: ErrNilModel, ErrDimensionMismatch.
func (m *Model) Predict(x []float64) (dataset.Label, error) {
	s, err := m.Score(x)
	if err != nil {
		return dataset.Negative, err
	}

	return m.decide(s), nil
}

func (m *Model) decide(score float64) dataset.Label {
	if score > m.threshold {
		return dataset.Positive
	}

	return dataset.Negative
}

// PredictAll classifies every row of X in order.
// Errors: ErrNilModel, ErrNilMatrix, ErrDimensionMismatch (X.Cols() != Dim()).
func (m *Model) PredictAll(X matrix.Matrix) ([]dataset.Label, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	if err := matrix.ValidateNotNil(X); err != nil {
		return nil, fmt.Errorf("PredictAll: %w", err)
	}
	scores, err := matrix.MatVec(X, m.weights)
	if err != nil {
		return nil, fmt.Errorf("PredictAll: %w", err)
	}
	out := make([]dataset.Label, len(scores))
	for i, s := range scores {
		out[i] = m.decide(s)
	}

	return out, nil
}
