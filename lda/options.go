// SPDX-License-Identifier: MIT

package lda

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlda/matrix"
)

// DefaultLambda is the ridge term added to the scatter diagonal.
const DefaultLambda = 1e-4

// Option configures Train and Fit.
type Option func(*options)

type options struct {
	lambda   float64
	pivotTol float64
	log      *zap.SugaredLogger
}

// WithLambda sets the ridge term λ. λ = 0 disables regularization and may
// surface ErrSingular; λ < 0 is rejected by Train with ErrInvalidLambda.
func WithLambda(lambda float64) Option {
	return func(o *options) { o.lambda = lambda }
}

// WithPivotTolerance forwards the singularity floor to matrix.Inverse.
// Panics on a negative or non-finite tol, as matrix.WithPivotTolerance does.
func WithPivotTolerance(tol float64) Option {
	matrix.WithPivotTolerance(tol) // validate eagerly

	return func(o *options) { o.pivotTol = tol }
}

// WithLogger attaches a logger for training diagnostics (debug level).
// A nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l.Named("lda").Sugar()
		}
	}
}

func gatherOptions(opts ...Option) options {
	o := options{
		lambda:   DefaultLambda,
		pivotTol: matrix.DefaultPivotTolerance,
		log:      zap.NewNop().Sugar(),
	}
	for _, set := range opts {
		if set != nil {
			set(&o)
		}
	}

	return o
}
