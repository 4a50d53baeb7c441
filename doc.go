// SPDX-License-Identifier: MIT

// Package lvlda is a regularized two-class Linear Discriminant Analysis
// toolkit for tabular biomedical data.
//
// Pipeline:
//
//	CSV ─► dataset.ReadLabeled ─► dataset.Split (seeded)
//	    ─► lda.Fit: per-class ColumnMeans / Covariance
//	                Sw = Cov₀ + Cov₁ + λI, Gauss-Jordan inverse
//	                w = Sw⁻¹(μ₁ − μ₀), t = ½(w·μ₀ + w·μ₁)
//	    ─► lda.Model.Predict (w·x > t) ─► eval.Evaluate
//
// Packages:
//
//	matrix/    flat row-major Dense, Add/AddDiagonal/MatVec, Inverse with
//	           partial pivoting, ColumnMeans and unbiased Covariance
//	dataset/   delimited-text readers, explicit label map, seeded split,
//	           prediction writer
//	lda/       trainer, immutable Model, text model format
//	eval/      confusion matrix and derived metrics
//	config/    viper-backed settings (flags, LVLDA_* env, lvlda.yaml)
//	logging/   zap console logger with an optional rotated file sink
//	history/   SQLite store of evaluation runs
//	report/    terminal rendering of reports, models and run history
//	cmd/lvlda  the command-line tool (train, evaluate, predict, run,
//	           inspect, history)
//
// The numerical core is deterministic and allocation-bounded: O(d²)
// transient memory per training run, one flat buffer per matrix, and no
// shared state, so a trained Model can be used from many goroutines.
package lvlda
