// SPDX-License-Identifier: MIT

// Package lda trains and applies a regularized two-class Linear Discriminant
// Analysis model.
//
// Training (Train, Fit):
//
//	mean_k = ColumnMeans(X_k)                 k ∈ {0,1}
//	Sw     = Cov(X_0) + Cov(X_1) + λ·I        pooled within-class scatter
//	w      = Sw⁻¹ · (mean_1 − mean_0)
//	t      = ½·(w·mean_0 + w·mean_1)
//
// The threshold is the midpoint of the two projected class means: an
// equal-prior rule, not a Bayes-optimal one. Model.Priors is kept in the
// model and in the text format but is always empty.
//
// Scoring (Model.Predict) returns Positive iff w·x > t; a tie is Negative.
// A Model is immutable once built and safe for concurrent readers.
//
// Persistence (WriteText, ReadText, SaveFile, LoadFile) uses the plain
// sequential text layout
//
//	len(mean0)
//	mean0...
//	len(w)
//	w...
//	t
//	len(priors)
//	priors...
//
// with shortest round-trip float formatting, so save then load is exact.
package lda
