// SPDX-License-Identifier: MIT

// Package eval scores binary predictions against ground truth.
//
// Evaluate returns a Report value; rendering is left to the caller. Every
// ratio with a zero denominator is defined as 0 instead of NaN.
package eval
