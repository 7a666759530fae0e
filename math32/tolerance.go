// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Tolerance holds the relative and absolute tolerances used
// for approximate floating point comparisons.
type Tolerance struct {

	// Rel is the relative tolerance, scaled by the magnitude
	// of the reference value.
	Rel float32

	// Abs is the absolute tolerance, which dominates near zero.
	Abs float32
}

// DefaultTolerance is the tolerance used throughout spatial
// for boundary and sign tests: the conventional isclose defaults.
var DefaultTolerance = Tolerance{Rel: 1e-5, Abs: 1e-8}

// IsClose returns whether a and b are equal within the given tolerance:
// |a - b| <= tol.Abs + tol.Rel * |b|.
// Note that this is not symmetric in a and b when tol.Rel is non-zero;
// b is the reference value.
func IsClose(a, b float32, tol Tolerance) bool {
	if a == b {
		return true
	}
	return Abs(a-b) <= tol.Abs+tol.Rel*Abs(b)
}

// IsZero returns whether a is zero within the absolute tolerance.
func IsZero(a float32, tol Tolerance) bool {
	return Abs(a) <= tol.Abs
}

// LessOrClose returns whether a < b or a is close to b.
// This is the inclusive comparison used for boundary tests,
// which must not exclude values lying on a bound up to
// floating point error.
func LessOrClose(a, b float32, tol Tolerance) bool {
	return a < b || IsClose(a, b, tol)
}
