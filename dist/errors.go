// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"fmt"
	"strings"
)

// An InvalidParameterError reports a distribution constructed with
// parameters outside its domain. It is always returned at construction
// time, never deferred to evaluation.
type InvalidParameterError struct {
	// Dist is the distribution family name.
	Dist string

	// Param is the offending parameter name.
	Param string

	// Reason describes the violated constraint.
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("dist: invalid parameter %s of %s: %s", e.Param, e.Dist, e.Reason)
}

// A ConvergenceError reports that a numerical derivation (root finding
// for a missing inverse CDF, bracket expansion for missing bounds)
// failed to converge within its iteration budget.
type ConvergenceError struct {
	// Dist is the distribution family name.
	Dist string

	// Op is the operation that failed, e.g. "InvCDF".
	Op string

	// Value is the query value the operation was evaluated at.
	Value float64

	// Iters is the iteration budget that was exhausted.
	Iters int
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("dist: %s.%s(%g) did not converge within %d iterations",
		e.Dist, e.Op, e.Value, e.Iters)
}

// A BatchError reports which elements of a batch evaluation failed.
// The successful elements of the returned slice are still valid; the
// failed elements are NaN.
type BatchError struct {
	// Indices are the positions in the input batch that failed.
	Indices []int

	// Err is the error from the first failed element.
	Err error
}

func (e *BatchError) Error() string {
	var idx []string
	for _, i := range e.Indices {
		idx = append(idx, fmt.Sprint(i))
	}
	return fmt.Sprintf("dist: batch evaluation failed at indices [%s]: %v",
		strings.Join(idx, " "), e.Err)
}

func (e *BatchError) Unwrap() error { return e.Err }
