// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quad

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// DegenerateRecurrenceError reports a non-positive recurrence
// coefficient beta computed during coefficient construction. It
// signals either a degenerate weight function or insufficient proxy
// accuracy; the caller can retry with a different algorithm or a
// higher Accuracy.
type DegenerateRecurrenceError struct {
	Order     int
	Dim       int
	Algorithm Algorithm
	Beta      float64
}

func (e *DegenerateRecurrenceError) Error() string {
	return fmt.Sprintf("quad: degenerate recurrence at order %d, dimension %d (%s): beta = %g",
		e.Order, e.Dim, e.Algorithm, e.Beta)
}

// ErrNoAnalytical reports that the analytical algorithm was requested
// for a distribution that defines no closed-form recurrence.
var ErrNoAnalytical = errors.New("quad: distribution defines no analytical recurrence coefficients")

func errOrder(order int) error {
	return errors.Newf("quad: order must be non-negative, got %d", order)
}

func errAlgorithm(alg Algorithm) error {
	return errors.Newf("quad: unknown algorithm %q", string(alg))
}
