// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package orth

import "fmt"

// SingularMatrixError reports that a construction step required
// inverting a singular (or numerically singular) matrix, such as the
// interpolation matrix of a non-poised Lagrange node set or a
// degenerate moment matrix.
type SingularMatrixError struct {
	Op   string
	Size int
}

func (e *SingularMatrixError) Error() string {
	return fmt.Sprintf("orth: %s: singular %dx%d matrix", e.Op, e.Size, e.Size)
}
