// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package orth

import (
	"math"

	"github.com/cockroachdb/errors"

	"github.com/utsekaj42/chaospy/describe"
	"github.com/utsekaj42/chaospy/dist"
	"github.com/utsekaj42/chaospy/poly"
)

// GramSchmidt generates the orthogonal basis of order for d by
// projecting the graded monomial basis. If normalized, the basis
// polynomials are rescaled to unit norm.
//
// A non-positive computed norm ends generation early with
// Basis.Truncated set, in both the plain and the normalized paths.
// This happens for measures whose distinct-support size is smaller
// than the basis, such as low-order discrete distributions.
func GramSchmidt(order int, d *dist.Dist, normalized bool) (*Basis, error) {
	if order < 0 {
		return nil, errors.Newf("orth: order must be non-negative, got %d", order)
	}
	dim := d.Len()
	out := &Basis{}
	for _, idx := range poly.Indices(dim, order) {
		q := poly.Monomial(idx)
		for j, b := range out.Polys {
			num, err := describe.E(q.Mul(b), d)
			if err != nil {
				return nil, err
			}
			denom := out.Norms[j]
			if normalized {
				denom = 1
			}
			q = q.Sub(b.Scale(num / denom))
		}
		norm, err := describe.E(q.Mul(q), d)
		if err != nil {
			return nil, err
		}
		if norm <= 0 || math.IsNaN(norm) {
			out.Truncated = true
			break
		}
		if normalized {
			q = q.Scale(1 / math.Sqrt(norm))
			norm = 1
		}
		out.Polys = append(out.Polys, q)
		out.Norms = append(out.Norms, norm)
	}
	return out, nil
}
