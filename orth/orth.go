// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package orth generates polynomial bases that are orthogonal with
// respect to a distribution's measure, for use as the expansion
// basis of a polynomial chaos expansion.
package orth

import (
	"github.com/cockroachdb/errors"

	"github.com/utsekaj42/chaospy/dist"
	"github.com/utsekaj42/chaospy/poly"
	"github.com/utsekaj42/chaospy/quad"
)

// Basis is an ordered polynomial basis. The order follows the graded
// multi-index order of poly.Indices, so Polys[0] is the constant.
type Basis struct {
	Polys []poly.Poly

	// Norms holds the squared norm of each basis polynomial under
	// the generating measure. It is nil for bases without an
	// associated measure, such as Lagrange interpolants.
	Norms []float64

	// Truncated reports that generation stopped before the
	// requested order because a computed norm was not positive.
	// The returned prefix is still a valid basis.
	Truncated bool
}

// Len returns the number of basis polynomials.
func (b *Basis) Len() int { return len(b.Polys) }

// TTR generates the orthogonal basis of order for d directly from
// the three-term recurrence coefficients of its marginals. It is the
// fastest and most numerically stable of the generators.
//
// Multivariate bases are products of univariate basis polynomials,
// one multi-index per basis element, which assumes a product
// measure.
func TTR(order int, d *dist.Dist) (*Basis, error) {
	if order < 0 {
		return nil, errors.Newf("orth: order must be non-negative, got %d", order)
	}
	coeffs, err := quad.Construct(order, d, quad.Auto, 0)
	if err != nil {
		return nil, err
	}
	dim := d.Len()
	uni := make([][]poly.Poly, dim)
	uniNorm := make([][]float64, dim)
	for i, c := range coeffs {
		ps := make([]poly.Poly, order+1)
		ns := make([]float64, order+1)
		x := poly.Var(dim, i)
		pkm1 := poly.Zero(dim)
		pk := poly.Const(dim, 1)
		norm := 1.0
		for k := 0; k <= order; k++ {
			norm *= c.Beta[k]
			ps[k], ns[k] = pk, norm
			next := x.Sub(poly.Const(dim, c.Alpha[k])).Mul(pk).Sub(pkm1.Scale(c.Beta[k]))
			pkm1, pk = pk, next
		}
		uni[i], uniNorm[i] = ps, ns
	}
	indices := poly.Indices(dim, order)
	out := &Basis{
		Polys: make([]poly.Poly, len(indices)),
		Norms: make([]float64, len(indices)),
	}
	for j, idx := range indices {
		p := poly.Const(dim, 1)
		norm := 1.0
		for i, k := range idx {
			p = p.Mul(uni[i][k])
			norm *= uniNorm[i][k]
		}
		out.Polys[j], out.Norms[j] = p, norm
	}
	return out, nil
}
