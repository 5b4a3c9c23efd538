// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package orth

import (
	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/utsekaj42/chaospy/dist"
	"github.com/utsekaj42/chaospy/poly"
)

// Cholesky generates the orthogonal basis of order for d by
// Cholesky-factoring the Gram matrix of the graded monomial basis
// under d's raw moments. The basis polynomials are monic in their
// leading monomial, so the result agrees with TTR up to rounding.
//
// The Gram matrix involves moments up to degree 2*order and is the
// least stable of the generators at high order; a numerically
// indefinite matrix yields a SingularMatrixError.
func Cholesky(order int, d *dist.Dist) (*Basis, error) {
	if order < 0 {
		return nil, errors.Newf("orth: order must be non-negative, got %d", order)
	}
	dim := d.Len()
	indices := poly.Indices(dim, order)
	n := len(indices)
	g := mat.NewSymDense(n, nil)
	sum := make([]int, dim)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			for k := 0; k < dim; k++ {
				sum[k] = indices[i][k] + indices[j][k]
			}
			m, err := d.Moment(sum...)
			if err != nil {
				return nil, err
			}
			g.SetSym(i, j, m)
		}
	}
	var chol mat.Cholesky
	if !chol.Factorize(g) {
		return nil, &SingularMatrixError{Op: "cholesky", Size: n}
	}
	var l mat.TriDense
	chol.LTo(&l)
	var linv mat.TriDense
	if err := linv.InverseTri(&l); err != nil {
		return nil, &SingularMatrixError{Op: "cholesky", Size: n}
	}
	// Rows of inv(L) are the coefficients of an orthonormal basis
	// in the monomial basis; dividing each row by its diagonal
	// entry makes the polynomials monic.
	out := &Basis{
		Polys: make([]poly.Poly, n),
		Norms: make([]float64, n),
	}
	for j := 0; j < n; j++ {
		lead := linv.At(j, j)
		if lead == 0 {
			return nil, &SingularMatrixError{Op: "cholesky", Size: n}
		}
		p := poly.Zero(dim)
		for i := 0; i <= j; i++ {
			p = p.Add(poly.Monomial(indices[i]).Scale(linv.At(j, i) / lead))
		}
		out.Polys[j] = p
		out.Norms[j] = 1 / (lead * lead)
	}
	return out, nil
}
