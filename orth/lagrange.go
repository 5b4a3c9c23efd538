// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package orth

import (
	"math"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/utsekaj42/chaospy/poly"
)

// Lagrange generates the Lagrange interpolating basis through the
// given nodes. Abscissas has shape (dim, n); the result's i'th
// polynomial is one at node i and zero at every other node.
//
// The interpolation matrix over the first n graded monomials must be
// invertible; node sets that are not poised for that monomial set
// yield a SingularMatrixError.
func Lagrange(abscissas [][]float64) (*Basis, error) {
	dim := len(abscissas)
	if dim == 0 || len(abscissas[0]) == 0 {
		return nil, errors.New("orth: no interpolation nodes")
	}
	n := len(abscissas[0])
	for _, row := range abscissas {
		if len(row) != n {
			return nil, errors.New("orth: ragged abscissa rows")
		}
	}
	var indices [][]int
	for o := 0; len(indices) < n; o++ {
		indices = poly.Indices(dim, o)
	}
	indices = indices[:n]
	monos := make([]poly.Poly, n)
	for j, idx := range indices {
		monos[j] = poly.Monomial(idx)
	}
	v := mat.NewDense(n, n, nil)
	x := make([]float64, dim)
	for i := 0; i < n; i++ {
		for k := 0; k < dim; k++ {
			x[k] = abscissas[k][i]
		}
		for j := 0; j < n; j++ {
			v.Set(i, j, monos[j].Eval(x))
		}
	}
	var lu mat.LU
	lu.Factorize(v)
	if det, _ := lu.LogDet(); math.IsInf(det, -1) || math.IsNaN(det) {
		return nil, &SingularMatrixError{Op: "lagrange", Size: n}
	}
	var vinv mat.Dense
	if err := lu.SolveTo(&vinv, false, eye(n)); err != nil {
		return nil, &SingularMatrixError{Op: "lagrange", Size: n}
	}
	out := &Basis{Polys: make([]poly.Poly, n)}
	for i := 0; i < n; i++ {
		p := poly.Zero(dim)
		for j := 0; j < n; j++ {
			p = p.Add(monos[j].Scale(vinv.At(j, i)))
		}
		out.Polys[i] = p
	}
	return out, nil
}

func eye(n int) *mat.Dense {
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}
	return m
}
