// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quad

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/utsekaj42/chaospy/dist"
)

// Gaussian constructs Gaussian quadrature rules for a distribution's
// measure. An order-n rule has n+1 nodes per dimension and integrates
// polynomials up to degree 2n+1 exactly under the measure.
//
// The zero value of the option fields selects automatic algorithm
// choice and the default proxy accuracy:
//
//	rule, err := quad.Gaussian{Order: 5}.Rule(d)
type Gaussian struct {
	// Order is the order of the rule; the rule has Order+1 nodes
	// per dimension.
	Order int

	// Algorithm selects the recurrence construction algorithm.
	// The default, Auto, uses the closed-form coefficients when
	// the distribution declares them and the discretized
	// Stieltjes procedure otherwise.
	Algorithm Algorithm

	// Accuracy is the node count of the proxy rule used by the
	// discretized algorithms. Zero means a package default.
	Accuracy int
}

// Coefficients returns the per-dimension recurrence coefficients of
// d's measure.
func (g Gaussian) Coefficients(d *dist.Dist) ([]Coefficients, error) {
	return Construct(g.Order, d, g.Algorithm, g.Accuracy)
}

// Rule constructs the full tensor-product Gaussian rule for d.
func (g Gaussian) Rule(d *dist.Dist) (*Rule, error) {
	coeffs, err := g.Coefficients(d)
	if err != nil {
		return nil, err
	}
	return FromCoefficients(coeffs)
}

// FromCoefficients converts per-dimension recurrence coefficients
// into a joint quadrature rule: each dimension's Jacobi matrix is
// eigendecomposed into nodes and weights, and the univariate rules
// are combined by tensor product.
func FromCoefficients(coeffs []Coefficients) (*Rule, error) {
	rules := make([]*Rule, len(coeffs))
	for i, c := range coeffs {
		r, err := jacobiRule(c)
		if err != nil {
			if derr, ok := err.(*DegenerateRecurrenceError); ok {
				derr.Dim = i
			}
			return nil, err
		}
		rules[i] = r
	}
	return Combine(rules...)
}

// duplicateTol is the relative eigenvalue gap below which two
// abscissas are reported as near-duplicates.
const duplicateTol = 1e-10

// jacobiRule eigendecomposes the symmetric tridiagonal Jacobi matrix
// of one dimension's coefficients. The eigenvalues are the abscissas
// and the weights are Beta[0] times the squared first components of
// the normalized eigenvectors.
func jacobiRule(c Coefficients) (*Rule, error) {
	n := len(c.Alpha)
	if n == 0 || len(c.Beta) != n {
		return nil, errOrder(n - 1)
	}
	for k, b := range c.Beta {
		if b <= 0 || math.IsNaN(b) {
			return nil, &DegenerateRecurrenceError{Order: k, Beta: b}
		}
	}
	if n == 1 {
		return &Rule{
			Abscissas: [][]float64{{c.Alpha[0]}},
			Weights:   []float64{c.Beta[0]},
		}, nil
	}
	a := mat.NewSymDense(n, nil)
	for k := 0; k < n; k++ {
		a.SetSym(k, k, c.Alpha[k])
		if k > 0 {
			a.SetSym(k-1, k, math.Sqrt(c.Beta[k]))
		}
	}
	var eig mat.EigenSym
	if !eig.Factorize(a, true) {
		return nil, &DegenerateRecurrenceError{Order: n - 1, Beta: c.Beta[n-1]}
	}
	nodes := eig.Values(nil)
	var vecs mat.Dense
	eig.VectorsTo(&vecs)
	weights := make([]float64, n)
	for j := 0; j < n; j++ {
		v0 := vecs.At(0, j)
		weights[j] = c.Beta[0] * v0 * v0
	}
	r := &Rule{
		Abscissas: [][]float64{nodes},
		Weights:   weights,
	}
	// Eigenvalues come out in ascending order; adjacent ties mean
	// the rule is ill-conditioned at this order.
	scale := math.Max(1, math.Abs(nodes[n-1]-nodes[0]))
	for j := 1; j < n; j++ {
		if nodes[j]-nodes[j-1] < duplicateTol*scale {
			r.Warnings = append(r.Warnings,
				fmt.Sprintf("near-duplicate abscissas %g and %g", nodes[j-1], nodes[j]))
		}
	}
	return r, nil
}
