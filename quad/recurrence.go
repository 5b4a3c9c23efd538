// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quad

import (
	"math"

	"github.com/utsekaj42/chaospy/dist"
	"github.com/utsekaj42/chaospy/mathx"
)

// Algorithm names a recurrence-coefficient construction algorithm.
type Algorithm string

const (
	// Auto tries Analytical and falls back to Stieltjes when the
	// distribution defines no closed-form recurrence.
	Auto Algorithm = ""

	// Analytical uses the distribution's closed-form recurrence.
	Analytical Algorithm = "analytical"

	// Stieltjes runs the discretized Stieltjes procedure on a
	// proxy quadrature rule.
	Stieltjes Algorithm = "stieltjes"

	// Chebyshev runs the modified Chebyshev algorithm on raw
	// moments of a proxy quadrature rule.
	Chebyshev Algorithm = "chebyshev"

	// Lanczos tridiagonalizes a proxy quadrature rule with the
	// stabilized Lanczos procedure of Gragg and Harrod.
	Lanczos Algorithm = "lanczos"
)

// Coefficients holds the three-term recurrence coefficients of the
// monic orthogonal polynomial sequence of a univariate measure:
//
//	p[k+1](x) = (x - Alpha[k])·p[k](x) - Beta[k]·p[k-1](x)
//
// Beta[0] is the total mass of the measure (1 for a probability
// measure) and scales the quadrature weights.
type Coefficients struct {
	Alpha, Beta []float64
}

// defaultAccuracy is the proxy quadrature size used by the
// discretized algorithms when none is given.
const defaultAccuracy = 100

// Construct computes order+1 recurrence coefficients per dimension of
// d. For multivariate d the dimensions are treated as independent (a
// product measure); dependent components yield approximate
// per-marginal coefficients.
//
// With algorithm Auto, dimensions that declare a closed-form
// recurrence use it and the rest fall back to the discretized
// Stieltjes procedure.
func Construct(order int, d *dist.Dist, algorithm Algorithm, accuracy int) ([]Coefficients, error) {
	if order < 0 {
		return nil, errOrder(order)
	}
	if accuracy <= 0 {
		accuracy = defaultAccuracy
	}
	out := make([]Coefficients, d.Len())
	for i, m := range d.Marginals() {
		alg := algorithm
		if alg == Auto {
			if m.HasRecurrence() {
				alg = Analytical
			} else {
				alg = Stieltjes
			}
		}
		var (
			c   Coefficients
			err error
		)
		switch alg {
		case Analytical:
			c, err = analytical(order, m)
		case Stieltjes:
			c, err = stieltjes(order, m, accuracy)
		case Chebyshev:
			c, err = chebyshev(order, m, accuracy)
		case Lanczos:
			c, err = lanczos(order, m, accuracy)
		default:
			return nil, errAlgorithm(alg)
		}
		if err != nil {
			if derr, ok := err.(*DegenerateRecurrenceError); ok {
				derr.Dim = i
			}
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}

func analytical(order int, m *dist.Dist) (Coefficients, error) {
	if !m.HasRecurrence() {
		return Coefficients{}, ErrNoAnalytical
	}
	c := Coefficients{
		Alpha: make([]float64, order+1),
		Beta:  make([]float64, order+1),
	}
	for k := 0; k <= order; k++ {
		a, b, err := m.Recurrence(k)
		if err != nil {
			return Coefficients{}, err
		}
		if b <= 0 || math.IsNaN(b) {
			return Coefficients{}, &DegenerateRecurrenceError{Order: k, Algorithm: Analytical, Beta: b}
		}
		c.Alpha[k], c.Beta[k] = a, b
	}
	return c, nil
}

// proxyRule discretizes the marginal's measure: Fejér type-1 nodes on
// the unit interval pushed through the inverse CDF. The map is the
// measure pushforward, so the weights carry over unchanged.
func proxyRule(m *dist.Dist, accuracy int) (nodes, weights []float64, err error) {
	qs, ws := mathx.Fejer1(accuracy)
	nodes, err = m.InvCDFEach(qs)
	if err != nil {
		return nil, nil, err
	}
	return nodes, ws, nil
}

// stieltjes runs the discretized Stieltjes procedure: the monic
// recurrence is bootstrapped from inner products evaluated on the
// proxy rule.
func stieltjes(order int, m *dist.Dist, accuracy int) (Coefficients, error) {
	nodes, weights, err := proxyRule(m, accuracy)
	if err != nil {
		return Coefficients{}, err
	}
	n := len(nodes)
	c := Coefficients{
		Alpha: make([]float64, order+1),
		Beta:  make([]float64, order+1),
	}
	// Monic polynomial values at the proxy nodes.
	pkm1 := make([]float64, n)
	pk := make([]float64, n)
	for j := range pk {
		pk[j] = 1
	}
	normPrev := 0.0
	for k := 0; k <= order; k++ {
		var norm, xnorm float64
		for j := range nodes {
			w := weights[j] * pk[j] * pk[j]
			norm += w
			xnorm += w * nodes[j]
		}
		if k == 0 {
			c.Beta[0] = norm
		} else {
			c.Beta[k] = norm / normPrev
		}
		if c.Beta[k] <= 0 || math.IsNaN(c.Beta[k]) {
			return Coefficients{}, &DegenerateRecurrenceError{Order: k, Algorithm: Stieltjes, Beta: c.Beta[k]}
		}
		c.Alpha[k] = xnorm / norm
		for j := range nodes {
			next := (nodes[j]-c.Alpha[k])*pk[j] - c.Beta[k]*pkm1[j]
			pkm1[j], pk[j] = pk[j], next
		}
		normPrev = norm
	}
	return c, nil
}

// chebyshev runs the modified Chebyshev algorithm on raw moments of
// the proxy rule. It needs 2(order+1) moments and is the most
// sensitive of the discretized algorithms to moment growth.
func chebyshev(order int, m *dist.Dist, accuracy int) (Coefficients, error) {
	nodes, weights, err := proxyRule(m, accuracy)
	if err != nil {
		return Coefficients{}, err
	}
	nm := 2 * (order + 1)
	mom := make([]float64, nm)
	for j, x := range nodes {
		p := 1.0
		for l := 0; l < nm; l++ {
			mom[l] += weights[j] * p
			p *= x
		}
	}
	c := Coefficients{
		Alpha: make([]float64, order+1),
		Beta:  make([]float64, order+1),
	}
	c.Alpha[0] = mom[1] / mom[0]
	c.Beta[0] = mom[0]
	if c.Beta[0] <= 0 || math.IsNaN(c.Beta[0]) {
		return Coefficients{}, &DegenerateRecurrenceError{Order: 0, Algorithm: Chebyshev, Beta: c.Beta[0]}
	}
	prev2 := make([]float64, nm)
	prev := mom
	for k := 1; k <= order; k++ {
		sigma := make([]float64, nm)
		for l := k; l < nm-k; l++ {
			sigma[l] = prev[l+1] - c.Alpha[k-1]*prev[l] - c.Beta[k-1]*prev2[l]
		}
		c.Beta[k] = sigma[k] / prev[k-1]
		if c.Beta[k] <= 0 || math.IsNaN(c.Beta[k]) {
			return Coefficients{}, &DegenerateRecurrenceError{Order: k, Algorithm: Chebyshev, Beta: c.Beta[k]}
		}
		c.Alpha[k] = sigma[k+1]/sigma[k] - prev[k]/prev[k-1]
		prev2, prev = prev, sigma
	}
	return c, nil
}

// lanczos tridiagonalizes the proxy rule with the stabilized
// rotation-based procedure of Gragg and Harrod. It reads the
// coefficients directly off the transformed diagonal and is the most
// robust of the discretized algorithms at high order.
func lanczos(order int, m *dist.Dist, accuracy int) (Coefficients, error) {
	if accuracy <= order {
		accuracy = order + 1
	}
	nodes, weights, err := proxyRule(m, accuracy)
	if err != nil {
		return Coefficients{}, err
	}
	n := len(nodes)
	p0 := make([]float64, n)
	p1 := make([]float64, n)
	copy(p0, nodes)
	p1[0] = weights[0]
	for i := 0; i < n-1; i++ {
		pn := weights[i+1]
		gam, sig, t := 1.0, 0.0, 0.0
		xlam := nodes[i+1]
		for k := 0; k <= i+1; k++ {
			rho := p1[k] + pn
			tmp := gam * rho
			tsig := sig
			if rho <= 0 {
				gam, sig = 1, 0
			} else {
				gam = p1[k] / rho
				sig = pn / rho
			}
			tk := sig*(p0[k]-xlam) - gam*t
			p0[k] -= tk - t
			t = tk
			if sig <= 0 {
				pn = tsig * p1[k]
			} else {
				pn = t * t / sig
			}
			p1[k] = tmp
		}
	}
	c := Coefficients{
		Alpha: p0[: order+1 : order+1],
		Beta:  p1[: order+1 : order+1],
	}
	for k, b := range c.Beta {
		if b <= 0 || math.IsNaN(b) {
			return Coefficients{}, &DegenerateRecurrenceError{Order: k, Algorithm: Lanczos, Beta: b}
		}
	}
	return c, nil
}
