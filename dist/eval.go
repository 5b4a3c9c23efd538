// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"github.com/utsekaj42/chaospy/mathx"
)

const (
	// boundsEps is the tail mass considered negligible when bounds
	// are derived from the quantile function or by CDF bracket
	// expansion.
	boundsEps = 1e-10

	// rootIters bounds the bisection steps of derived inverse and
	// forward evaluations.
	rootIters = 200

	// expandIters bounds the bracket doubling steps when searching
	// for the support of an unbounded distribution.
	expandIters = 64

	// momentNodes is the size of the proxy quadrature used when a
	// family implements no raw moment.
	momentNodes = 150

	// diffStep scales the central difference step of the derived
	// density.
	diffStep = 1e-6
)

// realizer lets combinator variants short-circuit to a plain numeric
// transform when their inner distribution's value has already been
// realized in the evaluation cache.
type realizer interface {
	realize(ctx Ctx) (float64, bool, error)
}

func (d *Dist) ctx(c *Cache) Ctx { return Ctx{d: d, cache: c} }

// forward evaluates the CDF at x, deriving it when the variant lacks
// the capability: by inverting the quantile function, or by
// integrating a bare density over its declared bounds.
func (d *Dist) forward(x float64, c *Cache) (float64, error) {
	if d.caps.realize {
		if v, ok, err := d.variant.(realizer).realize(d.ctx(c)); err != nil {
			return 0, err
		} else if ok {
			// Conditioned on its inner realization the
			// distribution is degenerate at v.
			if x < v {
				return 0, nil
			}
			return 1, nil
		}
	}
	switch {
	case d.caps.cdf:
		v, err := d.variant.(CDFer).CDF(x, d.ctx(c))
		if err != nil {
			return 0, err
		}
		return clamp01(v), nil
	case d.caps.quantile:
		return d.forwardFromQuantile(x, c)
	default:
		return d.forwardFromDensity(x, c)
	}
}

// forwardFromQuantile inverts a monotone quantile function by
// bisection on q in [0, 1].
func (d *Dist) forwardFromQuantile(x float64, c *Cache) (float64, error) {
	lo, hi := 0.0, 1.0
	for i := 0; i < rootIters && hi-lo > 1e-14; i++ {
		mid := (lo + hi) / 2
		v, err := d.quantile(mid, c)
		if err != nil {
			return 0, err
		}
		if v <= x {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2, nil
}

// forwardFromDensity integrates the density from the lower bound to x
// with a composite Simpson rule. Only reachable for variants that
// declare bounds, which construction enforces.
func (d *Dist) forwardFromDensity(x float64, c *Cache) (float64, error) {
	lo, hi, err := d.bounds(c)
	if err != nil {
		return 0, err
	}
	if x <= lo {
		return 0, nil
	}
	if x > hi {
		x = hi
	}
	const panels = 256
	h := (x - lo) / panels
	sum := 0.0
	for i := 0; i <= panels; i++ {
		f, err := d.density(lo+float64(i)*h, c)
		if err != nil {
			return 0, err
		}
		switch {
		case i == 0 || i == panels:
			sum += f
		case i%2 == 1:
			sum += 4 * f
		default:
			sum += 2 * f
		}
	}
	return clamp01(sum * h / 3), nil
}

// quantile evaluates the inverse CDF at q, deriving it by monotone
// root finding when the variant lacks the capability.
func (d *Dist) quantile(q float64, c *Cache) (float64, error) {
	if q < 0 || q > 1 {
		panic("dist: quantile argument must be in [0, 1]")
	}
	if d.caps.realize {
		if v, ok, err := d.variant.(realizer).realize(d.ctx(c)); err != nil {
			return 0, err
		} else if ok {
			return v, nil
		}
	}
	if d.caps.quantile {
		return d.variant.(Quantiler).Quantile(q, d.ctx(c))
	}

	lo, hi, err := d.bounds(c)
	if err != nil {
		return 0, err
	}
	lo, hi, err = d.bracket(q, lo, hi, c)
	if err != nil {
		return 0, err
	}
	for i := 0; i < rootIters; i++ {
		mid := (lo + hi) / 2
		v, err := d.forward(mid, c)
		if err != nil {
			return 0, err
		}
		if v < q {
			lo = mid
		} else {
			hi = mid
		}
		if hi-lo <= 1e-12*(1+math.Abs(lo)+math.Abs(hi)) {
			break
		}
	}
	return (lo + hi) / 2, nil
}

// bracket widens [lo, hi] until it encloses the q-quantile, doubling
// outwards from the current interval. It fails with a
// *ConvergenceError when the budget runs out, which signals a CDF
// inconsistent with the declared bounds.
func (d *Dist) bracket(q, lo, hi float64, c *Cache) (float64, float64, error) {
	if math.IsInf(lo, -1) || math.IsInf(hi, 1) {
		// Declared infinite bounds: start from a finite window
		// and let the expansion below find the mass.
		if math.IsInf(lo, -1) {
			lo = -1
			if !math.IsInf(hi, 1) {
				lo = hi - 1
			}
		}
		if math.IsInf(hi, 1) {
			hi = lo + 2
		}
	}
	for i := 0; ; i++ {
		v, err := d.forward(lo, c)
		if err != nil {
			return 0, 0, err
		}
		if v <= q {
			break
		}
		if i == expandIters {
			return 0, 0, &ConvergenceError{Dist: d.name(), Op: "InvCDF", Value: q, Iters: expandIters}
		}
		lo -= hi - lo
	}
	for i := 0; ; i++ {
		v, err := d.forward(hi, c)
		if err != nil {
			return 0, 0, err
		}
		if v >= q {
			break
		}
		if i == expandIters {
			return 0, 0, &ConvergenceError{Dist: d.name(), Op: "InvCDF", Value: q, Iters: expandIters}
		}
		hi += hi - lo
	}
	return lo, hi, nil
}

// density evaluates the density at x, approximating it by a central
// finite difference of the CDF when the variant lacks the capability.
// The finite difference degrades near the support boundaries.
func (d *Dist) density(x float64, c *Cache) (float64, error) {
	if d.caps.pdf {
		return d.variant.(PDFer).PDF(x, d.ctx(c))
	}
	h := diffStep * math.Max(1, math.Abs(x))
	hi, err := d.forward(x+h, c)
	if err != nil {
		return 0, err
	}
	lo, err := d.forward(x-h, c)
	if err != nil {
		return 0, err
	}
	return math.Max(0, (hi-lo)/(2*h)), nil
}

// bounds returns the support interval, derived from eps-quantiles or
// by CDF bracket expansion when the variant does not declare it.
func (d *Dist) bounds(c *Cache) (lo, hi float64, err error) {
	if d.caps.bounds {
		return d.variant.(Bounder).Bounds(d.ctx(c))
	}
	if d.caps.quantile {
		lo, err = d.quantile(boundsEps, c)
		if err != nil {
			return 0, 0, err
		}
		hi, err = d.quantile(1-boundsEps, c)
		if err != nil {
			return 0, 0, err
		}
		return lo, hi, nil
	}
	// CDF-only variant: expand a window until it holds essentially
	// all the mass.
	lo, hi = -1, 1
	for i := 0; ; i++ {
		v, err := d.forward(lo, c)
		if err != nil {
			return 0, 0, err
		}
		if v <= boundsEps {
			break
		}
		if i == expandIters {
			return 0, 0, &ConvergenceError{Dist: d.name(), Op: "Bounds", Value: boundsEps, Iters: expandIters}
		}
		lo -= hi - lo
	}
	for i := 0; ; i++ {
		v, err := d.forward(hi, c)
		if err != nil {
			return 0, 0, err
		}
		if v >= 1-boundsEps {
			break
		}
		if i == expandIters {
			return 0, 0, &ConvergenceError{Dist: d.name(), Op: "Bounds", Value: 1 - boundsEps, Iters: expandIters}
		}
		hi += hi - lo
	}
	return lo, hi, nil
}

// moment evaluates the raw moment E[X^k]. Without an analytic form it
// integrates x^k against the density by rewriting the integral through
// the inverse CDF and applying an open proxy rule, so only the
// quantile evaluation path is exercised.
func (d *Dist) moment(k int, c *Cache) (float64, error) {
	if k == 0 {
		return 1, nil
	}
	if d.caps.moment {
		return d.variant.(Momenter).Moment(k, d.ctx(c))
	}
	nodes, weights := mathx.Fejer1(momentNodes)
	sum := 0.0
	for j, t := range nodes {
		x, err := d.quantile(t, c)
		if err != nil {
			return 0, err
		}
		sum += weights[j] * math.Pow(x, float64(k))
	}
	return sum, nil
}

// errNoRecurrence is the internal signal that the analytical
// recurrence path is unavailable. Callers are expected to check
// HasRecurrence first; the sentinel exists purely so a missed check
// fails loudly instead of producing coefficients from nothing.
type noRecurrenceError struct{ dist string }

func (e *noRecurrenceError) Error() string {
	return "dist: " + e.dist + " has no analytical recurrence"
}

func (d *Dist) recurrence(k int, c *Cache) (alpha, beta float64, err error) {
	if !d.caps.recurr {
		return 0, 0, &noRecurrenceError{dist: d.name()}
	}
	return d.variant.(Recurrer).Recurrence(k, d.ctx(c))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
