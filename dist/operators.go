// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"github.com/utsekaj42/chaospy/mathx"
)

// add is the additive shift combinator: X = inner + shift. Parameter 0
// is the inner distribution, parameter 1 the shift. As an increasing
// transform it composes with the inner CDF and quantile directly.
type add struct{}

func (add) Name() string { return "Add" }

func (v add) realize(ctx Ctx) (float64, bool, error) {
	x, ok := ctx.Cache().Value(ctx.Dist(0))
	if !ok {
		return 0, false, nil
	}
	s, err := ctx.Value(1)
	if err != nil {
		return 0, false, err
	}
	return x + s, true, nil
}

func (v add) CDF(x float64, ctx Ctx) (float64, error) {
	s, err := ctx.Value(1)
	if err != nil {
		return 0, err
	}
	return ctx.Dist(0).forward(x-s, ctx.Cache())
}

func (v add) Quantile(q float64, ctx Ctx) (float64, error) {
	s, err := ctx.Value(1)
	if err != nil {
		return 0, err
	}
	x, err := ctx.Dist(0).quantile(q, ctx.Cache())
	if err != nil {
		return 0, err
	}
	return x + s, nil
}

func (v add) PDF(x float64, ctx Ctx) (float64, error) {
	s, err := ctx.Value(1)
	if err != nil {
		return 0, err
	}
	return ctx.Dist(0).density(x-s, ctx.Cache())
}

func (v add) Bounds(ctx Ctx) (lo, hi float64, err error) {
	s, err := ctx.Value(1)
	if err != nil {
		return 0, 0, err
	}
	lo, hi, err = ctx.Dist(0).bounds(ctx.Cache())
	if err != nil {
		return 0, 0, err
	}
	return lo + s, hi + s, nil
}

// Moment expands E[(X+s)^k] binomially over the inner raw moments.
func (v add) Moment(k int, ctx Ctx) (float64, error) {
	s, err := ctx.Value(1)
	if err != nil {
		return 0, err
	}
	sum := 0.0
	for i := 0; i <= k; i++ {
		m, err := ctx.Dist(0).moment(i, ctx.Cache())
		if err != nil {
			return 0, err
		}
		sum += mathx.Choose(k, i) * m * math.Pow(s, float64(k-i))
	}
	return sum, nil
}

// Recurrence shifts the inner alpha; a translation leaves beta alone.
func (v add) Recurrence(k int, ctx Ctx) (alpha, beta float64, err error) {
	s, err := ctx.Value(1)
	if err != nil {
		return 0, 0, err
	}
	alpha, beta, err = ctx.Dist(0).recurrence(k, ctx.Cache())
	if err != nil {
		return 0, 0, err
	}
	return alpha + s, beta, nil
}

// scale is the multiplicative combinator: X = factor * inner.
// Parameter 0 is the inner distribution, parameter 1 the factor. A
// negative factor is a decreasing transform, which flips the forward
// and inverse composition order; the density picks up the usual 1/|c|
// Jacobian. The flipped CDF assumes a continuous inner distribution.
type scale struct{}

func (scale) Name() string { return "Scale" }

func (v scale) factor(ctx Ctx) (float64, error) {
	c, err := ctx.Value(1)
	if err != nil {
		return 0, err
	}
	if c == 0 {
		return 0, &InvalidParameterError{Dist: "Scale", Param: "factor", Reason: "must be nonzero"}
	}
	return c, nil
}

func (v scale) realize(ctx Ctx) (float64, bool, error) {
	x, ok := ctx.Cache().Value(ctx.Dist(0))
	if !ok {
		return 0, false, nil
	}
	c, err := v.factor(ctx)
	if err != nil {
		return 0, false, err
	}
	return c * x, true, nil
}

func (v scale) CDF(x float64, ctx Ctx) (float64, error) {
	c, err := v.factor(ctx)
	if err != nil {
		return 0, err
	}
	f, err := ctx.Dist(0).forward(x/c, ctx.Cache())
	if err != nil {
		return 0, err
	}
	if c < 0 {
		return 1 - f, nil
	}
	return f, nil
}

func (v scale) Quantile(q float64, ctx Ctx) (float64, error) {
	c, err := v.factor(ctx)
	if err != nil {
		return 0, err
	}
	if c < 0 {
		q = 1 - q
	}
	x, err := ctx.Dist(0).quantile(q, ctx.Cache())
	if err != nil {
		return 0, err
	}
	return c * x, nil
}

func (v scale) PDF(x float64, ctx Ctx) (float64, error) {
	c, err := v.factor(ctx)
	if err != nil {
		return 0, err
	}
	f, err := ctx.Dist(0).density(x/c, ctx.Cache())
	if err != nil {
		return 0, err
	}
	return f / math.Abs(c), nil
}

func (v scale) Bounds(ctx Ctx) (lo, hi float64, err error) {
	c, err := v.factor(ctx)
	if err != nil {
		return 0, 0, err
	}
	lo, hi, err = ctx.Dist(0).bounds(ctx.Cache())
	if err != nil {
		return 0, 0, err
	}
	lo, hi = c*lo, c*hi
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo, hi, nil
}

func (v scale) Moment(k int, ctx Ctx) (float64, error) {
	c, err := v.factor(ctx)
	if err != nil {
		return 0, err
	}
	m, err := ctx.Dist(0).moment(k, ctx.Cache())
	if err != nil {
		return 0, err
	}
	return math.Pow(c, float64(k)) * m, nil
}

// Recurrence maps the inner coefficients through the affine change of
// measure: alpha scales by c, beta by c^2 (valid for negative c, which
// mirrors the measure).
func (v scale) Recurrence(k int, ctx Ctx) (alpha, beta float64, err error) {
	c, err := v.factor(ctx)
	if err != nil {
		return 0, 0, err
	}
	alpha, beta, err = ctx.Dist(0).recurrence(k, ctx.Cache())
	if err != nil {
		return 0, 0, err
	}
	if k == 0 {
		return c * alpha, 1, nil
	}
	return c * alpha, c * c * beta, nil
}

// Shift returns the distribution of d + s.
func Shift(d *Dist, s float64) (*Dist, error) {
	return combinator(add{}, d, Fixed(s))
}

// ShiftP is Shift with a possibly stochastic shift.
func ShiftP(d *Dist, s Param) (*Dist, error) {
	return combinator(add{}, d, s)
}

// Scale returns the distribution of c * d. c must be nonzero.
func Scale(d *Dist, c float64) (*Dist, error) {
	if c == 0 {
		return nil, &InvalidParameterError{Dist: "Scale", Param: "factor", Reason: "must be nonzero"}
	}
	return combinator(scale{}, d, Fixed(c))
}

// ScaleP is Scale with a possibly stochastic factor.
func ScaleP(d *Dist, c Param) (*Dist, error) {
	return combinator(scale{}, d, c)
}

// Affine returns the distribution of c*d + s.
func Affine(d *Dist, c, s float64) (*Dist, error) {
	scaled, err := Scale(d, c)
	if err != nil {
		return nil, err
	}
	return Shift(scaled, s)
}

// combinator wraps each marginal of d in the variant v with the given
// extra parameters, preserving dimensionality, and narrows the derived
// capabilities to those the inner distribution actually has.
func combinator(v Variant, d *Dist, extra ...Param) (*Dist, error) {
	if d.Len() > 1 {
		wrapped := make([]*Dist, d.Len())
		for i, m := range d.Marginals() {
			var err error
			wrapped[i], err = combinator(v, m, extra...)
			if err != nil {
				return nil, err
			}
		}
		return J(wrapped...)
	}
	params := append([]Param{Stochastic(d)}, extra...)
	out, err := New(v, params...)
	if err != nil {
		return nil, err
	}
	// A combinator inherits the analytic recurrence only when its
	// inner distribution declares one.
	out.caps.recurr = out.caps.recurr && d.caps.recurr
	return out, nil
}
