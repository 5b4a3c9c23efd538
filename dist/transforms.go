// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
)

// arcsin is the arc-sine transform combinator: Y = arcsin(X) for an
// inner X supported on [-1, 1]. arcsin is increasing there, so the
// forward CDF composes as F_X(sin y) and the quantile as
// arcsin(Q_X(q)); the density picks up the cos(y) Jacobian.
type arcsin struct{}

func (arcsin) Name() string { return "Arcsin" }

func (v arcsin) realize(ctx Ctx) (float64, bool, error) {
	x, ok := ctx.Cache().Value(ctx.Dist(0))
	if !ok {
		return 0, false, nil
	}
	return math.Asin(x), true, nil
}

func (v arcsin) CDF(x float64, ctx Ctx) (float64, error) {
	return ctx.Dist(0).forward(math.Sin(x), ctx.Cache())
}

func (v arcsin) Quantile(q float64, ctx Ctx) (float64, error) {
	x, err := ctx.Dist(0).quantile(q, ctx.Cache())
	if err != nil {
		return 0, err
	}
	return math.Asin(x), nil
}

func (v arcsin) PDF(x float64, ctx Ctx) (float64, error) {
	f, err := ctx.Dist(0).density(math.Sin(x), ctx.Cache())
	if err != nil {
		return 0, err
	}
	return f * math.Cos(x), nil
}

func (v arcsin) Bounds(ctx Ctx) (lo, hi float64, err error) {
	lo, hi, err = ctx.Dist(0).bounds(ctx.Cache())
	if err != nil {
		return 0, 0, err
	}
	return math.Asin(math.Max(lo, -1)), math.Asin(math.Min(hi, 1)), nil
}

// Arcsin returns the distribution of arcsin(d). The support of d must
// lie within [-1, 1].
func Arcsin(d *Dist) (*Dist, error) {
	for _, m := range d.Marginals() {
		lo, hi, err := m.bounds(nil)
		if err != nil {
			return nil, err
		}
		if lo < -1-1e-12 || hi > 1+1e-12 {
			return nil, &InvalidParameterError{Dist: "Arcsin", Param: "dist", Reason: "support must lie within [-1, 1]"}
		}
	}
	return combinator(arcsin{}, d)
}

// arctan is the arc-tangent transform combinator: Y = arctan(X).
// arctan is increasing on all of R, so the forward CDF composes as
// F_X(tan y) and the quantile as arctan(Q_X(q)); the density picks up
// the 1+tan^2(y) Jacobian.
type arctan struct{}

func (arctan) Name() string { return "Arctan" }

func (v arctan) realize(ctx Ctx) (float64, bool, error) {
	x, ok := ctx.Cache().Value(ctx.Dist(0))
	if !ok {
		return 0, false, nil
	}
	return math.Atan(x), true, nil
}

func (v arctan) CDF(x float64, ctx Ctx) (float64, error) {
	return ctx.Dist(0).forward(math.Tan(x), ctx.Cache())
}

func (v arctan) Quantile(q float64, ctx Ctx) (float64, error) {
	x, err := ctx.Dist(0).quantile(q, ctx.Cache())
	if err != nil {
		return 0, err
	}
	return math.Atan(x), nil
}

func (v arctan) PDF(x float64, ctx Ctx) (float64, error) {
	t := math.Tan(x)
	f, err := ctx.Dist(0).density(t, ctx.Cache())
	if err != nil {
		return 0, err
	}
	return f * (1 + t*t), nil
}

func (v arctan) Bounds(ctx Ctx) (lo, hi float64, err error) {
	lo, hi, err = ctx.Dist(0).bounds(ctx.Cache())
	if err != nil {
		return 0, 0, err
	}
	return math.Atan(lo), math.Atan(hi), nil
}

// Arctan returns the distribution of arctan(d).
func Arctan(d *Dist) (*Dist, error) {
	return combinator(arctan{}, d)
}
