// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// This file holds families that are defined as a raw standardized
// variant composed through the shift/scale combinators, the same
// construction the wrapped families use for their location and scale
// parameters.

var stdNormal = distuv.Normal{Mu: 0, Sigma: 1}

// logUniform is the standardized log-uniform family: exp(U) for U
// uniform on [lo, up] in log space.
type logUniform struct{}

func (logUniform) Name() string { return "LogUniform" }

func (logUniform) Validate(ctx Ctx) error {
	lo, up := ctx.d.params[0], ctx.d.params[1]
	if !lo.IsStochastic() && !up.IsStochastic() && up.val <= lo.val {
		return &InvalidParameterError{Dist: "LogUniform", Param: "upper", Reason: "must exceed lower"}
	}
	return nil
}

func (v logUniform) span(ctx Ctx) (lo, up float64, err error) {
	lo, err = ctx.Value(0)
	if err != nil {
		return 0, 0, err
	}
	up, err = ctx.Value(1)
	return lo, up, err
}

func (v logUniform) CDF(x float64, ctx Ctx) (float64, error) {
	lo, up, err := v.span(ctx)
	if err != nil {
		return 0, err
	}
	return (math.Log(x) - lo) / (up - lo), nil
}

func (v logUniform) Quantile(q float64, ctx Ctx) (float64, error) {
	lo, up, err := v.span(ctx)
	if err != nil {
		return 0, err
	}
	return math.Exp(q*(up-lo) + lo), nil
}

func (v logUniform) PDF(x float64, ctx Ctx) (float64, error) {
	lo, up, err := v.span(ctx)
	if err != nil {
		return 0, err
	}
	if x <= 0 {
		return 0, nil
	}
	return 1 / (x * (up - lo)), nil
}

func (v logUniform) Bounds(ctx Ctx) (lo, hi float64, err error) {
	l, u, err := v.span(ctx)
	if err != nil {
		return 0, 0, err
	}
	return math.Exp(l), math.Exp(u), nil
}

func (v logUniform) Moment(k int, ctx Ctx) (float64, error) {
	lo, up, err := v.span(ctx)
	if err != nil {
		return 0, err
	}
	if k == 0 {
		return 1, nil
	}
	kk := float64(k)
	return (math.Exp(up*kk) - math.Exp(lo*kk)) / ((up - lo) * kk), nil
}

// LogUniform returns scale*exp(U) + shift for U uniform on
// [lower, upper] in log space.
func LogUniform(lower, upper, scale, shift float64) (*Dist, error) {
	raw, err := New(logUniform{}, Fixed(lower), Fixed(upper))
	if err != nil {
		return nil, err
	}
	return Affine(raw, scale, shift)
}

// powerNormal is the standardized power normal (Box-Cox) family with
// shape parameter c.
type powerNormal struct{}

func (powerNormal) Name() string { return "PowerNormal" }

func (powerNormal) Validate(ctx Ctx) error {
	if c := ctx.d.params[0]; !c.IsStochastic() && c.val <= 0 {
		return &InvalidParameterError{Dist: "PowerNormal", Param: "shape", Reason: "must be positive"}
	}
	return nil
}

func (v powerNormal) CDF(x float64, ctx Ctx) (float64, error) {
	c, err := ctx.Value(0)
	if err != nil {
		return 0, err
	}
	return 1 - math.Pow(stdNormal.CDF(-x), c), nil
}

func (v powerNormal) Quantile(q float64, ctx Ctx) (float64, error) {
	c, err := ctx.Value(0)
	if err != nil {
		return 0, err
	}
	return -stdNormal.Quantile(math.Pow(1-q, 1/c)), nil
}

func (v powerNormal) PDF(x float64, ctx Ctx) (float64, error) {
	c, err := ctx.Value(0)
	if err != nil {
		return 0, err
	}
	return c * stdNormal.Prob(x) * math.Pow(stdNormal.CDF(-x), c-1), nil
}

func (v powerNormal) Bounds(ctx Ctx) (lo, hi float64, err error) {
	lo, err = v.Quantile(boundsEps, ctx)
	if err != nil {
		return 0, 0, err
	}
	hi, err = v.Quantile(1-boundsEps, ctx)
	return lo, hi, err
}

// PowerNormal returns the power normal (Box-Cox) distribution with the
// given shape, location mu, and scale.
func PowerNormal(shape, mu, scale float64) (*Dist, error) {
	raw, err := New(powerNormal{}, Fixed(shape))
	if err != nil {
		return nil, err
	}
	return Affine(raw, scale, mu)
}

// wald is the standardized Wald (reciprocal inverse Gaussian) family
// with mean parameter mu. It implements no quantile; the inverse is
// derived numerically.
type wald struct{}

func (wald) Name() string { return "Wald" }

func (wald) Validate(ctx Ctx) error {
	if mu := ctx.d.params[0]; !mu.IsStochastic() && mu.val <= 0 {
		return &InvalidParameterError{Dist: "Wald", Param: "mu", Reason: "must be positive"}
	}
	return nil
}

func (v wald) CDF(x float64, ctx Ctx) (float64, error) {
	mu, err := ctx.Value(0)
	if err != nil {
		return 0, err
	}
	if x <= 0 {
		return 0, nil
	}
	isqx := 1 / math.Sqrt(x)
	out := 1 - stdNormal.CDF(isqx*(1/mu-x))
	out -= math.Exp(2/mu) * stdNormal.CDF(-isqx*(1/mu+x))
	return out, nil
}

func (v wald) PDF(x float64, ctx Ctx) (float64, error) {
	mu, err := ctx.Value(0)
	if err != nil {
		return 0, err
	}
	if x <= 0 {
		return 0, nil
	}
	return math.Exp(-(1-mu*x)*(1-mu*x)/(2*x*mu*mu)) / math.Sqrt(2*math.Pi*x), nil
}

func (v wald) Bounds(ctx Ctx) (lo, hi float64, err error) {
	return 0, 1e10, nil
}

// Wald returns the Wald distribution scale*W + shift for W the
// standardized Wald with mean parameter mu.
func Wald(mu, scale, shift float64) (*Dist, error) {
	raw, err := New(wald{}, Fixed(mu))
	if err != nil {
		return nil, err
	}
	return Affine(raw, scale, shift)
}
