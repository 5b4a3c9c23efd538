// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"gonum.org/v1/gonum/stat/distuv"
)

// gamma is the Gamma family parameterized by shape and scale. Its
// orthogonal polynomials are the generalized Laguerre polynomials.
// The Exponential distribution is the shape=1 member.
type gamma struct{}

func (gamma) Name() string { return "Gamma" }

func (gamma) Validate(ctx Ctx) error {
	if shape := ctx.d.params[0]; !shape.IsStochastic() && shape.val <= 0 {
		return &InvalidParameterError{Dist: "Gamma", Param: "shape", Reason: "must be positive"}
	}
	if scale := ctx.d.params[1]; !scale.IsStochastic() && scale.val <= 0 {
		return &InvalidParameterError{Dist: "Gamma", Param: "scale", Reason: "must be positive"}
	}
	return nil
}

func (v gamma) dist(ctx Ctx) (distuv.Gamma, error) {
	shape, err := ctx.Value(0)
	if err != nil {
		return distuv.Gamma{}, err
	}
	scale, err := ctx.Value(1)
	if err != nil {
		return distuv.Gamma{}, err
	}
	// distuv parameterizes by rate.
	return distuv.Gamma{Alpha: shape, Beta: 1 / scale}, nil
}

func (v gamma) CDF(x float64, ctx Ctx) (float64, error) {
	g, err := v.dist(ctx)
	if err != nil {
		return 0, err
	}
	if x <= 0 {
		return 0, nil
	}
	return g.CDF(x), nil
}

func (v gamma) Quantile(q float64, ctx Ctx) (float64, error) {
	g, err := v.dist(ctx)
	if err != nil {
		return 0, err
	}
	return g.Quantile(q), nil
}

func (v gamma) PDF(x float64, ctx Ctx) (float64, error) {
	g, err := v.dist(ctx)
	if err != nil {
		return 0, err
	}
	if x <= 0 {
		return 0, nil
	}
	return g.Prob(x), nil
}

func (v gamma) Bounds(ctx Ctx) (lo, hi float64, err error) {
	g, err := v.dist(ctx)
	if err != nil {
		return 0, 0, err
	}
	return 0, g.Quantile(1 - boundsEps), nil
}

// Moment is scale^k prod_{i<k} (shape+i).
func (v gamma) Moment(k int, ctx Ctx) (float64, error) {
	g, err := v.dist(ctx)
	if err != nil {
		return 0, err
	}
	scale := 1 / g.Beta
	out := 1.0
	for i := 0; i < k; i++ {
		out *= (g.Alpha + float64(i)) * scale
	}
	return out, nil
}

// Recurrence is the monic generalized Laguerre recurrence scaled by
// the scale parameter: alpha_k = (2k+shape) scale, beta_k =
// k (k+shape-1) scale^2.
func (v gamma) Recurrence(k int, ctx Ctx) (alpha, beta float64, err error) {
	g, err := v.dist(ctx)
	if err != nil {
		return 0, 0, err
	}
	scale := 1 / g.Beta
	kk := float64(k)
	alpha = (2*kk + g.Alpha) * scale
	if k == 0 {
		return alpha, 1, nil
	}
	return alpha, kk * (kk + g.Alpha - 1) * scale * scale, nil
}

// Gamma returns the Gamma distribution with the given shape and scale.
func Gamma(shape, scale float64) (*Dist, error) {
	return GammaP(Fixed(shape), Fixed(scale))
}

// GammaP is Gamma with possibly stochastic parameters.
func GammaP(shape, scale Param) (*Dist, error) {
	return New(gamma{}, shape, scale)
}

// Exponential returns the exponential distribution with the given
// scale (mean), the shape-one member of the Gamma family.
func Exponential(scale float64) (*Dist, error) {
	return Gamma(1, scale)
}
