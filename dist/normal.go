// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/utsekaj42/chaospy/mathx"
)

// normal is the Gaussian family. Its orthogonal polynomials are the
// probabilists' Hermite polynomials.
type normal struct{}

func (normal) Name() string { return "Normal" }

func (normal) Validate(ctx Ctx) error {
	if sigma := ctx.d.params[1]; !sigma.IsStochastic() && sigma.val <= 0 {
		return &InvalidParameterError{Dist: "Normal", Param: "sigma", Reason: "must be positive"}
	}
	return nil
}

func (v normal) dist(ctx Ctx) (distuv.Normal, error) {
	mu, err := ctx.Value(0)
	if err != nil {
		return distuv.Normal{}, err
	}
	sigma, err := ctx.Value(1)
	if err != nil {
		return distuv.Normal{}, err
	}
	return distuv.Normal{Mu: mu, Sigma: sigma}, nil
}

func (v normal) CDF(x float64, ctx Ctx) (float64, error) {
	n, err := v.dist(ctx)
	if err != nil {
		return 0, err
	}
	return n.CDF(x), nil
}

func (v normal) Quantile(q float64, ctx Ctx) (float64, error) {
	n, err := v.dist(ctx)
	if err != nil {
		return 0, err
	}
	return n.Quantile(q), nil
}

func (v normal) PDF(x float64, ctx Ctx) (float64, error) {
	n, err := v.dist(ctx)
	if err != nil {
		return 0, err
	}
	return n.Prob(x), nil
}

func (v normal) Bounds(ctx Ctx) (lo, hi float64, err error) {
	n, err := v.dist(ctx)
	if err != nil {
		return 0, 0, err
	}
	return n.Quantile(boundsEps), n.Quantile(1 - boundsEps), nil
}

// Moment is the closed-form raw moment, summing central moments
// sigma^i (i-1)!! against the binomial expansion of (mu + Z)^k.
func (v normal) Moment(k int, ctx Ctx) (float64, error) {
	n, err := v.dist(ctx)
	if err != nil {
		return 0, err
	}
	sum := 0.0
	for i := 0; i <= k; i += 2 {
		sum += mathx.Choose(k, i) * mathx.OddDoubleFactorial(i/2) *
			math.Pow(n.Sigma, float64(i)) * math.Pow(n.Mu, float64(k-i))
	}
	return sum, nil
}

// Recurrence is the monic Hermite recurrence shifted and scaled to
// (mu, sigma): alpha_k = mu, beta_k = k sigma^2.
func (v normal) Recurrence(k int, ctx Ctx) (alpha, beta float64, err error) {
	n, err := v.dist(ctx)
	if err != nil {
		return 0, 0, err
	}
	if k == 0 {
		return n.Mu, 1, nil
	}
	return n.Mu, float64(k) * n.Sigma * n.Sigma, nil
}

// Normal returns the Gaussian distribution with mean mu and standard
// deviation sigma.
func Normal(mu, sigma float64) (*Dist, error) {
	return NormalP(Fixed(mu), Fixed(sigma))
}

// NormalP is Normal with possibly stochastic parameters.
func NormalP(mu, sigma Param) (*Dist, error) {
	return New(normal{}, mu, sigma)
}
