// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// uniform is the continuous uniform family. Its orthogonal
// polynomials are the Legendre polynomials shifted to [lo, up].
type uniform struct{}

func (uniform) Name() string { return "Uniform" }

func (uniform) Validate(ctx Ctx) error {
	lo, up := ctx.d.params[0], ctx.d.params[1]
	if !lo.IsStochastic() && !up.IsStochastic() && up.val <= lo.val {
		return &InvalidParameterError{Dist: "Uniform", Param: "upper", Reason: "must exceed lower"}
	}
	return nil
}

func (v uniform) dist(ctx Ctx) (distuv.Uniform, error) {
	lo, err := ctx.Value(0)
	if err != nil {
		return distuv.Uniform{}, err
	}
	up, err := ctx.Value(1)
	if err != nil {
		return distuv.Uniform{}, err
	}
	return distuv.Uniform{Min: lo, Max: up}, nil
}

func (v uniform) CDF(x float64, ctx Ctx) (float64, error) {
	u, err := v.dist(ctx)
	if err != nil {
		return 0, err
	}
	return u.CDF(x), nil
}

func (v uniform) Quantile(q float64, ctx Ctx) (float64, error) {
	u, err := v.dist(ctx)
	if err != nil {
		return 0, err
	}
	return u.Quantile(q), nil
}

func (v uniform) PDF(x float64, ctx Ctx) (float64, error) {
	u, err := v.dist(ctx)
	if err != nil {
		return 0, err
	}
	return u.Prob(x), nil
}

func (v uniform) Bounds(ctx Ctx) (lo, hi float64, err error) {
	u, err := v.dist(ctx)
	if err != nil {
		return 0, 0, err
	}
	return u.Min, u.Max, nil
}

func (v uniform) Moment(k int, ctx Ctx) (float64, error) {
	u, err := v.dist(ctx)
	if err != nil {
		return 0, err
	}
	k1 := float64(k + 1)
	return (math.Pow(u.Max, k1) - math.Pow(u.Min, k1)) / (k1 * (u.Max - u.Min)), nil
}

// Recurrence is the monic Legendre recurrence mapped to [lo, up]:
// alpha_k is the midpoint, beta_k = h^2 k^2/(4k^2-1) for half-width h.
func (v uniform) Recurrence(k int, ctx Ctx) (alpha, beta float64, err error) {
	u, err := v.dist(ctx)
	if err != nil {
		return 0, 0, err
	}
	alpha = (u.Min + u.Max) / 2
	if k == 0 {
		return alpha, 1, nil
	}
	h := (u.Max - u.Min) / 2
	kk := float64(k)
	return alpha, h * h * kk * kk / (4*kk*kk - 1), nil
}

// Uniform returns the uniform distribution on [lo, up].
func Uniform(lo, up float64) (*Dist, error) {
	return UniformP(Fixed(lo), Fixed(up))
}

// UniformP is Uniform with possibly stochastic parameters.
func UniformP(lo, up Param) (*Dist, error) {
	return New(uniform{}, lo, up)
}
