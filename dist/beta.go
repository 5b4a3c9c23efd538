// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"gonum.org/v1/gonum/stat/distuv"
)

// beta is the Beta family on an arbitrary interval [lo, up]. Its
// orthogonal polynomials are the Jacobi polynomials mapped to the
// interval.
type beta struct{}

func (beta) Name() string { return "Beta" }

func (beta) Validate(ctx Ctx) error {
	for i, name := range []string{"a", "b"} {
		if p := ctx.d.params[i]; !p.IsStochastic() && p.val <= 0 {
			return &InvalidParameterError{Dist: "Beta", Param: name, Reason: "must be positive"}
		}
	}
	lo, up := ctx.d.params[2], ctx.d.params[3]
	if !lo.IsStochastic() && !up.IsStochastic() && up.val <= lo.val {
		return &InvalidParameterError{Dist: "Beta", Param: "upper", Reason: "must exceed lower"}
	}
	return nil
}

type betaParams struct {
	std    distuv.Beta
	lo, up float64
}

func (v beta) dist(ctx Ctx) (betaParams, error) {
	var out betaParams
	a, err := ctx.Value(0)
	if err != nil {
		return out, err
	}
	b, err := ctx.Value(1)
	if err != nil {
		return out, err
	}
	out.lo, err = ctx.Value(2)
	if err != nil {
		return out, err
	}
	out.up, err = ctx.Value(3)
	if err != nil {
		return out, err
	}
	out.std = distuv.Beta{Alpha: a, Beta: b}
	return out, nil
}

func (p betaParams) toStd(x float64) float64 { return (x - p.lo) / (p.up - p.lo) }

func (v beta) CDF(x float64, ctx Ctx) (float64, error) {
	p, err := v.dist(ctx)
	if err != nil {
		return 0, err
	}
	return p.std.CDF(p.toStd(x)), nil
}

func (v beta) Quantile(q float64, ctx Ctx) (float64, error) {
	p, err := v.dist(ctx)
	if err != nil {
		return 0, err
	}
	return p.lo + (p.up-p.lo)*p.std.Quantile(q), nil
}

func (v beta) PDF(x float64, ctx Ctx) (float64, error) {
	p, err := v.dist(ctx)
	if err != nil {
		return 0, err
	}
	return p.std.Prob(p.toStd(x)) / (p.up - p.lo), nil
}

func (v beta) Bounds(ctx Ctx) (lo, hi float64, err error) {
	p, err := v.dist(ctx)
	if err != nil {
		return 0, 0, err
	}
	return p.lo, p.up, nil
}

// Recurrence is the monic Jacobi recurrence for the weight
// (1-t)^(b-1) (1+t)^(a-1) on [-1, 1], mapped affinely to [lo, up].
func (v beta) Recurrence(k int, ctx Ctx) (alpha, betaK float64, err error) {
	p, err := v.dist(ctx)
	if err != nil {
		return 0, 0, err
	}
	// Jacobi exponents: A on (1-t), B on (1+t).
	A, B := p.std.Beta-1, p.std.Alpha-1
	kk := float64(k)
	s := 2*kk + A + B
	var a, b float64
	switch {
	case k == 0:
		a = (B - A) / (A + B + 2)
		b = 1
	case k == 1:
		// The general term has a removable 0/0 at A+B = -1;
		// the (k+A+B)/(s-1) factor cancels for k = 1.
		a = (B*B - A*A) / (s * (s + 2))
		b = 4 * (1 + A) * (1 + B) / (s * s * (s + 1))
	default:
		a = (B*B - A*A) / (s * (s + 2))
		b = 4 * kk * (kk + A) * (kk + B) * (kk + A + B) / (s * s * (s + 1) * (s - 1))
	}
	h := (p.up - p.lo) / 2
	alpha = p.lo + h*(a+1)
	if k == 0 {
		return alpha, 1, nil
	}
	return alpha, b * h * h, nil
}

// Beta returns the Beta distribution with shape parameters a and b on
// the interval [lo, up].
func Beta(a, b, lo, up float64) (*Dist, error) {
	return BetaP(Fixed(a), Fixed(b), Fixed(lo), Fixed(up))
}

// BetaP is Beta with possibly stochastic parameters.
func BetaP(a, b, lo, up Param) (*Dist, error) {
	return New(beta{}, a, b, lo, up)
}
