// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"gonum.org/v1/gonum/mathext"

	"github.com/utsekaj42/chaospy/mathx"
)

// binomial is the binomial family: the number of successes in size
// independent Bernoulli trials with success probability prob. It is a
// discrete distribution; PDF is the point mass function and the
// quantile is the generalized (stepwise) inverse. Its orthogonal
// polynomials are the Krawtchouk polynomials.
type binomial struct{}

func (binomial) Name() string { return "Binomial" }

func (binomial) Validate(ctx Ctx) error {
	if size := ctx.d.params[0]; !size.IsStochastic() && (size.val < 0 || size.val != math.Floor(size.val)) {
		return &InvalidParameterError{Dist: "Binomial", Param: "size", Reason: "must be a non-negative integer"}
	}
	if prob := ctx.d.params[1]; !prob.IsStochastic() && (prob.val < 0 || prob.val > 1) {
		return &InvalidParameterError{Dist: "Binomial", Param: "prob", Reason: "must be in [0, 1]"}
	}
	return nil
}

func (v binomial) dist(ctx Ctx) (size int, prob float64, err error) {
	s, err := ctx.Value(0)
	if err != nil {
		return 0, 0, err
	}
	prob, err = ctx.Value(1)
	if err != nil {
		return 0, 0, err
	}
	return int(math.Floor(s)), prob, nil
}

// CDF is the probability of floor(x) or fewer successes, computed
// through the regularized incomplete beta function.
func (v binomial) CDF(x float64, ctx Ctx) (float64, error) {
	n, p, err := v.dist(ctx)
	if err != nil {
		return 0, err
	}
	k := int(math.Floor(x))
	switch {
	case k < 0:
		return 0, nil
	case k >= n:
		return 1, nil
	case p <= 0:
		return 1, nil
	case p >= 1:
		return 0, nil
	}
	return mathext.RegIncBeta(float64(n-k), float64(k+1), 1-p), nil
}

// Quantile is the smallest k with CDF(k) >= q.
func (v binomial) Quantile(q float64, ctx Ctx) (float64, error) {
	n, _, err := v.dist(ctx)
	if err != nil {
		return 0, err
	}
	for k := 0; k < n; k++ {
		c, err := v.CDF(float64(k), ctx)
		if err != nil {
			return 0, err
		}
		if c >= q {
			return float64(k), nil
		}
	}
	return float64(n), nil
}

// PDF is the point mass at the integer nearest below x.
func (v binomial) PDF(x float64, ctx Ctx) (float64, error) {
	n, p, err := v.dist(ctx)
	if err != nil {
		return 0, err
	}
	k := int(math.Floor(x))
	if k < 0 || k > n {
		return 0, nil
	}
	return mathx.Choose(n, k) * math.Pow(p, float64(k)) * math.Pow(1-p, float64(n-k)), nil
}

func (v binomial) Bounds(ctx Ctx) (lo, hi float64, err error) {
	n, _, err := v.dist(ctx)
	if err != nil {
		return 0, 0, err
	}
	return 0, float64(n), nil
}

func (v binomial) Moment(k int, ctx Ctx) (float64, error) {
	n, _, err := v.dist(ctx)
	if err != nil {
		return 0, err
	}
	sum := 0.0
	for x := 0; x <= n; x++ {
		m, err := v.PDF(float64(x), ctx)
		if err != nil {
			return 0, err
		}
		sum += math.Pow(float64(x), float64(k)) * m
	}
	return sum, nil
}

// Recurrence is the monic Krawtchouk recurrence:
// alpha_k = p(n-k) + k(1-p), beta_k = k p (1-p) (n-k+1).
func (v binomial) Recurrence(k int, ctx Ctx) (alpha, beta float64, err error) {
	n, p, err := v.dist(ctx)
	if err != nil {
		return 0, 0, err
	}
	kk := float64(k)
	alpha = p*(float64(n)-kk) + kk*(1-p)
	if k == 0 {
		return alpha, 1, nil
	}
	return alpha, kk * p * (1 - p) * (float64(n) - kk + 1), nil
}

// Binomial returns the binomial distribution with the given number of
// trials and success probability.
func Binomial(size int, prob float64) (*Dist, error) {
	return BinomialP(Fixed(float64(size)), Fixed(prob))
}

// BinomialP is Binomial with possibly stochastic parameters.
func BinomialP(size, prob Param) (*Dist, error) {
	return New(binomial{}, size, prob)
}
