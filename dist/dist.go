// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dist implements a framework of probability distributions for
// uncertainty quantification. A distribution exposes its forward CDF,
// inverse CDF (quantile), density, bounds, raw moments, sampling, and,
// when known analytically, the three-term recurrence coefficients of
// its orthogonal polynomial sequence.
//
// Concrete distribution families implement a subset of these
// primitives; the framework derives the missing ones numerically
// (monotone root finding for a missing inverse, finite differences for
// a missing density, proxy quadrature for missing moments). Which
// primitives a family implements is detected once at construction, not
// per call.
package dist // import "github.com/utsekaj42/chaospy/dist"

import (
	"fmt"
	"strings"
)

// A Variant is the implementation surface of a concrete distribution
// family. Beyond Name, a Variant declares capabilities by implementing
// the optional interfaces CDFer, Quantiler, PDFer, Bounder, Momenter,
// and Recurrer. At least one of CDFer, Quantiler, or PDFer is
// required; a Variant implementing only PDFer must also implement
// Bounder, since every derivation path from a bare density needs a
// finite integration interval.
type Variant interface {
	// Name reports the distribution family name used in errors and
	// in the String form.
	Name() string
}

// Ctx carries the owning distribution's parameters and the per-call
// evaluation cache into Variant capability methods.
type Ctx struct {
	d     *Dist
	cache *Cache
}

// Value resolves parameter i to a concrete number. Stochastic
// parameters resolve through the cache, falling back to their median.
func (ctx Ctx) Value(i int) (float64, error) {
	return ctx.d.params[i].resolve(ctx.cache)
}

// Dist returns parameter i as a distribution, or nil if it is fixed.
func (ctx Ctx) Dist(i int) *Dist { return ctx.d.params[i].dist }

// Cache returns the evaluation cache of the current call tree. It may
// be nil when the evaluation did not originate from a composite call.
func (ctx Ctx) Cache() *Cache { return ctx.cache }

// CDFer is the forward cumulative distribution capability.
type CDFer interface {
	CDF(x float64, ctx Ctx) (float64, error)
}

// Quantiler is the inverse CDF capability.
type Quantiler interface {
	Quantile(q float64, ctx Ctx) (float64, error)
}

// PDFer is the density capability. For discrete families this is the
// point mass function.
type PDFer interface {
	PDF(x float64, ctx Ctx) (float64, error)
}

// Bounder reports the support interval. The total probability mass
// outside [lo, hi] must be negligible.
type Bounder interface {
	Bounds(ctx Ctx) (lo, hi float64, err error)
}

// Momenter is the raw moment capability: E[X^k].
type Momenter interface {
	Moment(k int, ctx Ctx) (float64, error)
}

// Recurrer is the analytical three-term recurrence capability,
// returning the order-k coefficients (alpha_k, beta_k) of the monic
// orthogonal polynomial sequence for the family's density.
type Recurrer interface {
	Recurrence(k int, ctx Ctx) (alpha, beta float64, err error)
}

// Validator lets a Variant validate its fixed parameters at
// construction time. Stochastic parameters are not validated since
// their domain is not known until realization.
type Validator interface {
	Validate(ctx Ctx) error
}

type capabilities struct {
	cdf, quantile, pdf     bool
	bounds, moment, recurr bool
	realize                bool
}

// A Dist is an immutable random variable or random vector. Evaluation
// methods are pure functions of their arguments; the only mutable
// state involved is the per-call Cache threaded through composite
// evaluations.
type Dist struct {
	variant    Variant
	params     []Param
	caps       capabilities
	components []*Dist // non-nil for joint distributions
	order      []int   // topological sampling order of components
}

// New constructs a distribution from a variant and its parameters.
// It detects the variant's capability set, validates fixed parameters,
// and rejects cyclic parameter dependencies.
func New(v Variant, params ...Param) (*Dist, error) {
	d := &Dist{variant: v, params: params}
	_, d.caps.cdf = v.(CDFer)
	_, d.caps.quantile = v.(Quantiler)
	_, d.caps.pdf = v.(PDFer)
	_, d.caps.bounds = v.(Bounder)
	_, d.caps.moment = v.(Momenter)
	_, d.caps.recurr = v.(Recurrer)
	_, d.caps.realize = v.(realizer)

	if !d.caps.cdf && !d.caps.quantile && !d.caps.pdf {
		return nil, &InvalidParameterError{
			Dist:   v.Name(),
			Param:  "variant",
			Reason: "must implement at least one of CDF, Quantile, PDF",
		}
	}
	if d.caps.pdf && !d.caps.cdf && !d.caps.quantile && !d.caps.bounds {
		return nil, &InvalidParameterError{
			Dist:   v.Name(),
			Param:  "variant",
			Reason: "density-only variants must declare bounds",
		}
	}
	if err := checkAcyclic(v.Name(), d.paramDists()); err != nil {
		return nil, err
	}
	if val, ok := v.(Validator); ok {
		if err := val.Validate(Ctx{d: d}); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Must returns d or panics if err is non-nil. It is a convenience for
// constructing distributions with parameters known to be valid.
func Must(d *Dist, err error) *Dist {
	if err != nil {
		panic(err)
	}
	return d
}

// J joins univariate or joint distributions into one joint
// distribution of dimension equal to the sum of the operands'
// dimensions. Components are stochastically independent unless they
// are linked through stochastic parameters, in which case sampling
// conditions later components on earlier realizations.
func J(dists ...*Dist) (*Dist, error) {
	if len(dists) == 0 {
		return nil, &InvalidParameterError{Dist: "J", Param: "dists", Reason: "requires at least one component"}
	}
	var comps []*Dist
	for _, d := range dists {
		comps = append(comps, d.Marginals()...)
	}
	if len(comps) == 1 {
		return comps[0], nil
	}
	if err := checkAcyclic("J", comps); err != nil {
		return nil, err
	}
	return &Dist{components: comps, order: topoOrder(comps)}, nil
}

// IID joins n independent copies of d. The copies share d's variant
// and parameters but are distinct random variables: each gets its own
// identity for caching and sampling.
func IID(d *Dist, n int) (*Dist, error) {
	if n < 1 {
		return nil, &InvalidParameterError{Dist: d.name(), Param: "n", Reason: "must be at least 1"}
	}
	if d.Len() != 1 {
		return nil, &InvalidParameterError{Dist: d.name(), Param: "dist", Reason: "IID requires a univariate distribution"}
	}
	comps := make([]*Dist, n)
	for i := range comps {
		cp := *d
		comps[i] = &cp
	}
	return J(comps...)
}

// Len returns the dimensionality of d.
func (d *Dist) Len() int {
	if d.components == nil {
		return 1
	}
	return len(d.components)
}

// Marginals returns the univariate components of d, or d itself when
// it is univariate.
func (d *Dist) Marginals() []*Dist {
	if d.components == nil {
		return []*Dist{d}
	}
	return d.components
}

func (d *Dist) name() string {
	if d.components != nil {
		return "J"
	}
	return d.variant.Name()
}

// String returns a readable form such as "Normal(0, 1)".
func (d *Dist) String() string {
	if d.components != nil {
		parts := make([]string, len(d.components))
		for i, c := range d.components {
			parts[i] = c.String()
		}
		return "J(" + strings.Join(parts, ", ") + ")"
	}
	parts := make([]string, len(d.params))
	for i, p := range d.params {
		if p.dist != nil {
			parts[i] = p.dist.String()
		} else {
			parts[i] = fmt.Sprintf("%g", p.val)
		}
	}
	return d.variant.Name() + "(" + strings.Join(parts, ", ") + ")"
}

func (d *Dist) mustScalar(op string) {
	if d.components != nil {
		panic(fmt.Sprintf("dist: %s called on %d-dimensional distribution", op, d.Len()))
	}
}

// CDF returns the forward cumulative distribution value at x. d must
// be univariate.
func (d *Dist) CDF(x float64) (float64, error) {
	d.mustScalar("CDF")
	return d.forward(x, nil)
}

// CDFEach returns CDF(xs[i]) for each i. If some elements fail, the
// returned error is a *BatchError identifying them and the failed
// entries are NaN.
func (d *Dist) CDFEach(xs []float64) ([]float64, error) {
	return d.each(xs, d.CDF)
}

// InvCDF returns the generalized inverse of the CDF at q in [0, 1].
// For families without an analytic quantile this runs monotone root
// finding and can return a *ConvergenceError.
func (d *Dist) InvCDF(q float64) (float64, error) {
	d.mustScalar("InvCDF")
	return d.quantile(q, nil)
}

// InvCDFEach returns InvCDF(qs[i]) for each i, reporting per-index
// failures through a *BatchError.
func (d *Dist) InvCDFEach(qs []float64) ([]float64, error) {
	return d.each(qs, d.InvCDF)
}

// PDF returns the probability density (or point mass) at x. When the
// family does not implement a density it is approximated by a central
// finite difference of the CDF, which degrades near the support
// boundaries.
func (d *Dist) PDF(x float64) (float64, error) {
	d.mustScalar("PDF")
	return d.density(x, nil)
}

// PDFEach returns PDF(xs[i]) for each i, reporting per-index failures
// through a *BatchError.
func (d *Dist) PDFEach(xs []float64) ([]float64, error) {
	return d.each(xs, d.PDF)
}

func (d *Dist) each(in []float64, f func(float64) (float64, error)) ([]float64, error) {
	out := make([]float64, len(in))
	var batch *BatchError
	for i, x := range in {
		v, err := f(x)
		if err != nil {
			if batch == nil {
				batch = &BatchError{Err: err}
			}
			batch.Indices = append(batch.Indices, i)
			v = nan
		}
		out[i] = v
	}
	if batch != nil {
		return out, batch
	}
	return out, nil
}

// Bounds returns the per-dimension support interval of d. The weight
// outside [lo[i], hi[i]] is negligible for every dimension i.
func (d *Dist) Bounds() (lo, hi []float64, err error) {
	marg := d.Marginals()
	lo = make([]float64, len(marg))
	hi = make([]float64, len(marg))
	for i, m := range marg {
		lo[i], hi[i], err = m.bounds(nil)
		if err != nil {
			return nil, nil, err
		}
	}
	return lo, hi, nil
}

// Moment returns the raw moment E[X1^k1 ... Xd^kd]. One exponent must
// be given per dimension. Joint moments assume a product measure
// across components; for parameter-linked components the result is the
// documented per-marginal approximation.
func (d *Dist) Moment(ks ...int) (float64, error) {
	marg := d.Marginals()
	if len(ks) != len(marg) {
		panic(fmt.Sprintf("dist: Moment needs %d exponents, got %d", len(marg), len(ks)))
	}
	prod := 1.0
	for i, m := range marg {
		v, err := m.moment(ks[i], nil)
		if err != nil {
			return 0, err
		}
		prod *= v
	}
	return prod, nil
}

// HasRecurrence reports whether every marginal of d declares the
// analytical three-term recurrence capability.
func (d *Dist) HasRecurrence() bool {
	for _, m := range d.Marginals() {
		if !m.caps.recurr {
			return false
		}
	}
	return true
}

// Recurrence returns the analytical order-k recurrence coefficients of
// d. d must be univariate and must declare the capability, which
// callers check with HasRecurrence.
func (d *Dist) Recurrence(k int) (alpha, beta float64, err error) {
	d.mustScalar("Recurrence")
	return d.recurrence(k, nil)
}
