// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package describe computes descriptive statistics of polynomials
// under a distribution.
package describe

import (
	"sort"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"

	"github.com/utsekaj42/chaospy/dist"
	"github.com/utsekaj42/chaospy/poly"
)

// E returns the expected value of p under d, computed term by term
// from the raw moments of d.
func E(p poly.Poly, d *dist.Dist) (float64, error) {
	if p.Dim() != d.Len() {
		return 0, errors.Newf("describe: polynomial dimension %d does not match distribution length %d",
			p.Dim(), d.Len())
	}
	var out float64
	var err error
	p.Terms(func(exps []int, coeff float64) {
		if err != nil {
			return
		}
		var m float64
		m, err = d.Moment(exps...)
		out += coeff * m
	})
	if err != nil {
		return 0, err
	}
	return out, nil
}

// Var returns the variance of p under d.
func Var(p poly.Poly, d *dist.Dist) (float64, error) {
	mean, err := E(p, d)
	if err != nil {
		return 0, err
	}
	second, err := E(p.Mul(p), d)
	if err != nil {
		return 0, err
	}
	return second - mean*mean, nil
}

// Perc estimates percentiles of each polynomial in polys under d by
// Monte Carlo. qs are percentile levels in [0, 100]. The sample of
// size n is augmented with the corners of d's bounding box so the
// extreme percentiles reach the support edges. A nil src seeds from
// the current time.
//
// The result has shape (len(polys), len(qs)).
func Perc(polys []poly.Poly, qs []float64, d *dist.Dist, n int, src rand.Source) ([][]float64, error) {
	if n <= 0 {
		return nil, errors.Newf("describe: sample size must be positive, got %d", n)
	}
	for _, q := range qs {
		if q < 0 || q > 100 {
			return nil, errors.Newf("describe: percentile %g outside [0, 100]", q)
		}
	}
	samples, err := d.Sample(n, src)
	if err != nil {
		return nil, err
	}
	corners, err := boundCorners(d)
	if err != nil {
		return nil, err
	}
	dim := d.Len()
	total := n + len(corners)
	points := make([][]float64, total)
	for j := 0; j < n; j++ {
		x := make([]float64, dim)
		for i := 0; i < dim; i++ {
			x[i] = samples[i][j]
		}
		points[j] = x
	}
	copy(points[n:], corners)

	out := make([][]float64, len(polys))
	vals := make([]float64, total)
	for pi, p := range polys {
		if p.Dim() != dim {
			return nil, errors.Newf("describe: polynomial dimension %d does not match distribution length %d",
				p.Dim(), dim)
		}
		for j, x := range points {
			vals[j] = p.Eval(x)
		}
		sort.Float64s(vals)
		row := make([]float64, len(qs))
		for qi, q := range qs {
			row[qi] = stat.Quantile(q/100, stat.LinInterp, vals, nil)
		}
		out[pi] = row
	}
	return out, nil
}

// boundCorners returns the 2^dim corners of d's bounding box.
func boundCorners(d *dist.Dist) ([][]float64, error) {
	lo, hi, err := d.Bounds()
	if err != nil {
		return nil, err
	}
	dim := d.Len()
	corners := make([][]float64, 1<<uint(dim))
	for mask := range corners {
		x := make([]float64, dim)
		for i := 0; i < dim; i++ {
			if mask&(1<<uint(i)) != 0 {
				x[i] = hi[i]
			} else {
				x[i] = lo[i]
			}
		}
		corners[mask] = x
	}
	return corners, nil
}
