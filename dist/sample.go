// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"time"

	"golang.org/x/exp/rand"
)

// Sample draws n points from d by inverse transform sampling of
// independent uniforms. The result has shape (Len, n): row i holds the
// draws of dimension i, and column j is one joint draw.
//
// Joint components are drawn in topological order of their parameter
// dependencies, each draw sharing one evaluation cache, so components
// linked through stochastic parameters are conditioned on the
// realizations of their ancestors (a Rosenblatt-style sequential
// conditioning). Each column uses a fresh cache; batches sampled
// concurrently therefore never share mutable state as long as they use
// distinct sources.
//
// If src is nil a time-seeded source is used.
func (d *Dist) Sample(n int, src rand.Source) ([][]float64, error) {
	if src == nil {
		src = rand.NewSource(uint64(time.Now().UnixNano()))
	}
	rng := rand.New(src)

	marg := d.Marginals()
	order := d.order
	if order == nil {
		order = []int{0}
	}
	out := make([][]float64, len(marg))
	for i := range out {
		out[i] = make([]float64, n)
	}
	for j := 0; j < n; j++ {
		c := NewCache()
		for _, i := range order {
			m := marg[i]
			v, err := m.quantile(rng.Float64(), c)
			if err != nil {
				return nil, err
			}
			c.put(m, v)
			out[i][j] = v
		}
	}
	return out, nil
}

// Sample1 draws n points from a univariate distribution as a flat
// slice. It panics on a multivariate distribution.
func (d *Dist) Sample1(n int, src rand.Source) ([]float64, error) {
	d.mustScalar("Sample1")
	xs, err := d.Sample(n, src)
	if err != nil {
		return nil, err
	}
	return xs[0], nil
}
