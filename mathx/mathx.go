// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// mathx implements special functions and small numerical helpers
// shared across this module.
package mathx // import "github.com/utsekaj42/chaospy/mathx"

import (
	"math"

	"gonum.org/v1/gonum/stat/combin"
)

// Choose returns the binomial coefficient n choose k, or 0 when k is
// outside [0, n]. The result is exact.
func Choose(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	return float64(combin.Binomial(n, k))
}

// OddDoubleFactorial returns (2k-1)!! = 1*3*5*...*(2k-1), the number
// of perfect matchings of 2k elements. OddDoubleFactorial(0) is 1.
func OddDoubleFactorial(k int) float64 {
	out := 1.0
	for i := 3; i <= 2*k-1; i += 2 {
		out *= float64(i)
	}
	return out
}

// Fejer1 returns the n-point Fejér type-1 quadrature rule mapped to
// the open unit interval (0, 1) with weights normalized to sum to one.
// The rule is open (no node touches 0 or 1), which makes it a safe
// proxy rule for integrals rewritten through an inverse CDF: the
// endpoints would map to the distribution bounds, which may be
// infinite.
func Fejer1(n int) (nodes, weights []float64) {
	if n < 1 {
		panic("mathx: Fejer1 needs at least one node")
	}
	nodes = make([]float64, n)
	weights = make([]float64, n)
	sum := 0.0
	for j := 0; j < n; j++ {
		theta := float64(2*j+1) * math.Pi / float64(2*n)
		// Nodes of the Chebyshev measure, in increasing order on (0, 1).
		nodes[n-1-j] = (math.Cos(theta) + 1) / 2
		w := 1.0
		for m := 1; m <= n/2; m++ {
			w -= 2 * math.Cos(2*float64(m)*theta) / float64(4*m*m-1)
		}
		w *= 2 / float64(n)
		weights[n-1-j] = w
		sum += w
	}
	for j := range weights {
		weights[j] /= sum
	}
	return nodes, weights
}
