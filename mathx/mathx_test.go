// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import (
	"math"
	"testing"
)

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

func TestChoose(t *testing.T) {
	for _, c := range []struct {
		n, k int
		want float64
	}{
		{0, 0, 1},
		{5, 0, 1},
		{5, 2, 10},
		{5, 5, 1},
		{5, 6, 0},
		{5, -1, 0},
		{50, 25, 126410606437752},
		{52, 26, 495918532948104},
	} {
		if got := Choose(c.n, c.k); got != c.want {
			t.Errorf("Choose(%d, %d): want %v, got %v", c.n, c.k, c.want, got)
		}
	}
}

func TestOddDoubleFactorial(t *testing.T) {
	want := []float64{1, 1, 3, 15, 105, 945}
	for k, w := range want {
		if got := OddDoubleFactorial(k); got != w {
			t.Errorf("OddDoubleFactorial(%d): want %v, got %v", k, w, got)
		}
	}
}

func TestFejer1(t *testing.T) {
	for _, n := range []int{1, 2, 5, 17, 100} {
		nodes, weights := Fejer1(n)
		sum := 0.0
		for j, x := range nodes {
			if x <= 0 || x >= 1 {
				t.Errorf("n=%d: node %v outside (0, 1)", n, x)
			}
			if j > 0 && nodes[j-1] >= x {
				t.Errorf("n=%d: nodes not increasing at %d", n, j)
			}
			if weights[j] <= 0 {
				t.Errorf("n=%d: non-positive weight %v", n, weights[j])
			}
			sum += weights[j]
		}
		if !aeq(1, sum) {
			t.Errorf("n=%d: weights sum to %v", n, sum)
		}
		// Exactness on low-degree polynomials: integral of x^2
		// over (0, 1) is 1/3.
		if n >= 3 {
			got := 0.0
			for j, x := range nodes {
				got += weights[j] * x * x
			}
			if !aeq(1.0/3, got) {
				t.Errorf("n=%d: integral of x^2 = %v, want 1/3", n, got)
			}
		}
	}
}
