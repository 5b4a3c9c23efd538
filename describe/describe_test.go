// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package describe

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/utsekaj42/chaospy/dist"
	"github.com/utsekaj42/chaospy/poly"
)

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

func TestE(t *testing.T) {
	n := dist.Must(dist.Normal(0, 1))
	x := poly.Var(1, 0)

	// E[x^2 + 2x + 3] = 1 + 0 + 3.
	p := x.Mul(x).Add(x.Scale(2)).Add(poly.Const(1, 3))
	got, err := E(p, n)
	require.NoError(t, err)
	if !aeq(4, got) {
		t.Errorf("E: want 4, got %v", got)
	}

	// Dimension mismatch is rejected.
	_, err = E(poly.Var(2, 0), n)
	require.Error(t, err)
}

func TestVar(t *testing.T) {
	n := dist.Must(dist.Normal(0, 1))
	x := poly.Var(1, 0)

	// Var(x^2) = E[x^4] - E[x^2]^2 = 3 - 1.
	got, err := Var(x.Mul(x), n)
	require.NoError(t, err)
	if !aeq(2, got) {
		t.Errorf("Var(x^2): want 2, got %v", got)
	}

	// Var(3x + 1) = 9.
	got, err = Var(x.Scale(3).Add(poly.Const(1, 1)), n)
	require.NoError(t, err)
	if !aeq(9, got) {
		t.Errorf("Var(3x+1): want 9, got %v", got)
	}
}

func TestEJoint(t *testing.T) {
	d := dist.Must(dist.J(dist.Must(dist.Uniform(0, 1)), dist.Must(dist.Normal(0, 1))))
	x := poly.Var(2, 0)
	y := poly.Var(2, 1)

	// E[x y^2] = E[x] E[y^2] = 1/2.
	got, err := E(x.Mul(y).Mul(y), d)
	require.NoError(t, err)
	if !aeq(0.5, got) {
		t.Errorf("E[x y^2]: want 0.5, got %v", got)
	}
}

func TestPerc(t *testing.T) {
	u := dist.Must(dist.Uniform(0, 1))
	x := poly.Var(1, 0)
	polys := []poly.Poly{x, x.Scale(2)}
	qs := []float64{0, 25, 50, 75, 100}

	got, err := Perc(polys, qs, u, 2000, rand.NewSource(11))
	require.NoError(t, err)
	require.Len(t, got, 2)

	for pi, row := range got {
		prev := math.Inf(-1)
		for qi, v := range row {
			if v < prev {
				t.Errorf("poly %d: percentiles not monotone at %d", pi, qi)
			}
			prev = v
		}
	}
	// x over Uniform(0, 1): quartiles near 0, .25, .5, .75, 1.
	want := []float64{0, 0.25, 0.5, 0.75, 1}
	for qi, w := range want {
		if math.Abs(got[0][qi]-w) > 0.05 {
			t.Errorf("percentile %v: want about %v, got %v", qs[qi], w, got[0][qi])
		}
	}

	_, err = Perc(polys, []float64{101}, u, 10, rand.NewSource(1))
	require.Error(t, err)
}
