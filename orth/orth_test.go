// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package orth

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/utsekaj42/chaospy/describe"
	"github.com/utsekaj42/chaospy/dist"
)

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

func aeqTol(expect, got, tol float64) bool {
	return math.Abs(expect-got) < tol
}

func TestTTRHermite(t *testing.T) {
	d := dist.Must(dist.Normal(0, 1))
	b, err := TTR(3, d)
	require.NoError(t, err)
	require.Len(t, b.Polys, 4)
	require.False(t, b.Truncated)

	// Probabilists' Hermite: 1, x, x^2-1, x^3-3x.
	for _, c := range []struct {
		p    int
		exps []int
		want float64
	}{
		{0, []int{0}, 1},
		{1, []int{1}, 1},
		{2, []int{2}, 1},
		{2, []int{0}, -1},
		{3, []int{3}, 1},
		{3, []int{1}, -3},
	} {
		if got := b.Polys[c.p].Coeff(c.exps); !aeq(c.want, got) {
			t.Errorf("H%d coeff %v: want %v, got %v", c.p, c.exps, c.want, got)
		}
	}
	// Norms: ||H_k||^2 = k!.
	wantNorms := []float64{1, 1, 2, 6}
	for k, w := range wantNorms {
		if !aeq(w, b.Norms[k]) {
			t.Errorf("norm %d: want %v, got %v", k, w, b.Norms[k])
		}
	}
}

func TestTTRLegendre(t *testing.T) {
	d := dist.Must(dist.Uniform(-1, 1))
	b, err := TTR(2, d)
	require.NoError(t, err)
	// Monic Legendre P2 = x^2 - 1/3.
	p2 := b.Polys[2]
	if got := p2.Coeff([]int{2}); !aeq(1, got) {
		t.Errorf("leading coeff: want 1, got %v", got)
	}
	if got := p2.Coeff([]int{0}); !aeq(-1.0/3, got) {
		t.Errorf("constant: want -1/3, got %v", got)
	}
}

func TestOrthogonality(t *testing.T) {
	d := dist.Must(dist.J(dist.Must(dist.Normal(0, 1)), dist.Must(dist.Uniform(-1, 1))))
	b, err := TTR(3, d)
	require.NoError(t, err)
	for i := 0; i < b.Len(); i++ {
		for j := 0; j < i; j++ {
			ip, err := describe.E(b.Polys[i].Mul(b.Polys[j]), d)
			require.NoError(t, err)
			if !aeqTol(0, ip, 1e-8) {
				t.Errorf("<p%d, p%d> = %v", i, j, ip)
			}
		}
		norm, err := describe.E(b.Polys[i].Mul(b.Polys[i]), d)
		require.NoError(t, err)
		if !aeqTol(b.Norms[i], norm, 1e-8*math.Max(1, b.Norms[i])) {
			t.Errorf("norm %d: declared %v, measured %v", i, b.Norms[i], norm)
		}
	}
}

// The three orthogonal generators agree on product measures.
func TestGeneratorAgreement(t *testing.T) {
	d := dist.Must(dist.J(dist.Must(dist.Normal(0, 1)), dist.Must(dist.Normal(0, 1))))
	ttr, err := TTR(2, d)
	require.NoError(t, err)
	gs, err := GramSchmidt(2, d, false)
	require.NoError(t, err)
	chol, err := Cholesky(2, d)
	require.NoError(t, err)
	require.Equal(t, ttr.Len(), gs.Len())
	require.Equal(t, ttr.Len(), chol.Len())

	x := []float64{0.7, -1.3}
	for i := 0; i < ttr.Len(); i++ {
		want := ttr.Polys[i].Eval(x)
		if got := gs.Polys[i].Eval(x); !aeqTol(want, got, 1e-3) {
			t.Errorf("gram-schmidt p%d(%v): want %v, got %v", i, x, want, got)
		}
		if got := chol.Polys[i].Eval(x); !aeqTol(want, got, 1e-3) {
			t.Errorf("cholesky p%d(%v): want %v, got %v", i, x, want, got)
		}
	}
}

func TestGramSchmidtNormalized(t *testing.T) {
	d := dist.Must(dist.Uniform(-1, 1))
	b, err := GramSchmidt(3, d, true)
	require.NoError(t, err)
	for i := 0; i < b.Len(); i++ {
		norm, err := describe.E(b.Polys[i].Mul(b.Polys[i]), d)
		require.NoError(t, err)
		if !aeqTol(1, norm, 1e-8) {
			t.Errorf("norm %d: want 1, got %v", i, norm)
		}
	}
}

func TestGramSchmidtTruncates(t *testing.T) {
	// A two-point support spans only two independent polynomials;
	// both the plain and the normalized path must cut off there.
	d := dist.Must(dist.Binomial(1, 0.5))
	for _, normalized := range []bool{false, true} {
		b, err := GramSchmidt(4, d, normalized)
		require.NoError(t, err)
		if !b.Truncated {
			t.Errorf("normalized=%v: not truncated", normalized)
		}
		if b.Len() != 2 {
			t.Errorf("normalized=%v: want 2 polynomials, got %d", normalized, b.Len())
		}
	}
}

func TestCholeskySingular(t *testing.T) {
	// A two-point support cannot carry three independent
	// polynomials; the moment matrix of {1, x, x^2} is exactly
	// rank two and the factorization must fail.
	d := dist.Must(dist.Binomial(1, 0.5))
	_, err := Cholesky(2, d)
	var serr *SingularMatrixError
	require.ErrorAs(t, err, &serr)
}

func TestLagrangeIdentity(t *testing.T) {
	abscissas := [][]float64{{-1, 0, 1}}
	b, err := Lagrange(abscissas)
	require.NoError(t, err)
	require.Len(t, b.Polys, 3)
	for i, p := range b.Polys {
		for k, x := range abscissas[0] {
			want := 0.0
			if i == k {
				want = 1
			}
			if got := p.Eval([]float64{x}); !aeqTol(want, got, 1e-8) {
				t.Errorf("p%d(%v): want %v, got %v", i, x, want, got)
			}
		}
	}
}

func TestLagrangeSingular(t *testing.T) {
	// Duplicate nodes are never poised.
	_, err := Lagrange([][]float64{{0, 0, 1}})
	var serr *SingularMatrixError
	require.ErrorAs(t, err, &serr)
}

func TestLagrangeMultivariate(t *testing.T) {
	// Three non-collinear points in the plane, matched against
	// the monomial set {1, y, x}.
	abscissas := [][]float64{
		{0, 1, 0},
		{0, 0, 1},
	}
	b, err := Lagrange(abscissas)
	require.NoError(t, err)
	for i := range b.Polys {
		for k := 0; k < 3; k++ {
			x := []float64{abscissas[0][k], abscissas[1][k]}
			want := 0.0
			if i == k {
				want = 1
			}
			if got := b.Polys[i].Eval(x); !aeqTol(want, got, 1e-8) {
				t.Errorf("p%d at node %d: want %v, got %v", i, k, want, got)
			}
		}
	}
}
