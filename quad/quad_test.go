// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quad

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/utsekaj42/chaospy/dist"
)

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

func aeqTol(expect, got, tol float64) bool {
	return math.Abs(expect-got) < tol
}

func TestKrawtchoukCoefficients(t *testing.T) {
	d := dist.Must(dist.Binomial(5, 0.5))
	coeffs, err := Construct(3, d, Analytical, 0)
	require.NoError(t, err)
	c := coeffs[0]
	wantAlpha := []float64{2.5, 2.5, 2.5, 2.5}
	wantBeta := []float64{1, 1.25, 2, 2.25}
	for k := range wantAlpha {
		if !aeq(wantAlpha[k], c.Alpha[k]) {
			t.Errorf("alpha[%d]: want %v, got %v", k, wantAlpha[k], c.Alpha[k])
		}
		if !aeq(wantBeta[k], c.Beta[k]) {
			t.Errorf("beta[%d]: want %v, got %v", k, wantBeta[k], c.Beta[k])
		}
	}
}

func TestDegenerateRecurrence(t *testing.T) {
	// Binomial(2, 0.5) has a three-point support; its recurrence
	// degenerates past order 2.
	d := dist.Must(dist.Binomial(2, 0.5))
	_, err := Construct(5, d, Auto, 0)
	var derr *DegenerateRecurrenceError
	require.ErrorAs(t, err, &derr)
	if derr.Algorithm != Analytical {
		t.Errorf("algorithm: want analytical, got %q", derr.Algorithm)
	}
}

func TestGaussHermite(t *testing.T) {
	d := dist.Must(dist.Normal(0, 1))
	rule, err := Gaussian{Order: 5}.Rule(d)
	require.NoError(t, err)
	require.Empty(t, rule.Warnings)

	wantNodes := []float64{-3.3243, -1.8892, -0.6167, 0.6167, 1.8892, 3.3243}
	wantWeights := []float64{0.0026, 0.0886, 0.4088, 0.4088, 0.0886, 0.0026}
	require.Len(t, rule.Weights, 6)
	for j := range wantNodes {
		if !aeqTol(wantNodes[j], rule.Abscissas[0][j], 1e-3) {
			t.Errorf("node %d: want %v, got %v", j, wantNodes[j], rule.Abscissas[0][j])
		}
		if !aeqTol(wantWeights[j], rule.Weights[j], 1e-3) {
			t.Errorf("weight %d: want %v, got %v", j, wantWeights[j], rule.Weights[j])
		}
	}
}

func TestGaussLegendre(t *testing.T) {
	d := dist.Must(dist.Uniform(-1, 1))
	rule, err := Gaussian{Order: 5}.Rule(d)
	require.NoError(t, err)

	wantNodes := []float64{-0.9325, -0.6612, -0.2386, 0.2386, 0.6612, 0.9325}
	wantWeights := []float64{0.0857, 0.1804, 0.2340, 0.2340, 0.1804, 0.0857}
	for j := range wantNodes {
		if !aeqTol(wantNodes[j], rule.Abscissas[0][j], 1e-3) {
			t.Errorf("node %d: want %v, got %v", j, wantNodes[j], rule.Abscissas[0][j])
		}
		if !aeqTol(wantWeights[j], rule.Weights[j], 1e-3) {
			t.Errorf("weight %d: want %v, got %v", j, wantWeights[j], rule.Weights[j])
		}
	}
}

func TestWeightsSumToOne(t *testing.T) {
	dists := map[string]*dist.Dist{
		"normal":   dist.Must(dist.Normal(1, 2)),
		"uniform":  dist.Must(dist.Uniform(0, 4)),
		"gamma":    dist.Must(dist.Gamma(2, 0.5)),
		"beta":     dist.Must(dist.Beta(2, 3, -1, 1)),
		"binomial": dist.Must(dist.Binomial(8, 0.3)),
	}
	for name, d := range dists {
		for _, order := range []int{0, 1, 4} {
			rule, err := Gaussian{Order: order}.Rule(d)
			require.NoError(t, err, name)
			if sum := floats.Sum(rule.Weights); !aeq(1, sum) {
				t.Errorf("%s order %d: weights sum to %v", name, order, sum)
			}
		}
	}
}

// An order-n Gaussian rule integrates moments up to degree 2n+1
// exactly.
func TestExactMoments(t *testing.T) {
	dists := []*dist.Dist{
		dist.Must(dist.Normal(0.5, 1.5)),
		dist.Must(dist.Uniform(-2, 1)),
		dist.Must(dist.Gamma(3, 2)),
	}
	const order = 3
	for _, d := range dists {
		rule, err := Gaussian{Order: order}.Rule(d)
		require.NoError(t, err)
		for k := 0; k <= 2*order+1; k++ {
			want, err := d.Moment(k)
			require.NoError(t, err)
			got := 0.0
			for j, w := range rule.Weights {
				got += w * math.Pow(rule.Abscissas[0][j], float64(k))
			}
			if !aeqTol(want, got, 1e-8*math.Max(1, math.Abs(want))) {
				t.Errorf("%v moment %d: want %v, got %v", d, k, want, got)
			}
		}
	}
}

func TestDiscretizedOnUniform(t *testing.T) {
	// The proxy transform of a uniform is affine, so the Fejér
	// rule resolves its moments exactly and every discretized
	// algorithm must agree with the closed form.
	d := dist.Must(dist.Uniform(-1, 1))
	want, err := Construct(4, d, Analytical, 0)
	require.NoError(t, err)
	for _, alg := range []Algorithm{Stieltjes, Chebyshev, Lanczos} {
		got, err := Construct(4, d, alg, 200)
		require.NoError(t, err, alg)
		for k := range want[0].Alpha {
			if !aeqTol(want[0].Alpha[k], got[0].Alpha[k], 1e-7) {
				t.Errorf("%s alpha[%d]: want %v, got %v", alg, k, want[0].Alpha[k], got[0].Alpha[k])
			}
			if !aeqTol(want[0].Beta[k], got[0].Beta[k], 1e-7) {
				t.Errorf("%s beta[%d]: want %v, got %v", alg, k, want[0].Beta[k], got[0].Beta[k])
			}
		}
	}
}

func TestStieltjesOnNormal(t *testing.T) {
	d := dist.Must(dist.Normal(0, 1))
	want, err := Construct(3, d, Analytical, 0)
	require.NoError(t, err)
	got, err := Construct(3, d, Stieltjes, 600)
	require.NoError(t, err)
	for k := range want[0].Alpha {
		if !aeqTol(want[0].Alpha[k], got[0].Alpha[k], 0.05) {
			t.Errorf("alpha[%d]: want %v, got %v", k, want[0].Alpha[k], got[0].Alpha[k])
		}
		if !aeqTol(want[0].Beta[k], got[0].Beta[k], 0.05) {
			t.Errorf("beta[%d]: want %v, got %v", k, want[0].Beta[k], got[0].Beta[k])
		}
	}
}

func TestAutoFallsBackToStieltjes(t *testing.T) {
	// Wald declares no closed-form recurrence, so Auto must take
	// the discretized path and still produce a usable rule.
	d := dist.Must(dist.Wald(1, 1, 0))
	require.False(t, d.HasRecurrence())
	rule, err := Gaussian{Order: 2, Accuracy: 200}.Rule(d)
	require.NoError(t, err)
	if sum := floats.Sum(rule.Weights); !aeqTol(1, sum, 1e-6) {
		t.Errorf("weights sum to %v", sum)
	}
}

func TestCombineTensorProduct(t *testing.T) {
	d := dist.Must(dist.J(dist.Must(dist.Uniform(0, 1)), dist.Must(dist.Uniform(0, 1))))
	rule, err := Gaussian{Order: 1}.Rule(d)
	require.NoError(t, err)

	wantX := []float64{0.2113, 0.2113, 0.7887, 0.7887}
	wantY := []float64{0.2113, 0.7887, 0.2113, 0.7887}
	require.Len(t, rule.Weights, 4)
	for j := range wantX {
		if !aeqTol(wantX[j], rule.Abscissas[0][j], 1e-4) {
			t.Errorf("x[%d]: want %v, got %v", j, wantX[j], rule.Abscissas[0][j])
		}
		if !aeqTol(wantY[j], rule.Abscissas[1][j], 1e-4) {
			t.Errorf("y[%d]: want %v, got %v", j, wantY[j], rule.Abscissas[1][j])
		}
		if !aeq(0.25, rule.Weights[j]) {
			t.Errorf("w[%d]: want 0.25, got %v", j, rule.Weights[j])
		}
	}
}

func TestCombinePassThrough(t *testing.T) {
	joint := &Rule{
		Abscissas: [][]float64{{0, 1}, {2, 3}},
		Weights:   []float64{0.5, 0.5},
	}
	got, err := Combine(joint)
	require.NoError(t, err)
	if got != joint {
		t.Error("already-joint rule was not passed through")
	}
}

func TestIdempotentConstruction(t *testing.T) {
	d := dist.Must(dist.Gamma(1.5, 2))
	a, err := Gaussian{Order: 4}.Rule(d)
	require.NoError(t, err)
	b, err := Gaussian{Order: 4}.Rule(d)
	require.NoError(t, err)
	for j := range a.Weights {
		if a.Abscissas[0][j] != b.Abscissas[0][j] || a.Weights[j] != b.Weights[j] {
			t.Fatalf("rule differs between constructions at %d", j)
		}
	}
}
