// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poly

import (
	"math"
	"reflect"
	"testing"
)

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

func TestArith(t *testing.T) {
	x := Var(2, 0)
	y := Var(2, 1)

	// (x + 2y)^2 = x^2 + 4xy + 4y^2
	p := x.Add(y.Scale(2))
	p = p.Mul(p)
	for _, c := range []struct {
		exps []int
		want float64
	}{
		{[]int{2, 0}, 1},
		{[]int{1, 1}, 4},
		{[]int{0, 2}, 4},
		{[]int{0, 0}, 0},
	} {
		if got := p.Coeff(c.exps); !aeq(c.want, got) {
			t.Errorf("coeff %v: want %v, got %v", c.exps, c.want, got)
		}
	}
	if p.Degree() != 2 {
		t.Errorf("degree: want 2, got %d", p.Degree())
	}
	if got := p.Eval([]float64{3, -1}); !aeq(1, got) {
		t.Errorf("eval (3,-1): want 1, got %v", got)
	}
}

func TestSubCancel(t *testing.T) {
	x := Var(1, 0)
	p := x.Mul(x).Add(x).Sub(x.Mul(x))
	if p.Degree() != 1 {
		t.Errorf("cancelled term kept: degree %d", p.Degree())
	}
	if !x.Sub(x).IsZero() {
		t.Error("x - x is not zero")
	}
}

func TestIndicesGradedOrder(t *testing.T) {
	got := Indices(2, 2)
	want := [][]int{
		{0, 0},
		{0, 1}, {1, 0},
		{0, 2}, {1, 1}, {2, 0},
	}
	if !reflect.DeepEqual(want, got) {
		t.Errorf("Indices(2, 2): want %v, got %v", want, got)
	}
	if n := len(Indices(3, 4)); n != 35 {
		t.Errorf("len(Indices(3, 4)): want 35, got %d", n)
	}
}

func TestEvalHorner(t *testing.T) {
	// p = 1 - 2x + 3x^3 at x = 2.
	p := Const(1, 1).Add(Var(1, 0).Scale(-2)).Add(Monomial([]int{3}).Scale(3))
	if got := p.Eval([]float64{2}); !aeq(21, got) {
		t.Errorf("eval: want 21, got %v", got)
	}
}
