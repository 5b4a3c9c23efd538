// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package poly implements sparse multivariate polynomials with float64
// coefficients. It provides just the algebra the rest of this module
// needs: construction, arithmetic, evaluation at points, and coefficient
// extraction. Variables are indexed 0 through Dim()-1 and printed as q0,
// q1, and so on.
package poly // import "github.com/utsekaj42/chaospy/poly"

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// A Poly is an immutable polynomial in a fixed number of variables.
// The zero value is a zero polynomial in zero variables; use Zero,
// Const, Var, or Monomial to construct polynomials with variables.
//
// Terms are stored sparsely, keyed by the packed exponent vector. All
// operations return new polynomials and never mutate their operands.
type Poly struct {
	dim   int
	terms map[string]float64
}

// Exponents are packed one byte per variable, which caps individual
// exponents at 255. Polynomial orders anywhere near that are far
// beyond what any of the numerical algorithms here can sustain.
const maxExponent = 255

func pack(exps []int) string {
	b := make([]byte, len(exps))
	for i, e := range exps {
		if e < 0 || e > maxExponent {
			panic(fmt.Sprintf("poly: exponent %d out of range", e))
		}
		b[i] = byte(e)
	}
	return string(b)
}

func unpack(key string) []int {
	exps := make([]int, len(key))
	for i := 0; i < len(key); i++ {
		exps[i] = int(key[i])
	}
	return exps
}

// Zero returns the zero polynomial in dim variables.
func Zero(dim int) Poly {
	return Poly{dim: dim, terms: map[string]float64{}}
}

// Const returns the constant polynomial c in dim variables.
func Const(dim int, c float64) Poly {
	p := Zero(dim)
	if c != 0 {
		p.terms[pack(make([]int, dim))] = c
	}
	return p
}

// Var returns the polynomial consisting of the single variable qi.
func Var(dim, i int) Poly {
	if i < 0 || i >= dim {
		panic("poly: variable index out of range")
	}
	exps := make([]int, dim)
	exps[i] = 1
	return Monomial(exps)
}

// Monomial returns the monomial with the given exponent vector and
// coefficient 1. The dimension is len(exps).
func Monomial(exps []int) Poly {
	p := Zero(len(exps))
	p.terms[pack(exps)] = 1
	return p
}

// Dim returns the number of variables of p.
func (p Poly) Dim() int { return p.dim }

// IsZero reports whether p has no terms.
func (p Poly) IsZero() bool { return len(p.terms) == 0 }

// Degree returns the total degree of p, or -1 for the zero polynomial.
func (p Poly) Degree() int {
	deg := -1
	for key := range p.terms {
		d := 0
		for i := 0; i < len(key); i++ {
			d += int(key[i])
		}
		if d > deg {
			deg = d
		}
	}
	return deg
}

func (p Poly) clone() Poly {
	q := Poly{dim: p.dim, terms: make(map[string]float64, len(p.terms))}
	for k, v := range p.terms {
		q.terms[k] = v
	}
	return q
}

func checkDim(p, q Poly) {
	if p.dim != q.dim {
		panic(fmt.Sprintf("poly: dimension mismatch %d != %d", p.dim, q.dim))
	}
}

// Add returns p + q.
func (p Poly) Add(q Poly) Poly {
	checkDim(p, q)
	out := p.clone()
	for k, v := range q.terms {
		out.terms[k] += v
		if out.terms[k] == 0 {
			delete(out.terms, k)
		}
	}
	return out
}

// Sub returns p - q.
func (p Poly) Sub(q Poly) Poly {
	return p.Add(q.Scale(-1))
}

// Scale returns c * p.
func (p Poly) Scale(c float64) Poly {
	out := Zero(p.dim)
	if c == 0 {
		return out
	}
	for k, v := range p.terms {
		out.terms[k] = c * v
	}
	return out
}

// Mul returns the product p * q.
func (p Poly) Mul(q Poly) Poly {
	checkDim(p, q)
	out := Zero(p.dim)
	for kp, vp := range p.terms {
		for kq, vq := range q.terms {
			exps := make([]int, p.dim)
			for i := 0; i < p.dim; i++ {
				exps[i] = int(kp[i]) + int(kq[i])
			}
			k := pack(exps)
			out.terms[k] += vp * vq
			if out.terms[k] == 0 {
				delete(out.terms, k)
			}
		}
	}
	return out
}

// Eval evaluates p at the point x. len(x) must equal Dim.
func (p Poly) Eval(x []float64) float64 {
	if len(x) != p.dim {
		panic(fmt.Sprintf("poly: point dimension %d != %d", len(x), p.dim))
	}
	sum := 0.0
	for k, v := range p.terms {
		term := v
		for i := 0; i < p.dim; i++ {
			if e := int(k[i]); e > 0 {
				term *= math.Pow(x[i], float64(e))
			}
		}
		sum += term
	}
	return sum
}

// Coeff returns the coefficient of the monomial with the given
// exponent vector, or 0 if the term is absent.
func (p Poly) Coeff(exps []int) float64 {
	if len(exps) != p.dim {
		panic(fmt.Sprintf("poly: exponent dimension %d != %d", len(exps), p.dim))
	}
	return p.terms[pack(exps)]
}

// Terms calls f for each term of p in graded lexicographic order. The
// exps slice is reused between calls and must not be retained.
func (p Poly) Terms(f func(exps []int, coeff float64)) {
	keys := sortedKeys(p.terms)
	for _, k := range keys {
		f(unpack(k), p.terms[k])
	}
}

func totalDegree(key string) int {
	d := 0
	for i := 0; i < len(key); i++ {
		d += int(key[i])
	}
	return d
}

func sortedKeys(terms map[string]float64) []string {
	keys := make([]string, 0, len(terms))
	for k := range terms {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		di, dj := totalDegree(keys[i]), totalDegree(keys[j])
		if di != dj {
			return di < dj
		}
		return keys[i] < keys[j]
	})
	return keys
}

// String formats p with terms in graded lexicographic order, e.g.
// "-1+q0^2".
func (p Poly) String() string {
	if p.IsZero() {
		return "0"
	}
	var sb strings.Builder
	first := true
	p.Terms(func(exps []int, coeff float64) {
		mono := ""
		for i, e := range exps {
			if e == 0 {
				continue
			}
			if mono != "" {
				mono += "*"
			}
			if e == 1 {
				mono += fmt.Sprintf("q%d", i)
			} else {
				mono += fmt.Sprintf("q%d^%d", i, e)
			}
		}
		switch {
		case first && mono == "":
			fmt.Fprintf(&sb, "%g", coeff)
		case first:
			if coeff == 1 {
				sb.WriteString(mono)
			} else if coeff == -1 {
				sb.WriteString("-" + mono)
			} else {
				fmt.Fprintf(&sb, "%g*%s", coeff, mono)
			}
		default:
			sign := "+"
			if coeff < 0 {
				sign = "-"
				coeff = -coeff
			}
			if mono == "" {
				fmt.Fprintf(&sb, "%s%g", sign, coeff)
			} else if coeff == 1 {
				fmt.Fprintf(&sb, "%s%s", sign, mono)
			} else {
				fmt.Fprintf(&sb, "%s%g*%s", sign, coeff, mono)
			}
		}
		first = false
	})
	return sb.String()
}

// Indices returns all exponent vectors of dim variables with total
// degree at most order, in graded lexicographic order. This is the
// multi-degree indexing convention used for polynomial bases
// throughout this module.
func Indices(dim, order int) [][]int {
	if dim <= 0 {
		panic("poly: dim must be positive")
	}
	var out [][]int
	for deg := 0; deg <= order; deg++ {
		out = append(out, indicesOfDegree(dim, deg)...)
	}
	return out
}

func indicesOfDegree(dim, deg int) [][]int {
	if dim == 1 {
		return [][]int{{deg}}
	}
	var out [][]int
	for lead := 0; lead <= deg; lead++ {
		for _, rest := range indicesOfDegree(dim-1, deg-lead) {
			out = append(out, append([]int{lead}, rest...))
		}
	}
	return out
}
