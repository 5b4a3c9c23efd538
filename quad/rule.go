// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package quad constructs Gaussian quadrature rules for probability
// measures from their three-term recurrence coefficients.
package quad

import (
	"github.com/cockroachdb/errors"
)

// Rule is a quadrature rule. Abscissas has shape (dim, n): row i
// holds the i'th coordinate of every node, matching the positional
// correspondence of Weights. For a probability measure the weights
// sum to one.
type Rule struct {
	Abscissas [][]float64
	Weights   []float64

	// Warnings collects precision diagnostics raised during
	// construction, such as near-duplicate abscissas from an
	// ill-conditioned Jacobi matrix. A rule with warnings is
	// usable but suspect at its highest orders.
	Warnings []string
}

// Len returns the number of nodes.
func (r *Rule) Len() int { return len(r.Weights) }

// Dim returns the dimensionality of the nodes.
func (r *Rule) Dim() int { return len(r.Abscissas) }

// Combine forms the full tensor product of per-dimension univariate
// rules: the joint abscissa set is the Cartesian product of the
// per-dimension nodes and each joint weight is the product of the
// contributing per-dimension weights, preserving summation to one.
//
// A single multivariate rule passes through unchanged, so callers
// can feed an already-joint, non-separable rule into code paths that
// normally combine marginals.
func Combine(rules ...*Rule) (*Rule, error) {
	if len(rules) == 0 {
		return nil, errors.New("quad: no rules to combine")
	}
	if len(rules) == 1 && rules[0].Dim() > 1 {
		return rules[0], nil
	}
	dim := 0
	total := 1
	var warnings []string
	for _, r := range rules {
		if r.Len() == 0 {
			return nil, errors.New("quad: empty rule")
		}
		dim += r.Dim()
		total *= r.Len()
		warnings = append(warnings, r.Warnings...)
	}
	out := &Rule{
		Abscissas: make([][]float64, dim),
		Weights:   make([]float64, total),
		Warnings:  warnings,
	}
	for i := range out.Abscissas {
		out.Abscissas[i] = make([]float64, total)
	}
	// Odometer over the per-rule node indices, last rule fastest.
	idx := make([]int, len(rules))
	for j := 0; j < total; j++ {
		w := 1.0
		row := 0
		for ri, r := range rules {
			for k := 0; k < r.Dim(); k++ {
				out.Abscissas[row][j] = r.Abscissas[k][idx[ri]]
				row++
			}
			w *= r.Weights[idx[ri]]
		}
		out.Weights[j] = w
		for ri := len(rules) - 1; ri >= 0; ri-- {
			idx[ri]++
			if idx[ri] < rules[ri].Len() {
				break
			}
			idx[ri] = 0
		}
	}
	return out, nil
}
