// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

// A Param is a distribution parameter: either a fixed numeric value or
// another distribution. Distribution-valued parameters form a directed
// acyclic dependency graph that is validated at construction time.
type Param struct {
	val  float64
	dist *Dist
}

// Fixed returns a parameter with the fixed value v.
func Fixed(v float64) Param { return Param{val: v} }

// Stochastic returns a parameter whose value is drawn from d. d must
// be univariate.
func Stochastic(d *Dist) Param {
	if d.Len() != 1 {
		panic("dist: stochastic parameter must be univariate")
	}
	return Param{dist: d}
}

// IsStochastic reports whether p is distribution-valued.
func (p Param) IsStochastic() bool { return p.dist != nil }

// resolve returns the concrete value of p. A stochastic parameter
// resolves to its realized value in the cache when one exists;
// otherwise it falls back to the parameter distribution's median. The
// median fallback makes evaluation with unconditioned stochastic
// parameters an approximation of the true marginal, which is the
// documented behavior for dependent structures that have not been
// decorrelated.
func (p Param) resolve(c *Cache) (float64, error) {
	if p.dist == nil {
		return p.val, nil
	}
	if v, ok := c.Value(p.dist); ok {
		return v, nil
	}
	return p.dist.quantile(0.5, c)
}

// checkAcyclic walks the parameter dependency graph from each root and
// rejects cycles. Distributions are immutable once constructed, so a
// cycle cannot normally be formed, but the graph is validated anyway
// so that a corrupted construction fails loudly instead of looping.
func checkAcyclic(name string, roots []*Dist) error {
	const (
		unvisited = iota
		inProgress
		done
	)
	state := make(map[*Dist]int)
	var visit func(d *Dist) bool
	visit = func(d *Dist) bool {
		switch state[d] {
		case inProgress:
			return false
		case done:
			return true
		}
		state[d] = inProgress
		for _, p := range d.paramDists() {
			if !visit(p) {
				return false
			}
		}
		for _, c := range d.components {
			if !visit(c) {
				return false
			}
		}
		state[d] = done
		return true
	}
	for _, r := range roots {
		if !visit(r) {
			return &InvalidParameterError{
				Dist:   name,
				Param:  "dist",
				Reason: "cyclic parameter dependency",
			}
		}
	}
	return nil
}

// paramDists returns the distribution-valued parameters of d.
func (d *Dist) paramDists() []*Dist {
	var out []*Dist
	for _, p := range d.params {
		if p.dist != nil {
			out = append(out, p.dist)
		}
	}
	return out
}

// topoOrder orders the components of a joint distribution so that any
// component reachable through another component's parameter graph is
// visited first. Sampling in this order lets realized draws of
// parameter distributions be resolved through the cache (the
// Rosenblatt ordering for the dependence structure this package
// supports).
func topoOrder(comps []*Dist) []int {
	index := make(map[*Dist]int, len(comps))
	for i, c := range comps {
		index[c] = i
	}
	visited := make(map[*Dist]bool)
	var order []int
	var visit func(d *Dist)
	visit = func(d *Dist) {
		if visited[d] {
			return
		}
		visited[d] = true
		for _, p := range d.paramDists() {
			visit(p)
		}
		if i, ok := index[d]; ok {
			order = append(order, i)
		}
	}
	for _, c := range comps {
		visit(c)
	}
	return order
}
