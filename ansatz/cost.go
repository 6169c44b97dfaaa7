// SPDX-License-Identifier: MIT
// Package: xqaoa/ansatz
//
// cost.go: Equation 22 terms, per-edge cost and the aggregate.
//
// Evaluation stages (TotalCost):
//   1. Cache cos/sin of 2α, 2β per node and cos/sin of γ per edge.
//   2. For every plan: term1, shared outer product, triangle products,
//      term2 and (triangle edges only) term3.
//   3. Store edge cost ½ + ½(term1+term2+term3) and the terms.
//   4. Sum edge costs with floats.Sum.

package ansatz

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/xqaoa/graph"
)

// Terms is the decomposition of one edge's cost from the last TotalCost.
type Terms struct {
	Term1 float64
	Term2 float64
	Term3 float64
	Cost  float64
}

// TotalCost evaluates every edge for the current angles, stores the
// per-edge costs and terms, and returns their sum. With every angle at zero
// each edge contributes exactly 0.5.
//
// Complexity: O(n + Σ_e (deg(u)+deg(v))) time, no allocations.
func (ev *Evaluator) TotalCost() float64 {
	for i := 0; i < ev.n; i++ {
		ev.sin2a[i], ev.cos2a[i] = math.Sincos(2 * ev.alphas[i])
		ev.sin2b[i], ev.cos2b[i] = math.Sincos(2 * ev.betas[i])
	}
	for i, g := range ev.gammas {
		ev.sinG[i], ev.cosG[i] = math.Sincos(g)
	}

	for i := range ev.plans {
		t := ev.edgeTerms(&ev.plans[i])
		ev.terms[i] = t
		ev.edgeCosts[i] = t.Cost
	}

	return floats.Sum(ev.edgeCosts)
}

// Cost sets angles and returns TotalCost. It is the objective-function form
// used by optimisers.
func (ev *Evaluator) Cost(angles []float64) (float64, error) {
	if err := ev.SetAngles(angles); err != nil {
		return 0, err
	}

	return ev.TotalCost(), nil
}

// EdgeCost returns the cost stored for key by the last TotalCost (0 before
// the first evaluation).
func (ev *Evaluator) EdgeCost(key graph.EdgeKey) (float64, error) {
	i, ok := ev.g.EdgeIndex(key)
	if !ok {
		return 0, fmt.Errorf("EdgeCost(%s): %w", key, ErrUnknownEdge)
	}

	return ev.edgeCosts[i], nil
}

// EdgeCosts returns an edge key → cost snapshot of the last TotalCost.
func (ev *Evaluator) EdgeCosts() map[graph.EdgeKey]float64 { return ev.edgeMap(ev.edgeCosts) }

// EdgeTerms returns the term decomposition stored for key by the last TotalCost.
func (ev *Evaluator) EdgeTerms(key graph.EdgeKey) (Terms, error) {
	i, ok := ev.g.EdgeIndex(key)
	if !ok {
		return Terms{}, fmt.Errorf("EdgeTerms(%s): %w", key, ErrUnknownEdge)
	}

	return ev.terms[i], nil
}

// edgeTerms evaluates the three terms of one edge from the trig caches.
func (ev *Evaluator) edgeTerms(p *edgePlan) Terms {
	u, v := p.u, p.v

	eProd := ev.cos2b[u] * ev.sin2b[v]
	for _, idx := range p.eSide {
		eProd *= ev.cosG[idx]
	}
	dProd := ev.sin2b[u] * ev.cos2b[v]
	for _, idx := range p.dSide {
		dProd *= ev.cosG[idx]
	}
	term1 := ev.cos2a[u] * ev.cos2a[v] * ev.sinG[p.self] * (eProd + dProd)

	outer := 1.0
	for _, idx := range p.outer {
		outer *= ev.cosG[idx]
	}
	plus, minus := 1.0, 1.0
	for _, f := range p.tri {
		gu, gv := ev.gammas[f[0]], ev.gammas[f[1]]
		plus *= math.Cos(gu + gv)
		minus *= math.Cos(gu - gv)
	}

	term2 := -0.5 * ev.sin2a[u] * ev.sin2a[v] * outer * (plus + minus)

	// term3 vanishes identically off triangles (plus == minus == 1).
	term3 := 0.0
	if p.inTriangle() {
		term3 = 0.5 * ev.cos2a[u] * ev.sin2b[u] * ev.cos2a[v] * ev.sin2b[v] * outer * (plus - minus)
	}

	return Terms{
		Term1: term1,
		Term2: term2,
		Term3: term3,
		Cost:  0.5 + 0.5*(term1+term2+term3),
	}
}
