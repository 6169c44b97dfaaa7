// SPDX-License-Identifier: MIT
// Package: xqaoa/ansatz
//
// plan.go: per-edge bookkeeping compiled once from the graph.
//
// For edge (u,v) with triangle set F:
//   • eSide: γ indices of (w,v), w ∈ N(v)\{u}         (term1, first product)
//   • dSide: γ indices of (u,w), w ∈ N(u)\{v}         (term1, second product)
//   • outer: γ indices of E, the non-triangle side edges of both endpoints,
//            deduplicated by key                        (term2, term3)
//   • tri:   (γ(u,f), γ(v,f)) for every f ∈ F          (term2, term3)

package ansatz

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/xqaoa/graph"
)

// edgePlan lists the gamma indices each product of one edge's terms reads.
type edgePlan struct {
	u, v  int
	self  int
	eSide []int
	dSide []int
	outer []int
	tri   [][2]int
}

// compilePlans walks the graph once and returns one plan per edge in
// canonical edge order.
func compilePlans(g *graph.Model) ([]edgePlan, error) {
	keys := g.EdgeKeys()
	plans := make([]edgePlan, len(keys))

	for i, k := range keys {
		u, v := k.U, k.V
		triNodes, err := g.TriangleNodes(k)
		if err != nil {
			return nil, err
		}
		inF := make(map[int]struct{}, len(triNodes))
		for _, f := range triNodes {
			inF[f] = struct{}{}
		}

		p := edgePlan{u: u, v: v, self: i}
		seen := make(map[int]struct{})

		// e = N(v) \ {u}; edges (w,v).
		nv, err := g.Neighbours(v)
		if err != nil {
			return nil, err
		}
		for _, w := range nv {
			if w == u {
				continue
			}
			idx, err := gammaIndex(g, w, v)
			if err != nil {
				return nil, err
			}
			p.eSide = append(p.eSide, idx)
			if _, tri := inF[w]; !tri {
				seen[idx] = struct{}{}
			}
		}

		// d = N(u) \ {v}; edges (u,w).
		nu, err := g.Neighbours(u)
		if err != nil {
			return nil, err
		}
		for _, w := range nu {
			if w == v {
				continue
			}
			idx, err := gammaIndex(g, u, w)
			if err != nil {
				return nil, err
			}
			p.dSide = append(p.dSide, idx)
			if _, tri := inF[w]; !tri {
				seen[idx] = struct{}{}
			}
		}

		p.outer = make([]int, 0, len(seen))
		for idx := range seen {
			p.outer = append(p.outer, idx)
		}
		sort.Ints(p.outer)

		for _, f := range triNodes {
			uf, err := gammaIndex(g, u, f)
			if err != nil {
				return nil, err
			}
			vf, err := gammaIndex(g, v, f)
			if err != nil {
				return nil, err
			}
			p.tri = append(p.tri, [2]int{uf, vf})
		}

		plans[i] = p
	}

	return plans, nil
}

// gammaIndex resolves the gamma slot of edge {a, b}.
func gammaIndex(g *graph.Model, a, b int) (int, error) {
	k, err := graph.NewEdgeKey(a, b)
	if err != nil {
		return 0, err
	}
	idx, ok := g.EdgeIndex(k)
	if !ok {
		return 0, fmt.Errorf("edge %s: %w", k, ErrUnknownEdge)
	}

	return idx, nil
}

// inTriangle reports whether the edge has a non-empty triangle set.
func (p *edgePlan) inTriangle() bool { return len(p.tri) != 0 }
