// SPDX-License-Identifier: MIT
// Package: xqaoa/ansatz
//
// evaluator.go: Evaluator type, angle assignment and angle queries.
//
// Layout of the flat angle vector (length 2·n + m):
//   angles[0:n]       → alpha, node id ascending
//   angles[n:2n]      → beta,  node id ascending
//   angles[2n:2n+m]   → gamma, canonical edge order (graph.Model.EdgeKeys)

package ansatz

import (
	"fmt"

	"github.com/katalvlaran/xqaoa/graph"
)

// Evaluator computes the XQAOA expected cut of one graph for its current
// angle assignment.
//
// State is exactly the angle assignment plus the results of the last
// TotalCost; a freshly constructed Evaluator has every angle at 0.0.
type Evaluator struct {
	g     *graph.Model
	n, m  int
	keys  []graph.EdgeKey
	plans []edgePlan

	alphas []float64
	betas  []float64
	gammas []float64

	edgeCosts []float64
	terms     []Terms

	// per-evaluation trig caches, sized once
	cos2a, sin2a, cos2b, sin2b []float64
	cosG, sinG                 []float64
}

// New binds an Evaluator to g and compiles the per-edge plans.
//
// Errors:
//   - ErrNilGraph: g == nil.
//
// Complexity:
//   - Time O(Σ_e (deg(u)+deg(v))), Space O(n + Σ_e (deg(u)+deg(v))).
func New(g *graph.Model) (*Evaluator, error) {
	if g == nil {
		return nil, fmt.Errorf("New: %w", ErrNilGraph)
	}
	plans, err := compilePlans(g)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	n, m := g.NumNodes(), g.NumEdges()

	return &Evaluator{
		g:         g,
		n:         n,
		m:         m,
		keys:      g.EdgeKeys(),
		plans:     plans,
		alphas:    make([]float64, n),
		betas:     make([]float64, n),
		gammas:    make([]float64, m),
		edgeCosts: make([]float64, m),
		terms:     make([]Terms, m),
		cos2a:     make([]float64, n),
		sin2a:     make([]float64, n),
		cos2b:     make([]float64, n),
		sin2b:     make([]float64, n),
		cosG:      make([]float64, m),
		sinG:      make([]float64, m),
	}, nil
}

// Graph returns the borrowed model.
func (ev *Evaluator) Graph() *graph.Model { return ev.g }

// NumAngles returns the required angle vector length, 2·n + m.
func (ev *Evaluator) NumAngles() int { return 2*ev.n + ev.m }

// SetAngles replaces the whole angle assignment from a flat vector.
//
// The length is validated before anything is written, so a rejected call
// leaves every previous angle untouched. Values are copied; the caller may
// reuse angles afterwards.
//
// Errors:
//   - ErrAngleCount: len(angles) != 2·n + m.
//
// Complexity: O(n + m).
func (ev *Evaluator) SetAngles(angles []float64) error {
	if len(angles) != ev.NumAngles() {
		return fmt.Errorf("SetAngles: got %d, want 2*%d+%d=%d: %w",
			len(angles), ev.n, ev.m, ev.NumAngles(), ErrAngleCount)
	}
	copy(ev.alphas, angles[:ev.n])
	copy(ev.betas, angles[ev.n:2*ev.n])
	copy(ev.gammas, angles[2*ev.n:])

	return nil
}

// Angles returns a copy of the current assignment in SetAngles layout.
func (ev *Evaluator) Angles() []float64 {
	out := make([]float64, 0, ev.NumAngles())
	out = append(out, ev.alphas...)
	out = append(out, ev.betas...)

	return append(out, ev.gammas...)
}

// Alpha returns the alpha angle of node id.
func (ev *Evaluator) Alpha(id int) (float64, error) {
	if id < 0 || id >= ev.n {
		return 0, fmt.Errorf("Alpha(%d): %w", id, ErrUnknownNode)
	}

	return ev.alphas[id], nil
}

// Beta returns the beta angle of node id.
func (ev *Evaluator) Beta(id int) (float64, error) {
	if id < 0 || id >= ev.n {
		return 0, fmt.Errorf("Beta(%d): %w", id, ErrUnknownNode)
	}

	return ev.betas[id], nil
}

// Gamma returns the gamma angle of edge key.
func (ev *Evaluator) Gamma(key graph.EdgeKey) (float64, error) {
	i, ok := ev.g.EdgeIndex(key)
	if !ok {
		return 0, fmt.Errorf("Gamma(%s): %w", key, ErrUnknownEdge)
	}

	return ev.gammas[i], nil
}

// Alphas returns a node id → alpha snapshot.
func (ev *Evaluator) Alphas() map[int]float64 { return nodeMap(ev.alphas) }

// Betas returns a node id → beta snapshot.
func (ev *Evaluator) Betas() map[int]float64 { return nodeMap(ev.betas) }

// Gammas returns an edge key → gamma snapshot.
func (ev *Evaluator) Gammas() map[graph.EdgeKey]float64 { return ev.edgeMap(ev.gammas) }

func nodeMap(vals []float64) map[int]float64 {
	out := make(map[int]float64, len(vals))
	for id, x := range vals {
		out[id] = x
	}

	return out
}

func (ev *Evaluator) edgeMap(vals []float64) map[graph.EdgeKey]float64 {
	out := make(map[graph.EdgeKey]float64, len(vals))
	for i, k := range ev.keys {
		out[k] = vals[i]
	}

	return out
}
