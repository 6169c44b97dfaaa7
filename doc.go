// Package xqaoa evaluates the expected cut of a depth-one XQAOA ansatz in
// closed form: angles in, one float out, no circuit simulation.
//
// What is in the box?
//
//	graph/      immutable simple graph with neighbour and triangle relations
//	ansatz/     Evaluator: per-node α, β and per-edge γ → expected cut
//	builder/    deterministic graph families (complete, cycle, wheel, regular…)
//	graphio/    edge-list / YAML graphs and angle vectors on disk
//	optimizer/  multi-start angle search on gonum/optimize
//	cmd/xqaoa   CLI over all of the above
//
// Angle layout (shared by every package):
//
//	[ α_0 … α_{n-1} | β_0 … β_{n-1} | γ_e for e in ascending (U,V) order ]
//
// Quick example, a triangle at zero angles:
//
//	g, _ := graph.New(3, []graph.Pair{{0, 1}, {1, 2}, {0, 2}})
//	ev, _ := ansatz.New(g)
//	ev.TotalCost() // 1.5, half of every edge
//
//	go install github.com/katalvlaran/xqaoa/cmd/xqaoa@latest
package xqaoa
