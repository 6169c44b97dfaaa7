// Package builder generates deterministic graph-family fixtures as
// graph.Model values: complete graphs, cycles, paths, stars, wheels, grids,
// complete bipartite graphs, Platonic skeletons, hexagrams, and seeded
// random sparse/regular graphs.
//
// The package offers the following key components:
//
//   - Orchestrator:
//     – BuildGraph:  resolve options, run constructors, return *graph.Model.
//     – BuildEdges:  the same, returning the node count and raw pair list.
//   - Constructors (Constructor closures), all on node ids 0..n-1:
//     – Complete(n), Cycle(n), Path(n), Star(n), Wheel(n)
//     – Grid(rows, cols), CompleteBipartite(n1, n2)
//     – RandomSparse(n, p), RandomRegular(n, d)
//     – PlatonicSolid(name, withCenter), Hexagram(variant)
//   - Options:
//     – WithSeed:    seeded RNG for stochastic constructors.
//     – WithRand:    caller-owned RNG.
//
// Constructors share one node index space, so composing several of them in
// one BuildGraph call overlays the families (duplicate pairs collapse in
// graph.New). Typical use is a single constructor:
//
//	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(7)},
//		builder.RandomRegular(12, 3))
//
// Guarantees:
//
//   - Same inputs, options, seed and constructor order ⇒ identical graphs.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Sentinel errors (ErrTooFewVertices, ErrInvalidProbability,
//     ErrNeedRandSource, ErrConstructFailed, ErrUnknownVariant) wrapped with
//     method context.
package builder
