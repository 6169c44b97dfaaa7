// Package optimizer searches XQAOA angles that maximise the closed-form
// expected cut of an ansatz.Evaluator.
//
// Search runs Options.Restarts independent gonum/optimize minimisations of
// -TotalCost, each from seeded uniform angles in [0, 2π). Restarts share one
// immutable graph.Model and own one Evaluator each, so they run in parallel
// (bounded by Options.Workers) without locking. Restart r draws its start
// from Seed+r; results are identical for a fixed seed whatever the worker
// count.
//
// Methods:
//
//	nelder-mead: derivative free (default).
//	bfgs, lbfgs: quasi-Newton on a central finite-difference gradient.
package optimizer
