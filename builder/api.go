// SPDX-License-Identifier: MIT
// Package: xqaoa/builder
//
// api.go: thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildEdges(bopts, cons...). Resolves cfg, runs cons in order.
//   - BuildGraph hands the result to graph.New.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/xqaoa/graph"
)

// Constructor applies a deterministic topology to the draft using the
// resolved builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Emit pairs in a stable, documented order.
type Constructor func(d *draft, cfg builderConfig) error

// BuildEdges resolves bopts and applies all constructors in order, returning
// the node count and the raw pair list (possibly with duplicates when
// constructors overlap). Any constructor error is wrapped with "BuildEdges: %w".
//
// Complexity: O(len(bopts)) + Σ cost of each constructor.
func BuildEdges(bopts []BuilderOption, cons ...Constructor) (int, []graph.Pair, error) {
	cfg := newBuilderConfig(bopts...)
	d := &draft{}

	for i, fn := range cons {
		if fn == nil {
			return 0, nil, fmt.Errorf("BuildEdges: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(d, cfg); err != nil {
			return 0, nil, fmt.Errorf("BuildEdges: %w", err)
		}
	}

	return d.n, d.pairs, nil
}

// BuildGraph is BuildEdges followed by graph.New.
//
// Errors:
//   - builder sentinels from constructors (errors.Is).
//   - graph sentinels should a constructor emit an invalid pair.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*graph.Model, error) {
	n, pairs, err := BuildEdges(bopts, cons...)
	if err != nil {
		return nil, err
	}
	g, err := graph.New(n, pairs)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}
