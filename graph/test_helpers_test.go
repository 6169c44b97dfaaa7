// Package graph_test contains shared fixtures for graph tests.
package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/xqaoa/graph"
)

// Common fixtures (edge lists deliberately unsorted and non-canonical).
var (
	edgesSingle   = []graph.Pair{{0, 1}}
	edgesTriangle = []graph.Pair{{0, 1}, {1, 2}, {0, 2}}
	edgesPath3    = []graph.Pair{{1, 0}, {2, 1}}
	// K4 minus edge 2#3, plus a pendant node 4 hanging off 3.
	edgesDiamondTail = []graph.Pair{{3, 4}, {1, 0}, {2, 0}, {3, 0}, {1, 2}, {3, 1}}
)

// mustModel builds a Model or stops the test.
func mustModel(t testing.TB, n int, edges []graph.Pair) *graph.Model {
	t.Helper()
	m, err := graph.New(n, edges)
	require.NoError(t, err)

	return m
}

// contains reports whether s holds x.
func contains(s []int, x int) bool {
	for _, y := range s {
		if y == x {
			return true
		}
	}

	return false
}
