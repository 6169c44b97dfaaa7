// Package ansatz_test contains shared fixtures for evaluator tests.
package ansatz_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/xqaoa/ansatz"
	"github.com/katalvlaran/xqaoa/graph"
)

// tolerance for comparisons against the reference rendition.
const tol = 1e-12

// fixture is a named graph used across table tests.
type fixture struct {
	name  string
	n     int
	pairs [][2]int
}

var fixtures = []fixture{
	{"single", 2, [][2]int{{0, 1}}},
	{"path3", 3, [][2]int{{0, 1}, {1, 2}}},
	{"triangle", 3, [][2]int{{0, 1}, {1, 2}, {0, 2}}},
	{"square", 4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}}},
	{"diamond_tail", 5, [][2]int{{3, 4}, {1, 0}, {2, 0}, {3, 0}, {1, 2}, {3, 1}}},
	{"k4", 4, [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}},
	{"k5", 5, [][2]int{{0, 1}, {0, 2}, {0, 3}, {0, 4}, {1, 2}, {1, 3}, {1, 4}, {2, 3}, {2, 4}, {3, 4}}},
	{"wheel5", 5, [][2]int{{0, 1}, {0, 2}, {0, 3}, {0, 4}, {1, 2}, {2, 3}, {3, 4}, {4, 1}}},
	{"isolated", 4, [][2]int{{2, 3}}},
}

func toPairs(pp [][2]int) []graph.Pair {
	out := make([]graph.Pair, len(pp))
	for i, p := range pp {
		out[i] = graph.Pair(p)
	}

	return out
}

// mustEvaluator builds a Model and an Evaluator or stops the test.
func mustEvaluator(t testing.TB, n int, pairs [][2]int) *ansatz.Evaluator {
	t.Helper()
	g, err := graph.New(n, toPairs(pairs))
	require.NoError(t, err)
	ev, err := ansatz.New(g)
	require.NoError(t, err)

	return ev
}

// randomAngles draws k angles uniformly from [-π, π) with a fixed seed.
func randomAngles(seed int64, k int) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, k)
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * 3.141592653589793
	}

	return out
}
