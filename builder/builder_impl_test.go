// File: builder_impl_test.go
// Package builder_test contains functional tests for all Constructor
// implementations in the builder package, verifying topology, counts,
// triangle structure and determinism.
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/xqaoa/builder"
	"github.com/katalvlaran/xqaoa/graph"
)

// TestBuilders_Functional runs table-driven functional tests for each builder.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		ctor          builder.Constructor
		wantV         int // expected number of nodes
		wantE         int // expected number of edges
		wantTriangles int // expected number of 3-cliques
		sampleCheck   func(t *testing.T, g *graph.Model)
	}{
		{
			name:  "Complete(5)",
			ctor:  builder.Complete(5),
			wantV: 5, wantE: 10, wantTriangles: 10,
			sampleCheck: func(t *testing.T, g *graph.Model) {
				tri, err := g.TriangleNodes(graph.MustEdgeKey(0, 4))
				require.NoError(t, err)
				assert.Equal(t, []int{1, 2, 3}, tri)
			},
		},
		{
			name:  "Cycle(5)",
			ctor:  builder.Cycle(5),
			wantV: 5, wantE: 5, wantTriangles: 0,
			sampleCheck: func(t *testing.T, g *graph.Model) {
				for i := 0; i < 5; i++ {
					assert.True(t, g.HasEdge(i, (i+1)%5), "edge %d-%d", i, (i+1)%5)
				}
			},
		},
		{
			name:  "Cycle(3)",
			ctor:  builder.Cycle(3),
			wantV: 3, wantE: 3, wantTriangles: 1,
		},
		{
			name:  "Path(4)",
			ctor:  builder.Path(4),
			wantV: 4, wantE: 3, wantTriangles: 0,
			sampleCheck: func(t *testing.T, g *graph.Model) {
				assert.Equal(t, []graph.EdgeKey{
					graph.MustEdgeKey(0, 1), graph.MustEdgeKey(1, 2), graph.MustEdgeKey(2, 3),
				}, g.EdgeKeys())
			},
		},
		{
			name:  "Star(5)",
			ctor:  builder.Star(5),
			wantV: 5, wantE: 4, wantTriangles: 0,
			sampleCheck: func(t *testing.T, g *graph.Model) {
				deg, err := g.Degree(builder.StarHub)
				require.NoError(t, err)
				assert.Equal(t, 4, deg)
			},
		},
		{
			name:  "Wheel(6)",
			ctor:  builder.Wheel(6),
			wantV: 6, wantE: 10, wantTriangles: 5,
			sampleCheck: func(t *testing.T, g *graph.Model) {
				for _, k := range g.EdgeKeys() {
					in, err := g.InTriangle(k)
					require.NoError(t, err)
					assert.True(t, in, "wheel edge %s", k)
				}
				deg, err := g.Degree(5)
				require.NoError(t, err)
				assert.Equal(t, 5, deg, "hub is the last node")
			},
		},
		{
			name:  "Grid(2,3)",
			ctor:  builder.Grid(2, 3),
			wantV: 6, wantE: 7, wantTriangles: 0,
			sampleCheck: func(t *testing.T, g *graph.Model) {
				assert.True(t, g.HasEdge(0, 1))
				assert.True(t, g.HasEdge(0, 3))
				assert.False(t, g.HasEdge(2, 3), "no wrap between rows")
			},
		},
		{
			name:  "CompleteBipartite(2,3)",
			ctor:  builder.CompleteBipartite(2, 3),
			wantV: 5, wantE: 6, wantTriangles: 0,
			sampleCheck: func(t *testing.T, g *graph.Model) {
				assert.False(t, g.HasEdge(0, 1), "no edge inside the left side")
				assert.True(t, g.HasEdge(1, 4))
			},
		},
		{
			name:  "RandomSparse(6,1)",
			ctor:  builder.RandomSparse(6, 1),
			wantV: 6, wantE: 15, wantTriangles: 20,
		},
		{
			name:  "RandomSparse(6,0)",
			ctor:  builder.RandomSparse(6, 0),
			wantV: 6, wantE: 0, wantTriangles: 0,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.NumNodes(), "node count")
			assert.Equal(t, tc.wantE, g.NumEdges(), "edge count")
			assert.Equal(t, tc.wantTriangles, g.Triangles(), "triangle count")
			if tc.sampleCheck != nil {
				tc.sampleCheck(t, g)
			}
		})
	}
}

// TestBuilders_Validation checks every sentinel path.
func TestBuilders_Validation(t *testing.T) {
	cases := []struct {
		name string
		ctor builder.Constructor
		opts []builder.BuilderOption
		want error
	}{
		{"Complete(0)", builder.Complete(0), nil, builder.ErrTooFewVertices},
		{"Cycle(2)", builder.Cycle(2), nil, builder.ErrTooFewVertices},
		{"Path(1)", builder.Path(1), nil, builder.ErrTooFewVertices},
		{"Star(1)", builder.Star(1), nil, builder.ErrTooFewVertices},
		{"Wheel(3)", builder.Wheel(3), nil, builder.ErrTooFewVertices},
		{"Grid(0,3)", builder.Grid(0, 3), nil, builder.ErrTooFewVertices},
		{"CompleteBipartite(2,0)", builder.CompleteBipartite(2, 0), nil, builder.ErrTooFewVertices},
		{"RandomSparse(p<0)", builder.RandomSparse(4, -0.1), nil, builder.ErrInvalidProbability},
		{"RandomSparse(p>1)", builder.RandomSparse(4, 1.5), nil, builder.ErrInvalidProbability},
		{"RandomSparse(no rng)", builder.RandomSparse(4, 0.5), nil, builder.ErrNeedRandSource},
		{"RandomRegular(odd)", builder.RandomRegular(5, 3), []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrTooFewVertices},
		{"RandomRegular(d>=n)", builder.RandomRegular(4, 4), []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrTooFewVertices},
		{"RandomRegular(no rng)", builder.RandomRegular(6, 3), nil, builder.ErrNeedRandSource},
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		_, err := builder.BuildGraph(tc.opts, tc.ctor)
		assert.ErrorIs(t, err, tc.want, tc.name)
	}
}

// TestRandomRegular_DegreesAndSeed checks regularity and seed determinism.
func TestRandomRegular_DegreesAndSeed(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithSeed(11)}
	g, err := builder.BuildGraph(opts, builder.RandomRegular(10, 3))
	require.NoError(t, err)
	assert.Equal(t, 15, g.NumEdges())
	for _, id := range g.Nodes() {
		deg, err := g.Degree(id)
		require.NoError(t, err)
		assert.Equal(t, 3, deg, "node %d", id)
	}

	again, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(11)}, builder.RandomRegular(10, 3))
	require.NoError(t, err)
	assert.Equal(t, g.EdgeKeys(), again.EdgeKeys(), "same seed, same graph")
}

// TestRandomSparse_Seeded ensures G(n,p) is reproducible for a fixed seed.
func TestRandomSparse_Seeded(t *testing.T) {
	a, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(5)}, builder.RandomSparse(12, 0.3))
	require.NoError(t, err)
	b, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(5)}, builder.RandomSparse(12, 0.3))
	require.NoError(t, err)
	assert.Equal(t, a.EdgeKeys(), b.EdgeKeys())
}

// TestBuildEdges_Overlay composes two constructors on one index space; the
// shared path edges collapse in graph.New.
func TestBuildEdges_Overlay(t *testing.T) {
	n, pairs, err := builder.BuildEdges(nil, builder.Cycle(4), builder.Path(4))
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Len(t, pairs, 7)

	g, err := builder.BuildGraph(nil, builder.Cycle(4), builder.Path(4))
	require.NoError(t, err)
	assert.Equal(t, 4, g.NumEdges())
}
