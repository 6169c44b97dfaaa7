// SPDX-License-Identifier: MIT
// Package: xqaoa/graph
//
// model.go: Model type and its one-shot constructor.
//
// Construction stages:
//   1. Validate n and every input pair (range, self-loop).
//   2. Canonicalise pairs, sort by (U,V), drop exact duplicates.
//   3. Load nodes and edges into a gonum simple.UndirectedGraph (adjacency index).
//   4. Snapshot sorted neighbour slices per node from the index.
//   5. Intersect endpoint neighbour slices per edge → triangle sets.
//
// Nothing is mutated after New returns.

package graph

import (
	"fmt"
	"sort"

	gonum "gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

// Model is an immutable undirected simple graph with precomputed neighbour
// and triangle relations.
//
// Storage:
//   - keys[i] is the i-th edge in canonical order; index is its inverse.
//   - neighbours[u] is the ascending neighbour list of node u.
//   - triangles[i] is the ascending triangle set of keys[i].
//   - adj is the gonum adjacency index the lists were derived from.
type Model struct {
	n          int
	keys       []EdgeKey
	index      map[EdgeKey]int
	neighbours [][]int
	triangles  [][]int
	adj        *simple.UndirectedGraph
}

// New builds a Model over nodes 0..n-1 from an unordered, possibly duplicated
// edge list.
//
// Behavior highlights:
//   - Pairs are canonicalised (min, max); {1,0} and {0,1} are the same edge.
//   - Exact duplicates collapse into one edge.
//   - A nil or empty edge list yields an edgeless graph on n nodes.
//
// Errors:
//   - ErrNegativeNodeCount: n < 0.
//   - ErrNodeOutOfRange: an endpoint outside [0,n).
//   - ErrSelfLoop: a pair with equal endpoints.
//
// Complexity:
//   - Time O(n + m·log m + Σ_e (deg(u)+deg(v))), Space O(n + m + Σ_e |F_e|).
func New(n int, edges []Pair) (*Model, error) {
	if n < 0 {
		return nil, fmt.Errorf("New: n=%d: %w", n, ErrNegativeNodeCount)
	}

	keys := make([]EdgeKey, 0, len(edges))
	for i, p := range edges {
		if p[0] < 0 || p[0] >= n || p[1] < 0 || p[1] >= n {
			return nil, fmt.Errorf("New: edge %d {%d,%d} with n=%d: %w", i, p[0], p[1], n, ErrNodeOutOfRange)
		}
		k, err := NewEdgeKey(p[0], p[1])
		if err != nil {
			return nil, fmt.Errorf("New: edge %d: %w", i, err)
		}
		keys = append(keys, k)
	}
	keys = sortUnique(keys)

	m := &Model{
		n:          n,
		keys:       keys,
		index:      make(map[EdgeKey]int, len(keys)),
		neighbours: make([][]int, n),
		triangles:  make([][]int, len(keys)),
		adj:        simple.NewUndirectedGraph(),
	}

	for id := 0; id < n; id++ {
		m.adj.AddNode(simple.Node(id))
	}
	for i, k := range keys {
		m.index[k] = i
		m.adj.SetEdge(m.adj.NewEdge(simple.Node(k.U), simple.Node(k.V)))
	}

	for id := 0; id < n; id++ {
		m.neighbours[id] = nodeIDs(m.adj.From(int64(id)))
	}
	for i, k := range keys {
		m.triangles[i] = intersectSorted(m.neighbours[k.U], m.neighbours[k.V])
	}

	return m, nil
}

// NewStrict is New for inputs that must already be a simple edge list: a
// pair repeated in either order fails with ErrDuplicateEdge instead of
// collapsing.
func NewStrict(n int, edges []Pair) (*Model, error) {
	seen := make(map[EdgeKey]int, len(edges))
	for i, p := range edges {
		k, err := NewEdgeKey(p[0], p[1])
		if err != nil {
			// Let New produce the canonical error for this pair.
			break
		}
		if j, dup := seen[k]; dup {
			return nil, fmt.Errorf("NewStrict: edges %d and %d are both %s: %w", j, i, k, ErrDuplicateEdge)
		}
		seen[k] = i
	}

	return New(n, edges)
}

// sortUnique sorts keys canonically and removes exact duplicates in place.
func sortUnique(keys []EdgeKey) []EdgeKey {
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })
	out := keys[:0]
	for _, k := range keys {
		if len(out) > 0 && k == out[len(out)-1] {
			continue
		}
		out = append(out, k)
	}

	return out
}

// nodeIDs drains a gonum node iterator into an ascending id slice.
func nodeIDs(it gonum.Nodes) []int {
	ids := make([]int, 0, it.Len())
	for it.Next() {
		ids = append(ids, int(it.Node().ID()))
	}
	sort.Ints(ids)

	return ids
}

// intersectSorted merges two ascending slices and keeps common elements.
func intersectSorted(a, b []int) []int {
	var out []int
	for i, j := 0, 0; i < len(a) && j < len(b); {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}

	return out
}
