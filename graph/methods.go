// SPDX-License-Identifier: MIT
// Package: xqaoa/graph
//
// methods.go: read-only queries over a constructed Model.
//
// Determinism:
//   - Nodes() ascending; EdgeKeys() canonical (U,V) ascending.
//   - Neighbours() and TriangleNodes() ascending.
//
// Every slice returned here is a fresh copy; mutating it never reaches the Model.

package graph

import "fmt"

// NumNodes returns n, the number of nodes.
func (m *Model) NumNodes() int { return m.n }

// NumEdges returns the number of distinct edges after deduplication.
func (m *Model) NumEdges() int { return len(m.keys) }

// Nodes returns the node ids 0..n-1 in ascending order.
// Complexity: O(n).
func (m *Model) Nodes() []int {
	out := make([]int, m.n)
	for i := range out {
		out[i] = i
	}

	return out
}

// EdgeKeys returns all edge keys in canonical order. The i-th key receives
// the i-th gamma angle.
// Complexity: O(m).
func (m *Model) EdgeKeys() []EdgeKey {
	out := make([]EdgeKey, len(m.keys))
	copy(out, m.keys)

	return out
}

// EdgeIndex returns the position of key in canonical edge order.
// Complexity: O(1).
func (m *Model) EdgeIndex(key EdgeKey) (int, bool) {
	i, ok := m.index[key]

	return i, ok
}

// HasNode reports whether id is one of 0..n-1.
func (m *Model) HasNode(id int) bool { return id >= 0 && id < m.n }

// HasEdge reports whether {u, v} is an edge, in either order.
// Self-loops and out-of-range ids simply report false.
func (m *Model) HasEdge(u, v int) bool {
	if !m.HasNode(u) || !m.HasNode(v) || u == v {
		return false
	}

	return m.adj.HasEdgeBetween(int64(u), int64(v))
}

// Neighbours returns the ascending set of nodes directly connected to id.
//
// Errors:
//   - ErrNodeNotFound: id outside [0,n).
//
// Complexity: O(deg(id)).
func (m *Model) Neighbours(id int) ([]int, error) {
	if !m.HasNode(id) {
		return nil, fmt.Errorf("Neighbours(%d): %w", id, ErrNodeNotFound)
	}

	return cloneInts(m.neighbours[id]), nil
}

// Degree returns the number of neighbours of id.
func (m *Model) Degree(id int) (int, error) {
	if !m.HasNode(id) {
		return 0, fmt.Errorf("Degree(%d): %w", id, ErrNodeNotFound)
	}

	return len(m.neighbours[id]), nil
}

// TriangleNodes returns the ascending set of nodes w that close a triangle
// with key, i.e. Neighbours(key.U) ∩ Neighbours(key.V). It is symmetric in
// the endpoints and fixed at construction.
//
// Errors:
//   - ErrEdgeNotFound: key is not an edge of the Model.
//
// Complexity: O(|F|).
func (m *Model) TriangleNodes(key EdgeKey) ([]int, error) {
	i, ok := m.index[key]
	if !ok {
		return nil, fmt.Errorf("TriangleNodes(%s): %w", key, ErrEdgeNotFound)
	}

	return cloneInts(m.triangles[i]), nil
}

// InTriangle reports whether key belongs to at least one triangle.
//
// Errors:
//   - ErrEdgeNotFound: key is not an edge of the Model.
func (m *Model) InTriangle(key EdgeKey) (bool, error) {
	i, ok := m.index[key]
	if !ok {
		return false, fmt.Errorf("InTriangle(%s): %w", key, ErrEdgeNotFound)
	}

	return len(m.triangles[i]) != 0, nil
}

// Triangles returns the number of distinct 3-cliques. Each triangle is seen
// once from each of its three edges.
// Complexity: O(m).
func (m *Model) Triangles() int {
	total := 0
	for _, f := range m.triangles {
		total += len(f)
	}

	return total / 3
}

func cloneInts(s []int) []int {
	if len(s) == 0 {
		return []int{}
	}
	out := make([]int, len(s))
	copy(out, s)

	return out
}
