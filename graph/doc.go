// Package graph provides the immutable undirected simple graph consumed by
// the XQAOA cost evaluator.
//
// A Model G = (V,E) is built exactly once from a node count n and an edge
// list. Nodes are the integers 0..n-1; edges are unordered pairs of distinct
// nodes, canonicalised so the smaller id comes first and rendered as "u#v".
// At construction the Model derives, for every node, its neighbour set and,
// for every edge, its triangle set (nodes adjacent to both endpoints).
// New collapses repeated pairs; NewStrict rejects them.
//
// Ordering contract:
//
//	Nodes()     ascending id: 0, 1, …, n-1
//	EdgeKeys()  ascending (U, V) lexicographic: 0#1, 0#2, 1#2, …
//
// The ansatz package maps angle vectors positionally onto exactly these two
// sequences, so they are fixed at construction and never depend on map order.
//
// Errors:
//
//	ErrNegativeNodeCount  n < 0.
//	ErrNodeOutOfRange     an endpoint outside [0,n) (or a negative key id).
//	ErrSelfLoop           an edge or key with equal endpoints.
//	ErrNodeNotFound       query for a node the Model does not own.
//	ErrEdgeNotFound       query for an edge the Model does not own.
//	ErrDuplicateEdge      NewStrict only: a pair listed twice.
//	ErrBadEdgeKey         a key string that is not of the form "u#v".
//
// Concurrency:
//
//	A Model has no mutators. Every query returns fresh slices, so any number
//	of goroutines and evaluators may share one Model without locking.
//
// Complexity:
//
//	New:           O(n + m·log m + Σ_e (deg(u)+deg(v)))
//	Neighbours:    O(deg)
//	TriangleNodes: O(|F|) after an O(1) key lookup
package graph
