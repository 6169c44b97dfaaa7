// SPDX-License-Identifier: MIT
// Package: xqaoa/graph
//
// view.go: read-only interop with gonum graph algorithms.

package graph

import gonum "gonum.org/v1/gonum/graph"

// Undirected exposes the Model's adjacency index as a gonum graph.Undirected.
// The returned value only offers gonum's read methods, so algorithms such as
// topo.ConnectedComponents can run over it without copying and without any
// path back to mutation.
func (m *Model) Undirected() gonum.Undirected {
	return readOnly{m.adj}
}

// readOnly hides the mutators of the embedded index behind the read-only
// gonum interface.
type readOnly struct {
	gonum.Undirected
}
