// SPDX-License-Identifier: MIT
// Package: xqaoa/builder
//
// draft.go: the mutable accumulator constructors write into before the
// immutable graph.Model is created.

package builder

import "github.com/katalvlaran/xqaoa/graph"

// draft collects a node count and an unvalidated pair list.
type draft struct {
	n     int
	pairs []graph.Pair
}

// grow raises the node count to at least n.
func (d *draft) grow(n int) {
	if n > d.n {
		d.n = n
	}
}

// connect records the pair {u, v}; validation happens in graph.New.
func (d *draft) connect(u, v int) {
	d.pairs = append(d.pairs, graph.Pair{u, v})
}
