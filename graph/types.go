// SPDX-License-Identifier: MIT
// Package: xqaoa/graph
//
// types.go: edge identity: input pairs and canonical edge keys.
//
// Canonical form:
//   • EdgeKey{U, V} always holds U < V.
//   • String() renders "U#V"; ParseEdgeKey accepts either order.
//   • Keys compare with == and order with Less (U first, then V).

package graph

import (
	"fmt"
	"strconv"
	"strings"
)

// keySeparator joins the two endpoint ids in the string form of an EdgeKey.
const keySeparator = "#"

// Pair is one unordered input edge {u, v}. Order is irrelevant; New
// canonicalises every pair before use.
type Pair [2]int

// EdgeKey is the canonical identity of an undirected edge: U < V.
//
// The zero value {0, 0} is not a valid key; obtain keys from NewEdgeKey,
// ParseEdgeKey or Model.EdgeKeys.
type EdgeKey struct {
	U int
	V int
}

// NewEdgeKey returns the canonical key of the unordered pair {u, v}.
//
// Behavior highlights:
//   - Order independent: NewEdgeKey(u,v) == NewEdgeKey(v,u).
//   - Idempotent: NewEdgeKey(k.U, k.V) == k for every valid key k.
//
// Errors:
//   - ErrSelfLoop: u == v.
//   - ErrNodeOutOfRange: u < 0 or v < 0.
//
// Complexity: O(1).
func NewEdgeKey(u, v int) (EdgeKey, error) {
	if u == v {
		return EdgeKey{}, fmt.Errorf("NewEdgeKey(%d,%d): %w", u, v, ErrSelfLoop)
	}
	if u < 0 || v < 0 {
		return EdgeKey{}, fmt.Errorf("NewEdgeKey(%d,%d): %w", u, v, ErrNodeOutOfRange)
	}
	if u > v {
		u, v = v, u
	}

	return EdgeKey{U: u, V: v}, nil
}

// MustEdgeKey is NewEdgeKey for literals known to be valid; it panics otherwise.
func MustEdgeKey(u, v int) EdgeKey {
	k, err := NewEdgeKey(u, v)
	if err != nil {
		panic(err)
	}

	return k
}

// ParseEdgeKey parses the "u#v" string form (either order) into a canonical key.
//
// Errors:
//   - ErrBadEdgeKey: missing separator or non-integer ids.
//   - ErrSelfLoop, ErrNodeOutOfRange: as for NewEdgeKey.
func ParseEdgeKey(s string) (EdgeKey, error) {
	left, right, ok := strings.Cut(s, keySeparator)
	if !ok {
		return EdgeKey{}, fmt.Errorf("ParseEdgeKey(%q): %w", s, ErrBadEdgeKey)
	}
	u, err := strconv.Atoi(strings.TrimSpace(left))
	if err != nil {
		return EdgeKey{}, fmt.Errorf("ParseEdgeKey(%q): %v: %w", s, err, ErrBadEdgeKey)
	}
	v, err := strconv.Atoi(strings.TrimSpace(right))
	if err != nil {
		return EdgeKey{}, fmt.Errorf("ParseEdgeKey(%q): %v: %w", s, err, ErrBadEdgeKey)
	}

	return NewEdgeKey(u, v)
}

// String renders the key as "U#V".
func (k EdgeKey) String() string {
	return strconv.Itoa(k.U) + keySeparator + strconv.Itoa(k.V)
}

// Other returns the endpoint of k opposite to node, and false when node is
// not an endpoint of k.
func (k EdgeKey) Other(node int) (int, bool) {
	switch node {
	case k.U:
		return k.V, true
	case k.V:
		return k.U, true
	default:
		return 0, false
	}
}

// Less orders keys by U, then V. This is the canonical edge order.
func (k EdgeKey) Less(o EdgeKey) bool {
	if k.U != o.U {
		return k.U < o.U
	}

	return k.V < o.V
}
