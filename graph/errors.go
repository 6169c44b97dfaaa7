// SPDX-License-Identifier: MIT
// Package: xqaoa/graph
//
// errors.go: sentinel errors for the graph package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w ("New: edge 3: ...: %w").

package graph

import "errors"

var (
	// ErrNegativeNodeCount indicates New was called with n < 0.
	ErrNegativeNodeCount = errors.New("graph: negative node count")

	// ErrNodeOutOfRange indicates an edge endpoint outside [0,n).
	ErrNodeOutOfRange = errors.New("graph: node id out of range")

	// ErrSelfLoop indicates an edge whose two endpoints are equal.
	ErrSelfLoop = errors.New("graph: self-loop not allowed")

	// ErrNodeNotFound indicates a query referenced a node the Model does not own.
	ErrNodeNotFound = errors.New("graph: node not found")

	// ErrEdgeNotFound indicates a query referenced an edge the Model does not own.
	ErrEdgeNotFound = errors.New("graph: edge not found")

	// ErrDuplicateEdge indicates NewStrict saw the same unordered pair twice.
	ErrDuplicateEdge = errors.New("graph: duplicate edge")

	// ErrBadEdgeKey indicates an edge key string that cannot be parsed.
	ErrBadEdgeKey = errors.New("graph: malformed edge key")
)
