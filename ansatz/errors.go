// SPDX-License-Identifier: MIT
// Package: xqaoa/ansatz
//
// errors.go: sentinel errors for the ansatz package.

package ansatz

import "errors"

var (
	// ErrNilGraph indicates New was given a nil *graph.Model.
	ErrNilGraph = errors.New("ansatz: graph is nil")

	// ErrAngleCount indicates an angle vector whose length is not 2·n + m.
	ErrAngleCount = errors.New("ansatz: wrong number of angles")

	// ErrUnknownNode indicates an angle query for a node outside the graph.
	ErrUnknownNode = errors.New("ansatz: unknown node")

	// ErrUnknownEdge indicates an angle or cost query for an edge outside the graph.
	ErrUnknownEdge = errors.New("ansatz: unknown edge")
)
