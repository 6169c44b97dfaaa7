// Package graphio loads and stores graphs and angle vectors for the xqaoa
// command and for callers that keep fixtures on disk.
//
// Graph formats:
//
//	FormatEdgeList  plain text. Blank lines and lines starting with '#' are
//	                ignored. An optional first data line holding a single
//	                integer is the node count; every other line is "u v"
//	                (a third column, e.g. a weight, is ignored). Without
//	                the header the node count is max id + 1.
//
//	FormatYAML      a document with "nodes" and "edges" keys:
//
//	                  nodes: 3
//	                  edges: [[0, 1], [1, 2], [0, 2]]
//
// Angle vectors are whitespace- or comma-separated floats in the layout
// ansatz.Evaluator.SetAngles expects.
package graphio
