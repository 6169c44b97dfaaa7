// SPDX-License-Identifier: MIT
// Package: xqaoa/builder
//
// impl_complete.go: implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Nodes 0..n-1; emits each unordered pair {i,j} with i<j exactly once.
//
// Complexity:
//   • Time: O(n²) edges emission. Space: O(1) extra.
//
// Determinism:
//   • Pair order: lexicographic by (i,j), i<j, already canonical.

package builder

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete simple graph K_n.
// Every edge of K_n lies in n-2 triangles.
func Complete(n int) Constructor {
	return func(d *draft, _ builderConfig) error {
		if err := validateMin(methodComplete, "n", n, minCompleteNodes); err != nil {
			return err
		}
		d.grow(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				d.connect(i, j)
			}
		}

		return nil
	}
}
