// SPDX-License-Identifier: MIT
// Package: xqaoa/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Emits edges (i-1)-i for i=1..n-1 in stable increasing order.
//
// Complexity:
//   - Time: O(n). Space: O(1) extra.

package builder

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(d *draft, _ builderConfig) error {
		if err := validateMin(methodPath, "n", n, minPathNodes); err != nil {
			return err
		}
		d.grow(n)
		for i := 1; i < n; i++ {
			d.connect(i-1, i)
		}

		return nil
	}
}
