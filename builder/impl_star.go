// SPDX-License-Identifier: MIT
// Package: xqaoa/builder
//
// impl_star.go: implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Node 0 is the hub; leaves 1..n-1 are each joined to it, in id order.
//
// Complexity:
//   • Time: O(n). Space: O(1) extra.

package builder

const (
	methodStar   = "Star"
	minStarNodes = 2

	// StarHub is the node id of the star's centre.
	StarHub = 0
)

// Star returns a Constructor that builds the star K_{1,n-1}.
func Star(n int) Constructor {
	return func(d *draft, _ builderConfig) error {
		if err := validateMin(methodStar, "n", n, minStarNodes); err != nil {
			return err
		}
		d.grow(n)
		for leaf := 1; leaf < n; leaf++ {
			d.connect(StarHub, leaf)
		}

		return nil
	}
}
