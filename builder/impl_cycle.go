// SPDX-License-Identifier: MIT
// Package: xqaoa/builder
//
// impl_cycle.go: implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Emits edges i-(i+1)%n for i=0..n-1 in stable order.
//
// Complexity:
//   • Time: O(n). Space: O(1) extra.

package builder

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds the simple cycle C_n. C_3 is a
// triangle; longer cycles are triangle-free.
func Cycle(n int) Constructor {
	return func(d *draft, _ builderConfig) error {
		if err := validateMin(methodCycle, "n", n, minCycleNodes); err != nil {
			return err
		}
		d.grow(n)
		for i := 0; i < n; i++ {
			d.connect(i, (i+1)%n)
		}

		return nil
	}
}
