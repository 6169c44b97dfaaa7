// SPDX-License-Identifier: MIT
// Package: xqaoa/builder
//
// impl_wheel.go: implementation of Wheel(n) constructor.
//
// Contract:
//   • n ≥ 4 (else ErrTooFewVertices): the rim C_{n-1} needs ≥ 3 nodes.
//   • Rim nodes 0..n-2 form a cycle (emitted first, via Cycle);
//     hub n-1 is joined to every rim node in id order.
//
// Complexity:
//   • Time: O(n). Space: O(1) extra.

package builder

import "fmt"

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that builds W_n = C_{n-1} + hub. Every edge
// of a wheel lies in at least one triangle.
func Wheel(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if err := validateMin(methodWheel, "n", n, minWheelNodes); err != nil {
			return err
		}
		if err := Cycle(n-1)(d, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", methodWheel, n-1, err)
		}
		hub := n - 1
		d.grow(n)
		for rim := 0; rim < hub; rim++ {
			d.connect(hub, rim)
		}

		return nil
	}
}
