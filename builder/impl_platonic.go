// SPDX-License-Identifier: MIT
// Package: xqaoa/builder
//
// impl_platonic.go: PlatonicSolid constructor.
//
// Contract:
//   • Shell nodes are 0..V-1 with the edge lists of variants_platonic.go.
//   • withCenter adds node V joined to every shell node (a cone over the solid),
//     which turns every shell edge into a triangle edge.
//
// Complexity: O(V + E).

package builder

import "fmt"

const methodPlatonicSolid = "PlatonicSolid"

// PlatonicSolid emits the skeleton graph of the named solid.
func PlatonicSolid(name PlatonicName, withCenter bool) Constructor {
	return func(d *draft, _ builderConfig) error {
		s, ok := platonicSolids[name]
		if !ok {
			return fmt.Errorf("%s: solid %d: %w", methodPlatonicSolid, int(name), ErrUnknownVariant)
		}

		d.grow(s.n)
		for _, p := range s.edges {
			d.connect(p[0], p[1])
		}

		if withCenter {
			center := s.n
			d.grow(s.n + 1)
			for i := 0; i < s.n; i++ {
				d.connect(center, i)
			}
		}

		return nil
	}
}
