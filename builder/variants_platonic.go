// SPDX-License-Identifier: MIT
// Package: xqaoa/builder
//
// variants_platonic.go: node counts and edge lists of the five Platonic
// solids on ids 0..V-1.
//
// Determinism:
//   • Every list holds canonical pairs (U<V) sorted by (U,V).
//   • Lists are package data and never mutated.

package builder

import (
	"fmt"

	"github.com/katalvlaran/xqaoa/graph"
)

// PlatonicName enumerates the five Platonic solids.
type PlatonicName int

const (
	Tetrahedron  PlatonicName = iota // V=4,  E=6,  triangles=4
	Cube                             // V=8,  E=12, triangle-free
	Octahedron                       // V=6,  E=12, triangles=8
	Dodecahedron                     // V=20, E=30, triangle-free
	Icosahedron                      // V=12, E=30, triangles=20
)

// String returns the lower-case solid name used by the CLI.
func (p PlatonicName) String() string {
	switch p {
	case Tetrahedron:
		return "tetrahedron"
	case Cube:
		return "cube"
	case Octahedron:
		return "octahedron"
	case Dodecahedron:
		return "dodecahedron"
	case Icosahedron:
		return "icosahedron"
	default:
		return "unknown"
	}
}

// ParsePlatonicName is the inverse of String.
func ParsePlatonicName(s string) (PlatonicName, error) {
	for p := Tetrahedron; p <= Icosahedron; p++ {
		if p.String() == s {
			return p, nil
		}
	}

	return 0, fmt.Errorf("%s: %q: %w", methodPlatonicSolid, s, ErrUnknownVariant)
}

type solid struct {
	n     int
	edges []graph.Pair
}

var platonicSolids = map[PlatonicName]solid{
	// K4.
	Tetrahedron: {4, []graph.Pair{
		{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3},
	}},

	// Bottom face 0-1-2-3, top face 4-5-6-7, verticals i-(i+4).
	Cube: {8, []graph.Pair{
		{0, 1}, {0, 3}, {0, 4}, {1, 2}, {1, 5}, {2, 3},
		{2, 6}, {3, 7}, {4, 5}, {4, 7}, {5, 6}, {6, 7},
	}},

	// Poles 0 and 1; equator 2-4-3-5-2.
	Octahedron: {6, []graph.Pair{
		{0, 2}, {0, 3}, {0, 4}, {0, 5}, {1, 2}, {1, 3},
		{1, 4}, {1, 5}, {2, 4}, {2, 5}, {3, 4}, {3, 5},
	}},

	// Pentagons 0..4 and 5..9, middle 10-cycle 10..19; the top pentagon
	// spokes to even ring ids, the bottom one to odd ring ids.
	Dodecahedron: {20, []graph.Pair{
		{0, 1}, {0, 4}, {0, 10}, {1, 2}, {1, 12}, {2, 3},
		{2, 14}, {3, 4}, {3, 16}, {4, 18}, {5, 6}, {5, 9},
		{5, 11}, {6, 7}, {6, 13}, {7, 8}, {7, 15}, {8, 9},
		{8, 17}, {9, 19}, {10, 11}, {10, 19}, {11, 12}, {12, 13},
		{13, 14}, {14, 15}, {15, 16}, {16, 17}, {17, 18}, {18, 19},
	}},

	// Poles 0 and 11; rings 1..5 and 6..10; top i meets bottom i+5 and i+6 (mod ring).
	Icosahedron: {12, []graph.Pair{
		{0, 1}, {0, 2}, {0, 3}, {0, 4}, {0, 5}, {1, 2},
		{1, 5}, {1, 6}, {1, 7}, {2, 3}, {2, 7}, {2, 8},
		{3, 4}, {3, 8}, {3, 9}, {4, 5}, {4, 9}, {4, 10},
		{5, 6}, {5, 10}, {6, 7}, {6, 10}, {6, 11}, {7, 8},
		{7, 11}, {8, 9}, {8, 11}, {9, 10}, {9, 11}, {10, 11},
	}},
}
