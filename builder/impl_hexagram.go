// SPDX-License-Identifier: MIT
// Package: xqaoa/builder
//
// impl_hexagram.go: Hexagram constructor: a ring with chords overlaid.
//
// Variants:
//   • HexDefault: C6 plus triangles 0-2-4 and 1-3-5 (Star of David);
//                  12 edges, 8 triangles.
//   • HexMedium:  C8 plus the square 0-2-4-6; 12 edges, 4 triangles.
//
// Chords that repeat a ring edge collapse when the Model is built.

package builder

import "fmt"

const methodHexagram = "Hexagram"

// HexagramVariant selects ring size and chord set.
type HexagramVariant int

const (
	HexDefault HexagramVariant = iota
	HexMedium
)

var hexagrams = map[HexagramVariant]struct {
	ring   int
	chords [][2]int
}{
	HexDefault: {6, [][2]int{{0, 2}, {2, 4}, {4, 0}, {1, 3}, {3, 5}, {5, 1}}},
	HexMedium:  {8, [][2]int{{0, 2}, {2, 4}, {4, 6}, {6, 0}}},
}

// Hexagram emits the ring of the variant followed by its chords.
func Hexagram(variant HexagramVariant) Constructor {
	return func(d *draft, cfg builderConfig) error {
		h, ok := hexagrams[variant]
		if !ok {
			return fmt.Errorf("%s: variant %d: %w", methodHexagram, int(variant), ErrUnknownVariant)
		}
		if err := Cycle(h.ring)(d, cfg); err != nil {
			return fmt.Errorf("%s: base cycle: %w", methodHexagram, err)
		}
		for _, c := range h.chords {
			d.connect(c[0], c[1])
		}

		return nil
	}
}
