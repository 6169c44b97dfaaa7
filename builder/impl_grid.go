// SPDX-License-Identifier: MIT
// Package: xqaoa/builder
//
// impl_grid.go: implementation of Grid(rows, cols) constructor.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Node id of cell (r,c) is r*cols + c (row-major).
//   • For each cell emits Right then Bottom neighbour where present.
//
// Complexity:
//   • Time: O(rows*cols). Space: O(1) extra.

package builder

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols 4-neighbourhood grid.
// Grids are bipartite, hence triangle-free.
func Grid(rows, cols int) Constructor {
	return func(d *draft, _ builderConfig) error {
		if err := validateMin(methodGrid, "rows", rows, minGridDim); err != nil {
			return err
		}
		if err := validateMin(methodGrid, "cols", cols, minGridDim); err != nil {
			return err
		}
		d.grow(rows * cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := r*cols + c
				if c+1 < cols {
					d.connect(id, id+1)
				}
				if r+1 < rows {
					d.connect(id, id+cols)
				}
			}
		}

		return nil
	}
}
