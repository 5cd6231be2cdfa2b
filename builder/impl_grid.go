// SPDX-License-Identifier: MIT
// Package: wayfinder/builder
//
// impl_grid.go - Grid(rows, cols): a street grid.
//
// Canonical model:
//   • 4-neighborhood; each cell links Right and Down where they exist.
//   • Node IDs use the fixed scheme "r,c" (row-major), not cfg.idFn.
//
// Complexity:
//   • Time O(rows*cols); extra space O(1).

package builder

import "fmt"

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d"
)

// GridID returns the node name Grid uses for cell (r, c).
func GridID(r, c int) string { return fmt.Sprintf(gridIDFmt, r, c) }

// Grid returns a Constructor that builds a rows×cols street grid.
func Grid(rows, cols int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if err := g.AddNode(GridID(r, c)); err != nil {
					return fmt.Errorf("%s: AddNode(%s): %w", methodGrid, GridID(r, c), err)
				}
			}
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridID(r, c)
				if c+1 < cols {
					if err := cfg.link(methodGrid, g, u, GridID(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := cfg.link(methodGrid, g, u, GridID(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
