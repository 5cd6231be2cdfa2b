// SPDX-License-Identifier: MIT
// Package: wayfinder/builder
//
// impl_path.go - Path(n): a route 0→1→…→(n-1).
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Nodes via cfg.idFn in index order; arcs emitted in ascending i.

package builder

import "fmt"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple route of n stops.
func Path(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		ids, err := cfg.addNodes(methodPath, g, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = cfg.link(methodPath, g, ids[i-1], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}
