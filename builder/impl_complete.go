// SPDX-License-Identifier: MIT
// Package: wayfinder/builder
//
// impl_complete.go - Complete(n): every ordered pair (i,j), i≠j.
//
// Determinism:
//   • Pairs emitted in lexicographic index order; u→v then v→u for i<j.
//   • Each direction draws its own weight.

package builder

import "fmt"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete digraph on n nodes.
func Complete(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		ids, err := cfg.addNodes(methodComplete, g, n)
		if err != nil {
			return err
		}
		// Both directions are emitted explicitly; bidirectional would only repeat them.
		one := cfg
		one.bidirectional = false
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = one.link(methodComplete, g, ids[i], ids[j]); err != nil {
					return err
				}
				if err = one.link(methodComplete, g, ids[j], ids[i]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
