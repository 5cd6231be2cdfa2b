// SPDX-License-Identifier: MIT
// Package: wayfinder/builder
//
// impl_star.go - Star(n): a hub with n-1 spokes.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Hub is idFn(0); leaves idFn(1..n-1). Spokes point hub→leaf.

package builder

import "fmt"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a hub-and-spoke network.
func Star(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		ids, err := cfg.addNodes(methodStar, g, n)
		if err != nil {
			return err
		}
		for _, leaf := range ids[1:] {
			if err = cfg.link(methodStar, g, ids[0], leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
