// SPDX-License-Identifier: MIT
// Package: wayfinder/builder
//
// impl_cycle.go - Cycle(n): a loop line 0→1→…→(n-1)→0.

package builder

import "fmt"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds a ring of n stops (n ≥ 3).
func Cycle(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		ids, err := cfg.addNodes(methodCycle, g, n)
		if err != nil {
			return err
		}
		// i == n-1 closes the ring back to 0.
		for i := 0; i < n; i++ {
			if err = cfg.link(methodCycle, g, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}
