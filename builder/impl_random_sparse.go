// SPDX-License-Identifier: MIT
// Package: wayfinder/builder
//
// impl_random_sparse.go - RandomSparse(n, p): Erdős–Rényi-like digraph.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   • cfg.rng must be non-nil (else ErrNeedRandSource), even for p∈{0,1}.
//   • Ordered pairs (i,j), i≠j, each included independently with prob p.
//
// Determinism:
//   • Pair order is row-major; one Float64 draw per pair precedes its weight draw.

package builder

import "fmt"

const (
	methodRandomSparse = "RandomSparse"
	minRandomNodes     = 1
)

// RandomSparse returns a Constructor that samples a random digraph.
func RandomSparse(n int, p float64) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minRandomNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minRandomNodes, ErrTooFewVertices)
		}
		if p < 0 || p > 1 || p != p {
			return fmt.Errorf("%s: p=%v: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		ids, err := cfg.addNodes(methodRandomSparse, g, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j || cfg.rng.Float64() >= p {
					continue
				}
				if err = cfg.link(methodRandomSparse, g, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
