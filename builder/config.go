// SPDX-License-Identifier: MIT
// Package: wayfinder/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn          = DefaultIDFn    ("0","1","2",...)
//   • rng           = nil             (pure/deterministic unless seeded)
//   • weightFn      = DefaultWeightFn (constant 1)
//   • bidirectional = false           (one arc per topology edge)

package builder

import (
	"fmt"
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Node ID strategy: index -> ID.
	idFn IDFn
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Weight generator for edges.
	weightFn WeightFn
	// Emit v→u for every u→v (two-way streets).
	bidirectional bool
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order (later overrides earlier).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// addNodes inserts idFn(0..n-1) and returns the IDs in index order.
func (cfg builderConfig) addNodes(method string, g *Graph, n int) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		if err := g.AddNode(ids[i]); err != nil {
			return nil, fmt.Errorf("%s: AddNode(%s): %w", method, ids[i], err)
		}
	}

	return ids, nil
}

// link adds u→v with a freshly drawn weight, plus v→u when bidirectional.
// Both arcs share the same weight.
func (cfg builderConfig) link(method string, g *Graph, u, v string) error {
	w := cfg.weightFn(cfg.rng)
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", method, u, v, w, err)
	}
	if cfg.bidirectional && u != v {
		if err := g.AddEdge(v, u, w); err != nil {
			return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", method, v, u, w, err)
		}
	}

	return nil
}
