// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for wayfinder/core.
//
// Purpose:
//   - Provide small, deterministic fixtures for core.Graph.
//   - Keep node names and weights out of test bodies.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wayfinder/core"
)

// Common node identities used across core tests.
const (
	NodeA = "A"
	NodeB = "B"
	NodeC = "C"
	NodeD = "D"

	NodeGhost = "ghost"
)

// Common weights used across core tests.
const (
	Weight1  = 1.0
	Weight2  = 2.0
	Weight10 = 10.0
)

// newDiamond RETURNS the reference graph
//
//	A→B(1), B→C(2), A→C(10), A→D(1), D→C(1)
//
// used by the optimality tests across packages.
func newDiamond(t *testing.T) *core.Graph[string, float64] {
	t.Helper()
	g := core.NewStringGraph[float64]()
	for _, n := range []string{NodeA, NodeB, NodeC, NodeD} {
		require.NoError(t, g.AddNode(n))
	}
	require.NoError(t, g.AddEdge(NodeA, NodeB, Weight1))
	require.NoError(t, g.AddEdge(NodeB, NodeC, Weight2))
	require.NoError(t, g.AddEdge(NodeA, NodeC, Weight10))
	require.NoError(t, g.AddEdge(NodeA, NodeD, Weight1))
	require.NoError(t, g.AddEdge(NodeD, NodeC, Weight1))

	return g
}

// edgePairs flattens edges to "from→to" strings for compact assertions.
func edgePairs[W core.Weight](edges []*core.Edge[string, W]) []string {
	out := make([]string, len(edges))
	for i, e := range edges {
		out[i] = e.From() + "→" + e.To()
	}

	return out
}
