// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade exposing read-only getters.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity.

package core

import "github.com/katalvlaran/wayfinder/hashmap"

// GraphStats is a read-only snapshot of a graph's size and index health.
type GraphStats struct {
	NodeCount     int     // number of nodes
	EdgeCount     int     // number of edges
	SelfLoopCount int     // edges whose predecessor equals successor
	IndexCapacity int     // bucket count of the node index
	LoadFactor    float64 // NodeCount / IndexCapacity
}

// Hasher returns the hasher the node index was built with, so algorithms can
// create auxiliary maps over the same key space.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph[N, W]) Hasher() hashmap.Hasher[N] { return g.hasher }

// Stats produces a snapshot of counts and node-index occupancy.
//
// Implementation:
//   - Stage 1: Copy the O(1) counters.
//   - Stage 2: Scan outgoing edges once to count self-loops.
//
// Complexity:
//   - Time O(V+E), Space O(1) plus the returned struct.
func (g *Graph[N, W]) Stats() *GraphStats {
	stats := GraphStats{
		NodeCount:     g.nodes.Size(),
		EdgeCount:     g.edgeCount,
		IndexCapacity: g.nodes.Capacity(),
		LoadFactor:    g.nodes.LoadFactor(),
	}
	g.nodes.Range(func(_ N, n *Node[N, W]) bool {
		for _, e := range n.out {
			if e.succ == n {
				stats.SelfLoopCount++
			}
		}
		return true
	})

	return &stats
}
