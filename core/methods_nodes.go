// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() returns data in insertion order.
//
// Policy:
//   - AddNode is idempotent; RemoveNode detaches every incident edge first.
package core

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/wayfinder/hashmap"
)

// AddNode inserts a node for data if none exists.
// Returns ErrNilNode for nil data; inserting existing data is a no-op.
// Complexity: O(1) amortized.
func (g *Graph[N, W]) AddNode(data N) error {
	if g.nodes.ContainsKey(data) {
		return nil // no-op for existing node
	}
	if err := g.nodes.Put(data, &Node[N, W]{data: data, seq: g.nextSeq + 1}); err != nil {
		if errors.Is(err, hashmap.ErrNullKey) {
			return ErrNilNode
		}
		return fmt.Errorf("core: add node %v: %w", data, err)
	}
	g.nextSeq++

	return nil
}

// HasNode reports whether a node with the given data exists (nil ⇒ false).
// Complexity: O(1).
func (g *Graph[N, W]) HasNode(data N) bool {
	return g.nodes.ContainsKey(data)
}

// Node returns the node record for data, or ErrNodeNotFound.
// Complexity: O(1).
func (g *Graph[N, W]) Node(data N) (*Node[N, W], error) {
	n, err := g.nodes.Get(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNodeNotFound, data)
	}

	return n, nil
}

// RemoveNode deletes the node and every edge entering or leaving it.
// Returns ErrNodeNotFound if data is absent.
// Complexity: O(Σ degree of touched neighbours).
func (g *Graph[N, W]) RemoveNode(data N) error {
	n, err := g.Node(data)
	if err != nil {
		return err
	}

	// 1) Outgoing edges: detach from each successor's incoming list.
	removed := len(n.out)
	for _, e := range n.out {
		if e.succ != n {
			e.succ.in = deleteEdge(e.succ.in, e)
		}
	}

	// 2) Incoming edges: detach from each predecessor's outgoing list.
	//    Self-loops were already counted in step 1.
	for _, e := range n.in {
		if e.pred != n {
			e.pred.out = deleteEdge(e.pred.out, e)
			removed++
		}
	}

	n.out, n.in = nil, nil
	g.edgeCount -= removed
	if _, err = g.nodes.Remove(data); err != nil {
		return fmt.Errorf("core: remove node %v: %w", data, err)
	}

	return nil
}

// Nodes returns every node's data in insertion order.
// Complexity: O(V log V).
func (g *Graph[N, W]) Nodes() []N {
	nodes := g.sortedNodes()
	out := make([]N, len(nodes))
	for i, n := range nodes {
		out[i] = n.data
	}

	return out
}

// NodeCount returns the number of nodes.
// Complexity: O(1).
func (g *Graph[N, W]) NodeCount() int { return g.nodes.Size() }

// Clear removes all nodes and edges. The node index keeps its capacity.
// Complexity: O(capacity).
func (g *Graph[N, W]) Clear() {
	g.nodes.Clear()
	g.edgeCount = 0
	g.nextSeq = 0
}

// sortedNodes collects node records ordered by insertion sequence.
func (g *Graph[N, W]) sortedNodes() []*Node[N, W] {
	nodes := make([]*Node[N, W], 0, g.nodes.Size())
	g.nodes.Range(func(_ N, n *Node[N, W]) bool {
		nodes = append(nodes, n)
		return true
	})
	slices.SortFunc(nodes, func(a, b *Node[N, W]) int { return cmp.Compare(a.seq, b.seq) })

	return nodes
}

// deleteEdge removes e from list preserving order.
func deleteEdge[N comparable, W Weight](list []*Edge[N, W], e *Edge[N, W]) []*Edge[N, W] {
	if i := slices.Index(list, e); i >= 0 {
		return slices.Delete(list, i, i+1)
	}

	return list
}
