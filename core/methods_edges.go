// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Edge/Neighbors/Edges/EdgeCount.
// Determinism:
//   - Neighbors() returns outgoing edges in insertion order.
//   - Edges() walks nodes in insertion order, then each node's outgoing edges.
// Policy:
//   - At most one edge per ordered pair; AddEdge on an existing pair overwrites the weight.
//   - Negative and NaN weights are rejected with ErrNegativeWeight.

package core

import "fmt"

// AddEdge creates the directed edge from→to with weight w, or overwrites the
// weight if that edge already exists.
//
// Steps:
//  1. Validate weight (ErrNegativeWeight).
//  2. Resolve both endpoints (ErrNodeNotFound); AddEdge never creates nodes.
//  3. Overwrite in place if (from,to) exists, else append to from.out and to.in.
//
// Complexity: O(out(from)).
func (g *Graph[N, W]) AddEdge(from, to N, w W) error {
	// 1) Weight constraint; w != w is the NaN test for float kinds.
	if w < 0 || w != w {
		return fmt.Errorf("%w: %v→%v weight=%v", ErrNegativeWeight, from, to, w)
	}

	// 2) Resolve endpoints
	pred, err := g.Node(from)
	if err != nil {
		return err
	}
	succ, err := g.Node(to)
	if err != nil {
		return err
	}

	// 3) Duplicate pair: overwrite the weight
	if e := pred.edgeTo(succ); e != nil {
		e.weight = w
		return nil
	}

	e := &Edge[N, W]{pred: pred, succ: succ, weight: w}
	pred.out = append(pred.out, e)
	succ.in = append(succ.in, e)
	g.edgeCount++

	return nil
}

// RemoveEdge deletes the edge from→to.
// Returns ErrEdgeNotFound if the pair has no edge, including when either
// endpoint does not exist.
// Complexity: O(out(from) + in(to)).
func (g *Graph[N, W]) RemoveEdge(from, to N) error {
	e, err := g.edge(from, to)
	if err != nil {
		return err
	}
	e.pred.out = deleteEdge(e.pred.out, e)
	e.succ.in = deleteEdge(e.succ.in, e)
	g.edgeCount--

	return nil
}

// HasEdge reports whether the edge from→to exists.
// Complexity: O(out(from)).
func (g *Graph[N, W]) HasEdge(from, to N) bool {
	_, err := g.edge(from, to)

	return err == nil
}

// Edge returns the weight of from→to, or ErrEdgeNotFound.
// Complexity: O(out(from)).
func (g *Graph[N, W]) Edge(from, to N) (W, error) {
	e, err := g.edge(from, to)
	if err != nil {
		var zero W
		return zero, err
	}

	return e.weight, nil
}

// Neighbors returns a copy of the outgoing edges of data in insertion order.
// Returns ErrNodeNotFound if data is absent.
// Complexity: O(out(v)).
func (g *Graph[N, W]) Neighbors(data N) ([]*Edge[N, W], error) {
	n, err := g.Node(data)
	if err != nil {
		return nil, err
	}
	out := make([]*Edge[N, W], len(n.out))
	copy(out, n.out)

	return out, nil
}

// Edges returns every edge, grouped by predecessor in node insertion order.
// Complexity: O(V log V + E).
func (g *Graph[N, W]) Edges() []*Edge[N, W] {
	out := make([]*Edge[N, W], 0, g.edgeCount)
	for _, n := range g.sortedNodes() {
		out = append(out, n.out...)
	}

	return out
}

// EdgeCount returns the number of edges.
// Complexity: O(1).
func (g *Graph[N, W]) EdgeCount() int { return g.edgeCount }

// edge resolves from→to or returns ErrEdgeNotFound with context.
func (g *Graph[N, W]) edge(from, to N) (*Edge[N, W], error) {
	pred, err := g.nodes.Get(from)
	if err != nil {
		return nil, fmt.Errorf("%w: %v→%v", ErrEdgeNotFound, from, to)
	}
	succ, err := g.nodes.Get(to)
	if err != nil {
		return nil, fmt.Errorf("%w: %v→%v", ErrEdgeNotFound, from, to)
	}
	if e := pred.edgeTo(succ); e != nil {
		return e, nil
	}

	return nil, fmt.Errorf("%w: %v→%v", ErrEdgeNotFound, from, to)
}

// edgeTo scans n's outgoing edges for one leading to succ.
func (n *Node[N, W]) edgeTo(succ *Node[N, W]) *Edge[N, W] {
	for _, e := range n.out {
		if e.succ == succ {
			return e
		}
	}

	return nil
}
