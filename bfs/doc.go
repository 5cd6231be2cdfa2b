// Package bfs provides breadth-first search over a core.Graph, returning
// hop distances, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing hop count from a start node, following
//     edges in their direction only.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from node → hops from start
//   - Parent: map from node → its predecessor in the BFS tree
//   - Walk accepts a visitor that may abort the traversal with an error.
//   - Honors a MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Why
//
//   - "Which locations can I reach within k hops?" ignores travel times, so
//     it is answered in O(V + E) without a priority queue.
//   - Complements dijkstra: the hop-optimal path and the cost-optimal path
//     are often different routes.
//
// Determinism
//
//	core.Graph keeps outgoing edges in insertion order and BFS enqueues
//	successors in that order, so the visit sequence is reproducible.
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - Time:   O(V + E)   (each node and edge seen at most once)
//   - Memory: O(V)       (queue, depth and parent maps)
//
// Cancellation
//
//	The context is checked once per dequeue; a cancelled walk returns
//	ctx.Err() and the partial Result.
package bfs
