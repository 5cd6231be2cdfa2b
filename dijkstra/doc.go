// Package dijkstra answers single-pair and single-source shortest-path
// queries on a core.Graph with non-negative edge weights.
//
// Overview:
//
//   - ShortestPath expands the cheapest candidate path first, using a min-heap
//     of search nodes, and stops as soon as the target is popped.
//   - Each search node remembers its predecessor, so the optimal path is
//     rebuilt by walking from the target back to the start and reversing.
//   - A node popped while already settled at an equal or lower cost is
//     discarded as dominated (lazy decrease-key).
//
// When to use:
//
//   - Travel-time or distance queries between two named locations.
//   - Costs(g, start) for "everything reachable, and how far" questions, such
//     as picking the furthest destination from a location.
//
// Key features:
//
//   - Generic over node data and weight kind; costs accumulate as float64.
//   - The settled set is a hashmap.ChainedMap sharing the graph's hasher.
//   - WithMaxCost stops expanding beyond a budget.
//   - WithInfEdgeThreshold treats heavy edges as closed.
//
// Semantics:
//
//   - start == end: Path=[start], Cost=0, no error.
//   - Unknown start or end: ErrNodeNotFound (same value as core.ErrNodeNotFound).
//   - Unreachable end: ErrNoPathFound, never an empty Result.
//   - Weights are validated by core.Graph.AddEdge, so the search never sees a
//     negative edge.
//
// API reference:
//
//	func ShortestPath(g *core.Graph[N,W], start, end N, opts ...Option) (*Result[N], error)
//	func PathData(g *core.Graph[N,W], start, end N, opts ...Option) ([]N, error)
//	func PathCost(g *core.Graph[N,W], start, end N, opts ...Option) (float64, error)
//	func Costs(g *core.Graph[N,W], start N, opts ...Option) (map[N]float64, error)
//
// Example:
//
//	res, err := dijkstra.ShortestPath(g, "Library", "Stadium")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Path, res.Cost)
package dijkstra
