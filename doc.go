// Package wayfinder finds the quickest way between named places.
//
// A campus, a bus network or a warehouse floor is modelled as a directed
// graph: locations are nodes, and each connection carries a non-negative
// travel time. wayfinder loads such a graph and answers:
//
//   - the cheapest route between two locations (path, per-hop times, total)
//   - the furthest destination from a location by cheapest-route cost
//   - what is reachable within N hops
//
// 🚀 Layout
//
//	hashmap/          - chained hash map with pluggable hashers (xxhash for strings)
//	core/             - generic weighted directed Graph on top of hashmap
//	dijkstra/         - cost-optimal paths and single-source cost tables
//	bfs/              - hop-bounded breadth-first traversal
//	builder/          - deterministic synthetic graphs for fixtures and benchmarks
//	routes/           - concurrent-safe Service with Prometheus metrics
//	internal/loader/  - DOT files, Neo4j, and fsnotify-driven hot reload
//	internal/render/  - embeddable HTML fragments
//	internal/server/  - gin HTTP API
//	cmd/wayfinder/    - cobra CLI: query, generate, serve
//
// ✨ Quick start
//
//	g := core.NewStringGraph[float64]()
//	_ = g.AddNode("Library")
//	_ = g.AddNode("Gym")
//	_ = g.AddEdge("Library", "Gym", 90)
//	res, _ := dijkstra.ShortestPath(g, "Library", "Gym")
//	fmt.Println(res.Path, res.Cost) // [Library Gym] 90
//
// The library packages do not log and are not synchronized; routes.Service
// adds locking, logging and metrics for long-running use.
package wayfinder
