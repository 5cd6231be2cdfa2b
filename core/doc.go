// Package core provides the weighted directed Graph that every search in
// wayfinder runs on.
//
// The Graph G = (V,E) is generic over the node data N (the node identity,
// compared with ==) and the edge weight W (any Go numeric kind):
//
//   - Node index: a hashmap.ChainedMap[N,*Node], so lookups go through the
//     caller-supplied hashmap.Hasher[N].
//   - Each Node owns its outgoing edges in insertion order and keeps a list of
//     incoming edges so RemoveNode can detach both directions in O(deg).
//   - At most one edge per ordered pair (from,to); self-loops are allowed.
//
// Why a dedicated graph instead of adjacency maps?
//
//   - Referential integrity is structural: an Edge points at live *Node values,
//     and RemoveNode drops every incident edge before the node leaves the index.
//   - Deterministic enumeration: Nodes() returns insertion order, Neighbors()
//     returns edge insertion order, so search tie-breaking is reproducible.
//
// Insert policies:
//
//	- AddNode on existing data is a no-op (idempotent).
//	- AddEdge on an existing (from,to) pair overwrites the weight.
//	- AddEdge rejects negative and NaN weights with ErrNegativeWeight.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(data N) error                  // O(1) amortized
//	HasNode(data N) bool                   // O(1)
//	RemoveNode(data N) error               // O(deg(v) · deg(neighbour))
//
//	// Edge lifecycle
//	AddEdge(from, to N, w W) error         // O(out(from))
//	RemoveEdge(from, to N) error           // O(out(from) + in(to))
//	HasEdge(from, to N) bool               // O(out(from))
//	Edge(from, to N) (W, error)            // O(out(from))
//
//	// Query
//	Nodes() []N                            // O(V log V), insertion order
//	Neighbors(data N) ([]*Edge, error)     // O(out(v))
//	Edges() []*Edge                        // O(V log V + E)
//	NodeCount(), EdgeCount()               // O(1)
//
// Errors:
//
//	ErrNilNode        - nil node data (nil interface or Nilable reporting nil)
//	ErrNodeNotFound   - missing node
//	ErrEdgeNotFound   - missing edge
//	ErrNegativeWeight - negative or NaN weight
//
// Thread safety:
//
//	Graph is not synchronized. Mutating a graph while a search reads it is
//	undefined; callers sharing a Graph across goroutines must lock around it
//	(routes.Service does exactly that).
package core
