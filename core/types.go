// Package core defines the central Graph, Node, and Edge types.
//
// This file declares Weight, Node, Edge, Graph, GraphOption,
// sentinel errors, and the NewGraph constructors.
//
// Errors:
//
//	ErrNilNode        - node data is nil.
//	ErrNodeNotFound   - requested node does not exist.
//	ErrEdgeNotFound   - requested edge does not exist.
//	ErrNegativeWeight - edge weight is negative or NaN.
package core

import (
	"errors"

	"github.com/katalvlaran/wayfinder/hashmap"
)

// Sentinel errors for core graph operations.
var (
	// ErrNilNode indicates that nil node data was passed where an identity is required.
	ErrNilNode = errors.New("core: node data is nil")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNegativeWeight indicates a negative or NaN edge weight.
	ErrNegativeWeight = errors.New("core: negative edge weight")
)

// Weight lists the numeric kinds usable as edge weights. All of them support
// deterministic comparison and addition.
type Weight interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Node is a vertex identified by its data.
//
// Outgoing edges are kept in insertion order; incoming edges are tracked so
// that removing the node can detach them without scanning the whole graph.
type Node[N comparable, W Weight] struct {
	data N
	seq  uint64 // insertion sequence, drives Nodes() ordering

	out []*Edge[N, W]
	in  []*Edge[N, W]
}

// Data returns the node identity.
func (n *Node[N, W]) Data() N { return n.data }

// Out returns the outgoing edges in insertion order. The slice is owned by
// the graph and must not be modified.
func (n *Node[N, W]) Out() []*Edge[N, W] { return n.out }

// InDegree returns the number of incoming edges.
func (n *Node[N, W]) InDegree() int { return len(n.in) }

// OutDegree returns the number of outgoing edges.
func (n *Node[N, W]) OutDegree() int { return len(n.out) }

// IsNil reports whether the receiver is nil.
func (n *Node[N, W]) IsNil() bool { return n == nil }

// Edge is a directed, weighted connection owned by its predecessor node.
type Edge[N comparable, W Weight] struct {
	pred   *Node[N, W]
	succ   *Node[N, W]
	weight W
}

// From returns the predecessor's data.
func (e *Edge[N, W]) From() N { return e.pred.data }

// To returns the successor's data.
func (e *Edge[N, W]) To() N { return e.succ.data }

// Weight returns the edge weight.
func (e *Edge[N, W]) Weight() W { return e.weight }

// Successor returns the node this edge leads to.
func (e *Edge[N, W]) Successor() *Node[N, W] { return e.succ }

// Predecessor returns the node that owns this edge.
func (e *Edge[N, W]) Predecessor() *Node[N, W] { return e.pred }

// GraphOption configures a Graph before creation.
type GraphOption func(c *graphConfig)

type graphConfig struct {
	nodeCapacity int
}

// WithNodeCapacity sets the initial bucket count of the node index.
// Non-positive values keep hashmap.DefaultCapacity.
func WithNodeCapacity(n int) GraphOption {
	return func(c *graphConfig) {
		if n > 0 {
			c.nodeCapacity = n
		}
	}
}

// Graph is a weighted directed graph over node data N.
type Graph[N comparable, W Weight] struct {
	hasher hashmap.Hasher[N]
	nodes  *hashmap.ChainedMap[N, *Node[N, W]]

	nextSeq   uint64
	edgeCount int
}

// NewGraph creates an empty Graph whose node index hashes with hasher.
// Complexity: O(capacity).
func NewGraph[N comparable, W Weight](hasher hashmap.Hasher[N], opts ...GraphOption) *Graph[N, W] {
	cfg := graphConfig{nodeCapacity: hashmap.DefaultCapacity}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[N, W]{
		hasher: hasher,
		nodes:  hashmap.New[N, *Node[N, W]](hasher, hashmap.WithCapacity(cfg.nodeCapacity)),
	}
}

// NewStringGraph creates an empty Graph keyed by strings, hashed with xxhash.
func NewStringGraph[W Weight](opts ...GraphOption) *Graph[string, W] {
	return NewGraph[string, W](hashmap.StringHasher[string]{}, opts...)
}
