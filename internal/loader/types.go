// Package loader turns external route data into weighted edges.
//
// A Source yields Edge records; routes.Service inserts them into its graph.
// Sources exist for DOT edge-list files, arbitrary readers and Neo4j.
package loader

import (
	"context"
	"errors"
)

// Sentinel errors returned by loaders.
var (
	// ErrSyntax indicates a malformed edge line in a DOT file.
	ErrSyntax = errors.New("loader: syntax error")

	// ErrEmptyPath indicates a FileSource without a path.
	ErrEmptyPath = errors.New("loader: empty path")

	// ErrMissingURI indicates Neo4j options without a connection URI.
	ErrMissingURI = errors.New("loader: missing neo4j uri")

	// ErrBadRecord indicates a database row without usable from/to/weight columns.
	ErrBadRecord = errors.New("loader: bad record")
)

// Edge is one directed, weighted connection between two named locations.
type Edge struct {
	From   string
	To     string
	Weight float64
}

// Source produces the full edge set of a graph. Implementations must be
// safe to call repeatedly; each call returns a fresh snapshot.
type Source interface {
	Edges(ctx context.Context) ([]Edge, error)
	// Describe names the source for logs, e.g. "file:campus.dot".
	Describe() string
}
