package routes

import (
	"errors"

	"github.com/katalvlaran/wayfinder/core"
	"github.com/katalvlaran/wayfinder/dijkstra"
)

// Sentinel errors surfaced by Service queries. The first two alias the
// engine's sentinels so callers can match against either package.
var (
	// ErrNodeNotFound indicates a query named a location not in the graph.
	ErrNodeNotFound = core.ErrNodeNotFound

	// ErrNoPathFound indicates two known locations are not connected.
	ErrNoPathFound = dijkstra.ErrNoPathFound

	// ErrNoReachableDestination indicates that nothing other than the start
	// can be reached from it.
	ErrNoReachableDestination = errors.New("routes: no reachable destination")

	// ErrNilSource indicates Load was called without a source.
	ErrNilSource = errors.New("routes: source is nil")
)

// resultLabel classifies err for metrics.
func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrNodeNotFound):
		return "not_found"
	case errors.Is(err, ErrNoPathFound), errors.Is(err, ErrNoReachableDestination):
		return "no_path"
	default:
		return "error"
	}
}
