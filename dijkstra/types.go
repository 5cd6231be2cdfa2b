// Package dijkstra defines the sentinel errors, result type and configuration
// options for shortest-path queries on core.Graph.
//
// Options:
//
//	- WithMaxCost:          do not expand nodes whose accumulated cost exceeds c.
//	- WithInfEdgeThreshold: edges with weight >= t are treated as impassable.
//
// Errors (sentinel):
//
//	- ErrNodeNotFound if start or end is not a node of the graph.
//	- ErrNoPathFound  if end cannot be reached from start.
//	- ErrBadOption    if an option value is out of range.
//	- ErrNilGraph     if the graph pointer is nil.
package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/wayfinder/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNodeNotFound aliases core.ErrNodeNotFound so callers can match either.
	ErrNodeNotFound = core.ErrNodeNotFound

	// ErrNoPathFound indicates that the search exhausted every reachable node
	// without settling the target.
	ErrNoPathFound = errors.New("dijkstra: no path found")

	// ErrBadOption indicates that MaxCost was negative or NaN, or that
	// InfEdgeThreshold was not strictly positive.
	ErrBadOption = errors.New("dijkstra: invalid option value")

	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")
)

// Result is the flattened outcome of a successful query.
type Result[N comparable] struct {
	Path []N     // start..end inclusive
	Cost float64 // sum of edge weights along Path
}

// Options configures one query.
//
// MaxCost          - nodes reached at a cost above MaxCost are not expanded.
//
//	Must be ≥ 0. Default is +Inf (no cap).
//
// InfEdgeThreshold - edges with weight ≥ this threshold are skipped.
//
//	Must be > 0. Default is +Inf (no edge is impassable).
type Options struct {
	MaxCost          float64
	InfEdgeThreshold float64
}

// Option represents a functional option for configuring a query.
type Option func(*Options)

// WithMaxCost caps exploration at cost c. A target beyond the cap is
// reported as ErrNoPathFound.
func WithMaxCost(c float64) Option {
	return func(o *Options) {
		o.MaxCost = c
	}
}

// WithInfEdgeThreshold marks every edge with weight ≥ t as impassable.
func WithInfEdgeThreshold(t float64) Option {
	return func(o *Options) {
		o.InfEdgeThreshold = t
	}
}

// DefaultOptions returns Options with no cost cap and no impassable edges.
func DefaultOptions() Options {
	return Options{
		MaxCost:          math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}

// validate rejects out-of-range option values.
func (o Options) validate() error {
	if o.MaxCost < 0 || math.IsNaN(o.MaxCost) {
		return fmt.Errorf("%w: MaxCost=%v", ErrBadOption, o.MaxCost)
	}
	if o.InfEdgeThreshold <= 0 || math.IsNaN(o.InfEdgeThreshold) {
		return fmt.Errorf("%w: InfEdgeThreshold=%v", ErrBadOption, o.InfEdgeThreshold)
	}

	return nil
}
