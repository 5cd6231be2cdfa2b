// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Graph.
package bfs

import (
	"errors"
	"fmt"
	"slices"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNotReached is returned by PathTo for nodes outside the visited set.
	ErrNotReached = errors.New("bfs: node not reached")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds traversal limits.
type Options struct {
	// MaxDepth, if > 0, stops exploring beyond this many hops.
	// A value of 0 disables any depth limit.
	MaxDepth int

	// SkipZeroWeight ignores edges whose weight is zero.
	SkipZeroWeight bool

	// internal error recorded during option parsing
	err error
}

// WithMaxDepth stops the search at the given hop count (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithSkipZeroWeight treats zero-weight edges as absent.
func WithSkipZeroWeight() Option {
	return func(o *Options) {
		o.SkipZeroWeight = true
	}
}

// Result holds the outcome of a traversal:
//   - Order: nodes visited, in visit sequence.
//   - Depth: hop count from the start for every visited node.
//   - Parent: BFS-tree predecessor for every visited node except the start.
type Result[N comparable] struct {
	Order  []N
	Depth  map[N]int
	Parent map[N]N
}

// Reached reports whether n was visited.
func (r *Result[N]) Reached(n N) bool {
	_, ok := r.Depth[n]

	return ok
}

// PathTo reconstructs the fewest-hop path from the start to dest.
// Returns ErrNotReached if dest was not visited.
func (r *Result[N]) PathTo(dest N) ([]N, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w: %v", ErrNotReached, dest)
	}
	path := []N{dest}
	for cur := dest; ; {
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	slices.Reverse(path)

	return path, nil
}
