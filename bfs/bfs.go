// Package bfs provides breadth-first search over a core.Graph,
// returning hop distances, parent links, and visit order.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/wayfinder/core"
)

// queueItem pairs a node with its BFS depth.
type queueItem[N comparable, W core.Weight] struct {
	node  *core.Node[N, W]
	depth int
}

// walker encapsulates mutable BFS state.
type walker[N comparable, W core.Weight] struct {
	opts  Options
	ctx   context.Context
	visit func(n N, depth int) error
	queue []queueItem[N, W]
	res   *Result[N]
}

// BFS runs breadth-first search on g starting from start and collects the
// visit order, depths and parents of every reached node.
// Returns ErrGraphNil, core.ErrNodeNotFound, ErrOptionViolation, or the
// context error if ctx is cancelled mid-walk.
func BFS[N comparable, W core.Weight](ctx context.Context, g *core.Graph[N, W], start N, opts ...Option) (*Result[N], error) {
	return Walk(ctx, g, start, nil, opts...)
}

// Walk is BFS with a visitor called for each node as it is dequeued.
// A non-nil error from visit stops the walk and is returned wrapped; the
// partial Result is returned alongside it.
func Walk[N comparable, W core.Weight](
	ctx context.Context,
	g *core.Graph[N, W],
	start N,
	visit func(n N, depth int) error,
	opts ...Option,
) (*Result[N], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	s, err := g.Node(start)
	if err != nil {
		return nil, fmt.Errorf("bfs: start: %w", err)
	}
	if visit == nil {
		visit = func(N, int) error { return nil }
	}

	n := g.NodeCount()
	w := &walker[N, W]{
		opts:  o,
		ctx:   ctx,
		visit: visit,
		queue: make([]queueItem[N, W], 0, n),
		res: &Result[N]{
			Order:  make([]N, 0, n),
			Depth:  make(map[N]int, n),
			Parent: make(map[N]N, n),
		},
	}

	// Seed queue with start node (no parent)
	w.res.Depth[start] = 0
	w.queue = append(w.queue, queueItem[N, W]{node: s})

	return w.res, w.loop()
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[N, W]) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per dequeue)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		data := item.node.Data()
		w.res.Order = append(w.res.Order, data)
		if err := w.visit(data, item.depth); err != nil {
			return fmt.Errorf("bfs: visit error at %v: %w", data, err)
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors applies MaxDepth and weight filtering, then enqueues
// each unseen successor in edge insertion order.
func (w *walker[N, W]) enqueueNeighbors(item queueItem[N, W]) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	from := item.node.Data()
	for _, e := range item.node.Out() {
		if w.opts.SkipZeroWeight && e.Weight() == 0 {
			continue
		}
		to := e.To()
		if _, seen := w.res.Depth[to]; seen {
			continue
		}
		w.res.Depth[to] = next
		w.res.Parent[to] = from
		w.queue = append(w.queue, queueItem[N, W]{node: e.Successor(), depth: next})
	}
}
