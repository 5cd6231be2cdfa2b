// Package dijkstra implements Dijkstra's shortest-path search on core.Graph.
//
// The search keeps every candidate path in an arena of search nodes whose
// predecessor link is an arena index, so reconstruction never allocates
// per hop and the chain cannot outlive the query. The priority queue orders
// arena indices by accumulated cost, breaking ties by push order; the
// settled set is a hashmap.ChainedMap built over the graph's own hasher.
//
// Complexity:
//
//   - Time:  O((V + E) log E), lazy decrease-key pushes up to E entries.
//   - Space: O(V + E) for the arena, the heap and the settled set.
package dijkstra

import (
	"container/heap"
	"fmt"
	"slices"

	"github.com/katalvlaran/wayfinder/core"
	"github.com/katalvlaran/wayfinder/hashmap"
)

// ShortestPath returns the minimal-cost path from start to end and its cost.
//
// Validation order:
//  1. g must be non-nil (ErrNilGraph).
//  2. Options must be in range (ErrBadOption).
//  3. Both endpoints must exist (ErrNodeNotFound).
//
// start == end yields Path=[start], Cost=0 without searching.
// Returns ErrNoPathFound if end is unreachable under the given options.
func ShortestPath[N comparable, W core.Weight](g *core.Graph[N, W], start, end N, opts ...Option) (*Result[N], error) {
	r, err := newRunner(g, start, opts)
	if err != nil {
		return nil, err
	}
	if !g.HasNode(end) {
		return nil, fmt.Errorf("%w: end %v", ErrNodeNotFound, end)
	}

	// Trivial case: no edge is traversed.
	if start == end {
		return &Result[N]{Path: []N{start}, Cost: 0}, nil
	}

	idx, ok := r.run(end, true)
	if !ok {
		return nil, fmt.Errorf("%w: %v→%v", ErrNoPathFound, start, end)
	}

	return &Result[N]{Path: r.path(idx), Cost: r.arena[idx].cost}, nil
}

// PathData returns the node sequence of the shortest path, endpoints included.
func PathData[N comparable, W core.Weight](g *core.Graph[N, W], start, end N, opts ...Option) ([]N, error) {
	res, err := ShortestPath(g, start, end, opts...)
	if err != nil {
		return nil, err
	}

	return res.Path, nil
}

// PathCost returns the total weight of the shortest path.
func PathCost[N comparable, W core.Weight](g *core.Graph[N, W], start, end N, opts ...Option) (float64, error) {
	res, err := ShortestPath(g, start, end, opts...)
	if err != nil {
		return 0, err
	}

	return res.Cost, nil
}

// Costs runs the search to exhaustion and returns the settled cost of every
// node reachable from start, start itself included at cost 0.
func Costs[N comparable, W core.Weight](g *core.Graph[N, W], start N, opts ...Option) (map[N]float64, error) {
	r, err := newRunner(g, start, opts)
	if err != nil {
		return nil, err
	}

	var zero N
	r.run(zero, false)

	out := make(map[N]float64, r.settled.Size())
	r.settled.Range(func(n N, idx int) bool {
		out[n] = r.arena[idx].cost
		return true
	})

	return out, nil
}

// searchNode is one candidate path: the node reached, the accumulated cost
// and the arena index of the predecessor (-1 for the start).
type searchNode[N comparable, W core.Weight] struct {
	node *core.Node[N, W]
	cost float64
	prev int
}

// runner holds the mutable state for a single query.
type runner[N comparable, W core.Weight] struct {
	g       *core.Graph[N, W]
	options Options

	arena   []searchNode[N, W]
	settled *hashmap.ChainedMap[N, int] // node data → arena index of its settled search node
	pq      indexPQ
}

// newRunner validates inputs and seeds the queue with the start node.
func newRunner[N comparable, W core.Weight](g *core.Graph[N, W], start N, opts []Option) (*runner[N, W], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	s, err := g.Node(start)
	if err != nil {
		return nil, fmt.Errorf("dijkstra: start: %w", err)
	}

	r := &runner[N, W]{
		g:       g,
		options: cfg,
		arena:   make([]searchNode[N, W], 0, g.NodeCount()),
		settled: hashmap.New[N, int](g.Hasher(), hashmap.WithCapacity(g.NodeCount()+1)),
	}
	r.pq.cost = func(i int) float64 { return r.arena[i].cost }
	r.push(s, 0, -1)

	return r, nil
}

// push appends a search node to the arena and queues its index.
func (r *runner[N, W]) push(n *core.Node[N, W], cost float64, prev int) {
	r.arena = append(r.arena, searchNode[N, W]{node: n, cost: cost, prev: prev})
	heap.Push(&r.pq, len(r.arena)-1)
}

// settledAt reports whether data is settled at a cost ≤ cost.
func (r *runner[N, W]) settledAt(data N, cost float64) bool {
	idx, err := r.settled.Get(data)

	return err == nil && r.arena[idx].cost <= cost
}

// run pops search nodes until the target is reached (when stopAtTarget) or
// the queue is empty. It returns the arena index of the target.
func (r *runner[N, W]) run(target N, stopAtTarget bool) (int, bool) {
	for r.pq.Len() > 0 {
		idx := heap.Pop(&r.pq).(int)
		cur := r.arena[idx]
		data := cur.node.Data()

		if stopAtTarget && data == target {
			return idx, true
		}

		// Dominated: a path at least as cheap was already settled.
		if r.settledAt(data, cur.cost) {
			continue
		}

		// Pops arrive in non-decreasing cost order, so a node that is not
		// dominated has never been settled, and its data came from the graph
		// index, so it is not nil. Put failing means the heap order broke.
		if err := r.settled.Put(data, idx); err != nil {
			panic(fmt.Sprintf("dijkstra: settle %v: %v", data, err))
		}

		for _, e := range cur.node.Out() {
			w := float64(e.Weight())
			if w >= r.options.InfEdgeThreshold {
				continue
			}
			nc := cur.cost + w
			if nc > r.options.MaxCost || r.settledAt(e.To(), nc) {
				continue
			}
			r.push(e.Successor(), nc, idx)
		}
	}

	return -1, false
}

// path walks predecessor indices from idx back to the start, then reverses.
func (r *runner[N, W]) path(idx int) []N {
	var out []N
	for i := idx; i >= 0; i = r.arena[i].prev {
		out = append(out, r.arena[i].node.Data())
	}
	slices.Reverse(out)

	return out
}

// indexPQ is a min-heap of arena indices ordered by accumulated cost.
// Arena indices grow with push order, so the smaller index wins ties.
type indexPQ struct {
	items []int
	cost  func(i int) float64
}

// Len returns the number of queued indices.
func (pq indexPQ) Len() int { return len(pq.items) }

// Less orders by cost, then by push order.
func (pq indexPQ) Less(i, j int) bool {
	ci, cj := pq.cost(pq.items[i]), pq.cost(pq.items[j])
	if ci != cj {
		return ci < cj
	}

	return pq.items[i] < pq.items[j]
}

// Swap swaps two queued indices.
func (pq indexPQ) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

// Push is called by heap.Push; x must be an int.
func (pq *indexPQ) Push(x any) { pq.items = append(pq.items, x.(int)) }

// Pop is called by heap.Pop and returns the last element.
func (pq *indexPQ) Pop() any {
	old := pq.items
	n := len(old)
	item := old[n-1]
	pq.items = old[:n-1]

	return item
}
