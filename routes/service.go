// Package routes answers travel-time questions over a named location graph.
//
// Service owns one core.Graph[string,float64] and guards it with a
// read-write lock: Load swaps in a freshly built graph under the write lock,
// every query holds the read lock for its whole duration. Queries delegate
// to dijkstra for cost-optimal routes and to bfs for hop-bounded
// reachability.
package routes

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/wayfinder/bfs"
	"github.com/katalvlaran/wayfinder/core"
	"github.com/katalvlaran/wayfinder/dijkstra"
	"github.com/katalvlaran/wayfinder/internal/loader"
)

// Route is a cost-optimal path between two locations.
type Route struct {
	Path  []string  `json:"path"`
	Times []float64 `json:"times"` // per-hop weights, len(Path)-1 entries
	Cost  float64   `json:"cost"`
}

// Destination is the answer to a furthest-destination query.
type Destination struct {
	Location string   `json:"location"`
	Cost     float64  `json:"cost"`
	Path     []string `json:"path"`
}

// Hop is one location reached by a bounded reachability query.
type Hop struct {
	Location string `json:"location"`
	Hops     int    `json:"hops"`
}

// Stats summarises the loaded graph.
type Stats struct {
	Locations     int       `json:"locations"`
	Connections   int       `json:"connections"`
	IndexCapacity int       `json:"index_capacity"`
	Source        string    `json:"source"`
	LoadedAt      time.Time `json:"loaded_at"`
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger; the default is logrus.StandardLogger().
func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithMetrics enables Prometheus reporting.
func WithMetrics(m *Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithNodeCapacity presizes the location index of every loaded graph.
func WithNodeCapacity(n int) Option {
	return func(s *Service) { s.capacity = n }
}

// Service is safe for concurrent use.
type Service struct {
	log      logrus.FieldLogger
	metrics  *Metrics
	capacity int

	mu       sync.RWMutex
	g        *core.Graph[string, float64]
	source   string
	loadedAt time.Time
}

// New returns a Service holding an empty graph.
func New(opts ...Option) *Service {
	s := &Service{log: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(s)
	}
	s.g = s.newGraph()

	return s
}

func (s *Service) newGraph() *core.Graph[string, float64] {
	return core.NewStringGraph[float64](core.WithNodeCapacity(s.capacity))
}

// Load replaces the graph with the edges of src.
//
// Every endpoint is inserted as a node before its edge; repeated pairs keep
// the last weight. The new graph is built off to the side and swapped in
// only on success, so a failing source leaves the previous graph serving.
func (s *Service) Load(ctx context.Context, src loader.Source) (Stats, error) {
	if src == nil {
		return Stats{}, ErrNilSource
	}
	start := time.Now()
	log := s.log.WithField("source", src.Describe())

	edges, err := src.Edges(ctx)
	if err == nil {
		var g *core.Graph[string, float64]
		if g, err = s.build(edges); err == nil {
			s.mu.Lock()
			s.g, s.source, s.loadedAt = g, src.Describe(), time.Now()
			s.mu.Unlock()
		}
	}
	if err != nil {
		s.metrics.observeLoad(Stats{}, err)
		log.WithError(err).Error("graph load failed")
		return Stats{}, fmt.Errorf("routes: load %s: %w", src.Describe(), err)
	}

	stats := s.Stats()
	s.metrics.observeLoad(stats, nil)
	log.WithFields(logrus.Fields{
		"locations":   stats.Locations,
		"connections": stats.Connections,
		"elapsed":     time.Since(start).String(),
	}).Info("graph loaded")

	return stats, nil
}

func (s *Service) build(edges []loader.Edge) (*core.Graph[string, float64], error) {
	g := s.newGraph()
	for _, e := range edges {
		if err := g.AddNode(e.From); err != nil {
			return nil, err
		}
		if err := g.AddNode(e.To); err != nil {
			return nil, err
		}
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Stats reports the size of the current graph and where it came from.
func (s *Service) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	gs := s.g.Stats()

	return Stats{
		Locations:     gs.NodeCount,
		Connections:   gs.EdgeCount,
		IndexCapacity: gs.IndexCapacity,
		Source:        s.source,
		LoadedAt:      s.loadedAt,
	}
}

// Locations lists every location in insertion order.
func (s *Service) Locations() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.g.Nodes()
}

// Edges lists every connection, grouped by origin in insertion order.
func (s *Service) Edges() []loader.Edge {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := s.g.Edges()
	out := make([]loader.Edge, len(all))
	for i, e := range all {
		out[i] = loader.Edge{From: e.From(), To: e.To(), Weight: e.Weight()}
	}

	return out
}

// Route returns the cost-optimal path from start to end with per-hop times.
// start == end yields a single-location path with no times and zero cost.
func (s *Service) Route(start, end string) (r *Route, err error) {
	defer s.observe("route", time.Now(), &err)

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.route(start, end)
}

// route runs under the read lock.
func (s *Service) route(start, end string) (*Route, error) {
	res, err := dijkstra.ShortestPath(s.g, start, end)
	if err != nil {
		return nil, err
	}

	times := make([]float64, 0, len(res.Path)-1)
	for i := 1; i < len(res.Path); i++ {
		w, err := s.g.Edge(res.Path[i-1], res.Path[i])
		if err != nil {
			return nil, fmt.Errorf("routes: hop %s→%s: %w", res.Path[i-1], res.Path[i], err)
		}
		times = append(times, w)
	}

	return &Route{Path: res.Path, Times: times, Cost: res.Cost}, nil
}

// PathLocations returns the locations along the cheapest route, endpoints included.
func (s *Service) PathLocations(start, end string) ([]string, error) {
	r, err := s.Route(start, end)
	if err != nil {
		return nil, err
	}

	return r.Path, nil
}

// PathTimes returns the travel time of each hop along the cheapest route.
func (s *Service) PathTimes(start, end string) ([]float64, error) {
	r, err := s.Route(start, end)
	if err != nil {
		return nil, err
	}

	return r.Times, nil
}

// PathCost returns the total travel time of the cheapest route.
func (s *Service) PathCost(start, end string) (float64, error) {
	r, err := s.Route(start, end)
	if err != nil {
		return 0, err
	}

	return r.Cost, nil
}

// Furthest returns the location whose cheapest route from start costs the
// most, together with that route. start itself never qualifies. Ties go to
// the location listed first by Locations.
//
// Returns ErrNodeNotFound for an unknown start and ErrNoReachableDestination
// when nothing else is reachable.
func (s *Service) Furthest(start string) (d *Destination, err error) {
	defer s.observe("furthest", time.Now(), &err)

	s.mu.RLock()
	defer s.mu.RUnlock()

	costs, err := dijkstra.Costs(s.g, start)
	if err != nil {
		return nil, err
	}

	var (
		best     string
		bestCost = math.Inf(-1)
		found    bool
	)
	for _, n := range s.g.Nodes() {
		c, ok := costs[n]
		if !ok || n == start {
			continue
		}
		if c > bestCost {
			best, bestCost, found = n, c, true
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: from %s", ErrNoReachableDestination, start)
	}

	r, err := s.route(start, best)
	if err != nil {
		return nil, err
	}

	return &Destination{Location: best, Cost: r.Cost, Path: r.Path}, nil
}

// Reachable lists locations reachable from start within maxHops edges
// (0 = unlimited), in breadth-first order, start first.
func (s *Service) Reachable(ctx context.Context, start string, maxHops int) (hops []Hop, err error) {
	defer s.observe("reachable", time.Now(), &err)

	s.mu.RLock()
	defer s.mu.RUnlock()

	res, err := bfs.BFS(ctx, s.g, start, bfs.WithMaxDepth(maxHops))
	if err != nil {
		return nil, err
	}
	hops = make([]Hop, len(res.Order))
	for i, n := range res.Order {
		hops[i] = Hop{Location: n, Hops: res.Depth[n]}
	}

	return hops, nil
}

func (s *Service) observe(op string, started time.Time, err *error) {
	s.metrics.observeQuery(op, time.Since(started).Seconds(), *err)
}
