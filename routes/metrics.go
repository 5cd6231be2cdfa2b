package routes

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors a Service reports to.
type Metrics struct {
	queries  *prometheus.CounterVec
	latency  *prometheus.HistogramVec
	loads    *prometheus.CounterVec
	nodes    prometheus.Gauge
	edges    prometheus.Gauge
	capacity prometheus.Gauge
}

// NewMetrics registers the wayfinder collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		queries: f.NewCounterVec(prometheus.CounterOpts{
			Name: "wayfinder_queries_total",
			Help: "Route queries by operation and result",
		}, []string{"op", "result"}),
		latency: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "wayfinder_query_duration_seconds",
			Help:    "Route query duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
		}, []string{"op"}),
		loads: f.NewCounterVec(prometheus.CounterOpts{
			Name: "wayfinder_graph_loads_total",
			Help: "Graph loads by result",
		}, []string{"result"}),
		nodes: f.NewGauge(prometheus.GaugeOpts{
			Name: "wayfinder_graph_nodes",
			Help: "Locations in the current graph",
		}),
		edges: f.NewGauge(prometheus.GaugeOpts{
			Name: "wayfinder_graph_edges",
			Help: "Connections in the current graph",
		}),
		capacity: f.NewGauge(prometheus.GaugeOpts{
			Name: "wayfinder_graph_index_capacity",
			Help: "Bucket count of the location index",
		}),
	}
}

func (m *Metrics) observeQuery(op string, seconds float64, err error) {
	if m == nil {
		return
	}
	m.queries.WithLabelValues(op, resultLabel(err)).Inc()
	m.latency.WithLabelValues(op).Observe(seconds)
}

func (m *Metrics) observeLoad(stats Stats, err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.loads.WithLabelValues("error").Inc()
		return
	}
	m.loads.WithLabelValues("ok").Inc()
	m.nodes.Set(float64(stats.Locations))
	m.edges.Set(float64(stats.Connections))
	m.capacity.Set(float64(stats.IndexCapacity))
}
