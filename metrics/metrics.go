// Package metrics holds the prometheus collectors shared by the analysis
// packages. Collectors are registered on a caller-supplied Registerer so
// independent runs (and tests) never collide on the default registry.
//
// Every method is safe on a nil *Metrics, so instrumented code paths do not
// need to branch on whether metrics are enabled.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hopreach"

// Metrics groups the collectors for one analysis run.
type Metrics struct {
	// Traversals counts bounded reachability searches, by analysis.
	Traversals *prometheus.CounterVec

	// VerticesVisited tracks |reach| per traversal.
	VerticesVisited prometheus.Histogram

	// TraversalDuration tracks wall time per traversal.
	TraversalDuration prometheus.Histogram

	// Batches counts processed edge batches, by mode (reset|cumulative).
	Batches *prometheus.CounterVec

	// RecordsSkipped counts malformed input lines.
	RecordsSkipped prometheus.Counter

	// GraphVertices reports the vertex count of the last loaded graph.
	GraphVertices prometheus.Gauge
}

// New creates the collectors and registers them on reg. A nil reg returns
// collectors that are usable but not exported anywhere.
// Registering twice on the same Registerer panics, as promauto does.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		Traversals: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "traversals_total",
			Help:      "Bounded reachability searches by analysis",
		}, []string{"analysis"}),
		VerticesVisited: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "traversal_vertices",
			Help:      "Vertices reached per traversal",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 12), // 1 to ~4M
		}),
		TraversalDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "traversal_duration_seconds",
			Help:      "Traversal duration in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 12), // 10µs to ~40s
		}),
		Batches: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "batches_total",
			Help:      "Edge batches processed by mode",
		}, []string{"mode"}),
		RecordsSkipped: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_skipped_total",
			Help:      "Input lines skipped for having a token count other than two",
		}),
		GraphVertices: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "graph_vertices",
			Help:      "Vertex count of the most recently frozen graph",
		}),
	}
}

// ObserveTraversal records one search of the named analysis.
func (m *Metrics) ObserveTraversal(analysis string, visited int, took time.Duration) {
	if m == nil {
		return
	}
	m.Traversals.WithLabelValues(analysis).Inc()
	m.VerticesVisited.Observe(float64(visited))
	m.TraversalDuration.Observe(took.Seconds())
}

// ObserveBatch records one processed batch.
func (m *Metrics) ObserveBatch(reset bool) {
	if m == nil {
		return
	}
	mode := "cumulative"
	if reset {
		mode = "reset"
	}
	m.Batches.WithLabelValues(mode).Inc()
}

// AddSkipped adds n malformed lines.
func (m *Metrics) AddSkipped(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.RecordsSkipped.Add(float64(n))
}

// SetGraphVertices records the size of a frozen graph.
func (m *Metrics) SetGraphVertices(n int) {
	if m == nil {
		return
	}
	m.GraphVertices.Set(float64(n))
}
