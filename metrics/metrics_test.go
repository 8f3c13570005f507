package metrics_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hopreach/metrics"
)

func TestMetrics_Record(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.ObserveTraversal("profile", 10, time.Millisecond)
	m.ObserveTraversal("profile", 20, time.Millisecond)
	m.ObserveTraversal("overlap", 3, time.Millisecond)
	m.ObserveBatch(true)
	m.ObserveBatch(false)
	m.ObserveBatch(false)
	m.AddSkipped(4)
	m.AddSkipped(-1)
	m.SetGraphVertices(42)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Traversals.WithLabelValues("profile")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Traversals.WithLabelValues("overlap")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Batches.WithLabelValues("reset")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Batches.WithLabelValues("cumulative")))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.RecordsSkipped))
	assert.Equal(t, 42.0, testutil.ToFloat64(m.GraphVertices))

	n, err := testutil.GatherAndCount(reg, "hopreach_traversal_vertices")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *metrics.Metrics
	assert.NotPanics(t, func() {
		m.ObserveTraversal("profile", 1, time.Second)
		m.ObserveBatch(true)
		m.AddSkipped(3)
		m.SetGraphVertices(1)
	})
}

func TestMetrics_UnregisteredIsUsable(t *testing.T) {
	m := metrics.New(nil)
	m.AddSkipped(2)
	assert.Equal(t, 2.0, testutil.ToFloat64(m.RecordsSkipped))
}
