package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveRun("owl", "clean")
	m.ObserveRun("owl", "clean")
	m.ObserveDiagnostics("Rhombuses", 3)
	m.ObserveDiagnostics("owl:oneOf", 0)
	m.ObservePublish(errors.New("down"))
	m.ObserveStage("enrich", time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RunsTotal.WithLabelValues("owl", "clean")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.Diagnostics.WithLabelValues("Rhombuses")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PublishTotal.WithLabelValues("error")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.StageLatency))
}

func TestMetrics_NilReceiver(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveRun("rdf", "error")
		m.ObserveStage("typing", time.Second)
		m.ObserveDiagnostics("x", 1)
		m.ObservePublish(nil)
		m.ObserveHTTP("GET", "/health", "200", time.Second)
	})
}
