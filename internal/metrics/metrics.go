package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "sketchont"

type Metrics struct {
	RunsTotal    *prometheus.CounterVec
	StageLatency *prometheus.HistogramVec
	Diagnostics  *prometheus.CounterVec
	PublishTotal *prometheus.CounterVec
	HTTPRequests *prometheus.CounterVec
	HTTPLatency  *prometheus.HistogramVec
}

func New(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		RunsTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "resolution_runs_total",
				Help:      "Resolution runs by mode and outcome",
			},
			[]string{"mode", "status"}, // status: clean/diagnostics/error
		),
		StageLatency: promauto.With(reg).NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "stage_duration_seconds",
				Help:      "Duration of each resolution stage",
				Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1},
			},
			[]string{"stage"},
		),
		Diagnostics: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "diagnostics_total",
				Help:      "Diagnostics reported to diagram authors, by check",
			},
			[]string{"check"},
		),
		PublishTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "publish_total",
				Help:      "Resolved ontologies written to the graph store",
			},
			[]string{"status"},
		),
		HTTPRequests: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "HTTP requests by route and status code",
			},
			[]string{"method", "route", "code"},
		),
		HTTPLatency: promauto.With(reg).NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}
}

// The observe helpers accept a nil receiver so callers may run unmetered.

func (m *Metrics) ObserveStage(stage string, d time.Duration) {
	if m == nil {
		return
	}
	m.StageLatency.WithLabelValues(stage).Observe(d.Seconds())
}

func (m *Metrics) ObserveRun(mode, status string) {
	if m == nil {
		return
	}
	m.RunsTotal.WithLabelValues(mode, status).Inc()
}

func (m *Metrics) ObserveDiagnostics(check string, n int) {
	if m == nil || n == 0 {
		return
	}
	m.Diagnostics.WithLabelValues(check).Add(float64(n))
}

func (m *Metrics) ObservePublish(err error) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.PublishTotal.WithLabelValues(status).Inc()
}

func (m *Metrics) ObserveHTTP(method, route, code string, d time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, route, code).Inc()
	m.HTTPLatency.WithLabelValues(method, route).Observe(d.Seconds())
}
