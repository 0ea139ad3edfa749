// Package observability groups the Prometheus instruments exported by the
// service and the /metrics handler backing them.
package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups all Prometheus instruments used by the service.
type Metrics struct {
	TurnsTotal      *prometheus.CounterVec
	StageErrors     *prometheus.CounterVec
	AnswerLatency   prometheus.Histogram
	TrackedSessions prometheus.Gauge
}

// NewMetrics registers the service instruments under the given namespace.
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		TurnsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "turns_total",
			Help:      "Completed answer turns by outcome.",
		}, []string{"outcome"}),
		StageErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stage_errors_total",
			Help:      "Pipeline stage failures by stage.",
		}, []string{"stage"}),
		AnswerLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "answer_latency_seconds",
			Help:      "End-to-end latency of one answer run in seconds.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
		}),
		TrackedSessions: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "tracked_sessions",
			Help:      "Number of sessions currently held in the session store.",
		}),
	}
}

// ObserveAnswer records one completed answer run.
func (m *Metrics) ObserveAnswer(outcome string, d time.Duration) {
	m.TurnsTotal.WithLabelValues(outcome).Inc()
	m.AnswerLatency.Observe(d.Seconds())
}

// IncStageError counts a pipeline stage failure.
func (m *Metrics) IncStageError(stage string) {
	m.StageErrors.WithLabelValues(stage).Inc()
}

// MetricsHandler exposes the default Prometheus registry.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
