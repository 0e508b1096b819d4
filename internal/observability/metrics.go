// Package observability provides Prometheus metrics for monitoring.
package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	// Job metrics
	JobsTotal       *prometheus.CounterVec
	JobDuration     prometheus.Histogram
	ConfidenceLevel prometheus.Histogram

	// Stage metrics
	StageDuration  *prometheus.HistogramVec
	StageFallbacks *prometheus.CounterVec

	// Remote call metrics
	RemoteCallLatency *prometheus.HistogramVec
	RemoteCallErrors  *prometheus.CounterVec
}

// NewMetrics creates a new Metrics instance with all metrics registered.
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = "token_promo_lab"
	}

	return &Metrics{
		// Job metrics
		JobsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "job",
			Name:      "runs_total",
			Help:      "Total number of promo jobs run by data source tag",
		}, []string{"data_source"}),
		JobDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "job",
			Name:      "duration_seconds",
			Help:      "End-to-end promo job duration in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.5, 2, 10),
		}),
		ConfidenceLevel: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "job",
			Name:      "confidence_level",
			Help:      "Confidence level of completed jobs (1-4)",
			Buckets:   []float64{1, 2, 3, 4},
		}),

		// Stage metrics
		StageDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "stage",
			Name:      "duration_seconds",
			Help:      "Per-stage duration in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.1, 2, 10),
		}, []string{"stage"}),
		StageFallbacks: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "stage",
			Name:      "fallbacks_total",
			Help:      "Total number of times a stage used its degraded path",
		}, []string{"stage"}),

		// Remote call metrics
		RemoteCallLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "remote",
			Name:      "call_latency_seconds",
			Help:      "Remote collaborator call latency by target",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 12),
		}, []string{"target"}),
		RemoteCallErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "remote",
			Name:      "call_errors_total",
			Help:      "Total number of remote collaborator call errors by target",
		}, []string{"target"}),
	}
}

// Handler returns an HTTP handler for the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordJob records a completed job.
func (m *Metrics) RecordJob(dataSource string, confidenceLevel int, durationSeconds float64) {
	if m == nil {
		return
	}
	m.JobsTotal.WithLabelValues(dataSource).Inc()
	m.JobDuration.Observe(durationSeconds)
	m.ConfidenceLevel.Observe(float64(confidenceLevel))
}

// RecordStage records a completed stage.
func (m *Metrics) RecordStage(stage string, durationSeconds float64) {
	if m == nil {
		return
	}
	m.StageDuration.WithLabelValues(stage).Observe(durationSeconds)
}

// RecordFallback records a stage taking its degraded path.
func (m *Metrics) RecordFallback(stage string) {
	if m == nil {
		return
	}
	m.StageFallbacks.WithLabelValues(stage).Inc()
}

// RecordRemoteCall records a remote collaborator call.
func (m *Metrics) RecordRemoteCall(target string, seconds float64, err error) {
	if m == nil {
		return
	}
	m.RemoteCallLatency.WithLabelValues(target).Observe(seconds)
	if err != nil {
		m.RemoteCallErrors.WithLabelValues(target).Inc()
	}
}
