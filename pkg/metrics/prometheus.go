package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	classifications *prometheus.CounterVec
	riskLevels      *prometheus.CounterVec
	errorsTotal     *prometheus.CounterVec
	latency         *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		classifications: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "neowatch_classifications_total",
				Help: "Classifications resolved, by tier method and orbit class",
			},
			[]string{"method", "class"},
		),
		riskLevels: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "neowatch_risk_levels_total",
				Help: "Risk analyses produced, by scope and level",
			},
			[]string{"scope", "level"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "neowatch_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "neowatch_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordClassification records one resolved classification.
func (r *Recorder) RecordClassification(method, class string) {
	r.classifications.WithLabelValues(method, class).Inc()
}

// RecordRiskLevel records one produced risk analysis.
func (r *Recorder) RecordRiskLevel(scope, level string) {
	r.riskLevels.WithLabelValues(scope, level).Inc()
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
