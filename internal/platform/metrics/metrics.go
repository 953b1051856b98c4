// Package metrics exposes the service's Prometheus instruments.
package metrics

import (
	"net/http"
	"time"

	"github.com/SscSPs/surety_risk_app/internal/core/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "surety_risk"

// Recorder owns every collector on one registry.
type Recorder struct {
	gatherer prometheus.Gatherer

	AssessmentsTotal   *prometheus.CounterVec
	CollateralTotal    *prometheus.CounterVec
	FinalScore         prometheus.Histogram
	BatchSize          prometheus.Histogram
	HTTPRequestLatency *prometheus.HistogramVec
}

// NewRecorder registers the collectors on a fresh registry together with the
// Go runtime and process collectors.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	return NewRecorderWith(reg, reg)
}

// NewRecorderWith registers the collectors on reg and serves them from g.
func NewRecorderWith(reg prometheus.Registerer, g prometheus.Gatherer) *Recorder {
	factory := promauto.With(reg)
	return &Recorder{
		gatherer: g,
		AssessmentsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "assessments_total",
				Help:      "Total number of assessments by decision",
			},
			[]string{"decision"},
		),
		CollateralTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "collateral_decisions_total",
				Help:      "Total number of collateral decisions by status",
			},
			[]string{"status"},
		),
		FinalScore: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "final_score",
				Help:      "Distribution of final assessment scores",
				Buckets:   []float64{20, 40, 50, 60, 70, 78, 85, 90, 100},
			},
		),
		BatchSize: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "batch_size",
				Help:      "Number of inputs per batch request",
				Buckets:   prometheus.ExponentialBuckets(1, 2, 8),
			},
		),
		HTTPRequestLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
	}
}

// ObserveAssessment records one completed assessment.
func (r *Recorder) ObserveAssessment(result domain.AssessmentResult) {
	decision := "rejected"
	switch {
	case result.IsHighTier:
		decision = "approved_high_tier"
	case result.IsApproved:
		decision = "approved"
	}
	r.AssessmentsTotal.WithLabelValues(decision).Inc()
	r.CollateralTotal.WithLabelValues(string(result.Collateral.Status)).Inc()
	r.FinalScore.Observe(result.FinalScore)
}

// ObserveBatch records the size of a batch request.
func (r *Recorder) ObserveBatch(size int) {
	r.BatchSize.Observe(float64(size))
}

// ObserveHTTPRequest records one HTTP request.
func (r *Recorder) ObserveHTTPRequest(method, route, status string, elapsed time.Duration) {
	r.HTTPRequestLatency.WithLabelValues(method, route, status).Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})
}
