package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/surety_risk_app/internal/core/domain"
	"github.com/SscSPs/surety_risk_app/internal/platform/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecorder() *metrics.Recorder {
	reg := prometheus.NewRegistry()
	return metrics.NewRecorderWith(reg, reg)
}

func TestObserveAssessment_CountsDecisions(t *testing.T) {
	r := newRecorder()

	r.ObserveAssessment(domain.AssessmentResult{FinalScore: 80, IsApproved: true, IsHighTier: true,
		Collateral: domain.CollateralDecision{Status: domain.CollateralCashZero}})
	r.ObserveAssessment(domain.AssessmentResult{FinalScore: 65, IsApproved: true,
		Collateral: domain.CollateralDecision{Status: domain.CollateralTier2Cash5}})
	r.ObserveAssessment(domain.AssessmentResult{FinalScore: 10,
		Collateral: domain.CollateralDecision{Status: domain.CollateralRejected}})
	r.ObserveAssessment(domain.AssessmentResult{FinalScore: 12,
		Collateral: domain.CollateralDecision{Status: domain.CollateralRejected}})

	assert.Equal(t, 1.0, testutil.ToFloat64(r.AssessmentsTotal.WithLabelValues("approved_high_tier")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.AssessmentsTotal.WithLabelValues("approved")))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.AssessmentsTotal.WithLabelValues("rejected")))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.CollateralTotal.WithLabelValues(string(domain.CollateralRejected))))
	assert.Equal(t, 1, testutil.CollectAndCount(r.FinalScore))
}

func TestHandler_ExposesMetrics(t *testing.T) {
	r := newRecorder()
	r.ObserveBatch(3)
	r.ObserveHTTPRequest(http.MethodPost, "/api/v1/assessments", "200", 15*time.Millisecond)

	w := httptest.NewRecorder()
	r.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "surety_risk_batch_size_count 1")
	assert.Contains(t, body, `surety_risk_http_request_duration_seconds_count{method="POST",route="/api/v1/assessments",status="200"} 1`)
}

func TestNewRecorder_IncludesRuntimeCollectors(t *testing.T) {
	r := metrics.NewRecorder()

	w := httptest.NewRecorder()
	r.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Contains(t, w.Body.String(), "go_goroutines")
}
