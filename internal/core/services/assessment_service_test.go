package services_test

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/surety_risk_app/internal/apperrors"
	"github.com/SscSPs/surety_risk_app/internal/core/domain"
	"github.com/SscSPs/surety_risk_app/internal/core/policy"
	portssvc "github.com/SscSPs/surety_risk_app/internal/core/ports/services"
	"github.com/SscSPs/surety_risk_app/internal/core/scoring"
	"github.com/SscSPs/surety_risk_app/internal/core/services"
	"github.com/SscSPs/surety_risk_app/internal/middleware"
	"github.com/SscSPs/surety_risk_app/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// MockAssessmentRecorder is a mock type for the AssessmentRecorder interface
type MockAssessmentRecorder struct {
	mock.Mock
	mu sync.Mutex
}

func (m *MockAssessmentRecorder) ObserveAssessment(result domain.AssessmentResult) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Called(result)
}

func (m *MockAssessmentRecorder) ObserveBatch(size int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Called(size)
}

// --- Test Suite Setup ---

type AssessmentServiceTestSuite struct {
	suite.Suite
	recorder *MockAssessmentRecorder
	spans    *tracetest.SpanRecorder
	now      time.Time
	engine   *scoring.Engine
}

func (s *AssessmentServiceTestSuite) SetupTest() {
	s.recorder = new(MockAssessmentRecorder)
	s.spans = tracetest.NewSpanRecorder()
	s.now = time.Date(2026, 3, 2, 9, 30, 0, 0, time.FixedZone("WIB", 7*3600))
	s.engine = scoring.NewEngine(policy.Default())
}

func (s *AssessmentServiceTestSuite) newService(options ...services.AssessmentOption) portssvc.AssessmentSvcFacade {
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(s.spans))
	base := []services.AssessmentOption{
		services.WithRecorder(s.recorder),
		services.WithTracerProvider(tp),
		services.WithClock(func() time.Time { return s.now }),
	}
	return services.NewAssessmentService(s.engine, append(base, options...)...)
}

func TestAssessmentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AssessmentServiceTestSuite))
}

func answered(section domain.Section, g domain.Grade) domain.AnswerSet {
	out := domain.AnswerSet{}
	for _, q := range domain.Questions(section) {
		out[q.Key] = g
	}
	return out
}

func sampleInput(name string, g domain.Grade) domain.AssessmentInput {
	return domain.AssessmentInput{
		PriorYear:   domain.FinancialStatement{domain.CashAndEquivalents: 100_000_000},
		CurrentYear: domain.FinancialStatement{domain.CashAndEquivalents: 130_000_000},
		Character:   answered(domain.SectionCharacter, g),
		Capital:     answered(domain.SectionCapital, g),
		Condition:   answered(domain.SectionCondition, g),
		Profile: domain.ApplicantProfile{
			Name:            name,
			BondType:        domain.BondPerformance,
			EmployerType:    domain.EmployerPrivate,
			GuaranteeValue:  250_000_000,
			CoveragePercent: domain.DefaultCoveragePercent,
		},
	}
}

// --- Test Cases ---

func (s *AssessmentServiceTestSuite) TestAssess_Success() {
	svc := s.newService()
	in := sampleInput("PT Maju Jaya", domain.GradeA)
	want := s.engine.Assess(in)
	s.recorder.On("ObserveAssessment", want).Return().Once()

	got, err := svc.Assess(context.Background(), in)

	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.NotEqual("00000000-0000-0000-0000-000000000000", got.ID.String())
	s.Equal(s.now.UTC(), got.AssessedAt)
	s.Equal("PT Maju Jaya", got.Applicant)
	s.Equal(want, got.Result)
	s.recorder.AssertExpectations(s.T())

	ended := s.spans.Ended()
	s.Require().Len(ended, 1)
	s.Equal("assessment.assess", ended[0].Name())
}

func (s *AssessmentServiceTestSuite) TestAssess_CancelledContext() {
	svc := s.newService()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := svc.Assess(ctx, sampleInput("x", domain.GradeA))

	s.Nil(got)
	s.ErrorIs(err, context.Canceled)
	s.recorder.AssertNotCalled(s.T(), "ObserveAssessment", mock.Anything)
}

func (s *AssessmentServiceTestSuite) TestAssess_LogsTraceID() {
	svc := s.newService()
	s.recorder.On("ObserveAssessment", mock.Anything).Return()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	ctx := middleware.WithLogger(context.Background(), logger)

	_, err := svc.Assess(ctx, sampleInput("x", domain.GradeB))

	s.Require().NoError(err)
	s.Require().Len(s.spans.Ended(), 1)
	traceID := s.spans.Ended()[0].SpanContext().TraceID().String()
	s.Contains(buf.String(), `"trace_id":"`+traceID+`"`)
	s.Contains(buf.String(), "Assessment completed")
}

func (s *AssessmentServiceTestSuite) TestAssessBatch_KeepsInputOrder() {
	svc := s.newService(services.WithBatchLimits(10, 3))
	names := []string{"a", "b", "c", "d", "e", "f", "g"}
	grades := []domain.Grade{domain.GradeA, domain.GradeB, domain.GradeC}
	inputs := make([]domain.AssessmentInput, len(names))
	for i, n := range names {
		inputs[i] = sampleInput(n, grades[i%len(grades)])
	}
	s.recorder.On("ObserveAssessment", mock.Anything).Return().Times(len(inputs))
	s.recorder.On("ObserveBatch", len(inputs)).Return().Once()

	got, err := svc.AssessBatch(context.Background(), inputs)

	s.Require().NoError(err)
	s.Require().Len(got, len(inputs))
	for i, a := range got {
		s.Equal(names[i], a.Applicant)
		s.Equal(s.engine.Assess(inputs[i]), a.Result)
	}
	s.recorder.AssertExpectations(s.T())
}

func (s *AssessmentServiceTestSuite) TestAssessBatch_Limits() {
	svc := s.newService(services.WithBatchLimits(2, 1))

	_, err := svc.AssessBatch(context.Background(), nil)
	s.ErrorIs(err, apperrors.ErrValidation)

	inputs := []domain.AssessmentInput{sampleInput("a", domain.GradeA), sampleInput("b", domain.GradeA), sampleInput("c", domain.GradeA)}
	_, err = svc.AssessBatch(context.Background(), inputs)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.Contains(err.Error(), "exceeds the limit of 2")

	s.recorder.AssertNotCalled(s.T(), "ObserveBatch", mock.Anything)
}

func (s *AssessmentServiceTestSuite) TestAssessBatch_CancelledContext() {
	svc := s.newService()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := svc.AssessBatch(ctx, []domain.AssessmentInput{sampleInput("a", domain.GradeA)})

	s.Nil(got)
	s.ErrorIs(err, context.Canceled)
	s.recorder.AssertNotCalled(s.T(), "ObserveBatch", mock.Anything)
}

func (s *AssessmentServiceTestSuite) TestReviewFinancials() {
	svc := s.newService()
	prior := domain.FinancialStatement{domain.CashAndEquivalents: 100, domain.CurrentYearProfit: 10}
	current := domain.FinancialStatement{domain.CashAndEquivalents: 200, domain.CurrentYearProfit: 20}

	got, err := svc.ReviewFinancials(context.Background(), prior, current)

	s.Require().NoError(err)
	s.Equal(s.engine.Review(prior, current), *got)
	s.recorder.AssertNotCalled(s.T(), "ObserveAssessment", mock.Anything)
}

func (s *AssessmentServiceTestSuite) TestCatalog() {
	got := s.newService().Catalog(context.Background())

	s.Equal("5c-1", got.PolicyVersion)
	s.Len(got.Sections, len(domain.Sections))
	s.Equal(domain.BondTypes, got.BondTypes)
}

func TestNewServiceContainer_UsesConfiguredBatchLimit(t *testing.T) {
	cfg := &config.Config{BatchMaxSize: 1, BatchConcurrency: 1}
	container := services.NewServiceContainer(cfg, scoring.NewEngine(policy.Default()))
	require.NotNil(t, container.Assessment)

	inputs := []domain.AssessmentInput{sampleInput("a", domain.GradeA), sampleInput("b", domain.GradeA)}
	_, err := container.Assessment.AssessBatch(context.Background(), inputs)

	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
