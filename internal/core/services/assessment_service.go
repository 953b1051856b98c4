package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/surety_risk_app/internal/apperrors"
	"github.com/SscSPs/surety_risk_app/internal/core/domain"
	portssvc "github.com/SscSPs/surety_risk_app/internal/core/ports/services"
	"github.com/SscSPs/surety_risk_app/internal/core/scoring"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

const tracerName = "github.com/SscSPs/surety_risk_app/internal/core/services"

const (
	defaultBatchMaxSize     = 50
	defaultBatchConcurrency = 4
)

// AssessmentRecorder receives an observation for every finished assessment.
type AssessmentRecorder interface {
	ObserveAssessment(result domain.AssessmentResult)
	ObserveBatch(size int)
}

type nopRecorder struct{}

func (nopRecorder) ObserveAssessment(domain.AssessmentResult) {}
func (nopRecorder) ObserveBatch(int)                          {}

// assessmentService implements the AssessmentSvcFacade interface
type assessmentService struct {
	BaseService
	engine           *scoring.Engine
	recorder         AssessmentRecorder
	tracer           trace.Tracer
	now              func() time.Time
	batchMaxSize     int
	batchConcurrency int
}

// AssessmentOption is a functional option for configuring the assessment service
type AssessmentOption func(*assessmentService)

// WithRecorder reports every assessment to r.
func WithRecorder(r AssessmentRecorder) AssessmentOption {
	return func(s *assessmentService) {
		s.recorder = r
	}
}

// WithTracerProvider creates spans from tp instead of the global provider.
func WithTracerProvider(tp trace.TracerProvider) AssessmentOption {
	return func(s *assessmentService) {
		s.tracer = tp.Tracer(tracerName)
	}
}

// WithClock overrides the time source used for AssessedAt.
func WithClock(now func() time.Time) AssessmentOption {
	return func(s *assessmentService) {
		s.now = now
	}
}

// WithBatchLimits bounds batch size and the number of inputs scored at once.
func WithBatchLimits(maxSize, concurrency int) AssessmentOption {
	return func(s *assessmentService) {
		if maxSize > 0 {
			s.batchMaxSize = maxSize
		}
		if concurrency > 0 {
			s.batchConcurrency = concurrency
		}
	}
}

// NewAssessmentService creates a new assessment service around engine.
func NewAssessmentService(engine *scoring.Engine, options ...AssessmentOption) portssvc.AssessmentSvcFacade {
	svc := &assessmentService{
		engine:           engine,
		recorder:         nopRecorder{},
		tracer:           otel.Tracer(tracerName),
		now:              time.Now,
		batchMaxSize:     defaultBatchMaxSize,
		batchConcurrency: defaultBatchConcurrency,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.AssessmentSvcFacade = (*assessmentService)(nil)

func (s *assessmentService) Assess(ctx context.Context, input domain.AssessmentInput) (*domain.Assessment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ctx, span := s.tracer.Start(ctx, "assessment.assess")
	defer span.End()

	result := s.engine.Assess(input)
	assessment := &domain.Assessment{
		ID:         uuid.New(),
		AssessedAt: s.now().UTC(),
		Applicant:  input.Profile.Name,
		Result:     result,
	}

	span.SetAttributes(
		attribute.String("assessment.id", assessment.ID.String()),
		attribute.Float64("assessment.final_score", result.FinalScore),
		attribute.Bool("assessment.approved", result.IsApproved),
		attribute.String("assessment.collateral_status", string(result.Collateral.Status)),
	)
	s.recorder.ObserveAssessment(result)

	s.LogInfo(ctx, "Assessment completed",
		slog.String("assessment_id", assessment.ID.String()),
		slog.Float64("final_score", result.FinalScore),
		slog.Bool("approved", result.IsApproved),
		slog.Bool("high_tier", result.IsHighTier),
		slog.String("collateral_status", string(result.Collateral.Status)),
		slog.String("policy_version", result.PolicyVersion),
	)
	return assessment, nil
}

func (s *assessmentService) AssessBatch(ctx context.Context, inputs []domain.AssessmentInput) ([]domain.Assessment, error) {
	if len(inputs) == 0 {
		return nil, fmt.Errorf("%w: batch must contain at least one input", apperrors.ErrValidation)
	}
	if len(inputs) > s.batchMaxSize {
		return nil, fmt.Errorf("%w: batch of %d exceeds the limit of %d", apperrors.ErrValidation, len(inputs), s.batchMaxSize)
	}

	ctx, span := s.tracer.Start(ctx, "assessment.batch", trace.WithAttributes(attribute.Int("batch.size", len(inputs))))
	defer span.End()

	results := make([]domain.Assessment, len(inputs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.batchConcurrency)

	for i, input := range inputs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			a, err := s.Assess(gctx, input)
			if err != nil {
				return fmt.Errorf("batch item %d: %w", i, err)
			}
			results[i] = *a
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "batch interrupted")
		s.LogError(ctx, err, "Batch assessment interrupted", slog.Int("batch_size", len(inputs)))
		return nil, err
	}
	// the loop may have stopped early without any goroutine failing
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.recorder.ObserveBatch(len(inputs))
	s.LogInfo(ctx, "Batch assessment completed", slog.Int("batch_size", len(inputs)))
	return results, nil
}

func (s *assessmentService) ReviewFinancials(ctx context.Context, prior, current domain.FinancialStatement) (*domain.FinancialReview, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ctx, span := s.tracer.Start(ctx, "assessment.review_financials")
	defer span.End()

	review := s.engine.Review(prior, current)
	s.LogDebug(ctx, "Financial review completed",
		slog.Float64("financial_capacity_score", review.FinancialCapacityScore),
		slog.String("capacity_strength", string(review.CapacityStrength)),
	)
	return &review, nil
}

func (s *assessmentService) Catalog(_ context.Context) domain.Catalog {
	return domain.NewCatalog(s.engine.Policy().Version)
}
