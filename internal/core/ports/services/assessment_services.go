package services

import (
	"context"

	"github.com/SscSPs/surety_risk_app/internal/core/domain"
)

// AssessmentEvaluatorSvc scores complete applications.
type AssessmentEvaluatorSvc interface {
	// Assess evaluates one application and stamps the result with an id.
	Assess(ctx context.Context, input domain.AssessmentInput) (*domain.Assessment, error)

	// AssessBatch evaluates independent applications concurrently. Results
	// keep the order of inputs.
	AssessBatch(ctx context.Context, inputs []domain.AssessmentInput) ([]domain.Assessment, error)
}

// FinancialReviewSvc analyzes statements without the questionnaires.
type FinancialReviewSvc interface {
	// ReviewFinancials summarizes two years and grades their movement.
	ReviewFinancials(ctx context.Context, prior, current domain.FinancialStatement) (*domain.FinancialReview, error)
}

// CatalogSvc describes the inputs the evaluator accepts.
type CatalogSvc interface {
	// Catalog returns the questionnaire, the line-item layout and the policy version.
	Catalog(ctx context.Context) domain.Catalog
}

// AssessmentSvcFacade combines all assessment-related service interfaces.
type AssessmentSvcFacade interface {
	AssessmentEvaluatorSvc
	FinancialReviewSvc
	CatalogSvc
}
