package dto

import (
	"time"

	"github.com/SscSPs/surety_risk_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ApplicantRequest describes the bond applicant and the requested guarantee.
type ApplicantRequest struct {
	Name            string           `json:"name" binding:"max=200"`
	Address         string           `json:"address" binding:"max=500"`
	BondType        string           `json:"bondType" binding:"required"`
	EmployerType    string           `json:"employerType" binding:"required"`
	GuaranteeValue  Amount           `json:"guaranteeValue"`
	CoveragePercent *decimal.Decimal `json:"coveragePercent,omitempty"` // Optional, defaults to 100
}

// AssessmentRequest is the full input set for one evaluation. Answer maps
// go from question key (q1, q2, ...) to the selected letter.
type AssessmentRequest struct {
	PriorYear   Statement         `json:"priorYear"`
	CurrentYear Statement         `json:"currentYear"`
	Capacity    map[string]string `json:"capacity"`
	Character   map[string]string `json:"character"`
	Capital     map[string]string `json:"capital"`
	Condition   map[string]string `json:"condition"`
	Applicant   ApplicantRequest  `json:"applicant"`
}

// BatchAssessmentRequest carries independent applications scored in one call.
type BatchAssessmentRequest struct {
	Items []AssessmentRequest `json:"items" binding:"required,min=1,dive"`
}

// FinancialAnalysisRequest carries the two statements to compare.
type FinancialAnalysisRequest struct {
	PriorYear   Statement `json:"priorYear"`
	CurrentYear Statement `json:"currentYear"`
}

// ScoresResponse holds the pillar scores and the final score.
type ScoresResponse struct {
	Character         float64 `json:"character"`
	Capital           float64 `json:"capital"`
	Condition         float64 `json:"condition"`
	FinancialCapacity float64 `json:"financialCapacity"`
	TechCapacity      float64 `json:"techCapacity"`
	Final             float64 `json:"final"`
}

// CollateralResponse describes the collateral requirement.
type CollateralResponse struct {
	Status    domain.CollateralStatus `json:"status"`
	Label     string                  `json:"label"`
	Rate      decimal.Decimal         `json:"rate"`
	Threshold int64                   `json:"threshold"`
	Amount    decimal.Decimal         `json:"amount"`
}

// AssessmentResponse defines the data returned for an assessment.
type AssessmentResponse struct {
	AssessmentID     string                   `json:"assessmentID"`
	AssessedAt       time.Time                `json:"assessedAt"`
	Applicant        string                   `json:"applicant"`
	PolicyVersion    string                   `json:"policyVersion"`
	Scores           ScoresResponse           `json:"scores"`
	IsApproved       bool                     `json:"isApproved"`
	IsHighTier       bool                     `json:"isHighTier"`
	Collateral       CollateralResponse       `json:"collateral"`
	ProjectValue     decimal.Decimal          `json:"projectValue"`
	CapacityStrength domain.CapacityStrength  `json:"capacityStrength"`
	Findings         []domain.Finding         `json:"findings"`
	Analysis         domain.FinancialAnalysis `json:"analysis"`
	YoYGrades        domain.YoYGrades         `json:"yoyGrades"`
}

// BatchAssessmentResponse lists assessments in request order.
type BatchAssessmentResponse struct {
	Items []AssessmentResponse `json:"items"`
	Count int                  `json:"count"`
}

// FinancialReviewResponse defines the data returned for a financial analysis.
type FinancialReviewResponse struct {
	Analysis               domain.FinancialAnalysis `json:"analysis"`
	YoYGrades              domain.YoYGrades         `json:"yoyGrades"`
	FinancialCapacityScore float64                  `json:"financialCapacityScore"`
	CapacityStrength       domain.CapacityStrength  `json:"capacityStrength"`
	Findings               []domain.Finding         `json:"findings"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ToAssessmentResponse converts a domain.Assessment to AssessmentResponse DTO
func ToAssessmentResponse(a *domain.Assessment) AssessmentResponse {
	r := a.Result
	return AssessmentResponse{
		AssessmentID:  a.ID.String(),
		AssessedAt:    a.AssessedAt,
		Applicant:     a.Applicant,
		PolicyVersion: r.PolicyVersion,
		Scores: ScoresResponse{
			Character:         r.CharacterScore,
			Capital:           r.CapitalScore,
			Condition:         r.ConditionScore,
			FinancialCapacity: r.FinancialCapacityScore,
			TechCapacity:      r.TechCapacityScore,
			Final:             r.FinalScore,
		},
		IsApproved: r.IsApproved,
		IsHighTier: r.IsHighTier,
		Collateral: CollateralResponse{
			Status:    r.Collateral.Status,
			Label:     r.Collateral.Status.Label(),
			Rate:      r.Collateral.Rate,
			Threshold: r.Collateral.Threshold,
			Amount:    r.Collateral.Amount,
		},
		ProjectValue:     r.ProjectValue,
		CapacityStrength: r.CapacityStrength,
		Findings:         r.Findings,
		Analysis:         r.Analysis,
		YoYGrades:        r.YoYGrades,
	}
}

// ToBatchAssessmentResponse converts a slice of assessments, keeping their order.
func ToBatchAssessmentResponse(as []domain.Assessment) BatchAssessmentResponse {
	items := make([]AssessmentResponse, len(as))
	for i := range as {
		items[i] = ToAssessmentResponse(&as[i])
	}
	return BatchAssessmentResponse{Items: items, Count: len(items)}
}

// ToFinancialReviewResponse converts a domain.FinancialReview to its DTO.
func ToFinancialReviewResponse(r *domain.FinancialReview) FinancialReviewResponse {
	return FinancialReviewResponse{
		Analysis:               r.Analysis,
		YoYGrades:              r.YoYGrades,
		FinancialCapacityScore: r.FinancialCapacityScore,
		CapacityStrength:       r.CapacityStrength,
		Findings:               r.Findings,
	}
}
