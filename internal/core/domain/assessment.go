package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AssessmentInput is the full set of inputs for one evaluation.
type AssessmentInput struct {
	PriorYear   FinancialStatement
	CurrentYear FinancialStatement
	Capacity    AnswerSet
	Character   AnswerSet
	Capital     AnswerSet
	Condition   AnswerSet
	Profile     ApplicantProfile
}

// Answers returns the answer set for a section.
func (in AssessmentInput) Answers(section Section) AnswerSet {
	switch section {
	case SectionCapacity:
		return in.Capacity
	case SectionCharacter:
		return in.Character
	case SectionCapital:
		return in.Capital
	case SectionCondition:
		return in.Condition
	}
	return nil
}

// CollateralStatus names the branch of the collateral rule that applied.
type CollateralStatus string

const (
	CollateralNone        CollateralStatus = "NO_COLLATERAL"
	CollateralRejected    CollateralStatus = "REJECTED"
	CollateralCashZero    CollateralStatus = "CASH_0_PERCENT"
	CollateralTier1Cash5  CollateralStatus = "TIER1_CASH_5_PERCENT"
	CollateralTier2Cash5  CollateralStatus = "TIER2_CASH_5_PERCENT"
	CollateralTier2Cash10 CollateralStatus = "TIER2_CASH_10_PERCENT"
)

var collateralLabels = map[CollateralStatus]string{
	CollateralNone:        "Tidak ada Agunan",
	CollateralRejected:    "Agunan ditolak (Score Rendah)",
	CollateralCashZero:    "Cash Collateral 0%",
	CollateralTier1Cash5:  "Cash Collateral 5% (Range 1 > Threshold)",
	CollateralTier2Cash5:  "Cash Collateral 5% (Range 2)",
	CollateralTier2Cash10: "Cash Collateral 10% (Range 2)",
}

// Label is the human-readable description shown on reports.
func (s CollateralStatus) Label() string {
	return collateralLabels[s]
}

// CollateralDecision is the outcome of the collateral rule.
type CollateralDecision struct {
	Status    CollateralStatus
	Rate      decimal.Decimal
	Threshold int64
	Amount    decimal.Decimal
}

// YoYGrades holds the graded year-over-year deltas that make up financial capacity.
type YoYGrades struct {
	Assets      GradeScore `json:"assets"`
	Liabilities GradeScore `json:"liabilities"`
	Equity      GradeScore `json:"equity"`
	Profit      GradeScore `json:"profit"`
}

// Direction of a year-over-year movement.
type Direction string

const (
	DirectionUp   Direction = "UP"
	DirectionDown Direction = "DOWN"
)

// Finding is one narrative observation about the financial trend.
type Finding struct {
	Metric        string    `json:"metric"`
	Direction     Direction `json:"direction"`
	ChangePercent float64   `json:"changePercent"`
	Text          string    `json:"text"`
}

// CapacityStrength labels the financial capacity score.
type CapacityStrength string

const (
	CapacityStrong   CapacityStrength = "STRONG"
	CapacityAdequate CapacityStrength = "ADEQUATE"
)

// AssessmentResult is everything the engine derives from an AssessmentInput.
type AssessmentResult struct {
	CharacterScore         float64
	CapitalScore           float64
	ConditionScore         float64
	FinancialCapacityScore float64
	TechCapacityScore      float64
	FinalScore             float64
	IsApproved             bool
	IsHighTier             bool
	Collateral             CollateralDecision
	ProjectValue           decimal.Decimal
	Analysis               FinancialAnalysis
	YoYGrades              YoYGrades
	Findings               []Finding
	CapacityStrength       CapacityStrength
	PolicyVersion          string
}

// Assessment is a result stamped with an identity by the service layer.
type Assessment struct {
	ID         uuid.UUID
	AssessedAt time.Time
	Applicant  string
	Result     AssessmentResult
}

// FinancialReview is the financial half of an assessment, available on its own.
type FinancialReview struct {
	Analysis               FinancialAnalysis
	YoYGrades              YoYGrades
	FinancialCapacityScore float64
	CapacityStrength       CapacityStrength
	Findings               []Finding
}
