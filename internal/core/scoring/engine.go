package scoring

import (
	"fmt"
	"math"

	"github.com/SscSPs/surety_risk_app/internal/core/domain"
	"github.com/SscSPs/surety_risk_app/internal/core/policy"
	"github.com/shopspring/decimal"
)

// PillarScores are the four scores that make up the final score.
type PillarScores struct {
	Character         float64
	Capital           float64
	FinancialCapacity float64
	Condition         float64
}

// Engine produces assessment results under a fixed policy. It holds no
// mutable state and is safe for concurrent use.
type Engine struct {
	policy *policy.Policy
	grader *Grader
}

// NewEngine creates an Engine for p.
func NewEngine(p *policy.Policy) *Engine {
	return &Engine{policy: p, grader: NewGrader(p)}
}

// Policy returns the policy the engine scores with.
func (e *Engine) Policy() *policy.Policy {
	return e.policy
}

// Grader returns the engine's grader.
func (e *Engine) Grader() *Grader {
	return e.grader
}

// Assess runs the full pipeline on one input. It never fails: zero
// denominators and unknown letters score 0.
func (e *Engine) Assess(in domain.AssessmentInput) domain.AssessmentResult {
	review := e.Review(in.PriorYear, in.CurrentYear)

	pillars := PillarScores{
		Character:         e.sectionScore(in, domain.SectionCharacter),
		Capital:           e.sectionScore(in, domain.SectionCapital),
		FinancialCapacity: review.FinancialCapacityScore,
		Condition:         e.sectionScore(in, domain.SectionCondition),
	}
	final := e.FinalScore(pillars)
	approved, highTier := e.Approval(final)

	return domain.AssessmentResult{
		CharacterScore:         pillars.Character,
		CapitalScore:           pillars.Capital,
		ConditionScore:         pillars.Condition,
		FinancialCapacityScore: pillars.FinancialCapacity,
		TechCapacityScore:      e.sectionScore(in, domain.SectionCapacity),
		FinalScore:             final,
		IsApproved:             approved,
		IsHighTier:             highTier,
		Collateral:             e.Collateral(final, in.Profile),
		ProjectValue:           in.Profile.ProjectValue(),
		Analysis:               review.Analysis,
		YoYGrades:              review.YoYGrades,
		Findings:               review.Findings,
		CapacityStrength:       review.CapacityStrength,
		PolicyVersion:          e.policy.Version,
	}
}

// Review analyzes two statements and grades the year-over-year movement.
func (e *Engine) Review(prior, current domain.FinancialStatement) domain.FinancialReview {
	analysis := Analyze(prior, current)
	grades := e.grader.GradeYoY(analysis.YoY)
	capacity := e.grader.FinancialCapacity(grades)
	return domain.FinancialReview{
		Analysis:               analysis,
		YoYGrades:              grades,
		FinancialCapacityScore: capacity,
		CapacityStrength:       StrengthOf(capacity),
		Findings:               Findings(analysis.YoY),
	}
}

func (e *Engine) sectionScore(in domain.AssessmentInput, section domain.Section) float64 {
	return e.grader.ScoreSection(in.Answers(section), e.policy.Weights(section))
}

// FinalScore is the pillar-weighted sum. Technical capacity is not part of it.
func (e *Engine) FinalScore(s PillarScores) float64 {
	w := e.policy.PillarWeights
	return w.Character*s.Character +
		w.Capital*s.Capital +
		w.FinancialCapacity*s.FinancialCapacity +
		w.Condition*s.Condition
}

// Approval reports whether a final score is approved and whether it reaches
// the high tier. Both cut-offs are inclusive.
func (e *Engine) Approval(finalScore float64) (approved, highTier bool) {
	return finalScore >= e.policy.Approval.MinScore, finalScore >= e.policy.Approval.HighTierMinScore
}

// Collateral decides the cash-collateral requirement for an applicant.
// Exempt bond types never need collateral, whatever the score.
func (e *Engine) Collateral(finalScore float64, profile domain.ApplicantProfile) domain.CollateralDecision {
	if e.policy.IsExempt(profile.BondType) {
		return domain.CollateralDecision{Status: domain.CollateralNone, Rate: decimal.Zero, Amount: decimal.Zero}
	}
	approved, highTier := e.Approval(finalScore)
	if !approved {
		return domain.CollateralDecision{Status: domain.CollateralRejected, Rate: decimal.Zero, Amount: decimal.Zero}
	}

	threshold := e.policy.Threshold(profile.EmployerType)
	withinThreshold := profile.GuaranteeValue <= threshold
	c := e.policy.Collateral

	var status domain.CollateralStatus
	var rate decimal.Decimal
	switch {
	case highTier && withinThreshold:
		status, rate = domain.CollateralCashZero, decimal.Zero
	case highTier:
		status, rate = domain.CollateralTier1Cash5, c.BaseRate
	case withinThreshold:
		status, rate = domain.CollateralTier2Cash5, c.BaseRate
	default:
		status, rate = domain.CollateralTier2Cash10, c.ElevatedRate
	}

	return domain.CollateralDecision{
		Status:    status,
		Rate:      rate,
		Threshold: threshold,
		Amount:    decimal.NewFromInt(profile.GuaranteeValue).Mul(rate),
	}
}

// StrengthOf labels a financial capacity score.
func StrengthOf(financialCapacity float64) domain.CapacityStrength {
	if financialCapacity > 70 {
		return domain.CapacityStrong
	}
	return domain.CapacityAdequate
}

// Findings describes the asset, liability and profit trends. A change of
// exactly zero reads as a decrease.
func Findings(yoy domain.YoYDeltaSet) []domain.Finding {
	return []domain.Finding{
		finding("assets", yoy.Assets, "Peningkatan aset", "Penurunan aset"),
		finding("liabilities", yoy.Liabilities, "Liabilitas naik", "Liabilitas turun"),
		finding("profit", yoy.Profit, "Laba bersih tumbuh", "Laba bersih turun"),
	}
}

func finding(metric string, pct float64, upText, downText string) domain.Finding {
	f := domain.Finding{Metric: metric, ChangePercent: pct}
	if pct > 0 {
		f.Direction = domain.DirectionUp
		f.Text = fmt.Sprintf("%s %.1f%%.", upText, pct)
	} else {
		f.Direction = domain.DirectionDown
		f.Text = fmt.Sprintf("%s %.1f%%.", downText, math.Abs(pct))
	}
	return f
}
