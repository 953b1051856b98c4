package scoring

import (
	"slices"

	"github.com/SscSPs/surety_risk_app/internal/core/domain"
	"github.com/SscSPs/surety_risk_app/internal/core/policy"
)

// Grader converts YoY percentages and letter answers to 0-100 scores.
type Grader struct {
	policy *policy.Policy
}

// NewGrader creates a Grader reading its scale and bands from p.
func NewGrader(p *policy.Policy) *Grader {
	return &Grader{policy: p}
}

// GradeFinancial grades a YoY percentage. Band lower bounds are inclusive.
func (g *Grader) GradeFinancial(pct float64) domain.GradeScore {
	grade := g.policy.GradeForPercent(pct)
	return domain.GradeScore{Grade: grade, Score: g.policy.GradeValue(grade)}
}

// GradeAnswer returns the score of a letter answer; unknown letters score 0.
func (g *Grader) GradeAnswer(letter domain.Grade) float64 {
	return g.policy.GradeValue(letter)
}

// GradeYoY grades each of the four YoY deltas.
func (g *Grader) GradeYoY(yoy domain.YoYDeltaSet) domain.YoYGrades {
	return domain.YoYGrades{
		Assets:      g.GradeFinancial(yoy.Assets),
		Liabilities: g.GradeFinancial(yoy.Liabilities),
		Equity:      g.GradeFinancial(yoy.Equity),
		Profit:      g.GradeFinancial(yoy.Profit),
	}
}

// FinancialCapacity is the unweighted mean of the four YoY grade scores.
func (g *Grader) FinancialCapacity(grades domain.YoYGrades) float64 {
	return (grades.Assets.Score + grades.Liabilities.Score + grades.Equity.Score + grades.Profit.Score) / 4
}

// ScoreSection is the weighted mean of the answered questions that carry a
// weight. Unanswered questions are left out of both numerator and
// denominator; a section with nothing answered scores 0. Keys are visited in
// sorted order so the float sum is reproducible.
func (g *Grader) ScoreSection(answers domain.AnswerSet, weights map[domain.QuestionKey]int) float64 {
	keys := make([]domain.QuestionKey, 0, len(weights))
	for k := range weights {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var sum float64
	var totalWeight int
	for _, k := range keys {
		letter, answered := answers[k]
		if !answered || letter == "" {
			continue
		}
		w := weights[k]
		sum += g.GradeAnswer(letter) * float64(w)
		totalWeight += w
	}
	if totalWeight == 0 {
		return 0
	}
	return sum / float64(totalWeight)
}
