// Package scoring turns financial statements and questionnaire answers into
// 5C scores, an approval decision and a collateral requirement. Every
// function here is pure.
package scoring

import "github.com/SscSPs/surety_risk_app/internal/core/domain"

// Summarize aggregates a statement. Equity is not clamped at zero.
func Summarize(s domain.FinancialStatement) domain.FinancialSummary {
	assets := s.Sum(domain.AssetItems)
	liabilities := s.Sum(domain.LiabilityItems)
	return domain.FinancialSummary{
		Assets:             assets,
		Liabilities:        liabilities,
		Equity:             assets - liabilities,
		Profit:             s.Amount(domain.CurrentYearProfit),
		Sales:              s.Amount(domain.Sales),
		CurrentAssets:      s.Sum(domain.CurrentAssetItems),
		CurrentLiabilities: s.Sum(domain.CurrentLiabilityItems),
	}
}

// Analyze summarizes both years, computes the year-over-year deltas and the
// latest-year ratios.
func Analyze(prior, current domain.FinancialStatement) domain.FinancialAnalysis {
	y1 := Summarize(prior)
	y2 := Summarize(current)
	return domain.FinancialAnalysis{
		PriorYear:   y1,
		CurrentYear: y2,
		YoY:         YearOverYear(y1, y2),
		Ratios:      Ratios(y2),
	}
}

// YearOverYear returns the percentage change of each tracked metric.
func YearOverYear(prev, curr domain.FinancialSummary) domain.YoYDeltaSet {
	return domain.YoYDeltaSet{
		Assets:      percentChange(prev.Assets, curr.Assets),
		Liabilities: percentChange(prev.Liabilities, curr.Liabilities),
		Equity:      percentChange(prev.Equity, curr.Equity),
		Profit:      percentChange(prev.Profit, curr.Profit),
	}
}

// Ratios computes liquidity, solvency and profitability for one year.
func Ratios(s domain.FinancialSummary) domain.RatioSet {
	return domain.RatioSet{
		Liquidity:     percentOf(s.CurrentAssets, s.CurrentLiabilities),
		Solvency:      percentOf(s.Liabilities, s.Equity),
		Profitability: percentOf(s.Profit, s.Equity),
	}
}

// percentChange is 0 when prev is 0.
func percentChange(prev, curr int64) float64 {
	if prev == 0 {
		return 0
	}
	return float64(curr-prev) / float64(prev) * 100
}

// percentOf is 0 when den is 0.
func percentOf(num, den int64) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den) * 100
}
