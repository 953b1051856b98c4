package scoring_test

import (
	"testing"

	"github.com/SscSPs/surety_risk_app/internal/core/domain"
	"github.com/SscSPs/surety_risk_app/internal/core/scoring"
	"github.com/stretchr/testify/assert"
)

func TestSummarize_Additivity(t *testing.T) {
	s := domain.NewFinancialStatement()
	for _, item := range domain.AssetItems {
		s[item] = 10
	}
	for _, item := range domain.LiabilityItems {
		s[item] = 1
	}
	s[domain.CurrentYearProfit] = 7
	s[domain.Sales] = 900
	s[domain.PaidInCapital] = 5000

	got := scoring.Summarize(s)

	assert.Equal(t, domain.FinancialSummary{
		Assets:             100,
		Liabilities:        12,
		Equity:             88,
		Profit:             7,
		Sales:              900,
		CurrentAssets:      50,
		CurrentLiabilities: 6,
	}, got)
}

func TestSummarize_EmptyIsZero(t *testing.T) {
	assert.Equal(t, domain.FinancialSummary{}, scoring.Summarize(nil))
	assert.Equal(t, domain.FinancialSummary{}, scoring.Summarize(domain.NewFinancialStatement()))
}

func TestSummarize_NegativeEquityIsNotClamped(t *testing.T) {
	s := domain.FinancialStatement{domain.CashAndEquivalents: 100, domain.LongTermBankLoans: 250}

	got := scoring.Summarize(s)

	assert.Equal(t, int64(-150), got.Equity)
}

func TestAnalyze_ZeroInputs(t *testing.T) {
	got := scoring.Analyze(domain.FinancialStatement{}, domain.FinancialStatement{})

	assert.Equal(t, domain.FinancialAnalysis{}, got)
}

func TestAnalyze_YoYAndRatios(t *testing.T) {
	prior := domain.FinancialStatement{
		domain.CashAndEquivalents: 1_000,
		domain.TradePayables:      400,
		domain.CurrentYearProfit:  100,
	}
	current := domain.FinancialStatement{
		domain.CashAndEquivalents: 1_200,
		domain.FixedAssetsNet:     300,
		domain.TradePayables:      500,
		domain.LongTermBankLoans:  250,
		domain.CurrentYearProfit:  150,
	}

	got := scoring.Analyze(prior, current)

	assert.InDelta(t, 50.0, got.YoY.Assets, 1e-9)
	assert.InDelta(t, 87.5, got.YoY.Liabilities, 1e-9)
	assert.InDelta(t, 25.0, got.YoY.Equity, 1e-9)
	assert.InDelta(t, 50.0, got.YoY.Profit, 1e-9)

	assert.InDelta(t, 240.0, got.Ratios.Liquidity, 1e-9)
	assert.InDelta(t, 100.0, got.Ratios.Solvency, 1e-9)
	assert.InDelta(t, 20.0, got.Ratios.Profitability, 1e-9)
}

func TestYearOverYear_ZeroPriorYieldsZero(t *testing.T) {
	got := scoring.YearOverYear(
		domain.FinancialSummary{},
		domain.FinancialSummary{Assets: 500, Liabilities: 20, Equity: 480, Profit: 9},
	)

	assert.Equal(t, domain.YoYDeltaSet{}, got)
}

func TestRatios_ZeroDenominators(t *testing.T) {
	got := scoring.Ratios(domain.FinancialSummary{Assets: 100, Liabilities: 100, CurrentAssets: 50, Profit: 10})

	assert.Equal(t, domain.RatioSet{}, got)
}

func TestRatios_UseCurrentYearOnly(t *testing.T) {
	prior := domain.FinancialStatement{domain.Inventory: 9_999, domain.OtherPayables: 1}
	current := domain.FinancialStatement{domain.Inventory: 300, domain.OtherPayables: 200}

	got := scoring.Analyze(prior, current)

	assert.InDelta(t, 150.0, got.Ratios.Liquidity, 1e-9)
}
