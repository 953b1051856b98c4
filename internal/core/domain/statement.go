package domain

// MaxLineItemAmount caps a single line item so that group totals stay within int64.
const MaxLineItemAmount int64 = 1_000_000_000_000_000

// FinancialStatement maps line items to amounts in the smallest currency unit.
// Items that are not present read as 0.
type FinancialStatement map[LineItem]int64

// NewFinancialStatement returns a statement with every known line item set to 0.
func NewFinancialStatement() FinancialStatement {
	s := make(FinancialStatement)
	for _, item := range AllLineItems() {
		s[item] = 0
	}
	return s
}

// Amount returns the amount recorded for item, or 0 when it is absent.
func (s FinancialStatement) Amount(item LineItem) int64 {
	return s[item]
}

// Sum totals the amounts of the given items.
func (s FinancialStatement) Sum(items []LineItem) int64 {
	var total int64
	for _, item := range items {
		total += s[item]
	}
	return total
}

// FinancialSummary holds the aggregates derived from one statement.
// Equity is always Assets - Liabilities and may be negative.
type FinancialSummary struct {
	Assets             int64 `json:"assets"`
	Liabilities        int64 `json:"liabilities"`
	Equity             int64 `json:"equity"`
	Profit             int64 `json:"profit"`
	Sales              int64 `json:"sales"`
	CurrentAssets      int64 `json:"currentAssets"`
	CurrentLiabilities int64 `json:"currentLiabilities"`
}

// RatioSet holds the latest-year ratios, expressed as percentages.
type RatioSet struct {
	Liquidity     float64 `json:"liquidity"`
	Solvency      float64 `json:"solvency"`
	Profitability float64 `json:"profitability"`
}

// YoYDeltaSet holds year-over-year percentage changes.
type YoYDeltaSet struct {
	Assets      float64 `json:"assets"`
	Liabilities float64 `json:"liabilities"`
	Equity      float64 `json:"equity"`
	Profit      float64 `json:"profit"`
}

// FinancialAnalysis is the combined output of summarizing and comparing two years.
type FinancialAnalysis struct {
	PriorYear   FinancialSummary `json:"priorYear"`
	CurrentYear FinancialSummary `json:"currentYear"`
	YoY         YoYDeltaSet      `json:"yoy"`
	Ratios      RatioSet         `json:"ratios"`
}
