package domain_test

import (
	"testing"

	"github.com/SscSPs/surety_risk_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineItemGroups_Layout(t *testing.T) {
	groups := domain.LineItemGroups()
	require.Len(t, groups, 5)

	sizes := []int{5, 5, 6, 6, 6}
	for i, g := range groups {
		assert.Len(t, g.Items, sizes[i], g.Title)
	}
	assert.Len(t, domain.AssetItems, 10)
	assert.Len(t, domain.LiabilityItems, 12)
	assert.Len(t, domain.AllLineItems(), 28)
}

func TestLineItemGroups_ReturnsCopy(t *testing.T) {
	groups := domain.LineItemGroups()
	groups[0].Items[0] = "mutated"

	assert.Equal(t, domain.CashAndEquivalents, domain.LineItemGroups()[0].Items[0])
}

func TestParseLineItem(t *testing.T) {
	tests := []struct {
		name   string
		label  string
		want   domain.LineItem
		wantOK bool
	}{
		{name: "exact label", label: "Kas dan Setara Kas", want: domain.CashAndEquivalents, wantOK: true},
		{name: "different case", label: "penjualan (SALES)", want: domain.Sales, wantOK: true},
		{name: "surrounding whitespace", label: "  Utang pajak ", want: domain.TaxPayables, wantOK: true},
		{name: "unknown label", label: "Goodwill", wantOK: false},
		{name: "empty", label: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := domain.ParseLineItem(tt.label)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewFinancialStatement_AllZero(t *testing.T) {
	s := domain.NewFinancialStatement()

	assert.Len(t, s, len(domain.AllLineItems()))
	for _, item := range domain.AllLineItems() {
		v, ok := s[item]
		assert.True(t, ok, item)
		assert.Zero(t, v)
	}
}

func TestFinancialStatement_SumIgnoresMissing(t *testing.T) {
	s := domain.FinancialStatement{domain.Inventory: 40, domain.CashAndEquivalents: 60}

	assert.Equal(t, int64(100), s.Sum(domain.CurrentAssetItems))
	assert.Equal(t, int64(0), s.Amount(domain.Sales))
}

func TestParseBondType(t *testing.T) {
	bt, ok := domain.ParseBondType("penawaran")
	assert.True(t, ok)
	assert.Equal(t, domain.BondBid, bt)

	bt, ok = domain.ParseBondType("UANG MUKA")
	assert.True(t, ok)
	assert.Equal(t, domain.BondAdvance, bt)

	_, ok = domain.ParseBondType("Garansi")
	assert.False(t, ok)
}

func TestParseEmployerType(t *testing.T) {
	tests := map[string]domain.EmployerType{
		"Swasta":     domain.EmployerPrivate,
		"private":    domain.EmployerPrivate,
		"BUMN":       domain.EmployerStateOwned,
		"StateOwned": domain.EmployerStateOwned,
	}
	for in, want := range tests {
		got, ok := domain.ParseEmployerType(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	_, ok := domain.ParseEmployerType("Koperasi")
	assert.False(t, ok)
}

func TestApplicantProfile_ProjectValue(t *testing.T) {
	p := domain.ApplicantProfile{GuaranteeValue: 600_000_000, CoveragePercent: decimal.NewFromInt(10)}
	assert.True(t, decimal.NewFromInt(60_000_000).Equal(p.ProjectValue()))

	p.CoveragePercent = domain.DefaultCoveragePercent
	assert.True(t, decimal.NewFromInt(600_000_000).Equal(p.ProjectValue()))
}

func TestQuestions_Catalog(t *testing.T) {
	counts := map[domain.Section]int{
		domain.SectionCapacity:  4,
		domain.SectionCharacter: 5,
		domain.SectionCapital:   6,
		domain.SectionCondition: 4,
	}
	for sec, n := range counts {
		assert.Len(t, domain.Questions(sec), n, sec)
	}

	q, ok := domain.LookupQuestion(domain.SectionCharacter, "q4")
	require.True(t, ok)
	assert.True(t, q.Offers(domain.GradeB))
	assert.False(t, q.Offers(domain.GradeC))

	_, ok = domain.LookupQuestion(domain.SectionCondition, "q5")
	assert.False(t, ok)
}

func TestCollateralStatus_Label(t *testing.T) {
	assert.Equal(t, "Tidak ada Agunan", domain.CollateralNone.Label())
	assert.Equal(t, "Cash Collateral 10% (Range 2)", domain.CollateralTier2Cash10.Label())
}
