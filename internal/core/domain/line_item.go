package domain

import "strings"

// LineItem names a single balance-sheet or income-statement entry.
// The constant values are the labels used on the wire.
type LineItem string

// Current assets
const (
	CashAndEquivalents  LineItem = "Kas dan Setara Kas"
	Inventory           LineItem = "Persediaan"
	PrepaidExpenses     LineItem = "Biaya dibayar dimuka"
	SecurityDeposits    LineItem = "Jaminan"
	UnbilledReceivables LineItem = "Piutang belum dikwitansikan"
)

// Non-current assets
const (
	FixedAssetsNet       LineItem = "Aset Tetap - Bersih"
	TradeReceivables     LineItem = "Piutang Dagang"
	WorkInProgress       LineItem = "Work in Progress"
	PrepaidTaxes         LineItem = "Pajak dibayar dimuka"
	ShortTermInvestments LineItem = "Investasi Jangka Pendek"
)

// Current liabilities
const (
	TradePayables     LineItem = "Utang usaha"
	TaxPayables       LineItem = "Utang pajak"
	UnearnedRevenue   LineItem = "Pendapatan diterima dimuka"
	FinancingPayables LineItem = "Utang lembaga pembiayaan"
	CurrentBankLoans  LineItem = "Utang bank (lancar)"
	OtherPayables     LineItem = "Utang lain-lain"
)

// Non-current liabilities
const (
	LongTermBankLoans          LineItem = "Utang bank (jbg panjang)"
	EmployeeBenefitLiabilities LineItem = "Liabilitas Imbalan Pascakerja"
	ShareholderLoans           LineItem = "Utang kepada pemegang saham"
	RelatedPartyPayables       LineItem = "Utang kepada pihak berelasi"
	FinanceLeasePayables       LineItem = "Utang sewa pembiayaan"
	CustomerAdvances           LineItem = "Utang muka pelanggan"
)

// Equity and income statement
const (
	PaidInCapital     LineItem = "Modal disetor"
	RetainedEarnings  LineItem = "Laba ditahan"
	OtherEquity       LineItem = "Komponen ekuitas lain"
	TaxAmnestyAssets  LineItem = "Aset tax amnesty"
	CurrentYearProfit LineItem = "Laba tahun berjalan"
	Sales             LineItem = "Penjualan (Sales)"
)

// LineItemGroup is an ordered, titled slice of the vocabulary, matching how
// statements are laid out for data entry.
type LineItemGroup struct {
	Title string     `json:"title"`
	Items []LineItem `json:"items"`
}

var (
	CurrentAssetItems = []LineItem{
		CashAndEquivalents, Inventory, PrepaidExpenses, SecurityDeposits, UnbilledReceivables,
	}
	NonCurrentAssetItems = []LineItem{
		FixedAssetsNet, TradeReceivables, WorkInProgress, PrepaidTaxes, ShortTermInvestments,
	}
	CurrentLiabilityItems = []LineItem{
		TradePayables, TaxPayables, UnearnedRevenue, FinancingPayables, CurrentBankLoans, OtherPayables,
	}
	NonCurrentLiabilityItems = []LineItem{
		LongTermBankLoans, EmployeeBenefitLiabilities, ShareholderLoans, RelatedPartyPayables,
		FinanceLeasePayables, CustomerAdvances,
	}
	EquityAndOtherItems = []LineItem{
		PaidInCapital, RetainedEarnings, OtherEquity, TaxAmnestyAssets, CurrentYearProfit, Sales,
	}

	// AssetItems is the full asset group summed into total assets.
	AssetItems = concatItems(CurrentAssetItems, NonCurrentAssetItems)
	// LiabilityItems is the full liability group summed into total liabilities.
	LiabilityItems = concatItems(CurrentLiabilityItems, NonCurrentLiabilityItems)
)

var lineItemGroups = []LineItemGroup{
	{Title: "ASET - Aktiva Lancar", Items: CurrentAssetItems},
	{Title: "ASET - Aktiva Tidak Lancar", Items: NonCurrentAssetItems},
	{Title: "KEWAJIBAN Jangka Pendek", Items: CurrentLiabilityItems},
	{Title: "KEWAJIBAN Jangka Panjang", Items: NonCurrentLiabilityItems},
	{Title: "EKUITAS & LAINNYA", Items: EquityAndOtherItems},
}

var lineItemIndex = buildLineItemIndex()

// LineItemGroups returns the statement layout. The returned slice is a copy.
func LineItemGroups() []LineItemGroup {
	out := make([]LineItemGroup, len(lineItemGroups))
	for i, g := range lineItemGroups {
		out[i] = LineItemGroup{Title: g.Title, Items: append([]LineItem(nil), g.Items...)}
	}
	return out
}

// AllLineItems returns every known line item in layout order.
func AllLineItems() []LineItem {
	var all []LineItem
	for _, g := range lineItemGroups {
		all = append(all, g.Items...)
	}
	return all
}

// ParseLineItem resolves a label to its LineItem. Matching ignores surrounding
// whitespace and letter case.
func ParseLineItem(label string) (LineItem, bool) {
	item, ok := lineItemIndex[normalizeLabel(label)]
	return item, ok
}

func buildLineItemIndex() map[string]LineItem {
	idx := make(map[string]LineItem)
	for _, g := range lineItemGroups {
		for _, item := range g.Items {
			idx[normalizeLabel(string(item))] = item
		}
	}
	return idx
}

func normalizeLabel(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func concatItems(groups ...[]LineItem) []LineItem {
	var out []LineItem
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
