package networth

// Field identifies one semantic column of the net worth sheet. Using typed
// identifiers (rather than raw header strings) keeps entry construction
// compile-checked while staying forward-compatible with sheet columns we
// don't know about.
type Field string

const (
	// FieldDate is the entry's natural key. Rows without a parseable date
	// never become entries.
	FieldDate Field = "date"

	// Account balances (assets).
	FieldETrade        Field = "etrade"
	FieldCrypto        Field = "crypto"
	FieldNFTs          Field = "nfts"
	FieldCapitalOne    Field = "capital_one"
	FieldThinkorswim   Field = "thinkorswim"
	FieldTradeStation  Field = "tradestation"
	FieldFidelity      Field = "fidelity"
	FieldCar           Field = "car"
	FieldMisc          Field = "misc"
	FieldTaxCorrection Field = "tax_correction"
	FieldInheritance   Field = "inheritance"

	// Calculated/summary columns maintained inside the sheet itself.
	FieldSemiLiquidAssets     Field = "semi_liquid_assets"
	FieldInvestibleAssets     Field = "investible_assets"
	FieldNetWorth             Field = "net_worth"
	FieldNetWorthChange       Field = "net_worth_change"
	FieldDaysSinceLast        Field = "days_since_last"
	FieldDailyNetWorthChange  Field = "daily_net_worth_change"
	FieldYTDChangeDollars     Field = "ytd_change_dollars"
	FieldYTDChangePercent     Field = "ytd_change_percent"
	FieldWithdrawal3Percent   Field = "withdrawal_3_percent"
	FieldWithdrawal4Percent   Field = "withdrawal_4_percent"
	FieldGrowth8Percent       Field = "growth_8_percent"
	FieldLivingExpenses       Field = "living_expenses"
	FieldRetirementSpending   Field = "retirement_spending"
	FieldCapitalOneComparison Field = "cof_comp"
	FieldNotes                Field = "notes"
)

// columnMapping maps sheet header labels to semantic fields. Matching is
// exact and case-sensitive: the live sheet's legacy misspellings
// ("3% Withdrawl", "4% Withdrawl") are preserved on purpose; correcting
// them here would silently drop those columns from ingestion. Header labels
// not listed here are ignored, so extra sheet columns are harmless.
var columnMapping = map[string]Field{
	"Date":                   FieldDate,
	"E*TRADE":                FieldETrade,
	"Crypto":                 FieldCrypto,
	"NFTs":                   FieldNFTs,
	"Capital One":            FieldCapitalOne,
	"thinkorswim":            FieldThinkorswim,
	"TradeStation":           FieldTradeStation,
	"Fidelity":               FieldFidelity,
	"Car":                    FieldCar,
	"Misc":                   FieldMisc,
	"Tax Correction":         FieldTaxCorrection,
	"Inheritance":            FieldInheritance,
	"Semi-Liquid Assets":     FieldSemiLiquidAssets,
	"Investible Assets":      FieldInvestibleAssets,
	"Net Worth":              FieldNetWorth,
	"Net Worth Change":       FieldNetWorthChange,
	"Days Since Last":        FieldDaysSinceLast,
	"Daily Net Worth Change": FieldDailyNetWorthChange,
	"$ YTD Change":           FieldYTDChangeDollars,
	"% YTD Change":           FieldYTDChangePercent,
	"3% Withdrawl":           FieldWithdrawal3Percent, // sic, matches the sheet
	"4% Withdrawl":           FieldWithdrawal4Percent, // sic, matches the sheet
	"8% Growth":              FieldGrowth8Percent,
	"Living Expenses":        FieldLivingExpenses,
	"Retirement Spending":    FieldRetirementSpending,
	"COF Comp":               FieldCapitalOneComparison,
	"Notes":                  FieldNotes,
}

// KnownField reports whether name is a recognized semantic field.
func KnownField(name string) (Field, bool) {
	f := Field(name)
	switch f {
	case FieldDate,
		FieldETrade, FieldCrypto, FieldNFTs, FieldCapitalOne,
		FieldThinkorswim, FieldTradeStation, FieldFidelity, FieldCar,
		FieldMisc, FieldTaxCorrection, FieldInheritance,
		FieldSemiLiquidAssets, FieldInvestibleAssets, FieldNetWorth,
		FieldNetWorthChange, FieldDaysSinceLast, FieldDailyNetWorthChange,
		FieldYTDChangeDollars, FieldYTDChangePercent,
		FieldWithdrawal3Percent, FieldWithdrawal4Percent,
		FieldGrowth8Percent, FieldLivingExpenses, FieldRetirementSpending,
		FieldCapitalOneComparison, FieldNotes:
		return f, true
	}
	return "", false
}
