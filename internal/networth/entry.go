package networth

import (
	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// Entry is a single net worth snapshot, one row of the tracking sheet.
// Date is the only required field; everything else is independently
// optional, and a nil pointer means the cell was absent or unparseable,
// which is a different state from zero. Monetary and ratio values are
// exact decimals so that a long series doesn't accumulate float drift;
// shopspring's JSON form is a quoted decimal string, which is exactly the
// precision-preserving representation the API promises.
type Entry struct {
	Date civil.Date `json:"date"`

	// Account balances (assets).
	ETrade        *decimal.Decimal `json:"etrade"`
	Crypto        *decimal.Decimal `json:"crypto"`
	NFTs          *decimal.Decimal `json:"nfts"`
	CapitalOne    *decimal.Decimal `json:"capital_one"`
	Thinkorswim   *decimal.Decimal `json:"thinkorswim"`
	TradeStation  *decimal.Decimal `json:"tradestation"`
	Fidelity      *decimal.Decimal `json:"fidelity"`
	Car           *decimal.Decimal `json:"car"`
	Misc          *decimal.Decimal `json:"misc"`
	TaxCorrection *decimal.Decimal `json:"tax_correction"`
	Inheritance   *decimal.Decimal `json:"inheritance"`

	// Calculated/summary columns carried through from the sheet.
	SemiLiquidAssets     *decimal.Decimal `json:"semi_liquid_assets"`
	InvestibleAssets     *decimal.Decimal `json:"investible_assets"`
	NetWorth             *decimal.Decimal `json:"net_worth"`
	NetWorthChange       *decimal.Decimal `json:"net_worth_change"`
	DaysSinceLast        *int             `json:"days_since_last"`
	DailyNetWorthChange  *decimal.Decimal `json:"daily_net_worth_change"`
	YTDChangeDollars     *decimal.Decimal `json:"ytd_change_dollars"`
	YTDChangePercent     *decimal.Decimal `json:"ytd_change_percent"`
	Withdrawal3Percent   *decimal.Decimal `json:"withdrawal_3_percent"`
	Withdrawal4Percent   *decimal.Decimal `json:"withdrawal_4_percent"`
	Growth8Percent       *decimal.Decimal `json:"growth_8_percent"`
	LivingExpenses       *decimal.Decimal `json:"living_expenses"`
	RetirementSpending   *decimal.Decimal `json:"retirement_spending"`
	CapitalOneComparison *decimal.Decimal `json:"cof_comp"`
	Notes                *string          `json:"notes"`
}

// accountDisplayNames maps balance fields to the labels the dashboard
// shows, in sheet column order.
var accountDisplayNames = []struct {
	field Field
	name  string
}{
	{FieldETrade, "E*TRADE"},
	{FieldCrypto, "Crypto"},
	{FieldNFTs, "NFTs"},
	{FieldCapitalOne, "Capital One"},
	{FieldThinkorswim, "thinkorswim"},
	{FieldTradeStation, "TradeStation"},
	{FieldFidelity, "Fidelity"},
	{FieldCar, "Car"},
	{FieldMisc, "Misc"},
	{FieldTaxCorrection, "Tax Correction"},
	{FieldInheritance, "Inheritance"},
}

// AccountBalances returns the entry's non-absent account balances keyed by
// display name.
func (e *Entry) AccountBalances() map[string]decimal.Decimal {
	balances := make(map[string]decimal.Decimal)
	for _, acct := range accountDisplayNames {
		if v := e.decimalField(acct.field); v != nil {
			balances[acct.name] = *v
		}
	}
	return balances
}

// decimalField returns the pointer behind a decimal-typed field, or nil
// for fields that are not decimals (date, day count, notes).
func (e *Entry) decimalField(f Field) *decimal.Decimal {
	switch f {
	case FieldETrade:
		return e.ETrade
	case FieldCrypto:
		return e.Crypto
	case FieldNFTs:
		return e.NFTs
	case FieldCapitalOne:
		return e.CapitalOne
	case FieldThinkorswim:
		return e.Thinkorswim
	case FieldTradeStation:
		return e.TradeStation
	case FieldFidelity:
		return e.Fidelity
	case FieldCar:
		return e.Car
	case FieldMisc:
		return e.Misc
	case FieldTaxCorrection:
		return e.TaxCorrection
	case FieldInheritance:
		return e.Inheritance
	case FieldSemiLiquidAssets:
		return e.SemiLiquidAssets
	case FieldInvestibleAssets:
		return e.InvestibleAssets
	case FieldNetWorth:
		return e.NetWorth
	case FieldNetWorthChange:
		return e.NetWorthChange
	case FieldDailyNetWorthChange:
		return e.DailyNetWorthChange
	case FieldYTDChangeDollars:
		return e.YTDChangeDollars
	case FieldYTDChangePercent:
		return e.YTDChangePercent
	case FieldWithdrawal3Percent:
		return e.Withdrawal3Percent
	case FieldWithdrawal4Percent:
		return e.Withdrawal4Percent
	case FieldGrowth8Percent:
		return e.Growth8Percent
	case FieldLivingExpenses:
		return e.LivingExpenses
	case FieldRetirementSpending:
		return e.RetirementSpending
	case FieldCapitalOneComparison:
		return e.CapitalOneComparison
	}
	return nil
}

// setDecimal stores a parsed decimal into the field's slot. Unknown or
// non-decimal fields are ignored.
func (e *Entry) setDecimal(f Field, d decimal.Decimal) {
	switch f {
	case FieldETrade:
		e.ETrade = &d
	case FieldCrypto:
		e.Crypto = &d
	case FieldNFTs:
		e.NFTs = &d
	case FieldCapitalOne:
		e.CapitalOne = &d
	case FieldThinkorswim:
		e.Thinkorswim = &d
	case FieldTradeStation:
		e.TradeStation = &d
	case FieldFidelity:
		e.Fidelity = &d
	case FieldCar:
		e.Car = &d
	case FieldMisc:
		e.Misc = &d
	case FieldTaxCorrection:
		e.TaxCorrection = &d
	case FieldInheritance:
		e.Inheritance = &d
	case FieldSemiLiquidAssets:
		e.SemiLiquidAssets = &d
	case FieldInvestibleAssets:
		e.InvestibleAssets = &d
	case FieldNetWorth:
		e.NetWorth = &d
	case FieldNetWorthChange:
		e.NetWorthChange = &d
	case FieldDailyNetWorthChange:
		e.DailyNetWorthChange = &d
	case FieldYTDChangeDollars:
		e.YTDChangeDollars = &d
	case FieldYTDChangePercent:
		e.YTDChangePercent = &d
	case FieldWithdrawal3Percent:
		e.Withdrawal3Percent = &d
	case FieldWithdrawal4Percent:
		e.Withdrawal4Percent = &d
	case FieldGrowth8Percent:
		e.Growth8Percent = &d
	case FieldLivingExpenses:
		e.LivingExpenses = &d
	case FieldRetirementSpending:
		e.RetirementSpending = &d
	case FieldCapitalOneComparison:
		e.CapitalOneComparison = &d
	}
}
