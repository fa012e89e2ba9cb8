package networth

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// Summary is the dashboard's snapshot view of the latest entry. Every
// field except Date and EntryCount is optional: a nil value renders as
// JSON null and the frontend shows a placeholder instead of crashing.
type Summary struct {
	Date                civil.Date                 `json:"date"`
	NetWorth            *decimal.Decimal           `json:"net_worth"`
	NetWorthChange      *decimal.Decimal           `json:"net_worth_change"`
	DailyNetWorthChange *decimal.Decimal           `json:"daily_net_worth_change"`
	YTDChangeDollars    *decimal.Decimal           `json:"ytd_change_dollars"`
	YTDChangePercent    *decimal.Decimal           `json:"ytd_change_percent"`
	SemiLiquidAssets    *decimal.Decimal           `json:"semi_liquid_assets"`
	InvestibleAssets    *decimal.Decimal           `json:"investible_assets"`
	Accounts            map[string]decimal.Decimal `json:"accounts"`
	Notes               *string                    `json:"notes"`
	EntryCount          int                        `json:"entry_count"`
	LastUpdated         time.Time                  `json:"last_updated"`
}

// Summary builds the latest-entry summary, or nil when the dataset has no
// entries.
func (d *Dataset) Summary() *Summary {
	latest := d.Latest()
	if latest == nil {
		return nil
	}
	return &Summary{
		Date:                latest.Date,
		NetWorth:            latest.NetWorth,
		NetWorthChange:      latest.NetWorthChange,
		DailyNetWorthChange: latest.DailyNetWorthChange,
		YTDChangeDollars:    latest.YTDChangeDollars,
		YTDChangePercent:    latest.YTDChangePercent,
		SemiLiquidAssets:    latest.SemiLiquidAssets,
		InvestibleAssets:    latest.InvestibleAssets,
		Accounts:            latest.AccountBalances(),
		Notes:               latest.Notes,
		EntryCount:          len(d.Entries),
		LastUpdated:         d.LastUpdated,
	}
}

// Projection is a simple retirement outlook derived from the latest entry:
// safe-withdrawal amounts plus a compound growth curve.
type Projection struct {
	Date               civil.Date       `json:"date"`
	NetWorth           *decimal.Decimal `json:"net_worth"`
	Withdrawal3Percent *decimal.Decimal `json:"withdrawal_3_percent"`
	Withdrawal4Percent *decimal.Decimal `json:"withdrawal_4_percent"`
	LivingExpenses     *decimal.Decimal `json:"living_expenses"`
	RetirementSpending *decimal.Decimal `json:"retirement_spending"`
	Growth             []YearValue      `json:"growth_8_percent"`
}

// YearValue is one year of the growth projection.
type YearValue struct {
	Year  int             `json:"year"`
	Value decimal.Decimal `json:"value"`
}

var (
	rate3Percent = decimal.New(3, -2)   // 0.03
	rate4Percent = decimal.New(4, -2)   // 0.04
	growthFactor = decimal.New(108, -2) // 1.08
)

// Projection builds the retirement outlook over the given number of years,
// or nil when the dataset has no entries. The sheet's own precomputed
// withdrawal columns take precedence; they are derived from net worth only
// when the columns are absent.
func (d *Dataset) Projection(years int) *Projection {
	latest := d.Latest()
	if latest == nil {
		return nil
	}

	p := &Projection{
		Date:               latest.Date,
		NetWorth:           latest.NetWorth,
		Withdrawal3Percent: latest.Withdrawal3Percent,
		Withdrawal4Percent: latest.Withdrawal4Percent,
		LivingExpenses:     latest.LivingExpenses,
		RetirementSpending: latest.RetirementSpending,
	}

	if latest.NetWorth == nil {
		return p
	}
	nw := *latest.NetWorth

	if p.Withdrawal3Percent == nil {
		w := nw.Mul(rate3Percent)
		p.Withdrawal3Percent = &w
	}
	if p.Withdrawal4Percent == nil {
		w := nw.Mul(rate4Percent)
		p.Withdrawal4Percent = &w
	}

	value := nw
	p.Growth = make([]YearValue, 0, years)
	for y := 1; y <= years; y++ {
		value = value.Mul(growthFactor)
		p.Growth = append(p.Growth, YearValue{
			Year:  latest.Date.Year + y,
			Value: value.Round(2),
		})
	}

	return p
}
