package models

// PortfolioSummary contains the aggregate figures for one render cycle,
// expressed in the display currency.
type PortfolioSummary struct {
	TotalInvested  float64  `json:"total_invested"`
	TotalValue     float64  `json:"total_value"`
	Profit         float64  `json:"profit"` // total value - total invested
	AnnualDividend float64  `json:"annual_dividend"`
	MonthlyAverage float64  `json:"monthly_average"` // annual / 12
	YieldOnCost    float64  `json:"yield_on_cost"`   // percent, 0 when nothing invested
	HoldingCount   int      `json:"holding_count"`
	Currency       Currency `json:"currency"`
}

// MonthlyDividend is one entry of the 12-month payout projection. Month is
// the fixed calendar index (0 = January) independent of locale; Label is the
// localized month name for display.
type MonthlyDividend struct {
	Month  int     `json:"month"`
	Label  string  `json:"label"`
	Amount float64 `json:"amount"` // display currency
}

// AllocationSlice is one holding's share of total portfolio value. Each lot
// is its own slice even when the ticker repeats.
type AllocationSlice struct {
	HoldingID string  `json:"holding_id"`
	Ticker    string  `json:"ticker"`
	Shares    float64 `json:"shares"`
	Value     float64 `json:"value"`      // display currency
	WeightPct float64 `json:"weight_pct"` // 0 when total value is 0
}

// DisplayState is the non-persisted session display configuration.
type DisplayState struct {
	Currency Currency `json:"currency"`
	Language Language `json:"language"`
	SpotRate float64  `json:"spot_rate"` // USD/KRW, refreshed once per session
}
