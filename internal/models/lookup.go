package models

import "fmt"

// FallbackExchangeRate is the USD/KRW rate substituted when the live rate
// cannot be fetched or a lookup omits the historical rate.
const FallbackExchangeRate = 1350.0

// StockLookup is the validated result of a market-data lookup for one
// ticker. All monetary figures are USD.
type StockLookup struct {
	Name                   string    `json:"name"`
	CurrentPrice           float64   `json:"current_price"`
	DividendPerShare       float64   `json:"dividend_per_share"` // annual, USD
	DividendYield          float64   `json:"dividend_yield"`     // percent
	Frequency              Frequency `json:"frequency"`
	ExchangeRateAtPurchase float64   `json:"exchange_rate_at_purchase"`
	CurrentExchangeRate    float64   `json:"current_exchange_rate"`
}

// RawStockLookup mirrors the lookup response wire format before validation.
// Pointer fields distinguish absent from zero so defaults can be applied
// explicitly instead of silently coerced.
type RawStockLookup struct {
	Name                   string   `json:"name"`
	CurrentPrice           *float64 `json:"currentPrice"`
	DividendPerShare       *float64 `json:"dividendPerShare"`
	DividendYield          *float64 `json:"dividendYield"`
	Frequency              string   `json:"frequency"`
	ExchangeRateAtPurchase *float64 `json:"exchangeRateAtPurchase"`
	CurrentExchangeRate    *float64 `json:"currentExchangeRate"`
}

// Validate converts a raw lookup into a StockLookup, applying the documented
// defaults: absent numeric fields become 0, absent frequency becomes
// Quarterly, an absent or non-positive historical rate falls back to the
// fixed constant. The current rate stays 0 when absent or non-positive so
// callers keep their session rate rather than adopting the fallback. A
// response with no name is rejected — the caller must treat that as a
// failed lookup, never a partially populated holding.
func (r RawStockLookup) Validate() (*StockLookup, error) {
	if r.Name == "" {
		return nil, fmt.Errorf("lookup response missing name")
	}

	out := &StockLookup{
		Name:                   r.Name,
		Frequency:              ParseFrequency(r.Frequency),
		ExchangeRateAtPurchase: FallbackExchangeRate,
	}

	if r.CurrentPrice != nil {
		if *r.CurrentPrice < 0 {
			return nil, fmt.Errorf("lookup response has negative current price %.4f", *r.CurrentPrice)
		}
		out.CurrentPrice = *r.CurrentPrice
	}
	if r.DividendPerShare != nil {
		if *r.DividendPerShare < 0 {
			return nil, fmt.Errorf("lookup response has negative dividend per share %.4f", *r.DividendPerShare)
		}
		out.DividendPerShare = *r.DividendPerShare
	}
	if r.DividendYield != nil {
		out.DividendYield = *r.DividendYield
	}
	if r.ExchangeRateAtPurchase != nil && *r.ExchangeRateAtPurchase > 0 {
		out.ExchangeRateAtPurchase = *r.ExchangeRateAtPurchase
	}
	if r.CurrentExchangeRate != nil && *r.CurrentExchangeRate > 0 {
		out.CurrentExchangeRate = *r.CurrentExchangeRate
	}

	return out, nil
}
