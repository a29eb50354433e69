// Package models defines data structures for TinyDividend
package models

import (
	"strings"
	"time"
)

// Currency is a display currency for portfolio figures.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyKRW Currency = "KRW"
)

// ParseCurrency normalizes a currency string, defaulting to USD.
func ParseCurrency(s string) Currency {
	if strings.ToUpper(strings.TrimSpace(s)) == string(CurrencyKRW) {
		return CurrencyKRW
	}
	return CurrencyUSD
}

// Toggle returns the other display currency.
func (c Currency) Toggle() Currency {
	if c == CurrencyUSD {
		return CurrencyKRW
	}
	return CurrencyUSD
}

// Language is a display language for localized text.
type Language string

const (
	LanguageEN Language = "en"
	LanguageKO Language = "ko"
)

// ParseLanguage normalizes a language tag, defaulting to English.
func ParseLanguage(s string) Language {
	if strings.ToLower(strings.TrimSpace(s)) == string(LanguageKO) {
		return LanguageKO
	}
	return LanguageEN
}

// Toggle returns the other display language.
func (l Language) Toggle() Language {
	if l == LanguageEN {
		return LanguageKO
	}
	return LanguageEN
}

// Frequency is the payout cadence of a holding's dividend. It determines
// which calendar months receive a credited amount in the projection.
type Frequency string

const (
	FrequencyMonthly    Frequency = "Monthly"
	FrequencyQuarterly  Frequency = "Quarterly"
	FrequencySemiAnnual Frequency = "Semi-Annual"
	FrequencyAnnual     Frequency = "Annual"
)

// ParseFrequency maps a frequency string to the enum. Unknown or empty
// values default to Quarterly, matching the lookup contract.
func ParseFrequency(s string) Frequency {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "monthly":
		return FrequencyMonthly
	case "quarterly":
		return FrequencyQuarterly
	case "semi-annual", "semiannual", "semi annual":
		return FrequencySemiAnnual
	case "annual", "yearly":
		return FrequencyAnnual
	default:
		return FrequencyQuarterly
	}
}

// PayoutMonths returns the fixed calendar month indexes (0 = January) this
// frequency credits. The anchors are a simplifying policy, not a
// market-accurate payout calendar: quarterly pays Mar/Jun/Sep/Dec,
// semi-annual Jun/Dec, annual Jun only.
func (f Frequency) PayoutMonths() []int {
	switch f {
	case FrequencyMonthly:
		return []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}
	case FrequencySemiAnnual:
		return []int{5, 11}
	case FrequencyAnnual:
		return []int{5}
	default:
		return []int{2, 5, 8, 11}
	}
}

// PaymentsPerYear returns the number of credited months per year.
func (f Frequency) PaymentsPerYear() int {
	return len(f.PayoutMonths())
}

// Holding represents one owned dividend-paying position. Monetary fields are
// USD. A holding is immutable once added; the only mutation exposed is
// removal by ID. The same ticker may appear more than once as separate lots.
type Holding struct {
	ID                     string    `json:"id"`
	Ticker                 string    `json:"ticker"`
	Name                   string    `json:"name"`
	Shares                 float64   `json:"shares"`
	AvgPrice               float64   `json:"avg_price"`
	CurrentPrice           float64   `json:"current_price"`
	DividendPerShare       float64   `json:"dividend_per_share"` // annual, USD
	DividendYield          float64   `json:"dividend_yield"`     // percent, independently sourced
	Frequency              Frequency `json:"frequency"`
	PurchaseDate           string    `json:"purchase_date"` // YYYY-MM-DD
	ExchangeRateAtPurchase float64   `json:"exchange_rate_at_purchase"`
	LastUpdated            time.Time `json:"last_updated"`
}

// AnnualDividendUSD returns the holding's annual dividend income in USD.
func (h Holding) AnnualDividendUSD() float64 {
	return h.Shares * h.DividendPerShare
}

// CostBasisUSD returns the total amount invested in this lot in USD.
func (h Holding) CostBasisUSD() float64 {
	return h.Shares * h.AvgPrice
}

// MarketValueUSD returns the current market value of this lot in USD.
func (h Holding) MarketValueUSD() float64 {
	return h.Shares * h.CurrentPrice
}

// MonthLabels returns the localized month names for a language, ordered
// January first. The projection itself is keyed by month index, independent
// of locale.
func MonthLabels(lang Language) [12]string {
	if lang == LanguageKO {
		return [12]string{"1월", "2월", "3월", "4월", "5월", "6월", "7월", "8월", "9월", "10월", "11월", "12월"}
	}
	return [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
}
