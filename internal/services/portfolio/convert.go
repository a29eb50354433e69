package portfolio

import "github.com/bobmcallan/tinydividend/internal/models"

// convertKind distinguishes which rate a USD amount is converted with.
// Cost-basis figures use the rate in effect at purchase time; current value
// and income figures always use the session spot rate.
type convertKind int

const (
	convertCurrent convertKind = iota
	convertCost
	convertIncome
)

// toDisplay converts a USD amount into the display currency. In USD mode it
// is the identity regardless of kind or rates. In KRW mode the cost kind
// uses the supplied historical rate when one is available, falling back
// silently to the spot rate; every other kind uses the spot rate. No
// rounding happens here — rounding is a presentation concern.
func toDisplay(amountUSD float64, kind convertKind, historicalRate, spotRate float64, currency models.Currency) float64 {
	if currency == models.CurrencyUSD {
		return amountUSD
	}
	rate := spotRate
	if kind == convertCost && historicalRate > 0 {
		rate = historicalRate
	}
	return amountUSD * rate
}
