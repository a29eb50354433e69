package portfolio

import "github.com/bobmcallan/tinydividend/internal/models"

// Summary reduces the holding set into the aggregate portfolio figures in
// the display currency. Total invested converts cost basis with each
// holding's historical rate; total value and annual income convert with the
// session spot rate. Yield-on-cost is defined as 0 when nothing is invested.
func (s *Service) Summary() models.PortfolioSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var invested, value, income float64
	for _, h := range s.holdings {
		invested += toDisplay(h.CostBasisUSD(), convertCost, h.ExchangeRateAtPurchase, s.spotRate, s.currency)
		value += toDisplay(h.MarketValueUSD(), convertCurrent, 0, s.spotRate, s.currency)
		income += toDisplay(h.AnnualDividendUSD(), convertIncome, 0, s.spotRate, s.currency)
	}

	yieldOnCost := 0.0
	if invested > 0 {
		yieldOnCost = income / invested * 100
	}

	return models.PortfolioSummary{
		TotalInvested:  invested,
		TotalValue:     value,
		Profit:         value - invested,
		AnnualDividend: income,
		MonthlyAverage: income / 12,
		YieldOnCost:    yieldOnCost,
		HoldingCount:   len(s.holdings),
		Currency:       s.currency,
	}
}
