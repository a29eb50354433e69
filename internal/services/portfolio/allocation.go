package portfolio

import "github.com/bobmcallan/tinydividend/internal/models"

// Allocation computes each holding's converted current value and its share
// of total portfolio value. Each lot is its own slice even when the ticker
// repeats; weights are 0 when total value is 0, never a division failure.
func (s *Service) Allocation() []models.AllocationSlice {
	s.mu.RLock()
	defer s.mu.RUnlock()

	slices := make([]models.AllocationSlice, len(s.holdings))
	total := 0.0
	for i, h := range s.holdings {
		value := toDisplay(h.MarketValueUSD(), convertCurrent, 0, s.spotRate, s.currency)
		slices[i] = models.AllocationSlice{
			HoldingID: h.ID,
			Ticker:    h.Ticker,
			Shares:    h.Shares,
			Value:     value,
		}
		total += value
	}

	if total > 0 {
		for i := range slices {
			slices[i].WeightPct = slices[i].Value / total * 100
		}
	}

	return slices
}
