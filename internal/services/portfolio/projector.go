package portfolio

import "github.com/bobmcallan/tinydividend/internal/models"

// MonthlyProjection buckets each holding's annual dividend into the fixed
// calendar months its frequency credits, producing a 12-point series keyed
// by month index 0-11. Per-month USD totals are summed across holdings and
// only then converted with the income kind, so the result is invariant to
// holding order.
func (s *Service) MonthlyProjection() []models.MonthlyDividend {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var usd [12]float64
	for _, h := range s.holdings {
		months := h.Frequency.PayoutMonths()
		perMonth := h.AnnualDividendUSD() / float64(len(months))
		for _, m := range months {
			usd[m] += perMonth
		}
	}

	labels := models.MonthLabels(s.language)
	projection := make([]models.MonthlyDividend, 12)
	for i := range usd {
		projection[i] = models.MonthlyDividend{
			Month:  i,
			Label:  labels[i],
			Amount: toDisplay(usd[i], convertIncome, 0, s.spotRate, s.currency),
		}
	}

	return projection
}
