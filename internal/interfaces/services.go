package interfaces

import (
	"context"

	"github.com/bobmcallan/tinydividend/internal/models"
)

// PortfolioService owns the session state (holdings, display mode, spot
// rate, insight) and exposes the deterministic computations over it.
type PortfolioService interface {
	// Holdings returns the holdings in insertion order.
	Holdings() []models.Holding

	// Summary computes the aggregate portfolio figures in the display currency.
	Summary() models.PortfolioSummary

	// MonthlyProjection computes the 12-month payout projection.
	MonthlyProjection() []models.MonthlyDividend

	// Allocation computes per-holding value slices and weights.
	Allocation() []models.AllocationSlice

	// AddHolding looks up the ticker and, on success, appends a new holding
	// and adopts the fresher spot rate. On lookup failure nothing changes.
	AddHolding(ctx context.Context, ticker string, shares, avgPrice float64, purchaseDate string) (*models.Holding, error)

	// RemoveHolding removes the holding with the given ID. Returns false
	// (and changes nothing) when the ID is unknown.
	RemoveHolding(id string) bool

	// Display returns the current display state.
	Display() models.DisplayState

	// SetCurrency switches the display currency.
	SetCurrency(c models.Currency)

	// SetLanguage switches the display language and refreshes the insight.
	SetLanguage(l models.Language)

	// Insight returns the current portfolio insight, or false when none is
	// available (empty portfolio, failed or still-pending generation).
	Insight() (*models.DividendInsight, bool)

	// RefreshSpotRate fetches the current spot rate, keeping the fallback
	// silently on failure.
	RefreshSpotRate(ctx context.Context)
}
