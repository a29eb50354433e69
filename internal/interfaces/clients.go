// Package interfaces defines service contracts for TinyDividend
package interfaces

import (
	"context"

	"github.com/bobmcallan/tinydividend/internal/models"
)

// MarketIntelClient provides the LLM-backed market data and analysis calls.
// Every method either returns a fully validated result or an error — callers
// never see partially populated data.
type MarketIntelClient interface {
	// FetchStockData looks up current market facts for a ticker, including
	// the USD/KRW rate on the purchase date and today.
	FetchStockData(ctx context.Context, ticker, purchaseDate string, lang models.Language) (*models.StockLookup, error)

	// PortfolioInsights generates a narrative summary, safety score, and
	// growth outlook for the holding list.
	PortfolioInsights(ctx context.Context, holdings []models.Holding, lang models.Language) (*models.DividendInsight, error)

	// CurrentExchangeRate returns the current USD/KRW spot rate.
	CurrentExchangeRate(ctx context.Context) (float64, error)
}
