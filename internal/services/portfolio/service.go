// Package portfolio owns the session state and the deterministic
// computations of the dividend dashboard: currency conversion, aggregation,
// payout projection, and allocation.
package portfolio

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bobmcallan/tinydividend/internal/common"
	"github.com/bobmcallan/tinydividend/internal/interfaces"
	"github.com/bobmcallan/tinydividend/internal/models"
)

const insightTimeout = 60 * time.Second

// Service implements PortfolioService. All state lives in memory for the
// session only — nothing is persisted. Mutation happens exclusively through
// the action methods, serialized by the mutex.
type Service struct {
	market interfaces.MarketIntelClient
	logger *common.Logger

	mu         sync.RWMutex
	holdings   []models.Holding
	currency   models.Currency
	language   models.Language
	spotRate   float64
	insight    *models.DividendInsight
	insightGen uint64 // latest dispatched insight generation
}

// Option configures the service
type Option func(*Service)

// WithDisplay sets the initial display currency and language.
func WithDisplay(c models.Currency, l models.Language) Option {
	return func(s *Service) {
		s.currency = c
		s.language = l
	}
}

// WithStartingHoldings replaces the built-in starter list.
func WithStartingHoldings(holdings []models.Holding) Option {
	return func(s *Service) {
		s.holdings = append([]models.Holding(nil), holdings...)
	}
}

// NewService creates a portfolio service seeded with the starter list.
// market may be nil, in which case add-holding and insight generation are
// unavailable but all deterministic computation still works.
func NewService(market interfaces.MarketIntelClient, logger *common.Logger, opts ...Option) *Service {
	s := &Service{
		market:   market,
		logger:   logger,
		holdings: starterHoldings(),
		currency: models.CurrencyKRW,
		language: models.LanguageKO,
		spotRate: models.FallbackExchangeRate,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// starterHoldings is the fixed built-in list the session starts from.
func starterHoldings() []models.Holding {
	now := time.Now()
	return []models.Holding{
		{
			ID: uuid.New().String(), Ticker: "SCHD", Name: "Schwab US Dividend Equity ETF",
			Shares: 25, AvgPrice: 74.20, CurrentPrice: 82.15,
			DividendPerShare: 2.78, DividendYield: 3.38, Frequency: models.FrequencyQuarterly,
			PurchaseDate: "2023-05-15", ExchangeRateAtPurchase: 1332.5, LastUpdated: now,
		},
		{
			ID: uuid.New().String(), Ticker: "O", Name: "Realty Income Corporation",
			Shares: 18, AvgPrice: 57.80, CurrentPrice: 55.40,
			DividendPerShare: 3.16, DividendYield: 5.70, Frequency: models.FrequencyMonthly,
			PurchaseDate: "2023-09-01", ExchangeRateAtPurchase: 1318.0, LastUpdated: now,
		},
		{
			ID: uuid.New().String(), Ticker: "KO", Name: "The Coca-Cola Company",
			Shares: 30, AvgPrice: 60.10, CurrentPrice: 63.25,
			DividendPerShare: 1.94, DividendYield: 3.07, Frequency: models.FrequencyQuarterly,
			PurchaseDate: "2024-01-22", ExchangeRateAtPurchase: 1339.8, LastUpdated: now,
		},
	}
}

// Holdings returns the holdings in insertion order.
func (s *Service) Holdings() []models.Holding {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Holding(nil), s.holdings...)
}

// Display returns the current display state.
func (s *Service) Display() models.DisplayState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.DisplayState{
		Currency: s.currency,
		Language: s.language,
		SpotRate: s.spotRate,
	}
}

// SetCurrency switches the display currency. Aggregates are pure functions
// of state, so nothing else needs invalidating.
func (s *Service) SetCurrency(c models.Currency) {
	s.mu.Lock()
	s.currency = c
	s.mu.Unlock()
}

// SetLanguage switches the display language. A change makes the current
// insight stale, so a regeneration is dispatched.
func (s *Service) SetLanguage(l models.Language) {
	s.mu.Lock()
	changed := s.language != l
	s.language = l
	s.mu.Unlock()

	if changed {
		s.dispatchInsightRefresh()
	}
}

// RefreshSpotRate fetches the current USD/KRW spot rate once. On any
// failure the existing rate (initially the fallback constant) is kept and
// nothing is surfaced.
func (s *Service) RefreshSpotRate(ctx context.Context) {
	if s.market == nil {
		return
	}

	rate, err := s.market.CurrentExchangeRate(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Float64("fallback", models.FallbackExchangeRate).Msg("Spot rate refresh failed, keeping fallback")
		return
	}

	s.mu.Lock()
	s.spotRate = rate
	s.mu.Unlock()

	s.logger.Info().Float64("rate", rate).Msg("Spot rate refreshed")
}

// AddHolding performs the add flow: await the market-data lookup, then on
// success atomically append the new holding and adopt the fresher spot rate
// from the response. On lookup failure the holdings list is untouched and
// the error is returned — no partial state is ever observable.
func (s *Service) AddHolding(ctx context.Context, ticker string, shares, avgPrice float64, purchaseDate string) (*models.Holding, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if ticker == "" {
		return nil, fmt.Errorf("ticker is required")
	}
	if shares <= 0 {
		return nil, fmt.Errorf("shares must be positive")
	}
	if avgPrice < 0 {
		return nil, fmt.Errorf("average price cannot be negative")
	}
	if _, err := time.Parse("2006-01-02", purchaseDate); err != nil {
		return nil, fmt.Errorf("purchase date must be YYYY-MM-DD: %w", err)
	}
	if s.market == nil {
		return nil, fmt.Errorf("market data lookup is not configured")
	}

	s.mu.RLock()
	lang := s.language
	s.mu.RUnlock()

	lookup, err := s.market.FetchStockData(ctx, ticker, purchaseDate, lang)
	if err != nil {
		s.logger.Warn().Err(err).Str("ticker", ticker).Msg("Market data lookup failed, holding not added")
		return nil, err
	}

	holding := models.Holding{
		ID:                     uuid.New().String(),
		Ticker:                 ticker,
		Name:                   lookup.Name,
		Shares:                 shares,
		AvgPrice:               avgPrice,
		CurrentPrice:           lookup.CurrentPrice,
		DividendPerShare:       lookup.DividendPerShare,
		DividendYield:          lookup.DividendYield,
		Frequency:              lookup.Frequency,
		PurchaseDate:           purchaseDate,
		ExchangeRateAtPurchase: lookup.ExchangeRateAtPurchase,
		LastUpdated:            time.Now(),
	}

	s.mu.Lock()
	s.holdings = append(s.holdings, holding)
	if lookup.CurrentExchangeRate > 0 {
		s.spotRate = lookup.CurrentExchangeRate
	}
	s.mu.Unlock()

	s.logger.Info().
		Str("ticker", ticker).
		Str("id", holding.ID).
		Float64("shares", shares).
		Msg("Holding added")

	s.dispatchInsightRefresh()

	return &holding, nil
}

// RemoveHolding removes exactly the holding with the given ID, leaving all
// others' order and values unchanged. An unknown ID is a no-op.
func (s *Service) RemoveHolding(id string) bool {
	s.mu.Lock()
	idx := -1
	for i, h := range s.holdings {
		if h.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return false
	}
	s.holdings = append(s.holdings[:idx], s.holdings[idx+1:]...)
	s.mu.Unlock()

	s.logger.Info().Str("id", id).Msg("Holding removed")

	s.dispatchInsightRefresh()
	return true
}
