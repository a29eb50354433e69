package portfolio

import (
	"context"

	"github.com/bobmcallan/tinydividend/internal/models"
)

// Insight returns the current portfolio insight. The second return is false
// when no insight is available: empty portfolio, failed generation, or a
// refresh still in flight.
func (s *Service) Insight() (*models.DividendInsight, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.insight == nil {
		return nil, false
	}
	cp := *s.insight
	return &cp, true
}

// RefreshInsight dispatches an insight regeneration for the current state.
// Called once at startup so the seeded portfolio gets an assessment without
// waiting for the first user action.
func (s *Service) RefreshInsight() {
	s.dispatchInsightRefresh()
}

// dispatchInsightRefresh starts an asynchronous insight regeneration for the
// current holdings and language. Each dispatch bumps the generation counter;
// a response is applied only while its generation is still the latest, so a
// slow response from an earlier state can never overwrite a newer one. An
// empty portfolio never triggers a call and clears the insight immediately.
func (s *Service) dispatchInsightRefresh() {
	s.mu.Lock()
	s.insightGen++
	gen := s.insightGen
	holdings := append([]models.Holding(nil), s.holdings...)
	lang := s.language

	if len(holdings) == 0 {
		s.insight = nil
		s.mu.Unlock()
		return
	}
	s.insight = nil
	s.mu.Unlock()

	if s.market == nil {
		return
	}

	go s.generateInsight(gen, holdings, lang)
}

// generateInsight performs the LLM call and hands the result to applyInsight.
// Failures degrade silently to "no insight" — insights are supplementary and
// never block or error other interactions.
func (s *Service) generateInsight(gen uint64, holdings []models.Holding, lang models.Language) {
	ctx, cancel := context.WithTimeout(context.Background(), insightTimeout)
	defer cancel()

	insight, err := s.market.PortfolioInsights(ctx, holdings, lang)
	if err != nil {
		s.logger.Warn().Err(err).Uint64("generation", gen).Msg("Insight generation failed")
		return
	}

	s.applyInsight(gen, insight)
}

// applyInsight installs a generated insight if its generation is still the
// latest dispatched; stale responses are discarded.
func (s *Service) applyInsight(gen uint64, insight *models.DividendInsight) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.insightGen {
		s.logger.Debug().
			Uint64("generation", gen).
			Uint64("latest", s.insightGen).
			Msg("Discarding stale insight response")
		return
	}

	s.insight = insight
	s.logger.Info().Int("safety_score", insight.SafetyScore).Msg("Portfolio insight updated")
}
