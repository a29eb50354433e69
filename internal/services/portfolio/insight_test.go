package portfolio

import (
	"fmt"
	"testing"

	"github.com/bobmcallan/tinydividend/internal/models"
)

func TestInsight_UnavailableInitially(t *testing.T) {
	svc := newTestService([]models.Holding{
		usdHolding("a", "SCHD", 10, 70, 80, 2.5, models.FrequencyQuarterly),
	}, nil)

	if ins, ok := svc.Insight(); ok || ins != nil {
		t.Errorf("Insight() = %+v, %v before any generation, want nil, false", ins, ok)
	}
}

func TestApplyInsight_LatestGenerationIsInstalled(t *testing.T) {
	svc := newTestService([]models.Holding{
		usdHolding("a", "SCHD", 10, 70, 80, 2.5, models.FrequencyQuarterly),
	}, nil)

	svc.mu.Lock()
	svc.insightGen = 3
	svc.mu.Unlock()

	svc.applyInsight(3, &models.DividendInsight{
		Summary: "Solid dividend base.", SafetyScore: 8, GrowthPotential: "Moderate",
	})

	ins, ok := svc.Insight()
	if !ok {
		t.Fatal("Insight() unavailable after matching-generation apply")
	}
	if ins.SafetyScore != 8 || ins.Summary != "Solid dividend base." {
		t.Errorf("Insight() = %+v", ins)
	}
}

func TestApplyInsight_StaleGenerationIsDiscarded(t *testing.T) {
	svc := newTestService([]models.Holding{
		usdHolding("a", "SCHD", 10, 70, 80, 2.5, models.FrequencyQuarterly),
	}, nil)

	svc.mu.Lock()
	svc.insightGen = 5
	svc.mu.Unlock()

	svc.applyInsight(5, &models.DividendInsight{Summary: "current", SafetyScore: 7})
	// A slow response dispatched for an earlier portfolio state arrives late
	svc.applyInsight(4, &models.DividendInsight{Summary: "stale", SafetyScore: 2})

	ins, ok := svc.Insight()
	if !ok {
		t.Fatal("Insight() unavailable")
	}
	if ins.Summary != "current" || ins.SafetyScore != 7 {
		t.Errorf("stale response overwrote current insight: %+v", ins)
	}
}

func TestDispatchInsightRefresh_ClearsPendingInsight(t *testing.T) {
	svc := newTestService([]models.Holding{
		usdHolding("a", "SCHD", 10, 70, 80, 2.5, models.FrequencyQuarterly),
	}, nil)

	svc.mu.Lock()
	svc.insightGen = 1
	svc.mu.Unlock()
	svc.applyInsight(1, &models.DividendInsight{Summary: "old", SafetyScore: 6})

	// Nil market: the dispatch invalidates but never regenerates
	svc.RefreshInsight()

	if _, ok := svc.Insight(); ok {
		t.Error("insight still available after refresh dispatch, want cleared")
	}
}

func TestDispatchInsightRefresh_EmptyPortfolioNeverCalls(t *testing.T) {
	market := &stubMarketClient{insight: &models.DividendInsight{Summary: "x", SafetyScore: 5}}
	svc := newTestService([]models.Holding{}, market)

	svc.RefreshInsight()

	if _, ok := svc.Insight(); ok {
		t.Error("empty portfolio produced an insight")
	}
}

func TestGenerateInsight_FailureLeavesNoInsight(t *testing.T) {
	market := &stubMarketClient{insightErr: fmt.Errorf("model overloaded")}
	holdings := []models.Holding{
		usdHolding("a", "SCHD", 10, 70, 80, 2.5, models.FrequencyQuarterly),
	}
	svc := newTestService(holdings, market)

	svc.mu.Lock()
	svc.insightGen = 1
	svc.mu.Unlock()
	svc.generateInsight(1, holdings, models.LanguageEN)

	if _, ok := svc.Insight(); ok {
		t.Error("failed generation produced an insight")
	}
}

func TestGenerateInsight_SuccessApplies(t *testing.T) {
	market := &stubMarketClient{
		insight: &models.DividendInsight{Summary: "Well diversified.", SafetyScore: 9, GrowthPotential: "High"},
	}
	holdings := []models.Holding{
		usdHolding("a", "SCHD", 10, 70, 80, 2.5, models.FrequencyQuarterly),
	}
	svc := newTestService(holdings, market)

	svc.mu.Lock()
	svc.insightGen = 1
	svc.mu.Unlock()
	svc.generateInsight(1, holdings, models.LanguageEN)

	ins, ok := svc.Insight()
	if !ok {
		t.Fatal("Insight() unavailable after successful generation")
	}
	if ins.SafetyScore != 9 || ins.GrowthPotential != "High" {
		t.Errorf("Insight() = %+v", ins)
	}
}

func TestInsight_ReturnsACopy(t *testing.T) {
	svc := newTestService([]models.Holding{
		usdHolding("a", "SCHD", 10, 70, 80, 2.5, models.FrequencyQuarterly),
	}, nil)

	svc.mu.Lock()
	svc.insightGen = 1
	svc.mu.Unlock()
	svc.applyInsight(1, &models.DividendInsight{Summary: "original", SafetyScore: 5})

	first, _ := svc.Insight()
	first.Summary = "mutated"

	second, _ := svc.Insight()
	if second.Summary != "original" {
		t.Error("caller mutation leaked into service state")
	}
}
