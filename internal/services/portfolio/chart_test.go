package portfolio

import (
	"bytes"
	"testing"

	"github.com/bobmcallan/tinydividend/internal/models"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestRenderPayoutChart_ProducesPNG(t *testing.T) {
	svc := newTestService([]models.Holding{
		usdHolding("a", "SCHD", 40, 70, 80, 2.5, models.FrequencyQuarterly),
	}, nil)

	png, err := RenderPayoutChart(svc.MonthlyProjection(), models.CurrencyUSD)
	if err != nil {
		t.Fatalf("RenderPayoutChart failed: %v", err)
	}
	if !bytes.HasPrefix(png, pngMagic) {
		t.Error("output is not a PNG")
	}
}

func TestRenderPayoutChart_ErrorsWithoutIncome(t *testing.T) {
	svc := newTestService([]models.Holding{}, nil)

	if _, err := RenderPayoutChart(svc.MonthlyProjection(), models.CurrencyUSD); err == nil {
		t.Error("expected error for zero-income projection")
	}
}

func TestRenderPayoutChart_RejectsShortProjection(t *testing.T) {
	if _, err := RenderPayoutChart([]models.MonthlyDividend{{Month: 0, Amount: 5}}, models.CurrencyUSD); err == nil {
		t.Error("expected error for projection with fewer than 12 entries")
	}
}

func TestRenderAllocationChart_ProducesPNG(t *testing.T) {
	svc := newTestService([]models.Holding{
		usdHolding("a", "SCHD", 10, 70, 80, 2.5, models.FrequencyQuarterly),
		usdHolding("b", "O", 20, 50, 55, 3.0, models.FrequencyMonthly),
	}, nil)

	png, err := RenderAllocationChart(svc.Allocation())
	if err != nil {
		t.Fatalf("RenderAllocationChart failed: %v", err)
	}
	if !bytes.HasPrefix(png, pngMagic) {
		t.Error("output is not a PNG")
	}
}

func TestRenderAllocationChart_ErrorsWithoutValue(t *testing.T) {
	if _, err := RenderAllocationChart(nil); err == nil {
		t.Error("expected error for empty allocation")
	}
	if _, err := RenderAllocationChart([]models.AllocationSlice{{Ticker: "X", Value: 0}}); err == nil {
		t.Error("expected error for zero-value allocation")
	}
}
