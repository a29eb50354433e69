package portfolio

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/bobmcallan/tinydividend/internal/models"
)

// slicePalette mirrors the dashboard's slice colors.
var slicePalette = []string{"60A5FA", "34D399", "FBBF24", "F87171", "818CF8", "A78BFA"}

// RenderPayoutChart renders the 12-month payout projection as a PNG bar
// chart. Returns an error when there is no dividend income to draw.
func RenderPayoutChart(projection []models.MonthlyDividend, currency models.Currency) ([]byte, error) {
	if len(projection) != 12 {
		return nil, fmt.Errorf("need 12 projection entries, got %d", len(projection))
	}

	total := 0.0
	bars := make([]chart.Value, len(projection))
	for i, m := range projection {
		total += m.Amount
		bars[i] = chart.Value{
			Value: m.Amount,
			Label: m.Label,
			Style: chart.Style{
				FillColor:   drawing.ColorFromHex("3B82F6"), // blue-500
				StrokeWidth: 0,
			},
		}
	}
	if total <= 0 {
		return nil, fmt.Errorf("no dividend income to chart")
	}

	graph := chart.BarChart{
		Title:    "Monthly Payout Projection",
		Width:    900,
		Height:   400,
		BarWidth: 40,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				f, ok := v.(float64)
				if !ok {
					return ""
				}
				if currency == models.CurrencyKRW {
					if f >= 1000000 {
						return fmt.Sprintf("₩%.1fM", f/1000000)
					}
					if f >= 1000 {
						return fmt.Sprintf("₩%.0fK", f/1000)
					}
					return fmt.Sprintf("₩%.0f", f)
				}
				return fmt.Sprintf("$%.0f", f)
			},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}

	return buf.Bytes(), nil
}

// RenderAllocationChart renders the per-holding allocation as a PNG donut
// chart, one slice per lot. Returns an error when total value is 0.
func RenderAllocationChart(slices []models.AllocationSlice) ([]byte, error) {
	values := make([]chart.Value, 0, len(slices))
	total := 0.0
	for i, s := range slices {
		if s.Value <= 0 {
			continue
		}
		total += s.Value
		values = append(values, chart.Value{
			Value: s.Value,
			Label: s.Ticker,
			Style: chart.Style{
				FillColor: drawing.ColorFromHex(slicePalette[i%len(slicePalette)]),
			},
		})
	}
	if total <= 0 {
		return nil, fmt.Errorf("no portfolio value to chart")
	}

	graph := chart.DonutChart{
		Title:  "Allocation",
		Width:  500,
		Height: 500,
		Values: values,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}

	return buf.Bytes(), nil
}
