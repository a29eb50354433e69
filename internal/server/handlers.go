package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/bobmcallan/tinydividend/internal/models"
	"github.com/bobmcallan/tinydividend/internal/services/portfolio"
)

// lookupFailedMessage returns the localized add-form error for a failed
// market-data lookup.
func lookupFailedMessage(lang models.Language) string {
	if lang == models.LanguageKO {
		return "주식 정보를 가져오지 못했습니다. 티커를 확인하고 다시 시도해 주세요."
	}
	return "Could not fetch stock data. Please check the ticker and try again."
}

// handlePortfolio returns the full render-cycle payload: holdings, summary,
// projection, allocation, and display state in one response.
func (s *Server) handlePortfolio(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"holdings":   s.portfolio.Holdings(),
		"summary":    s.portfolio.Summary(),
		"projection": s.portfolio.MonthlyProjection(),
		"allocation": s.portfolio.Allocation(),
		"display":    s.portfolio.Display(),
	})
}

// addHoldingRequest is the add-form payload. All fields are required.
type addHoldingRequest struct {
	Ticker       string  `json:"ticker"`
	Shares       float64 `json:"shares"`
	AvgPrice     float64 `json:"avg_price"`
	PurchaseDate string  `json:"purchase_date"`
}

// handleHoldingAdd runs the add flow: validate the form, await the market
// lookup, and append the holding. A failed lookup aborts the add with a
// localized message and no state change.
func (s *Server) handleHoldingAdd(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req addHoldingRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	req.Ticker = strings.TrimSpace(req.Ticker)
	if req.Ticker == "" || req.Shares <= 0 || req.AvgPrice <= 0 || req.PurchaseDate == "" {
		WriteError(w, http.StatusBadRequest, "ticker, shares, avg_price, and purchase_date are required")
		return
	}
	if _, err := time.Parse("2006-01-02", req.PurchaseDate); err != nil {
		WriteError(w, http.StatusBadRequest, "purchase_date must be YYYY-MM-DD")
		return
	}

	holding, err := s.portfolio.AddHolding(r.Context(), req.Ticker, req.Shares, req.AvgPrice, req.PurchaseDate)
	if err != nil {
		s.logger.Warn().Err(err).Str("ticker", req.Ticker).Msg("Add holding failed")
		WriteErrorWithCode(w, http.StatusBadGateway, lookupFailedMessage(s.portfolio.Display().Language), "lookup_failed")
		return
	}

	WriteJSON(w, http.StatusCreated, holding)
}

// handleHoldingRemove removes a holding by ID. Removing a non-existent ID is
// a no-op and still returns 204.
func (s *Server) handleHoldingRemove(w http.ResponseWriter, r *http.Request, id string) {
	if !RequireMethod(w, r, http.MethodDelete) {
		return
	}

	s.portfolio.RemoveHolding(id)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	WriteJSON(w, http.StatusOK, s.portfolio.Summary())
}

func (s *Server) handleProjection(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	WriteJSON(w, http.StatusOK, s.portfolio.MonthlyProjection())
}

func (s *Server) handleAllocation(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	WriteJSON(w, http.StatusOK, s.portfolio.Allocation())
}

// handleInsight returns the current AI insight, or an available=false
// placeholder — a missing insight is never an error.
func (s *Server) handleInsight(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	insight, ok := s.portfolio.Insight()
	if !ok {
		WriteJSON(w, http.StatusOK, map[string]interface{}{"available": false})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"available": true,
		"insight":   insight,
	})
}

// displayRequest carries display-state changes; absent fields are unchanged.
type displayRequest struct {
	Currency string `json:"currency,omitempty"`
	Language string `json:"language,omitempty"`
}

// handleDisplay updates the display currency and/or language.
func (s *Server) handleDisplay(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		WriteJSON(w, http.StatusOK, s.portfolio.Display())
		return
	case http.MethodPut:
	default:
		RequireMethod(w, r, http.MethodGet, http.MethodPut)
		return
	}

	var req displayRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	if req.Currency != "" {
		s.portfolio.SetCurrency(models.ParseCurrency(req.Currency))
	}
	if req.Language != "" {
		s.portfolio.SetLanguage(models.ParseLanguage(req.Language))
	}

	WriteJSON(w, http.StatusOK, s.portfolio.Display())
}

// handlePayoutChart renders the projection bar chart as PNG.
func (s *Server) handlePayoutChart(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	png, err := portfolio.RenderPayoutChart(s.portfolio.MonthlyProjection(), s.portfolio.Display().Currency)
	if err != nil {
		WriteError(w, http.StatusNotFound, err.Error())
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

// handleAllocationChart renders the allocation donut chart as PNG.
func (s *Server) handleAllocationChart(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	png, err := portfolio.RenderAllocationChart(s.portfolio.Allocation())
	if err != nil {
		WriteError(w, http.StatusNotFound, err.Error())
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
