package server

import (
	"net/http"
	"strings"

	"github.com/bobmcallan/tinydividend/internal/common"
)

// registerRoutes sets up all REST API routes on the mux.
func (s *Server) registerRoutes(mux *http.ServeMux) {
	// System
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/version", s.handleVersion)
	mux.HandleFunc("/api/config", s.handleConfig)

	// Portfolio
	mux.HandleFunc("/api/portfolio", s.handlePortfolio)
	mux.HandleFunc("/api/portfolio/holdings", s.handleHoldingAdd)
	mux.HandleFunc("/api/portfolio/holdings/", s.routeHoldings)
	mux.HandleFunc("/api/portfolio/summary", s.handleSummary)
	mux.HandleFunc("/api/portfolio/projection", s.handleProjection)
	mux.HandleFunc("/api/portfolio/allocation", s.handleAllocation)
	mux.HandleFunc("/api/portfolio/insight", s.handleInsight)

	// Display state
	mux.HandleFunc("/api/display", s.handleDisplay)

	// Charts
	mux.HandleFunc("/api/charts/payouts.png", s.handlePayoutChart)
	mux.HandleFunc("/api/charts/allocation.png", s.handleAllocationChart)
}

// routeHoldings dispatches /api/portfolio/holdings/{id} to the delete handler.
func (s *Server) routeHoldings(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/portfolio/holdings/")
	if id == "" || strings.Contains(id, "/") {
		WriteError(w, http.StatusNotFound, "Not found")
		return
	}
	s.handleHoldingRemove(w, r, id)
}

// --- System handlers ---

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{
		"version": common.GetVersion(),
		"build":   common.GetBuild(),
		"commit":  common.GetGitCommit(),
	})
}

func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	display := s.portfolio.Display()

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"environment":      s.config.Environment,
		"logging_level":    s.config.Logging.Level,
		"display_currency": display.Currency,
		"display_language": display.Language,
		"spot_rate":        display.SpotRate,
		"gemini_model":     s.config.Clients.Gemini.Model,
	})
}
