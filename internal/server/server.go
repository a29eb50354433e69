// Package server exposes the dashboard state over a small REST API
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/bobmcallan/tinydividend/internal/common"
	"github.com/bobmcallan/tinydividend/internal/interfaces"
)

// Server wraps the HTTP server, configuration, and the portfolio service.
type Server struct {
	portfolio interfaces.PortfolioService
	config    *common.Config
	server    *http.Server
	logger    *common.Logger
}

// NewServer creates a new HTTP REST API server.
func NewServer(config *common.Config, portfolio interfaces.PortfolioService, logger *common.Logger) *Server {
	s := &Server{
		portfolio: portfolio,
		config:    config,
		logger:    logger,
	}

	mux := http.NewServeMux()
	s.registerRoutes(mux)

	handler := applyMiddleware(mux, logger)

	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", config.Server.Host, config.Server.Port),
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler returns the HTTP handler for testing.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Start starts the HTTP server (blocking).
func (s *Server) Start() error {
	s.logger.Info().
		Str("addr", s.server.Addr).
		Msg("Starting REST API server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
