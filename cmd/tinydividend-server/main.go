package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/bobmcallan/tinydividend/internal/clients/gemini"
	"github.com/bobmcallan/tinydividend/internal/common"
	"github.com/bobmcallan/tinydividend/internal/interfaces"
	"github.com/bobmcallan/tinydividend/internal/models"
	"github.com/bobmcallan/tinydividend/internal/server"
	"github.com/bobmcallan/tinydividend/internal/services/portfolio"
)

// getBinaryDir returns the directory containing the executable.
func getBinaryDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

func main() {
	// Load .env if present; real environment takes precedence
	godotenv.Load()

	// Resolve config path: flag env, binary dir, then development fallback
	configPath := os.Getenv("TINYDIV_CONFIG")
	if configPath == "" {
		configPath = filepath.Join(getBinaryDir(), "tinydividend.toml")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			configPath = "config/tinydividend.toml"
		}
	}

	config, err := common.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := common.NewLoggerFromConfig(config.Logging)
	common.PrintBanner(config, logger)

	ctx := context.Background()

	// Initialize the Gemini market intelligence client
	var market interfaces.MarketIntelClient
	if apiKey, err := config.ResolveGeminiAPIKey(); err != nil {
		logger.Warn().Msg("Gemini API key not configured - stock lookup and insights will be unavailable")
	} else {
		client, err := gemini.NewClient(ctx, apiKey,
			gemini.WithLogger(logger),
			gemini.WithModel(config.Clients.Gemini.Model),
			gemini.WithRateLimit(config.Clients.Gemini.RateLimit),
		)
		if err != nil {
			logger.Warn().Err(err).Msg("Failed to initialize Gemini client")
		} else {
			market = client
		}
	}

	svc := portfolio.NewService(market, logger,
		portfolio.WithDisplay(
			models.ParseCurrency(config.Display.Currency),
			models.ParseLanguage(config.Display.Language),
		),
	)

	// Session bootstrap: spot rate once, then the first insight for the
	// seeded portfolio. Neither blocks serving.
	go func() {
		rateCtx, cancel := context.WithTimeout(ctx, config.Clients.Gemini.GetTimeout())
		defer cancel()
		svc.RefreshSpotRate(rateCtx)
		svc.RefreshInsight()
	}()

	srv := server.NewServer(config, svc, logger)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	logger.Info().
		Str("url", fmt.Sprintf("http://localhost:%d", config.Server.Port)).
		Msg("Server ready")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info().Msg("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("HTTP server shutdown failed")
	}

	common.PrintShutdownBanner(logger)
}
