// Package common provides shared utilities for TinyDividend
package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for TinyDividend
type Config struct {
	Environment string        `toml:"environment"`
	Server      ServerConfig  `toml:"server"`
	Display     DisplayConfig `toml:"display"`
	Clients     ClientsConfig `toml:"clients"`
	Logging     LoggingConfig `toml:"logging"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// DisplayConfig holds the initial session display state.
type DisplayConfig struct {
	Currency string `toml:"currency"` // "USD" or "KRW"
	Language string `toml:"language"` // "en" or "ko"
}

// ClientsConfig holds API client configurations
type ClientsConfig struct {
	Gemini GeminiConfig `toml:"gemini"`
}

// GeminiConfig holds Gemini API configuration
type GeminiConfig struct {
	APIKey    string `toml:"api_key"`
	Model     string `toml:"model"`
	RateLimit int    `toml:"rate_limit"` // requests per minute
	Timeout   string `toml:"timeout"`
}

// GetTimeout parses and returns the timeout duration
func (c *GeminiConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "console" or "json"
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Display: DisplayConfig{
			Currency: "KRW",
			Language: "ko",
		},
		Clients: ClientsConfig{
			Gemini: GeminiConfig{
				Model:     "gemini-3-flash-preview",
				RateLimit: 10,
				Timeout:   "30s",
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// LoadConfig loads configuration from files with environment overrides.
// Missing files are skipped; later files override earlier ones.
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)
	validateDisplay(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("TINYDIV_ENV"); env != "" {
		config.Environment = env
	}

	if host := os.Getenv("TINYDIV_HOST"); host != "" {
		config.Server.Host = host
	}

	if port := os.Getenv("TINYDIV_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}

	if level := os.Getenv("TINYDIV_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	if cur := os.Getenv("TINYDIV_DISPLAY_CURRENCY"); cur != "" {
		config.Display.Currency = strings.ToUpper(cur)
	}

	if lang := os.Getenv("TINYDIV_DISPLAY_LANGUAGE"); lang != "" {
		config.Display.Language = strings.ToLower(lang)
	}

	if model := os.Getenv("TINYDIV_GEMINI_MODEL"); model != "" {
		config.Clients.Gemini.Model = model
	}
}

// ResolveGeminiAPIKey resolves the Gemini API key from the environment with
// the config file value as fallback.
func (c *Config) ResolveGeminiAPIKey() (string, error) {
	for _, name := range []string{"GEMINI_API_KEY", "TINYDIV_GEMINI_API_KEY", "GOOGLE_API_KEY"} {
		if v := os.Getenv(name); v != "" {
			return v, nil
		}
	}
	if c.Clients.Gemini.APIKey != "" {
		return c.Clients.Gemini.APIKey, nil
	}
	return "", fmt.Errorf("gemini API key not found in environment or config")
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(c.Environment))
	return env == "production" || env == "prod"
}

// validateDisplay normalizes the initial display currency and language.
func validateDisplay(config *Config) {
	cur := strings.ToUpper(config.Display.Currency)
	if cur != "USD" && cur != "KRW" {
		cur = "KRW"
	}
	config.Display.Currency = cur

	lang := strings.ToLower(config.Display.Language)
	if lang != "en" && lang != "ko" {
		lang = "ko"
	}
	config.Display.Language = lang
}
