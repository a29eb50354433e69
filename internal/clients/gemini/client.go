// Package gemini provides the Gemini-backed market intelligence client
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/time/rate"
	"google.golang.org/genai"

	"github.com/bobmcallan/tinydividend/internal/common"
	"github.com/bobmcallan/tinydividend/internal/interfaces"
	"github.com/bobmcallan/tinydividend/internal/models"
)

const (
	DefaultModel     = "gemini-3-flash-preview"
	DefaultRateLimit = 10 // requests per minute
)

// Client implements the MarketIntelClient interface
type Client struct {
	client  *genai.Client
	model   string
	limiter *rate.Limiter
	logger  *common.Logger
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithModel sets the model to use
func WithModel(model string) ClientOption {
	return func(c *Client) {
		if model != "" {
			c.model = model
		}
	}
}

// WithRateLimit sets the request rate limit in requests per minute
func WithRateLimit(requestsPerMinute int) ClientOption {
	return func(c *Client) {
		if requestsPerMinute > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(float64(requestsPerMinute)/60.0), requestsPerMinute)
		}
	}
}

// WithLogger sets the logger
func WithLogger(logger *common.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a new Gemini market intelligence client
func NewClient(ctx context.Context, apiKey string, opts ...ClientOption) (*Client, error) {
	genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	c := &Client{
		client:  genaiClient,
		model:   DefaultModel,
		limiter: rate.NewLimiter(rate.Limit(float64(DefaultRateLimit)/60.0), DefaultRateLimit),
		logger:  common.NewSilentLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// generateJSON runs one structured-output generation and returns the raw
// response text with any markdown code fences stripped.
func (c *Client) generateJSON(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter: %w", err)
	}

	c.logger.Debug().Str("model", c.model).Msg("Generating structured content")

	result, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text, err := extractTextFromResponse(result)
	if err != nil {
		return "", err
	}

	return stripCodeFences(text), nil
}

// FetchStockData looks up current market facts for a ticker via Google
// Search grounding. The response is strictly validated; any missing required
// field is a lookup failure.
func (c *Client) FetchStockData(ctx context.Context, ticker, purchaseDate string, lang models.Language) (*models.StockLookup, error) {
	langContext := "Return the company name in English."
	if lang == models.LanguageKO {
		langContext = "Return the company name in Korean."
	}

	prompt := fmt.Sprintf(`Fetch current market data for stock ticker: %s.
Also find the USD/KRW exchange rate today AND on %s.
Return dividend details. %s`, strings.ToUpper(ticker), purchaseDate, langContext)

	config := &genai.GenerateContentConfig{
		Tools:            []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"name":             {Type: genai.TypeString},
				"currentPrice":     {Type: genai.TypeNumber},
				"dividendPerShare": {Type: genai.TypeNumber, Description: "Annual dividend amount per share in USD"},
				"dividendYield":    {Type: genai.TypeNumber, Description: "Annual yield percentage (e.g., 3.5)"},
				"frequency": {
					Type: genai.TypeString,
					Enum: []string{"Monthly", "Quarterly", "Semi-Annual", "Annual"},
				},
				"exchangeRateAtPurchase": {Type: genai.TypeNumber, Description: "USD to KRW exchange rate on the purchase date"},
				"currentExchangeRate":    {Type: genai.TypeNumber, Description: "Current USD to KRW exchange rate"},
			},
			Required: []string{"name", "currentPrice", "dividendPerShare", "dividendYield", "frequency", "exchangeRateAtPurchase", "currentExchangeRate"},
		},
	}

	text, err := c.generateJSON(ctx, prompt, config)
	if err != nil {
		return nil, fmt.Errorf("stock lookup for %s failed: %w", ticker, err)
	}

	var raw models.RawStockLookup
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("stock lookup for %s returned unparseable payload: %w", ticker, err)
	}

	lookup, err := raw.Validate()
	if err != nil {
		return nil, fmt.Errorf("stock lookup for %s: %w", ticker, err)
	}

	c.logger.Debug().
		Str("ticker", ticker).
		Float64("price", lookup.CurrentPrice).
		Str("frequency", string(lookup.Frequency)).
		Msg("Stock lookup complete")

	return lookup, nil
}

// insightResponse mirrors the insight generation wire format.
type insightResponse struct {
	Summary         string   `json:"summary"`
	SafetyScore     *float64 `json:"safetyScore"`
	GrowthPotential string   `json:"growthPotential"`
}

// PortfolioInsights generates a qualitative assessment of the holding list:
// a narrative summary, a 1-10 dividend safety score, and a growth outlook.
func (c *Client) PortfolioInsights(ctx context.Context, holdings []models.Holding, lang models.Language) (*models.DividendInsight, error) {
	if len(holdings) == 0 {
		return nil, fmt.Errorf("no holdings to analyze")
	}

	descriptions := make([]string, len(holdings))
	for i, h := range holdings {
		descriptions[i] = fmt.Sprintf("%s (%g shares)", h.Ticker, h.Shares)
	}

	langContext := ""
	if lang == models.LanguageKO {
		langContext = "Please provide the summary and growthPotential in Korean language."
	}

	prompt := fmt.Sprintf(`Analyze this stock portfolio for dividend safety and growth: %s.
Provide a friendly summary, a SAFETY SCORE from 1 to 10 (where 10 is extremely safe/stable and 1 is very risky), and growth potential outlook.
Ensure the SAFETY SCORE strictly reflects how reliable the dividends are. %s`, strings.Join(descriptions, ", "), langContext)

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"summary":         {Type: genai.TypeString},
				"safetyScore":     {Type: genai.TypeNumber, Description: "Score from 1 to 10. 10 is most safe, 1 is least safe."},
				"growthPotential": {Type: genai.TypeString},
			},
			Required: []string{"summary", "safetyScore", "growthPotential"},
		},
	}

	text, err := c.generateJSON(ctx, prompt, config)
	if err != nil {
		return nil, fmt.Errorf("insight generation failed: %w", err)
	}

	var raw insightResponse
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("insight response unparseable: %w", err)
	}
	if raw.Summary == "" || raw.SafetyScore == nil {
		return nil, fmt.Errorf("insight response missing required fields")
	}

	return &models.DividendInsight{
		Summary:         raw.Summary,
		SafetyScore:     models.ClampSafetyScore(*raw.SafetyScore),
		GrowthPotential: raw.GrowthPotential,
	}, nil
}

// rateResponse mirrors the spot-rate wire format.
type rateResponse struct {
	Rate *float64 `json:"rate"`
}

// CurrentExchangeRate fetches the current USD/KRW spot rate via Google
// Search grounding. Callers keep their fallback on any error.
func (c *Client) CurrentExchangeRate(ctx context.Context) (float64, error) {
	config := &genai.GenerateContentConfig{
		Tools:            []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"rate": {Type: genai.TypeNumber},
			},
			Required: []string{"rate"},
		},
	}

	text, err := c.generateJSON(ctx, "What is the current USD to KRW exchange rate? Return only the number.", config)
	if err != nil {
		return 0, err
	}

	var raw rateResponse
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return 0, fmt.Errorf("rate response unparseable: %w", err)
	}
	if raw.Rate == nil || *raw.Rate <= 0 {
		return 0, fmt.Errorf("rate response missing usable rate")
	}

	return *raw.Rate, nil
}

// extractTextFromResponse extracts text from a generate content response
func extractTextFromResponse(result *genai.GenerateContentResponse) (string, error) {
	if len(result.Candidates) == 0 || result.Candidates[0].Content == nil || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated")
	}

	text := ""
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			text += part.Text
		}
	}

	return text, nil
}

// stripCodeFences removes markdown code fences some models wrap around JSON.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// Ensure Client implements MarketIntelClient
var _ interfaces.MarketIntelClient = (*Client)(nil)
