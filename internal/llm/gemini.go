package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// geminiClient implements the Client interface using the Google GenAI SDK.
type geminiClient struct {
	apiKey      string
	model       string
	rateLimiter *rateLimiter
}

const defaultGeminiModel = "gemini-1.5-pro-latest"

// newGeminiClient creates a new Gemini API client.
func newGeminiClient(cfg Config) (Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	model := cfg.Model
	if model == "" {
		model = defaultGeminiModel
	}

	return &geminiClient{
		apiKey:      cfg.APIKey,
		model:       model,
		rateLimiter: newRateLimiter(cfg.RateLimit),
	}, nil
}

// AnalyzeAds sends an analysis prompt to Gemini in deterministic mode.
func (c *geminiClient) AnalyzeAds(ctx context.Context, prompt string) (string, error) {
	if err := c.rateLimiter.wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit error: %w", err)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  c.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create genai client: %w", err)
	}

	config := &genai.GenerateContentConfig{
		// Zero temperature keeps verdicts reproducible run to run.
		Temperature:      genai.Ptr(float32(0)),
		ResponseMIMEType: "application/json",
	}

	result, err := client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("gemini generation failed: %w", err)
	}

	text := result.Text()
	if text == "" {
		return "", fmt.Errorf("empty response from gemini")
	}

	return text, nil
}

// Close stops the rate limiter.
func (c *geminiClient) Close() error {
	c.rateLimiter.Close()
	return nil
}
