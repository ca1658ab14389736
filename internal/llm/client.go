package llm

import (
	"context"
	"time"
)

// Client defines the interface for generative-AI providers. Analysis calls
// are made in deterministic mode (zero sampling temperature) so repeated
// runs over the same data produce the same verdicts.
type Client interface {
	// AnalyzeAds sends an analysis prompt and returns the raw model
	// response text. Callers parse the response with ParseVerdicts.
	AnalyzeAds(ctx context.Context, prompt string) (string, error)

	// Close releases client resources, including the rate limiter's
	// refill goroutine.
	Close() error
}

// Config holds configuration for LLM clients.
type Config struct {
	Provider  string
	APIKey    string
	Model     string
	MaxTokens int
	RateLimit int
	Timeout   time.Duration
}
