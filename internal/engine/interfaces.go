package engine

import "context"

// Classifier defines the contract for the external generative-AI service
// that analyzes ad performance. Implementations return the raw response
// text for a prompt; the engine owns parsing and validation.
type Classifier interface {
	AnalyzeAds(ctx context.Context, prompt string) (string, error)
}

// ProgressFunc is invoked before each chunk is submitted, with the 1-based
// chunk number and the total chunk count.
type ProgressFunc func(chunk, total int)
