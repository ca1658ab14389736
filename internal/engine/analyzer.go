// Package engine implements the batch analysis orchestrator. It partitions
// normalized ad rows into fixed-size chunks, submits each chunk to the
// classifier in index order and accumulates the returned verdicts.
package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/dlautopecas/adpulse/internal/common"
	"github.com/dlautopecas/adpulse/internal/llm"
	"github.com/dlautopecas/adpulse/internal/model"
)

// Analyzer orchestrates chunked classification of ads.
type Analyzer struct {
	classifier Classifier
	progress   ProgressFunc
	chunkSize  int
	chunkDelay time.Duration
	retryOpts  common.RetryOptions
}

// Config holds configuration options for the analyzer.
type Config struct {
	// ChunkSize is the number of ads submitted per classifier call.
	ChunkSize int
	// ChunkDelay is an optional pause between chunk calls, for API quota
	// pacing. Zero disables it.
	ChunkDelay time.Duration
	// MaxAttempts bounds classifier call attempts per chunk. The default
	// of 1 means a failed chunk is skipped, never retried.
	MaxAttempts int
}

// DefaultConfig returns the default analyzer configuration.
func DefaultConfig() Config {
	return Config{
		ChunkSize:   3,
		ChunkDelay:  0,
		MaxAttempts: 1,
	}
}

// New creates an analyzer with the default configuration.
func New(classifier Classifier) *Analyzer {
	return NewWithConfig(classifier, DefaultConfig())
}

// NewWithConfig creates an analyzer with custom configuration.
func NewWithConfig(classifier Classifier, cfg Config) *Analyzer {
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = 3
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}

	return &Analyzer{
		classifier: classifier,
		chunkSize:  cfg.ChunkSize,
		chunkDelay: cfg.ChunkDelay,
		retryOpts: common.RetryOptions{
			MaxAttempts:  cfg.MaxAttempts,
			InitialDelay: time.Second,
		},
	}
}

// SetProgress registers a callback invoked before each chunk is submitted.
func (a *Analyzer) SetProgress(fn ProgressFunc) {
	a.progress = fn
}

// Analyze classifies all ads and returns the accumulated verdicts in
// chunk-then-row order. A chunk whose call or parse fails contributes zero
// verdicts and does not abort the run. When no chunk yields any verdict the
// result is common.ErrNoVerdicts.
func (a *Analyzer) Analyze(ctx context.Context, ads []model.Ad) ([]model.Verdict, error) {
	if len(ads) == 0 {
		return nil, common.ErrNoAds
	}

	chunks := chunkAds(ads, a.chunkSize)
	verdicts := make([]model.Verdict, 0, len(ads))

	slog.Info("Starting ad analysis",
		"ads", len(ads),
		"chunks", len(chunks),
		"chunk_size", a.chunkSize)

	for i, chunk := range chunks {
		select {
		case <-ctx.Done():
			return verdicts, ctx.Err()
		default:
		}

		if a.progress != nil {
			a.progress(i+1, len(chunks))
		}

		chunkVerdicts, err := a.analyzeChunk(ctx, chunk)
		if err != nil {
			common.LogError(err, "chunk analysis failed, skipping", common.Fields{
				"chunk": i + 1,
				"ads":   len(chunk),
			})
			continue
		}

		verdicts = append(verdicts, chunkVerdicts...)

		slog.Debug("chunk analyzed",
			"chunk", i+1,
			"total_chunks", len(chunks),
			"verdicts", len(chunkVerdicts))

		if a.chunkDelay > 0 && i < len(chunks)-1 {
			select {
			case <-ctx.Done():
				return verdicts, ctx.Err()
			case <-time.After(a.chunkDelay):
			}
		}
	}

	if len(verdicts) == 0 {
		return nil, common.ErrNoVerdicts
	}

	slog.Info("Analysis complete", "verdicts", len(verdicts))

	return verdicts, nil
}

// analyzeChunk submits one chunk to the classifier and parses its response.
func (a *Analyzer) analyzeChunk(ctx context.Context, chunk []model.Ad) ([]model.Verdict, error) {
	prompt := buildPrompt(chunk)

	var verdicts []model.Verdict
	err := common.WithRetry(ctx, func() error {
		response, err := a.classifier.AnalyzeAds(ctx, prompt)
		if err != nil {
			return &common.RetryableError{Err: err, Retryable: true}
		}

		parsed, err := llm.ParseVerdicts(response)
		if err != nil {
			return &common.RetryableError{Err: err, Retryable: true}
		}

		verdicts = parsed
		return nil
	}, a.retryOpts)
	if err != nil {
		return nil, err
	}

	return verdicts, nil
}

// chunkAds partitions ads into contiguous chunks of at most size rows,
// preserving order. The last chunk may be smaller.
func chunkAds(ads []model.Ad, size int) [][]model.Ad {
	chunks := make([][]model.Ad, 0, (len(ads)+size-1)/size)
	for start := 0; start < len(ads); start += size {
		end := start + size
		if end > len(ads) {
			end = len(ads)
		}
		chunks = append(chunks, ads[start:end])
	}
	return chunks
}
