package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dlautopecas/adpulse/internal/common"
	"github.com/dlautopecas/adpulse/internal/model"
)

// verdictJSON builds a classifier response for the given ad names, one
// verdict per ad with the given category.
func verdictJSON(category string, names ...string) string {
	var items []string
	for _, name := range names {
		items = append(items, fmt.Sprintf(
			`{"ad": %q, "category": %q, "reason": "r", "action": "a", "revenue": 100, "spend": 10, "acos": 10}`,
			name, category))
	}
	return fmt.Sprintf(`{"analyses": [%s]}`, strings.Join(items, ","))
}

func makeAds(n int) []model.Ad {
	ads := make([]model.Ad, n)
	for i := range ads {
		ads[i] = model.Ad{Name: fmt.Sprintf("Anuncio %d", i)}
	}
	return ads
}

func TestAnalyzeChunking(t *testing.T) {
	ctx := context.Background()

	t.Run("partitions into chunks of three", func(t *testing.T) {
		mock := NewMockClassifier()
		mock.QueueResponse(verdictJSON("SCALE", "Anuncio 0", "Anuncio 1", "Anuncio 2"))
		mock.QueueResponse(verdictJSON("ADJUST", "Anuncio 3", "Anuncio 4", "Anuncio 5"))
		mock.QueueResponse(verdictJSON("PAUSE", "Anuncio 6"))

		analyzer := New(mock)
		verdicts, err := analyzer.Analyze(ctx, makeAds(7))
		require.NoError(t, err)
		assert.Len(t, verdicts, 7)
		assert.Len(t, mock.Calls(), 3)
	})

	t.Run("last chunk may be smaller", func(t *testing.T) {
		mock := NewMockClassifier()
		mock.QueueResponse(verdictJSON("SCALE", "Anuncio 0", "Anuncio 1", "Anuncio 2"))
		mock.QueueResponse(verdictJSON("SCALE", "Anuncio 3"))

		analyzer := New(mock)
		verdicts, err := analyzer.Analyze(ctx, makeAds(4))
		require.NoError(t, err)
		assert.Len(t, verdicts, 4)

		calls := mock.Calls()
		require.Len(t, calls, 2)
		assert.NotContains(t, calls[1], "Anuncio 2")
		assert.Contains(t, calls[1], "Anuncio 3")
	})

	t.Run("custom chunk size", func(t *testing.T) {
		mock := NewMockClassifier()
		mock.QueueResponse(verdictJSON("SCALE", "Anuncio 0", "Anuncio 1", "Anuncio 2", "Anuncio 3", "Anuncio 4"))

		analyzer := NewWithConfig(mock, Config{ChunkSize: 5})
		verdicts, err := analyzer.Analyze(ctx, makeAds(5))
		require.NoError(t, err)
		assert.Len(t, verdicts, 5)
		assert.Len(t, mock.Calls(), 1)
	})
}

func TestAnalyzeChunkIsolation(t *testing.T) {
	ctx := context.Background()

	// Chunk 2 of 5 fails; every other chunk's verdicts survive in order.
	mock := NewMockClassifier()
	mock.QueueResponse(verdictJSON("SCALE", "Anuncio 0", "Anuncio 1", "Anuncio 2"))
	mock.QueueError(errors.New("service unavailable"))
	mock.QueueResponse(verdictJSON("ADJUST", "Anuncio 6", "Anuncio 7", "Anuncio 8"))
	mock.QueueResponse(verdictJSON("PAUSE", "Anuncio 9", "Anuncio 10", "Anuncio 11"))
	mock.QueueResponse(verdictJSON("SCALE", "Anuncio 12"))

	analyzer := New(mock)
	verdicts, err := analyzer.Analyze(ctx, makeAds(13))
	require.NoError(t, err)
	require.Len(t, verdicts, 10)

	var names []string
	for _, v := range verdicts {
		names = append(names, v.AdName)
	}
	assert.Equal(t, []string{
		"Anuncio 0", "Anuncio 1", "Anuncio 2",
		"Anuncio 6", "Anuncio 7", "Anuncio 8",
		"Anuncio 9", "Anuncio 10", "Anuncio 11",
		"Anuncio 12",
	}, names)
}

func TestAnalyzeUnparseableChunkIsSkipped(t *testing.T) {
	ctx := context.Background()

	mock := NewMockClassifier()
	mock.QueueResponse("this is not JSON at all")
	mock.QueueResponse(verdictJSON("SCALE", "Anuncio 3", "Anuncio 4", "Anuncio 5"))

	analyzer := New(mock)
	verdicts, err := analyzer.Analyze(ctx, makeAds(6))
	require.NoError(t, err)
	require.Len(t, verdicts, 3)
	assert.Equal(t, "Anuncio 3", verdicts[0].AdName)
}

func TestAnalyzeEmptyResults(t *testing.T) {
	ctx := context.Background()

	t.Run("all chunks fail", func(t *testing.T) {
		mock := NewMockClassifier()
		mock.QueueError(errors.New("down"))
		mock.QueueError(errors.New("down"))

		analyzer := New(mock)
		_, err := analyzer.Analyze(ctx, makeAds(6))
		assert.ErrorIs(t, err, common.ErrNoVerdicts)
	})

	t.Run("no ads", func(t *testing.T) {
		analyzer := New(NewMockClassifier())
		_, err := analyzer.Analyze(ctx, nil)
		assert.ErrorIs(t, err, common.ErrNoAds)
	})
}

func TestAnalyzeProgressCallback(t *testing.T) {
	ctx := context.Background()

	mock := NewMockClassifier()
	mock.QueueResponse(verdictJSON("SCALE", "Anuncio 0", "Anuncio 1", "Anuncio 2"))
	mock.QueueResponse(verdictJSON("SCALE", "Anuncio 3"))

	var seen [][2]int
	analyzer := New(mock)
	analyzer.SetProgress(func(chunk, total int) {
		seen = append(seen, [2]int{chunk, total})
	})

	_, err := analyzer.Analyze(ctx, makeAds(4))
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{1, 2}, {2, 2}}, seen)
}

func TestAnalyzeContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mock := NewMockClassifier()
	mock.QueueResponse(verdictJSON("SCALE", "Anuncio 0"))

	analyzer := New(mock)
	_, err := analyzer.Analyze(ctx, makeAds(3))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBuildPrompt(t *testing.T) {
	ads := []model.Ad{
		{
			Name:           "Anuncio A",
			Impressions:    1200,
			Clicks:         45,
			CTR:            3.75,
			CVR:            1.5,
			Spend:          32.75,
			Revenue:        420,
			ACOS:           7.8,
			TargetACOS:     10,
			BudgetLossPct:  60,
			RankingLossPct: 5,
		},
	}

	prompt := buildPrompt(ads)

	assert.Contains(t, prompt, "Anuncio A")
	assert.Contains(t, prompt, "Impressions: 1200")
	assert.Contains(t, prompt, "CTR: 3.75%")
	assert.Contains(t, prompt, "Spend: R$32.75")
	assert.Contains(t, prompt, "ACOS: 7.80%")
	assert.Contains(t, prompt, "Target ACOS: 10%")
	assert.Contains(t, prompt, "Budget Loss: 60%")
	assert.Contains(t, prompt, `"analyses"`)
	assert.Contains(t, prompt, "SCALE")
	assert.Contains(t, prompt, "ADJUST")
	assert.Contains(t, prompt, "PAUSE")
}
