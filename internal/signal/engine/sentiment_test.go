package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"stocksphere-signal/internal/signal/dto"
)

func TestAnalyzeSentiment_EmptyInput(t *testing.T) {
	summary := AnalyzeSentiment(nil)

	assert.Equal(t, 0.0, summary.AverageSentiment)
	assert.Equal(t, 0.0, summary.SentimentVolatility)
	assert.Equal(t, 0.0, summary.PositiveNewsRatio)
	assert.Equal(t, 0.0, summary.NegativeNewsRatio)
	assert.Equal(t, 0, summary.NewsVolume)
}

func TestAnalyzeSentiment_SingleArticle(t *testing.T) {
	items := []dto.NewsItem{
		{Title: "Strong growth and profit beat expectations", Description: "Shares rise on the news"},
	}

	summary := AnalyzeSentiment(items)

	// strong, growth, profit, beat, rise -> raw 5 -> 5/5 = 1.0
	assert.InDelta(t, 1.0, summary.AverageSentiment, 1e-9)
	assert.Equal(t, 0.0, summary.SentimentVolatility)
	assert.Equal(t, 1.0, summary.PositiveNewsRatio)
	assert.Equal(t, 0.0, summary.NegativeNewsRatio)
	assert.Equal(t, 1, summary.NewsVolume)
}

func TestAnalyzeSentiment_ClampsToUnitRange(t *testing.T) {
	items := []dto.NewsItem{
		{Title: "growth profit increase rise gain success strong beat exceed up"},
		{Title: "decline loss fall drop weak miss concern risk uncertainty down"},
	}

	summary := AnalyzeSentiment(items)

	// Raw scores are +10 and -10, each clamped to ±1.
	assert.InDelta(t, 0.0, summary.AverageSentiment, 1e-9)
	assert.InDelta(t, 1.0, summary.SentimentVolatility, 1e-9)
	assert.Equal(t, 0.5, summary.PositiveNewsRatio)
	assert.Equal(t, 0.5, summary.NegativeNewsRatio)
}

func TestAnalyzeSentiment_SubstringContainment(t *testing.T) {
	// "upgrade" contains "up" and "downtown" contains "down"; the heuristic
	// matches substrings, not word boundaries.
	up := AnalyzeSentiment([]dto.NewsItem{{Title: "Analyst upgrade expected"}})
	assert.InDelta(t, 0.2, up.AverageSentiment, 1e-9)

	down := AnalyzeSentiment([]dto.NewsItem{{Title: "New downtown offices open"}})
	assert.InDelta(t, -0.2, down.AverageSentiment, 1e-9)
}

func TestAnalyzeSentiment_RepeatedWordCountsOnce(t *testing.T) {
	summary := AnalyzeSentiment([]dto.NewsItem{
		{Title: "profit profit profit", Description: "profit"},
	})

	// Presence is binary per word, not per occurrence.
	assert.InDelta(t, 0.2, summary.AverageSentiment, 1e-9)
}

func TestAnalyzeSentiment_PopulationStdDev(t *testing.T) {
	items := []dto.NewsItem{
		{Title: "profit"},  // +0.2
		{Title: "loss"},    // -0.2
		{Title: "no news"}, // 0
	}

	summary := AnalyzeSentiment(items)

	// Population variance divides by n, not n-1.
	want := math.Sqrt((0.2*0.2 + 0.2*0.2) / 3)
	assert.InDelta(t, want, summary.SentimentVolatility, 1e-9)
	assert.InDelta(t, 0.0, summary.AverageSentiment, 1e-9)
	assert.InDelta(t, 1.0/3.0, summary.PositiveNewsRatio, 1e-9)
	assert.InDelta(t, 1.0/3.0, summary.NegativeNewsRatio, 1e-9)
}

func TestAnalyzeSentiment_RatioThresholdsAreStrict(t *testing.T) {
	// A raw score of ±0.5 word would be needed for exactly 0.1; with /5
	// normalization scores land on multiples of 0.2, so craft a neutral item.
	summary := AnalyzeSentiment([]dto.NewsItem{{Title: "quiet trading day"}})

	assert.Equal(t, 0.0, summary.PositiveNewsRatio)
	assert.Equal(t, 0.0, summary.NegativeNewsRatio)
	assert.Equal(t, 1, summary.NewsVolume)
}
