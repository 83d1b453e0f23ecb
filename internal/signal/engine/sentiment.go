package engine

import (
	"math"
	"strings"

	"stocksphere-signal/internal/signal/dto"
)

// Word lists for the keyword sentiment heuristic. Matching is substring
// containment on the lower-cased text, not word-boundary matching, so a
// longer word containing a listed word still counts.
var (
	positiveWords = []string{"growth", "profit", "increase", "rise", "gain", "success", "strong", "beat", "exceed", "up"}
	negativeWords = []string{"decline", "loss", "fall", "drop", "weak", "miss", "concern", "risk", "uncertainty", "down"}
)

// scoreText computes the raw keyword score for one article text: +1 per
// positive word present, -1 per negative word present.
func scoreText(text string) int {
	lower := strings.ToLower(text)
	score := 0
	for _, word := range positiveWords {
		if strings.Contains(lower, word) {
			score++
		}
	}
	for _, word := range negativeWords {
		if strings.Contains(lower, word) {
			score--
		}
	}
	return score
}

// AnalyzeSentiment derives a SentimentSummary from a batch of news items.
// Each item is scored as clamp(rawScore/5, -1, 1); the summary holds the mean,
// the population standard deviation, and the fraction of items scoring above
// 0.1 and below -0.1. An empty batch yields the zero summary.
func AnalyzeSentiment(items []dto.NewsItem) dto.SentimentSummary {
	if len(items) == 0 {
		return dto.SentimentSummary{}
	}

	scores := make([]float64, 0, len(items))
	for _, item := range items {
		raw := scoreText(item.Title + " " + item.Description)
		score := float64(raw) / 5
		if score > 1 {
			score = 1
		} else if score < -1 {
			score = -1
		}
		scores = append(scores, score)
	}

	var sum float64
	for _, s := range scores {
		sum += s
	}
	mean := sum / float64(len(scores))

	var sqDiff float64
	for _, s := range scores {
		sqDiff += (s - mean) * (s - mean)
	}
	stdDev := math.Sqrt(sqDiff / float64(len(scores)))

	var positive, negative int
	for _, s := range scores {
		if s > 0.1 {
			positive++
		}
		if s < -0.1 {
			negative++
		}
	}

	return dto.SentimentSummary{
		AverageSentiment:    mean,
		SentimentVolatility: stdDev,
		PositiveNewsRatio:   float64(positive) / float64(len(scores)),
		NegativeNewsRatio:   float64(negative) / float64(len(scores)),
		NewsVolume:          len(items),
	}
}
