package dto

import "time"

// NewsItem is one ingested article. Items are owned by a single scoring
// invocation and are never persisted.
type NewsItem struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	PublishedAt time.Time `json:"publishedAt"`
	URL         string    `json:"url"`
}

// CandleSeries holds aligned daily close and volume series for one symbol,
// oldest first.
type CandleSeries struct {
	Closes  []float64 `json:"closes"`
	Volumes []float64 `json:"volumes"`
}
