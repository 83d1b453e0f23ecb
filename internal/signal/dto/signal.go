package dto

import "time"

// SignalResponse is one persisted signal in API responses.
type SignalResponse struct {
	ID              int64     `json:"id"`
	Symbol          string    `json:"symbol"`
	Action          string    `json:"action"`
	ConfidenceScore float64   `json:"confidenceScore"`
	Score           float64   `json:"score"`
	CurrentPrice    float64   `json:"currentPrice"`
	Reasoning       []string  `json:"reasoning"`
	CreatedAt       time.Time `json:"createdAt"`
}
