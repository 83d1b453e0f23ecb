package dto

// SentimentSummary aggregates per-article sentiment scores for one scoring
// invocation. All fields are zero when no articles were considered.
type SentimentSummary struct {
	AverageSentiment    float64 `json:"avgSentiment"`
	SentimentVolatility float64 `json:"sentimentVolatility"`
	PositiveNewsRatio   float64 `json:"positiveNewsRatio"`
	NegativeNewsRatio   float64 `json:"negativeNewsRatio"`
	NewsVolume          int     `json:"newsVolume"`
}
