package dto

// PredictRequest is the body of a portfolio prediction request. A nil
// LookbackHours means the caller omitted it and the configured default
// applies; an explicit non-positive value is rejected.
type PredictRequest struct {
	Symbols       []string `json:"symbols"`
	LookbackHours *int     `json:"lookbackHours"`
}

// TechnicalIndicatorsResponse is the subset of technical fields echoed back
// in a prediction.
type TechnicalIndicatorsResponse struct {
	RSI           float64 `json:"rsi"`
	MACD          float64 `json:"macd"`
	Volatility    float64 `json:"volatility"`
	PriceChange1D float64 `json:"priceChange1d"`
}

// RiskResponse carries the derived risk metrics for a prediction.
type RiskResponse struct {
	Volatility float64 `json:"volatility"`
	VaR95      float64 `json:"var95"`
	Level      string  `json:"level"`
}

// MonteCarloResponse carries the simulated 30-day price distribution.
type MonteCarloResponse struct {
	ExpectedPrice30D float64 `json:"expectedPrice30d"`
	WorstCase5Pct    float64 `json:"worstCase5pct"`
	BestCase95Pct    float64 `json:"bestCase95pct"`
}

// PredictionResult is the engine output for one symbol. When Error is set the
// remaining fields are omitted.
type PredictionResult struct {
	Symbol              string                       `json:"symbol"`
	Prediction          string                       `json:"prediction,omitempty"`
	Confidence          float64                      `json:"confidence,omitempty"`
	Reasoning           []string                     `json:"reasoning,omitempty"`
	CurrentPrice        float64                      `json:"currentPrice,omitempty"`
	TechnicalIndicators *TechnicalIndicatorsResponse `json:"technicalIndicators,omitempty"`
	SentimentAnalysis   *SentimentSummary            `json:"sentimentAnalysis,omitempty"`
	Risk                *RiskResponse                `json:"risk,omitempty"`
	MonteCarlo          *MonteCarloResponse          `json:"monteCarlo,omitempty"`
	Timestamp           string                       `json:"timestamp,omitempty"`
	Error               string                       `json:"error,omitempty"`
}

// PortfolioSummary aggregates the outcome of one portfolio request.
type PortfolioSummary struct {
	TotalSymbols  int     `json:"totalSymbols"`
	BuySignals    int     `json:"buySignals"`
	SellSignals   int     `json:"sellSignals"`
	HoldSignals   int     `json:"holdSignals"`
	AvgConfidence float64 `json:"avgConfidence"`
	Timestamp     string  `json:"timestamp"`
}

// PortfolioResponse is the full response for a portfolio prediction request.
type PortfolioResponse struct {
	Predictions []PredictionResult `json:"predictions"`
	Summary     PortfolioSummary   `json:"summary"`
	Disclaimer  string             `json:"disclaimer"`
}
