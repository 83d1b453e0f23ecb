package dto

// TechnicalSnapshot is a per-symbol reading of technical indicators, created
// fresh for each prediction request and never mutated.
type TechnicalSnapshot struct {
	CurrentPrice          float64 `json:"currentPrice"`
	PriceChange1Day       float64 `json:"priceChange1d"`
	VolumeRatio           float64 `json:"volumeRatio"`
	RSI                   float64 `json:"rsi"`
	MACD                  float64 `json:"macd"`
	BollingerBandPosition float64 `json:"bollingerBandPosition"`
	SMA20Ratio            float64 `json:"sma20Ratio"`
	SMA50Ratio            float64 `json:"sma50Ratio"`
	Volatility            float64 `json:"volatility"`
}
