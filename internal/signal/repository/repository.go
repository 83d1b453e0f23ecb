package repository

import (
	"context"
	"time"

	"stocksphere-signal/internal/signal/dto"
)

// NewsRepository fetches recent news articles for a lookback window. It must
// tolerate zero results.
type NewsRepository interface {
	GetRecent(ctx context.Context, lookback time.Duration) ([]dto.NewsItem, error)
}

// TechnicalDataRepository produces a per-symbol technical snapshot or signals
// unavailability with an error.
type TechnicalDataRepository interface {
	GetSnapshot(ctx context.Context, symbol string) (*dto.TechnicalSnapshot, error)
}

// CandleRepository returns daily close/volume series for a symbol, oldest
// first.
type CandleRepository interface {
	GetDailySeries(ctx context.Context, symbol string, days int) (*dto.CandleSeries, error)
}
