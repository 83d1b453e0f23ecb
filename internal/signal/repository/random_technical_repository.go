package repository

import (
	"context"
	"hash/fnv"
	"math/rand"
	"time"

	"stocksphere-signal/internal/signal/dto"
)

type randomTechnicalRepository struct{}

// NewRandomTechnicalRepository creates a TechnicalDataRepository that stands
// in for a market-data client. Readings are pseudo-random within realistic
// ranges, seeded by symbol and calendar day so repeated requests within a day
// are stable.
func NewRandomTechnicalRepository() TechnicalDataRepository {
	return &randomTechnicalRepository{}
}

func (r *randomTechnicalRepository) GetSnapshot(_ context.Context, symbol string) (*dto.TechnicalSnapshot, error) {
	h := fnv.New64a()
	h.Write([]byte(symbol))
	h.Write([]byte(time.Now().UTC().Format("2006-01-02")))
	rng := rand.New(rand.NewSource(int64(h.Sum64())))

	return &dto.TechnicalSnapshot{
		CurrentPrice:          50 + rng.Float64()*450,
		PriceChange1Day:       -5 + rng.Float64()*10,
		VolumeRatio:           0.5 + rng.Float64()*2,
		RSI:                   20 + rng.Float64()*60,
		MACD:                  -2 + rng.Float64()*4,
		BollingerBandPosition: rng.Float64(),
		SMA20Ratio:            0.9 + rng.Float64()*0.2,
		SMA50Ratio:            0.9 + rng.Float64()*0.2,
		Volatility:            10 + rng.Float64()*50,
	}, nil
}
