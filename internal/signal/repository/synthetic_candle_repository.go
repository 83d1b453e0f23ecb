package repository

import (
	"context"
	"hash/fnv"
	"math/rand"
	"time"

	"stocksphere-signal/internal/signal/dto"
)

type syntheticCandleRepository struct{}

// NewSyntheticCandleRepository creates a CandleRepository that generates a
// random-walk price series. It stands in for a historical market-data client
// and is seeded per symbol and day so a request is reproducible within a day.
func NewSyntheticCandleRepository() CandleRepository {
	return &syntheticCandleRepository{}
}

func (r *syntheticCandleRepository) GetDailySeries(_ context.Context, symbol string, days int) (*dto.CandleSeries, error) {
	h := fnv.New64a()
	h.Write([]byte(symbol))
	h.Write([]byte(time.Now().UTC().Format("2006-01-02")))
	rng := rand.New(rand.NewSource(int64(h.Sum64())))

	price := 50 + rng.Float64()*450
	baseVolume := 1e6 + rng.Float64()*9e6

	closes := make([]float64, days)
	volumes := make([]float64, days)
	for i := 0; i < days; i++ {
		price *= 1 + rng.NormFloat64()*0.02
		if price < 1 {
			price = 1
		}
		closes[i] = price
		volumes[i] = baseVolume * (0.5 + rng.Float64()*1.5)
	}

	return &dto.CandleSeries{Closes: closes, Volumes: volumes}, nil
}
