package repository

import (
	"context"
	"fmt"
	"math"

	"stocksphere-signal/internal/signal/config"
	"stocksphere-signal/internal/signal/dto"
	"stocksphere-signal/pkg/logger"

	talib "github.com/markcheno/go-talib"
)

// minCandles is the shortest series the indicator math can work with: the
// 50-day SMA plus one prior close for the 1-day change.
const minCandles = 51

type candleTechnicalRepository struct {
	cfg        *config.Config
	log        *logger.Logger
	candleRepo CandleRepository
}

// NewCandleTechnicalRepository creates a TechnicalDataRepository that derives
// indicators from daily candles with go-talib, the same way a real
// market-data integration would.
func NewCandleTechnicalRepository(cfg *config.Config, log *logger.Logger, candleRepo CandleRepository) TechnicalDataRepository {
	return &candleTechnicalRepository{
		cfg:        cfg,
		log:        log,
		candleRepo: candleRepo,
	}
}

func (r *candleTechnicalRepository) GetSnapshot(ctx context.Context, symbol string) (*dto.TechnicalSnapshot, error) {
	days := r.cfg.Technical.CandleDays
	if days < minCandles {
		days = 90
	}

	series, err := r.candleRepo.GetDailySeries(ctx, symbol, days)
	if err != nil {
		return nil, fmt.Errorf("failed to get candle series for %s: %w", symbol, err)
	}
	if len(series.Closes) < minCandles || len(series.Volumes) != len(series.Closes) {
		return nil, fmt.Errorf("insufficient candle data for %s: got %d closes", symbol, len(series.Closes))
	}

	closes := series.Closes
	volumes := series.Volumes
	last := len(closes) - 1

	rsi := talib.Rsi(closes, 14)
	macd, _, _ := talib.Macd(closes, 12, 26, 9)
	upper, _, lower := talib.BBands(closes, 20, 2, 2, talib.SMA)
	sma20 := talib.Sma(closes, 20)
	sma50 := talib.Sma(closes, 50)
	volumeSMA := talib.Sma(volumes, 20)

	current := closes[last]
	prev := closes[last-1]
	priceChange := (current - prev) / prev * 100

	volumeRatio := 1.0
	if volumeSMA[last] > 0 {
		volumeRatio = volumes[last] / volumeSMA[last]
	}

	bbPosition := 0.5
	if band := upper[last] - lower[last]; band > 0 {
		bbPosition = (current - lower[last]) / band
	}

	sma20Ratio := 1.0
	if sma20[last] > 0 {
		sma20Ratio = current / sma20[last]
	}
	sma50Ratio := 1.0
	if sma50[last] > 0 {
		sma50Ratio = current / sma50[last]
	}

	snapshot := &dto.TechnicalSnapshot{
		CurrentPrice:          current,
		PriceChange1Day:       priceChange,
		VolumeRatio:           volumeRatio,
		RSI:                   rsi[last],
		MACD:                  macd[last],
		BollingerBandPosition: bbPosition,
		SMA20Ratio:            sma20Ratio,
		SMA50Ratio:            sma50Ratio,
		Volatility:            annualizedVolatility(closes),
	}

	r.log.DebugContext(ctx, "Computed technical snapshot",
		logger.StringField("symbol", symbol),
		logger.Float64Field("rsi", snapshot.RSI),
		logger.Float64Field("macd", snapshot.MACD),
	)

	return snapshot, nil
}

// annualizedVolatility is the population standard deviation of daily returns
// scaled to a 252-day trading year, as a percentage.
func annualizedVolatility(closes []float64) float64 {
	if len(closes) < 2 {
		return 0
	}

	returns := make([]float64, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		if closes[i-1] == 0 {
			continue
		}
		returns = append(returns, (closes[i]-closes[i-1])/closes[i-1])
	}
	if len(returns) == 0 {
		return 0
	}

	var sum float64
	for _, ret := range returns {
		sum += ret
	}
	mean := sum / float64(len(returns))

	var sqDiff float64
	for _, ret := range returns {
		sqDiff += (ret - mean) * (ret - mean)
	}

	return math.Sqrt(sqDiff/float64(len(returns))) * math.Sqrt(252) * 100
}
