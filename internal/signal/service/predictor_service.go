package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"stocksphere-signal/internal/entity"
	"stocksphere-signal/internal/signal/config"
	"stocksphere-signal/internal/signal/dto"
	"stocksphere-signal/internal/signal/engine"
	"stocksphere-signal/internal/signal/repository"
	"stocksphere-signal/internal/signal/risk"
	"stocksphere-signal/pkg/common"
	"stocksphere-signal/pkg/logger"

	goredis "github.com/redis/go-redis/v9"
)

// Disclaimer is attached to every portfolio response.
const Disclaimer = "This prediction is for educational purposes only. Not financial advice. Always do your own research before making investment decisions."

// ErrInvalidRequest marks request-validation failures that must surface as a
// 400 to the caller.
var ErrInvalidRequest = errors.New("invalid request")

// PredictorService produces trading signals for one or more symbols.
type PredictorService interface {
	PredictPortfolio(ctx context.Context, req *dto.PredictRequest) (*dto.PortfolioResponse, error)
	PredictSymbol(ctx context.Context, symbol string, lookbackHours *int) (*dto.PredictionResult, error)
}

type predictorService struct {
	cfg         *config.Config
	log         *logger.Logger
	newsRepo    repository.NewsRepository
	techRepo    repository.TechnicalDataRepository
	signalRepo  repository.SignalRepository
	redisClient *goredis.Client
	simulator   *risk.Simulator
}

// NewPredictorService creates the prediction orchestrator. signalRepo and
// redisClient may be nil; persistence and stream publishing are then skipped.
func NewPredictorService(
	cfg *config.Config,
	log *logger.Logger,
	newsRepo repository.NewsRepository,
	techRepo repository.TechnicalDataRepository,
	signalRepo repository.SignalRepository,
	redisClient *goredis.Client,
) PredictorService {
	simulations := cfg.MonteCarlo.Simulations
	if simulations <= 0 {
		simulations = 5000
	}
	days := cfg.MonteCarlo.Days
	if days <= 0 {
		days = 30
	}
	return &predictorService{
		cfg:         cfg,
		log:         log,
		newsRepo:    newsRepo,
		techRepo:    techRepo,
		signalRepo:  signalRepo,
		redisClient: redisClient,
		simulator:   risk.NewSimulator(simulations, days, time.Now().UnixNano()),
	}
}

// PredictPortfolio runs the full pipeline for a list of symbols: one shared
// news batch, one sentiment summary, then an independent technical fetch and
// fusion per symbol. A failing symbol becomes an error marker in its input
// slot and never aborts the rest.
func (s *predictorService) PredictPortfolio(ctx context.Context, req *dto.PredictRequest) (*dto.PortfolioResponse, error) {
	symbols, lookback, err := s.validate(req)
	if err != nil {
		return nil, err
	}

	sentiment := s.sharedSentiment(ctx, lookback)

	results := make([]dto.PredictionResult, len(symbols))
	maxConcurrent := s.cfg.Predictor.MaxConcurrentSymbols
	if maxConcurrent <= 0 {
		maxConcurrent = 4
	}
	semaphore := make(chan struct{}, maxConcurrent)

	var wg sync.WaitGroup
	for i, symbol := range symbols {
		wg.Add(1)
		go func(slot int, symbol string) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			results[slot] = s.predictOne(ctx, symbol, sentiment, false)
		}(i, symbol)
	}
	wg.Wait()

	now := time.Now().UTC().Format(time.RFC3339)
	summary := dto.PortfolioSummary{
		TotalSymbols: len(symbols),
		Timestamp:    now,
	}

	var confidenceSum float64
	var successes int
	for _, result := range results {
		if result.Error != "" {
			continue
		}
		successes++
		confidenceSum += result.Confidence
		switch result.Prediction {
		case common.SignalActionBuy:
			summary.BuySignals++
		case common.SignalActionSell:
			summary.SellSignals++
		case common.SignalActionHold:
			summary.HoldSignals++
		}
	}
	if successes > 0 {
		summary.AvgConfidence = engine.Round2(confidenceSum / float64(successes))
	}

	return &dto.PortfolioResponse{
		Predictions: results,
		Summary:     summary,
		Disclaimer:  Disclaimer,
	}, nil
}

// PredictSymbol runs the pipeline for a single symbol, including the Monte
// Carlo price distribution.
func (s *predictorService) PredictSymbol(ctx context.Context, symbol string, lookbackHours *int) (*dto.PredictionResult, error) {
	symbols, lookback, err := s.validate(&dto.PredictRequest{
		Symbols:       []string{symbol},
		LookbackHours: lookbackHours,
	})
	if err != nil {
		return nil, err
	}

	sentiment := s.sharedSentiment(ctx, lookback)
	result := s.predictOne(ctx, symbols[0], sentiment, true)
	return &result, nil
}

// validate normalizes the request or rejects it before any fetch happens.
func (s *predictorService) validate(req *dto.PredictRequest) ([]string, time.Duration, error) {
	if req == nil || len(req.Symbols) == 0 {
		return nil, 0, fmt.Errorf("%w: symbols list must not be empty", ErrInvalidRequest)
	}
	if req.LookbackHours != nil && *req.LookbackHours <= 0 {
		return nil, 0, fmt.Errorf("%w: lookback hours must be positive", ErrInvalidRequest)
	}

	symbols := make([]string, 0, len(req.Symbols))
	for _, symbol := range req.Symbols {
		normalized := strings.ToUpper(strings.TrimSpace(symbol))
		if normalized == "" {
			return nil, 0, fmt.Errorf("%w: symbols must not be blank", ErrInvalidRequest)
		}
		symbols = append(symbols, normalized)
	}

	hours := s.cfg.Predictor.DefaultLookbackHours
	if req.LookbackHours != nil {
		hours = *req.LookbackHours
	}
	if hours <= 0 {
		hours = 24
	}

	return symbols, time.Duration(hours) * time.Hour, nil
}

// sharedSentiment fetches one news batch for the whole request and reduces it
// to a sentiment summary. Upstream failure degrades to neutral sentiment.
func (s *predictorService) sharedSentiment(ctx context.Context, lookback time.Duration) dto.SentimentSummary {
	items, err := s.fetchNewsBatch(ctx, lookback)
	if err != nil {
		s.log.Warn("News fetch failed, continuing with neutral sentiment", logger.ErrorField(err))
		items = nil
	}
	return engine.AnalyzeSentiment(items)
}

// fetchNewsBatch serves the news batch from the Redis cache when possible and
// falls through to the news source otherwise.
func (s *predictorService) fetchNewsBatch(ctx context.Context, lookback time.Duration) ([]dto.NewsItem, error) {
	cacheKey := common.RedisKeyNewsBatchPrefix + lookback.String()

	if s.redisClient != nil {
		cached, err := s.redisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			var items []dto.NewsItem
			if err := json.Unmarshal([]byte(cached), &items); err == nil {
				return items, nil
			}
			s.log.Warn("Failed to unmarshal cached news batch, refetching", logger.ErrorField(err))
		} else if err != goredis.Nil {
			s.log.Warn("Failed to read news batch cache", logger.ErrorField(err))
		}
	}

	items, err := s.newsRepo.GetRecent(ctx, lookback)
	if err != nil {
		return nil, err
	}

	if s.redisClient != nil {
		if payload, err := json.Marshal(items); err == nil {
			if err := s.redisClient.Set(ctx, cacheKey, payload, 5*time.Minute).Err(); err != nil {
				s.log.Warn("Failed to cache news batch", logger.ErrorField(err))
			}
		}
	}

	return items, nil
}

// predictOne evaluates a single symbol against the shared sentiment. Any
// failure, including a panic in the numeric pipeline, is downgraded to an
// error marker for that symbol.
func (s *predictorService) predictOne(ctx context.Context, symbol string, sentiment dto.SentimentSummary, withMonteCarlo bool) (result dto.PredictionResult) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("Recovered from panic while predicting symbol",
				logger.StringField("symbol", symbol),
				logger.Field("panic", r),
			)
			result = dto.PredictionResult{Symbol: symbol, Error: fmt.Sprintf("internal error: %v", r)}
		}
	}()

	snapshot, err := s.techRepo.GetSnapshot(ctx, symbol)
	if err != nil {
		s.log.Error("Failed to get technical snapshot",
			logger.StringField("symbol", symbol),
			logger.ErrorField(err),
		)
		return dto.PredictionResult{Symbol: symbol, Error: err.Error()}
	}

	decision := engine.Fuse(sentiment, *snapshot)

	expectedReturn := snapshot.PriceChange1Day / 100
	riskMetrics := risk.Assess(expectedReturn)

	sentimentCopy := sentiment
	result = dto.PredictionResult{
		Symbol:       symbol,
		Prediction:   decision.Action,
		Confidence:   decision.Confidence,
		Reasoning:    decision.Reasoning,
		CurrentPrice: snapshot.CurrentPrice,
		TechnicalIndicators: &dto.TechnicalIndicatorsResponse{
			RSI:           snapshot.RSI,
			MACD:          snapshot.MACD,
			Volatility:    snapshot.Volatility,
			PriceChange1D: snapshot.PriceChange1Day,
		},
		SentimentAnalysis: &sentimentCopy,
		Risk: &dto.RiskResponse{
			Volatility: riskMetrics.Volatility,
			VaR95:      riskMetrics.VaR95,
			Level:      riskMetrics.Level,
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	if withMonteCarlo {
		simulated := s.simulator.Simulate(snapshot.CurrentPrice, expectedReturn, riskMetrics.Volatility)
		result.MonteCarlo = &dto.MonteCarloResponse{
			ExpectedPrice30D: simulated.ExpectedPrice,
			WorstCase5Pct:    simulated.WorstCase5Pct,
			BestCase95Pct:    simulated.BestCase95Pct,
		}
	}

	s.recordSignal(ctx, &result, decision.Score)

	return result
}

// recordSignal persists the prediction and publishes it to the signal stream.
// Both are best effort; a storage failure never fails the prediction.
func (s *predictorService) recordSignal(ctx context.Context, result *dto.PredictionResult, score float64) {
	payload, err := json.Marshal(result)
	if err != nil {
		s.log.Error("Failed to marshal prediction for recording", logger.ErrorField(err), logger.StringField("symbol", result.Symbol))
		return
	}

	if s.signalRepo != nil {
		signal := &entity.Signal{
			Symbol:          result.Symbol,
			Action:          result.Prediction,
			ConfidenceScore: result.Confidence,
			Score:           score,
			CurrentPrice:    result.CurrentPrice,
			Reasoning:       result.Reasoning,
			Data:            payload,
		}
		if err := s.signalRepo.Create(ctx, signal); err != nil {
			s.log.Error("Failed to persist signal", logger.ErrorField(err), logger.StringField("symbol", result.Symbol))
		}
	}

	if s.redisClient != nil {
		args := &goredis.XAddArgs{
			Stream: common.RedisStreamSignalGenerated,
			Values: map[string]interface{}{"payload": string(payload)},
		}
		if s.cfg.Redis.StreamMaxLen > 0 {
			args.MaxLen = s.cfg.Redis.StreamMaxLen
			args.Approx = true
		}
		if err := s.redisClient.XAdd(ctx, args).Err(); err != nil {
			s.log.Error("Failed to publish signal to stream", logger.ErrorField(err), logger.StringField("symbol", result.Symbol))
		}
	}
}
