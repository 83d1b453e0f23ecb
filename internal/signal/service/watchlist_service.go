package service

import (
	"context"
	"time"

	"stocksphere-signal/internal/signal/config"
	"stocksphere-signal/internal/signal/dto"
	"stocksphere-signal/pkg/common"
	"stocksphere-signal/pkg/logger"
	"stocksphere-signal/pkg/telegram"
	"stocksphere-signal/pkg/utils"

	"github.com/robfig/cron/v3"
)

// WatchlistService periodically scans the configured symbols and pushes
// actionable signals to Telegram.
type WatchlistService interface {
	Start(ctx context.Context) error
	Scan(ctx context.Context)
}

type watchlistService struct {
	cfg         *config.Config
	log         *logger.Logger
	predictor   PredictorService
	telegramBot telegram.Notifier
	cron        *cron.Cron
}

// NewWatchlistService creates a new watchlist scanner.
func NewWatchlistService(cfg *config.Config, log *logger.Logger, predictor PredictorService, telegramBot telegram.Notifier) WatchlistService {
	return &watchlistService{
		cfg:         cfg,
		log:         log,
		predictor:   predictor,
		telegramBot: telegramBot,
		cron:        cron.New(),
	}
}

// Start schedules the scan and blocks until the context is canceled.
func (s *watchlistService) Start(ctx context.Context) error {
	if len(s.cfg.Watchlist.Symbols) == 0 {
		s.log.Warn("Watchlist enabled but no symbols configured, scanner not started")
		return nil
	}

	_, err := s.cron.AddFunc(s.cfg.Watchlist.CronSchedule, func() {
		utils.GoSafe(func() {
			s.Scan(ctx)
		})
	})
	if err != nil {
		return err
	}

	s.log.Info("Watchlist scanner started",
		logger.StringField("schedule", s.cfg.Watchlist.CronSchedule),
		logger.IntField("symbols", len(s.cfg.Watchlist.Symbols)),
	)

	s.cron.Start()
	<-ctx.Done()
	<-s.cron.Stop().Done()
	s.log.Info("Watchlist scanner stopped")
	return nil
}

// Scan runs one portfolio prediction over the watchlist and alerts on every
// BUY or SELL outcome.
func (s *watchlistService) Scan(ctx context.Context) {
	if !utils.ShouldContinue(ctx, s.log) {
		return
	}

	var symbols []string
	for _, symbol := range s.cfg.Watchlist.Symbols {
		if !utils.ContainsString(symbols, symbol) {
			symbols = append(symbols, symbol)
		}
	}

	var lookback *int
	if s.cfg.Watchlist.LookbackHours > 0 {
		lookback = &s.cfg.Watchlist.LookbackHours
	}

	resp, err := s.predictor.PredictPortfolio(ctx, &dto.PredictRequest{
		Symbols:       symbols,
		LookbackHours: lookback,
	})
	if err != nil {
		s.log.Error("Watchlist scan failed", logger.ErrorField(err))
		msg := telegram.FormatErrorAlertMessage(time.Now().UTC(), "watchlist scan failed: "+err.Error())
		if sendErr := s.telegramBot.SendMessage(msg); sendErr != nil {
			s.log.Error("Failed to send error alert", logger.ErrorField(sendErr))
		}
		return
	}

	for _, prediction := range resp.Predictions {
		if prediction.Error != "" {
			s.log.Warn("Watchlist symbol failed",
				logger.StringField("symbol", prediction.Symbol),
				logger.StringField("error", prediction.Error),
			)
			continue
		}
		if prediction.Prediction != common.SignalActionBuy && prediction.Prediction != common.SignalActionSell {
			continue
		}

		s.notify(prediction)
	}

	s.log.Info("Watchlist scan completed",
		logger.IntField("total", resp.Summary.TotalSymbols),
		logger.IntField("buy", resp.Summary.BuySignals),
		logger.IntField("sell", resp.Summary.SellSignals),
		logger.IntField("hold", resp.Summary.HoldSignals),
	)
}

func (s *watchlistService) notify(prediction dto.PredictionResult) {
	timestamp, err := time.Parse(time.RFC3339, prediction.Timestamp)
	if err != nil {
		timestamp = time.Now().UTC()
	}
	msg := telegram.FormatSignalAlertMessage(telegram.SignalAlert{
		Symbol:     prediction.Symbol,
		Action:     prediction.Prediction,
		Confidence: prediction.Confidence,
		Price:      prediction.CurrentPrice,
		Reasoning:  prediction.Reasoning,
		Timestamp:  timestamp,
	})
	if err := s.telegramBot.SendMessage(msg); err != nil {
		s.log.Error("Failed to send signal alert",
			logger.ErrorField(err),
			logger.StringField("symbol", prediction.Symbol),
		)
	}
}
