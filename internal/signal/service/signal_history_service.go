package service

import (
	"context"

	"stocksphere-signal/internal/entity"
	"stocksphere-signal/internal/signal/dto"
	"stocksphere-signal/internal/signal/repository"
	"stocksphere-signal/pkg/logger"
)

// SignalHistoryService exposes previously emitted signals.
type SignalHistoryService interface {
	GetRecent(ctx context.Context, limit int) ([]dto.SignalResponse, error)
	GetBySymbol(ctx context.Context, symbol string, limit int) ([]dto.SignalResponse, error)
}

type signalHistoryService struct {
	signalRepo repository.SignalRepository
	log        *logger.Logger
}

// NewSignalHistoryService creates a new signal history service.
func NewSignalHistoryService(signalRepo repository.SignalRepository, log *logger.Logger) SignalHistoryService {
	return &signalHistoryService{
		signalRepo: signalRepo,
		log:        log,
	}
}

func (s *signalHistoryService) GetRecent(ctx context.Context, limit int) ([]dto.SignalResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	signals, err := s.signalRepo.FindRecent(ctx, limit)
	if err != nil {
		s.log.Error("Failed to fetch recent signals", logger.ErrorField(err))
		return nil, err
	}
	return mapSignals(signals), nil
}

func (s *signalHistoryService) GetBySymbol(ctx context.Context, symbol string, limit int) ([]dto.SignalResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	signals, err := s.signalRepo.FindBySymbol(ctx, symbol, limit)
	if err != nil {
		s.log.Error("Failed to fetch signals by symbol", logger.ErrorField(err), logger.StringField("symbol", symbol))
		return nil, err
	}
	return mapSignals(signals), nil
}

func mapSignals(signals []entity.Signal) []dto.SignalResponse {
	responses := make([]dto.SignalResponse, 0, len(signals))
	for _, signal := range signals {
		responses = append(responses, dto.SignalResponse{
			ID:              signal.ID,
			Symbol:          signal.Symbol,
			Action:          signal.Action,
			ConfidenceScore: signal.ConfidenceScore,
			Score:           signal.Score,
			CurrentPrice:    signal.CurrentPrice,
			Reasoning:       signal.Reasoning,
			CreatedAt:       signal.CreatedAt,
		})
	}
	return responses
}
