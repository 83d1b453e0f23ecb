package repository

import (
	"context"

	"stocksphere-signal/internal/entity"

	"gorm.io/gorm"
)

// SignalRepository persists emitted signals.
type SignalRepository interface {
	Create(ctx context.Context, signal *entity.Signal) error
	FindRecent(ctx context.Context, limit int) ([]entity.Signal, error)
	FindBySymbol(ctx context.Context, symbol string, limit int) ([]entity.Signal, error)
}

type signalRepository struct {
	db *gorm.DB
}

// NewSignalRepository creates a gorm-backed SignalRepository.
func NewSignalRepository(db *gorm.DB) SignalRepository {
	return &signalRepository{db: db}
}

func (r *signalRepository) Create(ctx context.Context, signal *entity.Signal) error {
	return r.db.WithContext(ctx).Create(signal).Error
}

func (r *signalRepository) FindRecent(ctx context.Context, limit int) ([]entity.Signal, error) {
	var signals []entity.Signal
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&signals).Error
	return signals, err
}

func (r *signalRepository) FindBySymbol(ctx context.Context, symbol string, limit int) ([]entity.Signal, error) {
	var signals []entity.Signal
	err := r.db.WithContext(ctx).
		Where("symbol = ?", symbol).
		Order("created_at DESC").
		Limit(limit).
		Find(&signals).Error
	return signals, err
}
