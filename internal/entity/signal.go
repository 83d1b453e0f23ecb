package entity

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Signal is a persisted record of one emitted trading signal.
type Signal struct {
	ID              int64          `json:"id"`
	Symbol          string         `gorm:"not null;index" json:"symbol"`
	Action          string         `gorm:"not null" json:"action"`
	ConfidenceScore float64        `json:"confidence_score"`
	Score           float64        `json:"score"`
	CurrentPrice    float64        `json:"current_price"`
	Reasoning       pq.StringArray `gorm:"type:text[]" json:"reasoning"`
	Data            datatypes.JSON `gorm:"type:jsonb" json:"data"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `json:"deleted_at"`
}

func (Signal) TableName() string {
	return "signals"
}
