package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WeightLog is append-only.
type WeightLog struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UserID    uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	WeightKg  float64   `gorm:"not null" json:"weight_kg" example:"72.4"`
	LoggedAt  time.Time `gorm:"index;not null" json:"logged_at"`
	Notes     *string   `json:"notes,omitempty"`
}

func (WeightLog) TableName() string { return "weight_logs" }

func (w *WeightLog) BeforeCreate(tx *gorm.DB) error {
	assignID(&w.ID)
	return nil
}
