package repository

import (
	"context"

	"fitcircle/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WeightLogRepository interface {
	CreateAndMirror(ctx context.Context, entry *models.WeightLog) error
	FindRecentByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]models.WeightLog, error)
}

type weightLogRepository struct {
	db *gorm.DB
}

func NewWeightLogRepository(db *gorm.DB) WeightLogRepository {
	return &weightLogRepository{db}
}

// CreateAndMirror appends the entry and copies its weight into
// profiles.current_weight_kg in one transaction.
func (r *weightLogRepository) CreateAndMirror(ctx context.Context, entry *models.WeightLog) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(entry).Error; err != nil {
			return err
		}
		return tx.Model(&models.Profile{}).
			Where("user_id = ?", entry.UserID).
			Update("current_weight_kg", entry.WeightKg).Error
	})
}

func (r *weightLogRepository) FindRecentByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]models.WeightLog, error) {
	var logs []models.WeightLog
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("logged_at DESC").
		Limit(limit).
		Find(&logs).Error
	return logs, err
}
