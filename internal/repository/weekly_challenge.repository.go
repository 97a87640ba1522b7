package repository

import (
	"context"
	"time"

	"fitcircle/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WeeklyChallengeRepository interface {
	Create(ctx context.Context, challenge *models.WeeklyChallenge) error
	FindActive(ctx context.Context, familyID uuid.UUID, date time.Time) (*models.WeeklyChallenge, error)
	ListByFamily(ctx context.Context, familyID uuid.UUID) ([]models.WeeklyChallenge, error)
}

type weeklyChallengeRepository struct {
	db *gorm.DB
}

func NewWeeklyChallengeRepository(db *gorm.DB) WeeklyChallengeRepository {
	return &weeklyChallengeRepository{db}
}

func (r *weeklyChallengeRepository) Create(ctx context.Context, challenge *models.WeeklyChallenge) error {
	return r.db.WithContext(ctx).Create(challenge).Error
}

// FindActive returns the challenge covering date with the latest start.
func (r *weeklyChallengeRepository) FindActive(ctx context.Context, familyID uuid.UUID, date time.Time) (*models.WeeklyChallenge, error) {
	var challenge models.WeeklyChallenge
	err := r.db.WithContext(ctx).
		Where("family_id = ? AND start_date <= ? AND end_date >= ?", familyID, date, date).
		Order("start_date DESC").
		First(&challenge).Error
	if err != nil {
		return nil, err
	}
	return &challenge, nil
}

func (r *weeklyChallengeRepository) ListByFamily(ctx context.Context, familyID uuid.UUID) ([]models.WeeklyChallenge, error) {
	var challenges []models.WeeklyChallenge
	err := r.db.WithContext(ctx).
		Where("family_id = ?", familyID).
		Order("start_date DESC").
		Find(&challenges).Error
	return challenges, err
}
