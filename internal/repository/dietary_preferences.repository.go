package repository

import (
	"context"

	"fitcircle/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DietaryPreferencesRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*models.DietaryPreferences, error)
	Upsert(ctx context.Context, prefs *models.DietaryPreferences) error
}

type dietaryPreferencesRepository struct {
	db *gorm.DB
}

func NewDietaryPreferencesRepository(db *gorm.DB) DietaryPreferencesRepository {
	return &dietaryPreferencesRepository{db}
}

func (r *dietaryPreferencesRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*models.DietaryPreferences, error) {
	var prefs models.DietaryPreferences
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&prefs).Error
	if err != nil {
		return nil, err
	}
	return &prefs, nil
}

func (r *dietaryPreferencesRepository) Upsert(ctx context.Context, prefs *models.DietaryPreferences) error {
	return r.db.WithContext(ctx).Clauses(
		clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"preference", "allergies", "updated_at"}),
		},
		clause.Returning{},
	).Create(prefs).Error
}
