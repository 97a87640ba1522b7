package repository

import (
	"context"
	"time"

	"fitcircle/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MealRepository interface {
	CreateAndIncrement(ctx context.Context, meal *models.Meal) (*models.DailyProgress, error)
	FindByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) ([]models.Meal, error)
}

type mealRepository struct {
	db *gorm.DB
}

func NewMealRepository(db *gorm.DB) MealRepository {
	return &mealRepository{db}
}

// CreateAndIncrement stores the meal and adds its calories to the day's
// calories_consumed in one transaction.
func (r *mealRepository) CreateAndIncrement(ctx context.Context, meal *models.Meal) (*models.DailyProgress, error) {
	var progress *models.DailyProgress
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(meal).Error; err != nil {
			return err
		}
		var err error
		progress, err = incrementTx(tx, meal.UserID, meal.Date, models.FieldCaloriesConsumed, meal.Calories)
		return err
	})
	if err != nil {
		return nil, err
	}
	return progress, nil
}

func (r *mealRepository) FindByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) ([]models.Meal, error) {
	var meals []models.Meal
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		Order("created_at ASC").
		Find(&meals).Error
	return meals, err
}
