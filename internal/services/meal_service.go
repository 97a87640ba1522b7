package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fitcircle/internal/models"
	"fitcircle/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxMealCalories = 20000

// MealService logs eaten meals. Each logged meal also adds its calories to
// the day's calories_consumed.
type MealService struct {
	mealRepo repository.MealRepository
	logger   *zap.Logger
}

func NewMealService(mealRepo repository.MealRepository, logger *zap.Logger) *MealService {
	return &MealService{mealRepo: mealRepo, logger: logger}
}

type MealEntry struct {
	MealType    models.MealType
	Time        string
	Title       string
	Ingredients string
	Calories    int
	Tag         string
	Protein     float64
	Carbs       float64
	Fat         float64
}

type LoggedMeal struct {
	Meal             *models.Meal `json:"meal"`
	CaloriesConsumed int          `json:"calories_consumed"`
}

func (s *MealService) LogMeal(ctx context.Context, userID uuid.UUID, date time.Time, entry MealEntry) (*LoggedMeal, error) {
	if entry.MealType == "" {
		entry.MealType = models.MealSnack
	}
	if !entry.MealType.Valid() {
		return nil, validationError(fmt.Sprintf("unknown meal type %q", entry.MealType))
	}
	title := strings.TrimSpace(entry.Title)
	if title == "" {
		return nil, validationError("meal title is required")
	}
	if entry.Calories < 0 || entry.Calories > maxMealCalories {
		return nil, validationError(fmt.Sprintf("calories must be between 0 and %d", maxMealCalories))
	}
	if entry.Protein < 0 || entry.Carbs < 0 || entry.Fat < 0 {
		return nil, validationError("macros must not be negative")
	}

	meal := &models.Meal{
		UserID:      userID,
		Date:        date,
		MealType:    entry.MealType,
		Time:        strings.TrimSpace(entry.Time),
		Title:       title,
		Ingredients: strings.TrimSpace(entry.Ingredients),
		Calories:    entry.Calories,
		Tag:         strings.TrimSpace(entry.Tag),
		Protein:     entry.Protein,
		Carbs:       entry.Carbs,
		Fat:         entry.Fat,
	}
	progress, err := s.mealRepo.CreateAndIncrement(ctx, meal)
	if err != nil {
		s.logger.Error("meal log failed", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, storeFailure("failed to log meal", err)
	}

	return &LoggedMeal{Meal: meal, CaloriesConsumed: progress.CaloriesConsumed}, nil
}

func (s *MealService) ListMeals(ctx context.Context, userID uuid.UUID, date time.Time) ([]models.Meal, error) {
	meals, err := s.mealRepo.FindByUserAndDate(ctx, userID, date)
	if err != nil {
		return nil, storeFailure("failed to load meals", err)
	}
	return meals, nil
}
