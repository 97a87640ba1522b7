package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"fitcircle/internal/models"
	"fitcircle/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLogMealAddsCalories(t *testing.T) {
	repo := new(mocks.MockMealRepository)
	svc := NewMealService(repo, zap.NewNop())
	user := uuid.New()
	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	repo.On("CreateAndIncrement", mock.Anything, mock.MatchedBy(func(m *models.Meal) bool {
		return m.UserID == user && m.MealType == models.MealSnack && m.Calories == 250 && m.Title == "Apple"
	})).Return(&models.DailyProgress{UserID: user, Date: date, CaloriesConsumed: 1450}, nil)

	logged, err := svc.LogMeal(context.Background(), user, date, MealEntry{Title: " Apple ", Calories: 250})
	require.NoError(t, err)
	assert.Equal(t, 1450, logged.CaloriesConsumed)
	assert.Equal(t, models.MealSnack, logged.Meal.MealType)
	repo.AssertExpectations(t)
}

func TestLogMealValidation(t *testing.T) {
	tests := []struct {
		name  string
		entry MealEntry
	}{
		{"missing title", MealEntry{Calories: 100}},
		{"negative calories", MealEntry{Title: "Toast", Calories: -1}},
		{"unknown meal type", MealEntry{Title: "Toast", MealType: "brunch"}},
		{"negative protein", MealEntry{Title: "Toast", Protein: -2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockMealRepository)
			svc := NewMealService(repo, zap.NewNop())

			_, err := svc.LogMeal(context.Background(), uuid.New(), time.Now(), tt.entry)
			assert.Equal(t, KindValidation, KindOf(err))
			repo.AssertNotCalled(t, "CreateAndIncrement", mock.Anything, mock.Anything)
		})
	}
}

func TestLogMealStoreFailure(t *testing.T) {
	repo := new(mocks.MockMealRepository)
	svc := NewMealService(repo, zap.NewNop())
	repo.On("CreateAndIncrement", mock.Anything, mock.Anything).Return(nil, errors.New("deadlock detected"))

	_, err := svc.LogMeal(context.Background(), uuid.New(), time.Now(), MealEntry{Title: "Toast", Calories: 120})
	assert.Equal(t, KindStore, KindOf(err))
}
