package controllers_test

import (
	"context"
	"net/http"
	"testing"

	"fitcircle/internal/controllers"
	"fitcircle/internal/models"
	"fitcircle/internal/openai"
	"fitcircle/internal/repository/mocks"
	"fitcircle/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fakeGenerator struct {
	plan *models.MealPlan
	err  error
}

func (f fakeGenerator) GenerateMealPlan(ctx context.Context, req openai.MealPlanRequest) (*models.MealPlan, error) {
	return f.plan, f.err
}

func setupMealRouter(userID uuid.UUID, gen services.MealPlanGenerator) (*gin.Engine, *mocks.MockMealRepository) {
	mealRepo := new(mocks.MockMealRepository)
	profileRepo := new(mocks.MockProfileRepository)
	prefsRepo := new(mocks.MockDietaryPreferencesRepository)
	profileRepo.On("FindByUserID", mock.Anything, mock.Anything).Return(nil, gorm.ErrRecordNotFound)
	prefsRepo.On("FindByUserID", mock.Anything, mock.Anything).Return(nil, gorm.ErrRecordNotFound)

	logger := zap.NewNop()
	controller := controllers.NewMealController(
		services.NewMealService(mealRepo, logger),
		services.NewMealPlanService(profileRepo, prefsRepo, gen, nil, logger),
		testClock(),
	)

	router := setupTestRouter()
	router.Use(addAuthMiddleware(userID))
	router.POST("/meals/log", controller.LogMeal)
	router.GET("/meals", controller.ListMeals)
	router.POST("/meals/generate", controller.GenerateMeals)
	router.GET("/meals/plan", controller.GetMealPlan)
	return router, mealRepo
}

func TestGenerateMeals(t *testing.T) {
	plan := &models.MealPlan{Meals: []models.GeneratedMeal{{Type: models.MealDinner, Title: "Salmon", Calories: 640}}}

	tests := []struct {
		name           string
		generator      fakeGenerator
		requestBody    interface{}
		expectedStatus int
		expectedError  string
	}{
		{"generates a plan", fakeGenerator{plan: plan}, map[string]interface{}{"meal_type": "dinner"}, http.StatusOK, ""},
		{"empty body means full day", fakeGenerator{plan: plan}, nil, http.StatusOK, ""},
		{"unknown meal type", fakeGenerator{plan: plan}, map[string]interface{}{"meal_type": "brunch"}, http.StatusBadRequest, "validation"},
		{"rate limited", fakeGenerator{err: openai.ErrRateLimited}, nil, http.StatusTooManyRequests, services.CodeRateLimited},
		{"credits exhausted", fakeGenerator{err: openai.ErrQuotaExhausted}, nil, http.StatusPaymentRequired, services.CodeQuotaExhausted},
		{"gateway failure", fakeGenerator{err: openai.ErrGenerationFailed}, nil, http.StatusBadGateway, services.CodeGenerationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := setupMealRouter(uuid.New(), tt.generator)

			w := performRequest(router, http.MethodPost, "/meals/generate", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, decodeBody(t, w)["error"])
			}
		})
	}
}

func TestGetMealPlanWithoutCache(t *testing.T) {
	router, _ := setupMealRouter(uuid.New(), fakeGenerator{})

	w := performRequest(router, http.MethodGet, "/meals/plan", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLogMeal(t *testing.T) {
	userID := uuid.New()
	router, mealRepo := setupMealRouter(userID, fakeGenerator{})
	mealRepo.On("CreateAndIncrement", mock.Anything, mock.AnythingOfType("*models.Meal")).
		Return(&models.DailyProgress{UserID: userID, CaloriesConsumed: 900}, nil)

	w := performRequest(router, http.MethodPost, "/meals/log", map[string]interface{}{
		"meal_type": "lunch",
		"title":     "Chicken salad",
		"calories":  520,
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, float64(900), data["calories_consumed"])
}
