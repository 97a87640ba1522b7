package controllers_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"fitcircle/internal/controllers"
	"fitcircle/internal/models"
	"fitcircle/internal/repository/mocks"
	"fitcircle/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupProgressRouter(userID uuid.UUID) (*gin.Engine, *mocks.MockDailyProgressRepository, *mocks.MockWeightLogRepository) {
	progressRepo := new(mocks.MockDailyProgressRepository)
	weightRepo := new(mocks.MockWeightLogRepository)
	controller := controllers.NewProgressController(services.NewProgressService(progressRepo, weightRepo, zap.NewNop()), testClock())

	router := setupTestRouter()
	router.Use(addAuthMiddleware(userID))
	router.GET("/progress", controller.GetDaily)
	router.GET("/progress/history", controller.History)
	router.POST("/progress/:field", controller.LogProgress)
	router.POST("/weight", controller.LogWeight)
	router.GET("/weight", controller.RecentWeights)
	return router, progressRepo, weightRepo
}

func TestLogProgress(t *testing.T) {
	userID := uuid.New()
	today := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	explicit := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		path           string
		requestBody    interface{}
		setupMock      func(*mocks.MockDailyProgressRepository)
		expectedStatus int
		expectedTotal  float64
	}{
		{
			name:        "adds steps for today",
			path:        "/progress/steps",
			requestBody: map[string]interface{}{"amount": 2500},
			setupMock: func(m *mocks.MockDailyProgressRepository) {
				m.On("Increment", mock.Anything, userID, today, models.FieldSteps, 2500).
					Return(&models.DailyProgress{Steps: 7500}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedTotal:  7500,
		},
		{
			name:        "adds water for the client's date",
			path:        "/progress/water_ml",
			requestBody: map[string]interface{}{"amount": 250, "date": "2024-01-02"},
			setupMock: func(m *mocks.MockDailyProgressRepository) {
				m.On("Increment", mock.Anything, userID, explicit, models.FieldWaterMl, 250).
					Return(&models.DailyProgress{WaterMl: 1250}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedTotal:  1250,
		},
		{
			name:           "unknown field",
			path:           "/progress/heart_rate",
			requestBody:    map[string]interface{}{"amount": 10},
			setupMock:      func(m *mocks.MockDailyProgressRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "negative amount",
			path:           "/progress/steps",
			requestBody:    map[string]interface{}{"amount": -10},
			setupMock:      func(m *mocks.MockDailyProgressRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing amount",
			path:           "/progress/steps",
			requestBody:    map[string]interface{}{},
			setupMock:      func(m *mocks.MockDailyProgressRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "repository error",
			path:        "/progress/calories_burned",
			requestBody: map[string]interface{}{"amount": 300},
			setupMock: func(m *mocks.MockDailyProgressRepository) {
				m.On("Increment", mock.Anything, userID, today, models.FieldCaloriesBurned, 300).
					Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, progressRepo, _ := setupProgressRouter(userID)
			tt.setupMock(progressRepo)

			w := performRequest(router, http.MethodPost, tt.path, tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)
			response := decodeBody(t, w)
			if tt.expectedStatus == http.StatusOK {
				data := response["data"].(map[string]interface{})
				assert.Equal(t, tt.expectedTotal, data["total"])
			} else {
				assert.Equal(t, "error", response["status"])
			}
			if tt.expectedStatus == http.StatusInternalServerError {
				assert.NotContains(t, w.Body.String(), "database error")
			}
		})
	}
}

func TestGetDailyProgressMissingRow(t *testing.T) {
	userID := uuid.New()
	router, progressRepo, _ := setupProgressRouter(userID)
	progressRepo.On("FindByUserAndDate", mock.Anything, userID, mock.Anything).Return(nil, gorm.ErrRecordNotFound)

	w := performRequest(router, http.MethodGet, "/progress", nil)

	require.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, float64(0), data["steps"])
}

func TestProgressHistoryDefaultsToLastWeek(t *testing.T) {
	userID := uuid.New()
	router, progressRepo, _ := setupProgressRouter(userID)
	to := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	progressRepo.On("FindByUserAndDateRange", mock.Anything, userID, to.AddDate(0, 0, -6), to).Return([]models.DailyProgress{}, nil)

	w := performRequest(router, http.MethodGet, "/progress/history", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	progressRepo.AssertExpectations(t)
}

func TestLogWeight(t *testing.T) {
	userID := uuid.New()
	router, _, weightRepo := setupProgressRouter(userID)
	weightRepo.On("CreateAndMirror", mock.Anything, mock.MatchedBy(func(e *models.WeightLog) bool {
		return e.UserID == userID && e.WeightKg == 72.5 && e.LoggedAt.Equal(testNow)
	})).Return(nil)

	w := performRequest(router, http.MethodPost, "/weight", map[string]interface{}{"weight_kg": 72.5})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = performRequest(router, http.MethodPost, "/weight", map[string]interface{}{"weight_kg": 900})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecentWeightsBadLimit(t *testing.T) {
	router, _, _ := setupProgressRouter(uuid.New())

	w := performRequest(router, http.MethodGet, "/weight?limit=ten", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid limit", decodeBody(t, w)["message"])
}
