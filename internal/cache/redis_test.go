package cache

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestMealPlanKey(t *testing.T) {
	userID := uuid.MustParse("7b0a4f8e-33b7-4a43-9d8c-0d9a6a3c1e11")
	date := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "mealplan:7b0a4f8e-33b7-4a43-9d8c-0d9a6a3c1e11:2024-03-09", mealPlanKey(userID, date))
}

func TestNewRedisClientRejectsBadURL(t *testing.T) {
	_, err := NewRedisClient(context.Background(), "not-a-redis-url")
	assert.Error(t, err)
}
