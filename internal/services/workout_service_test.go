package services

import (
	"context"
	"testing"
	"time"

	"fitcircle/internal/models"
	"fitcircle/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func TestAddExerciseUsesCountAsOrderIndex(t *testing.T) {
	repo := new(mocks.MockWorkoutExerciseRepository)
	svc := NewWorkoutService(repo, zap.NewNop())
	user := uuid.New()
	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	sets, reps := 3, 12

	repo.On("CountByUserAndDate", mock.Anything, user, date).Return(int64(2), nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*models.WorkoutExercise")).Return(nil)

	exercise, err := svc.Add(context.Background(), user, date, NewExercise{Name: " Squats ", Sets: &sets, Reps: &reps})
	require.NoError(t, err)
	assert.Equal(t, "Squats", exercise.ExerciseName)
	assert.Equal(t, 2, exercise.OrderIndex)
	assert.False(t, exercise.Completed)
}

func TestAddExerciseRequiresName(t *testing.T) {
	repo := new(mocks.MockWorkoutExerciseRepository)
	svc := NewWorkoutService(repo, zap.NewNop())

	_, err := svc.Add(context.Background(), uuid.New(), time.Now(), NewExercise{Name: " "})
	assert.Equal(t, KindValidation, KindOf(err))
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestToggleExercise(t *testing.T) {
	repo := new(mocks.MockWorkoutExerciseRepository)
	svc := NewWorkoutService(repo, zap.NewNop())
	user, id := uuid.New(), uuid.New()

	repo.On("FindByID", mock.Anything, user, id).Return(&models.WorkoutExercise{ID: id, UserID: user, Completed: false}, nil)
	repo.On("SetCompleted", mock.Anything, user, id, true).Return(nil)

	exercise, err := svc.Toggle(context.Background(), user, id)
	require.NoError(t, err)
	assert.True(t, exercise.Completed)
	repo.AssertExpectations(t)
}

func TestToggleForeignExerciseIsNotFound(t *testing.T) {
	repo := new(mocks.MockWorkoutExerciseRepository)
	svc := NewWorkoutService(repo, zap.NewNop())
	user, id := uuid.New(), uuid.New()
	repo.On("FindByID", mock.Anything, user, id).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Toggle(context.Background(), user, id)
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestDeleteExercise(t *testing.T) {
	repo := new(mocks.MockWorkoutExerciseRepository)
	svc := NewWorkoutService(repo, zap.NewNop())
	user, id, missing := uuid.New(), uuid.New(), uuid.New()
	repo.On("Delete", mock.Anything, user, id).Return(int64(1), nil)
	repo.On("Delete", mock.Anything, user, missing).Return(int64(0), nil)

	assert.NoError(t, svc.Delete(context.Background(), user, id))
	assert.Equal(t, KindNotFound, KindOf(svc.Delete(context.Background(), user, missing)))
}
