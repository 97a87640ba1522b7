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

const maxExerciseNameLength = 120

// WorkoutService keeps the per-day exercise plan.
type WorkoutService struct {
	workoutRepo repository.WorkoutExerciseRepository
	logger      *zap.Logger
}

func NewWorkoutService(workoutRepo repository.WorkoutExerciseRepository, logger *zap.Logger) *WorkoutService {
	return &WorkoutService{workoutRepo: workoutRepo, logger: logger}
}

type NewExercise struct {
	Name     string
	Sets     *int
	Reps     *int
	WeightKg *float64
}

func (s *WorkoutService) List(ctx context.Context, userID uuid.UUID, date time.Time) ([]models.WorkoutExercise, error) {
	exercises, err := s.workoutRepo.FindByUserAndDate(ctx, userID, date)
	if err != nil {
		return nil, storeFailure("failed to load workout plan", err)
	}
	return exercises, nil
}

// Add appends an exercise to the day. Its order index is the current count,
// so deletes leave gaps.
func (s *WorkoutService) Add(ctx context.Context, userID uuid.UUID, date time.Time, input NewExercise) (*models.WorkoutExercise, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, validationError("exercise name is required")
	}
	if len([]rune(name)) > maxExerciseNameLength {
		return nil, validationError("exercise name is too long")
	}
	if input.Sets != nil && *input.Sets < 0 {
		return nil, validationError("sets must not be negative")
	}
	if input.Reps != nil && *input.Reps < 0 {
		return nil, validationError("reps must not be negative")
	}
	if input.WeightKg != nil && (*input.WeightKg < 0 || *input.WeightKg > maxWeightKg*2) {
		return nil, validationError(fmt.Sprintf("weight must be between 0 and %d kg", maxWeightKg*2))
	}

	count, err := s.workoutRepo.CountByUserAndDate(ctx, userID, date)
	if err != nil {
		return nil, storeFailure("failed to add exercise", err)
	}

	exercise := &models.WorkoutExercise{
		UserID:       userID,
		Date:         date,
		ExerciseName: name,
		Sets:         input.Sets,
		Reps:         input.Reps,
		WeightKg:     input.WeightKg,
		OrderIndex:   int(count),
	}
	if err := s.workoutRepo.Create(ctx, exercise); err != nil {
		return nil, storeFailure("failed to add exercise", err)
	}
	return exercise, nil
}

// Toggle flips the completed flag of one of the user's exercises.
func (s *WorkoutService) Toggle(ctx context.Context, userID, id uuid.UUID) (*models.WorkoutExercise, error) {
	exercise, err := s.workoutRepo.FindByID(ctx, userID, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, notFoundError("", "exercise not found")
		}
		return nil, storeFailure("failed to update exercise", err)
	}

	exercise.Completed = !exercise.Completed
	if err := s.workoutRepo.SetCompleted(ctx, userID, id, exercise.Completed); err != nil {
		return nil, storeFailure("failed to update exercise", err)
	}
	return exercise, nil
}

func (s *WorkoutService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	removed, err := s.workoutRepo.Delete(ctx, userID, id)
	if err != nil {
		return storeFailure("failed to delete exercise", err)
	}
	if removed == 0 {
		return notFoundError("", "exercise not found")
	}
	s.logger.Debug("exercise deleted", zap.String("user_id", userID.String()), zap.String("exercise_id", id.String()))
	return nil
}
