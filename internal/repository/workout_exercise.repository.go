package repository

import (
	"context"
	"time"

	"fitcircle/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WorkoutExerciseRepository interface {
	Create(ctx context.Context, exercise *models.WorkoutExercise) error
	CountByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (int64, error)
	FindByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) ([]models.WorkoutExercise, error)
	FindByID(ctx context.Context, userID, id uuid.UUID) (*models.WorkoutExercise, error)
	SetCompleted(ctx context.Context, userID, id uuid.UUID, completed bool) error
	Delete(ctx context.Context, userID, id uuid.UUID) (int64, error)
}

type workoutExerciseRepository struct {
	db *gorm.DB
}

func NewWorkoutExerciseRepository(db *gorm.DB) WorkoutExerciseRepository {
	return &workoutExerciseRepository{db}
}

func (r *workoutExerciseRepository) Create(ctx context.Context, exercise *models.WorkoutExercise) error {
	return r.db.WithContext(ctx).Create(exercise).Error
}

func (r *workoutExerciseRepository) CountByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.WorkoutExercise{}).
		Where("user_id = ? AND date = ?", userID, date).
		Count(&count).Error
	return count, err
}

func (r *workoutExerciseRepository) FindByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) ([]models.WorkoutExercise, error) {
	var exercises []models.WorkoutExercise
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		Order("order_index ASC").
		Find(&exercises).Error
	return exercises, err
}

// FindByID only returns exercises owned by userID.
func (r *workoutExerciseRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*models.WorkoutExercise, error) {
	var exercise models.WorkoutExercise
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&exercise).Error
	if err != nil {
		return nil, err
	}
	return &exercise, nil
}

func (r *workoutExerciseRepository) SetCompleted(ctx context.Context, userID, id uuid.UUID, completed bool) error {
	return r.db.WithContext(ctx).Model(&models.WorkoutExercise{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("completed", completed).Error
}

func (r *workoutExerciseRepository) Delete(ctx context.Context, userID, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&models.WorkoutExercise{})
	return res.RowsAffected, res.Error
}
