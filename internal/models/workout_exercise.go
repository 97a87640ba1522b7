package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WorkoutExercise struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index:idx_workout_user_date" json:"user_id"`
	Date         time.Time `gorm:"type:date;not null;index:idx_workout_user_date" json:"date" example:"2024-01-01"`
	ExerciseName string    `gorm:"not null" json:"exercise_name" example:"Squats"`
	Sets         *int      `json:"sets,omitempty" example:"3"`
	Reps         *int      `json:"reps,omitempty" example:"12"`
	WeightKg     *float64  `json:"weight_kg,omitempty" example:"40"`
	Completed    bool      `gorm:"not null;default:false" json:"completed"`
	// OrderIndex is the list length at insert time; deletes leave gaps.
	OrderIndex int `gorm:"not null;default:0" json:"order_index"`
}

func (WorkoutExercise) TableName() string { return "workout_exercises" }

func (w *WorkoutExercise) BeforeCreate(tx *gorm.DB) error {
	assignID(&w.ID)
	return nil
}
