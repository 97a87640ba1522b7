package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const DefaultCalorieGoal = 2000

type FitnessGoal string

const (
	FitnessGoalLose     FitnessGoal = "lose"
	FitnessGoalMaintain FitnessGoal = "maintain"
	FitnessGoalGain     FitnessGoal = "gain"
)

func (g FitnessGoal) Valid() bool {
	switch g {
	case FitnessGoalLose, FitnessGoalMaintain, FitnessGoalGain:
		return true
	}
	return false
}

// Profile is created on signup by the auth provider or lazily on first read.
// Email and CurrentWeightKg are display caches, overwritten on every related write.
type Profile struct {
	ID              uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id" example:"7d1c2a4e-55b0-4f8e-9a57-2c1b1f2a0c11"`
	CreatedAt       time.Time    `json:"created_at" example:"2024-01-01T00:00:00Z"`
	UpdatedAt       time.Time    `json:"updated_at" example:"2024-01-01T00:00:00Z"`
	UserID          uuid.UUID    `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	DisplayName     string       `gorm:"not null;default:''" json:"display_name" example:"Alex"`
	Email           *string      `json:"email,omitempty" example:"alex@example.com"`
	CalorieGoal     int          `gorm:"not null;default:2000" json:"calorie_goal" example:"2000"`
	FitnessGoal     *FitnessGoal `json:"fitness_goal,omitempty" example:"maintain"`
	CurrentWeightKg *float64     `json:"current_weight_kg,omitempty" example:"72.5"`
	GoalWeightKg    *float64     `json:"goal_weight_kg,omitempty" example:"68"`
	HeightCm        *float64     `json:"height_cm,omitempty" example:"175"`
}

func (Profile) TableName() string { return "profiles" }

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	assignID(&p.ID)
	return nil
}

func assignID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}
