package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProgressField names one of the four daily counters. The value is the column name.
type ProgressField string

const (
	FieldCaloriesConsumed ProgressField = "calories_consumed"
	FieldCaloriesBurned   ProgressField = "calories_burned"
	FieldSteps            ProgressField = "steps"
	FieldWaterMl          ProgressField = "water_ml"
)

var ProgressFields = []ProgressField{FieldCaloriesConsumed, FieldCaloriesBurned, FieldSteps, FieldWaterMl}

func (f ProgressField) Valid() bool {
	switch f {
	case FieldCaloriesConsumed, FieldCaloriesBurned, FieldSteps, FieldWaterMl:
		return true
	}
	return false
}

// DailyProgress is unique on (user_id, date). Counters only grow within a day.
type DailyProgress struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_daily_progress_user_date" json:"user_id"`
	Date             time.Time `gorm:"type:date;not null;uniqueIndex:idx_daily_progress_user_date" json:"date" example:"2024-01-01"`
	CaloriesConsumed int       `gorm:"not null;default:0" json:"calories_consumed" example:"760"`
	CaloriesBurned   int       `gorm:"not null;default:0" json:"calories_burned" example:"450"`
	Steps            int       `gorm:"not null;default:0" json:"steps" example:"7540"`
	WaterMl          int       `gorm:"not null;default:0" json:"water_ml" example:"1200"`
}

func (DailyProgress) TableName() string { return "daily_progress" }

func (p *DailyProgress) BeforeCreate(tx *gorm.DB) error {
	assignID(&p.ID)
	return nil
}

// Value returns the counter named by f, zero for unknown fields.
func (p *DailyProgress) Value(f ProgressField) int {
	switch f {
	case FieldCaloriesConsumed:
		return p.CaloriesConsumed
	case FieldCaloriesBurned:
		return p.CaloriesBurned
	case FieldSteps:
		return p.Steps
	case FieldWaterMl:
		return p.WaterMl
	}
	return 0
}

// Set assigns the counter named by f.
func (p *DailyProgress) Set(f ProgressField, v int) {
	switch f {
	case FieldCaloriesConsumed:
		p.CaloriesConsumed = v
	case FieldCaloriesBurned:
		p.CaloriesBurned = v
	case FieldSteps:
		p.Steps = v
	case FieldWaterMl:
		p.WaterMl = v
	}
}
