package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

var MealTypes = []MealType{MealBreakfast, MealLunch, MealDinner, MealSnack}

func (t MealType) Valid() bool {
	switch t {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}

// Meal is a logged meal. Its calories are also added to the day's progress.
type Meal struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index:idx_meal_user_date" json:"user_id"`
	Date        time.Time `gorm:"type:date;not null;index:idx_meal_user_date" json:"date" example:"2024-01-01"`
	MealType    MealType  `gorm:"not null" json:"meal_type" example:"lunch"`
	Time        string    `gorm:"not null;default:''" json:"time" example:"12:30 PM"`
	Title       string    `gorm:"not null" json:"title" example:"Grilled chicken salad"`
	Ingredients string    `gorm:"not null;default:''" json:"ingredients" example:"chicken, lettuce, tomato"`
	Calories    int       `gorm:"not null" json:"calories" example:"520"`
	Tag         string    `gorm:"not null;default:''" json:"tag" example:"High Protein"`
	Protein     float64   `gorm:"not null;default:0" json:"protein"`
	Carbs       float64   `gorm:"not null;default:0" json:"carbs"`
	Fat         float64   `gorm:"not null;default:0" json:"fat"`
}

func (Meal) TableName() string { return "meals" }

func (m *Meal) BeforeCreate(tx *gorm.DB) error {
	assignID(&m.ID)
	return nil
}

// GeneratedMeal is one entry of a generated meal plan. It is never persisted as is.
type GeneratedMeal struct {
	Type        MealType `json:"type"`
	Time        string   `json:"time"`
	Title       string   `json:"title"`
	Ingredients string   `json:"ingredients"`
	Calories    int      `json:"calories"`
	Tag         string   `json:"tag"`
	Protein     float64  `json:"protein"`
	Carbs       float64  `json:"carbs"`
	Fat         float64  `json:"fat"`
}

type MealPlan struct {
	Meals []GeneratedMeal `json:"meals"`
}
