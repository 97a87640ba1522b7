package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type DietPreference string

const (
	DietNone       DietPreference = "none"
	DietVegetarian DietPreference = "vegetarian"
	DietVegan      DietPreference = "vegan"
	DietKeto       DietPreference = "keto"
	DietPaleo      DietPreference = "paleo"
)

func (d DietPreference) Valid() bool {
	switch d {
	case DietNone, DietVegetarian, DietVegan, DietKeto, DietPaleo:
		return true
	}
	return false
}

// SuggestedAllergies is the list offered to clients. Stored allergies are free text
// and not limited to it.
var SuggestedAllergies = []string{"Nuts", "Gluten", "Dairy", "Shellfish", "Eggs", "Soy", "Fish", "Sesame"}

type DietaryPreferences struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	UserID     uuid.UUID      `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Preference DietPreference `gorm:"not null;default:'none'" json:"preference" example:"vegan"`
	Allergies  pq.StringArray `gorm:"type:text[]" json:"allergies" swaggertype:"array,string" example:"Nuts,Soy"`
}

func (DietaryPreferences) TableName() string { return "dietary_preferences" }

func (d *DietaryPreferences) BeforeCreate(tx *gorm.DB) error {
	assignID(&d.ID)
	return nil
}
