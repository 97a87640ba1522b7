package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const InviteCodeLength = 8

// FamilyCircle keeps InviteCode lowercased. Lookups are case-insensitive and
// clients display the code uppercased.
type FamilyCircle struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	Name       string    `gorm:"not null" json:"name" example:"The Smiths"`
	CreatedBy  uuid.UUID `gorm:"type:uuid;not null" json:"created_by"`
	InviteCode string    `gorm:"size:8;uniqueIndex;not null" json:"invite_code" example:"ab12cd34"`
}

func (FamilyCircle) TableName() string { return "family_circles" }

func (f *FamilyCircle) BeforeCreate(tx *gorm.DB) error {
	assignID(&f.ID)
	return nil
}

func (f *FamilyCircle) DisplayInviteCode() string {
	return strings.ToUpper(f.InviteCode)
}

// FamilyMember is unique on user_id: a user belongs to at most one circle.
type FamilyMember struct {
	ID       uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	FamilyID uuid.UUID    `gorm:"type:uuid;not null;index" json:"family_id"`
	Family   FamilyCircle `gorm:"foreignKey:FamilyID;constraint:OnDelete:CASCADE" json:"-"`
	UserID   uuid.UUID    `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	JoinedAt time.Time    `gorm:"not null" json:"joined_at"`
}

func (FamilyMember) TableName() string { return "family_members" }

func (m *FamilyMember) BeforeCreate(tx *gorm.DB) error {
	assignID(&m.ID)
	if m.JoinedAt.IsZero() {
		m.JoinedAt = tx.NowFunc()
	}
	return nil
}

// WeeklyChallenge.Current is the persisted initial value. Displayed progress is
// recomputed from member steps.
type WeeklyChallenge struct {
	ID        uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time    `json:"created_at"`
	FamilyID  uuid.UUID    `gorm:"type:uuid;not null;index" json:"family_id"`
	Family    FamilyCircle `gorm:"foreignKey:FamilyID;constraint:OnDelete:CASCADE" json:"-"`
	Title     string       `gorm:"not null" json:"title" example:"100k Steps Together"`
	Current   int          `gorm:"not null;default:0" json:"current"`
	Target    int          `gorm:"not null" json:"target" example:"100000"`
	StartDate time.Time    `gorm:"type:date;not null" json:"start_date" example:"2024-01-01"`
	EndDate   time.Time    `gorm:"type:date;not null" json:"end_date" example:"2024-01-07"`
}

func (WeeklyChallenge) TableName() string { return "weekly_challenges" }

func (w *WeeklyChallenge) BeforeCreate(tx *gorm.DB) error {
	assignID(&w.ID)
	return nil
}
