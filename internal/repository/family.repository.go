package repository

import (
	"context"
	"errors"

	"fitcircle/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FamilyRepository interface {
	CreateWithOwner(ctx context.Context, family *models.FamilyCircle) error
	InviteCodeExists(ctx context.Context, code string) (bool, error)
	FindByInviteCode(ctx context.Context, code string) (*models.FamilyCircle, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.FamilyCircle, error)

	FindMembershipByUserID(ctx context.Context, userID uuid.UUID) (*models.FamilyMember, error)
	FindMember(ctx context.Context, familyID, userID uuid.UUID) (*models.FamilyMember, error)
	AddMember(ctx context.Context, member *models.FamilyMember) error
	RemoveMember(ctx context.Context, familyID, userID uuid.UUID) (int64, error)
	ListMembers(ctx context.Context, familyID uuid.UUID) ([]models.FamilyMember, error)
}

type familyRepository struct {
	db *gorm.DB
}

func NewFamilyRepository(db *gorm.DB) FamilyRepository {
	return &familyRepository{db}
}

// CreateWithOwner inserts the circle and its creator's membership together.
func (r *familyRepository) CreateWithOwner(ctx context.Context, family *models.FamilyCircle) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(family).Error; err != nil {
			return err
		}
		return tx.Create(&models.FamilyMember{
			FamilyID: family.ID,
			UserID:   family.CreatedBy,
		}).Error
	})
}

func (r *familyRepository) InviteCodeExists(ctx context.Context, code string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.FamilyCircle{}).Where("invite_code = ?", code).Count(&count).Error
	return count > 0, err
}

func (r *familyRepository) FindByInviteCode(ctx context.Context, code string) (*models.FamilyCircle, error) {
	var family models.FamilyCircle
	err := r.db.WithContext(ctx).Where("invite_code = ?", code).First(&family).Error
	if err != nil {
		return nil, err
	}
	return &family, nil
}

func (r *familyRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.FamilyCircle, error) {
	var family models.FamilyCircle
	err := r.db.WithContext(ctx).First(&family, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &family, nil
}

func (r *familyRepository) FindMembershipByUserID(ctx context.Context, userID uuid.UUID) (*models.FamilyMember, error) {
	var member models.FamilyMember
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("joined_at DESC").First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *familyRepository) FindMember(ctx context.Context, familyID, userID uuid.UUID) (*models.FamilyMember, error) {
	var member models.FamilyMember
	err := r.db.WithContext(ctx).Where("family_id = ? AND user_id = ?", familyID, userID).First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *familyRepository) AddMember(ctx context.Context, member *models.FamilyMember) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *familyRepository) RemoveMember(ctx context.Context, familyID, userID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("family_id = ? AND user_id = ?", familyID, userID).
		Delete(&models.FamilyMember{})
	return res.RowsAffected, res.Error
}

func (r *familyRepository) ListMembers(ctx context.Context, familyID uuid.UUID) ([]models.FamilyMember, error) {
	var members []models.FamilyMember
	err := r.db.WithContext(ctx).Where("family_id = ?", familyID).Order("joined_at ASC").Find(&members).Error
	return members, err
}

// IsNotFound reports whether err is gorm's record-not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// IsDuplicate reports whether err is a unique-constraint violation. It relies on
// gorm's TranslateError option.
func IsDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
