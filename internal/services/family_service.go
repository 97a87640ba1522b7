package services

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"fitcircle/internal/models"
	"fitcircle/internal/repository"
	"fitcircle/internal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	maxFamilyNameLength   = 80
	maxInviteCodeAttempts = 5
)

// FamilyService creates circles, issues invite codes and manages membership.
type FamilyService struct {
	familyRepo   repository.FamilyRepository
	logger       *zap.Logger
	generateCode func(n int) (string, error)
}

func NewFamilyService(familyRepo repository.FamilyRepository, logger *zap.Logger) *FamilyService {
	return &FamilyService{
		familyRepo:   familyRepo,
		logger:       logger,
		generateCode: utils.GenerateInviteCode,
	}
}

type FamilyDetails struct {
	Family  *models.FamilyCircle  `json:"family"`
	Members []models.FamilyMember `json:"members"`
}

// CreateFamily persists a new circle with the creator as its first member.
func (s *FamilyService) CreateFamily(ctx context.Context, userID uuid.UUID, name string) (*models.FamilyCircle, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, validationError("family name is required")
	}
	if utf8.RuneCountInString(name) > maxFamilyNameLength {
		return nil, validationError("family name is too long")
	}

	if err := s.ensureNoMembership(ctx, userID); err != nil {
		return nil, err
	}

	for attempt := 0; attempt < maxInviteCodeAttempts; attempt++ {
		code, err := s.generateCode(models.InviteCodeLength)
		if err != nil {
			return nil, storeFailure("failed to create family", err)
		}

		exists, err := s.familyRepo.InviteCodeExists(ctx, code)
		if err != nil {
			return nil, storeFailure("failed to create family", err)
		}
		if exists {
			s.logger.Warn("invite code collision", zap.Int("attempt", attempt+1))
			continue
		}

		family := &models.FamilyCircle{
			Name:       name,
			CreatedBy:  userID,
			InviteCode: code,
		}
		err = s.familyRepo.CreateWithOwner(ctx, family)
		if err == nil {
			s.logger.Info("family created",
				zap.String("family_id", family.ID.String()),
				zap.String("created_by", userID.String()))
			return family, nil
		}
		if !repository.IsDuplicate(err) {
			return nil, storeFailure("failed to create family", err)
		}

		// Either the code was taken between check and insert, or the user
		// joined a circle from another device meanwhile.
		if err := s.ensureNoMembership(ctx, userID); err != nil {
			return nil, err
		}
		s.logger.Warn("invite code taken on insert", zap.Int("attempt", attempt+1))
	}

	return nil, storeFailure("failed to create family", errInviteCodeSpace)
}

var errInviteCodeSpace = errors.New("no unique invite code after retries")

func (s *FamilyService) ensureNoMembership(ctx context.Context, userID uuid.UUID) error {
	_, err := s.familyRepo.FindMembershipByUserID(ctx, userID)
	if err == nil {
		return conflictError(CodeInOtherFamily, "You're already part of a family circle.")
	}
	if !repository.IsNotFound(err) {
		return storeFailure("failed to check family membership", err)
	}
	return nil
}

// JoinFamily adds the user to the circle with the given invite code. Codes are
// matched case-insensitively.
func (s *FamilyService) JoinFamily(ctx context.Context, userID uuid.UUID, inviteCode string) (*models.FamilyCircle, error) {
	code := strings.ToLower(strings.TrimSpace(inviteCode))
	if code == "" {
		return nil, validationError("invite code is required")
	}

	family, err := s.familyRepo.FindByInviteCode(ctx, code)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, notFoundError(CodeInvalidInviteCode, "No family found with that invite code.")
		}
		return nil, storeFailure("failed to join family", err)
	}

	_, err = s.familyRepo.FindMember(ctx, family.ID, userID)
	if err == nil {
		return nil, conflictError(CodeAlreadyMember, "You're already part of this family circle.")
	}
	if !repository.IsNotFound(err) {
		return nil, storeFailure("failed to join family", err)
	}

	if err := s.ensureNoMembership(ctx, userID); err != nil {
		return nil, err
	}

	err = s.familyRepo.AddMember(ctx, &models.FamilyMember{
		FamilyID: family.ID,
		UserID:   userID,
	})
	if err != nil {
		if repository.IsDuplicate(err) {
			return nil, conflictError(CodeAlreadyMember, "You're already part of this family circle.")
		}
		return nil, storeFailure("failed to join family", err)
	}

	s.logger.Info("family joined",
		zap.String("family_id", family.ID.String()),
		zap.String("user_id", userID.String()))
	return family, nil
}

// LeaveFamily removes the user's membership row. The circle, its challenges
// and other members are left as they are.
func (s *FamilyService) LeaveFamily(ctx context.Context, userID uuid.UUID) error {
	member, err := s.familyRepo.FindMembershipByUserID(ctx, userID)
	if err != nil {
		if repository.IsNotFound(err) {
			return notFoundError(CodeNotMember, "You're not part of a family circle.")
		}
		return storeFailure("failed to leave family", err)
	}

	removed, err := s.familyRepo.RemoveMember(ctx, member.FamilyID, userID)
	if err != nil {
		return storeFailure("failed to leave family", err)
	}
	if removed == 0 {
		return notFoundError(CodeNotMember, "You're not part of a family circle.")
	}

	s.logger.Info("family left",
		zap.String("family_id", member.FamilyID.String()),
		zap.String("user_id", userID.String()))
	return nil
}

// MyFamily returns the user's circle and its members.
func (s *FamilyService) MyFamily(ctx context.Context, userID uuid.UUID) (*FamilyDetails, error) {
	member, err := s.familyRepo.FindMembershipByUserID(ctx, userID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, notFoundError(CodeNotMember, "You're not part of a family circle.")
		}
		return nil, storeFailure("failed to load family", err)
	}

	family, err := s.familyRepo.FindByID(ctx, member.FamilyID)
	if err != nil {
		return nil, storeFailure("failed to load family", err)
	}
	members, err := s.familyRepo.ListMembers(ctx, family.ID)
	if err != nil {
		return nil, storeFailure("failed to load family members", err)
	}
	return &FamilyDetails{Family: family, Members: members}, nil
}
