package services

import (
	"context"
	"strings"
	"time"

	"fitcircle/internal/models"
	"fitcircle/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultChallengeDays = 6

// ChallengeService manages the weekly challenges of a family circle.
type ChallengeService struct {
	familyRepo    repository.FamilyRepository
	challengeRepo repository.WeeklyChallengeRepository
	logger        *zap.Logger
}

func NewChallengeService(familyRepo repository.FamilyRepository, challengeRepo repository.WeeklyChallengeRepository, logger *zap.Logger) *ChallengeService {
	return &ChallengeService{
		familyRepo:    familyRepo,
		challengeRepo: challengeRepo,
		logger:        logger,
	}
}

type NewChallenge struct {
	Title     string
	Target    int
	StartDate *time.Time
	EndDate   *time.Time
}

// CreateChallenge adds a challenge to the caller's family. A missing start
// defaults to date and a missing end to start plus six days.
func (s *ChallengeService) CreateChallenge(ctx context.Context, userID uuid.UUID, date time.Time, input NewChallenge) (*models.WeeklyChallenge, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, validationError("challenge title is required")
	}
	if input.Target <= 0 {
		return nil, validationError("challenge target must be positive")
	}

	start := date
	if input.StartDate != nil {
		start = *input.StartDate
	}
	end := start.AddDate(0, 0, defaultChallengeDays)
	if input.EndDate != nil {
		end = *input.EndDate
	}
	if end.Before(start) {
		return nil, validationError("challenge end date must not be before its start date")
	}

	familyID, err := s.familyOf(ctx, userID)
	if err != nil {
		return nil, err
	}

	challenge := &models.WeeklyChallenge{
		FamilyID:  familyID,
		Title:     title,
		Target:    input.Target,
		StartDate: start,
		EndDate:   end,
	}
	if err := s.challengeRepo.Create(ctx, challenge); err != nil {
		return nil, storeFailure("failed to create challenge", err)
	}

	s.logger.Info("challenge created",
		zap.String("family_id", familyID.String()),
		zap.String("challenge_id", challenge.ID.String()))
	return challenge, nil
}

// ListChallenges returns the challenges of the caller's family, latest first.
func (s *ChallengeService) ListChallenges(ctx context.Context, userID uuid.UUID) ([]models.WeeklyChallenge, error) {
	familyID, err := s.familyOf(ctx, userID)
	if err != nil {
		return nil, err
	}

	challenges, err := s.challengeRepo.ListByFamily(ctx, familyID)
	if err != nil {
		return nil, storeFailure("failed to load challenges", err)
	}
	return challenges, nil
}

func (s *ChallengeService) familyOf(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	member, err := s.familyRepo.FindMembershipByUserID(ctx, userID)
	if err != nil {
		if repository.IsNotFound(err) {
			return uuid.Nil, notFoundError(CodeNotMember, "You're not part of a family circle.")
		}
		return uuid.Nil, storeFailure("failed to check family membership", err)
	}
	return member.FamilyID, nil
}
