package services

import (
	"context"
	"testing"
	"time"

	"fitcircle/internal/models"
	"fitcircle/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func TestCreateChallengeDefaultsToOneWeek(t *testing.T) {
	familyRepo := new(mocks.MockFamilyRepository)
	challengeRepo := new(mocks.MockWeeklyChallengeRepository)
	svc := NewChallengeService(familyRepo, challengeRepo, zap.NewNop())
	user, familyID := uuid.New(), uuid.New()
	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	familyRepo.On("FindMembershipByUserID", mock.Anything, user).Return(&models.FamilyMember{FamilyID: familyID, UserID: user}, nil)
	challengeRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.WeeklyChallenge")).Return(nil)

	challenge, err := svc.CreateChallenge(context.Background(), user, date, NewChallenge{Title: " 100k Steps ", Target: 100000})
	require.NoError(t, err)
	assert.Equal(t, familyID, challenge.FamilyID)
	assert.Equal(t, "100k Steps", challenge.Title)
	assert.Equal(t, date, challenge.StartDate)
	assert.Equal(t, date.AddDate(0, 0, 6), challenge.EndDate)
}

func TestCreateChallengeValidation(t *testing.T) {
	date := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)
	before := date.AddDate(0, 0, -1)

	tests := []struct {
		name  string
		input NewChallenge
	}{
		{"missing title", NewChallenge{Target: 10}},
		{"zero target", NewChallenge{Title: "Steps"}},
		{"end before start", NewChallenge{Title: "Steps", Target: 10, StartDate: &date, EndDate: &before}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			familyRepo := new(mocks.MockFamilyRepository)
			svc := NewChallengeService(familyRepo, new(mocks.MockWeeklyChallengeRepository), zap.NewNop())

			_, err := svc.CreateChallenge(context.Background(), uuid.New(), date, tt.input)
			assert.Equal(t, KindValidation, KindOf(err))
			familyRepo.AssertNotCalled(t, "FindMembershipByUserID", mock.Anything, mock.Anything)
		})
	}
}

func TestListChallengesRequiresMembership(t *testing.T) {
	familyRepo := new(mocks.MockFamilyRepository)
	svc := NewChallengeService(familyRepo, new(mocks.MockWeeklyChallengeRepository), zap.NewNop())
	user := uuid.New()
	familyRepo.On("FindMembershipByUserID", mock.Anything, user).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.ListChallenges(context.Background(), user)
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.Equal(t, CodeNotMember, CodeOf(err))
}
