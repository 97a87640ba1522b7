package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"fitcircle/internal/models"
	"fitcircle/internal/repository/mocks"
	"fitcircle/internal/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type leaderboardMocks struct {
	family    *mocks.MockFamilyRepository
	profile   *mocks.MockProfileRepository
	progress  *mocks.MockDailyProgressRepository
	challenge *mocks.MockWeeklyChallengeRepository
}

func setupLeaderboardService() (*LeaderboardService, leaderboardMocks) {
	m := leaderboardMocks{
		family:    new(mocks.MockFamilyRepository),
		profile:   new(mocks.MockProfileRepository),
		progress:  new(mocks.MockDailyProgressRepository),
		challenge: new(mocks.MockWeeklyChallengeRepository),
	}
	return NewLeaderboardService(m.family, m.profile, m.progress, m.challenge, zap.NewNop()), m
}

func TestComputeFamilyViewRanksByCaloriesBurned(t *testing.T) {
	svc, m := setupLeaderboardService()
	date := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 1, 3, 18, 0, 0, 0, time.UTC)

	userA, userB, userC := uuid.New(), uuid.New(), uuid.New()
	family := &models.FamilyCircle{ID: uuid.New(), Name: "The Smiths", InviteCode: "ab12cd34"}
	members := []models.FamilyMember{
		{FamilyID: family.ID, UserID: userA},
		{FamilyID: family.ID, UserID: userB},
		{FamilyID: family.ID, UserID: userC},
	}
	ids := []uuid.UUID{userA, userB, userC}

	m.family.On("FindMembershipByUserID", mock.Anything, userA).Return(&members[0], nil)
	m.family.On("FindByID", mock.Anything, family.ID).Return(family, nil)
	m.family.On("ListMembers", mock.Anything, family.ID).Return(members, nil)
	m.profile.On("FindByUserIDs", mock.Anything, ids).Return([]models.Profile{
		{UserID: userA, DisplayName: "Ann"},
		{UserID: userB, DisplayName: "Ben"},
	}, nil)
	m.progress.On("FindByUsersAndDate", mock.Anything, ids, date).Return([]models.DailyProgress{
		{UserID: userA, CaloriesBurned: 500, Steps: 4000, UpdatedAt: now.Add(-30 * time.Minute)},
		{UserID: userB, CaloriesBurned: 800, Steps: 6000, UpdatedAt: now.Add(-3 * time.Hour)},
	}, nil)
	m.challenge.On("FindActive", mock.Anything, family.ID, date).Return(&models.WeeklyChallenge{
		ID:        uuid.New(),
		Title:     "100k Steps Together",
		Current:   99999,
		Target:    20000,
		StartDate: date.AddDate(0, 0, -2),
		EndDate:   date.AddDate(0, 0, 4),
	}, nil)

	view, err := svc.ComputeFamilyView(context.Background(), userA, date, now)
	require.NoError(t, err)

	require.NotNil(t, view.Family)
	assert.Equal(t, "AB12CD34", view.Family.InviteCode)
	assert.Equal(t, "2024-01-03", view.Date)

	require.Len(t, view.Members, 3)
	assert.Equal(t, []int{800, 500, 0}, []int{view.Members[0].CaloriesBurned, view.Members[1].CaloriesBurned, view.Members[2].CaloriesBurned})
	assert.Equal(t, "Ben", view.Members[0].Name)
	assert.True(t, view.Members[0].IsLeader)
	assert.False(t, view.Members[1].IsLeader)
	assert.Equal(t, "3 hours ago", view.Members[0].LastActive)
	assert.Equal(t, "30 mins ago", view.Members[1].LastActive)
	assert.True(t, view.Members[1].IsCurrentUser)
	assert.Equal(t, defaultMemberName, view.Members[2].Name)
	assert.Equal(t, utils.NoActivityLabel, view.Members[2].LastActive)
	for i, member := range view.Members {
		assert.Equal(t, utils.AvatarColor(i), member.AvatarColor)
	}
	require.NotNil(t, view.Leader)
	assert.Equal(t, userB, view.Leader.UserID)

	require.NotNil(t, view.Challenge)
	assert.Equal(t, 10000, view.Challenge.Current)
	assert.Equal(t, 50.0, view.Challenge.Percentage)
	assert.Equal(t, 4, view.Challenge.DaysLeft)
	assert.Equal(t, 3, view.Challenge.Participants)
}

func TestComputeFamilyViewTiesKeepMemberOrder(t *testing.T) {
	summaries := rankMembers(uuid.Nil,
		[]uuid.UUID{{1}, {2}, {3}},
		nil,
		[]models.DailyProgress{{UserID: uuid.UUID{2}, CaloriesBurned: 100}, {UserID: uuid.UUID{3}, CaloriesBurned: 100}},
		time.Now())

	require.Len(t, summaries, 3)
	assert.Equal(t, uuid.UUID{2}, summaries[0].UserID)
	assert.Equal(t, uuid.UUID{3}, summaries[1].UserID)
	assert.Equal(t, uuid.UUID{1}, summaries[2].UserID)
}

func TestComputeFamilyViewWithoutFamily(t *testing.T) {
	svc, m := setupLeaderboardService()
	user := uuid.New()
	date := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)

	m.family.On("FindMembershipByUserID", mock.Anything, user).Return(nil, gorm.ErrRecordNotFound)
	m.profile.On("FindByUserIDs", mock.Anything, []uuid.UUID{user}).Return([]models.Profile{{UserID: user, DisplayName: "Solo"}}, nil)
	m.progress.On("FindByUsersAndDate", mock.Anything, []uuid.UUID{user}, date).Return([]models.DailyProgress{}, nil)

	view, err := svc.ComputeFamilyView(context.Background(), user, date, date)
	require.NoError(t, err)
	assert.Nil(t, view.Family)
	assert.Nil(t, view.Challenge)
	require.Len(t, view.Members, 1)
	assert.Equal(t, "Solo", view.Members[0].Name)
	assert.True(t, view.Members[0].IsCurrentUser)
	m.challenge.AssertNotCalled(t, "FindActive", mock.Anything, mock.Anything, mock.Anything)
}

func TestComputeFamilyViewNoActiveChallenge(t *testing.T) {
	svc, m := setupLeaderboardService()
	user := uuid.New()
	date := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	family := &models.FamilyCircle{ID: uuid.New(), Name: "Circle", InviteCode: "abcdefgh"}
	members := []models.FamilyMember{{FamilyID: family.ID, UserID: user}}

	m.family.On("FindMembershipByUserID", mock.Anything, user).Return(&members[0], nil)
	m.family.On("FindByID", mock.Anything, family.ID).Return(family, nil)
	m.family.On("ListMembers", mock.Anything, family.ID).Return(members, nil)
	m.profile.On("FindByUserIDs", mock.Anything, mock.Anything).Return([]models.Profile{}, nil)
	m.progress.On("FindByUsersAndDate", mock.Anything, mock.Anything, date).Return([]models.DailyProgress{}, nil)
	m.challenge.On("FindActive", mock.Anything, family.ID, date).Return(nil, gorm.ErrRecordNotFound)

	view, err := svc.ComputeFamilyView(context.Background(), user, date, date)
	require.NoError(t, err)
	assert.Nil(t, view.Challenge)
}

func TestComputeFamilyViewStoreFailure(t *testing.T) {
	svc, m := setupLeaderboardService()
	user := uuid.New()
	date := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)

	m.family.On("FindMembershipByUserID", mock.Anything, user).Return(nil, gorm.ErrRecordNotFound)
	m.profile.On("FindByUserIDs", mock.Anything, mock.Anything).Return([]models.Profile{}, nil)
	m.progress.On("FindByUsersAndDate", mock.Anything, mock.Anything, date).Return([]models.DailyProgress{}, errors.New("timeout"))

	_, err := svc.ComputeFamilyView(context.Background(), user, date, date)
	assert.Equal(t, KindStore, KindOf(err))
}

func TestChallengeProgressCapsAndClamps(t *testing.T) {
	date := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	c := &models.WeeklyChallenge{
		Target:    1000,
		StartDate: date.AddDate(0, 0, -7),
		EndDate:   date.AddDate(0, 0, -1),
	}

	progress := challengeProgress(c, []MemberSummary{{Steps: 900}, {Steps: 600}}, date)
	assert.Equal(t, 1500, progress.Current)
	assert.Equal(t, 100.0, progress.Percentage)
	assert.Equal(t, 0, progress.DaysLeft)
}
