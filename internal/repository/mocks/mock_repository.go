package mocks

import (
	"context"
	"time"

	"fitcircle/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// Shared MockProfileRepository
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) Create(ctx context.Context, profile *models.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileRepository) FindByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]models.Profile, error) {
	args := m.Called(ctx, userIDs)
	return args.Get(0).([]models.Profile), args.Error(1)
}

func (m *MockProfileRepository) Patch(ctx context.Context, userID uuid.UUID, data map[string]interface{}) error {
	args := m.Called(ctx, userID, data)
	return args.Error(0)
}

// Shared MockDietaryPreferencesRepository
type MockDietaryPreferencesRepository struct {
	mock.Mock
}

func (m *MockDietaryPreferencesRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*models.DietaryPreferences, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DietaryPreferences), args.Error(1)
}

func (m *MockDietaryPreferencesRepository) Upsert(ctx context.Context, prefs *models.DietaryPreferences) error {
	args := m.Called(ctx, prefs)
	return args.Error(0)
}

// Shared MockDailyProgressRepository
type MockDailyProgressRepository struct {
	mock.Mock
}

func (m *MockDailyProgressRepository) Increment(ctx context.Context, userID uuid.UUID, date time.Time, field models.ProgressField, delta int) (*models.DailyProgress, error) {
	args := m.Called(ctx, userID, date, field, delta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DailyProgress), args.Error(1)
}

func (m *MockDailyProgressRepository) FindByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (*models.DailyProgress, error) {
	args := m.Called(ctx, userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DailyProgress), args.Error(1)
}

func (m *MockDailyProgressRepository) FindByUsersAndDate(ctx context.Context, userIDs []uuid.UUID, date time.Time) ([]models.DailyProgress, error) {
	args := m.Called(ctx, userIDs, date)
	return args.Get(0).([]models.DailyProgress), args.Error(1)
}

func (m *MockDailyProgressRepository) FindByUserAndDateRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]models.DailyProgress, error) {
	args := m.Called(ctx, userID, from, to)
	return args.Get(0).([]models.DailyProgress), args.Error(1)
}

// Shared MockWeightLogRepository
type MockWeightLogRepository struct {
	mock.Mock
}

func (m *MockWeightLogRepository) CreateAndMirror(ctx context.Context, entry *models.WeightLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockWeightLogRepository) FindRecentByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]models.WeightLog, error) {
	args := m.Called(ctx, userID, limit)
	return args.Get(0).([]models.WeightLog), args.Error(1)
}

// Shared MockWorkoutExerciseRepository
type MockWorkoutExerciseRepository struct {
	mock.Mock
}

func (m *MockWorkoutExerciseRepository) Create(ctx context.Context, exercise *models.WorkoutExercise) error {
	args := m.Called(ctx, exercise)
	return args.Error(0)
}

func (m *MockWorkoutExerciseRepository) CountByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (int64, error) {
	args := m.Called(ctx, userID, date)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWorkoutExerciseRepository) FindByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) ([]models.WorkoutExercise, error) {
	args := m.Called(ctx, userID, date)
	return args.Get(0).([]models.WorkoutExercise), args.Error(1)
}

func (m *MockWorkoutExerciseRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*models.WorkoutExercise, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WorkoutExercise), args.Error(1)
}

func (m *MockWorkoutExerciseRepository) SetCompleted(ctx context.Context, userID, id uuid.UUID, completed bool) error {
	args := m.Called(ctx, userID, id, completed)
	return args.Error(0)
}

func (m *MockWorkoutExerciseRepository) Delete(ctx context.Context, userID, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID, id)
	return args.Get(0).(int64), args.Error(1)
}

// Shared MockFamilyRepository
type MockFamilyRepository struct {
	mock.Mock
}

func (m *MockFamilyRepository) CreateWithOwner(ctx context.Context, family *models.FamilyCircle) error {
	args := m.Called(ctx, family)
	return args.Error(0)
}

func (m *MockFamilyRepository) InviteCodeExists(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockFamilyRepository) FindByInviteCode(ctx context.Context, code string) (*models.FamilyCircle, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FamilyCircle), args.Error(1)
}

func (m *MockFamilyRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.FamilyCircle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FamilyCircle), args.Error(1)
}

func (m *MockFamilyRepository) FindMembershipByUserID(ctx context.Context, userID uuid.UUID) (*models.FamilyMember, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FamilyMember), args.Error(1)
}

func (m *MockFamilyRepository) FindMember(ctx context.Context, familyID, userID uuid.UUID) (*models.FamilyMember, error) {
	args := m.Called(ctx, familyID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FamilyMember), args.Error(1)
}

func (m *MockFamilyRepository) AddMember(ctx context.Context, member *models.FamilyMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockFamilyRepository) RemoveMember(ctx context.Context, familyID, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, familyID, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFamilyRepository) ListMembers(ctx context.Context, familyID uuid.UUID) ([]models.FamilyMember, error) {
	args := m.Called(ctx, familyID)
	return args.Get(0).([]models.FamilyMember), args.Error(1)
}

// Shared MockWeeklyChallengeRepository
type MockWeeklyChallengeRepository struct {
	mock.Mock
}

func (m *MockWeeklyChallengeRepository) Create(ctx context.Context, challenge *models.WeeklyChallenge) error {
	args := m.Called(ctx, challenge)
	return args.Error(0)
}

func (m *MockWeeklyChallengeRepository) FindActive(ctx context.Context, familyID uuid.UUID, date time.Time) (*models.WeeklyChallenge, error) {
	args := m.Called(ctx, familyID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WeeklyChallenge), args.Error(1)
}

func (m *MockWeeklyChallengeRepository) ListByFamily(ctx context.Context, familyID uuid.UUID) ([]models.WeeklyChallenge, error) {
	args := m.Called(ctx, familyID)
	return args.Get(0).([]models.WeeklyChallenge), args.Error(1)
}

// Shared MockMealRepository
type MockMealRepository struct {
	mock.Mock
}

func (m *MockMealRepository) CreateAndIncrement(ctx context.Context, meal *models.Meal) (*models.DailyProgress, error) {
	args := m.Called(ctx, meal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DailyProgress), args.Error(1)
}

func (m *MockMealRepository) FindByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) ([]models.Meal, error) {
	args := m.Called(ctx, userID, date)
	return args.Get(0).([]models.Meal), args.Error(1)
}
