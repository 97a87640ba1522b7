package services

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"fitcircle/internal/models"
	"fitcircle/internal/repository"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

const (
	maxDisplayNameLength = 80
	maxHeightCm          = 300
	minCalorieGoal       = 500
	maxCalorieGoal       = 10000
	maxAllergies         = 20
)

// Identity is what the bearer token says about the caller.
type Identity struct {
	UserID uuid.UUID
	Email  string
	Name   string
}

type ProfileService struct {
	profileRepo repository.ProfileRepository
	prefsRepo   repository.DietaryPreferencesRepository
	logger      *zap.Logger
}

func NewProfileService(profileRepo repository.ProfileRepository, prefsRepo repository.DietaryPreferencesRepository, logger *zap.Logger) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		prefsRepo:   prefsRepo,
		logger:      logger,
	}
}

// GetOrCreate returns the caller's profile, creating a default one on first use.
func (s *ProfileService) GetOrCreate(ctx context.Context, id Identity) (*models.Profile, error) {
	profile, err := s.profileRepo.FindByUserID(ctx, id.UserID)
	if err == nil {
		return profile, nil
	}
	if !repository.IsNotFound(err) {
		return nil, storeFailure("failed to load profile", err)
	}

	profile = &models.Profile{
		UserID:      id.UserID,
		DisplayName: strings.TrimSpace(id.Name),
		CalorieGoal: models.DefaultCalorieGoal,
	}
	if id.Email != "" {
		email := id.Email
		profile.Email = &email
	}
	if err := s.profileRepo.Create(ctx, profile); err != nil {
		if repository.IsDuplicate(err) {
			// created concurrently by another request
			existing, err := s.profileRepo.FindByUserID(ctx, id.UserID)
			if err != nil {
				return nil, storeFailure("failed to load profile", err)
			}
			return existing, nil
		}
		return nil, storeFailure("failed to create profile", err)
	}

	s.logger.Info("profile created", zap.String("user_id", id.UserID.String()))
	return profile, nil
}

type PersonalDataUpdate struct {
	DisplayName *string
	HeightCm    *float64
}

func (s *ProfileService) UpdatePersonalData(ctx context.Context, id Identity, input PersonalDataUpdate) (*models.Profile, error) {
	data := map[string]interface{}{}
	if input.DisplayName != nil {
		name := strings.TrimSpace(*input.DisplayName)
		if name == "" {
			return nil, validationError("display name must not be empty")
		}
		if utf8.RuneCountInString(name) > maxDisplayNameLength {
			return nil, validationError("display name is too long")
		}
		data["display_name"] = name
	}
	if input.HeightCm != nil {
		if *input.HeightCm <= 0 || *input.HeightCm > maxHeightCm {
			return nil, validationError(fmt.Sprintf("height must be between 0 and %d cm", maxHeightCm))
		}
		data["height_cm"] = *input.HeightCm
	}

	return s.patch(ctx, id, data)
}

type GoalsUpdate struct {
	CalorieGoal  *int
	FitnessGoal  *models.FitnessGoal
	GoalWeightKg *float64
}

func (s *ProfileService) UpdateGoals(ctx context.Context, id Identity, input GoalsUpdate) (*models.Profile, error) {
	data := map[string]interface{}{}
	if input.CalorieGoal != nil {
		if *input.CalorieGoal < minCalorieGoal || *input.CalorieGoal > maxCalorieGoal {
			return nil, validationError(fmt.Sprintf("calorie goal must be between %d and %d", minCalorieGoal, maxCalorieGoal))
		}
		data["calorie_goal"] = *input.CalorieGoal
	}
	if input.FitnessGoal != nil {
		if !input.FitnessGoal.Valid() {
			return nil, validationError(fmt.Sprintf("unknown fitness goal %q", *input.FitnessGoal))
		}
		data["fitness_goal"] = string(*input.FitnessGoal)
	}
	if input.GoalWeightKg != nil {
		if *input.GoalWeightKg <= 0 || *input.GoalWeightKg > maxWeightKg {
			return nil, validationError(fmt.Sprintf("goal weight must be between 0 and %d kg", maxWeightKg))
		}
		data["goal_weight_kg"] = *input.GoalWeightKg
	}

	return s.patch(ctx, id, data)
}

func (s *ProfileService) patch(ctx context.Context, id Identity, data map[string]interface{}) (*models.Profile, error) {
	if _, err := s.GetOrCreate(ctx, id); err != nil {
		return nil, err
	}
	if len(data) > 0 {
		if err := s.profileRepo.Patch(ctx, id.UserID, data); err != nil {
			if repository.IsNotFound(err) {
				return nil, notFoundError("", "profile not found")
			}
			return nil, storeFailure("failed to update profile", err)
		}
	}

	profile, err := s.profileRepo.FindByUserID(ctx, id.UserID)
	if err != nil {
		return nil, storeFailure("failed to load profile", err)
	}
	return profile, nil
}

// Preferences returns the stored dietary preferences or the defaults.
func (s *ProfileService) Preferences(ctx context.Context, userID uuid.UUID) (*models.DietaryPreferences, error) {
	prefs, err := s.prefsRepo.FindByUserID(ctx, userID)
	if err != nil {
		if repository.IsNotFound(err) {
			return &models.DietaryPreferences{
				UserID:     userID,
				Preference: models.DietNone,
				Allergies:  pq.StringArray{},
			}, nil
		}
		return nil, storeFailure("failed to load dietary preferences", err)
	}
	return prefs, nil
}

func (s *ProfileService) SavePreferences(ctx context.Context, userID uuid.UUID, preference models.DietPreference, allergies []string) (*models.DietaryPreferences, error) {
	if preference == "" {
		preference = models.DietNone
	}
	if !preference.Valid() {
		return nil, validationError(fmt.Sprintf("unknown dietary preference %q", preference))
	}

	cleaned := NormalizeAllergies(allergies)
	if len(cleaned) > maxAllergies {
		return nil, validationError(fmt.Sprintf("at most %d allergies are allowed", maxAllergies))
	}

	prefs := &models.DietaryPreferences{
		UserID:     userID,
		Preference: preference,
		Allergies:  pq.StringArray(cleaned),
	}
	if err := s.prefsRepo.Upsert(ctx, prefs); err != nil {
		return nil, storeFailure("failed to save dietary preferences", err)
	}
	return prefs, nil
}

// NormalizeAllergies trims entries, drops empty ones and removes
// case-insensitive duplicates, keeping the first spelling.
func NormalizeAllergies(allergies []string) []string {
	seen := make(map[string]struct{}, len(allergies))
	out := make([]string, 0, len(allergies))
	for _, a := range allergies {
		a = strings.TrimSpace(a)
		if a == "" {
			continue
		}
		key := strings.ToLower(a)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, a)
	}
	return out
}
