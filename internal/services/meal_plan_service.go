package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fitcircle/internal/models"
	"fitcircle/internal/openai"
	"fitcircle/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type MealPlanGenerator interface {
	GenerateMealPlan(ctx context.Context, req openai.MealPlanRequest) (*models.MealPlan, error)
}

type MealPlanCache interface {
	StoreMealPlan(ctx context.Context, userID uuid.UUID, date time.Time, plan *models.MealPlan) error
	GetMealPlan(ctx context.Context, userID uuid.UUID, date time.Time) (*models.MealPlan, bool, error)
}

// MealPlanService builds a generation request from the user's goals and
// preferences and keeps the latest plan per day in the cache, when one is set.
type MealPlanService struct {
	profileRepo repository.ProfileRepository
	prefsRepo   repository.DietaryPreferencesRepository
	generator   MealPlanGenerator
	cache       MealPlanCache
	logger      *zap.Logger
}

// NewMealPlanService accepts a nil cache.
func NewMealPlanService(
	profileRepo repository.ProfileRepository,
	prefsRepo repository.DietaryPreferencesRepository,
	generator MealPlanGenerator,
	cache MealPlanCache,
	logger *zap.Logger,
) *MealPlanService {
	return &MealPlanService{
		profileRepo: profileRepo,
		prefsRepo:   prefsRepo,
		generator:   generator,
		cache:       cache,
		logger:      logger,
	}
}

// Generate asks the gateway for a plan. An empty mealType means all four meals;
// a single type replaces only that entry of the day's cached plan.
func (s *MealPlanService) Generate(ctx context.Context, userID uuid.UUID, date time.Time, mealType models.MealType) (*models.MealPlan, error) {
	if mealType != "" && !mealType.Valid() {
		return nil, validationError(fmt.Sprintf("unknown meal type %q", mealType))
	}
	if s.generator == nil {
		return nil, upstreamFailure(CodeGenerationFailed, "Meal generation is not configured.", nil)
	}

	req, err := s.buildRequest(ctx, userID, mealType)
	if err != nil {
		return nil, err
	}

	plan, err := s.generator.GenerateMealPlan(ctx, req)
	if err != nil {
		s.logger.Error("meal plan generation failed",
			zap.String("user_id", userID.String()),
			zap.String("meal_type", string(mealType)),
			zap.Error(err))
		return nil, mapGeneratorError(err)
	}

	s.storePlan(ctx, userID, date, mealType, plan)
	return plan, nil
}

// CachedPlan returns the plan generated for the user on date.
func (s *MealPlanService) CachedPlan(ctx context.Context, userID uuid.UUID, date time.Time) (*models.MealPlan, error) {
	if s.cache == nil {
		return nil, notFoundError("", "No meal plan generated for this day.")
	}

	plan, ok, err := s.cache.GetMealPlan(ctx, userID, date)
	if err != nil {
		return nil, storeFailure("failed to load meal plan", err)
	}
	if !ok {
		return nil, notFoundError("", "No meal plan generated for this day.")
	}
	return plan, nil
}

func (s *MealPlanService) buildRequest(ctx context.Context, userID uuid.UUID, mealType models.MealType) (openai.MealPlanRequest, error) {
	req := openai.MealPlanRequest{
		CalorieGoal: models.DefaultCalorieGoal,
		Preference:  string(models.DietNone),
		Allergies:   []string{},
		MealType:    mealType,
	}

	var (
		profile *models.Profile
		prefs   *models.DietaryPreferences
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := s.profileRepo.FindByUserID(gctx, userID)
		if err != nil && !repository.IsNotFound(err) {
			return err
		}
		profile = p
		return nil
	})
	g.Go(func() error {
		p, err := s.prefsRepo.FindByUserID(gctx, userID)
		if err != nil && !repository.IsNotFound(err) {
			return err
		}
		prefs = p
		return nil
	})
	if err := g.Wait(); err != nil {
		return req, storeFailure("failed to load meal preferences", err)
	}

	if profile != nil && profile.CalorieGoal > 0 {
		req.CalorieGoal = profile.CalorieGoal
	}
	if prefs != nil {
		if prefs.Preference != "" {
			req.Preference = string(prefs.Preference)
		}
		if len(prefs.Allergies) > 0 {
			req.Allergies = []string(prefs.Allergies)
		}
	}
	return req, nil
}

// storePlan failures are logged only; the caller already has the plan.
func (s *MealPlanService) storePlan(ctx context.Context, userID uuid.UUID, date time.Time, mealType models.MealType, plan *models.MealPlan) {
	if s.cache == nil {
		return
	}

	toStore := plan
	if mealType != "" {
		cached, ok, err := s.cache.GetMealPlan(ctx, userID, date)
		if err != nil {
			s.logger.Warn("meal plan cache read failed", zap.Error(err))
			return
		}
		if ok {
			toStore = mergeMeals(cached, plan, mealType)
		}
	}

	if err := s.cache.StoreMealPlan(ctx, userID, date, toStore); err != nil {
		s.logger.Warn("meal plan cache write failed", zap.Error(err))
	}
}

// mergeMeals swaps the entries of mealType in cached for those of fresh.
func mergeMeals(cached, fresh *models.MealPlan, mealType models.MealType) *models.MealPlan {
	merged := &models.MealPlan{Meals: make([]models.GeneratedMeal, 0, len(cached.Meals)+len(fresh.Meals))}
	replaced := false
	for _, m := range cached.Meals {
		if m.Type != mealType {
			merged.Meals = append(merged.Meals, m)
			continue
		}
		if !replaced {
			merged.Meals = append(merged.Meals, fresh.Meals...)
			replaced = true
		}
	}
	if !replaced {
		merged.Meals = append(merged.Meals, fresh.Meals...)
	}
	return merged
}

func mapGeneratorError(err error) error {
	switch {
	case errors.Is(err, openai.ErrRateLimited):
		return upstreamFailure(CodeRateLimited, "Rate limit exceeded. Please try again later.", err)
	case errors.Is(err, openai.ErrQuotaExhausted):
		return upstreamFailure(CodeQuotaExhausted, "AI credits exhausted. Please add credits.", err)
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return upstreamFailure(CodeGenerationFailed, "Meal generation timed out.", err)
	default:
		return upstreamFailure(CodeGenerationFailed, "Failed to generate meals.", err)
	}
}
