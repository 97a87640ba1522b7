package controllers

import (
	"net/http"

	"fitcircle/internal/models"
	"fitcircle/internal/services"

	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	profiles *services.ProfileService
}

func NewProfileController(profiles *services.ProfileService) *ProfileController {
	return &ProfileController{profiles: profiles}
}

type UpdateProfileRequest struct {
	DisplayName *string  `json:"display_name" example:"Alex"`
	HeightCm    *float64 `json:"height_cm" example:"175"`
}

type UpdateGoalsRequest struct {
	CalorieGoal  *int                `json:"calorie_goal" example:"2000"`
	FitnessGoal  *models.FitnessGoal `json:"fitness_goal" example:"lose"`
	GoalWeightKg *float64            `json:"goal_weight_kg" example:"68"`
}

type PreferencesRequest struct {
	Preference models.DietPreference `json:"preference" example:"vegetarian"`
	Allergies  []string              `json:"allergies" example:"Nuts,Gluten"`
}

// GetProfile godoc
// @Summary Get profile
// @Description Retrieve the authenticated user's profile, creating a default one on first use
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Profile retrieved successfully"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 500 {object} map[string]interface{} "Failed to load profile"
// @Router /profile [get]
func (pc *ProfileController) GetProfile(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		return
	}

	profile, err := pc.profiles.GetOrCreate(c.Request.Context(), identity)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Profile retrieved successfully", profile)
}

// UpdateProfile godoc
// @Summary Update personal data
// @Description Partially update display name and height
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body UpdateProfileRequest true "Fields to update"
// @Success 200 {object} map[string]interface{} "Profile updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Router /profile [patch]
func (pc *ProfileController) UpdateProfile(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	profile, err := pc.profiles.UpdatePersonalData(c.Request.Context(), identity, services.PersonalDataUpdate{
		DisplayName: req.DisplayName,
		HeightCm:    req.HeightCm,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Profile updated successfully", profile)
}

// UpdateGoals godoc
// @Summary Update goals
// @Description Partially update calorie goal, fitness goal and goal weight
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param goals body UpdateGoalsRequest true "Goals to update"
// @Success 200 {object} map[string]interface{} "Goals updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Router /profile/goals [patch]
func (pc *ProfileController) UpdateGoals(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		return
	}

	var req UpdateGoalsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	profile, err := pc.profiles.UpdateGoals(c.Request.Context(), identity, services.GoalsUpdate{
		CalorieGoal:  req.CalorieGoal,
		FitnessGoal:  req.FitnessGoal,
		GoalWeightKg: req.GoalWeightKg,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Goals updated successfully", profile)
}

// GetPreferences godoc
// @Summary Get dietary preferences
// @Description Dietary preference and allergies, plus the suggested allergy list
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Preferences retrieved successfully"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Router /profile/preferences [get]
func (pc *ProfileController) GetPreferences(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	prefs, err := pc.profiles.Preferences(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Preferences retrieved successfully", gin.H{
		"preferences":         prefs,
		"suggested_allergies": models.SuggestedAllergies,
	})
}

// SavePreferences godoc
// @Summary Save dietary preferences
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param preferences body PreferencesRequest true "Preference and allergies"
// @Success 200 {object} map[string]interface{} "Preferences saved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Router /profile/preferences [put]
func (pc *ProfileController) SavePreferences(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req PreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	prefs, err := pc.profiles.SavePreferences(c.Request.Context(), userID, req.Preference, req.Allergies)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Preferences saved successfully", prefs)
}
