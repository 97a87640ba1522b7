package controllers

import (
	"net/http"

	"fitcircle/internal/models"
	"fitcircle/internal/services"

	"github.com/gin-gonic/gin"
)

type MealController struct {
	meals *services.MealService
	plans *services.MealPlanService
	clock Clock
}

func NewMealController(meals *services.MealService, plans *services.MealPlanService, clock Clock) *MealController {
	return &MealController{meals: meals, plans: plans, clock: clock}
}

type LogMealRequest struct {
	MealType    models.MealType `json:"meal_type" example:"lunch"`
	Time        string          `json:"time" example:"12:30 PM"`
	Title       string          `json:"title" binding:"required" example:"Grilled chicken salad"`
	Ingredients string          `json:"ingredients" example:"chicken, lettuce"`
	Calories    int             `json:"calories" example:"520"`
	Tag         string          `json:"tag" example:"High Protein"`
	Protein     float64         `json:"protein" example:"42"`
	Carbs       float64         `json:"carbs" example:"18"`
	Fat         float64         `json:"fat" example:"22"`
	Date        string          `json:"date" example:"2024-01-01"`
}

type GenerateMealsRequest struct {
	MealType models.MealType `json:"meal_type" example:"dinner"`
	Date     string          `json:"date" example:"2024-01-01"`
}

// LogMeal godoc
// @Summary Log a meal
// @Description Stores the meal and adds its calories to the day's calories_consumed
// @Tags meals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body LogMealRequest true "Meal"
// @Success 201 {object} map[string]interface{} "Meal logged successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Router /meals/log [post]
func (mc *MealController) LogMeal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req LogMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	date, ok := mc.clock.dateOrToday(c, req.Date)
	if !ok {
		return
	}

	logged, err := mc.meals.LogMeal(c.Request.Context(), userID, date, services.MealEntry{
		MealType:    req.MealType,
		Time:        req.Time,
		Title:       req.Title,
		Ingredients: req.Ingredients,
		Calories:    req.Calories,
		Tag:         req.Tag,
		Protein:     req.Protein,
		Carbs:       req.Carbs,
		Fat:         req.Fat,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, "Meal logged successfully", logged)
}

// ListMeals godoc
// @Summary Meals logged on a day
// @Tags meals
// @Produce json
// @Security BearerAuth
// @Param date query string false "Day (YYYY-MM-DD), defaults to today"
// @Success 200 {object} map[string]interface{} "Meals retrieved successfully"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Router /meals [get]
func (mc *MealController) ListMeals(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	date, ok := mc.clock.dateOrToday(c, c.Query("date"))
	if !ok {
		return
	}

	meals, err := mc.meals.ListMeals(c.Request.Context(), userID, date)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Meals retrieved successfully", meals)
}

// GenerateMeals godoc
// @Summary Generate a meal plan
// @Description Generates four meals, or one when meal_type is set, from the user's goals and preferences
// @Tags meals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body GenerateMealsRequest false "Meal type to regenerate"
// @Success 200 {object} map[string]interface{} "Meal plan generated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid meal type"
// @Failure 402 {object} map[string]interface{} "AI credits exhausted"
// @Failure 429 {object} map[string]interface{} "Rate limit exceeded"
// @Failure 502 {object} map[string]interface{} "Failed to generate meals"
// @Router /meals/generate [post]
func (mc *MealController) GenerateMeals(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req GenerateMealsRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
	}
	date, ok := mc.clock.dateOrToday(c, req.Date)
	if !ok {
		return
	}

	plan, err := mc.plans.Generate(c.Request.Context(), userID, date, req.MealType)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Meal plan generated successfully", plan)
}

// GetMealPlan godoc
// @Summary Latest generated meal plan of a day
// @Tags meals
// @Produce json
// @Security BearerAuth
// @Param date query string false "Day (YYYY-MM-DD), defaults to today"
// @Success 200 {object} map[string]interface{} "Meal plan retrieved successfully"
// @Failure 404 {object} map[string]interface{} "No meal plan generated for this day"
// @Router /meals/plan [get]
func (mc *MealController) GetMealPlan(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	date, ok := mc.clock.dateOrToday(c, c.Query("date"))
	if !ok {
		return
	}

	plan, err := mc.plans.CachedPlan(c.Request.Context(), userID, date)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Meal plan retrieved successfully", plan)
}
