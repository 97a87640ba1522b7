package controllers

import (
	"net/http"

	"fitcircle/internal/models"
	"fitcircle/internal/services"
	"fitcircle/internal/utils"

	"github.com/gin-gonic/gin"
)

type WorkoutController struct {
	workouts *services.WorkoutService
	progress *services.ProgressService
	clock    Clock
}

func NewWorkoutController(workouts *services.WorkoutService, progress *services.ProgressService, clock Clock) *WorkoutController {
	return &WorkoutController{workouts: workouts, progress: progress, clock: clock}
}

type AddExerciseRequest struct {
	ExerciseName string   `json:"exercise_name" binding:"required" example:"Squats"`
	Sets         *int     `json:"sets" example:"3"`
	Reps         *int     `json:"reps" example:"12"`
	WeightKg     *float64 `json:"weight_kg" example:"40"`
	Date         string   `json:"date" example:"2024-01-01"`
}

type LogWorkoutRequest struct {
	Calories *int   `json:"calories" binding:"required" example:"320"`
	Date     string `json:"date" example:"2024-01-01"`
}

// ListExercises godoc
// @Summary Workout plan of a day
// @Tags workouts
// @Produce json
// @Security BearerAuth
// @Param date query string false "Day (YYYY-MM-DD), defaults to today"
// @Success 200 {object} map[string]interface{} "Workout plan retrieved successfully"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Router /workouts [get]
func (wc *WorkoutController) ListExercises(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	date, ok := wc.clock.dateOrToday(c, c.Query("date"))
	if !ok {
		return
	}

	exercises, err := wc.workouts.List(c.Request.Context(), userID, date)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Workout plan retrieved successfully", exercises)
}

// AddExercise godoc
// @Summary Add an exercise to the day's plan
// @Tags workouts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body AddExerciseRequest true "Exercise"
// @Success 201 {object} map[string]interface{} "Exercise added successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Router /workouts [post]
func (wc *WorkoutController) AddExercise(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req AddExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	date, ok := wc.clock.dateOrToday(c, req.Date)
	if !ok {
		return
	}

	exercise, err := wc.workouts.Add(c.Request.Context(), userID, date, services.NewExercise{
		Name:     req.ExerciseName,
		Sets:     req.Sets,
		Reps:     req.Reps,
		WeightKg: req.WeightKg,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, "Exercise added successfully", exercise)
}

// ToggleExercise godoc
// @Summary Toggle an exercise's completed flag
// @Tags workouts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Exercise ID"
// @Success 200 {object} map[string]interface{} "Exercise updated successfully"
// @Failure 404 {object} map[string]interface{} "Exercise not found"
// @Router /workouts/{id}/toggle [patch]
func (wc *WorkoutController) ToggleExercise(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	exercise, err := wc.workouts.Toggle(c.Request.Context(), userID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Exercise updated successfully", exercise)
}

// DeleteExercise godoc
// @Summary Delete an exercise
// @Tags workouts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Exercise ID"
// @Success 200 {object} map[string]interface{} "Exercise deleted successfully"
// @Failure 404 {object} map[string]interface{} "Exercise not found"
// @Router /workouts/{id} [delete]
func (wc *WorkoutController) DeleteExercise(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := wc.workouts.Delete(c.Request.Context(), userID, id); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Exercise deleted successfully", nil)
}

// LogWorkout godoc
// @Summary Log burned calories
// @Description Adds calories to the day's calories_burned
// @Tags workouts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body LogWorkoutRequest true "Burned calories"
// @Success 200 {object} map[string]interface{} "Workout logged successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /workouts/log [post]
func (wc *WorkoutController) LogWorkout(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req LogWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	date, ok := wc.clock.dateOrToday(c, req.Date)
	if !ok {
		return
	}

	total, err := wc.progress.ApplyDelta(c.Request.Context(), userID, date, models.FieldCaloriesBurned, *req.Calories)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Workout logged successfully", gin.H{
		"date":            utils.FormatDate(date),
		"calories_burned": total,
	})
}
