package controllers

import (
	"net/http"
	"strconv"

	"fitcircle/internal/models"
	"fitcircle/internal/services"
	"fitcircle/internal/utils"

	"github.com/gin-gonic/gin"
)

const defaultHistoryDays = 7

type ProgressController struct {
	progress *services.ProgressService
	clock    Clock
}

func NewProgressController(progress *services.ProgressService, clock Clock) *ProgressController {
	return &ProgressController{progress: progress, clock: clock}
}

type LogProgressRequest struct {
	Amount *int   `json:"amount" binding:"required" example:"250"`
	Date   string `json:"date" example:"2024-01-01"`
}

type LogWeightRequest struct {
	WeightKg float64 `json:"weight_kg" binding:"required" example:"72.5"`
	Notes    *string `json:"notes" example:"after run"`
}

// GetDaily godoc
// @Summary Get daily progress
// @Description Counters of the given day. Missing days read as zeros
// @Tags progress
// @Produce json
// @Security BearerAuth
// @Param date query string false "Day (YYYY-MM-DD), defaults to today"
// @Success 200 {object} map[string]interface{} "Progress retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid date"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Router /progress [get]
func (pc *ProgressController) GetDaily(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	date, ok := pc.clock.dateOrToday(c, c.Query("date"))
	if !ok {
		return
	}

	progress, err := pc.progress.GetDaily(c.Request.Context(), userID, date)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Progress retrieved successfully", progress)
}

// History godoc
// @Summary Progress history
// @Description Daily rows between from and to, latest first. Defaults to the last 7 days
// @Tags progress
// @Produce json
// @Security BearerAuth
// @Param from query string false "First day (YYYY-MM-DD)"
// @Param to query string false "Last day (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{} "Progress history retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid date range"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Router /progress/history [get]
func (pc *ProgressController) History(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	to, ok := pc.clock.dateOrToday(c, c.Query("to"))
	if !ok {
		return
	}
	from := to.AddDate(0, 0, -(defaultHistoryDays - 1))
	if raw := c.Query("from"); raw != "" {
		if from, ok = pc.clock.dateOrToday(c, raw); !ok {
			return
		}
	}

	rows, err := pc.progress.History(c.Request.Context(), userID, from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Progress history retrieved successfully", rows)
}

// LogProgress godoc
// @Summary Add to a daily counter
// @Description Adds amount to calories_consumed, calories_burned, steps or water_ml and returns the new total
// @Tags progress
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param field path string true "Counter" Enums(calories_consumed, calories_burned, steps, water_ml)
// @Param body body LogProgressRequest true "Amount to add"
// @Success 200 {object} map[string]interface{} "Progress logged successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 500 {object} map[string]interface{} "Failed to log progress"
// @Router /progress/{field} [post]
func (pc *ProgressController) LogProgress(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req LogProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	date, ok := pc.clock.dateOrToday(c, req.Date)
	if !ok {
		return
	}

	field := models.ProgressField(c.Param("field"))
	total, err := pc.progress.ApplyDelta(c.Request.Context(), userID, date, field, *req.Amount)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Progress logged successfully", gin.H{
		"field": field,
		"date":  utils.FormatDate(date),
		"total": total,
	})
}

// LogWeight godoc
// @Summary Log weight
// @Description Appends a weight entry and updates the profile's current weight
// @Tags weight
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body LogWeightRequest true "Weight entry"
// @Success 201 {object} map[string]interface{} "Weight logged successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Router /weight [post]
func (pc *ProgressController) LogWeight(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req LogWeightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	entry, err := pc.progress.LogWeight(c.Request.Context(), userID, req.WeightKg, req.Notes, pc.clock.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, "Weight logged successfully", entry)
}

// RecentWeights godoc
// @Summary Recent weight entries
// @Tags weight
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Number of entries (default 7, max 100)"
// @Success 200 {object} map[string]interface{} "Weight history retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid limit"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Router /weight [get]
func (pc *ProgressController) RecentWeights(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid limit",
				"error":   err.Error(),
			})
			return
		}
		limit = n
	}

	logs, err := pc.progress.RecentWeights(c.Request.Context(), userID, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Weight history retrieved successfully", logs)
}
