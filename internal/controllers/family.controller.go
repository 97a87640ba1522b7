package controllers

import (
	"net/http"

	"fitcircle/internal/services"

	"github.com/gin-gonic/gin"
)

type FamilyController struct {
	families    *services.FamilyService
	leaderboard *services.LeaderboardService
	challenges  *services.ChallengeService
	clock       Clock
}

func NewFamilyController(
	families *services.FamilyService,
	leaderboard *services.LeaderboardService,
	challenges *services.ChallengeService,
	clock Clock,
) *FamilyController {
	return &FamilyController{
		families:    families,
		leaderboard: leaderboard,
		challenges:  challenges,
		clock:       clock,
	}
}

type CreateFamilyRequest struct {
	Name string `json:"name" binding:"required" example:"The Smiths"`
}

type JoinFamilyRequest struct {
	InviteCode string `json:"invite_code" binding:"required" example:"AB12CD34"`
}

type CreateChallengeRequest struct {
	Title     string `json:"title" binding:"required" example:"100k Steps Together"`
	Target    int    `json:"target" binding:"required" example:"100000"`
	StartDate string `json:"start_date" example:"2024-01-01"`
	EndDate   string `json:"end_date" example:"2024-01-07"`
}

// CreateFamily godoc
// @Summary Create a family circle
// @Description Creates a circle with the caller as first member and returns its invite code
// @Tags family
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateFamilyRequest true "Family name"
// @Success 201 {object} map[string]interface{} "Family created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 409 {object} map[string]interface{} "Already in a family"
// @Failure 500 {object} map[string]interface{} "Failed to create family"
// @Router /family [post]
func (fc *FamilyController) CreateFamily(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req CreateFamilyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	family, err := fc.families.CreateFamily(c.Request.Context(), userID, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, "Family created successfully", gin.H{
		"family":      family,
		"invite_code": family.DisplayInviteCode(),
	})
}

// JoinFamily godoc
// @Summary Join a family circle
// @Description Invite codes are matched case-insensitively
// @Tags family
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body JoinFamilyRequest true "Invite code"
// @Success 200 {object} map[string]interface{} "Joined family successfully"
// @Failure 404 {object} map[string]interface{} "No family found with that invite code"
// @Failure 409 {object} map[string]interface{} "Already a member"
// @Router /family/join [post]
func (fc *FamilyController) JoinFamily(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req JoinFamilyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	family, err := fc.families.JoinFamily(c.Request.Context(), userID, req.InviteCode)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Joined "+family.Name+" successfully", family)
}

// LeaveFamily godoc
// @Summary Leave the current family circle
// @Tags family
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Left family successfully"
// @Failure 404 {object} map[string]interface{} "Not part of a family"
// @Router /family/membership [delete]
func (fc *FamilyController) LeaveFamily(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := fc.families.LeaveFamily(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Left family successfully", nil)
}

// GetFamily godoc
// @Summary Current family circle and members
// @Tags family
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Family retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Not part of a family"
// @Router /family [get]
func (fc *FamilyController) GetFamily(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	details, err := fc.families.MyFamily(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Family retrieved successfully", gin.H{
		"family":      details.Family,
		"invite_code": details.Family.DisplayInviteCode(),
		"members":     details.Members,
	})
}

// GetFamilyView godoc
// @Summary Family leaderboard
// @Description Members ranked by calories burned on the day, with the active weekly challenge
// @Tags family
// @Produce json
// @Security BearerAuth
// @Param date query string false "Day (YYYY-MM-DD), defaults to today"
// @Success 200 {object} map[string]interface{} "Family view retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid date"
// @Router /family/view [get]
func (fc *FamilyController) GetFamilyView(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	date, ok := fc.clock.dateOrToday(c, c.Query("date"))
	if !ok {
		return
	}

	view, err := fc.leaderboard.ComputeFamilyView(c.Request.Context(), userID, date, fc.clock.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Family view retrieved successfully", view)
}

// CreateChallenge godoc
// @Summary Create a weekly challenge
// @Description Start defaults to today and end to start plus six days
// @Tags family
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateChallengeRequest true "Challenge"
// @Success 201 {object} map[string]interface{} "Challenge created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Not part of a family"
// @Router /family/challenges [post]
func (fc *FamilyController) CreateChallenge(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req CreateChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	input := services.NewChallenge{Title: req.Title, Target: req.Target}
	if req.StartDate != "" {
		start, ok := fc.clock.dateOrToday(c, req.StartDate)
		if !ok {
			return
		}
		input.StartDate = &start
	}
	if req.EndDate != "" {
		end, ok := fc.clock.dateOrToday(c, req.EndDate)
		if !ok {
			return
		}
		input.EndDate = &end
	}

	challenge, err := fc.challenges.CreateChallenge(c.Request.Context(), userID, fc.clock.Today(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, "Challenge created successfully", challenge)
}

// ListChallenges godoc
// @Summary Challenges of the current family
// @Tags family
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Challenges retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Not part of a family"
// @Router /family/challenges [get]
func (fc *FamilyController) ListChallenges(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	challenges, err := fc.challenges.ListChallenges(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Challenges retrieved successfully", challenges)
}
