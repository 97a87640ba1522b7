package controllers

import (
	"errors"
	"net/http"
	"time"

	"fitcircle/internal/middleware"
	"fitcircle/internal/services"
	"fitcircle/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Clock resolves "today" for requests that carry no date. Clients normally
// send their local date; the server falls back to its configured zone.
type Clock struct {
	Now      func() time.Time
	Location *time.Location
}

func NewClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.Local
	}
	return Clock{Now: time.Now, Location: loc}
}

func (k Clock) Today() time.Time {
	return utils.DateOf(k.Now().In(k.Location))
}

// dateOrToday parses a YYYY-MM-DD value, or returns Today for "". It writes a
// 400 response and returns false on a malformed date.
func (k Clock) dateOrToday(c *gin.Context, raw string) (time.Time, bool) {
	if raw == "" {
		return k.Today(), true
	}
	date, err := utils.ParseDate(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid date",
			"error":   "Use format YYYY-MM-DD",
		})
		return time.Time{}, false
	}
	return date, true
}

func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(middleware.ContextUserID)
	userID, ok := value.(uuid.UUID)
	if !exists || !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized",
			"error":   "User ID not found in token",
		})
		return uuid.Nil, false
	}
	return userID, true
}

func currentIdentity(c *gin.Context) (services.Identity, bool) {
	userID, ok := currentUserID(c)
	if !ok {
		return services.Identity{}, false
	}
	return services.Identity{
		UserID: userID,
		Email:  c.GetString(middleware.ContextEmail),
		Name:   c.GetString(middleware.ContextName),
	}, true
}

func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid id",
			"error":   err.Error(),
		})
		return uuid.Nil, false
	}
	return id, true
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"status":  "error",
		"message": "Invalid request data",
		"error":   err.Error(),
	})
}

func statusFor(err error) int {
	switch services.KindOf(err) {
	case services.KindValidation:
		return http.StatusBadRequest
	case services.KindNotFound:
		return http.StatusNotFound
	case services.KindConflict:
		return http.StatusConflict
	case services.KindUpstream:
		switch services.CodeOf(err) {
		case services.CodeRateLimited:
			return http.StatusTooManyRequests
		case services.CodeQuotaExhausted:
			return http.StatusPaymentRequired
		}
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// respondError writes the error envelope. Causes of server-side failures go
// to the request log, not to the client.
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	message := "Internal server error"
	detail := string(services.KindStore)

	var se *services.Error
	if errors.As(err, &se) {
		message = se.Message
		detail = se.Code
		if detail == "" {
			detail = string(se.Kind)
		}
	}
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
	}

	c.JSON(status, gin.H{
		"status":  "error",
		"message": message,
		"error":   detail,
	})
}

func respondOK(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, gin.H{
		"status":  "success",
		"message": message,
		"data":    data,
	})
}
