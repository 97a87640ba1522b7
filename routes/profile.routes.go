package routes

import (
	"fitcircle/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterProfileRoutes(router *gin.Engine, profileController *controllers.ProfileController, auth gin.HandlerFunc) {
	profileRoutes := router.Group("/profile")
	profileRoutes.Use(auth)
	{
		profileRoutes.GET("", profileController.GetProfile)
		profileRoutes.PATCH("", profileController.UpdateProfile)
		profileRoutes.PATCH("/goals", profileController.UpdateGoals)
		profileRoutes.GET("/preferences", profileController.GetPreferences)
		profileRoutes.PUT("/preferences", profileController.SavePreferences)
	}
}
