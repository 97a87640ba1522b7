package routes

import (
	"fitcircle/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterFamilyRoutes(router *gin.Engine, familyController *controllers.FamilyController, auth gin.HandlerFunc) {
	familyRoutes := router.Group("/family")
	familyRoutes.Use(auth)
	{
		familyRoutes.POST("", familyController.CreateFamily)
		familyRoutes.GET("", familyController.GetFamily)
		familyRoutes.POST("/join", familyController.JoinFamily)
		familyRoutes.DELETE("/membership", familyController.LeaveFamily)
		familyRoutes.GET("/view", familyController.GetFamilyView)

		familyRoutes.POST("/challenges", familyController.CreateChallenge)
		familyRoutes.GET("/challenges", familyController.ListChallenges)
	}
}
