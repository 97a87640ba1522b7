package routes

import (
	"fitcircle/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterProgressRoutes(router *gin.Engine, progressController *controllers.ProgressController, auth gin.HandlerFunc) {
	progressRoutes := router.Group("/progress")
	progressRoutes.Use(auth)
	{
		progressRoutes.GET("", progressController.GetDaily)
		progressRoutes.GET("/history", progressController.History)
		progressRoutes.POST("/:field", progressController.LogProgress)
	}

	weightRoutes := router.Group("/weight")
	weightRoutes.Use(auth)
	{
		weightRoutes.POST("", progressController.LogWeight)
		weightRoutes.GET("", progressController.RecentWeights)
	}
}
