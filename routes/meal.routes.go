package routes

import (
	"fitcircle/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterMealRoutes(router *gin.Engine, mealController *controllers.MealController, auth gin.HandlerFunc) {
	mealRoutes := router.Group("/meals")
	mealRoutes.Use(auth)
	{
		mealRoutes.GET("", mealController.ListMeals)
		mealRoutes.POST("/log", mealController.LogMeal)
		mealRoutes.POST("/generate", mealController.GenerateMeals)
		mealRoutes.GET("/plan", mealController.GetMealPlan)
	}
}
