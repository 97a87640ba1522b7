package routes

import (
	"fitcircle/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterWorkoutRoutes(router *gin.Engine, workoutController *controllers.WorkoutController, auth gin.HandlerFunc) {
	workoutRoutes := router.Group("/workouts")
	workoutRoutes.Use(auth)
	{
		workoutRoutes.GET("", workoutController.ListExercises)
		workoutRoutes.POST("", workoutController.AddExercise)
		workoutRoutes.POST("/log", workoutController.LogWorkout)
		workoutRoutes.PATCH("/:id/toggle", workoutController.ToggleExercise)
		workoutRoutes.DELETE("/:id", workoutController.DeleteExercise)
	}
}
