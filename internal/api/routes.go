package api

import (
	"alcyxob/fitness-tracker/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes registers every route on router. When jwtSecret is empty the
// workout routes are served without authentication.
func SetupRoutes(router *gin.Engine, jwtSecret string, trackerService service.TrackerService) {
	workoutHandler := NewWorkoutHandler(trackerService)

	router.Use(RequestIDMiddleware(), LoggingMiddleware())

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiV1 := router.Group("/api/v1")
	{
		apiV1.GET("/activities", workoutHandler.ListActivities)
	}

	workoutGroup := apiV1.Group("/workouts")
	if jwtSecret != "" {
		workoutGroup.Use(AuthMiddleware(jwtSecret))
	}
	{
		// POST /api/v1/workouts/summary
		workoutGroup.POST("/summary", workoutHandler.SummarizeWorkout)
		// POST /api/v1/workouts/summary/batch
		workoutGroup.POST("/summary/batch", workoutHandler.SummarizeBatch)
	}
}
