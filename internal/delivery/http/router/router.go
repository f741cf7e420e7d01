// Package router wires the HTTP routes to their handlers.
package router

import (
	"bulkup/internal/delivery/http/middleware"
	"bulkup/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams contains the handlers and middlewares required to register routes
type RouterParams struct {
	fx.In

	UserHandler     *handler.UserHandler
	ProfileHandler  *handler.ProfileHandler
	FoodHandler     *handler.FoodHandler
	ExerciseHandler *handler.ExerciseHandler
	ProgressHandler *handler.ProgressHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// Router registers the API routes
type Router struct {
	params RouterParams
}

// NewRouter creates a new router
func NewRouter(params RouterParams) *Router {
	return &Router{params: params}
}

// RegisterRoutes registers all API routes on the Echo instance
func (r *Router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.params.UserHandler.HealthCheck)

	// Session endpoints, no authentication required
	auth := e.Group("/auth")
	auth.POST("/register", r.params.UserHandler.Register)
	auth.POST("/login", r.params.UserHandler.Login)
	auth.POST("/refresh", r.params.UserHandler.Refresh)

	// Static exercise catalog, public
	e.GET("/exercises", r.params.ExerciseHandler.ListExerciseTypes)
	e.GET("/exercises/:id", r.params.ExerciseHandler.GetExerciseType)

	// Per-user resources, access token required
	user := e.Group("/user", r.params.AuthMiddleware.Authenticate)
	user.GET("/profile", r.params.ProfileHandler.GetProfile)
	user.PUT("/profile", r.params.ProfileHandler.UpdateProfile)
	user.GET("/targets", r.params.ProfileHandler.GetTargets)

	user.GET("/food-entries", r.params.FoodHandler.ListFoodEntries)
	user.POST("/food-entries", r.params.FoodHandler.AddFoodEntry)
	user.DELETE("/food-entries/:id", r.params.FoodHandler.DeleteFoodEntry)

	user.GET("/exercise-entries", r.params.ExerciseHandler.ListExerciseEntries)
	user.POST("/exercise-entries", r.params.ExerciseHandler.AddExerciseEntry)
	user.DELETE("/exercise-entries/:id", r.params.ExerciseHandler.DeleteExerciseEntry)

	user.GET("/progress", r.params.ProgressHandler.DailyProgress)
}
