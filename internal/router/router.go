package router

import (
	"github.com/gin-gonic/gin"

	"github.com/AndrewTr0612/healthtracker/backend/internal/api"
	"github.com/AndrewTr0612/healthtracker/backend/internal/middleware"
)

// Handlers groups every API handler the router mounts.
type Handlers struct {
	Auth      *api.AuthHandler
	Profile   *api.ProfileHandler
	Weight    *api.WeightHandler
	Goal      *api.GoalHandler
	Dashboard *api.DashboardHandler
	Chat      *api.ChatHandler
}

// SetupRouter configures the application routes
func SetupRouter(h Handlers, tokens middleware.TokenValidator, allowedOrigins []string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), middleware.ErrorHandler())
	router.Use(middleware.CORS(allowedOrigins))

	router.GET("/health", api.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	h.Auth.RegisterRoutes(v1)

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(tokens))
	{
		h.Profile.RegisterRoutes(protected)
		h.Weight.RegisterRoutes(protected)
		h.Goal.RegisterRoutes(protected)
		h.Dashboard.RegisterRoutes(protected)
		h.Chat.RegisterRoutes(protected)
	}

	return router
}
