package server

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/AndrewTr0612/healthtracker/backend/config"
	"github.com/AndrewTr0612/healthtracker/backend/internal/advisor"
	"github.com/AndrewTr0612/healthtracker/backend/internal/api"
	"github.com/AndrewTr0612/healthtracker/backend/internal/middleware"
	"github.com/AndrewTr0612/healthtracker/backend/internal/router"
	"github.com/AndrewTr0612/healthtracker/backend/internal/service"
)

// Dependencies are the external resources the server is built on. Redis and
// Store are optional.
type Dependencies struct {
	DB      *gorm.DB
	Redis   *redis.Client
	Store   service.ObjectStore
	Advisor *advisor.Advisor
}

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
}

// New wires services and handlers into a ready-to-start server.
func New(cfg *config.Config, deps Dependencies) *Server {
	authService := service.NewAuthService(deps.DB, cfg.JWTSecret)

	handlers := router.Handlers{
		Auth:      api.NewAuthHandler(authService),
		Profile:   api.NewProfileHandler(service.NewProfileService(deps.DB)),
		Weight:    api.NewWeightHandler(service.NewWeightService(deps.DB), service.NewExportService(deps.DB, deps.Store)),
		Goal:      api.NewGoalHandler(service.NewGoalService(deps.DB)),
		Dashboard: api.NewDashboardHandler(service.NewDashboardService(deps.DB)),
		Chat:      api.NewChatHandler(service.NewChatService(deps.DB, deps.Advisor), middleware.NewChatRateLimiter(deps.Redis)),
	}
	if deps.Redis == nil {
		log.Printf("Warning: Redis not configured, chat rate limiting disabled")
	}
	if deps.Store == nil {
		log.Printf("Warning: S3 not configured, weight exports disabled")
	}

	r := router.SetupRouter(handlers, authService, cfg.AllowedOrigins)

	return &Server{
		router: r,
		http: &http.Server{
			Addr:              net.JoinHostPort(cfg.ServerHost, cfg.ServerPort),
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Handler exposes the routes, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until Shutdown is called. It returns nil after a clean
// shutdown.
func (s *Server) Start() error {
	log.Printf("Listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return s.http.Shutdown(ctx)
}
