package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/AndrewTr0612/healthtracker/backend/config"
	"github.com/AndrewTr0612/healthtracker/backend/internal/advisor"
	"github.com/AndrewTr0612/healthtracker/backend/internal/database"
	"github.com/AndrewTr0612/healthtracker/backend/internal/server"
)

func main() {
	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	gin.SetMode(config.GetEnvironment().GinMode())

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	gormDB, err := db.Gorm()
	if err != nil {
		log.Fatalf("Failed to initialize gorm: %v", err)
	}

	if err := database.RunMigrations(gormDB, getMigrationsDir()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	deps := server.Dependencies{
		DB:      gormDB,
		Advisor: advisor.NewDefault(),
	}

	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		log.Printf("Warning: Redis unavailable, continuing without rate limiting: %v", err)
	} else if redisClient != nil {
		deps.Redis = redisClient
		defer redisClient.Close()
	}

	if cfg.S3Bucket != "" {
		store, err := config.NewS3Config(context.Background(), cfg)
		if err != nil {
			log.Printf("Warning: S3 unavailable, continuing without exports: %v", err)
		} else {
			deps.Store = store
		}
	}

	// Create and start server
	srv := server.New(cfg, deps)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)

	// Start server in a goroutine
	go func() {
		log.Println("Starting server...")
		errChan <- srv.Start()
	}()

	// Channel to listen for an interrupt or terminate signal from the OS
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or error
	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	// Gracefully shutdown the server
	log.Println("Shutting down server...")
	if err := srv.Shutdown(context.Background()); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}

func getMigrationsDir() string {
	if dir := os.Getenv("MIGRATIONS_DIR"); dir != "" {
		return dir
	}
	return "migrations"
}
