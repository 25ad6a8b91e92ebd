package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	api "taskboard-backend/cmd/api"
	authdomain "taskboard-backend/internal/auth/domain"
	authRepo "taskboard-backend/internal/auth/repository"
	authUsecase "taskboard-backend/internal/auth/usecase"
	taskdomain "taskboard-backend/internal/task/domain"
	taskRepo "taskboard-backend/internal/task/repository"
	taskUsecase "taskboard-backend/internal/task/usecase"
	"taskboard-backend/pkg/config"
	"taskboard-backend/pkg/database"
	"taskboard-backend/pkg/googleauth"
	"taskboard-backend/pkg/ratelimit"

	"github.com/redis/go-redis/v9"
)

const shutdownTimeout = 15 * time.Second

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &taskdomain.Task{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	taskRepository := taskRepo.NewGormTaskRepository(db)

	// Initialize use cases
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepository, cfg)
	taskUsecaseInstance := taskUsecase.NewTaskUsecase(taskRepository)

	// Google ID-token verification for the federated login path
	if cfg.GoogleClientID != "" {
		authUsecaseInstance.SetGoogleVerifier(googleauth.NewVerifier(cfg.GoogleClientID))
		log.Printf("Google ID token verification enabled")
	} else {
		log.Printf("[WARN] GOOGLE_CLIENT_ID not set, federated logins accept the claimed email")
	}

	// Optional Redis-backed rate limiting on credential endpoints
	var limiter ratelimit.Allower
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		if err := client.Ping(context.Background()).Err(); err != nil {
			log.Printf("[WARN] Redis unreachable at %s, rate limiting disabled: %v", cfg.RedisAddr, err)
		} else {
			limiter = ratelimit.NewLimiter(client, "taskboard:rl:")
			log.Printf("Rate limiting enabled via Redis at %s", cfg.RedisAddr)
		}
	}

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, taskUsecaseInstance, cfg, limiter)

	// Stop on SIGINT/SIGTERM, draining in-flight requests first
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := handler.Shutdown(shutdownCtx); err != nil {
			log.Printf("[ERROR] shutdown: %v", err)
		}
	}()

	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
	log.Printf("Server stopped")
}
