package api

import (
	"net/http"
	"time"

	"taskboard-backend/internal/auth/delivery"
	authUsecase "taskboard-backend/internal/auth/usecase"
	taskDelivery "taskboard-backend/internal/task/delivery"
	taskUsecasePkg "taskboard-backend/internal/task/usecase"
	"taskboard-backend/pkg/config"
	"taskboard-backend/pkg/ratelimit"

	"github.com/gin-gonic/gin"
)

// Credential endpoints are the only ones worth brute-forcing, so they get
// the per-IP limiter when Redis is configured.
const (
	loginRateLimit  = 10
	loginRateWindow = time.Minute
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, taskUc taskUsecasePkg.TaskUsecase, cfg *config.Config, limiter ratelimit.Allower) {
	authHandler := delivery.NewAuthHandler(authUc, cfg)
	taskHandler := taskDelivery.NewTaskHandler(taskUc)

	v1 := r.Group("/api/v1")
	{
		// Health check (no auth required)
		v1.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Credential routes
		user := v1.Group("/user")
		{
			credLimit := ratelimit.Middleware(limiter, loginRateLimit, loginRateWindow)
			user.POST("/signup", credLimit, authHandler.Signup)
			user.POST("/login", credLimit, authHandler.Login)
			user.POST("/logout", authHandler.Logout)
			user.POST("/google", authHandler.GoogleSignIn)
			user.GET("/me", delivery.AuthMiddleware(authUc), authHandler.Me)
		}

		// Task routes (protected)
		tasks := v1.Group("/tasks")
		tasks.Use(delivery.AuthMiddleware(authUc))
		{
			tasks.GET("", taskHandler.GetTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.PUT("/:id", taskHandler.UpdateTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
		}
	}
}
