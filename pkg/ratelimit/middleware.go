package ratelimit

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Allower is the check the middleware needs from a limiter.
type Allower interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}

// Middleware limits requests per client IP. With a nil limiter it is a
// pass-through, so the server runs fine without Redis configured.
func Middleware(limiter Allower, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}

		allowed, err := limiter.Allow(c.Request.Context(), c.ClientIP()+":"+c.FullPath(), limit, window)
		if err != nil {
			// Fail open: a Redis outage should not lock everyone out.
			log.Printf("[WARN] rate limiter unavailable: %v", err)
			c.Next()
			return
		}

		if !allowed {
			c.JSON(http.StatusTooManyRequests, gin.H{"message": "too many requests, slow down"})
			c.Abort()
			return
		}

		c.Next()
	}
}
