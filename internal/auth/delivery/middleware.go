package delivery

import (
	"net/http"
	"strings"

	"taskboard-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

// SessionCookieName is the cookie the session token travels in.
const SessionCookieName = "jwt"

// AuthMiddleware authenticates the request from the session cookie, falling
// back to a bearer Authorization header for non-browser clients. On failure
// it answers 401 so the client drops its identity belief and re-logs-in.
func AuthMiddleware(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromRequest(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "authentication required"})
			c.Abort()
			return
		}

		user, err := authUsecase.ValidateToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid or expired token"})
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Set("userID", user.ID)
		c.Next()
	}
}

func tokenFromRequest(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}
