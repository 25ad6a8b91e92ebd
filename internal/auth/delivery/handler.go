package delivery

import (
	"log"
	"net/http"

	authdomain "taskboard-backend/internal/auth/domain"
	authdto "taskboard-backend/internal/auth/dto"
	"taskboard-backend/internal/auth/usecase"
	"taskboard-backend/pkg/apperror"
	"taskboard-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles credential HTTP requests
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	config      *config.Config
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authUsecase usecase.AuthUsecase, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		config:      cfg,
	}
}

// Signup creates a new account
// POST /api/v1/user/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req authdto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please fill all the fields"})
		return
	}

	user, token, err := h.authUsecase.Signup(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setSessionCookie(c, token)
	c.JSON(http.StatusCreated, user)
}

// Login verifies credentials and opens a session
// POST /api/v1/user/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please fill all the fields"})
		return
	}

	user, token, err := h.authUsecase.Login(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setSessionCookie(c, token)
	c.JSON(http.StatusOK, user)
}

// Logout clears the session cookie. Touches no server state; idempotent.
// POST /api/v1/user/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	h.clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// GoogleSignIn handles the federated login path
// POST /api/v1/user/google
func (h *AuthHandler) GoogleSignIn(c *gin.Context) {
	var req authdto.GoogleSignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please fill all the fields"})
		return
	}

	user, token, err := h.authUsecase.GoogleSignIn(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setSessionCookie(c, token)
	c.JSON(http.StatusOK, user)
}

// Me returns the authenticated user, letting the client rehydrate its
// identity belief from the server rather than from the cookie.
// GET /api/v1/user/me
func (h *AuthHandler) Me(c *gin.Context) {
	value, exists := c.Get("user")
	user, ok := value.(*authdomain.User)
	if !exists || !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "authentication required"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// setSessionCookie attaches the signed token as the HTTP-only session
// cookie. SameSite=None because the SPA is served from another origin.
func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(SessionCookieName, token, int(h.config.JWTExpiry.Seconds()), "/", h.config.CookieDomain, true, true)
}

// clearSessionCookie overwrites the cookie with an already-expired empty value.
func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(SessionCookieName, "", -1, "/", h.config.CookieDomain, true, true)
}

func respondError(c *gin.Context, err error) {
	status := apperror.Status(err)
	if status == http.StatusInternalServerError {
		log.Printf("[ERROR] %v", err)
	}
	c.JSON(status, gin.H{"message": apperror.ClientMessage(err)})
}
