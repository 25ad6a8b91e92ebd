package usecase

import (
	"context"

	authdomain "taskboard-backend/internal/auth/domain"
	authdto "taskboard-backend/internal/auth/dto"

	"taskboard-backend/pkg/googleauth"
)

// AuthUsecase defines the credential service operations. Operations that
// issue a session return the public user record together with the signed
// token; the delivery layer decides how the token travels (cookie).
type AuthUsecase interface {
	// Signup creates a new account and issues a session token.
	Signup(req *authdto.SignupRequest) (*authdomain.User, string, error)

	// Login verifies credentials and issues a session token.
	Login(req *authdto.LoginRequest) (*authdomain.User, string, error)

	// GoogleSignIn finds or creates the account for a federated identity
	// and issues a session token.
	GoogleSignIn(ctx context.Context, req *authdto.GoogleSignInRequest) (*authdomain.User, string, error)

	// ValidateToken resolves a session token to its user.
	ValidateToken(token string) (*authdomain.User, error)

	// SetGoogleVerifier installs ID-token verification for the federated path.
	SetGoogleVerifier(v GoogleVerifier)
}

// GoogleVerifier validates a Google ID token and returns the asserted identity.
type GoogleVerifier interface {
	Verify(ctx context.Context, token string) (*googleauth.Identity, error)
}
