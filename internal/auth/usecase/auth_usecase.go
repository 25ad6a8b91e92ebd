package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log"
	"time"

	authdomain "taskboard-backend/internal/auth/domain"
	authdto "taskboard-backend/internal/auth/dto"
	"taskboard-backend/internal/auth/repository"
	"taskboard-backend/pkg/apperror"
	"taskboard-backend/pkg/config"

	"github.com/golang-jwt/jwt/v5"
)

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo repository.UserRepository
	config   *config.Config
	verifier GoogleVerifier
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, cfg *config.Config) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		config:   cfg,
	}
}

func (u *authUsecase) SetGoogleVerifier(v GoogleVerifier) {
	u.verifier = v
}

func (u *authUsecase) Signup(req *authdto.SignupRequest) (*authdomain.User, string, error) {
	existing, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, "", apperror.Internal("failed to look up email", err)
	}
	if existing != nil {
		return nil, "", apperror.Conflict("User already exists")
	}

	hashedPassword, err := repository.HashPassword(req.Password)
	if err != nil {
		return nil, "", apperror.Internal("failed to hash password", err)
	}

	user := &authdomain.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  hashedPassword,
		Provider:  "email",
	}

	if err := u.userRepo.Create(user); err != nil {
		return nil, "", apperror.Internal("failed to create user", err)
	}

	token, err := u.generateToken(user)
	if err != nil {
		return nil, "", apperror.Internal("failed to sign token", err)
	}

	return user, token, nil
}

func (u *authUsecase) Login(req *authdto.LoginRequest) (*authdomain.User, string, error) {
	user, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, "", apperror.Internal("failed to look up email", err)
	}
	if user == nil {
		return nil, "", apperror.NotFound("User not found")
	}

	// bcrypt compare, not string compare: constant-time by construction.
	if !repository.CheckPasswordHash(req.Password, user.Password) {
		return nil, "", apperror.Authentication("Invalid Password")
	}

	token, err := u.generateToken(user)
	if err != nil {
		return nil, "", apperror.Internal("failed to sign token", err)
	}

	return user, token, nil
}

func (u *authUsecase) GoogleSignIn(ctx context.Context, req *authdto.GoogleSignInRequest) (*authdomain.User, string, error) {
	name := req.Name
	email := req.Email
	picture := req.GooglePhotoURL

	// When verification is configured, the signed token wins over whatever
	// the client claimed in the request body.
	if u.verifier != nil && req.IDToken != "" {
		identity, err := u.verifier.Verify(ctx, req.IDToken)
		if err != nil {
			return nil, "", apperror.Authentication("invalid google token")
		}
		email = identity.Email
		if identity.Name != "" {
			name = identity.Name
		}
		if identity.Picture != "" {
			picture = identity.Picture
		}
	} else if u.verifier != nil {
		log.Printf("[WARN] google sign-in for %s without id token, accepting claimed email", email)
	}

	user, err := u.userRepo.FindByEmail(email)
	if err != nil {
		return nil, "", apperror.Internal("failed to look up email", err)
	}

	if user == nil {
		// The account needs a password to satisfy persistence, but it must
		// never work on the normal login path.
		generated, err := randomPassword()
		if err != nil {
			return nil, "", apperror.Internal("failed to generate password", err)
		}
		hashed, err := repository.HashPassword(generated)
		if err != nil {
			return nil, "", apperror.Internal("failed to hash password", err)
		}

		user = &authdomain.User{
			FirstName:      name,
			LastName:       name,
			Email:          email,
			Password:       hashed,
			ProfilePicture: picture,
			Provider:       "google",
		}
		if err := u.userRepo.Create(user); err != nil {
			return nil, "", apperror.Internal("failed to create user", err)
		}
	}

	token, err := u.generateToken(user)
	if err != nil {
		return nil, "", apperror.Internal("failed to sign token", err)
	}

	return user, token, nil
}

func (u *authUsecase) generateToken(user *authdomain.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"exp":     time.Now().Add(u.config.JWTExpiry).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(u.config.JWTSecret))
}

func (u *authUsecase) ValidateToken(tokenString string) (*authdomain.User, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(u.config.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil || !token.Valid {
		return nil, apperror.Unauthenticated("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, apperror.Unauthenticated("invalid token claims")
	}

	userID, ok := claims["user_id"].(string)
	if !ok {
		return nil, apperror.Unauthenticated("invalid token claims")
	}

	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, apperror.Internal("failed to look up user", err)
	}
	if user == nil {
		return nil, apperror.Unauthenticated("user not found")
	}

	return user, nil
}

// randomPassword returns 32 hex chars from a CSPRNG. It exists only to fill
// the password column of federated accounts.
func randomPassword() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
