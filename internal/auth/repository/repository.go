package repository

import authdomain "taskboard-backend/internal/auth/domain"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *authdomain.User) error
	FindByEmail(email string) (*authdomain.User, error)
	FindByID(id string) (*authdomain.User, error)
	Update(user *authdomain.User) error
}
