package domain

import "time"

type User struct {
	ID             string    `json:"_id" gorm:"primaryKey"`
	FirstName      string    `json:"firstname" gorm:"not null"`
	LastName       string    `json:"lastname" gorm:"not null"`
	Email          string    `json:"email" gorm:"uniqueIndex;not null"`
	Password       string    `json:"-" gorm:"not null"` // bcrypt hash, never serialized
	ProfilePicture string    `json:"profilePicture,omitempty"`
	Provider       string    `json:"provider"` // "email" or "google"
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
