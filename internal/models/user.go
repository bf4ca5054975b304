package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `json:"id" db:"id"`                 // Primary key
	Username     string    `json:"username" db:"username"`     // Unique username
	PasswordHash string    `json:"-" db:"password_hash"`       // Hashed password, never serialized
	IsAdmin      bool      `json:"is_admin" db:"is_admin"`     // Elevated privileges flag
	IsActive     bool      `json:"is_active" db:"is_active"`   // False once banned
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}
