package handlers

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sbilibin2017/med-tracker/internal/models"
)

// validate checks request bodies against their schema tags.
var validate = validator.New()

// UserResponse represents a user in API responses
// swagger:model UserResponse
type UserResponse struct {
	// User ID
	ID uuid.UUID `json:"id"`

	// Username
	// example: john_doe
	Username string `json:"username"`

	// Admin flag
	IsAdmin bool `json:"is_admin"`

	// Active flag, false once banned
	IsActive bool `json:"is_active"`

	// Creation timestamp
	CreatedAt time.Time `json:"created_at"`
}

func newUserResponse(user *models.UserDB) UserResponse {
	return UserResponse{
		ID:        user.UserID,
		Username:  user.Username,
		IsAdmin:   user.IsAdmin,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
	}
}

func newUserResponses(users []models.UserDB) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, newUserResponse(&users[i]))
	}
	return out
}

// RecordResponse represents a medication record in API responses
// swagger:model RecordResponse
type RecordResponse struct {
	// Record ID
	ID uuid.UUID `json:"id"`

	// Owning user ID
	UserID uuid.UUID `json:"user_id"`

	// Calendar date of the doses
	// example: 2026-09-01
	Date string `json:"date"`

	// Morning dose taken
	MorningTaken bool `json:"morning_taken"`

	// Afternoon dose taken
	AfternoonTaken bool `json:"afternoon_taken"`

	// Evening dose taken
	EveningTaken bool `json:"evening_taken"`

	// Optional free-text notes
	Notes *string `json:"notes"`

	// Creation timestamp
	CreatedAt time.Time `json:"created_at"`

	// Last update timestamp
	UpdatedAt time.Time `json:"updated_at"`
}

func newRecordResponse(record *models.MedicationRecordDB) RecordResponse {
	return RecordResponse{
		ID:             record.RecordID,
		UserID:         record.UserID,
		Date:           record.Date.Format(models.DateLayout),
		MorningTaken:   record.MorningTaken,
		AfternoonTaken: record.AfternoonTaken,
		EveningTaken:   record.EveningTaken,
		Notes:          record.Notes,
		CreatedAt:      record.CreatedAt,
		UpdatedAt:      record.UpdatedAt,
	}
}

func newRecordResponses(records []models.MedicationRecordDB) []RecordResponse {
	out := make([]RecordResponse, 0, len(records))
	for i := range records {
		out = append(out, newRecordResponse(&records[i]))
	}
	return out
}

// ErrorResponse represents an error response body
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	Error string `json:"error"`
}
