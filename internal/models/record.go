package models

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// MedicationRecordDB represents a per-user, per-date intake record in the database
type MedicationRecordDB struct {
	RecordID       uuid.UUID `json:"id" db:"id"`                           // Primary key
	UserID         uuid.UUID `json:"user_id" db:"user_id"`                 // Owning user
	Date           time.Time `json:"-" db:"date"`                          // Calendar date of the doses
	MorningTaken   bool      `json:"morning_taken" db:"morning_taken"`     // Morning dose taken
	AfternoonTaken bool      `json:"afternoon_taken" db:"afternoon_taken"` // Afternoon dose taken
	EveningTaken   bool      `json:"evening_taken" db:"evening_taken"`     // Evening dose taken
	Notes          *string   `json:"notes" db:"notes"`                     // Optional free text
	CreatedAt      time.Time `json:"created_at" db:"created_at"`           // Creation timestamp
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`           // Refreshed on every update
}

// RecordInput carries the caller-settable fields of a medication record.
type RecordInput struct {
	Date           time.Time
	MorningTaken   bool
	AfternoonTaken bool
	EveningTaken   bool
	Notes          *string
}
