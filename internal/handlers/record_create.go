package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/med-tracker/internal/logger"
	"github.com/sbilibin2017/med-tracker/internal/middlewares"
	"github.com/sbilibin2017/med-tracker/internal/models"
)

// RecordCreator defines the interface that the record creation service must implement.
type RecordCreator interface {
	Create(ctx context.Context, userID uuid.UUID, in models.RecordInput) (*models.MedicationRecordDB, error)
}

// RecordRequest represents the JSON body for creating or updating a
// medication record
// swagger:model RecordRequest
type RecordRequest struct {
	// Calendar date of the doses
	// required: true
	// example: 2026-09-01
	Date string `json:"date" validate:"required,datetime=2006-01-02"`

	// Morning dose taken
	MorningTaken bool `json:"morning_taken"`

	// Afternoon dose taken
	AfternoonTaken bool `json:"afternoon_taken"`

	// Evening dose taken
	EveningTaken bool `json:"evening_taken"`

	// Optional free-text notes
	Notes *string `json:"notes"`
}

// toInput converts the request body into a service-layer record input.
// The date has already been validated against the wire layout.
func (req RecordRequest) toInput() models.RecordInput {
	date, _ := time.Parse(models.DateLayout, req.Date)
	return models.RecordInput{
		Date:           date,
		MorningTaken:   req.MorningTaken,
		AfternoonTaken: req.AfternoonTaken,
		EveningTaken:   req.EveningTaken,
		Notes:          req.Notes,
	}
}

// decodeRecordRequest parses and validates a record body, writing the 422
// response itself on failure.
func decodeRecordRequest(w http.ResponseWriter, r *http.Request) (RecordRequest, bool) {
	var req RecordRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(ErrorResponse{
			Error: "invalid request body",
		})
		return req, false
	}

	if err := validate.Struct(req); err != nil {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(ErrorResponse{
			Error: "date is required in YYYY-MM-DD format",
		})
		return req, false
	}

	return req, true
}

// NewCreateRecordHandler returns an HTTP handler that logs a dose-taking
// record for the acting user.
// @Summary Create a medication record
// @Description Logs whether the morning/afternoon/evening doses were taken on a date. Multiple records for the same date are allowed.
// @Tags records
// @Accept json
// @Produce json
// @Param recordRequest body handlers.RecordRequest true "Medication record"
// @Success 201 {object} handlers.RecordResponse "Created record"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 422 {object} handlers.ErrorResponse "Malformed or incomplete body"
// @Router /medication-records [post]
// @Security BearerAuth
func NewCreateRecordHandler(svc RecordCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Not authenticated",
			})
			return
		}

		req, ok := decodeRecordRequest(w, r)
		if !ok {
			return
		}

		record, err := svc.Create(r.Context(), user.UserID, req.toInput())
		if err != nil {
			logger.Log.Errorw("failed to create record", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(newRecordResponse(record))
	}
}
