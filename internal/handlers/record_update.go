package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/med-tracker/internal/logger"
	"github.com/sbilibin2017/med-tracker/internal/middlewares"
	"github.com/sbilibin2017/med-tracker/internal/models"
	"github.com/sbilibin2017/med-tracker/internal/services"
)

// RecordUpdater defines the interface that the record update service must implement.
type RecordUpdater interface {
	Update(ctx context.Context, recordID, userID uuid.UUID, in models.RecordInput) (*models.MedicationRecordDB, error)
}

// NewUpdateRecordHandler returns an HTTP handler that overwrites a record
// owned by the acting user.
// @Summary Update a medication record
// @Description Overwrites the taken flags and notes of an owned record. Records of other users appear as missing.
// @Tags records
// @Accept json
// @Produce json
// @Param id path string true "Record ID"
// @Param recordRequest body handlers.RecordRequest true "Medication record"
// @Success 200 {object} handlers.RecordResponse "Updated record"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Record not found"
// @Failure 422 {object} handlers.ErrorResponse "Malformed or incomplete body"
// @Router /medication-records/{id} [put]
// @Security BearerAuth
func NewUpdateRecordHandler(svc RecordUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Not authenticated",
			})
			return
		}

		recordID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "invalid record id",
			})
			return
		}

		req, ok := decodeRecordRequest(w, r)
		if !ok {
			return
		}

		record, err := svc.Update(r.Context(), recordID, user.UserID, req.toInput())
		if err != nil {
			switch {
			case errors.Is(err, services.ErrRecordNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{
					Error: "Record not found",
				})
			default:
				logger.Log.Errorw("failed to update record", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(newRecordResponse(record))
	}
}
