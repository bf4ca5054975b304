package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/med-tracker/internal/logger"
	"github.com/sbilibin2017/med-tracker/internal/middlewares"
	"github.com/sbilibin2017/med-tracker/internal/models"
)

// RecordLister defines the interface that the record listing service must implement.
type RecordLister interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.MedicationRecordDB, error)
}

// NewListRecordsHandler returns an HTTP handler listing the acting user's records.
// @Summary List own medication records
// @Description Returns all medication records owned by the acting user.
// @Tags records
// @Produce json
// @Success 200 {array} handlers.RecordResponse "Own records"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /medication-records [get]
// @Security BearerAuth
func NewListRecordsHandler(svc RecordLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Not authenticated",
			})
			return
		}

		records, err := svc.ListByUser(r.Context(), user.UserID)
		if err != nil {
			logger.Log.Errorw("failed to list records", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(newRecordResponses(records))
	}
}
