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

// RecentRecordLister defines the interface that the recent-records service must implement.
type RecentRecordLister interface {
	ListRecent(ctx context.Context, userID uuid.UUID) ([]models.MedicationRecordDB, error)
}

// NewListRecentRecordsHandler returns an HTTP handler listing the acting
// user's records for the last three days.
// @Summary List recent medication records
// @Description Returns the acting user's records for today and the two preceding days, newest first.
// @Tags records
// @Produce json
// @Success 200 {array} handlers.RecordResponse "Recent records"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /medication-records/recent [get]
// @Security BearerAuth
func NewListRecentRecordsHandler(svc RecentRecordLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Not authenticated",
			})
			return
		}

		records, err := svc.ListRecent(r.Context(), user.UserID)
		if err != nil {
			logger.Log.Errorw("failed to list recent records", "err", err)
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
