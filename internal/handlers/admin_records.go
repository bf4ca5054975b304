package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/med-tracker/internal/logger"
	"github.com/sbilibin2017/med-tracker/internal/models"
)

// AllRecordLister defines the interface that the unscoped record listing
// service must implement.
type AllRecordLister interface {
	ListAll(ctx context.Context) ([]models.MedicationRecordDB, error)
}

// NewListAllRecordsHandler returns an HTTP handler listing every record
// across all users.
// @Summary List all medication records
// @Description Returns every medication record, unscoped. Admin only.
// @Tags admin
// @Produce json
// @Success 200 {array} handlers.RecordResponse "All records"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Admin access required"
// @Router /admin/medication-records [get]
// @Security BearerAuth
func NewListAllRecordsHandler(svc AllRecordLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := svc.ListAll(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list all records", "err", err)
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
