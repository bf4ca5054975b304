package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/med-tracker/internal/logger"
	"github.com/sbilibin2017/med-tracker/internal/models"
	"github.com/sbilibin2017/med-tracker/internal/services"
)

// UserUpdater defines the interface that the user update service must implement.
type UserUpdater interface {
	Update(ctx context.Context, userID uuid.UUID, isAdmin, isActive *bool) (*models.UserDB, error)
}

// UserUpdateRequest represents the JSON body for an admin user update.
// Only the provided fields change.
// swagger:model UserUpdateRequest
type UserUpdateRequest struct {
	// Grant or revoke the admin role
	IsAdmin *bool `json:"is_admin"`

	// Activate or ban the user
	IsActive *bool `json:"is_active"`
}

// NewUpdateUserHandler returns an HTTP handler for admin user management.
// @Summary Update a user's flags
// @Description Partially updates a user's admin and active flags. Admin only.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param userUpdateRequest body handlers.UserUpdateRequest true "Fields to change"
// @Success 200 {object} handlers.UserResponse "Updated user"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Admin access required"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 422 {object} handlers.ErrorResponse "Malformed body or id"
// @Router /admin/users/{id} [put]
// @Security BearerAuth
func NewUpdateUserHandler(svc UserUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "invalid user id",
			})
			return
		}

		var req UserUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		user, err := svc.Update(r.Context(), userID, req.IsAdmin, req.IsActive)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{
					Error: "User not found",
				})
			default:
				logger.Log.Errorw("failed to update user", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(newUserResponse(user))
	}
}
