package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/med-tracker/internal/middlewares"
)

// NewMeHandler returns an HTTP handler that echoes the acting user.
// @Summary Get the acting user
// @Description Returns the user resolved from the presented bearer token.
// @Tags users
// @Produce json
// @Success 200 {object} handlers.UserResponse "Acting user"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /users/me [get]
// @Security BearerAuth
func NewMeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Not authenticated",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(newUserResponse(user))
	}
}
