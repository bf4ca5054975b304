package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/med-tracker/internal/middlewares"
	"github.com/sbilibin2017/med-tracker/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestMeHandler(t *testing.T) {
	user := &models.UserDB{
		UserID:    uuid.New(),
		Username:  "john",
		IsAdmin:   true,
		IsActive:  true,
		CreatedAt: time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name         string
		user         *models.UserDB
		expectedCode int
	}{
		{
			name:         "authenticated",
			user:         user,
			expectedCode: 200,
		},
		{
			name:         "no user in context",
			user:         nil,
			expectedCode: 401,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewMeHandler()

			req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
			if tt.user != nil {
				req = req.WithContext(middlewares.SetUserToContext(req.Context(), tt.user))
			}

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode != 200 {
				var resp ErrorResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, "Not authenticated", resp.Error)
				return
			}

			var resp UserResponse
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, user.UserID, resp.ID)
			assert.Equal(t, "john", resp.Username)
			assert.True(t, resp.IsAdmin)
		})
	}
}
