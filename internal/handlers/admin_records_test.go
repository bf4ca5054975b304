package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/med-tracker/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestListAllRecordsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	records := []models.MedicationRecordDB{
		{RecordID: uuid.New(), UserID: uuid.New(), Date: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)},
		{RecordID: uuid.New(), UserID: uuid.New(), Date: time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)},
		{RecordID: uuid.New(), UserID: uuid.New(), Date: time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC)},
	}

	tests := []struct {
		name         string
		mockSetup    func(m *MockAllRecordLister)
		expectedCode int
		expectedLen  int
	}{
		{
			name: "success",
			mockSetup: func(m *MockAllRecordLister) {
				m.EXPECT().ListAll(gomock.Any()).Return(records, nil)
			},
			expectedCode: 200,
			expectedLen:  3,
		},
		{
			name: "empty list",
			mockSetup: func(m *MockAllRecordLister) {
				m.EXPECT().ListAll(gomock.Any()).Return(nil, nil)
			},
			expectedCode: 200,
			expectedLen:  0,
		},
		{
			name: "internal server error",
			mockSetup: func(m *MockAllRecordLister) {
				m.EXPECT().ListAll(gomock.Any()).Return(nil, errors.New("database failure"))
			},
			expectedCode: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockAllRecordLister(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewListAllRecordsHandler(mockSvc)

			req := httptest.NewRequest(http.MethodGet, "/admin/medication-records", nil)
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode != 200 {
				return
			}

			var resp []RecordResponse
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Len(t, resp, tt.expectedLen)
		})
	}
}
