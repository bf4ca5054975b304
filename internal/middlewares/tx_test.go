package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

func TestTxMiddleware(t *testing.T) {
	tests := []struct {
		name         string
		handlerCode  int
		expectSetup  func(mock sqlmock.Sqlmock)
		expectedCode int
	}{
		{
			name:        "success commits",
			handlerCode: http.StatusCreated,
			expectSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectCommit()
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:        "error status rolls back",
			handlerCode: http.StatusUnprocessableEntity,
			expectSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectRollback()
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:        "server error rolls back",
			handlerCode: http.StatusInternalServerError,
			expectSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectRollback()
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			tt.expectSetup(mock)

			var sawTx bool
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				sawTx = GetTxFromContext(r.Context()) != nil
				w.WriteHeader(tt.handlerCode)
			})

			handler := TxMiddleware(db)(next)

			req := httptest.NewRequest(http.MethodPost, "/medication-records", nil)
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.True(t, sawTx)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTxMiddleware_BeginFailure(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin().WillReturnError(assert.AnError)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run when the transaction cannot start")
	})

	handler := TxMiddleware(db)(next)

	req := httptest.NewRequest(http.MethodPost, "/medication-records", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTxFromContext_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Nil(t, GetTxFromContext(req.Context()))
}
