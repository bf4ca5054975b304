package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/med-tracker/internal/models"
	"github.com/stretchr/testify/assert"
)

func recordColumns() []string {
	return []string{
		"id", "user_id", "date",
		"morning_taken", "afternoon_taken", "evening_taken",
		"notes", "created_at", "updated_at",
	}
}

func TestRecordReadRepository_ListByUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRecordReadRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("returns owned records", func(t *testing.T) {
		mock.ExpectQuery("FROM medication_records").
			WithArgs(userID).
			WillReturnRows(sqlmock.NewRows(recordColumns()).
				AddRow(uuid.New(), userID, date, true, false, true, nil, now, now).
				AddRow(uuid.New(), userID, date.AddDate(0, 0, -1), false, false, false, "forgot", now, now))

		records, err := repo.ListByUser(ctx, userID)
		assert.NoError(t, err)
		assert.Len(t, records, 2)
		assert.Equal(t, userID, records[0].UserID)
		assert.True(t, records[0].MorningTaken)
		assert.Nil(t, records[0].Notes)
		assert.NotNil(t, records[1].Notes)
		assert.Equal(t, "forgot", *records[1].Notes)
	})

	t.Run("empty result", func(t *testing.T) {
		mock.ExpectQuery("FROM medication_records").
			WithArgs(userID).
			WillReturnRows(sqlmock.NewRows(recordColumns()))

		records, err := repo.ListByUser(ctx, userID)
		assert.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("query error", func(t *testing.T) {
		mock.ExpectQuery("FROM medication_records").
			WithArgs(userID).
			WillReturnError(errors.New("db down"))

		records, err := repo.ListByUser(ctx, userID)
		assert.Error(t, err)
		assert.Nil(t, records)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordReadRepository_ListBetween(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRecordReadRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	from := time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery("FROM medication_records").
		WithArgs(userID, from, to).
		WillReturnRows(sqlmock.NewRows(recordColumns()).
			AddRow(uuid.New(), userID, to, true, true, true, nil, now, now))

	records, err := repo.ListBetween(ctx, userID, from, to)
	assert.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, to, records[0].Date)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordReadRepository_ListAll(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRecordReadRepository(db)
	ctx := context.Background()

	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery("FROM medication_records").
		WillReturnRows(sqlmock.NewRows(recordColumns()).
			AddRow(uuid.New(), uuid.New(), date, true, false, false, nil, now, now).
			AddRow(uuid.New(), uuid.New(), date, false, true, false, nil, now, now))

	records, err := repo.ListAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, records, 2)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordWriteRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRecordWriteRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	recordID := uuid.New()
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	notes := "after breakfast"

	in := models.RecordInput{
		Date:         date,
		MorningTaken: true,
		Notes:        &notes,
	}

	mock.ExpectQuery("INSERT INTO medication_records").
		WithArgs(userID, date, true, false, false, notes).
		WillReturnRows(sqlmock.NewRows(recordColumns()).
			AddRow(recordID, userID, date, true, false, false, notes, now, now))

	record, err := repo.Save(ctx, userID, in)
	assert.NoError(t, err)
	assert.NotNil(t, record)
	assert.Equal(t, recordID, record.RecordID)
	assert.Equal(t, userID, record.UserID)
	assert.True(t, record.MorningTaken)
	assert.Equal(t, &notes, record.Notes)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordWriteRepository_Update(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRecordWriteRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	recordID := uuid.New()
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	in := models.RecordInput{
		Date:         date,
		EveningTaken: true,
	}

	t.Run("updates owned record", func(t *testing.T) {
		mock.ExpectQuery("UPDATE medication_records").
			WithArgs(recordID, userID, false, false, true, nil).
			WillReturnRows(sqlmock.NewRows(recordColumns()).
				AddRow(recordID, userID, date, false, false, true, nil, now, now))

		record, err := repo.Update(ctx, recordID, userID, in)
		assert.NoError(t, err)
		assert.NotNil(t, record)
		assert.True(t, record.EveningTaken)
	})

	t.Run("not owned returns nil without error", func(t *testing.T) {
		mock.ExpectQuery("UPDATE medication_records").
			WithArgs(recordID, userID, false, false, true, nil).
			WillReturnRows(sqlmock.NewRows(recordColumns()))

		record, err := repo.Update(ctx, recordID, userID, in)
		assert.NoError(t, err)
		assert.Nil(t, record)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
