package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/med-tracker/internal/logger"
	"github.com/sbilibin2017/med-tracker/internal/models"
)

type RecordReadRepository struct {
	db *sqlx.DB
}

func NewRecordReadRepository(db *sqlx.DB) *RecordReadRepository {
	return &RecordReadRepository{db: db}
}

// ListByUser returns all records owned by the given user, newest date first.
func (r *RecordReadRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.MedicationRecordDB, error) {
	const query = `
		SELECT id, user_id, date, morning_taken, afternoon_taken, evening_taken,
		       notes, created_at, updated_at
		FROM medication_records
		WHERE user_id = $1
		ORDER BY date DESC, created_at DESC
	`

	var records []models.MedicationRecordDB
	err := sqlx.SelectContext(ctx, ext(ctx, r.db), &records, query, userID)

	logger.Log.Infow("query executed",
		"query", collapse(query),
		"args", []any{userID},
		"rows", len(records),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return records, nil
}

// ListBetween returns the user's records dated in [from, to] inclusive,
// newest date first.
func (r *RecordReadRepository) ListBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]models.MedicationRecordDB, error) {
	const query = `
		SELECT id, user_id, date, morning_taken, afternoon_taken, evening_taken,
		       notes, created_at, updated_at
		FROM medication_records
		WHERE user_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date DESC, created_at DESC
	`

	var records []models.MedicationRecordDB
	err := sqlx.SelectContext(ctx, ext(ctx, r.db), &records, query, userID, from, to)

	logger.Log.Infow("query executed",
		"query", collapse(query),
		"args", []any{userID, from, to},
		"rows", len(records),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return records, nil
}

// ListAll returns every record in the store, unscoped.
func (r *RecordReadRepository) ListAll(ctx context.Context) ([]models.MedicationRecordDB, error) {
	const query = `
		SELECT id, user_id, date, morning_taken, afternoon_taken, evening_taken,
		       notes, created_at, updated_at
		FROM medication_records
		ORDER BY date DESC, created_at DESC
	`

	var records []models.MedicationRecordDB
	err := sqlx.SelectContext(ctx, ext(ctx, r.db), &records, query)

	logger.Log.Infow("query executed",
		"query", collapse(query),
		"rows", len(records),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return records, nil
}

type RecordWriteRepository struct {
	db *sqlx.DB
}

func NewRecordWriteRepository(db *sqlx.DB) *RecordWriteRepository {
	return &RecordWriteRepository{db: db}
}

// Save inserts a new medication record and returns the stored row.
func (r *RecordWriteRepository) Save(ctx context.Context, userID uuid.UUID, in models.RecordInput) (*models.MedicationRecordDB, error) {
	const query = `
		INSERT INTO medication_records
			(user_id, date, morning_taken, afternoon_taken, evening_taken, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, user_id, date, morning_taken, afternoon_taken, evening_taken,
		          notes, created_at, updated_at
	`

	var record models.MedicationRecordDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &record, query,
		userID, in.Date, in.MorningTaken, in.AfternoonTaken, in.EveningTaken, in.Notes)

	logger.Log.Infow("query executed",
		"query", collapse(query),
		"args", []any{userID, in.Date},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &record, nil
}

// Update overwrites the taken flags and notes of a record owned by the given
// user and refreshes updated_at. Returns nil if the user owns no such record.
func (r *RecordWriteRepository) Update(ctx context.Context, recordID, userID uuid.UUID, in models.RecordInput) (*models.MedicationRecordDB, error) {
	const query = `
		UPDATE medication_records
		SET morning_taken = $3,
		    afternoon_taken = $4,
		    evening_taken = $5,
		    notes = $6,
		    updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, date, morning_taken, afternoon_taken, evening_taken,
		          notes, created_at, updated_at
	`

	var record models.MedicationRecordDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &record, query,
		recordID, userID, in.MorningTaken, in.AfternoonTaken, in.EveningTaken, in.Notes)

	logger.Log.Infow("query executed",
		"query", collapse(query),
		"args", []any{recordID, userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &record, nil
}
