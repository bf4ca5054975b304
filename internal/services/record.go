package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/med-tracker/internal/logger"
	"github.com/sbilibin2017/med-tracker/internal/models"
)

// ErrRecordNotFound is returned when an update targets a record the acting
// user does not own or that does not exist.
var ErrRecordNotFound = errors.New("record not found")

// recentWindowDays is the size of the recent-records window, today inclusive.
const recentWindowDays = 3

// RecordReader defines read operations for medication records.
type RecordReader interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.MedicationRecordDB, error)
	ListBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]models.MedicationRecordDB, error)
	ListAll(ctx context.Context) ([]models.MedicationRecordDB, error)
}

// RecordWriter defines write operations for medication records.
type RecordWriter interface {
	Save(ctx context.Context, userID uuid.UUID, in models.RecordInput) (*models.MedicationRecordDB, error)
	Update(ctx context.Context, recordID, userID uuid.UUID, in models.RecordInput) (*models.MedicationRecordDB, error)
}

// RecordService handles medication-record operations.
type RecordService struct {
	reader      RecordReader
	writer      RecordWriter
	kafkaWriter KafkaWriter
	now         func() time.Time
}

// NewRecordService creates a new RecordService instance.
func NewRecordService(reader RecordReader, writer RecordWriter, kafkaWriter KafkaWriter) *RecordService {
	return &RecordService{
		reader:      reader,
		writer:      writer,
		kafkaWriter: kafkaWriter,
		now:         time.Now,
	}
}

// Create logs a dose-taking record for the given user. Nothing prevents two
// records on the same date; each submission inserts a new row.
func (svc *RecordService) Create(ctx context.Context, userID uuid.UUID, in models.RecordInput) (*models.MedicationRecordDB, error) {
	record, err := svc.writer.Save(ctx, userID, in)
	if err != nil {
		logger.Log.Errorw("failed to save record", "user_id", userID, "err", err)
		return nil, err
	}

	publishAuditEvent(ctx, svc.kafkaWriter, userID, "record_created")

	return record, nil
}

// ListByUser returns all records owned by the given user.
func (svc *RecordService) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.MedicationRecordDB, error) {
	records, err := svc.reader.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list records", "user_id", userID, "err", err)
		return nil, err
	}
	return records, nil
}

// ListRecent returns the user's records for today and the two preceding
// days, newest date first.
func (svc *RecordService) ListRecent(ctx context.Context, userID uuid.UUID) ([]models.MedicationRecordDB, error) {
	now := svc.now()
	to := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	from := to.AddDate(0, 0, -(recentWindowDays - 1))

	records, err := svc.reader.ListBetween(ctx, userID, from, to)
	if err != nil {
		logger.Log.Errorw("failed to list recent records", "user_id", userID, "err", err)
		return nil, err
	}
	return records, nil
}

// Update overwrites the taken flags and notes of a record owned by the
// given user.
func (svc *RecordService) Update(ctx context.Context, recordID, userID uuid.UUID, in models.RecordInput) (*models.MedicationRecordDB, error) {
	record, err := svc.writer.Update(ctx, recordID, userID, in)
	if err != nil {
		logger.Log.Errorw("failed to update record", "record_id", recordID, "user_id", userID, "err", err)
		return nil, err
	}
	if record == nil {
		return nil, ErrRecordNotFound
	}

	publishAuditEvent(ctx, svc.kafkaWriter, userID, "record_updated")

	return record, nil
}

// ListAll returns every record across all users.
func (svc *RecordService) ListAll(ctx context.Context) ([]models.MedicationRecordDB, error) {
	records, err := svc.reader.ListAll(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list all records", "err", err)
		return nil, err
	}
	return records, nil
}
