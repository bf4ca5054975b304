package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/med-tracker/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestRecordService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := NewMockRecordReader(ctrl)
	mockWriter := NewMockRecordWriter(ctrl)

	svc := NewRecordService(mockReader, mockWriter, nil)

	userID := uuid.New()
	in := models.RecordInput{
		Date:         time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		MorningTaken: true,
	}
	saved := &models.MedicationRecordDB{RecordID: uuid.New(), UserID: userID, Date: in.Date, MorningTaken: true}

	tests := []struct {
		name      string
		writerErr error
		want      *models.MedicationRecordDB
		wantErr   error
	}{
		{
			name: "success",
			want: saved,
		},
		{
			name:      "writer error",
			writerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWriter.EXPECT().
				Save(gomock.Any(), userID, in).
				Return(tt.want, tt.writerErr)

			got, err := svc.Create(context.Background(), userID, in)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestRecordService_ListRecent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := NewMockRecordReader(ctrl)
	mockWriter := NewMockRecordWriter(ctrl)

	svc := NewRecordService(mockReader, mockWriter, nil)
	svc.now = func() time.Time {
		return time.Date(2025, 3, 10, 15, 30, 45, 0, time.UTC)
	}

	userID := uuid.New()
	wantFrom := time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC)
	wantTo := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	records := []models.MedicationRecordDB{
		{RecordID: uuid.New(), UserID: userID, Date: wantTo},
		{RecordID: uuid.New(), UserID: userID, Date: wantFrom},
	}

	mockReader.EXPECT().
		ListBetween(gomock.Any(), userID, wantFrom, wantTo).
		Return(records, nil)

	got, err := svc.ListRecent(context.Background(), userID)
	assert.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestRecordService_ListRecentCrossesMonthBoundary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := NewMockRecordReader(ctrl)
	mockWriter := NewMockRecordWriter(ctrl)

	svc := NewRecordService(mockReader, mockWriter, nil)
	svc.now = func() time.Time {
		return time.Date(2025, 3, 1, 0, 0, 1, 0, time.UTC)
	}

	userID := uuid.New()
	wantFrom := time.Date(2025, 2, 27, 0, 0, 0, 0, time.UTC)
	wantTo := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	mockReader.EXPECT().
		ListBetween(gomock.Any(), userID, wantFrom, wantTo).
		Return(nil, nil)

	got, err := svc.ListRecent(context.Background(), userID)
	assert.NoError(t, err)
	assert.Empty(t, got)
}

func TestRecordService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	recordID := uuid.New()
	in := models.RecordInput{
		Date:           time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		AfternoonTaken: true,
	}
	updated := &models.MedicationRecordDB{RecordID: recordID, UserID: userID, Date: in.Date, AfternoonTaken: true}

	tests := []struct {
		name      string
		updated   *models.MedicationRecordDB
		writerErr error
		wantErr   error
	}{
		{
			name:    "success",
			updated: updated,
		},
		{
			name:    "record not found or not owned",
			updated: nil,
			wantErr: ErrRecordNotFound,
		},
		{
			name:      "writer error",
			writerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := NewMockRecordReader(ctrl)
			mockWriter := NewMockRecordWriter(ctrl)

			svc := NewRecordService(mockReader, mockWriter, nil)

			mockWriter.EXPECT().
				Update(gomock.Any(), recordID, userID, in).
				Return(tt.updated, tt.writerErr)

			got, err := svc.Update(context.Background(), recordID, userID, in)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.updated, got)
			}
		})
	}
}

func TestRecordService_ListByUserAndListAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := NewMockRecordReader(ctrl)
	mockWriter := NewMockRecordWriter(ctrl)

	svc := NewRecordService(mockReader, mockWriter, nil)

	userID := uuid.New()
	mine := []models.MedicationRecordDB{{RecordID: uuid.New(), UserID: userID}}
	all := []models.MedicationRecordDB{{RecordID: uuid.New()}, {RecordID: uuid.New()}}

	mockReader.EXPECT().ListByUser(gomock.Any(), userID).Return(mine, nil)
	mockReader.EXPECT().ListAll(gomock.Any()).Return(all, nil)

	gotMine, err := svc.ListByUser(context.Background(), userID)
	assert.NoError(t, err)
	assert.Equal(t, mine, gotMine)

	gotAll, err := svc.ListAll(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, all, gotAll)

	mockReader.EXPECT().ListAll(gomock.Any()).Return(nil, errors.New("db error"))
	_, err = svc.ListAll(context.Background())
	assert.EqualError(t, err, "db error")
}
