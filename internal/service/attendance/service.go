package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hris-core/hris-backend-go/internal/domain/attendance"
	"github.com/hris-core/hris-backend-go/internal/pkg/database"
	"github.com/hris-core/hris-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	tx              database.Transactor
	clockRecordRepo attendance.ClockRecordRepository
	now             func() time.Time
}

type Option func(*AttendanceServiceImpl)

// WithClock replaces the time source used when a request omits its date or
// timestamp.
func WithClock(now func() time.Time) Option {
	return func(s *AttendanceServiceImpl) {
		s.now = now
	}
}

func NewAttendanceService(tx database.Transactor, clockRecordRepo attendance.ClockRecordRepository, opts ...Option) attendance.AttendanceService {
	s := &AttendanceServiceImpl{
		tx:              tx,
		clockRecordRepo: clockRecordRepo,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListClockRecords implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListClockRecords(ctx context.Context, filter attendance.ClockRecordFilter) ([]attendance.ClockRecordResponse, error) {
	if filter.EmployeeID != "" && !validator.IsValidUUID(filter.EmployeeID) {
		return []attendance.ClockRecordResponse{}, nil
	}

	records, err := a.clockRecordRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return toResponses(records), nil
}

// GetClockRecord implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetClockRecord(ctx context.Context, id string) (attendance.ClockRecordResponse, error) {
	if !validator.IsValidUUID(id) {
		return attendance.ClockRecordResponse{}, attendance.ErrClockRecordNotFound
	}

	record, err := a.clockRecordRepo.GetByID(ctx, id)
	if err != nil {
		return attendance.ClockRecordResponse{}, err
	}
	return attendance.NewClockRecordResponse(record), nil
}

// ClockIn implements attendance.AttendanceService. An employee may hold more
// than one open record for the same date.
func (a *AttendanceServiceImpl) ClockIn(ctx context.Context, req attendance.ClockInRequest) (attendance.ClockRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.ClockRecordResponse{}, err
	}

	nowUTC := a.now().UTC()
	clockIn := timestampOr(req.ClockIn, nowUTC)
	record, err := a.clockRecordRepo.Create(ctx, attendance.ClockRecord{
		EmployeeID: req.EmployeeID,
		Date:       dateOr(req.Date, nowUTC),
		ClockIn:    &clockIn,
	})
	if err != nil {
		return attendance.ClockRecordResponse{}, err
	}

	slog.Info("clock in recorded", "record_id", record.ID, "employee_id", record.EmployeeID)
	return attendance.NewClockRecordResponse(record), nil
}

// ClockOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockOut(ctx context.Context, req attendance.ClockOutRequest) (attendance.ClockRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.ClockRecordResponse{}, err
	}

	nowUTC := a.now().UTC()
	date := dateOr(req.Date, nowUTC)
	clockOut := timestampOr(req.ClockOut, nowUTC)

	var closed attendance.ClockRecord
	err := a.tx.WithinTx(ctx, func(ctx context.Context) error {
		open, err := a.clockRecordRepo.FindOpen(ctx, req.EmployeeID, date)
		if err != nil {
			return err
		}

		closed, err = a.clockRecordRepo.SetClockOut(ctx, open.ID, clockOut)
		return err
	})
	if err != nil {
		return attendance.ClockRecordResponse{}, err
	}

	slog.Info("clock out recorded", "record_id", closed.ID, "employee_id", closed.EmployeeID)
	return attendance.NewClockRecordResponse(closed), nil
}

// Upload implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Upload(ctx context.Context, req attendance.UploadRequest) (attendance.UploadResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.UploadResponse{}, err
	}

	created := make([]attendance.ClockRecord, 0, len(req.Records))
	err := a.tx.WithinTx(ctx, func(ctx context.Context) error {
		for i, row := range req.Records {
			record, err := a.clockRecordRepo.Create(ctx, row.ToClockRecord())
			if err != nil {
				return fmt.Errorf("failed to store record %d: %w", i, err)
			}
			created = append(created, record)
		}
		return nil
	})
	if err != nil {
		return attendance.UploadResponse{}, err
	}

	slog.Info("clock records uploaded", "count", len(created))
	return attendance.UploadResponse{
		Created: toResponses(created),
		Count:   len(created),
	}, nil
}

// UpdateClockRecord implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) UpdateClockRecord(ctx context.Context, id string, req attendance.UpdateClockRecordRequest) (attendance.ClockRecordResponse, error) {
	if !validator.IsValidUUID(id) {
		return attendance.ClockRecordResponse{}, attendance.ErrClockRecordNotFound
	}
	if err := req.Validate(); err != nil {
		return attendance.ClockRecordResponse{}, err
	}

	record, err := a.clockRecordRepo.Update(ctx, id, req)
	if err != nil {
		return attendance.ClockRecordResponse{}, err
	}
	return attendance.NewClockRecordResponse(record), nil
}

// DeleteClockRecord implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) DeleteClockRecord(ctx context.Context, id string) error {
	if !validator.IsValidUUID(id) {
		return attendance.ErrClockRecordNotFound
	}
	return a.clockRecordRepo.Delete(ctx, id)
}

// dateOr parses a YYYY-MM-DD value or falls back to the calendar date of now.
func dateOr(value *string, now time.Time) time.Time {
	if value != nil {
		if d, ok := validator.IsValidDate(*value); ok {
			return d
		}
	}
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func timestampOr(value *string, now time.Time) time.Time {
	if value != nil {
		if t, ok := validator.IsValidDateTime(*value); ok {
			return t
		}
	}
	return now
}

func toResponses(records []attendance.ClockRecord) []attendance.ClockRecordResponse {
	responses := make([]attendance.ClockRecordResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, attendance.NewClockRecordResponse(r))
	}
	return responses
}
