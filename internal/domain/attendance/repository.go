package attendance

import (
	"context"
	"time"
)

type ClockRecordRepository interface {
	// List returns records ordered by date, then clock-in, newest first.
	List(ctx context.Context, filter ClockRecordFilter) ([]ClockRecord, error)
	GetByID(ctx context.Context, id string) (ClockRecord, error)
	Create(ctx context.Context, record ClockRecord) (ClockRecord, error)
	// FindOpen returns the latest record without a clock-out for the employee
	// on date, or ErrOpenRecordNotFound.
	FindOpen(ctx context.Context, employeeID string, date time.Time) (ClockRecord, error)
	SetClockOut(ctx context.Context, id string, clockOut time.Time) (ClockRecord, error)
	Update(ctx context.Context, id string, req UpdateClockRecordRequest) (ClockRecord, error)
	Delete(ctx context.Context, id string) error
	// ListClosed returns records with both timestamps whose date lies within
	// [from, to], ascending by date.
	ListClosed(ctx context.Context, employeeID string, from, to time.Time) ([]ClockRecord, error)
}
