package attendance

import "context"

type AttendanceService interface {
	ListClockRecords(ctx context.Context, filter ClockRecordFilter) ([]ClockRecordResponse, error)
	GetClockRecord(ctx context.Context, id string) (ClockRecordResponse, error)
	ClockIn(ctx context.Context, req ClockInRequest) (ClockRecordResponse, error)
	// ClockOut closes the latest open record for the employee and date. When
	// there is none it returns ErrOpenRecordNotFound and changes nothing.
	ClockOut(ctx context.Context, req ClockOutRequest) (ClockRecordResponse, error)
	// Upload validates every record before inserting any, then stores them in
	// one transaction.
	Upload(ctx context.Context, req UploadRequest) (UploadResponse, error)
	UpdateClockRecord(ctx context.Context, id string, req UpdateClockRecordRequest) (ClockRecordResponse, error)
	DeleteClockRecord(ctx context.Context, id string) error
}
