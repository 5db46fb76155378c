package schedule

import "context"

type ScheduleService interface {
	ListSchedules(ctx context.Context, filter ScheduleFilter) ([]ScheduleResponse, error)
	GetSchedule(ctx context.Context, id string) (ScheduleResponse, error)
	CreateSchedule(ctx context.Context, req CreateScheduleRequest) (ScheduleResponse, error)
	// UpdateSchedule replaces the shift's slots. The returned ID may differ
	// from id when the lowest day changes.
	UpdateSchedule(ctx context.Context, id string, req UpdateScheduleRequest) (ScheduleResponse, error)
	DeleteSchedule(ctx context.Context, id string) error
}
