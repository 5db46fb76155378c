package schedule

import "context"

type ScheduleRepository interface {
	// List returns slots ordered by employee, start time, end time and day.
	List(ctx context.Context, filter ScheduleFilter) ([]Slot, error)
	// ListGroup returns every slot sharing a shift with the slot identified by
	// id, or ErrScheduleNotFound.
	ListGroup(ctx context.Context, id string) ([]Slot, error)
	ListByShift(ctx context.Context, employeeID, startTime, endTime string) ([]Slot, error)
	// CreateSlots stores one slot per day. Days already stored for the shift
	// are skipped.
	CreateSlots(ctx context.Context, employeeID string, days Days, startTime, endTime string) error
	DeleteGroup(ctx context.Context, id string) error
}
