package payroll

import "context"

type PayrollRepository interface {
	Create(ctx context.Context, record PayrollRecord) (PayrollRecord, error)
	GetByID(ctx context.Context, id string) (PayrollRecord, error)
	// List returns records ordered by period end, newest first.
	List(ctx context.Context, filter PayrollFilter) ([]PayrollRecord, error)
}

// AttendanceReader yields the closed attendance intervals of an employee
// dated within a period, ascending by date.
type AttendanceReader interface {
	Intervals(ctx context.Context, employeeID string, period Period) ([]AttendanceInterval, error)
}

// LeaveReader yields the approved leave of an employee that overlaps a period.
type LeaveReader interface {
	ApprovedLeave(ctx context.Context, employeeID string, period Period) ([]LeaveInterval, error)
}
