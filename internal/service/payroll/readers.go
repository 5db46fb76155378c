package payroll

import (
	"context"
	"fmt"

	"github.com/hris-core/hris-backend-go/internal/domain/attendance"
	"github.com/hris-core/hris-backend-go/internal/domain/leave"
	"github.com/hris-core/hris-backend-go/internal/domain/payroll"
)

type attendanceReader struct {
	clockRecordRepo attendance.ClockRecordRepository
}

// NewAttendanceReader reads payroll intervals from stored clock records.
func NewAttendanceReader(clockRecordRepo attendance.ClockRecordRepository) payroll.AttendanceReader {
	return &attendanceReader{clockRecordRepo: clockRecordRepo}
}

func (r *attendanceReader) Intervals(ctx context.Context, employeeID string, period payroll.Period) ([]payroll.AttendanceInterval, error) {
	records, err := r.clockRecordRepo.ListClosed(ctx, employeeID, period.Start, period.End)
	if err != nil {
		return nil, fmt.Errorf("failed to list clock records: %w", err)
	}

	intervals := make([]payroll.AttendanceInterval, 0, len(records))
	for _, rec := range records {
		if !rec.IsClosed() || !period.Contains(rec.Date) {
			continue
		}
		intervals = append(intervals, payroll.AttendanceInterval{
			Date:     rec.Date,
			ClockIn:  *rec.ClockIn,
			ClockOut: *rec.ClockOut,
		})
	}
	return intervals, nil
}

type leaveReader struct {
	leaveRequestRepo leave.LeaveRequestRepository
}

// NewLeaveReader reads approved leave from stored leave requests.
func NewLeaveReader(leaveRequestRepo leave.LeaveRequestRepository) payroll.LeaveReader {
	return &leaveReader{leaveRequestRepo: leaveRequestRepo}
}

func (r *leaveReader) ApprovedLeave(ctx context.Context, employeeID string, period payroll.Period) ([]payroll.LeaveInterval, error) {
	requests, err := r.leaveRequestRepo.ListApprovedOverlapping(ctx, employeeID, period.Start, period.End)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved leave: %w", err)
	}

	intervals := make([]payroll.LeaveInterval, 0, len(requests))
	for _, req := range requests {
		intervals = append(intervals, payroll.LeaveInterval{
			StartDate: req.StartDate,
			EndDate:   req.EndDate,
		})
	}
	return intervals, nil
}
