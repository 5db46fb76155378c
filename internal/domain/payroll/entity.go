package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Period is an inclusive date range.
type Period struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether date falls on or between the period bounds.
func (p Period) Contains(date time.Time) bool {
	return !date.Before(p.Start) && !date.After(p.End)
}

// AttendanceInterval is a closed clock-in/clock-out pair.
type AttendanceInterval struct {
	Date     time.Time
	ClockIn  time.Time
	ClockOut time.Time
}

// LeaveInterval is the date span of an approved leave request.
type LeaveInterval struct {
	StartDate time.Time
	EndDate   time.Time
}

// Summary is the outcome of calculating one employee's pay for a period.
type Summary struct {
	TotalHours  float64
	LeaveDays   int
	GrossSalary decimal.Decimal
	Deductions  decimal.Decimal
	NetSalary   decimal.Decimal
}

// PayrollRecord is created once per employee per processing run and never
// changed afterwards.
type PayrollRecord struct {
	ID          string
	EmployeeID  string
	PeriodStart time.Time
	PeriodEnd   time.Time
	TotalHours  float64
	LeaveDays   int
	GrossSalary decimal.Decimal
	Deductions  decimal.Decimal
	NetSalary   decimal.Decimal
	CreatedAt   time.Time
}

func NewPayrollRecord(employeeID string, period Period, s Summary) PayrollRecord {
	return PayrollRecord{
		EmployeeID:  employeeID,
		PeriodStart: period.Start,
		PeriodEnd:   period.End,
		TotalHours:  s.TotalHours,
		LeaveDays:   s.LeaveDays,
		GrossSalary: s.GrossSalary,
		Deductions:  s.Deductions,
		NetSalary:   s.NetSalary,
	}
}
