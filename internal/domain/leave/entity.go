package leave

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

type LeaveRequest struct {
	ID         string
	EmployeeID string
	Type       string
	StartDate  time.Time
	EndDate    time.Time
	Reason     string
	Status     Status
}

// LeaveBalance is keyed by employee, leave type and year.
type LeaveBalance struct {
	EmployeeID string
	LeaveType  string
	Year       int
	Balance    decimal.Decimal
}

type BalanceKey struct {
	EmployeeID string
	LeaveType  string
	Year       int
}

func (b LeaveBalance) Key() BalanceKey {
	return BalanceKey{EmployeeID: b.EmployeeID, LeaveType: b.LeaveType, Year: b.Year}
}
