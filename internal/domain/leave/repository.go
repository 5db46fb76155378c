package leave

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type LeaveRequestRepository interface {
	// List returns requests ordered by start date, newest first.
	List(ctx context.Context, filter LeaveRequestFilter) ([]LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)
	Update(ctx context.Context, id string, req UpdateLeaveRequestRequest) (LeaveRequest, error)
	// ListApprovedOverlapping returns approved requests with
	// startDate <= to and endDate >= from.
	ListApprovedOverlapping(ctx context.Context, employeeID string, from, to time.Time) ([]LeaveRequest, error)
}

type LeaveBalanceRepository interface {
	// List returns balances ordered by year descending, then leave type.
	List(ctx context.Context, filter LeaveBalanceFilter) ([]LeaveBalance, error)
	Upsert(ctx context.Context, balance LeaveBalance) (LeaveBalance, error)
	// Set and Add return ErrLeaveBalanceNotFound when no row matches key.
	Set(ctx context.Context, key BalanceKey, balance decimal.Decimal) (LeaveBalance, error)
	Add(ctx context.Context, key BalanceKey, delta decimal.Decimal) (LeaveBalance, error)
}
