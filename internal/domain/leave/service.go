package leave

import "context"

type LeaveService interface {
	// Request
	ListLeaveRequests(ctx context.Context, filter LeaveRequestFilter) ([]LeaveRequestResponse, error)
	GetLeaveRequest(ctx context.Context, id string) (LeaveRequestResponse, error)
	CreateLeaveRequest(ctx context.Context, req CreateLeaveRequestRequest) (LeaveRequestResponse, error)
	UpdateLeaveRequest(ctx context.Context, id string, req UpdateLeaveRequestRequest) (LeaveRequestResponse, error)
	// Balance
	ListLeaveBalances(ctx context.Context, filter LeaveBalanceFilter) ([]LeaveBalanceResponse, error)
	UpsertLeaveBalance(ctx context.Context, req UpsertLeaveBalanceRequest) (LeaveBalanceResponse, error)
	// UpdateLeaveBalance applies an absolute balance, then a delta, when present.
	UpdateLeaveBalance(ctx context.Context, req UpdateLeaveBalanceRequest) (LeaveBalanceResponse, error)
}
