package memory

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"time"

	"github.com/hris-core/hris-backend-go/internal/domain/employee"
	"github.com/hris-core/hris-backend-go/internal/domain/leave"
	"github.com/hris-core/hris-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type leaveRequestRepo struct{ s *Store }

func (r leaveRequestRepo) sorted(keep func(leave.LeaveRequest) bool) []leave.LeaveRequest {
	list := make([]leave.LeaveRequest, 0)
	for _, l := range r.s.data.leaveRequests {
		if keep(l) {
			list = append(list, l)
		}
	}
	slices.SortFunc(list, func(a, b leave.LeaveRequest) int {
		return cmp.Or(b.StartDate.Compare(a.StartDate), r.s.order(a.ID, b.ID))
	})
	return list
}

func (r leaveRequestRepo) List(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.sorted(func(l leave.LeaveRequest) bool {
		return filter.EmployeeID == "" || l.EmployeeID == filter.EmployeeID
	}), nil
}

func (r leaveRequestRepo) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	l, ok := r.s.data.leaveRequests[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return l, nil
}

func (r leaveRequestRepo) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if !r.s.employeeExists(req.EmployeeID) {
		return leave.LeaveRequest{}, employee.ErrEmployeeReference
	}

	req.ID = r.s.newID()
	r.s.data.leaveRequests[req.ID] = req
	return req, nil
}

func (r leaveRequestRepo) Update(ctx context.Context, id string, req leave.UpdateLeaveRequestRequest) (leave.LeaveRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	l, ok := r.s.data.leaveRequests[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}

	if req.Type != nil {
		l.Type = strings.TrimSpace(*req.Type)
	}
	if req.StartDate != nil {
		l.StartDate, _ = validator.IsValidDate(*req.StartDate)
	}
	if req.EndDate != nil {
		l.EndDate, _ = validator.IsValidDate(*req.EndDate)
	}
	if req.Reason != nil {
		l.Reason = *req.Reason
	}
	if req.Status != nil {
		l.Status = *req.Status
	}

	r.s.data.leaveRequests[id] = l
	return l, nil
}

func (r leaveRequestRepo) ListApprovedOverlapping(ctx context.Context, employeeID string, from, to time.Time) ([]leave.LeaveRequest, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.sorted(func(l leave.LeaveRequest) bool {
		return l.EmployeeID == employeeID &&
			l.Status == leave.StatusApproved &&
			!l.StartDate.After(to) &&
			!l.EndDate.Before(from)
	}), nil
}

type leaveBalanceRepo struct{ s *Store }

func (r leaveBalanceRepo) List(ctx context.Context, filter leave.LeaveBalanceFilter) ([]leave.LeaveBalance, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	list := make([]leave.LeaveBalance, 0)
	for _, b := range r.s.data.leaveBalances {
		if b.EmployeeID != filter.EmployeeID {
			continue
		}
		if filter.Year != nil && b.Year != *filter.Year {
			continue
		}
		if filter.LeaveType != "" && b.LeaveType != filter.LeaveType {
			continue
		}
		list = append(list, b)
	}
	slices.SortFunc(list, func(a, b leave.LeaveBalance) int {
		return cmp.Or(cmp.Compare(b.Year, a.Year), strings.Compare(a.LeaveType, b.LeaveType))
	})
	return list, nil
}

func (r leaveBalanceRepo) Upsert(ctx context.Context, balance leave.LeaveBalance) (leave.LeaveBalance, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if !r.s.employeeExists(balance.EmployeeID) {
		return leave.LeaveBalance{}, employee.ErrEmployeeReference
	}

	r.s.data.leaveBalances[balance.Key()] = balance
	return balance, nil
}

func (r leaveBalanceRepo) Set(ctx context.Context, key leave.BalanceKey, balance decimal.Decimal) (leave.LeaveBalance, error) {
	return r.update(key, func(decimal.Decimal) decimal.Decimal { return balance })
}

func (r leaveBalanceRepo) Add(ctx context.Context, key leave.BalanceKey, delta decimal.Decimal) (leave.LeaveBalance, error) {
	return r.update(key, func(current decimal.Decimal) decimal.Decimal { return current.Add(delta) })
}

func (r leaveBalanceRepo) update(key leave.BalanceKey, apply func(decimal.Decimal) decimal.Decimal) (leave.LeaveBalance, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	b, ok := r.s.data.leaveBalances[key]
	if !ok {
		return leave.LeaveBalance{}, leave.ErrLeaveBalanceNotFound
	}
	b.Balance = apply(b.Balance)
	r.s.data.leaveBalances[key] = b
	return b, nil
}
