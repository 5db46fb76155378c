package leave

import (
	"context"
	"log/slog"

	"github.com/hris-core/hris-backend-go/internal/domain/leave"
	"github.com/hris-core/hris-backend-go/internal/pkg/database"
	"github.com/hris-core/hris-backend-go/internal/pkg/validator"
)

type LeaveServiceImpl struct {
	tx               database.Transactor
	leaveRequestRepo leave.LeaveRequestRepository
	leaveBalanceRepo leave.LeaveBalanceRepository
}

func NewLeaveService(
	tx database.Transactor,
	leaveRequestRepo leave.LeaveRequestRepository,
	leaveBalanceRepo leave.LeaveBalanceRepository,
) leave.LeaveService {
	return &LeaveServiceImpl{
		tx:               tx,
		leaveRequestRepo: leaveRequestRepo,
		leaveBalanceRepo: leaveBalanceRepo,
	}
}

// ListLeaveRequests implements leave.LeaveService.
func (s *LeaveServiceImpl) ListLeaveRequests(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequestResponse, error) {
	if filter.EmployeeID != "" && !validator.IsValidUUID(filter.EmployeeID) {
		return []leave.LeaveRequestResponse{}, nil
	}

	requests, err := s.leaveRequestRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, leave.NewLeaveRequestResponse(r))
	}
	return responses, nil
}

// GetLeaveRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) GetLeaveRequest(ctx context.Context, id string) (leave.LeaveRequestResponse, error) {
	if !validator.IsValidUUID(id) {
		return leave.LeaveRequestResponse{}, leave.ErrLeaveRequestNotFound
	}

	request, err := s.leaveRequestRepo.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	return leave.NewLeaveRequestResponse(request), nil
}

// CreateLeaveRequest implements leave.LeaveService. New requests start pending.
func (s *LeaveServiceImpl) CreateLeaveRequest(ctx context.Context, req leave.CreateLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	startDate, _ := validator.IsValidDate(req.StartDate)
	endDate, _ := validator.IsValidDate(req.EndDate)
	created, err := s.leaveRequestRepo.Create(ctx, leave.LeaveRequest{
		EmployeeID: req.EmployeeID,
		Type:       req.Type,
		StartDate:  startDate,
		EndDate:    endDate,
		Reason:     req.Reason,
		Status:     leave.StatusPending,
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	slog.Info("leave request created", "request_id", created.ID, "employee_id", created.EmployeeID)
	return leave.NewLeaveRequestResponse(created), nil
}

// UpdateLeaveRequest implements leave.LeaveService. The merged date range must
// stay ordered.
func (s *LeaveServiceImpl) UpdateLeaveRequest(ctx context.Context, id string, req leave.UpdateLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	if !validator.IsValidUUID(id) {
		return leave.LeaveRequestResponse{}, leave.ErrLeaveRequestNotFound
	}
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	var updated leave.LeaveRequest
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		current, err := s.leaveRequestRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		startDate, endDate := current.StartDate, current.EndDate
		if req.StartDate != nil {
			startDate, _ = validator.IsValidDate(*req.StartDate)
		}
		if req.EndDate != nil {
			endDate, _ = validator.IsValidDate(*req.EndDate)
		}
		if endDate.Before(startDate) {
			return validator.ValidationErrors{}.Add("endDate", "must not be before startDate")
		}

		updated, err = s.leaveRequestRepo.Update(ctx, id, req)
		return err
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	if req.Status != nil {
		slog.Info("leave request status changed", "request_id", id, "status", updated.Status)
	}
	return leave.NewLeaveRequestResponse(updated), nil
}

// ListLeaveBalances implements leave.LeaveService.
func (s *LeaveServiceImpl) ListLeaveBalances(ctx context.Context, filter leave.LeaveBalanceFilter) ([]leave.LeaveBalanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	if !validator.IsValidUUID(filter.EmployeeID) {
		return []leave.LeaveBalanceResponse{}, nil
	}

	balances, err := s.leaveBalanceRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]leave.LeaveBalanceResponse, 0, len(balances))
	for _, b := range balances {
		responses = append(responses, leave.NewLeaveBalanceResponse(b))
	}
	return responses, nil
}

// UpsertLeaveBalance implements leave.LeaveService.
func (s *LeaveServiceImpl) UpsertLeaveBalance(ctx context.Context, req leave.UpsertLeaveBalanceRequest) (leave.LeaveBalanceResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveBalanceResponse{}, err
	}

	balance, err := s.leaveBalanceRepo.Upsert(ctx, leave.LeaveBalance{
		EmployeeID: req.EmployeeID,
		LeaveType:  req.LeaveType,
		Year:       req.Year,
		Balance:    *req.Balance,
	})
	if err != nil {
		return leave.LeaveBalanceResponse{}, err
	}
	return leave.NewLeaveBalanceResponse(balance), nil
}

// UpdateLeaveBalance implements leave.LeaveService.
func (s *LeaveServiceImpl) UpdateLeaveBalance(ctx context.Context, req leave.UpdateLeaveBalanceRequest) (leave.LeaveBalanceResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveBalanceResponse{}, err
	}

	var balance leave.LeaveBalance
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		if req.Balance != nil {
			if balance, err = s.leaveBalanceRepo.Set(ctx, req.Key(), *req.Balance); err != nil {
				return err
			}
		}
		if req.Delta != nil {
			if balance, err = s.leaveBalanceRepo.Add(ctx, req.Key(), *req.Delta); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return leave.LeaveBalanceResponse{}, err
	}
	return leave.NewLeaveBalanceResponse(balance), nil
}
