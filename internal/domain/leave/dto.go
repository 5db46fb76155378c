package leave

import (
	"strings"

	"github.com/hris-core/hris-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type LeaveRequestFilter struct {
	EmployeeID string
}

type CreateLeaveRequestRequest struct {
	EmployeeID string `json:"employeeId" validate:"required,uuid"`
	Type       string `json:"type" validate:"required"`
	StartDate  string `json:"startDate" validate:"required,date"`
	EndDate    string `json:"endDate" validate:"required,date"`
	Reason     string `json:"reason"`
}

func (r *CreateLeaveRequestRequest) Validate() error {
	r.Type = strings.TrimSpace(r.Type)
	if err := validator.Struct(r); err != nil {
		return err
	}

	// Canonical YYYY-MM-DD strings order the same way as the dates.
	if r.EndDate < r.StartDate {
		return validator.ValidationErrors{}.Add("endDate", "must not be before startDate")
	}
	return nil
}

type UpdateLeaveRequestRequest struct {
	Type      *string `json:"type,omitempty"`
	StartDate *string `json:"startDate,omitempty" validate:"omitempty,date"`
	EndDate   *string `json:"endDate,omitempty" validate:"omitempty,date"`
	Reason    *string `json:"reason,omitempty"`
	Status    *Status `json:"status,omitempty" validate:"omitempty,oneof=pending approved rejected"`
}

func (r *UpdateLeaveRequestRequest) Validate() error {
	if r.Type != nil && validator.IsEmpty(*r.Type) {
		return validator.ValidationErrors{}.Add("type", "must not be empty")
	}
	if r.Status != nil && *r.Status == "" {
		return validator.ValidationErrors{}.Add("status", "must be one of: pending, approved, rejected")
	}
	return validator.Struct(r)
}

func (r UpdateLeaveRequestRequest) IsEmpty() bool {
	return r.Type == nil && r.StartDate == nil && r.EndDate == nil && r.Reason == nil && r.Status == nil
}

type LeaveBalanceFilter struct {
	EmployeeID string
	Year       *int
	LeaveType  string
}

func (f LeaveBalanceFilter) Validate() error {
	if validator.IsEmpty(f.EmployeeID) {
		return validator.ValidationErrors{}.Add("employeeId", "employeeId required")
	}
	return nil
}

type UpsertLeaveBalanceRequest struct {
	EmployeeID string           `json:"employeeId" validate:"required,uuid"`
	LeaveType  string           `json:"leaveType" validate:"required"`
	Year       int              `json:"year" validate:"required,gt=0"`
	Balance    *decimal.Decimal `json:"balance" validate:"required"`
}

func (r *UpsertLeaveBalanceRequest) Validate() error {
	r.LeaveType = strings.TrimSpace(r.LeaveType)
	return validator.Struct(r)
}

type UpdateLeaveBalanceRequest struct {
	EmployeeID string           `json:"employeeId" validate:"required,uuid"`
	LeaveType  string           `json:"leaveType" validate:"required"`
	Year       int              `json:"year" validate:"required,gt=0"`
	Balance    *decimal.Decimal `json:"balance,omitempty"`
	Delta      *decimal.Decimal `json:"delta,omitempty"`
}

func (r *UpdateLeaveBalanceRequest) Validate() error {
	r.LeaveType = strings.TrimSpace(r.LeaveType)
	if err := validator.Struct(r); err != nil {
		return err
	}
	if r.Balance == nil && r.Delta == nil {
		return validator.ValidationErrors{}.Add("balance", "balance or delta required")
	}
	return nil
}

func (r UpdateLeaveBalanceRequest) Key() BalanceKey {
	return BalanceKey{EmployeeID: r.EmployeeID, LeaveType: r.LeaveType, Year: r.Year}
}

type LeaveRequestResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employeeId"`
	Type       string `json:"type"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	Reason     string `json:"reason"`
	Status     Status `json:"status"`
}

func NewLeaveRequestResponse(l LeaveRequest) LeaveRequestResponse {
	return LeaveRequestResponse{
		ID:         l.ID,
		EmployeeID: l.EmployeeID,
		Type:       l.Type,
		StartDate:  l.StartDate.Format(validator.DateLayout),
		EndDate:    l.EndDate.Format(validator.DateLayout),
		Reason:     l.Reason,
		Status:     l.Status,
	}
}

type LeaveBalanceResponse struct {
	EmployeeID string          `json:"employeeId"`
	LeaveType  string          `json:"leaveType"`
	Year       int             `json:"year"`
	Balance    decimal.Decimal `json:"balance"`
}

func NewLeaveBalanceResponse(b LeaveBalance) LeaveBalanceResponse {
	return LeaveBalanceResponse{
		EmployeeID: b.EmployeeID,
		LeaveType:  b.LeaveType,
		Year:       b.Year,
		Balance:    b.Balance,
	}
}
