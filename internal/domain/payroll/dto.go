package payroll

import (
	"time"

	"github.com/hris-core/hris-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type PayrollFilter struct {
	EmployeeID  string
	PeriodStart *time.Time
	PeriodEnd   *time.Time
}

type ProcessPayrollRequest struct {
	PeriodStart string           `json:"periodStart" validate:"required,date"`
	PeriodEnd   string           `json:"periodEnd" validate:"required,date"`
	EmployeeIDs []string         `json:"employeeIds,omitempty"`
	HourlyRate  *decimal.Decimal `json:"hourlyRate,omitempty"`
}

func (r *ProcessPayrollRequest) Validate() error {
	if err := validator.Struct(r); err != nil {
		return err
	}

	if r.PeriodEnd < r.PeriodStart {
		return validator.ValidationErrors{}.Add("periodEnd", "must not be before periodStart")
	}
	if r.HourlyRate != nil && r.HourlyRate.IsNegative() {
		return validator.ValidationErrors{}.Add("hourlyRate", "must not be negative")
	}
	return nil
}

// Period returns the parsed bounds of a validated request.
func (r ProcessPayrollRequest) Period() Period {
	start, _ := validator.IsValidDate(r.PeriodStart)
	end, _ := validator.IsValidDate(r.PeriodEnd)
	return Period{Start: start, End: end}
}

type PayrollRecordResponse struct {
	ID          string          `json:"id"`
	EmployeeID  string          `json:"employeeId"`
	PeriodStart string          `json:"periodStart"`
	PeriodEnd   string          `json:"periodEnd"`
	TotalHours  float64         `json:"totalHours"`
	LeaveDays   int             `json:"leaveDays"`
	GrossSalary decimal.Decimal `json:"grossSalary"`
	Deductions  decimal.Decimal `json:"deductions"`
	NetSalary   decimal.Decimal `json:"netSalary"`
	CreatedAt   time.Time       `json:"createdAt"`
}

func NewPayrollRecordResponse(r PayrollRecord) PayrollRecordResponse {
	return PayrollRecordResponse{
		ID:          r.ID,
		EmployeeID:  r.EmployeeID,
		PeriodStart: r.PeriodStart.Format(validator.DateLayout),
		PeriodEnd:   r.PeriodEnd.Format(validator.DateLayout),
		TotalHours:  r.TotalHours,
		LeaveDays:   r.LeaveDays,
		GrossSalary: r.GrossSalary,
		Deductions:  r.Deductions,
		NetSalary:   r.NetSalary,
		CreatedAt:   r.CreatedAt.UTC(),
	}
}

type ProcessPayrollResponse struct {
	Message string                  `json:"message"`
	Count   int                     `json:"count"`
	Records []PayrollRecordResponse `json:"records"`
}
