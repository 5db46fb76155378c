package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/hris-core/hris-backend-go/internal/domain/attendance"
	"github.com/hris-core/hris-backend-go/internal/domain/employee"
	"github.com/hris-core/hris-backend-go/internal/domain/holiday"
	"github.com/hris-core/hris-backend-go/internal/domain/leave"
	"github.com/hris-core/hris-backend-go/internal/domain/payroll"
	"github.com/hris-core/hris-backend-go/internal/domain/rankfile"
	"github.com/hris-core/hris-backend-go/internal/domain/schedule"
	"github.com/hris-core/hris-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		BadRequest(w, validationErrs.Error(), validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrEmployeeReference):
		BadRequest(w, "employeeId does not reference an existing employee", map[string]string{"employeeId": "unknown employee"})

	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, schedule.ErrScheduleNotFound):
		NotFound(w, "Schedule not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrClockRecordNotFound):
		NotFound(w, "Clock record not found")
	case errors.Is(err, attendance.ErrOpenRecordNotFound):
		NotFound(w, "No open clock-in record found for this employee/date")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveBalanceNotFound):
		NotFound(w, "Leave balance not found")

	case errors.Is(err, payroll.ErrPayrollRecordNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, rankfile.ErrRankFileNotFound):
		NotFound(w, "Rank and file record not found")

	// Default
	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, err.Error())
	}
}
