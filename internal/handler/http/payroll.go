package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hris-core/hris-backend-go/internal/domain/payroll"
	"github.com/hris-core/hris-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	ListPayrollRecords(w http.ResponseWriter, r *http.Request)
	GetPayrollRecord(w http.ResponseWriter, r *http.Request)
	ProcessPayroll(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

// ListPayrollRecords implements PayrollHandler. Supports ?employeeId=,
// ?periodStart= and ?periodEnd=.
func (h *payrollHandlerImpl) ListPayrollRecords(w http.ResponseWriter, r *http.Request) {
	periodStart, err := queryDate(r, "periodStart")
	if err != nil {
		response.HandleError(w, err)
		return
	}
	periodEnd, err := queryDate(r, "periodEnd")
	if err != nil {
		response.HandleError(w, err)
		return
	}
	filter := payroll.PayrollFilter{
		EmployeeID:  r.URL.Query().Get("employeeId"),
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
	}

	records, err := h.payrollService.ListPayrollRecords(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.OK(w, records)
}

// GetPayrollRecord implements PayrollHandler.
func (h *payrollHandlerImpl) GetPayrollRecord(w http.ResponseWriter, r *http.Request) {
	record, err := h.payrollService.GetPayrollRecord(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.OK(w, record)
}

// ProcessPayroll implements PayrollHandler.
func (h *payrollHandlerImpl) ProcessPayroll(w http.ResponseWriter, r *http.Request) {
	var req payroll.ProcessPayrollRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.payrollService.ProcessPayroll(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, result)
}
