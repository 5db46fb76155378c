package payroll

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/hris-core/hris-backend-go/internal/domain/employee"
	"github.com/hris-core/hris-backend-go/internal/domain/payroll"
	"github.com/hris-core/hris-backend-go/internal/pkg/database"
	"github.com/hris-core/hris-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type PayrollServiceImpl struct {
	tx               database.Transactor
	payrollRepo      payroll.PayrollRepository
	employeeRepo     employee.EmployeeRepository
	attendanceReader payroll.AttendanceReader
	leaveReader      payroll.LeaveReader
	calculator       *Calculator
	defaultRate      decimal.Decimal
}

func NewPayrollService(
	tx database.Transactor,
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceReader payroll.AttendanceReader,
	leaveReader payroll.LeaveReader,
	defaultRate decimal.Decimal,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		tx:               tx,
		payrollRepo:      payrollRepo,
		employeeRepo:     employeeRepo,
		attendanceReader: attendanceReader,
		leaveReader:      leaveReader,
		calculator:       NewCalculator(),
		defaultRate:      defaultRate,
	}
}

// ListPayrollRecords implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListPayrollRecords(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.PayrollRecordResponse, error) {
	if filter.EmployeeID != "" && !validator.IsValidUUID(filter.EmployeeID) {
		return []payroll.PayrollRecordResponse{}, nil
	}

	records, err := s.payrollRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return toResponses(records), nil
}

// GetPayrollRecord implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetPayrollRecord(ctx context.Context, id string) (payroll.PayrollRecordResponse, error) {
	if !validator.IsValidUUID(id) {
		return payroll.PayrollRecordResponse{}, payroll.ErrPayrollRecordNotFound
	}

	record, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}
	return payroll.NewPayrollRecordResponse(record), nil
}

// ProcessPayroll implements payroll.PayrollService. Employees are processed one
// at a time; the first failure stops the loop and records already created stay
// stored.
func (s *PayrollServiceImpl) ProcessPayroll(ctx context.Context, req payroll.ProcessPayrollRequest) (payroll.ProcessPayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.ProcessPayrollResponse{}, err
	}

	period := req.Period()
	rate := s.defaultRate
	if req.HourlyRate != nil {
		rate = *req.HourlyRate
	}

	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return payroll.ProcessPayrollResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	selected := selectEmployees(employees, req.EmployeeIDs)
	records := make([]payroll.PayrollRecord, 0, len(selected))
	for _, emp := range selected {
		var record payroll.PayrollRecord
		err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
			var err error
			record, err = s.processEmployee(ctx, emp.ID, period, rate)
			return err
		})
		if err != nil {
			err = fmt.Errorf("failed to process payroll for employee %s: %w", emp.ID, err)
			break
		}
		records = append(records, record)
	}
	if err != nil {
		slog.Error("payroll processing failed", "period_start", req.PeriodStart, "period_end", req.PeriodEnd, "created", len(records), "error", err)
		return payroll.ProcessPayrollResponse{}, err
	}

	slog.Info("payroll processed", "period_start", req.PeriodStart, "period_end", req.PeriodEnd, "count", len(records))
	return payroll.ProcessPayrollResponse{
		Message: "Payroll processed",
		Count:   len(records),
		Records: toResponses(records),
	}, nil
}

func (s *PayrollServiceImpl) processEmployee(ctx context.Context, employeeID string, period payroll.Period, rate decimal.Decimal) (payroll.PayrollRecord, error) {
	intervals, err := s.attendanceReader.Intervals(ctx, employeeID, period)
	if err != nil {
		return payroll.PayrollRecord{}, err
	}
	leave, err := s.leaveReader.ApprovedLeave(ctx, employeeID, period)
	if err != nil {
		return payroll.PayrollRecord{}, err
	}

	summary := s.calculator.Calculate(period, intervals, leave, rate)
	return s.payrollRepo.Create(ctx, payroll.NewPayrollRecord(employeeID, period, summary))
}

// selectEmployees keeps the listed employees in their stored order. An empty
// selection means everyone; ids that match no employee are ignored.
func selectEmployees(employees []employee.Employee, ids []string) []employee.Employee {
	if len(ids) == 0 {
		return employees
	}

	selected := make([]employee.Employee, 0, len(ids))
	for _, emp := range employees {
		if slices.Contains(ids, emp.ID) {
			selected = append(selected, emp)
		}
	}
	return selected
}

func toResponses(records []payroll.PayrollRecord) []payroll.PayrollRecordResponse {
	responses := make([]payroll.PayrollRecordResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, payroll.NewPayrollRecordResponse(r))
	}
	return responses
}
