package payroll

import "context"

type PayrollService interface {
	ListPayrollRecords(ctx context.Context, filter PayrollFilter) ([]PayrollRecordResponse, error)
	GetPayrollRecord(ctx context.Context, id string) (PayrollRecordResponse, error)
	// ProcessPayroll creates one record per selected employee. Running it
	// twice for the same period creates two sets of records.
	ProcessPayroll(ctx context.Context, req ProcessPayrollRequest) (ProcessPayrollResponse, error)
}
