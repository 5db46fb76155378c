package memory

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/hris-core/hris-backend-go/internal/domain/employee"
	"github.com/hris-core/hris-backend-go/internal/domain/payroll"
)

type payrollRepo struct{ s *Store }

func (r payrollRepo) Create(ctx context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if !r.s.employeeExists(record.EmployeeID) {
		return payroll.PayrollRecord{}, employee.ErrEmployeeReference
	}

	record.ID = r.s.newID()
	record.CreatedAt = time.Now().UTC()
	r.s.data.payrollRecords[record.ID] = record
	return record, nil
}

func (r payrollRepo) GetByID(ctx context.Context, id string) (payroll.PayrollRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.data.payrollRecords[id]
	if !ok {
		return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
	}
	return p, nil
}

func (r payrollRepo) List(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.PayrollRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	list := make([]payroll.PayrollRecord, 0)
	for _, p := range r.s.data.payrollRecords {
		if filter.EmployeeID != "" && p.EmployeeID != filter.EmployeeID {
			continue
		}
		if filter.PeriodStart != nil && p.PeriodStart.Before(*filter.PeriodStart) {
			continue
		}
		if filter.PeriodEnd != nil && p.PeriodEnd.After(*filter.PeriodEnd) {
			continue
		}
		list = append(list, p)
	}
	slices.SortFunc(list, func(a, b payroll.PayrollRecord) int {
		return cmp.Or(b.PeriodEnd.Compare(a.PeriodEnd), r.s.order(b.ID, a.ID))
	})
	return list, nil
}
