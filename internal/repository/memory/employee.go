package memory

import (
	"context"
	"slices"
	"strings"

	"github.com/hris-core/hris-backend-go/internal/domain/employee"
	"github.com/hris-core/hris-backend-go/internal/pkg/validator"
)

type employeeRepo struct{ s *Store }

func (r employeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	list := make([]employee.Employee, 0, len(r.s.data.employees))
	for _, e := range r.s.data.employees {
		list = append(list, e)
	}
	slices.SortFunc(list, func(a, b employee.Employee) int {
		if c := strings.Compare(a.LastName, b.LastName); c != 0 {
			return c
		}
		if c := strings.Compare(a.FirstName, b.FirstName); c != 0 {
			return c
		}
		return r.s.order(a.ID, b.ID)
	})
	return list, nil
}

func (r employeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	e, ok := r.s.data.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (r employeeRepo) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.emailTaken(newEmployee.Email, "") {
		return employee.Employee{}, employee.ErrEmailExists
	}

	newEmployee.ID = r.s.newID()
	r.s.data.employees[newEmployee.ID] = newEmployee
	return newEmployee, nil
}

func (r employeeRepo) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	e, ok := r.s.data.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}

	if req.FirstName != nil {
		e.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		e.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.Email != nil {
		email := strings.TrimSpace(*req.Email)
		if r.emailTaken(email, id) {
			return employee.Employee{}, employee.ErrEmailExists
		}
		e.Email = email
	}
	if req.Department != nil {
		e.Department = *req.Department
	}
	if req.Position != nil {
		e.Position = *req.Position
	}
	if req.HireDate != nil {
		d, _ := validator.IsValidDate(*req.HireDate)
		e.HireDate = &d
	}

	r.s.data.employees[id] = e
	return e, nil
}

// Delete removes the employee and every row that references it.
func (r employeeRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.data.employees[id]; !ok {
		return employee.ErrEmployeeNotFound
	}
	delete(r.s.data.employees, id)

	d := &r.s.data
	for k, v := range d.slots {
		if v.EmployeeID == id {
			delete(d.slots, k)
		}
	}
	for k, v := range d.clockRecords {
		if v.EmployeeID == id {
			delete(d.clockRecords, k)
		}
	}
	for k, v := range d.leaveRequests {
		if v.EmployeeID == id {
			delete(d.leaveRequests, k)
		}
	}
	for k := range d.leaveBalances {
		if k.EmployeeID == id {
			delete(d.leaveBalances, k)
		}
	}
	for k, v := range d.payrollRecords {
		if v.EmployeeID == id {
			delete(d.payrollRecords, k)
		}
	}
	for k, v := range d.rankFiles {
		if v.EmployeeID == id {
			delete(d.rankFiles, k)
		}
	}
	return nil
}

func (r employeeRepo) emailTaken(email, exceptID string) bool {
	for _, e := range r.s.data.employees {
		if e.Email == email && e.ID != exceptID {
			return true
		}
	}
	return false
}
