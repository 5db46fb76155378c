package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/hris-core/hris-backend-go/internal/domain/employee"
	"github.com/hris-core/hris-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const employeeColumns = `id, first_name, last_name, email, department, position, hire_date`

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.FirstName, &emp.LastName, &emp.Email,
		&emp.Department, &emp.Position, &emp.HireDate,
	)
	return emp, err
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY last_name, first_name, id`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := make([]employee.Employee, 0)
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	found, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		return employee.Employee{}, mapError(err, employee.ErrEmployeeNotFound, "get employee")
	}
	return found, nil
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (first_name, last_name, email, department, position, hire_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + employeeColumns

	created, err := scanEmployee(q.QueryRow(ctx, query,
		newEmployee.FirstName, newEmployee.LastName, newEmployee.Email,
		newEmployee.Department, newEmployee.Position, newEmployee.HireDate,
	))
	if err != nil {
		if pgErrorCode(err) == uniqueViolation {
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return created, nil
}

// Update implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	var b updateBuilder
	if req.FirstName != nil {
		b.set("first_name", strings.TrimSpace(*req.FirstName))
	}
	if req.LastName != nil {
		b.set("last_name", strings.TrimSpace(*req.LastName))
	}
	if req.Email != nil {
		b.set("email", strings.TrimSpace(*req.Email))
	}
	if req.Department != nil {
		b.set("department", *req.Department)
	}
	if req.Position != nil {
		b.set("position", *req.Position)
	}
	if req.HireDate != nil {
		b.set("hire_date", parseDate(*req.HireDate))
	}

	if b.empty() {
		return e.GetByID(ctx, id)
	}

	q := GetQuerier(ctx, e.db)
	query := fmt.Sprintf(`
		UPDATE employees
		SET %s
		WHERE id = %s
		RETURNING %s
	`, strings.Join(b.setParts, ", "), b.next(id), employeeColumns)

	updated, err := scanEmployee(q.QueryRow(ctx, query, b.args...))
	if err != nil {
		if pgErrorCode(err) == uniqueViolation {
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, mapError(err, employee.ErrEmployeeNotFound, "update employee")
	}
	return updated, nil
}

// Delete implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, e.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}
