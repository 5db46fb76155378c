package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/hris-core/hris-backend-go/internal/domain/payroll"
	"github.com/hris-core/hris-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const payrollRecordColumns = `id, employee_id, period_start, period_end, total_hours, leave_days,
	gross_salary, deductions, net_salary, created_at`

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

func scanPayrollRecord(row pgx.Row) (payroll.PayrollRecord, error) {
	var p payroll.PayrollRecord
	err := row.Scan(
		&p.ID, &p.EmployeeID, &p.PeriodStart, &p.PeriodEnd, &p.TotalHours, &p.LeaveDays,
		&p.GrossSalary, &p.Deductions, &p.NetSalary, &p.CreatedAt,
	)
	return p, err
}

func (r *payrollRepository) Create(ctx context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_records (
			employee_id, period_start, period_end, total_hours, leave_days,
			gross_salary, deductions, net_salary
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + payrollRecordColumns

	created, err := scanPayrollRecord(q.QueryRow(ctx, query,
		record.EmployeeID, record.PeriodStart, record.PeriodEnd, record.TotalHours, record.LeaveDays,
		record.GrossSalary, record.Deductions, record.NetSalary,
	))
	if err != nil {
		return payroll.PayrollRecord{}, mapError(err, payroll.ErrPayrollRecordNotFound, "create payroll record")
	}
	return created, nil
}

func (r *payrollRepository) GetByID(ctx context.Context, id string) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	p, err := scanPayrollRecord(q.QueryRow(ctx, `SELECT `+payrollRecordColumns+` FROM payroll_records WHERE id = $1`, id))
	if err != nil {
		return payroll.PayrollRecord{}, mapError(err, payroll.ErrPayrollRecordNotFound, "get payroll record")
	}
	return p, nil
}

func (r *payrollRepository) List(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	var (
		where []string
		args  []interface{}
	)
	if filter.EmployeeID != "" {
		args = append(args, filter.EmployeeID)
		where = append(where, fmt.Sprintf("employee_id = $%d", len(args)))
	}
	if filter.PeriodStart != nil {
		args = append(args, *filter.PeriodStart)
		where = append(where, fmt.Sprintf("period_start >= $%d", len(args)))
	}
	if filter.PeriodEnd != nil {
		args = append(args, *filter.PeriodEnd)
		where = append(where, fmt.Sprintf("period_end <= $%d", len(args)))
	}

	query := `SELECT ` + payrollRecordColumns + ` FROM payroll_records`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY period_end DESC, created_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	records := make([]payroll.PayrollRecord, 0)
	for rows.Next() {
		p, err := scanPayrollRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, p)
	}
	return records, rows.Err()
}
