package postgresql

import (
	"context"
	"fmt"

	"github.com/hris-core/hris-backend-go/internal/domain/leave"
	"github.com/hris-core/hris-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const leaveBalanceColumns = `employee_id, leave_type, year, balance`

type leaveBalanceRepositoryImpl struct {
	db *database.DB
}

func NewLeaveBalanceRepository(db *database.DB) leave.LeaveBalanceRepository {
	return &leaveBalanceRepositoryImpl{db: db}
}

func scanLeaveBalance(row pgx.Row) (leave.LeaveBalance, error) {
	var b leave.LeaveBalance
	err := row.Scan(&b.EmployeeID, &b.LeaveType, &b.Year, &b.Balance)
	return b, err
}

func (r *leaveBalanceRepositoryImpl) List(ctx context.Context, filter leave.LeaveBalanceFilter) ([]leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveBalanceColumns + ` FROM leave_balances WHERE employee_id = $1`
	args := []interface{}{filter.EmployeeID}
	if filter.Year != nil {
		args = append(args, *filter.Year)
		query += fmt.Sprintf(` AND year = $%d`, len(args))
	}
	if filter.LeaveType != "" {
		args = append(args, filter.LeaveType)
		query += fmt.Sprintf(` AND leave_type = $%d`, len(args))
	}
	query += ` ORDER BY year DESC, leave_type`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave balances: %w", err)
	}
	defer rows.Close()

	balances := make([]leave.LeaveBalance, 0)
	for rows.Next() {
		b, err := scanLeaveBalance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave balance: %w", err)
		}
		balances = append(balances, b)
	}
	return balances, rows.Err()
}

func (r *leaveBalanceRepositoryImpl) Upsert(ctx context.Context, balance leave.LeaveBalance) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_balances (employee_id, leave_type, year, balance)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (employee_id, leave_type, year) DO UPDATE SET balance = EXCLUDED.balance
		RETURNING ` + leaveBalanceColumns

	b, err := scanLeaveBalance(q.QueryRow(ctx, query, balance.EmployeeID, balance.LeaveType, balance.Year, balance.Balance))
	if err != nil {
		return leave.LeaveBalance{}, mapError(err, leave.ErrLeaveBalanceNotFound, "upsert leave balance")
	}
	return b, nil
}

func (r *leaveBalanceRepositoryImpl) Set(ctx context.Context, key leave.BalanceKey, balance decimal.Decimal) (leave.LeaveBalance, error) {
	return r.update(ctx, `balance = $1`, key, balance)
}

func (r *leaveBalanceRepositoryImpl) Add(ctx context.Context, key leave.BalanceKey, delta decimal.Decimal) (leave.LeaveBalance, error) {
	return r.update(ctx, `balance = balance + $1`, key, delta)
}

func (r *leaveBalanceRepositoryImpl) update(ctx context.Context, set string, key leave.BalanceKey, amount decimal.Decimal) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_balances SET ` + set + `
		WHERE employee_id = $2 AND leave_type = $3 AND year = $4
		RETURNING ` + leaveBalanceColumns

	b, err := scanLeaveBalance(q.QueryRow(ctx, query, amount, key.EmployeeID, key.LeaveType, key.Year))
	if err != nil {
		return leave.LeaveBalance{}, mapError(err, leave.ErrLeaveBalanceNotFound, "update leave balance")
	}
	return b, nil
}
