package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hris-core/hris-backend-go/internal/domain/leave"
	"github.com/hris-core/hris-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const leaveRequestColumns = `id, employee_id, type, start_date, end_date, reason, status`

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

func scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var l leave.LeaveRequest
	err := row.Scan(&l.ID, &l.EmployeeID, &l.Type, &l.StartDate, &l.EndDate, &l.Reason, &l.Status)
	return l, err
}

func collectLeaveRequests(rows pgx.Rows) ([]leave.LeaveRequest, error) {
	defer rows.Close()

	requests := make([]leave.LeaveRequest, 0)
	for rows.Next() {
		l, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, l)
	}
	return requests, rows.Err()
}

func (r *leaveRequestRepositoryImpl) List(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveRequestColumns + ` FROM leave_requests`
	var args []interface{}
	if filter.EmployeeID != "" {
		query += ` WHERE employee_id = $1`
		args = append(args, filter.EmployeeID)
	}
	query += ` ORDER BY start_date DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return collectLeaveRequests(rows)
}

func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	l, err := scanLeaveRequest(q.QueryRow(ctx, `SELECT `+leaveRequestColumns+` FROM leave_requests WHERE id = $1`, id))
	if err != nil {
		return leave.LeaveRequest{}, mapError(err, leave.ErrLeaveRequestNotFound, "get leave request")
	}
	return l, nil
}

func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (employee_id, type, start_date, end_date, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + leaveRequestColumns

	l, err := scanLeaveRequest(q.QueryRow(ctx, query,
		req.EmployeeID, req.Type, req.StartDate, req.EndDate, req.Reason, req.Status,
	))
	if err != nil {
		return leave.LeaveRequest{}, mapError(err, leave.ErrLeaveRequestNotFound, "create leave request")
	}
	return l, nil
}

func (r *leaveRequestRepositoryImpl) Update(ctx context.Context, id string, req leave.UpdateLeaveRequestRequest) (leave.LeaveRequest, error) {
	var b updateBuilder
	if req.Type != nil {
		b.set("type", strings.TrimSpace(*req.Type))
	}
	if req.StartDate != nil {
		b.set("start_date", parseDate(*req.StartDate))
	}
	if req.EndDate != nil {
		b.set("end_date", parseDate(*req.EndDate))
	}
	if req.Reason != nil {
		b.set("reason", *req.Reason)
	}
	if req.Status != nil {
		b.set("status", string(*req.Status))
	}

	if b.empty() {
		return r.GetByID(ctx, id)
	}

	q := GetQuerier(ctx, r.db)
	query := fmt.Sprintf(`UPDATE leave_requests SET %s WHERE id = %s RETURNING %s`,
		strings.Join(b.setParts, ", "), b.next(id), leaveRequestColumns)

	l, err := scanLeaveRequest(q.QueryRow(ctx, query, b.args...))
	if err != nil {
		return leave.LeaveRequest{}, mapError(err, leave.ErrLeaveRequestNotFound, "update leave request")
	}
	return l, nil
}

func (r *leaveRequestRepositoryImpl) ListApprovedOverlapping(ctx context.Context, employeeID string, from, to time.Time) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests
		WHERE employee_id = $1 AND status = $2 AND start_date <= $4 AND end_date >= $3
		ORDER BY start_date
	`

	rows, err := q.Query(ctx, query, employeeID, string(leave.StatusApproved), from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved leave: %w", err)
	}
	return collectLeaveRequests(rows)
}
