package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/hris-core/hris-backend-go/internal/domain/schedule"
	"github.com/hris-core/hris-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const slotColumns = `s.id, s.employee_id, s.day_of_week, to_char(s.start_time, 'HH24:MI'), to_char(s.end_time, 'HH24:MI')`

type scheduleRepositoryImpl struct {
	db *database.DB
}

func NewScheduleRepository(db *database.DB) schedule.ScheduleRepository {
	return &scheduleRepositoryImpl{db: db}
}

func scanSlots(rows pgx.Rows) ([]schedule.Slot, error) {
	defer rows.Close()

	slots := make([]schedule.Slot, 0)
	for rows.Next() {
		var (
			s   schedule.Slot
			day int16
		)
		if err := rows.Scan(&s.ID, &s.EmployeeID, &day, &s.StartTime, &s.EndTime); err != nil {
			return nil, fmt.Errorf("failed to scan schedule: %w", err)
		}
		s.Day = time.Weekday(day)
		slots = append(slots, s)
	}
	return slots, rows.Err()
}

func (r *scheduleRepositoryImpl) List(ctx context.Context, filter schedule.ScheduleFilter) ([]schedule.Slot, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + slotColumns + ` FROM schedules s`
	var args []interface{}
	if filter.EmployeeID != "" {
		query += ` WHERE s.employee_id = $1`
		args = append(args, filter.EmployeeID)
	}
	query += ` ORDER BY s.employee_id, s.start_time, s.end_time, s.day_of_week`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}
	return scanSlots(rows)
}

func (r *scheduleRepositoryImpl) ListGroup(ctx context.Context, id string) ([]schedule.Slot, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + slotColumns + `
		FROM schedules s
		JOIN schedules g
			ON g.employee_id = s.employee_id
			AND g.start_time = s.start_time
			AND g.end_time = s.end_time
		WHERE g.id = $1
		ORDER BY s.day_of_week
	`

	rows, err := q.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get schedule: %w", err)
	}
	slots, err := scanSlots(rows)
	if err != nil {
		return nil, err
	}
	if len(slots) == 0 {
		return nil, schedule.ErrScheduleNotFound
	}
	return slots, nil
}

func (r *scheduleRepositoryImpl) ListByShift(ctx context.Context, employeeID, startTime, endTime string) ([]schedule.Slot, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + slotColumns + `
		FROM schedules s
		WHERE s.employee_id = $1 AND s.start_time = $2::time AND s.end_time = $3::time
		ORDER BY s.day_of_week
	`

	rows, err := q.Query(ctx, query, employeeID, startTime, endTime)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedule shift: %w", err)
	}
	return scanSlots(rows)
}

func (r *scheduleRepositoryImpl) CreateSlots(ctx context.Context, employeeID string, days schedule.Days, startTime, endTime string) error {
	q := GetQuerier(ctx, r.db)

	ordinals := make([]int16, 0, len(days))
	for _, d := range days {
		ordinals = append(ordinals, int16(d))
	}

	query := `
		INSERT INTO schedules (employee_id, day_of_week, start_time, end_time)
		SELECT $1, d, $3::time, $4::time FROM unnest($2::smallint[]) AS d
		ON CONFLICT ON CONSTRAINT uk_schedules_slot DO NOTHING
	`

	if _, err := q.Exec(ctx, query, employeeID, ordinals, startTime, endTime); err != nil {
		return mapError(err, schedule.ErrScheduleNotFound, "create schedule")
	}
	return nil
}

func (r *scheduleRepositoryImpl) DeleteGroup(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM schedules s
		USING schedules g
		WHERE g.id = $1
			AND s.employee_id = g.employee_id
			AND s.start_time = g.start_time
			AND s.end_time = g.end_time
	`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete schedule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrScheduleNotFound
	}
	return nil
}
