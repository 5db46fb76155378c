package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hris-core/hris-backend-go/internal/domain/attendance"
	"github.com/hris-core/hris-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const clockRecordColumns = `id, employee_id, date, clock_in, clock_out`

type clockRecordRepositoryImpl struct {
	db *database.DB
}

func NewClockRecordRepository(db *database.DB) attendance.ClockRecordRepository {
	return &clockRecordRepositoryImpl{db: db}
}

func scanClockRecord(row pgx.Row) (attendance.ClockRecord, error) {
	var c attendance.ClockRecord
	err := row.Scan(&c.ID, &c.EmployeeID, &c.Date, &c.ClockIn, &c.ClockOut)
	return c, err
}

func collectClockRecords(rows pgx.Rows) ([]attendance.ClockRecord, error) {
	defer rows.Close()

	records := make([]attendance.ClockRecord, 0)
	for rows.Next() {
		c, err := scanClockRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan clock record: %w", err)
		}
		records = append(records, c)
	}
	return records, rows.Err()
}

func (r *clockRecordRepositoryImpl) List(ctx context.Context, filter attendance.ClockRecordFilter) ([]attendance.ClockRecord, error) {
	q := GetQuerier(ctx, r.db)

	var (
		where []string
		args  []interface{}
	)
	if filter.EmployeeID != "" {
		args = append(args, filter.EmployeeID)
		where = append(where, fmt.Sprintf("employee_id = $%d", len(args)))
	}
	if filter.Date != nil {
		args = append(args, *filter.Date)
		where = append(where, fmt.Sprintf("date = $%d", len(args)))
	}

	query := `SELECT ` + clockRecordColumns + ` FROM clock_records`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY date DESC, clock_in DESC NULLS LAST`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list clock records: %w", err)
	}
	return collectClockRecords(rows)
}

func (r *clockRecordRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.ClockRecord, error) {
	q := GetQuerier(ctx, r.db)

	c, err := scanClockRecord(q.QueryRow(ctx, `SELECT `+clockRecordColumns+` FROM clock_records WHERE id = $1`, id))
	if err != nil {
		return attendance.ClockRecord{}, mapError(err, attendance.ErrClockRecordNotFound, "get clock record")
	}
	return c, nil
}

func (r *clockRecordRepositoryImpl) Create(ctx context.Context, record attendance.ClockRecord) (attendance.ClockRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO clock_records (employee_id, date, clock_in, clock_out)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + clockRecordColumns

	c, err := scanClockRecord(q.QueryRow(ctx, query, record.EmployeeID, record.Date, record.ClockIn, record.ClockOut))
	if err != nil {
		return attendance.ClockRecord{}, mapError(err, attendance.ErrClockRecordNotFound, "create clock record")
	}
	return c, nil
}

func (r *clockRecordRepositoryImpl) FindOpen(ctx context.Context, employeeID string, date time.Time) (attendance.ClockRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + clockRecordColumns + `
		FROM clock_records
		WHERE employee_id = $1 AND date = $2 AND clock_out IS NULL
		ORDER BY clock_in DESC NULLS LAST
		LIMIT 1
		FOR UPDATE
	`

	c, err := scanClockRecord(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		return attendance.ClockRecord{}, mapError(err, attendance.ErrOpenRecordNotFound, "find open clock record")
	}
	return c, nil
}

func (r *clockRecordRepositoryImpl) SetClockOut(ctx context.Context, id string, clockOut time.Time) (attendance.ClockRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE clock_records SET clock_out = $1 WHERE id = $2 RETURNING ` + clockRecordColumns

	c, err := scanClockRecord(q.QueryRow(ctx, query, clockOut, id))
	if err != nil {
		return attendance.ClockRecord{}, mapError(err, attendance.ErrClockRecordNotFound, "clock out")
	}
	return c, nil
}

func (r *clockRecordRepositoryImpl) Update(ctx context.Context, id string, req attendance.UpdateClockRecordRequest) (attendance.ClockRecord, error) {
	var b updateBuilder
	if req.ClockIn != nil {
		b.set("clock_in", parseTimestamp(*req.ClockIn))
	}
	if req.ClockOut != nil {
		b.set("clock_out", parseTimestamp(*req.ClockOut))
	}
	if req.Date != nil {
		b.set("date", parseDate(*req.Date))
	}

	if b.empty() {
		return r.GetByID(ctx, id)
	}

	q := GetQuerier(ctx, r.db)
	query := fmt.Sprintf(`UPDATE clock_records SET %s WHERE id = %s RETURNING %s`,
		strings.Join(b.setParts, ", "), b.next(id), clockRecordColumns)

	c, err := scanClockRecord(q.QueryRow(ctx, query, b.args...))
	if err != nil {
		return attendance.ClockRecord{}, mapError(err, attendance.ErrClockRecordNotFound, "update clock record")
	}
	return c, nil
}

func (r *clockRecordRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM clock_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete clock record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrClockRecordNotFound
	}
	return nil
}

func (r *clockRecordRepositoryImpl) ListClosed(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.ClockRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + clockRecordColumns + `
		FROM clock_records
		WHERE employee_id = $1
			AND date >= $2 AND date <= $3
			AND clock_in IS NOT NULL AND clock_out IS NOT NULL
		ORDER BY date, clock_in
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list closed clock records: %w", err)
	}
	return collectClockRecords(rows)
}
