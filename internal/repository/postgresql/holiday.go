package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/hris-core/hris-backend-go/internal/domain/holiday"
	"github.com/hris-core/hris-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const holidayColumns = `id, name, date, type`

type holidayRepositoryImpl struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepositoryImpl{db: db}
}

func scanHoliday(row pgx.Row) (holiday.Holiday, error) {
	var h holiday.Holiday
	err := row.Scan(&h.ID, &h.Name, &h.Date, &h.Type)
	return h, err
}

func (r *holidayRepositoryImpl) List(ctx context.Context) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+holidayColumns+` FROM holidays ORDER BY date, name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	holidays := make([]holiday.Holiday, 0)
	for rows.Next() {
		h, err := scanHoliday(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, h)
	}
	return holidays, rows.Err()
}

func (r *holidayRepositoryImpl) GetByID(ctx context.Context, id string) (holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	h, err := scanHoliday(q.QueryRow(ctx, `SELECT `+holidayColumns+` FROM holidays WHERE id = $1`, id))
	if err != nil {
		return holiday.Holiday{}, mapError(err, holiday.ErrHolidayNotFound, "get holiday")
	}
	return h, nil
}

func (r *holidayRepositoryImpl) Create(ctx context.Context, newHoliday holiday.Holiday) (holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `INSERT INTO holidays (name, date, type) VALUES ($1, $2, $3) RETURNING ` + holidayColumns

	h, err := scanHoliday(q.QueryRow(ctx, query, newHoliday.Name, newHoliday.Date, newHoliday.Type))
	if err != nil {
		return holiday.Holiday{}, fmt.Errorf("failed to create holiday: %w", err)
	}
	return h, nil
}

func (r *holidayRepositoryImpl) Update(ctx context.Context, id string, req holiday.UpdateHolidayRequest) (holiday.Holiday, error) {
	var b updateBuilder
	if req.Name != nil {
		b.set("name", strings.TrimSpace(*req.Name))
	}
	if req.Date != nil {
		b.set("date", parseDate(*req.Date))
	}
	if req.Type != nil {
		b.set("type", *req.Type)
	}

	if b.empty() {
		return r.GetByID(ctx, id)
	}

	q := GetQuerier(ctx, r.db)
	query := fmt.Sprintf(`UPDATE holidays SET %s WHERE id = %s RETURNING %s`,
		strings.Join(b.setParts, ", "), b.next(id), holidayColumns)

	h, err := scanHoliday(q.QueryRow(ctx, query, b.args...))
	if err != nil {
		return holiday.Holiday{}, mapError(err, holiday.ErrHolidayNotFound, "update holiday")
	}
	return h, nil
}

func (r *holidayRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM holidays WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return holiday.ErrHolidayNotFound
	}
	return nil
}
