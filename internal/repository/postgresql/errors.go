package postgresql

import (
	"errors"
	"fmt"
	"time"

	"github.com/hris-core/hris-backend-go/internal/domain/employee"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// mapError translates driver errors into domain errors. pgx.ErrNoRows becomes
// notFound and a foreign key violation means the referenced employee is gone.
func mapError(err error, notFound error, action string) error {
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return notFound
	case pgErrorCode(err) == foreignKeyViolation:
		return employee.ErrEmployeeReference
	default:
		return fmt.Errorf("failed to %s: %w", action, err)
	}
}

// updateBuilder collects the SET clause of a partial update.
type updateBuilder struct {
	setParts []string
	args     []interface{}
}

func (b *updateBuilder) set(column string, value interface{}) {
	b.args = append(b.args, value)
	b.setParts = append(b.setParts, fmt.Sprintf("%s = $%d", column, len(b.args)))
}

func (b *updateBuilder) empty() bool {
	return len(b.setParts) == 0
}

// next returns the placeholder for the argument appended after the SET values.
func (b *updateBuilder) next(value interface{}) string {
	b.args = append(b.args, value)
	return fmt.Sprintf("$%d", len(b.args))
}

// parseDate and parseTimestamp accept values already checked by request
// validation.
func parseDate(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func parseTimestamp(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func optionalDate(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t := parseDate(*s)
	return &t
}
