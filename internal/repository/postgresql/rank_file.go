package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/hris-core/hris-backend-go/internal/domain/rankfile"
	"github.com/hris-core/hris-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const rankFileColumns = `id, employee_id, type, title, description, date, score`

type rankFileRepositoryImpl struct {
	db *database.DB
}

func NewRankFileRepository(db *database.DB) rankfile.RankFileRepository {
	return &rankFileRepositoryImpl{db: db}
}

func scanRankFile(row pgx.Row) (rankfile.RankFile, error) {
	var rf rankfile.RankFile
	err := row.Scan(&rf.ID, &rf.EmployeeID, &rf.Type, &rf.Title, &rf.Description, &rf.Date, &rf.Score)
	return rf, err
}

func (r *rankFileRepositoryImpl) List(ctx context.Context, filter rankfile.RankFileFilter) ([]rankfile.RankFile, error) {
	q := GetQuerier(ctx, r.db)

	var (
		where []string
		args  []interface{}
	)
	if filter.EmployeeID != "" {
		args = append(args, filter.EmployeeID)
		where = append(where, fmt.Sprintf("employee_id = $%d", len(args)))
	}
	if filter.Type != "" {
		args = append(args, string(filter.Type))
		where = append(where, fmt.Sprintf("type = $%d", len(args)))
	}

	query := `SELECT ` + rankFileColumns + ` FROM rank_files`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY date DESC NULLS LAST`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list rank files: %w", err)
	}
	defer rows.Close()

	entries := make([]rankfile.RankFile, 0)
	for rows.Next() {
		rf, err := scanRankFile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan rank file: %w", err)
		}
		entries = append(entries, rf)
	}
	return entries, rows.Err()
}

func (r *rankFileRepositoryImpl) GetByID(ctx context.Context, id string) (rankfile.RankFile, error) {
	q := GetQuerier(ctx, r.db)

	rf, err := scanRankFile(q.QueryRow(ctx, `SELECT `+rankFileColumns+` FROM rank_files WHERE id = $1`, id))
	if err != nil {
		return rankfile.RankFile{}, mapError(err, rankfile.ErrRankFileNotFound, "get rank file")
	}
	return rf, nil
}

func (r *rankFileRepositoryImpl) Create(ctx context.Context, entry rankfile.RankFile) (rankfile.RankFile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO rank_files (employee_id, type, title, description, date, score)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + rankFileColumns

	rf, err := scanRankFile(q.QueryRow(ctx, query,
		entry.EmployeeID, string(entry.Type), entry.Title, entry.Description, entry.Date, entry.Score,
	))
	if err != nil {
		return rankfile.RankFile{}, mapError(err, rankfile.ErrRankFileNotFound, "create rank file")
	}
	return rf, nil
}

func (r *rankFileRepositoryImpl) Update(ctx context.Context, id string, req rankfile.UpdateRankFileRequest) (rankfile.RankFile, error) {
	var b updateBuilder
	if req.Type != nil {
		b.set("type", string(*req.Type))
	}
	if req.Title != nil {
		b.set("title", strings.TrimSpace(*req.Title))
	}
	if req.Description != nil {
		b.set("description", *req.Description)
	}
	if req.Date != nil {
		b.set("date", parseDate(*req.Date))
	}
	if req.Score != nil {
		b.set("score", *req.Score)
	}

	if b.empty() {
		return r.GetByID(ctx, id)
	}

	q := GetQuerier(ctx, r.db)
	query := fmt.Sprintf(`UPDATE rank_files SET %s WHERE id = %s RETURNING %s`,
		strings.Join(b.setParts, ", "), b.next(id), rankFileColumns)

	rf, err := scanRankFile(q.QueryRow(ctx, query, b.args...))
	if err != nil {
		return rankfile.RankFile{}, mapError(err, rankfile.ErrRankFileNotFound, "update rank file")
	}
	return rf, nil
}

func (r *rankFileRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM rank_files WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete rank file: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return rankfile.ErrRankFileNotFound
	}
	return nil
}
