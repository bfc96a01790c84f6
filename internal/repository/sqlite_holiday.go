package repository

import (
	"context"
	"fmt"

	"github.com/hbfa/milestones/internal/db"
	"github.com/hbfa/milestones/internal/domain"
)

// SQLiteHolidayRepo implements HolidayRepo. Rows with an empty project_id
// apply to every project.
type SQLiteHolidayRepo struct {
	db db.DBTX
}

func NewSQLiteHolidayRepo(conn db.DBTX) *SQLiteHolidayRepo {
	return &SQLiteHolidayRepo{db: conn}
}

func (r *SQLiteHolidayRepo) ListByProject(ctx context.Context, projectID string) ([]domain.Holiday, error) {
	query := `SELECT project_id, date, name FROM holidays
		WHERE project_id = ? OR project_id = ''
		ORDER BY date, project_id`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing holidays: %w", err)
	}
	defer rows.Close()

	var out []domain.Holiday
	for rows.Next() {
		var h domain.Holiday
		if err := rows.Scan(&h.ProjectID, &h.Date, &h.Name); err != nil {
			return nil, fmt.Errorf("scanning holiday: %w", err)
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating holidays: %w", err)
	}
	return out, nil
}

func (r *SQLiteHolidayRepo) Upsert(ctx context.Context, h domain.Holiday) error {
	query := `INSERT INTO holidays (project_id, date, name) VALUES (?, ?, ?)
		ON CONFLICT(project_id, date) DO UPDATE SET name = excluded.name`
	if _, err := r.db.ExecContext(ctx, query, h.ProjectID, h.Date, h.Name); err != nil {
		return fmt.Errorf("upserting holiday %s: %w", h.Date, err)
	}
	return nil
}

func (r *SQLiteHolidayRepo) Delete(ctx context.Context, projectID, date string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM holidays WHERE project_id = ? AND date = ?`, projectID, date)
	if err != nil {
		return fmt.Errorf("deleting holiday %s: %w", date, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting holiday %s: %w", date, err)
	}
	if n == 0 {
		return fmt.Errorf("holiday %s: %w", date, ErrNotFound)
	}
	return nil
}
