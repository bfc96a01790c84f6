package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/hbfa/milestones/internal/db"
	"github.com/hbfa/milestones/internal/domain"
)

// SQLiteSalesStatusRepo implements SalesStatusRepo over sales_status.
type SQLiteSalesStatusRepo struct {
	db db.DBTX
}

func NewSQLiteSalesStatusRepo(conn db.DBTX) *SQLiteSalesStatusRepo {
	return &SQLiteSalesStatusRepo{db: conn}
}

const salesColumns = `project_id, contract_unit_number, building_id, status_key, status_label, status_color, status_date, updated_at`

func (r *SQLiteSalesStatusRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.SalesStatus, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+salesColumns+` FROM sales_status WHERE project_id = ? ORDER BY contract_unit_number`, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing sales status: %w", err)
	}
	defer rows.Close()

	var out []*domain.SalesStatus
	for rows.Next() {
		s, err := scanSalesStatus(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sales status: %w", err)
	}
	return out, nil
}

func (r *SQLiteSalesStatusRepo) Get(ctx context.Context, projectID, contractUnitNumber string) (*domain.SalesStatus, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+salesColumns+` FROM sales_status WHERE project_id = ? AND contract_unit_number = ?`, projectID, contractUnitNumber)
	s, err := scanSalesStatus(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("sales status %s/%s: %w", projectID, contractUnitNumber, ErrNotFound)
	}
	return s, err
}

// Upsert replaces the status for (project, contract unit). A zero UpdatedAt
// is stamped with the current time.
func (r *SQLiteSalesStatusRepo) Upsert(ctx context.Context, s *domain.SalesStatus) error {
	if s.UpdatedAt.IsZero() {
		s.UpdatedAt = time.Now().UTC().Truncate(time.Second)
	}
	query := `INSERT INTO sales_status (` + salesColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(project_id, contract_unit_number) DO UPDATE SET
			building_id = excluded.building_id,
			status_key = excluded.status_key,
			status_label = excluded.status_label,
			status_color = excluded.status_color,
			status_date = excluded.status_date,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		s.ProjectID,
		s.ContractUnitNumber,
		s.BuildingID,
		s.StatusKey,
		s.StatusLabel,
		s.StatusColor,
		s.StatusDate,
		formatTimestamp(s.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("upserting sales status %s/%s: %w", s.ProjectID, s.ContractUnitNumber, err)
	}
	return nil
}

func scanSalesStatus(sc scanner) (*domain.SalesStatus, error) {
	var (
		s         domain.SalesStatus
		updatedAt string
	)
	err := sc.Scan(&s.ProjectID, &s.ContractUnitNumber, &s.BuildingID, &s.StatusKey, &s.StatusLabel, &s.StatusColor, &s.StatusDate, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning sales status: %w", err)
	}
	s.UpdatedAt = parseTimestamp(updatedAt)
	return &s, nil
}
