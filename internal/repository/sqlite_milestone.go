package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hbfa/milestones/internal/db"
	"github.com/hbfa/milestones/internal/domain"
)

// SQLiteMilestoneRepo implements MilestoneRepo over the milestones table.
type SQLiteMilestoneRepo struct {
	db db.DBTX
}

func NewSQLiteMilestoneRepo(conn db.DBTX) *SQLiteMilestoneRepo {
	return &SQLiteMilestoneRepo{db: conn}
}

const milestoneColumns = `pk, sk, project_id, building_id, unit_number, type, data, updated_at`

func (r *SQLiteMilestoneRepo) Get(ctx context.Context, pk, sk string) (*domain.MilestoneRecord, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+milestoneColumns+` FROM milestones WHERE pk = ? AND sk = ?`, pk, sk)
	rec, err := scanMilestone(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("milestone %s/%s: %w", pk, sk, ErrNotFound)
	}
	return rec, err
}

func (r *SQLiteMilestoneRepo) QueryPartition(ctx context.Context, pk string) ([]*domain.MilestoneRecord, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+milestoneColumns+` FROM milestones WHERE pk = ? ORDER BY sk`, pk)
	if err != nil {
		return nil, fmt.Errorf("querying milestones: %w", err)
	}
	defer rows.Close()

	var out []*domain.MilestoneRecord
	for rows.Next() {
		rec, err := scanMilestone(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating milestones: %w", err)
	}
	return out, nil
}

// Put inserts or replaces the record at (pk, sk). A zero UpdatedAt is
// stamped with the current time.
func (r *SQLiteMilestoneRepo) Put(ctx context.Context, rec *domain.MilestoneRecord) error {
	if rec.UpdatedAt.IsZero() {
		rec.UpdatedAt = time.Now().UTC().Truncate(time.Second)
	}
	data := rec.Data
	if data == nil {
		data = map[string]any{}
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encoding milestone data: %w", err)
	}

	query := `INSERT INTO milestones (` + milestoneColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(pk, sk) DO UPDATE SET
			project_id = excluded.project_id,
			building_id = excluded.building_id,
			unit_number = excluded.unit_number,
			type = excluded.type,
			data = excluded.data,
			updated_at = excluded.updated_at`
	_, err = r.db.ExecContext(ctx, query,
		rec.PK,
		rec.SK,
		rec.ProjectID,
		rec.BuildingID,
		rec.UnitNumber,
		string(rec.Type),
		string(raw),
		formatTimestamp(rec.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("writing milestone %s/%s: %w", rec.PK, rec.SK, err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanMilestone(s scanner) (*domain.MilestoneRecord, error) {
	var (
		rec       domain.MilestoneRecord
		typ       string
		raw       string
		updatedAt string
	)
	if err := s.Scan(&rec.PK, &rec.SK, &rec.ProjectID, &rec.BuildingID, &rec.UnitNumber, &typ, &raw, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning milestone: %w", err)
	}
	rec.Type = domain.RecordType(typ)
	rec.UpdatedAt = parseTimestamp(updatedAt)

	// Data is free-form; a corrupt blob reads as an empty object.
	rec.Data = map[string]any{}
	if raw != "" {
		var data map[string]any
		if err := json.Unmarshal([]byte(raw), &data); err == nil && data != nil {
			rec.Data = data
		}
	}
	return &rec, nil
}
