package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hbfa/milestones/internal/db"
	"github.com/hbfa/milestones/internal/domain"
)

// SQLiteUnitRepo implements UnitRepo over the units inventory table.
type SQLiteUnitRepo struct {
	db db.DBTX
}

func NewSQLiteUnitRepo(conn db.DBTX) *SQLiteUnitRepo {
	return &SQLiteUnitRepo{db: conn}
}

const unitColumns = `project_id, building_id, unit_number, plan_type, plan_sf, address, bedrooms, bathrooms, region`

func (r *SQLiteUnitRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.Unit, error) {
	return r.list(ctx, `SELECT `+unitColumns+` FROM units WHERE project_id = ? ORDER BY building_id, unit_number`, projectID)
}

func (r *SQLiteUnitRepo) ListByBuilding(ctx context.Context, projectID, buildingID string) ([]*domain.Unit, error) {
	return r.list(ctx, `SELECT `+unitColumns+` FROM units WHERE project_id = ? AND building_id = ? ORDER BY unit_number`, projectID, buildingID)
}

func (r *SQLiteUnitRepo) Get(ctx context.Context, projectID, unitNumber string) (*domain.Unit, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+unitColumns+` FROM units WHERE project_id = ? AND unit_number = ?`, projectID, unitNumber)
	u, err := scanUnit(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("unit %s/%s: %w", projectID, unitNumber, ErrNotFound)
	}
	return u, err
}

func (r *SQLiteUnitRepo) Upsert(ctx context.Context, u *domain.Unit) error {
	query := `INSERT INTO units (` + unitColumns + `, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(project_id, unit_number) DO UPDATE SET
			building_id = excluded.building_id,
			plan_type = excluded.plan_type,
			plan_sf = excluded.plan_sf,
			address = excluded.address,
			bedrooms = excluded.bedrooms,
			bathrooms = excluded.bathrooms,
			region = excluded.region,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		u.ProjectID,
		u.BuildingID,
		u.UnitNumber,
		u.PlanType,
		nullableFloat(u.PlanSF),
		u.Address,
		nullableFloat(u.Bedrooms),
		nullableFloat(u.Bathrooms),
		u.Region,
		nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("upserting unit %s/%s: %w", u.ProjectID, u.UnitNumber, err)
	}
	return nil
}

func (r *SQLiteUnitRepo) list(ctx context.Context, query string, args ...any) ([]*domain.Unit, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing units: %w", err)
	}
	defer rows.Close()

	var units []*domain.Unit
	for rows.Next() {
		u, err := scanUnit(rows)
		if err != nil {
			return nil, err
		}
		units = append(units, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating units: %w", err)
	}
	return units, nil
}

func scanUnit(s scanner) (*domain.Unit, error) {
	var (
		u                       domain.Unit
		planSF, beds, bathrooms sql.NullFloat64
	)
	err := s.Scan(&u.ProjectID, &u.BuildingID, &u.UnitNumber, &u.PlanType, &planSF, &u.Address, &beds, &bathrooms, &u.Region)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning unit: %w", err)
	}
	u.PlanSF = floatPtr(planSF)
	u.Bedrooms = floatPtr(beds)
	u.Bathrooms = floatPtr(bathrooms)
	return &u, nil
}
