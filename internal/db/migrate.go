package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. It is safe to run repeatedly.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ... ADD COLUMN is re-run on every start.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := migrateBackfillRecordType(db); err != nil {
		return fmt.Errorf("backfilling milestone record types: %w", err)
	}
	return nil
}

// migrateBackfillRecordType tags milestone rows written before the type
// column existed. The building item is recognised by its sort key.
func migrateBackfillRecordType(db *sql.DB) error {
	if _, err := db.Exec(`UPDATE milestones SET type = 'building' WHERE type = '' AND sk = '#building'`); err != nil {
		return fmt.Errorf("tagging building rows: %w", err)
	}
	if _, err := db.Exec(`UPDATE milestones SET type = 'unit', unit_number = sk WHERE type = '' AND sk <> '#building'`); err != nil {
		return fmt.Errorf("tagging unit rows: %w", err)
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS milestones (
		pk          TEXT NOT NULL,
		sk          TEXT NOT NULL,
		project_id  TEXT NOT NULL,
		building_id TEXT NOT NULL,
		unit_number TEXT NOT NULL DEFAULT '',
		data        TEXT NOT NULL DEFAULT '{}',
		updated_at  TEXT NOT NULL,
		PRIMARY KEY (pk, sk)
	)`,

	`ALTER TABLE milestones ADD COLUMN type TEXT NOT NULL DEFAULT ''`,

	`CREATE TABLE IF NOT EXISTS units (
		project_id  TEXT NOT NULL,
		unit_number TEXT NOT NULL,
		building_id TEXT NOT NULL DEFAULT '',
		plan_type   TEXT NOT NULL DEFAULT '',
		plan_sf     REAL,
		address     TEXT NOT NULL DEFAULT '',
		bedrooms    REAL,
		bathrooms   REAL,
		region      TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (project_id, unit_number)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_units_project_building ON units(project_id, building_id)`,

	`ALTER TABLE units ADD COLUMN updated_at TEXT NOT NULL DEFAULT ''`,

	`CREATE TABLE IF NOT EXISTS sales_status (
		project_id           TEXT NOT NULL,
		contract_unit_number TEXT NOT NULL,
		building_id          TEXT NOT NULL DEFAULT '',
		status_key           TEXT NOT NULL,
		status_label         TEXT NOT NULL DEFAULT '',
		status_color         TEXT NOT NULL DEFAULT '#4b5563',
		status_date          TEXT NOT NULL DEFAULT '',
		updated_at           TEXT NOT NULL,
		PRIMARY KEY (project_id, contract_unit_number)
	)`,

	// project_id '' holds holidays shared by every project.
	`CREATE TABLE IF NOT EXISTS holidays (
		project_id TEXT NOT NULL DEFAULT '',
		date       TEXT NOT NULL,
		name       TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (project_id, date)
	)`,
}
