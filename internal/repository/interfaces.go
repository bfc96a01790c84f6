package repository

import (
	"context"
	"errors"

	"github.com/hbfa/milestones/internal/domain"
)

// ErrNotFound is returned by point lookups that match no row.
var ErrNotFound = errors.New("not found")

type MilestoneRepo interface {
	Get(ctx context.Context, pk, sk string) (*domain.MilestoneRecord, error)
	QueryPartition(ctx context.Context, pk string) ([]*domain.MilestoneRecord, error)
	Put(ctx context.Context, r *domain.MilestoneRecord) error
}

type UnitRepo interface {
	ListByProject(ctx context.Context, projectID string) ([]*domain.Unit, error)
	ListByBuilding(ctx context.Context, projectID, buildingID string) ([]*domain.Unit, error)
	Get(ctx context.Context, projectID, unitNumber string) (*domain.Unit, error)
	Upsert(ctx context.Context, u *domain.Unit) error
}

type SalesStatusRepo interface {
	ListByProject(ctx context.Context, projectID string) ([]*domain.SalesStatus, error)
	Get(ctx context.Context, projectID, contractUnitNumber string) (*domain.SalesStatus, error)
	Upsert(ctx context.Context, s *domain.SalesStatus) error
}

type HolidayRepo interface {
	// ListByProject returns the project's holidays plus the shared ones,
	// ordered by date.
	ListByProject(ctx context.Context, projectID string) ([]domain.Holiday, error)
	Upsert(ctx context.Context, h domain.Holiday) error
	Delete(ctx context.Context, projectID, date string) error
}
