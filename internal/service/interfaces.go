package service

import (
	"context"

	"github.com/hbfa/milestones/internal/contract"
	"github.com/hbfa/milestones/internal/domain"
	"github.com/hbfa/milestones/internal/importer"
)

// UnitListing is a project's inventory together with the alias candidate it
// was found under.
type UnitListing struct {
	ProjectID         string
	ResolvedProjectID string
	Units             []*domain.Unit
}

type UnitService interface {
	// ListByProject tries the project's alias candidates in order and
	// returns the first non-empty inventory.
	ListByProject(ctx context.Context, projectID string) (*UnitListing, error)
	ListByBuilding(ctx context.Context, projectID, buildingID string) ([]*domain.Unit, error)
	Import(ctx context.Context, filePath string) (*contract.ImportSummary, error)
	ImportFromSchema(ctx context.Context, schema *importer.ImportSchema) (*contract.ImportSummary, error)
}

type MilestoneService interface {
	BuildingRecords(ctx context.Context, projectID, buildingID string) ([]*domain.MilestoneRecord, error)
	GetBuilding(ctx context.Context, projectID, buildingID string) (*contract.BuildingView, error)
	SaveBuilding(ctx context.Context, req contract.SaveBuildingRequest) error
	UpdateStage(ctx context.Context, req contract.UpdateStageRequest) (*contract.BuildingView, error)
	GetUnit(ctx context.Context, projectID, buildingID, unitNumber string) (*contract.UnitView, error)
	SaveUnit(ctx context.Context, req contract.SaveUnitRequest) error
	Projection(ctx context.Context, req contract.ProjectionRequest) (*contract.ProjectionResponse, error)
}

type SalesService interface {
	Save(ctx context.Context, req contract.SalesStatusRequest) (*domain.SalesStatus, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.SalesStatus, error)
}

type TimelineService interface {
	Timeline(ctx context.Context, req contract.TimelineRequest) (*contract.TimelineResponse, error)
}

type HolidayService interface {
	List(ctx context.Context, projectID string) ([]domain.Holiday, error)
	Dates(ctx context.Context, projectID string) (domain.HolidaySet, error)
	Add(ctx context.Context, h domain.Holiday) error
	Remove(ctx context.Context, projectID, date string) error
}

type ProjectService interface {
	Resolve(name string) contract.ProjectResolution
	Options() []string
}
