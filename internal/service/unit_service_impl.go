package service

import (
	"context"
	"fmt"
	"time"

	"github.com/hbfa/milestones/internal/contract"
	"github.com/hbfa/milestones/internal/db"
	"github.com/hbfa/milestones/internal/domain"
	"github.com/hbfa/milestones/internal/importer"
	"github.com/hbfa/milestones/internal/repository"
)

type unitService struct {
	units    repository.UnitRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewUnitService(units repository.UnitRepo, uow db.UnitOfWork, observers ...UseCaseObserver) UnitService {
	return &unitService{units: units, uow: uow, observer: useCaseObserverOrNoop(observers)}
}

func (s *unitService) ListByProject(ctx context.Context, projectID string) (*UnitListing, error) {
	if projectID == "" {
		return nil, contract.MissingParameter("project_id is required")
	}

	for _, candidate := range projectCandidates(projectID) {
		units, err := s.units.ListByProject(ctx, candidate)
		if err != nil {
			return nil, fmt.Errorf("listing units for %s: %w", candidate, err)
		}
		if len(units) > 0 {
			return &UnitListing{ProjectID: projectID, ResolvedProjectID: candidate, Units: units}, nil
		}
	}
	return &UnitListing{ProjectID: projectID, Units: []*domain.Unit{}}, nil
}

func (s *unitService) ListByBuilding(ctx context.Context, projectID, buildingID string) ([]*domain.Unit, error) {
	if projectID == "" || buildingID == "" {
		return nil, contract.MissingParameter("Missing required parameters")
	}
	units, err := s.units.ListByBuilding(ctx, projectID, buildingID)
	if err != nil {
		return nil, fmt.Errorf("listing units for %s/%s: %w", projectID, buildingID, err)
	}
	if units == nil {
		units = []*domain.Unit{}
	}
	return units, nil
}

func (s *unitService) Import(ctx context.Context, filePath string) (*contract.ImportSummary, error) {
	schema, err := importer.LoadImportSchema(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.ImportFromSchema(ctx, schema)
}

func (s *unitService) ImportFromSchema(ctx context.Context, schema *importer.ImportSchema) (summary *contract.ImportSummary, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"project": schema.ProjectID}
	defer observe(ctx, s.observer, "import-inventory", startedAt, fields, &err)

	if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	batch, err := importer.Convert(schema)
	if err != nil {
		return nil, fmt.Errorf("converting import schema: %w", err)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txUnits := repository.NewSQLiteUnitRepo(tx)
		txHolidays := repository.NewSQLiteHolidayRepo(tx)
		txSales := repository.NewSQLiteSalesStatusRepo(tx)

		for _, u := range batch.Units {
			if err := txUnits.Upsert(ctx, u); err != nil {
				return fmt.Errorf("importing unit %q: %w", u.UnitNumber, err)
			}
		}
		for _, h := range batch.Holidays {
			if err := txHolidays.Upsert(ctx, h); err != nil {
				return fmt.Errorf("importing holiday %s: %w", h.Date, err)
			}
		}
		for i := range batch.Sales {
			if err := txSales.Upsert(ctx, &batch.Sales[i]); err != nil {
				return fmt.Errorf("importing sales status for %q: %w", batch.Sales[i].ContractUnitNumber, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	summary = &contract.ImportSummary{
		Units:    len(batch.Units),
		Holidays: len(batch.Holidays),
		Sales:    len(batch.Sales),
	}
	fields["units"] = summary.Units
	fields["holidays"] = summary.Holidays
	fields["sales"] = summary.Sales
	return summary, nil
}
