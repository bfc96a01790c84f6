package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/hbfa/milestones/internal/contract"
	"github.com/hbfa/milestones/internal/db"
	"github.com/hbfa/milestones/internal/domain"
	"github.com/hbfa/milestones/internal/repository"
	"github.com/hbfa/milestones/internal/schedule"
	"github.com/hbfa/milestones/internal/template"
)

const msgMissingParameters = "Missing required parameters"

type milestoneService struct {
	milestones repository.MilestoneRepo
	units      repository.UnitRepo
	holidays   repository.HolidayRepo
	registry   *template.Registry
	uow        db.UnitOfWork
	observer   UseCaseObserver
}

func NewMilestoneService(
	milestones repository.MilestoneRepo,
	units repository.UnitRepo,
	holidays repository.HolidayRepo,
	registry *template.Registry,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) MilestoneService {
	return &milestoneService{
		milestones: milestones,
		units:      units,
		holidays:   holidays,
		registry:   registry,
		uow:        uow,
		observer:   useCaseObserverOrNoop(observers),
	}
}

func (s *milestoneService) BuildingRecords(ctx context.Context, projectID, buildingID string) ([]*domain.MilestoneRecord, error) {
	if projectID == "" || buildingID == "" {
		return nil, contract.MissingParameter(msgMissingParameters)
	}
	records, err := s.milestones.QueryPartition(ctx, domain.PartitionKey(projectID, buildingID))
	if err != nil {
		return nil, fmt.Errorf("querying milestones for %s/%s: %w", projectID, buildingID, err)
	}
	if records == nil {
		records = []*domain.MilestoneRecord{}
	}
	return records, nil
}

func (s *milestoneService) GetBuilding(ctx context.Context, projectID, buildingID string) (*contract.BuildingView, error) {
	if projectID == "" || buildingID == "" {
		return nil, contract.MissingParameter(msgMissingParameters)
	}
	return s.loadBuilding(ctx, s.milestones, projectID, buildingID, projectCandidates(projectID))
}

// loadBuilding returns the first candidate partition that holds a building
// payload. Nothing found is an empty schedule, not an error.
func (s *milestoneService) loadBuilding(ctx context.Context, repo repository.MilestoneRepo, projectID, buildingID string, candidates []string) (*contract.BuildingView, error) {
	stageKeys := s.registry.StageKeys()
	for _, candidate := range candidates {
		records, err := repo.QueryPartition(ctx, domain.PartitionKey(candidate, buildingID))
		if err != nil {
			return nil, fmt.Errorf("loading building %s/%s: %w", candidate, buildingID, err)
		}
		payload, ok := schedule.PickBuildingPayload(records)
		if !ok {
			continue
		}
		return &contract.BuildingView{
			ProjectID:         projectID,
			ResolvedProjectID: candidate,
			BuildingID:        buildingID,
			Found:             true,
			Schedule:          schedule.NormalizeBuilding(payload, stageKeys),
		}, nil
	}
	return &contract.BuildingView{
		ProjectID:         projectID,
		ResolvedProjectID: projectID,
		BuildingID:        buildingID,
		Schedule:          schedule.NormalizeBuilding(nil, stageKeys),
	}, nil
}

func (s *milestoneService) SaveBuilding(ctx context.Context, req contract.SaveBuildingRequest) (err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"project": req.ProjectID, "building": req.BuildingID}
	defer observe(ctx, s.observer, "save-building", startedAt, fields, &err)

	if err = req.Validate(); err != nil {
		return err
	}

	sched := schedule.NormalizeBuilding(req.Payload(), s.registry.StageKeys())
	fields["pre_kickoff"] = sched.PreKickoff

	rec := domain.NewBuildingRecord(req.ProjectID, req.BuildingID, sched.Payload(), time.Now().UTC())
	if err = s.milestones.Put(ctx, rec); err != nil {
		return fmt.Errorf("saving building %s/%s: %w", req.ProjectID, req.BuildingID, err)
	}
	return nil
}

func (s *milestoneService) UpdateStage(ctx context.Context, req contract.UpdateStageRequest) (view *contract.BuildingView, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"project": req.ProjectID, "building": req.BuildingID, "stage": req.StageKey}
	defer observe(ctx, s.observer, "update-stage", startedAt, fields, &err)

	if err = req.Validate(); err != nil {
		return nil, err
	}
	if !slices.Contains(s.registry.StageKeys(), req.StageKey) {
		return nil, contract.InvalidField("unknown stage %q", req.StageKey)
	}
	if req.Date != nil && *req.Date != "" && !isISODate(*req.Date) {
		return nil, contract.InvalidField("date %q is not a YYYY-MM-DD date", *req.Date)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txMilestones := repository.NewSQLiteMilestoneRepo(tx)
		txHolidays := repository.NewSQLiteHolidayRepo(tx)

		current, err := s.loadBuilding(ctx, txMilestones, req.ProjectID, req.BuildingID, []string{req.ProjectID})
		if err != nil {
			return err
		}

		var next domain.BuildingSchedule
		if req.Date != nil {
			next = schedule.SetStageDate(current.Schedule, req.StageKey, *req.Date)
		} else {
			holidays, err := holidaySet(ctx, txHolidays, req.ProjectID)
			if err != nil {
				return err
			}
			rows := schedule.ProjectBuilding(s.registry.Steps(domain.ScopeBuilding), current.Schedule, holidays)
			next = schedule.SetStageComplete(current.Schedule, req.StageKey, req.Complete, rows)
		}

		rec := domain.NewBuildingRecord(req.ProjectID, req.BuildingID, next.Payload(), time.Now().UTC())
		if err := txMilestones.Put(ctx, rec); err != nil {
			return fmt.Errorf("saving building %s/%s: %w", req.ProjectID, req.BuildingID, err)
		}

		current.Found = true
		current.Schedule = next
		view = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	fields["complete"] = view.Schedule.Stages[req.StageKey].Complete
	return view, nil
}

func (s *milestoneService) GetUnit(ctx context.Context, projectID, buildingID, unitNumber string) (*contract.UnitView, error) {
	if projectID == "" || buildingID == "" || unitNumber == "" {
		return nil, contract.MissingParameter(msgMissingParameters)
	}
	return s.loadUnit(ctx, projectID, buildingID, unitNumber, projectCandidates(projectID))
}

func (s *milestoneService) loadUnit(ctx context.Context, projectID, buildingID, unitNumber string, candidates []string) (*contract.UnitView, error) {
	for _, candidate := range candidates {
		rec, err := s.milestones.Get(ctx, domain.PartitionKey(candidate, buildingID), unitNumber)
		if errors.Is(err, repository.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("loading unit %s/%s/%s: %w", candidate, buildingID, unitNumber, err)
		}
		return &contract.UnitView{
			ProjectID:  candidate,
			BuildingID: buildingID,
			UnitNumber: unitNumber,
			Found:      true,
			Schedule:   schedule.NormalizeUnit(rec.UnitPayload()),
			Record:     rec,
		}, nil
	}
	return &contract.UnitView{
		ProjectID:  projectID,
		BuildingID: buildingID,
		UnitNumber: unitNumber,
		Schedule:   schedule.NormalizeUnit(nil),
	}, nil
}

// SaveUnit writes the unit schedule and, when present, its sales status in
// one transaction. A unit that inventory places in another building is
// rejected; units missing from inventory are accepted.
func (s *milestoneService) SaveUnit(ctx context.Context, req contract.SaveUnitRequest) (err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"project":  req.ProjectID,
		"building": req.BuildingID,
		"unit":     req.UnitNumber,
		"sales":    req.HasSalesStatus(),
	}
	defer observe(ctx, s.observer, "save-unit", startedAt, fields, &err)

	if err = req.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()
	sched := schedule.NormalizeUnit(req.Payload())

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txUnits := repository.NewSQLiteUnitRepo(tx)
		txMilestones := repository.NewSQLiteMilestoneRepo(tx)
		txSales := repository.NewSQLiteSalesStatusRepo(tx)

		inv, err := txUnits.Get(ctx, req.ProjectID, req.UnitNumber)
		switch {
		case errors.Is(err, repository.ErrNotFound):
		case err != nil:
			return fmt.Errorf("checking inventory for unit %s: %w", req.UnitNumber, err)
		case inv.BuildingID != "" && inv.BuildingID != req.BuildingID:
			return contract.UnitBuildingMismatch(req.UnitNumber, req.BuildingID)
		}

		rec := domain.NewUnitRecord(req.ProjectID, req.BuildingID, req.UnitNumber, sched.Payload(), now)
		if err := txMilestones.Put(ctx, rec); err != nil {
			return fmt.Errorf("saving unit %s: %w", req.UnitNumber, err)
		}

		if !req.HasSalesStatus() {
			return nil
		}
		status := contract.SalesStatusRequest{
			ProjectID:          req.ProjectID,
			BuildingID:         req.BuildingID,
			ContractUnitNumber: req.UnitNumber,
			StatusKey:          req.SalesStatus.StatusKey,
			StatusDate:         req.SalesStatus.StatusDate,
		}.Status()
		status.UpdatedAt = now
		if err := txSales.Upsert(ctx, &status); err != nil {
			return fmt.Errorf("saving sales status for unit %s: %w", req.UnitNumber, err)
		}
		return nil
	})
}

func (s *milestoneService) Projection(ctx context.Context, req contract.ProjectionRequest) (*contract.ProjectionResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	building, err := s.GetBuilding(ctx, req.ProjectID, req.BuildingID)
	if err != nil {
		return nil, err
	}
	holidays, err := holidaySet(ctx, s.holidays, building.ResolvedProjectID)
	if err != nil {
		return nil, err
	}

	dates := make([]string, 0, len(holidays))
	for d := range holidays {
		dates = append(dates, d)
	}
	slices.Sort(dates)

	resp := &contract.ProjectionResponse{
		ProjectID:         req.ProjectID,
		ResolvedProjectID: building.ResolvedProjectID,
		BuildingID:        req.BuildingID,
		Building:          building.Schedule,
		BuildingRows:      schedule.ProjectBuilding(s.registry.Steps(domain.ScopeBuilding), building.Schedule, holidays),
		BuildingTemplate:  s.registry.Source(domain.ScopeBuilding),
		Holidays:          dates,
	}

	if req.UnitNumber == "" {
		return resp, nil
	}

	candidates := domain.PrioritizeCandidates(projectCandidates(req.ProjectID), building.ResolvedProjectID)
	unit, err := s.loadUnit(ctx, req.ProjectID, req.BuildingID, req.UnitNumber, candidates)
	if err != nil {
		return nil, err
	}
	resp.UnitNumber = req.UnitNumber
	resp.Unit = &unit.Schedule
	resp.UnitRows = schedule.ProjectUnit(s.registry.Steps(domain.ScopeUnit), unit.Schedule, building.Schedule.PreKickoff, holidays)
	resp.UnitTemplate = s.registry.Source(domain.ScopeUnit)
	return resp, nil
}
