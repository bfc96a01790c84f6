package service

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/hbfa/milestones/internal/contract"
	"github.com/hbfa/milestones/internal/domain"
	"github.com/hbfa/milestones/internal/repository"
	"github.com/hbfa/milestones/internal/schedule"
	"github.com/hbfa/milestones/internal/template"
)

type timelineService struct {
	milestones repository.MilestoneRepo
	units      repository.UnitRepo
	sales      repository.SalesStatusRepo
	holidays   repository.HolidayRepo
	registry   *template.Registry
	observer   UseCaseObserver
}

func NewTimelineService(
	milestones repository.MilestoneRepo,
	units repository.UnitRepo,
	sales repository.SalesStatusRepo,
	holidays repository.HolidayRepo,
	registry *template.Registry,
	observers ...UseCaseObserver,
) TimelineService {
	return &timelineService{
		milestones: milestones,
		units:      units,
		sales:      sales,
		holidays:   holidays,
		registry:   registry,
		observer:   useCaseObserverOrNoop(observers),
	}
}

// Timeline joins a building's milestone records with its inventory units and
// their sales status. Units and sales are only read when IncludeUnits is set;
// records_scanned counts the milestone and sales records read.
func (s *timelineService) Timeline(ctx context.Context, req contract.TimelineRequest) (resp *contract.TimelineResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"project": req.ProjectID, "building": req.BuildingID}
	defer observe(ctx, s.observer, "timeline", startedAt, fields, &err)

	if err = req.Validate(); err != nil {
		return nil, err
	}

	resp = contract.NewTimelineResponse(req.ProjectID, req.BuildingID, time.Now().UTC())
	if req.BuildingID == "" {
		return resp, nil
	}

	records, err := s.milestones.QueryPartition(ctx, domain.PartitionKey(req.ProjectID, req.BuildingID))
	if err != nil {
		return nil, fmt.Errorf("querying milestones for %s/%s: %w", req.ProjectID, req.BuildingID, err)
	}
	bySK := make(map[string]*domain.MilestoneRecord, len(records))
	for _, r := range records {
		bySK[r.SK] = r
	}
	scanned := len(records)

	var units []*domain.Unit
	if req.IncludeUnits {
		units, err = s.units.ListByBuilding(ctx, req.ProjectID, req.BuildingID)
		if err != nil {
			return nil, fmt.Errorf("listing units for %s/%s: %w", req.ProjectID, req.BuildingID, err)
		}
		sales, err := s.sales.ListByProject(ctx, req.ProjectID)
		if err != nil {
			return nil, fmt.Errorf("listing sales status for %s: %w", req.ProjectID, err)
		}
		scanned += len(sales)

		resp.Units, resp.SalesSync.Warnings = joinUnits(units, bySK, sales, req.BuildingID)
		resp.SalesSync.UnitsMatched = len(resp.Units)
	}
	resp.SalesSync.RecordsScanned = scanned
	fields["records_scanned"] = scanned
	fields["units_matched"] = resp.SalesSync.UnitsMatched

	if req.IncludeEvents {
		holidays, err := holidaySet(ctx, s.holidays, req.ProjectID)
		if err != nil {
			return nil, err
		}
		resp.Events = s.events(records, units, bySK, holidays)
	}
	return resp, nil
}

func joinUnits(units []*domain.Unit, bySK map[string]*domain.MilestoneRecord, sales []*domain.SalesStatus, buildingID string) ([]contract.TimelineUnit, []string) {
	warnings := []string{}
	salesByUnit := make(map[string]*domain.SalesStatus, len(sales))
	for _, st := range sales {
		salesByUnit[st.ContractUnitNumber] = st
	}

	inBuilding := make(map[string]bool, len(units))
	out := make([]contract.TimelineUnit, 0, len(units))
	for _, u := range units {
		inBuilding[u.UnitNumber] = true

		row := contract.TimelineUnit{Unit: *u, Milestones: map[string]any{}}
		if rec, ok := bySK[u.UnitNumber]; ok {
			if payload := rec.UnitPayload(); payload != nil {
				row.Milestones = payload
			}
		}
		if st, ok := salesByUnit[u.UnitNumber]; ok {
			row.SalesStatus = &contract.TimelineSalesStatus{
				StatusKey:   st.StatusKey,
				StatusLabel: st.StatusLabel,
				StatusColor: st.StatusColor,
				StatusDate:  st.StatusDate,
			}
			if _, known := domain.LookupStatus(st.StatusKey); !known {
				warnings = append(warnings, fmt.Sprintf("unit %s has unknown sales status %q", u.UnitNumber, st.StatusKey))
			}
		}
		out = append(out, row)
	}

	for _, st := range sales {
		if st.BuildingID == buildingID && !inBuilding[st.ContractUnitNumber] {
			warnings = append(warnings, fmt.Sprintf("sales status for unit %s has no inventory record in building %s", st.ContractUnitNumber, buildingID))
		}
	}
	return out, warnings
}

// events lists every dated milestone of the building and, when units were
// loaded, of each unit with a stored schedule, ordered by date.
func (s *timelineService) events(records []*domain.MilestoneRecord, units []*domain.Unit, bySK map[string]*domain.MilestoneRecord, holidays domain.HolidaySet) []contract.TimelineEvent {
	events := []contract.TimelineEvent{}

	payload, _ := schedule.PickBuildingPayload(records)
	building := schedule.NormalizeBuilding(payload, s.registry.StageKeys())
	for _, row := range schedule.ProjectBuilding(s.registry.Steps(domain.ScopeBuilding), building, holidays) {
		if row.Active && row.Computed != "" {
			events = append(events, contract.TimelineEvent{Scope: domain.ScopeBuilding, Key: row.Key, Label: row.Label, Date: row.Computed})
		}
	}

	unitSteps := s.registry.Steps(domain.ScopeUnit)
	for _, u := range units {
		rec, ok := bySK[u.UnitNumber]
		if !ok {
			continue
		}
		unit := schedule.NormalizeUnit(rec.UnitPayload())
		for _, row := range schedule.ProjectUnit(unitSteps, unit, building.PreKickoff, holidays) {
			if row.Active && row.Computed != "" {
				events = append(events, contract.TimelineEvent{
					Scope:      domain.ScopeUnit,
					UnitNumber: u.UnitNumber,
					Key:        row.Key,
					Label:      row.Label,
					Date:       row.Computed,
				})
			}
		}
	}

	slices.SortStableFunc(events, func(a, b contract.TimelineEvent) int {
		return cmp.Compare(a.Date, b.Date)
	})
	return events
}
