package service

import (
	"context"
	"fmt"
	"time"

	"github.com/hbfa/milestones/internal/contract"
	"github.com/hbfa/milestones/internal/domain"
	"github.com/hbfa/milestones/internal/repository"
)

type holidayService struct {
	holidays repository.HolidayRepo
	observer UseCaseObserver
}

func NewHolidayService(holidays repository.HolidayRepo, observers ...UseCaseObserver) HolidayService {
	return &holidayService{holidays: holidays, observer: useCaseObserverOrNoop(observers)}
}

func (s *holidayService) List(ctx context.Context, projectID string) ([]domain.Holiday, error) {
	if projectID == "" {
		return nil, contract.MissingParameter("project_id is required")
	}
	items, err := s.holidays.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing holidays for %s: %w", projectID, err)
	}
	if items == nil {
		items = []domain.Holiday{}
	}
	return items, nil
}

func (s *holidayService) Dates(ctx context.Context, projectID string) (domain.HolidaySet, error) {
	if projectID == "" {
		return nil, contract.MissingParameter("project_id is required")
	}
	return holidaySet(ctx, s.holidays, projectID)
}

// Add records a holiday. An empty ProjectID makes it shared by all projects.
func (s *holidayService) Add(ctx context.Context, h domain.Holiday) (err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"project": h.ProjectID, "date": h.Date}
	defer observe(ctx, s.observer, "add-holiday", startedAt, fields, &err)

	if h.Date == "" {
		return contract.MissingParameter("date is required")
	}
	if !isISODate(h.Date) {
		return contract.InvalidField("date %q is not a YYYY-MM-DD date", h.Date)
	}
	if err = s.holidays.Upsert(ctx, h); err != nil {
		return fmt.Errorf("adding holiday %s: %w", h.Date, err)
	}
	return nil
}

func (s *holidayService) Remove(ctx context.Context, projectID, date string) (err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"project": projectID, "date": date}
	defer observe(ctx, s.observer, "remove-holiday", startedAt, fields, &err)

	if date == "" {
		return contract.MissingParameter("date is required")
	}
	return s.holidays.Delete(ctx, projectID, date)
}
