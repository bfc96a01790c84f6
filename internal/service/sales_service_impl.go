package service

import (
	"context"
	"fmt"
	"time"

	"github.com/hbfa/milestones/internal/contract"
	"github.com/hbfa/milestones/internal/domain"
	"github.com/hbfa/milestones/internal/repository"
)

type salesService struct {
	sales    repository.SalesStatusRepo
	observer UseCaseObserver
}

func NewSalesService(sales repository.SalesStatusRepo, observers ...UseCaseObserver) SalesService {
	return &salesService{sales: sales, observer: useCaseObserverOrNoop(observers)}
}

func (s *salesService) Save(ctx context.Context, req contract.SalesStatusRequest) (status *domain.SalesStatus, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"project": req.ProjectID,
		"unit":    req.ContractUnitNumber,
		"status":  req.StatusKey,
	}
	defer observe(ctx, s.observer, "save-sales-status", startedAt, fields, &err)

	if err = req.Validate(); err != nil {
		return nil, err
	}
	if req.StatusDate != "" && !isISODate(req.StatusDate) {
		return nil, contract.InvalidField("status_date %q is not a YYYY-MM-DD date", req.StatusDate)
	}

	item := req.Status()
	item.UpdatedAt = time.Now().UTC()
	if err = s.sales.Upsert(ctx, &item); err != nil {
		return nil, fmt.Errorf("saving sales status: %w", err)
	}
	return &item, nil
}

func (s *salesService) ListByProject(ctx context.Context, projectID string) ([]*domain.SalesStatus, error) {
	if projectID == "" {
		return nil, contract.MissingParameter("project_id is required")
	}
	items, err := s.sales.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing sales status for %s: %w", projectID, err)
	}
	if items == nil {
		items = []*domain.SalesStatus{}
	}
	return items, nil
}
