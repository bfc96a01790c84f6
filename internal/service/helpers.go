package service

import (
	"context"
	"fmt"
	"time"

	"github.com/hbfa/milestones/internal/domain"
	"github.com/hbfa/milestones/internal/repository"
)

// projectCandidates lists the ids to try for a project, the given name first.
func projectCandidates(projectID string) []string {
	return domain.PrioritizeCandidates(domain.ProjectAliasCandidates(projectID), projectID)
}

func isISODate(s string) bool {
	_, err := time.Parse(domain.DateLayout, s)
	return err == nil
}

// holidaySet loads the project's holidays (shared ones included) as a skip set.
func holidaySet(ctx context.Context, repo repository.HolidayRepo, projectID string) (domain.HolidaySet, error) {
	holidays, err := repo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("loading holidays for %s: %w", projectID, err)
	}
	return domain.NewHolidaySet(domain.HolidayDates(holidays)...), nil
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
