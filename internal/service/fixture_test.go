package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/hbfa/milestones/internal/db"
	"github.com/hbfa/milestones/internal/repository"
	"github.com/hbfa/milestones/internal/template"
	"github.com/hbfa/milestones/internal/testutil"
)

type fixture struct {
	db         *sql.DB
	uow        db.UnitOfWork
	milestones *repository.SQLiteMilestoneRepo
	units      *repository.SQLiteUnitRepo
	sales      *repository.SQLiteSalesStatusRepo
	holidays   *repository.SQLiteHolidayRepo
	registry   *template.Registry
	observer   *recordingObserver
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	return &fixture{
		db:         database,
		uow:        testutil.NewTestUoW(database),
		milestones: repository.NewSQLiteMilestoneRepo(database),
		units:      repository.NewSQLiteUnitRepo(database),
		sales:      repository.NewSQLiteSalesStatusRepo(database),
		holidays:   repository.NewSQLiteHolidayRepo(database),
		registry:   template.NewRegistry(),
		observer:   &recordingObserver{},
	}
}

func (f *fixture) milestoneService(uow db.UnitOfWork) MilestoneService {
	if uow == nil {
		uow = f.uow
	}
	return NewMilestoneService(f.milestones, f.units, f.holidays, f.registry, uow, f.observer)
}

func (f *fixture) timelineService() TimelineService {
	return NewTimelineService(f.milestones, f.units, f.sales, f.holidays, f.registry, f.observer)
}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recordingObserver) last() UseCaseEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.events) == 0 {
		return UseCaseEvent{}
	}
	return r.events[len(r.events)-1]
}
