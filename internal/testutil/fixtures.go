package testutil

import (
	"github.com/hbfa/milestones/internal/domain"
)

// Unit options
type UnitOption func(*domain.Unit)

func WithPlan(planType string, sf float64) UnitOption {
	return func(u *domain.Unit) {
		u.PlanType = planType
		u.PlanSF = &sf
	}
}

func WithRooms(beds, baths float64) UnitOption {
	return func(u *domain.Unit) {
		u.Bedrooms = &beds
		u.Bathrooms = &baths
	}
}

func WithRegion(region string) UnitOption {
	return func(u *domain.Unit) {
		u.Region = region
	}
}

func NewTestUnit(projectID, buildingID, unitNumber string, opts ...UnitOption) *domain.Unit {
	u := &domain.Unit{
		ProjectID:  projectID,
		BuildingID: buildingID,
		UnitNumber: unitNumber,
		PlanType:   "Plan 1",
		Address:    unitNumber + " Test St",
	}
	for _, o := range opts {
		o(u)
	}
	return u
}

// Building schedule options
type ScheduleOption func(*domain.BuildingSchedule)

func WithOverride(key, date string) ScheduleOption {
	return func(s *domain.BuildingSchedule) {
		s.Overrides[key] = date
	}
}

func WithStage(key, date string, complete bool) ScheduleOption {
	return func(s *domain.BuildingSchedule) {
		s.Stages[key] = domain.StageEntry{Complete: complete, Date: date}
	}
}

func WithActivation(third, fourth bool) ScheduleOption {
	return func(s *domain.BuildingSchedule) {
		s.Activation = domain.Activation{Third: third, Fourth: fourth}
	}
}

func WithPreKickoff() ScheduleOption {
	return func(s *domain.BuildingSchedule) {
		s.PreKickoff = true
	}
}

func NewTestBuildingSchedule(anchor string, opts ...ScheduleOption) domain.BuildingSchedule {
	s := domain.BuildingSchedule{
		Anchor:    anchor,
		Overrides: map[string]string{},
		Stages:    map[string]domain.StageEntry{},
	}
	for _, o := range opts {
		o(&s)
	}
	return s
}

func NewTestSalesStatus(projectID, unitNumber, statusKey, date string) *domain.SalesStatus {
	return &domain.SalesStatus{
		ProjectID:          projectID,
		ContractUnitNumber: unitNumber,
		StatusKey:          statusKey,
		StatusDate:         date,
	}
}
