package schedule

import "github.com/hbfa/milestones/internal/domain"

// EffectiveBuilding is the view of s used for projection. With pre-kickoff
// set, anchor, overrides, activation and stages read as empty; the returned
// value is always a copy.
func EffectiveBuilding(s domain.BuildingSchedule) domain.BuildingSchedule {
	if !s.PreKickoff {
		return s.Clone()
	}
	return domain.BuildingSchedule{
		Overrides:    map[string]string{},
		Stages:       map[string]domain.StageEntry{},
		PreKickoff:   true,
		ProjectedCOE: s.ProjectedCOE,
	}
}

// EffectiveUnit is the unit equivalent of EffectiveBuilding, gated by the
// building's pre-kickoff flag.
func EffectiveUnit(s domain.UnitSchedule, preKickoff bool) domain.UnitSchedule {
	if !preKickoff {
		return s.Clone()
	}
	return domain.UnitSchedule{Overrides: map[string]string{}}
}
