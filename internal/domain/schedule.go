package domain

import "maps"

// Activation holds the named switches that gate conditional steps.
type Activation struct {
	Third  bool `json:"third"`
	Fourth bool `json:"fourth"`
}

// Enabled reports whether the named flag is on. Unknown names are off.
func (a Activation) Enabled(name string) bool {
	switch name {
	case FlagThird:
		return a.Third
	case FlagFourth:
		return a.Fourth
	default:
		return false
	}
}

// StageEntry is the attested completion state of an early-stage milestone.
type StageEntry struct {
	Complete bool   `json:"complete"`
	Date     string `json:"date"`
}

// BuildingSchedule is the normalized per-building milestone state.
type BuildingSchedule struct {
	Anchor       string                `json:"anchor"`
	Overrides    map[string]string     `json:"overrides"`
	Activation   Activation            `json:"activation"`
	Stages       map[string]StageEntry `json:"stages"`
	PreKickoff   bool                  `json:"pre_kickoff"`
	ProjectedCOE string                `json:"projected_coe"`
}

// Clone returns a deep copy so callers can derive new state without
// touching the receiver.
func (b BuildingSchedule) Clone() BuildingSchedule {
	out := b
	out.Overrides = cloneStrings(b.Overrides)
	out.Stages = make(map[string]StageEntry, len(b.Stages))
	maps.Copy(out.Stages, b.Stages)
	return out
}

// Payload renders the schedule in its stored shape. Stages are written as
// {complete, date|null} and attested dates are mirrored into stage_dates for
// older readers.
func (b BuildingSchedule) Payload() map[string]any {
	overrides := make(map[string]any, len(b.Overrides))
	for k, v := range b.Overrides {
		overrides[k] = v
	}
	out := map[string]any{
		"anchor":    b.Anchor,
		"overrides": overrides,
		"activation": map[string]any{
			FlagThird:  b.Activation.Third,
			FlagFourth: b.Activation.Fourth,
		},
		"pre_kickoff": b.PreKickoff,
	}

	stages := map[string]any{}
	stageDates := map[string]any{}
	for key, entry := range b.Stages {
		var date any
		if entry.Date != "" {
			date = entry.Date
		}
		stages[key] = map[string]any{"complete": entry.Complete, "date": date}
		if entry.Complete && entry.Date != "" {
			stageDates[key] = entry.Date
		}
	}
	if len(stages) > 0 {
		out["stages"] = stages
	}
	if len(stageDates) > 0 {
		out["stage_dates"] = stageDates
	}
	if b.ProjectedCOE != "" {
		out["projected_coe"] = b.ProjectedCOE
	}
	return out
}

// UnitSchedule is the normalized per-unit milestone state.
type UnitSchedule struct {
	Anchor    string            `json:"anchor"`
	Overrides map[string]string `json:"overrides"`
}

// Clone returns a deep copy of the unit schedule.
func (u UnitSchedule) Clone() UnitSchedule {
	return UnitSchedule{Anchor: u.Anchor, Overrides: cloneStrings(u.Overrides)}
}

// Payload renders the unit schedule in its stored shape.
func (u UnitSchedule) Payload() map[string]any {
	overrides := make(map[string]any, len(u.Overrides))
	for k, v := range u.Overrides {
		overrides[k] = v
	}
	return map[string]any{"anchor": u.Anchor, "overrides": overrides}
}

func cloneStrings(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	maps.Copy(out, m)
	return out
}
