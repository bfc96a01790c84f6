package schedule

import "github.com/hbfa/milestones/internal/domain"

// Inputs is everything a single projection reads. The resolver never writes
// to any of it.
type Inputs struct {
	Anchor     string
	Overrides  map[string]string
	Activation domain.Activation
	Stages     map[string]domain.StageEntry
	Holidays   domain.HolidaySet
}

// ComputeRows resolves a date for every step in template order. It is a
// single left fold over a running previous date seeded with the anchor;
// gated-off steps emit an empty date and leave the running date alone.
func ComputeRows(steps []domain.Step, in Inputs) []domain.ResolvedRow {
	rows := make([]domain.ResolvedRow, 0, len(steps))
	prev := in.Anchor

	for _, step := range steps {
		if step.Conditional != "" && !in.Activation.Enabled(step.Conditional) {
			rows = append(rows, domain.ResolvedRow{Step: step})
			continue
		}

		row := domain.ResolvedRow{Step: step, Active: true}
		override := in.Overrides[step.Key]

		switch {
		case step.Stage:
			stage := in.Stages[step.Key]
			row.StageComplete = stage.Complete
			switch {
			case stage.Date != "":
				row.Computed = stage.Date
			case override != "":
				row.Computed = override
			case step.Manual:
				row.Computed = prev
			default:
				row.Computed = offsetFrom(prev, step.Offset, in.Holidays)
			}
		case step.Manual:
			row.Computed = prev
		case override != "":
			row.Computed = override
		default:
			row.Computed = offsetFrom(prev, step.Offset, in.Holidays)
		}

		prev = row.Computed
		rows = append(rows, row)
	}
	return rows
}

func offsetFrom(prev string, offset int, holidays domain.HolidaySet) string {
	if prev == "" {
		return ""
	}
	return AddWorkdays(prev, offset, holidays)
}

// ProjectBuilding projects a stored building schedule, applying pre-kickoff
// suppression first.
func ProjectBuilding(steps []domain.Step, s domain.BuildingSchedule, holidays domain.HolidaySet) []domain.ResolvedRow {
	eff := EffectiveBuilding(s)
	return ComputeRows(steps, Inputs{
		Anchor:     eff.Anchor,
		Overrides:  eff.Overrides,
		Activation: eff.Activation,
		Stages:     eff.Stages,
		Holidays:   holidays,
	})
}

// ProjectUnit projects a unit schedule. preKickoff is the owning building's
// flag.
func ProjectUnit(steps []domain.Step, s domain.UnitSchedule, preKickoff bool, holidays domain.HolidaySet) []domain.ResolvedRow {
	eff := EffectiveUnit(s, preKickoff)
	return ComputeRows(steps, Inputs{
		Anchor:    eff.Anchor,
		Overrides: eff.Overrides,
		Holidays:  holidays,
	})
}
