package schedule

import "github.com/hbfa/milestones/internal/domain"

// SetStageComplete marks a stage complete or not. Checking a stage that has
// no date yet seeds it from the stage's computed row, or from the anchor for
// foundation_start. Unchecking keeps the date. s is not modified.
func SetStageComplete(s domain.BuildingSchedule, key string, checked bool, rows []domain.ResolvedRow) domain.BuildingSchedule {
	out := s.Clone()
	date := out.Stages[key].Date
	if checked && date == "" {
		if row, ok := domain.FindRow(rows, key); ok && row.Computed != "" {
			date = row.Computed
		} else if key == domain.FoundationStartKey {
			date = s.Anchor
		}
	}
	out.Stages[key] = domain.StageEntry{Complete: checked, Date: date}
	return out
}

// SetStageDate attests a stage date. A non-empty date marks the stage
// complete; an empty one clears it.
func SetStageDate(s domain.BuildingSchedule, key, date string) domain.BuildingSchedule {
	out := s.Clone()
	if date == "" {
		out.Stages[key] = domain.StageEntry{}
	} else {
		out.Stages[key] = domain.StageEntry{Complete: true, Date: date}
	}
	return out
}
