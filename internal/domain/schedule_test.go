package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivation_Enabled(t *testing.T) {
	a := Activation{Third: true}
	assert.True(t, a.Enabled(FlagThird))
	assert.False(t, a.Enabled(FlagFourth))
	assert.False(t, a.Enabled("fifth"))
}

func TestBuildingSchedule_CloneIsDeep(t *testing.T) {
	orig := BuildingSchedule{
		Anchor:    "2024-01-01",
		Overrides: map[string]string{"b3": "2024-02-01"},
		Stages:    map[string]StageEntry{FoundationStartKey: {Complete: true, Date: "2024-01-02"}},
	}
	cp := orig.Clone()
	cp.Overrides["b3"] = "2030-01-01"
	cp.Stages[FoundationStartKey] = StageEntry{}

	assert.Equal(t, "2024-02-01", orig.Overrides["b3"])
	assert.True(t, orig.Stages[FoundationStartKey].Complete)
}

func TestBuildingSchedule_Payload(t *testing.T) {
	b := BuildingSchedule{
		Anchor:     "2024-01-01",
		Overrides:  map[string]string{"b3": "2024-02-01"},
		Activation: Activation{Fourth: true},
		Stages: map[string]StageEntry{
			"construction_release": {Complete: false, Date: ""},
			FoundationStartKey:     {Complete: true, Date: "2024-01-03"},
		},
		ProjectedCOE: "2025-06-30",
	}
	p := b.Payload()

	assert.Equal(t, "2024-01-01", p["anchor"])
	assert.Equal(t, false, p["pre_kickoff"])
	assert.Equal(t, "2025-06-30", p["projected_coe"])
	assert.Equal(t, map[string]any{"third": false, "fourth": true}, p["activation"])

	stages, ok := p["stages"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, map[string]any{"complete": false, "date": nil}, stages["construction_release"])
	assert.Equal(t, map[string]any{"complete": true, "date": "2024-01-03"}, stages[FoundationStartKey])

	assert.Equal(t, map[string]any{FoundationStartKey: "2024-01-03"}, p["stage_dates"])
}

func TestBuildingSchedule_PayloadOmitsEmptyOptional(t *testing.T) {
	p := BuildingSchedule{}.Payload()
	assert.NotContains(t, p, "stages")
	assert.NotContains(t, p, "stage_dates")
	assert.NotContains(t, p, "projected_coe")
}

func TestHolidaySet(t *testing.T) {
	set := NewHolidaySet("2024-01-01", "", "2024-07-04")
	assert.Len(t, set, 2)
	assert.True(t, set.Contains("2024-07-04"))
	assert.False(t, set.Contains("2024-7-4"))

	var empty HolidaySet
	assert.False(t, empty.Contains("2024-01-01"))
}

func TestMilestoneRecord_UnitPayload(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rec := NewUnitRecord("Aria", "B1", "101", map[string]any{"anchor": "2024-02-01"}, now)
	assert.Equal(t, "2024-02-01", rec.UnitPayload()["anchor"])

	legacy := &MilestoneRecord{Data: map[string]any{"milestones": map[string]any{"anchor": "2023-09-01"}}}
	assert.Equal(t, "2023-09-01", legacy.UnitPayload()["anchor"])

	flat := &MilestoneRecord{Data: map[string]any{"anchor": "2023-10-01"}}
	assert.Equal(t, "2023-10-01", flat.UnitPayload()["anchor"])

	var missing *MilestoneRecord
	assert.Nil(t, missing.UnitPayload())
}
