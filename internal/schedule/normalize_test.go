package schedule

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hbfa/milestones/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var stageKeys = domain.StageKeys(BuildingSteps)

func decode(t *testing.T, s string) any {
	t.Helper()
	var v any
	require.NoError(t, json.Unmarshal([]byte(s), &v))
	return v
}

func TestNormalizeBuilding_EmptyAndNonObject(t *testing.T) {
	for _, payload := range []any{nil, "junk", 42.0, []any{}, map[string]any{}} {
		got := NormalizeBuilding(payload, stageKeys)
		assert.Equal(t, "", got.Anchor)
		assert.Empty(t, got.Overrides)
		assert.NotNil(t, got.Overrides)
		assert.Equal(t, domain.Activation{}, got.Activation)
		assert.False(t, got.PreKickoff)
		assert.Equal(t, map[string]domain.StageEntry{
			"construction_release":    {},
			domain.FoundationStartKey: {},
		}, got.Stages)
	}
}

func TestNormalizeBuilding_AnchorDerivedStageIsNotComplete(t *testing.T) {
	got := NormalizeBuilding(decode(t, `{"anchor":"2024-01-01"}`), stageKeys)

	assert.Equal(t, domain.StageEntry{Complete: false, Date: "2024-01-01"}, got.Stages[domain.FoundationStartKey])
	assert.Equal(t, domain.StageEntry{}, got.Stages["construction_release"])
}

func TestNormalizeBuilding_LegacyStageDates(t *testing.T) {
	got := NormalizeBuilding(decode(t, `{"stage_dates":{"construction_release":"2023-12-01"}}`), stageKeys)

	assert.Equal(t, domain.StageEntry{Complete: true, Date: "2023-12-01"}, got.Stages["construction_release"])
}

func TestNormalizeBuilding_StageDatePrecedence(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    domain.StageEntry
	}{
		{
			name:    "bare string entry",
			payload: `{"stages":{"foundation_start":"2024-01-04"}}`,
			want:    domain.StageEntry{Complete: true, Date: "2024-01-04"},
		},
		{
			name:    "date beats completed_at and stage_dates",
			payload: `{"stages":{"foundation_start":{"date":"2024-01-04","completed_at":"2024-01-05"}},"stage_dates":{"foundation_start":"2024-01-06"}}`,
			want:    domain.StageEntry{Complete: true, Date: "2024-01-04"},
		},
		{
			name:    "completed_at when date missing",
			payload: `{"stages":{"foundation_start":{"completed_at":"2024-01-05"}}}`,
			want:    domain.StageEntry{Complete: true, Date: "2024-01-05"},
		},
		{
			name:    "empty string date skips completed_at",
			payload: `{"stages":{"foundation_start":{"date":"","completed_at":"2024-01-05"}},"stage_dates":{"foundation_start":"2024-01-06"}}`,
			want:    domain.StageEntry{Complete: true, Date: "2024-01-06"},
		},
		{
			name:    "override as last stored source",
			payload: `{"overrides":{"foundation_start":"2024-01-07"},"anchor":"2024-01-01"}`,
			want:    domain.StageEntry{Complete: true, Date: "2024-01-07"},
		},
		{
			name:    "explicit false keeps date",
			payload: `{"stages":{"foundation_start":{"complete":false,"date":"2024-01-04"}}}`,
			want:    domain.StageEntry{Complete: false, Date: "2024-01-04"},
		},
		{
			name:    "explicit true without date",
			payload: `{"stages":{"foundation_start":{"complete":true,"date":null}}}`,
			want:    domain.StageEntry{Complete: true, Date: ""},
		},
		{
			name:    "non-boolean complete ignored",
			payload: `{"stages":{"foundation_start":{"complete":"yes"}},"anchor":"2024-01-01"}`,
			want:    domain.StageEntry{Complete: false, Date: "2024-01-01"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeBuilding(decode(t, tt.payload), stageKeys)
			assert.Equal(t, tt.want, got.Stages[domain.FoundationStartKey])
		})
	}
}

func TestNormalizeBuilding_OverridesAndActivation(t *testing.T) {
	got := NormalizeBuilding(decode(t, `{
		"overrides": {"a": "2024-01-01", "b": 5, "c": null, "d": true, "e": {"x": 1}, "f": 1.5},
		"activation": {"third": 1, "fourth": ""},
		"pre_kickoff": "yes",
		"projected_coe": "2025-06-30"
	}`), stageKeys)

	assert.Equal(t, map[string]string{"a": "2024-01-01", "b": "5", "f": "1.5"}, got.Overrides)
	assert.Equal(t, domain.Activation{Third: true, Fourth: false}, got.Activation)
	assert.True(t, got.PreKickoff)
	assert.Equal(t, "2025-06-30", got.ProjectedCOE)
}

func TestNormalizeBuilding_ActivationNotObject(t *testing.T) {
	got := NormalizeBuilding(decode(t, `{"activation": ["third"]}`), stageKeys)
	assert.Equal(t, domain.Activation{}, got.Activation)
}

func TestNormalizeBuilding_Idempotent(t *testing.T) {
	payloads := []string{
		`{}`,
		`{"anchor":"2024-01-01"}`,
		`{"stage_dates":{"construction_release":"2023-12-01","foundation_start":"2023-12-05"}}`,
		`{"anchor":"2024-01-01","overrides":{"foundation_pour":"2024-02-01","x":3},"activation":{"third":true},"pre_kickoff":true}`,
		`{"stages":{"foundation_start":{"complete":false,"date":"2024-01-04"},"construction_release":"2023-11-30"}}`,
		`{"stages":{"foundation_start":{"complete":true}},"projected_coe":"2025-01-01"}`,
	}
	for _, p := range payloads {
		t.Run(p, func(t *testing.T) {
			once := NormalizeBuilding(decode(t, p), stageKeys)

			raw, err := json.Marshal(once.Payload())
			require.NoError(t, err)
			twice, err := NormalizeBuildingJSON(raw, stageKeys)
			require.NoError(t, err)

			if diff := cmp.Diff(once, twice); diff != "" {
				t.Errorf("normalize is not idempotent (-once +twice):\n%s", diff)
			}
		})
	}
}

func TestNormalizeBuildingJSON_Invalid(t *testing.T) {
	got, err := NormalizeBuildingJSON([]byte(`{"anchor":`), stageKeys)
	assert.Error(t, err)
	assert.Equal(t, "", got.Anchor)
	assert.Len(t, got.Stages, len(stageKeys))

	got, err = NormalizeBuildingJSON(nil, stageKeys)
	assert.NoError(t, err)
	assert.Equal(t, "", got.Anchor)
}

func TestNormalizeUnit(t *testing.T) {
	got := NormalizeUnit(decode(t, `{"anchor":"2024-06-03","overrides":{"drywall_texture":"2024-07-15","install_cabinets":""}}`))
	assert.Equal(t, "2024-06-03", got.Anchor)
	assert.Equal(t, map[string]string{"drywall_texture": "2024-07-15", "install_cabinets": ""}, got.Overrides)

	empty := NormalizeUnit(nil)
	assert.Equal(t, "", empty.Anchor)
	assert.NotNil(t, empty.Overrides)
}

func TestPickBuildingPayload(t *testing.T) {
	unitRec := &domain.MilestoneRecord{SK: "101", Type: domain.RecordUnit, Data: map[string]any{"unit": map[string]any{"anchor": "2024-01-01"}}}
	legacy := &domain.MilestoneRecord{SK: "102", Type: domain.RecordUnit, Data: map[string]any{"building": map[string]any{"anchor": "2023-01-01"}}}
	building := &domain.MilestoneRecord{SK: domain.BuildingItemSK, Type: domain.RecordBuilding, Data: map[string]any{"building": map[string]any{"anchor": "2024-02-01"}}}
	flat := &domain.MilestoneRecord{SK: domain.BuildingItemSK, Data: map[string]any{"anchor": "2024-03-01"}}

	got, ok := PickBuildingPayload([]*domain.MilestoneRecord{unitRec, legacy, building})
	require.True(t, ok)
	assert.Equal(t, "2024-02-01", got["anchor"], "typed building item wins over earlier legacy records")

	got, ok = PickBuildingPayload([]*domain.MilestoneRecord{flat})
	require.True(t, ok)
	assert.Equal(t, "2024-03-01", got["anchor"], "flat data is used when data.building is absent")

	got, ok = PickBuildingPayload([]*domain.MilestoneRecord{nil, unitRec, legacy})
	require.True(t, ok)
	assert.Equal(t, "2023-01-01", got["anchor"])

	_, ok = PickBuildingPayload([]*domain.MilestoneRecord{unitRec})
	assert.False(t, ok)

	_, ok = PickBuildingPayload(nil)
	assert.False(t, ok)
}
