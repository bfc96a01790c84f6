package schedule

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/hbfa/milestones/internal/domain"
)

// NormalizeBuilding turns a loosely shaped building payload into a
// BuildingSchedule. Anything that is not a JSON object reads as empty and
// ill-typed fields fall back to their zero value. Only stageKeys get stage
// entries.
//
// Stage date precedence: stages[key].date, stages[key].completed_at,
// stage_dates[key], overrides[key], then the anchor for foundation_start. An
// anchor-derived date does not mark the stage complete.
func NormalizeBuilding(payload any, stageKeys []string) domain.BuildingSchedule {
	data, _ := payload.(map[string]any)

	anchor := stringField(data, "anchor")
	overrides := normalizeOverrides(data["overrides"])
	stageDates, _ := data["stage_dates"].(map[string]any)
	stagesIn, _ := data["stages"].(map[string]any)

	stages := make(map[string]domain.StageEntry, len(stageKeys))
	for _, key := range stageKeys {
		var (
			date       string
			explicit   *bool
			fromAnchor bool
		)
		switch entry := stagesIn[key].(type) {
		case map[string]any:
			if s, ok := entry["date"].(string); ok {
				date = s
			} else if s, ok := entry["completed_at"].(string); ok {
				date = s
			}
			if b, ok := entry["complete"].(bool); ok {
				explicit = &b
			}
		case string:
			date = entry
		}
		if date == "" {
			date, _ = stageDates[key].(string)
		}
		if date == "" {
			date = overrides[key]
		}
		if date == "" && key == domain.FoundationStartKey && anchor != "" {
			date = anchor
			fromAnchor = true
		}

		complete := date != "" && !fromAnchor
		if explicit != nil {
			complete = *explicit
		}
		stages[key] = domain.StageEntry{Complete: complete, Date: date}
	}

	return domain.BuildingSchedule{
		Anchor:       anchor,
		Overrides:    overrides,
		Activation:   normalizeActivation(data["activation"]),
		Stages:       stages,
		PreKickoff:   truthy(data["pre_kickoff"]),
		ProjectedCOE: stringField(data, "projected_coe"),
	}
}

// NormalizeBuildingJSON decodes raw and normalizes it. Undecodable input
// yields the empty schedule along with the decode error.
func NormalizeBuildingJSON(raw []byte, stageKeys []string) (domain.BuildingSchedule, error) {
	var payload any
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &payload); err != nil {
			return NormalizeBuilding(nil, stageKeys), fmt.Errorf("decoding building payload: %w", err)
		}
	}
	return NormalizeBuilding(payload, stageKeys), nil
}

// NormalizeUnit turns a loosely shaped unit payload into a UnitSchedule.
func NormalizeUnit(payload any) domain.UnitSchedule {
	data, _ := payload.(map[string]any)
	return domain.UnitSchedule{
		Anchor:    stringField(data, "anchor"),
		Overrides: normalizeOverrides(data["overrides"]),
	}
}

// PickBuildingPayload selects the building payload among a partition's
// records: the first record typed or keyed as the building item wins,
// otherwise the first record carrying a data.building object. It returns
// false when neither exists.
func PickBuildingPayload(records []*domain.MilestoneRecord) (map[string]any, bool) {
	for _, r := range records {
		if r == nil {
			continue
		}
		if r.Type == domain.RecordBuilding || r.SK == domain.BuildingItemSK {
			if b, ok := r.Data["building"].(map[string]any); ok {
				return b, true
			}
			if r.Data == nil {
				return map[string]any{}, true
			}
			return r.Data, true
		}
	}
	for _, r := range records {
		if r == nil {
			continue
		}
		if b, ok := r.Data["building"].(map[string]any); ok {
			return b, true
		}
	}
	return nil, false
}

func normalizeOverrides(v any) map[string]string {
	out := map[string]string{}
	m, ok := v.(map[string]any)
	if !ok {
		return out
	}
	for k, raw := range m {
		switch val := raw.(type) {
		case string:
			out[k] = val
		case float64:
			out[k] = strconv.FormatFloat(val, 'f', -1, 64)
		case int:
			out[k] = strconv.Itoa(val)
		case int64:
			out[k] = strconv.FormatInt(val, 10)
		case json.Number:
			out[k] = val.String()
		}
	}
	return out
}

func normalizeActivation(v any) domain.Activation {
	m, ok := v.(map[string]any)
	if !ok {
		return domain.Activation{}
	}
	return domain.Activation{
		Third:  truthy(m[domain.FlagThird]),
		Fourth: truthy(m[domain.FlagFourth]),
	}
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

// truthy follows JSON-ish truthiness: false, 0, "" and null are false.
func truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != ""
	case float64:
		return val != 0
	case int:
		return val != 0
	case json.Number:
		f, err := val.Float64()
		return err == nil && f != 0
	default:
		return true
	}
}
