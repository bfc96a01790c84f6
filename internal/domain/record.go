package domain

import "time"

// MilestoneRecord is one stored item of a project#building partition. Data
// is a free-form JSON object; building items carry {"building": {...}} and
// unit items carry {"unit": {...}}.
type MilestoneRecord struct {
	PK         string         `json:"pk"`
	SK         string         `json:"sk"`
	ProjectID  string         `json:"project_id"`
	BuildingID string         `json:"building_id"`
	UnitNumber string         `json:"unit_number,omitempty"`
	Type       RecordType     `json:"type"`
	Data       map[string]any `json:"data"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// NewBuildingRecord wraps a building payload in its stored record.
func NewBuildingRecord(projectID, buildingID string, payload map[string]any, now time.Time) *MilestoneRecord {
	return &MilestoneRecord{
		PK:         PartitionKey(projectID, buildingID),
		SK:         BuildingItemSK,
		ProjectID:  projectID,
		BuildingID: buildingID,
		Type:       RecordBuilding,
		Data:       map[string]any{"building": payload},
		UpdatedAt:  now,
	}
}

// NewUnitRecord wraps a unit payload in its stored record.
func NewUnitRecord(projectID, buildingID, unitNumber string, payload map[string]any, now time.Time) *MilestoneRecord {
	return &MilestoneRecord{
		PK:         PartitionKey(projectID, buildingID),
		SK:         unitNumber,
		ProjectID:  projectID,
		BuildingID: buildingID,
		UnitNumber: unitNumber,
		Type:       RecordUnit,
		Data:       map[string]any{"unit": payload},
		UpdatedAt:  now,
	}
}

// UnitPayload returns the unit payload of a unit record: data.unit when it is
// an object, then the legacy data.milestones, otherwise data itself.
func (r *MilestoneRecord) UnitPayload() map[string]any {
	if r == nil || r.Data == nil {
		return nil
	}
	if u, ok := r.Data["unit"].(map[string]any); ok {
		return u
	}
	if m, ok := r.Data["milestones"].(map[string]any); ok {
		return m
	}
	return r.Data
}
