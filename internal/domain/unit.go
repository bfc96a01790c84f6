package domain

import "slices"

// Unit is an inventory record for a sellable home.
type Unit struct {
	ProjectID  string   `json:"project_id"`
	BuildingID string   `json:"building_id"`
	UnitNumber string   `json:"unit_number"`
	PlanType   string   `json:"plan_type"`
	PlanSF     *float64 `json:"plan_sf,omitempty"`
	Address    string   `json:"address"`
	Bedrooms   *float64 `json:"bedrooms,omitempty"`
	Bathrooms  *float64 `json:"bathrooms,omitempty"`
	Region     string   `json:"region"`
}

// UnitKey is the per-building unit identifier used to key unit state.
func UnitKey(buildingID, unitNumber string) string {
	return buildingID + "#" + unitNumber
}

// PartitionKey is the milestone partition for a building within a project.
func PartitionKey(projectID, buildingID string) string {
	return projectID + "#" + buildingID
}

// BuildingIDs returns the distinct, sorted building ids of units.
func BuildingIDs(units []*Unit) []string {
	seen := map[string]bool{}
	var ids []string
	for _, u := range units {
		if u.BuildingID == "" || seen[u.BuildingID] {
			continue
		}
		seen[u.BuildingID] = true
		ids = append(ids, u.BuildingID)
	}
	slices.Sort(ids)
	return ids
}

// UnitsInBuilding returns the unit numbers that belong to buildingID, in
// input order.
func UnitsInBuilding(units []*Unit, buildingID string) []string {
	var out []string
	for _, u := range units {
		if u.BuildingID == buildingID {
			out = append(out, u.UnitNumber)
		}
	}
	return out
}
