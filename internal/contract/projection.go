package contract

import "github.com/hbfa/milestones/internal/domain"

type ProjectionRequest struct {
	ProjectID  string
	BuildingID string
	UnitNumber string
}

func (r ProjectionRequest) Validate() error {
	if r.ProjectID == "" || r.BuildingID == "" {
		return MissingParameter("Missing required parameters")
	}
	return nil
}

// ProjectionResponse carries the resolved milestone rows of a building and,
// when requested, one of its units. Schedules are the stored values; rows are
// computed from their pre-kickoff effective view.
type ProjectionResponse struct {
	ProjectID         string                  `json:"project_id"`
	ResolvedProjectID string                  `json:"resolved_project_id"`
	BuildingID        string                  `json:"building_id"`
	UnitNumber        string                  `json:"unit_number,omitempty"`
	Building          domain.BuildingSchedule `json:"building"`
	BuildingRows      []domain.ResolvedRow    `json:"building_rows"`
	BuildingTemplate  string                  `json:"building_template"`
	Unit              *domain.UnitSchedule    `json:"unit,omitempty"`
	UnitRows          []domain.ResolvedRow    `json:"unit_rows,omitempty"`
	UnitTemplate      string                  `json:"unit_template,omitempty"`
	Holidays          []string                `json:"holidays"`
}
