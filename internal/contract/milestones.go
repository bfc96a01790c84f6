package contract

import "github.com/hbfa/milestones/internal/domain"

const msgMissingFields = "Missing required fields"

// SaveBuildingRequest stores the building-level milestone payload of a
// partition. Older clients send the payload under "milestones".
type SaveBuildingRequest struct {
	ProjectID  string         `json:"project_id"`
	BuildingID string         `json:"building_id"`
	Building   map[string]any `json:"building,omitempty"`
	Milestones map[string]any `json:"milestones,omitempty"`
}

func (r SaveBuildingRequest) Payload() map[string]any {
	if r.Building != nil {
		return r.Building
	}
	if r.Milestones != nil {
		return r.Milestones
	}
	return map[string]any{}
}

func (r SaveBuildingRequest) Validate() error {
	if r.ProjectID == "" || r.BuildingID == "" {
		return MissingParameter(msgMissingFields)
	}
	return nil
}

// UnitSalesStatus is the optional sales status saved together with a unit
// schedule.
type UnitSalesStatus struct {
	StatusKey  string `json:"status_key"`
	StatusDate string `json:"status_date"`
}

type SaveUnitRequest struct {
	ProjectID   string           `json:"project_id"`
	BuildingID  string           `json:"building_id"`
	UnitNumber  string           `json:"unit_number"`
	Unit        map[string]any   `json:"unit,omitempty"`
	Milestones  map[string]any   `json:"milestones,omitempty"`
	SalesStatus *UnitSalesStatus `json:"sales_status,omitempty"`
}

func (r SaveUnitRequest) Payload() map[string]any {
	if r.Unit != nil {
		return r.Unit
	}
	if r.Milestones != nil {
		return r.Milestones
	}
	return map[string]any{}
}

// HasSalesStatus reports whether a sales status should be written along with
// the schedule. A status without a key is ignored.
func (r SaveUnitRequest) HasSalesStatus() bool {
	return r.SalesStatus != nil && r.SalesStatus.StatusKey != ""
}

func (r SaveUnitRequest) Validate() error {
	if r.ProjectID == "" || r.BuildingID == "" || r.UnitNumber == "" {
		return MissingParameter(msgMissingFields)
	}
	if r.UnitNumber == domain.BuildingItemSK {
		return InvalidField("unit_number %q is reserved for the building record", r.UnitNumber)
	}
	if r.HasSalesStatus() && r.SalesStatus.StatusDate == "" {
		return InvalidField("status_date is required when status_key is set")
	}
	return nil
}

// UpdateStageRequest marks or dates one stage step of a building. Date nil
// means "toggle the completion flag only".
type UpdateStageRequest struct {
	ProjectID  string  `json:"project_id"`
	BuildingID string  `json:"building_id"`
	StageKey   string  `json:"stage_key"`
	Complete   bool    `json:"complete"`
	Date       *string `json:"date,omitempty"`
}

func (r UpdateStageRequest) Validate() error {
	if r.ProjectID == "" || r.BuildingID == "" || r.StageKey == "" {
		return MissingParameter(msgMissingFields)
	}
	return nil
}

type SaveResponse struct {
	Success bool `json:"success"`
}

type RecordsResponse struct {
	Items []*domain.MilestoneRecord `json:"items"`
}

// BuildingView is a stored building schedule together with the project id
// candidate it was found under.
type BuildingView struct {
	ProjectID         string                  `json:"project_id"`
	ResolvedProjectID string                  `json:"resolved_project_id"`
	BuildingID        string                  `json:"building_id"`
	Found             bool                    `json:"found"`
	Schedule          domain.BuildingSchedule `json:"schedule"`
}

type UnitView struct {
	ProjectID  string                  `json:"project_id"`
	BuildingID string                  `json:"building_id"`
	UnitNumber string                  `json:"unit_number"`
	Found      bool                    `json:"found"`
	Schedule   domain.UnitSchedule     `json:"schedule"`
	Record     *domain.MilestoneRecord `json:"-"`
}
