package contract

import (
	"time"

	"github.com/hbfa/milestones/internal/domain"
)

type TimelineRequest struct {
	ProjectID     string
	BuildingID    string
	IncludeUnits  bool
	IncludeEvents bool
}

func (r TimelineRequest) Validate() error {
	if r.ProjectID == "" {
		return MissingParameter("project_id is required")
	}
	return nil
}

// TimelineSalesStatus is the sales status subset joined onto a unit.
type TimelineSalesStatus struct {
	StatusKey   string `json:"status_key"`
	StatusLabel string `json:"status_label"`
	StatusColor string `json:"status_color"`
	StatusDate  string `json:"status_date"`
}

// TimelineUnit flattens the unit inventory record and adds its stored
// milestone payload and sales status (null when none is recorded).
type TimelineUnit struct {
	domain.Unit
	Milestones  map[string]any       `json:"milestones"`
	SalesStatus *TimelineSalesStatus `json:"sales_status"`
}

// TimelineEvent is one dated milestone of the building or one of its units.
type TimelineEvent struct {
	Scope      domain.Scope `json:"scope"`
	UnitNumber string       `json:"unit_number,omitempty"`
	Key        string       `json:"key"`
	Label      string       `json:"label"`
	Date       string       `json:"date"`
}

type SalesSync struct {
	RecordsScanned int       `json:"records_scanned"`
	UnitsMatched   int       `json:"units_matched"`
	LastUpdated    time.Time `json:"last_updated"`
	Warnings       []string  `json:"warnings"`
}

type TimelineResponse struct {
	ProjectID  string          `json:"project_id"`
	BuildingID string          `json:"building_id"`
	Units      []TimelineUnit  `json:"units"`
	Events     []TimelineEvent `json:"events"`
	SalesSync  SalesSync       `json:"sales_sync"`
}

// NewTimelineResponse returns a response whose lists encode as [] rather
// than null.
func NewTimelineResponse(projectID, buildingID string, now time.Time) *TimelineResponse {
	return &TimelineResponse{
		ProjectID:  projectID,
		BuildingID: buildingID,
		Units:      []TimelineUnit{},
		Events:     []TimelineEvent{},
		SalesSync:  SalesSync{LastUpdated: now, Warnings: []string{}},
	}
}
