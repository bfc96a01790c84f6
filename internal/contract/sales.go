package contract

import "github.com/hbfa/milestones/internal/domain"

type SalesStatusRequest struct {
	ProjectID          string `json:"project_id"`
	BuildingID         string `json:"building_id"`
	UnitNumber         string `json:"unit_number"`
	ContractUnitNumber string `json:"contract_unit_number"`
	StatusKey          string `json:"status_key"`
	StatusLabel        string `json:"status_label"`
	StatusColor        string `json:"status_color"`
	StatusDate         string `json:"status_date"`
}

func (r SalesStatusRequest) Validate() error {
	if r.ProjectID == "" || r.ContractUnitNumber == "" || r.StatusKey == "" {
		return MissingParameter(msgMissingFields)
	}
	return nil
}

// Status builds the stored record. Label and colour fall back to the status
// catalog.
func (r SalesStatusRequest) Status() domain.SalesStatus {
	return domain.SalesStatus{
		ProjectID:          r.ProjectID,
		ContractUnitNumber: r.ContractUnitNumber,
		BuildingID:         r.BuildingID,
		StatusKey:          r.StatusKey,
		StatusLabel:        r.StatusLabel,
		StatusColor:        r.StatusColor,
		StatusDate:         r.StatusDate,
	}.WithCatalogDefaults()
}

type SalesStatusResponse struct {
	Success bool               `json:"success"`
	Item    domain.SalesStatus `json:"item"`
}

type SalesStatusList struct {
	Items []*domain.SalesStatus `json:"items"`
}
