package contract

import "github.com/hbfa/milestones/internal/domain"

type UnitsResponse struct {
	Items []*domain.Unit `json:"items"`
}

type HolidaysResponse struct {
	Items []domain.Holiday `json:"items"`
}

// ImportSummary reports what an import file wrote.
type ImportSummary struct {
	Units    int `json:"units"`
	Holidays int `json:"holidays"`
	Sales    int `json:"sales"`
}

// ProjectResolution is the canonical id and lookup order for a project name.
type ProjectResolution struct {
	Input      string   `json:"input"`
	Canonical  string   `json:"canonical"`
	Candidates []string `json:"candidates"`
}
