package domain

import "time"

// DefaultStatusColor is used when a sales status carries no colour.
const DefaultStatusColor = "#4b5563"

// SalesStatus is the current sales state of a contract unit.
type SalesStatus struct {
	ProjectID          string    `json:"project_id"`
	ContractUnitNumber string    `json:"contract_unit_number"`
	BuildingID         string    `json:"building_id,omitempty"`
	StatusKey          string    `json:"status_key"`
	StatusLabel        string    `json:"status_label"`
	StatusColor        string    `json:"status_color"`
	StatusDate         string    `json:"status_date"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// StatusDefinition describes one entry of the sales status catalog.
type StatusDefinition struct {
	Key          string `json:"key"`
	PolarisLabel string `json:"polaris_label"`
	COOLabel     string `json:"coo_label"`
	ShortLabel   string `json:"short_label"`
	Color        string `json:"color"`
}

// StatusCatalog lists every known status in display order.
var StatusCatalog = []StatusDefinition{
	{Key: "projected_coe", PolarisLabel: "Projected COE", COOLabel: "Projected COE", ShortLabel: "Projected COE", Color: "#9ecae1"},
	{Key: "unreleased", PolarisLabel: "Pending Release", COOLabel: "Unreleased", ShortLabel: "Pending", Color: "#636363"},
	{Key: "inventory", PolarisLabel: "Available", COOLabel: "Inventory", ShortLabel: "Available", Color: "#31a354"},
	{Key: "offer", PolarisLabel: "Offer - Out for signature", COOLabel: "Offer", ShortLabel: "Offer", Color: "#9c9ede"},
	{Key: "backlog", PolarisLabel: "Ratified - Fully executed", COOLabel: "Backlog", ShortLabel: "Ratified", Color: "#fdae6b"},
	{Key: "closed", PolarisLabel: "Closed", COOLabel: "Closed", ShortLabel: "Closed", Color: "#e34a33"},
}

// SalesStatusKeys are the statuses a unit may be set to by hand.
var SalesStatusKeys = []string{"unreleased", "inventory", "offer", "backlog", "closed"}

// LookupStatus returns the catalog entry for key.
func LookupStatus(key string) (StatusDefinition, bool) {
	for _, def := range StatusCatalog {
		if def.Key == key {
			return def, true
		}
	}
	return StatusDefinition{}, false
}

// IsSalesStatusKey reports whether key may be assigned to a unit.
func IsSalesStatusKey(key string) bool {
	for _, k := range SalesStatusKeys {
		if k == key {
			return true
		}
	}
	return false
}

// WithCatalogDefaults fills an empty label or colour from the catalog.
func (s SalesStatus) WithCatalogDefaults() SalesStatus {
	def, ok := LookupStatus(s.StatusKey)
	if s.StatusLabel == "" {
		if ok {
			s.StatusLabel = def.PolarisLabel
		} else {
			s.StatusLabel = s.StatusKey
		}
	}
	if s.StatusColor == "" {
		if ok {
			s.StatusColor = def.Color
		} else {
			s.StatusColor = DefaultStatusColor
		}
	}
	return s
}
