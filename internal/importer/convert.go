package importer

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/hbfa/milestones/internal/domain"
)

// Batch is a converted import ready for persistence.
type Batch struct {
	Units    []*domain.Unit
	Holidays []domain.Holiday
	Sales    []domain.SalesStatus
}

// Convert transforms a validated ImportSchema into domain objects.
// Call ValidateImportSchema first; Convert assumes the schema is valid.
func Convert(schema *ImportSchema) (*Batch, error) {
	batch := &Batch{
		Units:    make([]*domain.Unit, 0, len(schema.Units)),
		Holidays: make([]domain.Holiday, 0, len(schema.Holidays)),
		Sales:    make([]domain.SalesStatus, 0, len(schema.Sales)),
	}

	for i, item := range schema.Units {
		u := NormalizeUnitItem(item)
		if u.ProjectID == "" {
			u.ProjectID = schema.ProjectID
		}
		if u.ProjectID == "" || u.UnitNumber == "" {
			return nil, fmt.Errorf("units[%d]: missing project or unit number", i)
		}
		batch.Units = append(batch.Units, u)
	}

	for _, h := range schema.Holidays {
		projectID := schema.ProjectID
		if h.Shared {
			projectID = ""
		}
		batch.Holidays = append(batch.Holidays, domain.Holiday{ProjectID: projectID, Date: h.Date, Name: h.Name})
	}

	for i, s := range schema.Sales {
		projectID := domain.CoalesceStr(s.ProjectID, schema.ProjectID)
		if projectID == "" {
			return nil, fmt.Errorf("sales[%d]: missing project", i)
		}
		batch.Sales = append(batch.Sales, domain.SalesStatus{
			ProjectID:          projectID,
			ContractUnitNumber: s.ContractUnitNumber,
			BuildingID:         s.BuildingID,
			StatusKey:          s.StatusKey,
			StatusLabel:        s.StatusLabel,
			StatusColor:        s.StatusColor,
			StatusDate:         s.StatusDate,
		}.WithCatalogDefaults())
	}

	return batch, nil
}

// NormalizeUnitItem maps an upstream inventory item onto a Unit. The first
// alias present with a non-null value wins; numbers that are missing or not
// finite stay nil.
func NormalizeUnitItem(item map[string]any) *domain.Unit {
	return &domain.Unit{
		ProjectID:  firstString(item, "project_id", "projectId"),
		BuildingID: firstString(item, "building_id", "buildingId"),
		UnitNumber: firstString(item, "unit_number", "unitNumber"),
		PlanType:   firstString(item, "plan_type", "plan"),
		PlanSF:     number(first(item, "plan_sf", "sqft", "planSqft")),
		Address:    firstString(item, "address"),
		Bedrooms:   number(item["bedrooms"]),
		Bathrooms:  number(item["bathrooms"]),
		Region:     firstString(item, "region", "Region"),
	}
}

func first(item map[string]any, keys ...string) any {
	for _, k := range keys {
		if v, ok := item[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

// firstString renders the first present alias as a string. Unit numbers in
// some exports are numeric.
func firstString(item map[string]any, keys ...string) string {
	switch v := first(item, keys...).(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case json.Number:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func number(v any) *float64 {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return nil
		}
		f = parsed
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return nil
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil
		}
		f = parsed
	default:
		return nil
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}
