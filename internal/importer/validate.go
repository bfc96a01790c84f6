package importer

import (
	"fmt"
	"time"

	"github.com/hbfa/milestones/internal/domain"
)

// ValidateImportSchema checks the import schema for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error

	if len(schema.Units) == 0 && len(schema.Holidays) == 0 && len(schema.Sales) == 0 {
		errs = append(errs, fmt.Errorf("import file is empty"))
	}

	errs = append(errs, validateUnits(schema.ProjectID, schema.Units)...)
	errs = append(errs, validateHolidays(schema.Holidays)...)
	errs = append(errs, validateSales(schema.ProjectID, schema.Sales)...)

	return errs
}

func validateUnits(projectID string, items []map[string]any) []error {
	var errs []error
	seen := make(map[string]bool)

	for i, item := range items {
		prefix := fmt.Sprintf("units[%d]", i)
		u := NormalizeUnitItem(item)
		project := domain.CoalesceStr(u.ProjectID, projectID)

		if project == "" {
			errs = append(errs, fmt.Errorf("%s.project_id is required (set it on the unit or at the top level)", prefix))
		}
		if u.BuildingID == "" {
			errs = append(errs, fmt.Errorf("%s.building_id is required", prefix))
		}
		if u.UnitNumber == "" {
			errs = append(errs, fmt.Errorf("%s.unit_number is required", prefix))
			continue
		}

		key := project + "#" + u.UnitNumber
		if seen[key] {
			errs = append(errs, fmt.Errorf("%s.unit_number: duplicate unit %q in project %q", prefix, u.UnitNumber, project))
		}
		seen[key] = true
	}

	return errs
}

func validateHolidays(items []HolidayImport) []error {
	var errs []error
	seen := make(map[string]bool)

	for i, h := range items {
		prefix := fmt.Sprintf("holidays[%d]", i)

		if h.Date == "" {
			errs = append(errs, fmt.Errorf("%s.date is required", prefix))
			continue
		}
		errs = append(errs, validateDate(prefix+".date", h.Date)...)

		key := fmt.Sprintf("%t#%s", h.Shared, h.Date)
		if seen[key] {
			errs = append(errs, fmt.Errorf("%s.date: duplicate holiday %q", prefix, h.Date))
		}
		seen[key] = true
	}

	return errs
}

func validateSales(projectID string, items []SalesImport) []error {
	var errs []error

	for i, s := range items {
		prefix := fmt.Sprintf("sales[%d]", i)

		if domain.CoalesceStr(s.ProjectID, projectID) == "" {
			errs = append(errs, fmt.Errorf("%s.project_id is required (set it on the record or at the top level)", prefix))
		}
		if s.ContractUnitNumber == "" {
			errs = append(errs, fmt.Errorf("%s.contract_unit_number is required", prefix))
		}
		if s.StatusKey == "" {
			errs = append(errs, fmt.Errorf("%s.status_key is required", prefix))
		} else if _, ok := domain.LookupStatus(s.StatusKey); !ok {
			errs = append(errs, fmt.Errorf("%s.status_key: invalid value %q", prefix, s.StatusKey))
		}
		if s.StatusDate != "" {
			errs = append(errs, validateDate(prefix+".status_date", s.StatusDate)...)
		}
	}

	return errs
}

func validateDate(field, value string) []error {
	if _, err := time.Parse(domain.DateLayout, value); err != nil {
		return []error{fmt.Errorf("%s: invalid date format %q (expected YYYY-MM-DD)", field, value)}
	}
	return nil
}
