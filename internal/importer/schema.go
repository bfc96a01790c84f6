package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ImportSchema is the top-level structure of an inventory import file.
// Units are kept loose because upstream exports disagree on field names.
type ImportSchema struct {
	ProjectID string           `json:"project_id" yaml:"project_id"`
	Units     []map[string]any `json:"units" yaml:"units"`
	Holidays  []HolidayImport  `json:"holidays,omitempty" yaml:"holidays,omitempty"`
	Sales     []SalesImport    `json:"sales,omitempty" yaml:"sales,omitempty"`
}

// HolidayImport defines one non-working date. Shared holidays apply to every
// project.
type HolidayImport struct {
	Date   string `json:"date" yaml:"date"`
	Name   string `json:"name,omitempty" yaml:"name,omitempty"`
	Shared bool   `json:"shared,omitempty" yaml:"shared,omitempty"`
}

// SalesImport defines the current sales status of a contract unit.
type SalesImport struct {
	ProjectID          string `json:"project_id,omitempty" yaml:"project_id,omitempty"`
	BuildingID         string `json:"building_id,omitempty" yaml:"building_id,omitempty"`
	ContractUnitNumber string `json:"contract_unit_number" yaml:"contract_unit_number"`
	StatusKey          string `json:"status_key" yaml:"status_key"`
	StatusLabel        string `json:"status_label,omitempty" yaml:"status_label,omitempty"`
	StatusColor        string `json:"status_color,omitempty" yaml:"status_color,omitempty"`
	StatusDate         string `json:"status_date,omitempty" yaml:"status_date,omitempty"`
}

// LoadImportSchema reads and parses an import file. YAML is used for .yaml
// and .yml files, JSON for everything else.
func LoadImportSchema(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseImportSchema(data, filepath.Ext(path))
}

func ParseImportSchema(data []byte, ext string) (*ImportSchema, error) {
	var schema ImportSchema
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &schema); err != nil {
			return nil, fmt.Errorf("parsing import file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &schema); err != nil {
			return nil, fmt.Errorf("parsing import file: %w", err)
		}
	}
	return &schema, nil
}
