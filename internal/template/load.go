package template

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadSchema reads and parses a template file. The format follows the
// extension: .json, .yaml or .yml.
func LoadSchema(path string) (*TemplateSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseSchema(data, strings.ToLower(filepath.Ext(path)))
}

// ParseSchema decodes a template in the format named by ext.
func ParseSchema(data []byte, ext string) (*TemplateSchema, error) {
	var schema TemplateSchema
	switch ext {
	case ".json":
		if err := json.Unmarshal(data, &schema); err != nil {
			return nil, fmt.Errorf("parsing template: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &schema); err != nil {
			return nil, fmt.Errorf("parsing template: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported template format %q", ext)
	}
	return &schema, nil
}

func isTemplateFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}
