package template

import (
	"fmt"
	"slices"

	"github.com/hbfa/milestones/internal/domain"
)

var knownFlags = []string{domain.FlagThird, domain.FlagFourth}

// MaxOffset bounds a step offset in business days, in either direction.
const MaxOffset = 2000

// ValidateSchema checks a TemplateSchema for structural errors.
// Returns a slice of errors (empty if valid).
func ValidateSchema(schema *TemplateSchema) []error {
	var errs []error

	if schema.ID == "" {
		errs = append(errs, fmt.Errorf("template id is required"))
	}
	if schema.Name == "" {
		errs = append(errs, fmt.Errorf("template name is required"))
	}
	if !domain.ValidScopes[string(schema.Scope)] {
		errs = append(errs, fmt.Errorf("template scope must be building or unit, got %q", schema.Scope))
	}
	if len(schema.Steps) == 0 {
		errs = append(errs, fmt.Errorf("at least one step is required"))
	}

	keys := map[string]bool{}
	for i, s := range schema.Steps {
		if s.Key == "" {
			errs = append(errs, fmt.Errorf("step[%d]: key is required", i))
		} else if keys[s.Key] {
			errs = append(errs, fmt.Errorf("step[%d]: duplicate key %q", i, s.Key))
		}
		keys[s.Key] = true

		if s.Manual && s.Offset != 0 {
			errs = append(errs, fmt.Errorf("step[%d]: manual step %q cannot carry an offset", i, s.Key))
		}
		if s.Offset > MaxOffset || s.Offset < -MaxOffset {
			errs = append(errs, fmt.Errorf("step[%d]: offset %d is outside ±%d business days", i, s.Offset, MaxOffset))
		}
		if s.Conditional != "" && !slices.Contains(knownFlags, s.Conditional) {
			errs = append(errs, fmt.Errorf("step[%d]: unknown activation flag %q", i, s.Conditional))
		}
		if s.Stage && schema.Scope != domain.ScopeBuilding {
			errs = append(errs, fmt.Errorf("step[%d]: stage steps are only allowed in building templates", i))
		}
	}

	return errs
}
