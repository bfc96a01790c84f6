package template

import (
	"testing"

	"github.com/hbfa/milestones/internal/domain"
	"github.com/stretchr/testify/assert"
)

func errStrings(errs []error) []string {
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.Error()
	}
	return out
}

func TestValidateSchema_ValidSchema(t *testing.T) {
	schema := &TemplateSchema{
		ID:    "test_template",
		Name:  "Test Template",
		Scope: domain.ScopeBuilding,
		Steps: []StepConfig{
			{Key: "release", Manual: true, Stage: true},
			{Key: "pour", Offset: 5},
			{Key: "third", Offset: 15, Conditional: domain.FlagThird},
		},
	}

	errs := ValidateSchema(schema)
	assert.Empty(t, errs, "valid schema should have no errors")
}

func TestValidateSchema_MissingRequiredFields(t *testing.T) {
	errs := ValidateSchema(&TemplateSchema{})
	msgs := errStrings(errs)

	assert.Contains(t, msgs, "template id is required")
	assert.Contains(t, msgs, "template name is required")
	assert.Contains(t, msgs, `template scope must be building or unit, got ""`)
	assert.Contains(t, msgs, "at least one step is required")
}

func TestValidateSchema_StepErrors(t *testing.T) {
	schema := &TemplateSchema{
		ID:    "bad",
		Name:  "Bad",
		Scope: domain.ScopeUnit,
		Steps: []StepConfig{
			{Key: ""},
			{Key: "a", Manual: true, Offset: 3},
			{Key: "a"},
			{Key: "b", Conditional: "fifth"},
			{Key: "c", Stage: true},
		},
	}

	msgs := errStrings(ValidateSchema(schema))
	assert.Contains(t, msgs, "step[0]: key is required")
	assert.Contains(t, msgs, `step[1]: manual step "a" cannot carry an offset`)
	assert.Contains(t, msgs, `step[2]: duplicate key "a"`)
	assert.Contains(t, msgs, `step[3]: unknown activation flag "fifth"`)
	assert.Contains(t, msgs, "step[4]: stage steps are only allowed in building templates")
}

func TestValidateSchema_OffsetBounds(t *testing.T) {
	schema := &TemplateSchema{
		ID:    "far",
		Name:  "Far",
		Scope: domain.ScopeUnit,
		Steps: []StepConfig{
			{Key: "edge", Offset: MaxOffset},
			{Key: "back", Offset: -MaxOffset},
			{Key: "huge", Offset: 1000000000},
			{Key: "negative", Offset: -MaxOffset - 1},
		},
	}

	msgs := errStrings(ValidateSchema(schema))
	assert.Equal(t, []string{
		"step[2]: offset 1000000000 is outside ±2000 business days",
		"step[3]: offset -2001 is outside ±2000 business days",
	}, msgs)
}

func TestValidateSchema_DefaultTemplatesAreValid(t *testing.T) {
	reg := NewRegistry()
	for _, scope := range []domain.Scope{domain.ScopeBuilding, domain.ScopeUnit} {
		schema := &TemplateSchema{ID: "default", Name: "Default", Scope: scope}
		for _, s := range reg.Steps(scope) {
			schema.Steps = append(schema.Steps, StepConfig{
				Key: s.Key, Code: s.Code, Label: s.Label, Offset: s.Offset,
				Manual: s.Manual, Conditional: s.Conditional, Stage: s.Stage,
			})
		}
		assert.Empty(t, ValidateSchema(schema), "scope %s", scope)
	}
}
