package template

import "github.com/hbfa/milestones/internal/domain"

// TemplateSchema is a milestone step template as stored on disk.
type TemplateSchema struct {
	ID          string       `json:"id" yaml:"id"`
	Name        string       `json:"name" yaml:"name"`
	Version     string       `json:"version" yaml:"version"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty"`
	Scope       domain.Scope `json:"scope" yaml:"scope"`
	Steps       []StepConfig `json:"steps" yaml:"steps"`
}

type StepConfig struct {
	Key         string `json:"key" yaml:"key"`
	Code        string `json:"code,omitempty" yaml:"code,omitempty"`
	Label       string `json:"label" yaml:"label"`
	Offset      int    `json:"offset" yaml:"offset"` // business days, may be negative
	Manual      bool   `json:"manual,omitempty" yaml:"manual,omitempty"`
	Conditional string `json:"conditional,omitempty" yaml:"conditional,omitempty"` // "third" or "fourth"
	Stage       bool   `json:"stage,omitempty" yaml:"stage,omitempty"`
}

// DomainSteps converts the configured steps into resolver input. Missing
// labels fall back to "<code> <key>".
func (s *TemplateSchema) DomainSteps() []domain.Step {
	steps := make([]domain.Step, 0, len(s.Steps))
	for _, c := range s.Steps {
		label := c.Label
		if label == "" {
			label = c.Key
			if c.Code != "" {
				label = c.Code + " " + c.Key
			}
		}
		steps = append(steps, domain.Step{
			Key:         c.Key,
			Code:        c.Code,
			Label:       label,
			Offset:      c.Offset,
			Manual:      c.Manual,
			Conditional: c.Conditional,
			Stage:       c.Stage,
		})
	}
	return steps
}
