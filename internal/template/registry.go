package template

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/hbfa/milestones/internal/domain"
	"github.com/hbfa/milestones/internal/schedule"
)

// DefaultSource names the built-in templates in Registry.Source.
const DefaultSource = "default"

// Registry holds the active step template per scope. It starts from the
// built-in templates; loaded files replace them scope by scope.
type Registry struct {
	mu      sync.RWMutex
	steps   map[domain.Scope][]domain.Step
	sources map[domain.Scope]string
}

// NewRegistry returns a registry serving the built-in templates.
func NewRegistry() *Registry {
	return &Registry{
		steps: map[domain.Scope][]domain.Step{
			domain.ScopeBuilding: slices.Clone(schedule.BuildingSteps),
			domain.ScopeUnit:     slices.Clone(schedule.UnitSteps),
		},
		sources: map[domain.Scope]string{
			domain.ScopeBuilding: DefaultSource,
			domain.ScopeUnit:     DefaultSource,
		},
	}
}

// Steps returns a copy of the active template for scope.
func (r *Registry) Steps(scope domain.Scope) []domain.Step {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.steps[scope])
}

// Source returns the id of the template serving scope.
func (r *Registry) Source(scope domain.Scope) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sources[scope]
}

// StageKeys returns the stage step keys of the active building template.
func (r *Registry) StageKeys() []string {
	return domain.StageKeys(r.Steps(domain.ScopeBuilding))
}

// Register validates schema and makes it the active template for its scope.
func (r *Registry) Register(schema *TemplateSchema) error {
	if errs := ValidateSchema(schema); len(errs) > 0 {
		return fmt.Errorf("template %q: %w", schema.ID, errors.Join(errs...))
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.steps[schema.Scope] = schema.DomainSteps()
	r.sources[schema.Scope] = schema.ID
	return nil
}

// LoadDir registers every template file in dir in lexical order, so a later
// file wins for the same scope. Files that fail to load or validate are
// skipped and reported together; the rest still register.
func (r *Registry) LoadDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading template dir: %w", err)
	}

	var (
		loaded []string
		errs   []error
	)
	for _, e := range entries {
		if e.IsDir() || !isTemplateFile(e.Name()) {
			continue
		}
		path := filepath.Join(dir, e.Name())
		schema, err := LoadSchema(path)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", e.Name(), err))
			continue
		}
		if err := r.Register(schema); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", e.Name(), err))
			continue
		}
		loaded = append(loaded, schema.ID)
	}
	return loaded, errors.Join(errs...)
}
