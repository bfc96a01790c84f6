package template

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hbfa/milestones/internal/domain"
	"github.com/hbfa/milestones/internal/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Defaults(t *testing.T) {
	reg := NewRegistry()

	assert.Equal(t, schedule.BuildingSteps, reg.Steps(domain.ScopeBuilding))
	assert.Equal(t, schedule.UnitSteps, reg.Steps(domain.ScopeUnit))
	assert.Equal(t, DefaultSource, reg.Source(domain.ScopeBuilding))
	assert.Equal(t, []string{"construction_release", domain.FoundationStartKey}, reg.StageKeys())
}

func TestRegistry_StepsReturnsCopy(t *testing.T) {
	reg := NewRegistry()
	steps := reg.Steps(domain.ScopeUnit)
	steps[0].Offset = 99

	assert.Equal(t, 0, reg.Steps(domain.ScopeUnit)[0].Offset)
	assert.Equal(t, 0, schedule.UnitSteps[0].Offset)
}

func TestRegistry_RegisterRejectsInvalid(t *testing.T) {
	reg := NewRegistry()
	err := reg.Register(&TemplateSchema{ID: "broken", Scope: domain.ScopeUnit})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "template name is required")
	assert.Equal(t, DefaultSource, reg.Source(domain.ScopeUnit))
}

func TestRegistry_LoadDir(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	write("10-unit.yaml", `
id: unit_a
name: Unit A
scope: unit
steps:
  - {key: frame, manual: true}
  - {key: drywall, offset: 3}
`)
	write("20-unit.json", `{"id":"unit_b","name":"Unit B","scope":"unit","steps":[{"key":"frame","manual":true}]}`)
	write("30-bad.json", `{"id":"bad","name":"Bad","scope":"garage","steps":[{"key":"x"}]}`)
	write("notes.txt", "ignored")

	reg := NewRegistry()
	loaded, err := reg.LoadDir(dir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "30-bad.json")
	assert.Equal(t, []string{"unit_a", "unit_b"}, loaded)
	assert.Equal(t, "unit_b", reg.Source(domain.ScopeUnit))
	assert.Len(t, reg.Steps(domain.ScopeUnit), 1)
	assert.Equal(t, DefaultSource, reg.Source(domain.ScopeBuilding))
}

func TestRegistry_LoadDirMissing(t *testing.T) {
	_, err := NewRegistry().LoadDir(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}
