package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/hbfa/milestones/internal/cli/formatter"
	"github.com/hbfa/milestones/internal/domain"
)

// milestonesHuhTheme returns the huh theme matching the formatter palette.
func milestonesHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// dateInput returns a huh.Input for an optional date field with YYYY-MM-DD validation.
func dateInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder("2025-06-30").
		Value(value).
		Validate(validateOptionalDate)
}

// buildingFormValues are the editable fields of a building schedule.
type buildingFormValues struct {
	Anchor       string
	ProjectedCOE string
	Floors       []string
	PreKickoff   bool
}

func newBuildingFormValues(s domain.BuildingSchedule) *buildingFormValues {
	v := &buildingFormValues{
		Anchor:       s.Anchor,
		ProjectedCOE: s.ProjectedCOE,
		PreKickoff:   s.PreKickoff,
	}
	if s.Activation.Third {
		v.Floors = append(v.Floors, domain.FlagThird)
	}
	if s.Activation.Fourth {
		v.Floors = append(v.Floors, domain.FlagFourth)
	}
	return v
}

// apply returns s with the form values written over it. Overrides and
// stages are kept.
func (v *buildingFormValues) apply(s domain.BuildingSchedule) domain.BuildingSchedule {
	next := s.Clone()
	next.Anchor = v.Anchor
	next.ProjectedCOE = v.ProjectedCOE
	next.PreKickoff = v.PreKickoff
	next.Activation = domain.Activation{}
	for _, f := range v.Floors {
		switch f {
		case domain.FlagThird:
			next.Activation.Third = true
		case domain.FlagFourth:
			next.Activation.Fourth = true
		}
	}
	return next
}

func buildingForm(projectID, buildingID string, v *buildingFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			dateInput("Anchor date", &v.Anchor).
				Description(fmt.Sprintf("%s / %s", projectID, buildingID)),
			dateInput("Projected COE", &v.ProjectedCOE),
			huh.NewMultiSelect[string]().
				Title("Upper floors").
				Options(
					huh.NewOption("Third floor", domain.FlagThird),
					huh.NewOption("Fourth floor", domain.FlagFourth),
				).
				Value(&v.Floors),
			huh.NewConfirm().
				Title("Pre-kickoff?").
				Affirmative("Yes").
				Negative("No").
				Value(&v.PreKickoff),
		),
	).WithTheme(milestonesHuhTheme()).WithShowHelp(false)
}
