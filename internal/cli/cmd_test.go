package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/hbfa/milestones/internal/contract"
	"github.com/hbfa/milestones/internal/domain"
	"github.com/hbfa/milestones/internal/repository"
	"github.com/hbfa/milestones/internal/service"
	"github.com/hbfa/milestones/internal/template"
	"github.com/hbfa/milestones/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) *App {
	t.Helper()
	db := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(db)

	milestones := repository.NewSQLiteMilestoneRepo(db)
	units := repository.NewSQLiteUnitRepo(db)
	sales := repository.NewSQLiteSalesStatusRepo(db)
	holidays := repository.NewSQLiteHolidayRepo(db)
	registry := template.NewRegistry()

	return &App{
		Units:      service.NewUnitService(units, uow),
		Milestones: service.NewMilestoneService(milestones, units, holidays, registry, uow),
		Sales:      service.NewSalesService(sales),
		Timeline:   service.NewTimelineService(milestones, units, sales, holidays, registry),
		Holidays:   service.NewHolidayService(holidays),
		Projects:   service.NewProjectService(),
	}
}

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return ansiPattern.ReplaceAllString(buf.String(), ""), err
}

func TestProjectResolve(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "project", "resolve", "Fusion - Hayward")
	require.NoError(t, err)
	assert.Contains(t, out, "Fusion - Hayward → Fusion")
	assert.Contains(t, out, "1. Fusion\n")
}

func TestProjectList(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "project", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "SoMi Towns\n")
}

func TestBuildingSaveThenShow(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "building", "save", "Aria", "B1", "--anchor", "2024-01-01", "--third",
		"--override", "foundation_pour=2024-01-24")
	require.NoError(t, err)

	view, err := app.Milestones.GetBuilding(context.Background(), "Aria", "B1")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", view.Schedule.Anchor)
	assert.True(t, view.Schedule.Activation.Third)
	assert.Equal(t, "2024-01-24", view.Schedule.Overrides["foundation_pour"])

	// A second save keeps what it does not touch and removes an emptied override.
	_, err = executeCmd(t, app, "building", "save", "Aria", "B1", "--override", "foundation_pour=", "--pre-kickoff=false")
	require.NoError(t, err)
	view, err = app.Milestones.GetBuilding(context.Background(), "Aria", "B1")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", view.Schedule.Anchor)
	assert.True(t, view.Schedule.Activation.Third)
	assert.NotContains(t, view.Schedule.Overrides, "foundation_pour")

	out, err := executeCmd(t, app, "building", "show", "Aria", "B1")
	require.NoError(t, err)
	assert.Contains(t, out, "ARIA / B1")
	assert.Contains(t, out, "2024-01-15")
	assert.Contains(t, out, "2024-01-22")
}

func TestBuildingSave_RejectsBadDates(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "building", "save", "Aria", "B1", "--anchor", "01/02/2024")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "use YYYY-MM-DD format")

	_, err = executeCmd(t, testApp(t), "building", "save", "Aria", "B1", "--override", "foundation_pour=soon")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "override foundation_pour")
}

func TestBuildingStage(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "building", "save", "Aria", "B1", "--anchor", "2024-01-01")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "building", "stage", "Aria", "B1", "construction_release", "--date", "2023-12-18")
	require.NoError(t, err)
	assert.Equal(t, "construction_release is complete (2023-12-18)\n", out)

	out, err = executeCmd(t, app, "building", "stage", "Aria", "B1", "construction_release", "--undo")
	require.NoError(t, err)
	assert.Contains(t, out, "construction_release is incomplete")

	_, err = executeCmd(t, app, "building", "stage", "Aria", "B1", "roof")
	requireRequestError(t, err, contract.ErrInvalidField)
}

func TestBuildingEdit_RequiresTerminal(t *testing.T) {
	app := testApp(t)
	app.IsInteractive = func() bool { return false }

	_, err := executeCmd(t, app, "building", "edit", "Aria", "B1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interactive terminal")
}

func TestUnitImportListAndSave(t *testing.T) {
	app := testApp(t)
	path := filepath.Join(t.TempDir(), "aria.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`project_id: Aria
units:
  - building_id: B1
    unit_number: "101"
    plan: Plan 2
    sqft: 1450
  - building_id: B1
    unit_number: "102"
sales:
  - contract_unit_number: "101"
    building_id: B1
    status_key: offer
    status_date: "2024-05-01"
`), 0o644))

	out, err := executeCmd(t, app, "unit", "import", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 2 units, 0 holidays, 1 sales statuses.")

	out, err = executeCmd(t, app, "unit", "list", "Aria")
	require.NoError(t, err)
	assert.Contains(t, out, "Plan 2")
	assert.Contains(t, out, "1450")
	assert.Contains(t, out, "● Offer - Out for signature")
	assert.Contains(t, out, "2 units in 1 buildings")

	_, err = executeCmd(t, app, "unit", "save", "Aria", "B1", "102", "--anchor", "2024-06-03", "--status", "backlog")
	requireRequestError(t, err, contract.ErrInvalidField)

	_, err = executeCmd(t, app, "unit", "save", "Aria", "B1", "102", "--anchor", "2024-06-03",
		"--status", "backlog", "--status-date", "2024-06-01")
	require.NoError(t, err)

	out, err = executeCmd(t, app, "unit", "show", "Aria", "B1", "102")
	require.NoError(t, err)
	assert.Contains(t, out, "UNIT 102")
	assert.Contains(t, out, "2024-06-21")

	_, err = executeCmd(t, app, "unit", "save", "Aria", "B2", "102", "--anchor", "2024-06-03")
	requireRequestError(t, err, contract.ErrUnitBuildingMismatch)
}

func TestUnitList_Empty(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "unit", "list", "Vida")
	require.NoError(t, err)
	assert.Equal(t, "No units found.\n", out)
}

func TestSalesSetAndList(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "sales", "set", "Aria", "101", "closed", "--date", "2024-08-30")
	require.NoError(t, err)
	assert.Equal(t, "Unit 101: ● Closed\n", out)

	out, err = executeCmd(t, app, "sales", "list", "Aria")
	require.NoError(t, err)
	assert.Contains(t, out, "2024-08-30")

	out, err = executeCmd(t, app, "sales", "list", "Vida")
	require.NoError(t, err)
	assert.Equal(t, "No sales statuses recorded.\n", out)
}

func TestHolidayCommands(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "holiday", "add", "2024-12-25", "--name", "Christmas")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "holiday", "add", "2024-08-16", "--project", "Aria")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "holiday", "list", "Aria")
	require.NoError(t, err)
	assert.Contains(t, out, "Christmas")
	assert.Contains(t, out, "all projects")
	assert.Contains(t, out, "2024-08-16")

	_, err = executeCmd(t, app, "holiday", "remove", "2024-08-16", "--project", "Aria")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "holiday", "remove", "2024-08-16", "--project", "Aria")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = executeCmd(t, app, "holiday", "add", "tomorrow")
	requireRequestError(t, err, contract.ErrInvalidField)
}

func TestTimelineCommand(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()
	_, err := executeCmd(t, app, "building", "save", "Aria", "B1", "--anchor", "2024-01-01")
	require.NoError(t, err)
	_, err = app.Sales.Save(ctx, contract.SalesStatusRequest{
		ProjectID: "Aria", BuildingID: "B1", ContractUnitNumber: "999", StatusKey: "offer",
	})
	require.NoError(t, err)

	out, err := executeCmd(t, app, "timeline", "Aria", "B1", "--events")
	require.NoError(t, err)
	assert.Contains(t, out, "TIMELINE ARIA / B1")
	assert.Contains(t, out, "records scanned: 2, units matched: 0")
	assert.Contains(t, out, "! sales status for unit 999 has no inventory record in building B1")
	assert.Contains(t, out, "2024-01-22")
}

func TestServe_RequiresHandler(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "serve")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no HTTP handler")
}

func TestApplyOverrides(t *testing.T) {
	out, err := applyOverrides(map[string]string{"a": "2024-01-01", "b": "2024-01-02"}, map[string]string{"a": "", "c": "2024-02-01"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"b": "2024-01-02", "c": "2024-02-01"}, out)
}

func TestBuildingFormValues_RoundTrip(t *testing.T) {
	s := domain.BuildingSchedule{
		Anchor:     "2024-01-01",
		Activation: domain.Activation{Fourth: true},
		Overrides:  map[string]string{"roof": "2024-04-01"},
	}
	v := newBuildingFormValues(s)
	assert.Equal(t, []string{domain.FlagFourth}, v.Floors)

	v.Floors = []string{domain.FlagThird}
	v.PreKickoff = true
	next := v.apply(s)
	assert.Equal(t, domain.Activation{Third: true}, next.Activation)
	assert.True(t, next.PreKickoff)
	assert.Equal(t, "2024-04-01", next.Overrides["roof"])
	assert.False(t, s.Activation.Third)
}

func requireRequestError(t *testing.T, err error, code contract.ErrorCode) {
	t.Helper()
	re, ok := contract.AsRequestError(err)
	require.True(t, ok, "expected RequestError, got %v", err)
	assert.Equal(t, code, re.Code)
}
