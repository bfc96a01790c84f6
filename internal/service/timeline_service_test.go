package service

import (
	"context"
	"strings"
	"testing"

	"github.com/hbfa/milestones/internal/contract"
	"github.com/hbfa/milestones/internal/domain"
	"github.com/hbfa/milestones/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedTimeline(t *testing.T, f *fixture) {
	t.Helper()
	ctx := context.Background()
	svc := f.milestoneService(nil)

	require.NoError(t, f.units.Upsert(ctx, testutil.NewTestUnit("Aria", "B1", "101")))
	require.NoError(t, f.units.Upsert(ctx, testutil.NewTestUnit("Aria", "B1", "102")))
	require.NoError(t, f.units.Upsert(ctx, testutil.NewTestUnit("Aria", "B2", "201")))

	require.NoError(t, svc.SaveBuilding(ctx, contract.SaveBuildingRequest{
		ProjectID: "Aria", BuildingID: "B1", Building: map[string]any{"anchor": "2024-01-01"},
	}))
	require.NoError(t, svc.SaveUnit(ctx, contract.SaveUnitRequest{
		ProjectID: "Aria", BuildingID: "B1", UnitNumber: "101", Unit: map[string]any{"anchor": "2024-06-03"},
	}))

	for _, st := range []domain.SalesStatus{
		{ProjectID: "Aria", BuildingID: "B1", ContractUnitNumber: "101", StatusKey: "backlog", StatusDate: "2024-04-02"},
		{ProjectID: "Aria", BuildingID: "B1", ContractUnitNumber: "102", StatusKey: "mystery"},
		{ProjectID: "Aria", BuildingID: "B1", ContractUnitNumber: "999", StatusKey: "offer"},
	} {
		st := st.WithCatalogDefaults()
		require.NoError(t, f.sales.Upsert(ctx, &st))
	}
}

func TestTimeline_JoinsUnitsAndSales(t *testing.T) {
	f := newFixture(t)
	seedTimeline(t, f)

	resp, err := f.timelineService().Timeline(context.Background(), contract.TimelineRequest{
		ProjectID: "Aria", BuildingID: "B1", IncludeUnits: true,
	})
	require.NoError(t, err)

	assert.Equal(t, 5, resp.SalesSync.RecordsScanned)
	assert.Equal(t, 2, resp.SalesSync.UnitsMatched)
	assert.False(t, resp.SalesSync.LastUpdated.IsZero())
	require.Len(t, resp.Units, 2)

	u101 := resp.Units[0]
	assert.Equal(t, "101", u101.UnitNumber)
	assert.Equal(t, "2024-06-03", u101.Milestones["anchor"])
	require.NotNil(t, u101.SalesStatus)
	assert.Equal(t, "backlog", u101.SalesStatus.StatusKey)
	assert.Equal(t, "Ratified - Fully executed", u101.SalesStatus.StatusLabel)

	u102 := resp.Units[1]
	assert.Empty(t, u102.Milestones)
	require.NotNil(t, u102.SalesStatus)

	assert.Equal(t, []string{
		`unit 102 has unknown sales status "mystery"`,
		"sales status for unit 999 has no inventory record in building B1",
	}, resp.SalesSync.Warnings)
	assert.Empty(t, resp.Events)

	ev := f.observer.last()
	assert.Equal(t, "timeline", ev.Name)
	assert.True(t, ev.Success)
	assert.Equal(t, 5, ev.Fields["records_scanned"])
	assert.Equal(t, 2, ev.Fields["units_matched"])
}

func TestTimeline_WithoutUnitsSkipsInventory(t *testing.T) {
	f := newFixture(t)
	seedTimeline(t, f)

	resp, err := f.timelineService().Timeline(context.Background(), contract.TimelineRequest{
		ProjectID: "Aria", BuildingID: "B1",
	})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.SalesSync.RecordsScanned)
	assert.Equal(t, 0, resp.SalesSync.UnitsMatched)
	assert.NotNil(t, resp.Units)
	assert.Empty(t, resp.Units)
	assert.Empty(t, resp.SalesSync.Warnings)
}

func TestTimeline_EventsAreOrderedByDate(t *testing.T) {
	f := newFixture(t)
	seedTimeline(t, f)

	resp, err := f.timelineService().Timeline(context.Background(), contract.TimelineRequest{
		ProjectID: "Aria", BuildingID: "B1", IncludeUnits: true, IncludeEvents: true,
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Events)

	for i := 1; i < len(resp.Events); i++ {
		assert.LessOrEqual(t, resp.Events[i-1].Date, resp.Events[i].Date)
	}
	assert.Equal(t, "2024-01-01", resp.Events[0].Date)
	assert.Equal(t, domain.ScopeBuilding, resp.Events[0].Scope)

	assert.Contains(t, resp.Events, contract.TimelineEvent{
		Scope: domain.ScopeBuilding, Key: "foundation_pour", Label: eventLabel(t, resp.Events, "foundation_pour"), Date: "2024-01-22",
	})
	var sawDrywall bool
	for _, ev := range resp.Events {
		assert.NotEqual(t, "102", ev.UnitNumber, "units without a stored schedule have no events")
		if ev.UnitNumber == "101" && ev.Key == "drywall_nail_inspection" {
			sawDrywall = true
			assert.Equal(t, "2024-06-21", ev.Date)
			assert.Equal(t, domain.ScopeUnit, ev.Scope)
		}
	}
	assert.True(t, sawDrywall)
}

func eventLabel(t *testing.T, events []contract.TimelineEvent, key string) string {
	t.Helper()
	for _, ev := range events {
		if ev.Key == key {
			return ev.Label
		}
	}
	t.Fatalf("event %s missing", key)
	return ""
}

func TestTimeline_EmptyBuildingAndMissingProject(t *testing.T) {
	f := newFixture(t)
	svc := f.timelineService()

	resp, err := svc.Timeline(context.Background(), contract.TimelineRequest{ProjectID: "Aria"})
	require.NoError(t, err)
	assert.Equal(t, "Aria", resp.ProjectID)
	assert.Empty(t, resp.Units)
	assert.Equal(t, 0, resp.SalesSync.RecordsScanned)

	resp, err = svc.Timeline(context.Background(), contract.TimelineRequest{ProjectID: "Aria", BuildingID: "B9", IncludeUnits: true})
	require.NoError(t, err)
	assert.Empty(t, resp.Units)

	_, err = svc.Timeline(context.Background(), contract.TimelineRequest{BuildingID: "B1"})
	requireRequestError(t, err, contract.ErrMissingParameter)
	assert.True(t, strings.Contains(err.Error(), "project_id is required"))
	assert.False(t, f.observer.last().Success)
}
