package service

import (
	"context"
	"testing"

	"github.com/hbfa/milestones/internal/contract"
	"github.com/hbfa/milestones/internal/domain"
	"github.com/hbfa/milestones/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHolidayService_AddListDates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	svc := NewHolidayService(f.holidays)

	require.NoError(t, svc.Add(ctx, domain.Holiday{Date: "2024-12-25", Name: "Christmas"}))
	require.NoError(t, svc.Add(ctx, domain.Holiday{ProjectID: "Aria", Date: "2024-08-16", Name: "Site shutdown"}))

	items, err := svc.List(ctx, "Aria")
	require.NoError(t, err)
	assert.Equal(t, []domain.Holiday{
		{ProjectID: "Aria", Date: "2024-08-16", Name: "Site shutdown"},
		{ProjectID: "", Date: "2024-12-25", Name: "Christmas"},
	}, items)

	dates, err := svc.Dates(ctx, "Vida")
	require.NoError(t, err)
	assert.True(t, dates.Contains("2024-12-25"))
	assert.False(t, dates.Contains("2024-08-16"))
}

func TestHolidayService_AddRejectsBadDates(t *testing.T) {
	svc := NewHolidayService(newFixture(t).holidays)

	requireRequestError(t, svc.Add(context.Background(), domain.Holiday{ProjectID: "Aria"}), contract.ErrMissingParameter)
	requireRequestError(t, svc.Add(context.Background(), domain.Holiday{ProjectID: "Aria", Date: "12/25/2024"}), contract.ErrInvalidField)
}

func TestHolidayService_Remove(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	svc := NewHolidayService(f.holidays, f.observer)

	require.NoError(t, svc.Add(ctx, domain.Holiday{ProjectID: "Aria", Date: "2024-08-16"}))
	assert.Equal(t, "add-holiday", f.observer.last().Name)
	assert.True(t, f.observer.last().Success)

	require.NoError(t, svc.Remove(ctx, "Aria", "2024-08-16"))
	assert.Equal(t, "remove-holiday", f.observer.last().Name)
	assert.True(t, f.observer.last().Success)

	err := svc.Remove(ctx, "Aria", "2024-08-16")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.False(t, f.observer.last().Success)
	assert.ErrorIs(t, f.observer.last().Err, repository.ErrNotFound)

	items, err := svc.List(ctx, "Aria")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestHolidayService_ListRequiresProject(t *testing.T) {
	_, err := NewHolidayService(newFixture(t).holidays).List(context.Background(), "")
	requireRequestError(t, err, contract.ErrMissingParameter)
}
