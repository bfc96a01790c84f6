package service

import (
	"context"
	"testing"

	"github.com/hbfa/milestones/internal/contract"
	"github.com/hbfa/milestones/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSalesService_SaveDefaultsFromCatalog(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	svc := NewSalesService(f.sales, f.observer)

	item, err := svc.Save(ctx, contract.SalesStatusRequest{
		ProjectID: "Aria", BuildingID: "B1", ContractUnitNumber: "101", StatusKey: "backlog", StatusDate: "2024-04-02",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ratified - Fully executed", item.StatusLabel)
	assert.Equal(t, "#fdae6b", item.StatusColor)
	assert.False(t, item.UpdatedAt.IsZero())

	stored, err := f.sales.Get(ctx, "Aria", "101")
	require.NoError(t, err)
	assert.Equal(t, item.StatusLabel, stored.StatusLabel)
	assert.Equal(t, "save-sales-status", f.observer.last().Name)
}

func TestSalesService_SaveUnknownKeyUsesDefaultColour(t *testing.T) {
	f := newFixture(t)
	item, err := NewSalesService(f.sales).Save(context.Background(), contract.SalesStatusRequest{
		ProjectID: "Aria", ContractUnitNumber: "101", StatusKey: "model_home",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultStatusColor, item.StatusColor)
	assert.Equal(t, "model_home", item.StatusLabel)
	assert.Equal(t, "", item.StatusDate)
}

func TestSalesService_SaveRejections(t *testing.T) {
	f := newFixture(t)
	svc := NewSalesService(f.sales)

	_, err := svc.Save(context.Background(), contract.SalesStatusRequest{ProjectID: "Aria", StatusKey: "offer"})
	requireRequestError(t, err, contract.ErrMissingParameter)

	_, err = svc.Save(context.Background(), contract.SalesStatusRequest{
		ProjectID: "Aria", ContractUnitNumber: "101", StatusKey: "offer", StatusDate: "May 1",
	})
	requireRequestError(t, err, contract.ErrInvalidField)
}

func TestSalesService_ListByProject(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	svc := NewSalesService(f.sales)

	items, err := svc.ListByProject(ctx, "Aria")
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)

	for _, unit := range []string{"102", "101"} {
		_, err := svc.Save(ctx, contract.SalesStatusRequest{ProjectID: "Aria", ContractUnitNumber: unit, StatusKey: "closed"})
		require.NoError(t, err)
	}

	items, err = svc.ListByProject(ctx, "Aria")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "101", items[0].ContractUnitNumber)
}
