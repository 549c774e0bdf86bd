package service_test

import (
	"testing"

	"netplas-inventory/internal/model"
	"netplas-inventory/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductStockGetOrCreate(t *testing.T) {
	e := newEnv(t)
	stocks := service.NewProductStockService(e.repos, e.events)

	stock, msg, err := stocks.Create(e.caller, service.StockRequest{Name: "Main"})
	require.NoError(t, err)
	assert.Equal(t, "Main", stock.Name)
	assert.Equal(t, "The product repository has been successfully created.", msg)
	assert.Equal(t, "1", stock.CreatedBy)

	_, _, err = stocks.Create(e.caller, service.StockRequest{Name: "Main"})
	requireKind(t, err, service.KindConflict)
	assert.Equal(t, "The product stock already exists.", err.(*service.Error).Message)
	assert.Equal(t, int64(1), e.count(t, &model.ProductStock{}))
}

func TestRawStockLifecycle(t *testing.T) {
	e := newEnv(t)
	stocks := service.NewRawStockService(e.repos, e.events)

	yard, _, err := stocks.Create(e.caller, service.StockRequest{Name: "Yard"})
	require.NoError(t, err)
	_, _, err = stocks.Create(e.caller, service.StockRequest{Name: "Depot"})
	require.NoError(t, err)

	list, err := stocks.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Depot", list[0].Name)

	renamed, err := stocks.Update(e.caller, yard.ID, service.StockRequest{Name: "Back Yard"})
	require.NoError(t, err)
	assert.Equal(t, "Back Yard", renamed.Name)

	_, err = stocks.Update(e.caller, yard.ID, service.StockRequest{Name: "Depot"})
	requireKind(t, err, service.KindConflict)

	_, err = stocks.Update(e.caller, 999, service.StockRequest{Name: "Elsewhere"})
	requireKind(t, err, service.KindNotFound)

	_, err = stocks.Create(e.caller, service.StockRequest{Name: "  "})
	requireKind(t, err, service.KindInvalidInput)

	msg, err := stocks.Delete(e.caller, yard.ID)
	require.NoError(t, err)
	assert.Equal(t, "The raw material store has been successfully removed.", msg)

	_, err = stocks.Delete(e.caller, yard.ID)
	requireKind(t, err, service.KindNotFound)

	assert.Equal(t, []string{
		"raw_stock.created", "raw_stock.created", "raw_stock.updated", "raw_stock.deleted",
	}, e.events.keys())
}
