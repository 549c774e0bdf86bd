package service_test

import (
	"testing"

	"netplas-inventory/internal/model"
	"netplas-inventory/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDamagedProducts(t *testing.T) {
	e := newEnv(t)
	e.seedCatalog(t)
	_, _, err := e.catalog().CreateProduct(e.caller, service.CreateProductRequest{StockName: "Main", Name: "Jar", UnitPrice: decimal.NewFromInt(4)})
	require.NoError(t, err)
	damage := service.NewDamageService(e.repos, e.events)

	_, _, err = damage.LogProductDamage(e.caller, service.DamagedProductRequest{ProductName: "Vase"})
	requireKind(t, err, service.KindNotFound)
	assert.Equal(t, int64(0), e.count(t, &model.DamagedProduct{}))

	record, _, err := damage.LogProductDamage(e.caller, service.DamagedProductRequest{ProductName: "Bottle"})
	require.NoError(t, err)
	assert.Equal(t, "Bottle", record.ToResponse().Product.Name)
	_, _, err = damage.LogProductDamage(e.caller, service.DamagedProductRequest{ProductName: "Jar"})
	require.NoError(t, err)

	all, err := damage.ListDamagedProducts("")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	bottles, err := damage.ListDamagedProducts("Bottle")
	require.NoError(t, err)
	require.Len(t, bottles, 1)
	assert.Equal(t, record.ID, bottles[0].ID)

	moved, _, err := damage.UpdateDamagedProduct(e.caller, record.ID, service.DamagedProductRequest{ProductName: "Jar"})
	require.NoError(t, err)
	assert.Equal(t, "Jar", moved.Product.Name)

	_, err = damage.DeleteDamagedProduct(e.caller, record.ID)
	require.NoError(t, err)
	_, err = damage.DeleteDamagedProduct(e.caller, record.ID)
	requireKind(t, err, service.KindNotFound)
}

func TestDamagedRaws(t *testing.T) {
	e := newEnv(t)
	e.seedCatalog(t)
	damage := service.NewDamageService(e.repos, e.events)

	record, msg, err := damage.LogRawDamage(e.caller, service.DamagedRawRequest{RawName: "Cotton"})
	require.NoError(t, err)
	assert.Equal(t, "The damaged raw material was successfully created.", msg)

	list, err := damage.ListDamagedRaws("Cotton")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Cotton", list[0].Raw.Name)

	_, err = damage.ListDamagedRaws("Silk")
	requireKind(t, err, service.KindNotFound)

	_, _, err = damage.UpdateDamagedRaw(e.caller, record.ID, service.DamagedRawRequest{RawName: "Silk"})
	requireKind(t, err, service.KindNotFound)

	// Deleting the raw material removes its damage records
	_, err = e.catalog().DeleteRaw(e.caller, record.RawID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), e.count(t, &model.DamagedRaw{}))
}
