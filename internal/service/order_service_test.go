package service_test

import (
	"testing"

	"netplas-inventory/internal/model"
	"netplas-inventory/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedOrders prepares the catalog, a registered user, a client and a supplier.
func seedOrders(t *testing.T, e *env) {
	t.Helper()
	e.seedCatalog(t)
	e.register(t, "ayse@example.com", "blue")

	_, _, err := service.NewClientService(e.repos, e.events).Create(e.caller, service.CreatePartyRequest{Email: "client@example.com", Name: "Can"})
	require.NoError(t, err)
	_, _, err = service.NewSupplierService(e.repos, e.events).Create(e.caller, service.CreatePartyRequest{Email: "supplier@example.com", Name: "Deniz"})
	require.NoError(t, err)
}

func productOrderRequest() service.CreateProductOrderRequest {
	return service.CreateProductOrderRequest{
		ClientEmail: "client@example.com",
		ProductName: "Bottle",
		OrderInput: service.OrderInput{
			UserEmail:    "ayse@example.com",
			Quantity:     decimal.NewFromInt(4),
			OrderTitle:   "Spring batch",
			DeliveryDate: "2026-11-02",
		},
	}
}

func rawOrderRequest() service.CreateRawOrderRequest {
	return service.CreateRawOrderRequest{
		SupplierEmail: "supplier@example.com",
		RawName:       "Cotton",
		OrderInput: service.OrderInput{
			UserEmail:  "ayse@example.com",
			Quantity:   decimal.NewFromInt(10),
			OrderTitle: "Cotton restock",
			Status:     model.OrderPreparing,
		},
	}
}

func TestCreateProductOrderWritesIncome(t *testing.T) {
	e := newEnv(t)
	seedOrders(t, e)

	order, msg, err := e.orders().CreateProductOrder(e.caller, productOrderRequest())
	require.NoError(t, err)
	assert.Equal(t, "The product order was created successfully.", msg)
	assert.Equal(t, model.OrderPending, order.Status)

	resp := order.ToResponse()
	assert.Equal(t, "Bottle", resp.Product.Name)
	assert.Equal(t, "client@example.com", resp.Client.Email)
	assert.Equal(t, "ayse@example.com", resp.User.Email)
	require.NotNil(t, resp.DeliveryDate)
	assert.Equal(t, "2026-11-02", *resp.DeliveryDate)

	budget, err := e.repos.Budgets.FindByProductOrder(order.ID)
	require.NoError(t, err)
	assert.Equal(t, model.BudgetIncome, budget.Kind())
	assert.True(t, budget.Amount.Equal(decimal.NewFromInt(50)), budget.Amount.String())
}

func TestCreateOrderResolutionFailures(t *testing.T) {
	e := newEnv(t)
	seedOrders(t, e)

	tests := []struct {
		name   string
		mutate func(r *service.CreateProductOrderRequest)
		kind   service.ErrorKind
	}{
		{"unknown client", func(r *service.CreateProductOrderRequest) { r.ClientEmail = "x@example.com" }, service.KindNotFound},
		{"unknown user", func(r *service.CreateProductOrderRequest) { r.UserEmail = "x@example.com" }, service.KindNotFound},
		{"unknown product", func(r *service.CreateProductOrderRequest) { r.ProductName = "Jar" }, service.KindNotFound},
		{"zero quantity", func(r *service.CreateProductOrderRequest) { r.Quantity = decimal.Zero }, service.KindInvalidInput},
		{"bad status", func(r *service.CreateProductOrderRequest) { r.Status = "lost" }, service.KindInvalidInput},
		{"bad date", func(r *service.CreateProductOrderRequest) { r.DeliveryDate = "02/11/2026" }, service.KindInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := productOrderRequest()
			tt.mutate(&req)
			_, _, err := e.orders().CreateProductOrder(e.caller, req)
			requireKind(t, err, tt.kind)
		})
	}
	assert.Equal(t, int64(0), e.count(t, &model.ProductOrder{}))
	assert.Equal(t, int64(0), e.count(t, &model.Budget{}))
}

func TestUpdateProductOrderRecomputesBudget(t *testing.T) {
	e := newEnv(t)
	seedOrders(t, e)
	order, _, err := e.orders().CreateProductOrder(e.caller, productOrderRequest())
	require.NoError(t, err)

	quantity := decimal.NewFromInt(2)
	shipped := model.OrderShipped
	empty := ""
	updated, _, err := e.orders().UpdateProductOrder(e.caller, order.ID, service.UpdateProductOrderRequest{
		OrderPatch: service.OrderPatch{Quantity: &quantity, Status: &shipped, DeliveryDate: &empty},
	})
	require.NoError(t, err)
	assert.Equal(t, model.OrderShipped, updated.Status)
	assert.Nil(t, updated.DeliveryDate)

	budget, err := e.repos.Budgets.FindByProductOrder(order.ID)
	require.NoError(t, err)
	assert.True(t, budget.Amount.Equal(decimal.NewFromInt(25)), budget.Amount.String())

	_, _, err = e.orders().UpdateProductOrder(e.caller, 999, service.UpdateProductOrderRequest{})
	requireKind(t, err, service.KindNotFound)
}

func TestRawOrderSameStatusIsForbidden(t *testing.T) {
	e := newEnv(t)
	seedOrders(t, e)
	order, _, err := e.orders().CreateRawOrder(e.caller, rawOrderRequest())
	require.NoError(t, err)
	assert.Equal(t, model.OrderPreparing, order.Status)

	same := model.OrderPreparing
	title := "renamed"
	_, _, err = e.orders().UpdateRawOrder(e.caller, order.ID, service.UpdateRawOrderRequest{
		OrderPatch: service.OrderPatch{Status: &same, OrderTitle: &title},
	})
	requireKind(t, err, service.KindForbidden)
	assert.Equal(t, "The status of the order is already the same.", err.(*service.Error).Message)

	unchanged, err := e.repos.RawOrders.FindByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, model.OrderPreparing, unchanged.Status)
	assert.Equal(t, "Cotton restock", unchanged.OrderTitle)

	delivered := model.OrderDelivered
	updated, msg, err := e.orders().UpdateRawOrder(e.caller, order.ID, service.UpdateRawOrderRequest{
		OrderPatch: service.OrderPatch{Status: &delivered},
	})
	require.NoError(t, err)
	assert.Equal(t, "The order status was changed successfully.", msg)
	assert.Equal(t, model.OrderDelivered, updated.Status)
}

func TestRawOrderBudgetAndDelete(t *testing.T) {
	e := newEnv(t)
	seedOrders(t, e)
	order, _, err := e.orders().CreateRawOrder(e.caller, rawOrderRequest())
	require.NoError(t, err)

	budget, err := e.repos.Budgets.FindByRawOrder(order.ID)
	require.NoError(t, err)
	assert.Equal(t, model.BudgetOutcome, budget.Kind())
	assert.True(t, budget.Amount.Equal(decimal.NewFromInt(30)), budget.Amount.String())

	msg, err := e.orders().DeleteRawOrder(e.caller, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "The raw material order information has been successfully removed.", msg)
	assert.Equal(t, int64(0), e.count(t, &model.Budget{}))

	_, err = e.orders().DeleteRawOrder(e.caller, order.ID)
	requireKind(t, err, service.KindNotFound)
	_, err = e.orders().DeleteProductOrder(e.caller, 999)
	requireKind(t, err, service.KindNotFound)
}

func TestRawOrderDeliveryDateSetAndCleared(t *testing.T) {
	e := newEnv(t)
	seedOrders(t, e)
	order, _, err := e.orders().CreateRawOrder(e.caller, rawOrderRequest())
	require.NoError(t, err)
	assert.Nil(t, order.DeliveryDate)

	date := "2026-12-01"
	updated, _, err := e.orders().UpdateRawOrder(e.caller, order.ID, service.UpdateRawOrderRequest{
		OrderPatch: service.OrderPatch{DeliveryDate: &date},
	})
	require.NoError(t, err)
	resp := updated.ToResponse()
	require.NotNil(t, resp.DeliveryDate)
	assert.Equal(t, "2026-12-01", *resp.DeliveryDate)

	bad := "2026-13-01"
	_, _, err = e.orders().UpdateRawOrder(e.caller, order.ID, service.UpdateRawOrderRequest{
		OrderPatch: service.OrderPatch{DeliveryDate: &bad},
	})
	requireKind(t, err, service.KindInvalidInput)

	empty := ""
	updated, _, err = e.orders().UpdateRawOrder(e.caller, order.ID, service.UpdateRawOrderRequest{
		OrderPatch: service.OrderPatch{DeliveryDate: &empty},
	})
	require.NoError(t, err)
	assert.Nil(t, updated.DeliveryDate)
}
