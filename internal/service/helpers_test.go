package service_test

import (
	"sync"
	"testing"
	"time"

	"netplas-inventory/internal/events"
	"netplas-inventory/internal/model"
	"netplas-inventory/internal/repository"
	"netplas-inventory/internal/service"
	"netplas-inventory/internal/testdb"
	"netplas-inventory/pkg/jwt"
	"netplas-inventory/pkg/password"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const strongPassword = "tiger-lily-harbor-42"

type recorder struct {
	mu     sync.Mutex
	events []events.Event
}

func (r *recorder) Publish(e events.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recorder) keys() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	keys := make([]string, len(r.events))
	for i, e := range r.events {
		keys[i] = e.RoutingKey()
	}
	return keys
}

type env struct {
	db     *gorm.DB
	repos  *repository.Repositories
	events *recorder
	issuer *jwt.Issuer
	policy *password.Policy
	caller *service.Caller
}

func newEnv(t *testing.T) *env {
	t.Helper()
	db := testdb.Open(t)
	return &env{
		db:     db,
		repos:  repository.New(db),
		events: &recorder{},
		issuer: jwt.NewIssuer("test-secret", time.Hour),
		policy: password.NewPolicy(8, 0.7),
		caller: &service.Caller{UserID: 1, Email: "manager@example.com", Role: model.RoleManager},
	}
}

func (e *env) count(t *testing.T, m interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, e.db.Model(m).Count(&n).Error)
	return n
}

func (e *env) auth() service.AuthService {
	return service.NewAuthService(e.repos, e.issuer, e.policy, e.events)
}

func (e *env) catalog() service.CatalogService {
	return service.NewCatalogService(e.repos, e.events)
}

func (e *env) orders() service.OrderService {
	return service.NewOrderService(e.repos, e.events)
}

func (e *env) register(t *testing.T, email, answer string) {
	t.Helper()
	_, err := e.auth().Register(nil, service.RegisterRequest{
		Email:         email,
		Password:      strongPassword,
		PasswordAgain: strongPassword,
		Name:          "Ayse",
		Surname:       "Yilmaz",
		SecretAnswer:  answer,
	})
	require.NoError(t, err)
}

// seedCatalog creates one product stock, one raw stock, a product "Bottle"
// priced 12.50 and a raw material "Cotton" priced 3.
func (e *env) seedCatalog(t *testing.T) {
	t.Helper()
	_, _, err := service.NewProductStockService(e.repos, e.events).Create(e.caller, service.StockRequest{Name: "Main"})
	require.NoError(t, err)
	_, _, err = service.NewRawStockService(e.repos, e.events).Create(e.caller, service.StockRequest{Name: "Yard"})
	require.NoError(t, err)

	_, _, err = e.catalog().CreateProduct(e.caller, service.CreateProductRequest{
		StockName: "Main",
		Name:      "Bottle",
		UnitPrice: decimal.RequireFromString("12.50"),
	})
	require.NoError(t, err)
	_, _, err = e.catalog().CreateRaw(e.caller, service.CreateRawRequest{
		StockName: "Yard",
		Name:      "Cotton",
		UnitPrice: decimal.NewFromInt(3),
	})
	require.NoError(t, err)
}

func requireKind(t *testing.T, err error, kind service.ErrorKind) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, kind, service.KindOf(err), err.Error())
}
