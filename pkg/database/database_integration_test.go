//go:build integration

package database_test

import (
	"context"
	"testing"
	"time"

	"netplas-inventory/internal/model"
	"netplas-inventory/internal/repository"
	"netplas-inventory/pkg/config"
	"netplas-inventory/pkg/database"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// setupPostgres starts a PostgreSQL container and returns a config pointing at it
func setupPostgres(t *testing.T) *config.Config {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("netplas"),
		postgres.WithUsername("netplas"),
		postgres.WithPassword("netplas"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "start postgres container")
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	return &config.Config{
		DB: config.DatabaseConfig{
			Driver:       config.DriverPostgres,
			URL:          connStr,
			LogLevel:     "silent",
			MaxIdleConns: 2,
			MaxOpenConns: 4,
		},
	}
}

func TestPostgresRoundTrip(t *testing.T) {
	db, err := database.Open(setupPostgres(t))
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	// Running it twice must be harmless
	require.NoError(t, database.Migrate(db))

	repos := repository.New(db)

	stock := &model.ProductStock{Name: "Main"}
	require.NoError(t, repos.ProductStocks.Create(stock))
	assert.ErrorIs(t, repos.ProductStocks.Create(&model.ProductStock{Name: "Main"}), gorm.ErrDuplicatedKey)

	product := &model.Product{
		StockID:   stock.ID,
		Name:      "Bottle",
		UnitPrice: decimal.RequireFromString("12.50"),
		Amount:    decimal.NewFromInt(1),
	}
	require.NoError(t, repos.Products.Create(product))

	found, err := repos.Products.FindByName("Bottle")
	require.NoError(t, err)
	assert.Equal(t, "Main", found.Stock.Name)
	assert.True(t, found.UnitPrice.Equal(decimal.RequireFromString("12.5")))

	products, err := repos.Products.FindAll()
	require.NoError(t, err)
	assert.Len(t, products, 1)

	// Deleting the stock cascades to its products
	require.NoError(t, repos.ProductStocks.Delete(stock.ID))
	products, err = repos.Products.FindAll()
	require.NoError(t, err)
	assert.Empty(t, products)
}
