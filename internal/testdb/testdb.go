// Package testdb opens a throwaway migrated SQLite database for tests.
package testdb

import (
	"path/filepath"
	"testing"

	"netplas-inventory/pkg/config"
	"netplas-inventory/pkg/database"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Open returns a migrated database living in t.TempDir.
func Open(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := &config.Config{
		DB: config.DatabaseConfig{
			Driver:       config.DriverSQLite,
			URL:          filepath.Join(t.TempDir(), "test.db") + "?_foreign_keys=1",
			LogLevel:     "silent",
			MaxIdleConns: 2,
			MaxOpenConns: 4,
		},
	}
	db, err := database.Open(cfg)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}
