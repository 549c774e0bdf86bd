package main

import (
	"log"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"netplas-inventory/pkg/config"
	"netplas-inventory/pkg/database"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update every table",
		RunE: func(_ *cobra.Command, _ []string) error {
			db, _, err := connect()
			if err != nil {
				return err
			}
			defer closeDB(db)
			return database.Migrate(db)
		},
	}
}

// connect loads the configuration the same way the API does and opens the
// database.
func connect() (*gorm.DB, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	db, err := database.Open(cfg)
	if err != nil {
		return nil, nil, err
	}
	return db, cfg, nil
}

func closeDB(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("Warning: closing database: %v", err)
	}
}
