package database

import (
	"fmt"
	"log"

	"netplas-inventory/internal/model"

	"gorm.io/gorm"
)

// Migrate creates or updates every table the service uses.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(model.All()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	log.Println("Database migrated")
	return nil
}
