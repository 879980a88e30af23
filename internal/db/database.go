package db

import (
	"fmt"

	"github.com/findingbd/findingbd-backend/config"
	appLogger "github.com/findingbd/findingbd-backend/pkg/logger"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Initialize opens the SQLite database file. A single handle is enough:
// the application serves one interactive user and every operation is a
// short synchronous call.
func Initialize(cfg *config.DatabaseConfig) error {
	appLogger.Info("Opening database", map[string]interface{}{
		"path": cfg.Path,
	})

	var err error
	DB, err = gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // silent mode, we use our own logger
	})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// Enforce vendor_id/product_id references at the store level
	if err := DB.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	appLogger.Info("Database opened successfully", map[string]interface{}{
		"path": cfg.Path,
	})
	return nil
}

// Close closes the database connection
func Close() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return DB
}
