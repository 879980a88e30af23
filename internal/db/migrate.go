package db

import (
	"github.com/findingbd/findingbd-backend/config"
	"github.com/findingbd/findingbd-backend/internal/app/model"
	"github.com/findingbd/findingbd-backend/pkg/logger"
	"gorm.io/gorm"
)

// Migrate creates the schema and runs the idempotent first-run seed
func Migrate(cfg *config.AdminConfig) error {
	return MigrateDB(DB, cfg)
}

// MigrateDB is Migrate against an explicit handle, used by tests
func MigrateDB(db *gorm.DB, cfg *config.AdminConfig) error {
	logger.Info("Running database migrations...")

	models := []interface{}{
		&model.User{},
		&model.CompanyVendor{},
		&model.RetailVendor{},
		&model.Product{},
		&model.Review{},
		&model.Favourite{},
		&model.FavouriteCategory{},
		&model.Admin{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		logger.Error("Failed to run migrations", err)
		return err
	}

	if err := seedInitialData(db, cfg); err != nil {
		logger.Error("Failed to seed initial data during migration", err)
		return err
	}

	logger.Info("Database migrations completed successfully", map[string]interface{}{
		"models_count": len(models),
	})
	return nil
}
