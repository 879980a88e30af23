package main

import (
	"flag"

	"github.com/findingbd/findingbd-backend/config"
	"github.com/findingbd/findingbd-backend/internal/app/repository"
	"github.com/findingbd/findingbd-backend/internal/db"
	"github.com/findingbd/findingbd-backend/pkg/logger"
)

// Maintenance entry point: runs migrations and first-run seeding against
// the configured database file, and optionally removes a user account.
func main() {
	deleteUserEmail := flag.String("delete-user", "", "delete the user account with this email and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	logger.Initialize(logger.Config{
		Level:       "info",
		Format:      "console",
		EnableColor: true,
	})

	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	if err := db.Migrate(&cfg.Admin); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	if *deleteUserEmail != "" {
		userRepo := repository.NewUserRepository(db.GetDB())
		deleted, err := userRepo.DeleteByEmail(*deleteUserEmail)
		if err != nil {
			logger.Fatal("Failed to delete user", err, map[string]interface{}{
				"email": *deleteUserEmail,
			})
		}
		if !deleted {
			logger.Warn("No user found with that email", map[string]interface{}{
				"email": *deleteUserEmail,
			})
			return
		}
		logger.Info("User deleted", map[string]interface{}{
			"email": *deleteUserEmail,
		})
		return
	}

	logger.Info("Database migrated and seeded", map[string]interface{}{
		"path": cfg.Database.Path,
	})
}
