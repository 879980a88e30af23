package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/findingbd/findingbd-backend/config"
	"github.com/findingbd/findingbd-backend/internal/app/controller"
	"github.com/findingbd/findingbd-backend/internal/app/repository"
	"github.com/findingbd/findingbd-backend/internal/app/service"
	"github.com/findingbd/findingbd-backend/internal/db"
	"github.com/findingbd/findingbd-backend/internal/middleware"
	"github.com/findingbd/findingbd-backend/internal/router"
	"github.com/findingbd/findingbd-backend/internal/session"
	"github.com/findingbd/findingbd-backend/internal/storage"
	"github.com/findingbd/findingbd-backend/pkg/logger"
	"github.com/findingbd/findingbd-backend/pkg/mailer"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting Finding BD Products Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Initialize database
	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Run migrations and seed the default admin plus the starter catalog
	if err := db.Migrate(&cfg.Admin); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Initialize image storage
	imageStore, err := storage.NewLocalImageStore(cfg.Storage.ImagesDir)
	if err != nil {
		logger.Fatal("Failed to initialize image storage", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db.GetDB())
	companyVendorRepo := repository.NewCompanyVendorRepository(db.GetDB())
	retailVendorRepo := repository.NewRetailVendorRepository(db.GetDB())
	productRepo := repository.NewProductRepository(db.GetDB())
	reviewRepo := repository.NewReviewRepository(db.GetDB())
	favouriteRepo := repository.NewFavouriteRepository(db.GetDB())
	adminRepo := repository.NewAdminRepository(db.GetDB())

	// Initialize services
	authService := service.NewAuthService(
		userRepo,
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)
	vendorService := service.NewVendorService(
		companyVendorRepo,
		retailVendorRepo,
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)
	productService := service.NewProductService(productRepo, vendorService)
	reviewService := service.NewReviewService(reviewRepo, productRepo)
	favouriteService := service.NewFavouriteService(favouriteRepo, productRepo)
	adminService := service.NewAdminService(
		adminRepo,
		companyVendorRepo,
		retailVendorRepo,
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)

	// Session holds the current user and vendor for the running instance
	sess := session.New()

	notifier := mailer.New(mailer.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Email:    cfg.SMTP.Email,
		Password: cfg.SMTP.Password,
	})
	verifyEmails := cfg.SMTP.Email != "" && cfg.SMTP.Password != ""

	// Initialize controllers
	authController := controller.NewAuthController(authService, notifier, sess, verifyEmails)
	vendorController := controller.NewVendorController(vendorService, productService, sess)
	productController := controller.NewProductController(productService, vendorService, reviewService)
	reviewController := controller.NewReviewController(reviewService)
	favouriteController := controller.NewFavouriteController(favouriteService)
	adminController := controller.NewAdminController(adminService, productService)
	uploadController := controller.NewUploadController(imageStore)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.Secret)

	// Setup router
	r := router.NewRouter(
		authController,
		vendorController,
		productController,
		reviewController,
		favouriteController,
		adminController,
		uploadController,
		authMiddleware,
		cfg,
		imageStore.Dir(),
	)
	engine := r.Setup()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
