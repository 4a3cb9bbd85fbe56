package main

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/flowbit/analytics-api/internal/application/service"
	"github.com/flowbit/analytics-api/internal/config"
	"github.com/flowbit/analytics-api/internal/infrastructure/database"
	"github.com/flowbit/analytics-api/internal/infrastructure/repository"
	"github.com/flowbit/analytics-api/internal/presentation/http/handler"
	"github.com/flowbit/analytics-api/internal/presentation/http/routes"
	"github.com/flowbit/analytics-api/pkg/logger"
)

func main() {
	// Load configuration
	cfg := config.Load()

	if err := logger.Setup(cfg.Log.Level, cfg.Log.Format); err != nil {
		log.Fatal().Err(err).Msg("Failed to configure logging")
	}

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	// Load seed data when configured
	if err := database.SeedFromFile(db, cfg.Query.SeedFile); err != nil {
		log.Warn().Err(err).Msg("Failed to seed data")
	}

	// Initialize repositories
	analyticsRepo := repository.NewAnalyticsRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	vendorRepo := repository.NewVendorRepository(db)
	documentRepo := repository.NewDocumentRepository(db)

	// Initialize services
	dashboardService := service.NewDashboardService(analyticsRepo, cfg.Query.Timeout)
	invoiceService := service.NewInvoiceService(invoiceRepo, vendorRepo, documentRepo, cfg.Query.Timeout)
	chatService := service.NewChatService(&cfg.Vanna)

	// Initialize handlers
	handlers := &routes.Handlers{
		Dashboard: handler.NewDashboardHandler(dashboardService),
		Invoice:   handler.NewInvoiceHandler(invoiceService),
		Document:  handler.NewDocumentHandler(invoiceService),
		Chat:      handler.NewChatHandler(chatService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{Cfg: cfg})

	port := cfg.App.Port
	if port == "" {
		port = "4000"
	}

	log.Info().
		Str("service", cfg.App.Name).
		Str("env", cfg.App.Env).
		Str("port", port).
		Msg("Starting server")

	if err := router.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}
