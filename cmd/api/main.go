package main

import (
	"fmt"
	"net/http"
	"os"

	"homeledger/internal/auth"
	"homeledger/internal/config"
	"homeledger/internal/database"
	"homeledger/internal/extraction"
	"homeledger/internal/i18n"
	"homeledger/internal/logger"
	"homeledger/internal/metrics"
	"homeledger/internal/router"
	"homeledger/internal/services"
	"homeledger/internal/validator"

	_ "homeledger/internal/docs" // Import swagger docs
)

// @title           HomeLedger API
// @version         1.0
// @description     HomeLedger tracks what a household spends on its homes: purchases, suppliers, budgets per area and room, house documents and warranties.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the identity provider's ID token.

func main() {
	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger.Init(appConfig.Env, logger.WithFile(appConfig.LogFile, appConfig.LogMaxSizeMB))
	defer logger.Sync()
	log := logger.Get()

	validator.Register()

	dbManager, err := database.NewManager(database.NewConfig(appConfig))
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer dbManager.Close()

	if err := dbManager.RunMigrations(database.DefaultMigrationsDir); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	translator, err := i18n.New(appConfig.DefaultLanguage)
	if err != nil {
		return fmt.Errorf("failed to load translations: %w", err)
	}

	m := metrics.New(appConfig.MetricsNamespace)

	var extractor services.InvoiceExtractor
	if appConfig.ExtractionEnabled() {
		extractor = extraction.NewClient(appConfig.ExtractionAPIURL, appConfig.ExtractionAPIKey, appConfig.ExtractionModel,
			&http.Client{Timeout: appConfig.ExtractionTimeout})
	} else {
		log.Warn("Invoice extraction is not configured; /purchases/extract will return 503")
	}

	// Initialize services
	db := dbManager.DB()
	engine := router.New(router.Deps{
		Services: router.Services{
			Access:     services.NewAccessService(db),
			Backfill:   services.NewBackfillService(db, m),
			Audit:      services.NewAuditService(db, m),
			Home:       services.NewHomeService(db),
			Area:       services.NewAreaService(db),
			Room:       services.NewRoomService(db),
			Supplier:   services.NewSupplierService(db),
			Purchase:   services.NewPurchaseService(db, m),
			Extraction: services.NewExtractionService(db, extractor, m),
			Attachment: services.NewAttachmentService(db),
			Category:   services.NewCategoryService(db),
			Tag:        services.NewTagService(db),
			Report:     services.NewReportService(db),
		},
		Verifier:   auth.NewVerifier(appConfig.IDPJWTSecret, appConfig.IDPIssuer, appConfig.IDPAudience),
		Translator: translator,
		Metrics:    m,
	})

	if appConfig.Env != "production" && os.Getenv("IDP_JWT_SECRET") == "" {
		log.Warn("IDP_JWT_SECRET is not set; using the development fallback secret")
	}

	log.Infof("Starting HomeLedger API on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return engine.Run(":" + appConfig.Port)
}
