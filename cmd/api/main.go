package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/storelinehq/storeline-api/internal/application/service"
	"github.com/storelinehq/storeline-api/internal/config"
	"github.com/storelinehq/storeline-api/internal/infrastructure/database"
	"github.com/storelinehq/storeline-api/internal/infrastructure/repository"
	"github.com/storelinehq/storeline-api/internal/presentation/http/handler"
	"github.com/storelinehq/storeline-api/internal/presentation/http/routes"
	"github.com/storelinehq/storeline-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	if cfg.App.Debug {
		log.SetLevel(logrus.DebugLevel)
	}

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db, log); err != nil {
		log.WithError(err).Fatal("Failed to run migrations")
	}

	// Seed default data
	if err := database.SeedDefaultData(db, log); err != nil {
		log.WithError(err).Warn("Failed to seed default data")
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	txManager := repository.NewTxManager(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	productRepo := repository.NewProductRepository(db)
	skuRepo := repository.NewSKURepository(db)
	storeRepo := repository.NewStoreRepository(db)
	registerRepo := repository.NewRegisterRepository(db)
	stockRepo := repository.NewStockRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	saleLineRepo := repository.NewSaleLineRepository(db)
	receiptRepo := repository.NewReceiptRepository(db)
	returnRepo := repository.NewReturnRepository(db)
	refundRepo := repository.NewRefundRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	purchaseOrderRepo := repository.NewPurchaseOrderRepository(db)
	purchaseOrderLineRepo := repository.NewPurchaseOrderLineRepository(db)

	// Initialize services
	authService := service.NewAuthService(employeeRepo, storeRepo, jwtManager)
	employeeService := service.NewEmployeeService(employeeRepo, storeRepo, saleRepo)
	productService := service.NewProductService(productRepo, skuRepo, saleLineRepo, stockRepo)
	storeService := service.NewStoreService(storeRepo, registerRepo, employeeRepo, stockRepo, saleRepo, txManager)
	stockService := service.NewStockService(stockRepo, storeRepo, skuRepo, txManager)
	saleService := service.NewSaleService(saleRepo, saleLineRepo, receiptRepo, stockRepo, storeRepo, registerRepo, employeeRepo, skuRepo, txManager)
	returnService := service.NewReturnService(returnRepo, refundRepo, saleRepo, stockRepo, txManager)
	supplierService := service.NewSupplierService(supplierRepo, purchaseOrderRepo, purchaseOrderLineRepo, skuRepo, storeRepo, stockRepo, txManager)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Employee: handler.NewEmployeeHandler(employeeService),
		Product:  handler.NewProductHandler(productService),
		SKU:      handler.NewSKUHandler(productService),
		Store:    handler.NewStoreHandler(storeService),
		Stock:    handler.NewStockHandler(stockService),
		Sale:     handler.NewSaleHandler(saleService),
		Return:   handler.NewReturnHandler(returnService),
		Supplier: handler.NewSupplierHandler(supplierService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
		Log:        log,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.WithFields(logrus.Fields{
		"service": cfg.App.Name,
		"port":    port,
		"env":     cfg.App.Env,
	}).Info("Starting server")

	if err := router.Run(":" + port); err != nil {
		log.WithError(err).Fatal("Failed to start server")
		os.Exit(1)
	}
}
