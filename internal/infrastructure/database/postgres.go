package database

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/storelinehq/storeline-api/internal/config"
	"github.com/storelinehq/storeline-api/internal/domain/entity"
	"github.com/storelinehq/storeline-api/internal/domain/enum"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig, log *logrus.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Info("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	err := db.AutoMigrate(
		// Identity
		&entity.Employee{},

		// Catalog
		&entity.Product{},
		&entity.SKU{},

		// Stores and ledger
		&entity.Store{},
		&entity.Register{},
		&entity.StockLevel{},
		&entity.StockMovement{},

		// Transactions
		&entity.Sale{},
		&entity.SaleLine{},
		&entity.Receipt{},
		&entity.Return{},
		&entity.Refund{},

		// Supply
		&entity.Supplier{},
		&entity.PurchaseOrder{},
		&entity.PurchaseOrderLine{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations completed successfully")
	return nil
}

// SeedDefaultData creates the bootstrap manager account when configured
// via ADMIN_USERNAME / ADMIN_PASSWORD environment variables.
func SeedDefaultData(db *gorm.DB, log *logrus.Logger) error {
	adminUsername := viper.GetString("ADMIN_USERNAME")
	adminPassword := viper.GetString("ADMIN_PASSWORD")
	adminEmail := viper.GetString("ADMIN_EMAIL")

	if adminUsername == "" || adminPassword == "" {
		return nil
	}

	var existing entity.Employee
	if err := db.Where("username = ?", adminUsername).First(&existing).Error; err == nil {
		log.WithField("username", adminUsername).Info("Bootstrap manager already exists")
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash bootstrap manager password: %w", err)
	}

	if adminEmail == "" {
		adminEmail = adminUsername + "@storeline.local"
	}

	manager := entity.Employee{
		Username: adminUsername,
		Email:    adminEmail,
		Password: string(hashedPassword),
		Role:     enum.RoleManager,
	}
	if err := db.Create(&manager).Error; err != nil {
		return fmt.Errorf("failed to create bootstrap manager: %w", err)
	}

	log.WithField("username", adminUsername).Info("Bootstrap manager created")
	return nil
}
