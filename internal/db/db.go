package db

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/StudioBelezaApps/salon-crm/internal/config"
	"github.com/StudioBelezaApps/salon-crm/internal/models"
)

func NewDB(cfg *config.Config, log *zap.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.Postgres.URL), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatal("failed to connect database", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("failed to get sql.DB", zap.Error(err))
	}

	sqlDB.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.Product{},
		&models.Service{},
		&models.Professional{},
		&models.Appointment{},
		&models.FinancialEntry{},
		&models.SalonSettings{},
		&models.LoyaltySettings{},
		&models.AutomationRule{},
		&models.AuditLog{},
	); err != nil {
		log.Fatal("failed to migrate", zap.Error(err))
	}

	// Unicidade de nome de produto é case-insensitive; AutoMigrate não cria
	// índice funcional, então criamos na mão.
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_products_name_lower
        ON products (LOWER(name))
    `)

	return db
}
