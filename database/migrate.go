package database

import (
	"fmt"

	"gigflow_backend/internal/config"
	"gigflow_backend/internal/logger"
	"gigflow_backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var gormDB *gorm.DB

// ConnectGorm opens the GORM connection using the configured DSN.
func ConnectGorm() (*gorm.DB, error) {
	if gormDB != nil {
		return gormDB, nil
	}

	cfg := config.GetConfig()
	dsn := cfg.Database.DSN

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to GORM: %w", err)
	}

	gormDB = db
	return db, nil
}

// AutoMigrate migrates every model.
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Gig{},
		&models.Bid{},
		&models.Notification{},
	)
	if err != nil {
		return fmt.Errorf("automigrate failed: %w", err)
	}

	logger.Info("AutoMigrate completed")
	return nil
}
