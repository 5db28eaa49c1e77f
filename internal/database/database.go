package database

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/samajseva/registration-backend/internal/config"
	"github.com/samajseva/registration-backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func Connect(cfg *config.Config) error {
	var err error
	DB, err = gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	slog.Info("database connected")
	return nil
}

// Migrate runs AutoMigrate for all models. Registrations and admin users
// honor the table name overrides from config.
func Migrate(cfg *config.Config) error {
	if err := DB.Table(cfg.RegistrationsTable).AutoMigrate(&models.Registration{}); err != nil {
		return err
	}
	if err := DB.Table(cfg.AdminUsersTable).AutoMigrate(&models.AdminUser{}); err != nil {
		return err
	}
	return DB.AutoMigrate(
		&models.RefreshToken{},
		&models.DropdownOption{},
		&models.SystemLog{},
	)
}

func Ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
