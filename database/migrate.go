package database

import (
	"fmt"

	"skillswap_backend/internal/config"
	"skillswap_backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var gormDB *gorm.DB

// ConnectGorm opens the shared GORM handle using the configured DSN. The
// handle is created once per process and reused.
func ConnectGorm() (*gorm.DB, error) {
	if gormDB != nil {
		return gormDB, nil
	}

	cfg := config.GetConfig()
	dsn := cfg.Database.DSN

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		// Map driver duplicate-key failures to gorm.ErrDuplicatedKey so
		// the unique indexes can act as business guards.
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to GORM: %w", err)
	}

	gormDB = db
	return db, nil
}

// AutoMigrate creates/updates the schema for all models, including the
// partial unique index guarding duplicate pending requests.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Skill{},
		&models.RefreshToken{},
		&models.Request{},
	)
}
