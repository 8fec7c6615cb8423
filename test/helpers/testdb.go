package helpers

import (
	"fmt"
	"sync/atomic"

	"skillswap_backend/database"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var dbCounter atomic.Int64

// OpenTestDB opens an isolated in-memory sqlite database with the full
// schema applied. Each call gets its own database; the shared-cache DSN plus
// a pinned idle connection keeps it alive across the pool.
func OpenTestDB() (*gorm.DB, error) {
	dsn := fmt.Sprintf("file:integration_test_%d?mode=memory&cache=shared", dbCounter.Add(1))

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open test database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get *sql.DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(1)

	if err := database.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("migrate test database: %w", err)
	}
	return db, nil
}
