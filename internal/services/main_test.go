package services

import (
	"fmt"
	"sync/atomic"
	"testing"

	"skillswap_backend/database"
	"skillswap_backend/internal/models"
	"skillswap_backend/internal/repositories"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBCounter atomic.Int64

// newTestDB opens an isolated in-memory sqlite database with the full
// schema, including the partial unique index on pending requests.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:services_test_%d?mode=memory&cache=shared", testDBCounter.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get *sql.DB: %v", err)
	}
	// Keep the shared in-memory database alive for the whole test.
	sqlDB.SetMaxIdleConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

type testRepos struct {
	users         repositories.UserRepository
	refreshTokens repositories.RefreshTokenRepository
	skills        repositories.SkillRepository
	requests      repositories.RequestRepository
}

func newTestRepos(db *gorm.DB) testRepos {
	return testRepos{
		users:         repositories.NewUserRepository(db),
		refreshTokens: repositories.NewRefreshTokenRepository(db),
		skills:        repositories.NewSkillRepository(db),
		requests:      repositories.NewRequestRepository(db),
	}
}

// seedUser inserts a user directly through the repository.
func seedUser(t *testing.T, repos testRepos, fullName, email string) *models.User {
	t.Helper()

	user := &models.User{
		FullName:     fullName,
		Email:        email,
		PasswordHash: "not-a-real-hash",
		Role:         models.UserRoleLearner,
	}
	if err := repos.users.Create(user); err != nil {
		t.Fatalf("failed to seed user %s: %v", email, err)
	}
	return user
}
