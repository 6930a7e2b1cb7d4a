// Package testutil provides shared test scaffolding: an in-memory
// database wired into the package-level handle, and a ready-made config.
package testutil

import (
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sidra-al/Double-H-Portfolio/internal/accounts"
	"github.com/sidra-al/Double-H-Portfolio/internal/config"
	"github.com/sidra-al/Double-H-Portfolio/internal/content"
	"github.com/sidra-al/Double-H-Portfolio/internal/database"
)

// OpenDB opens an in-memory sqlite database, migrates the app models, and
// installs it as database.DB for the duration of the test.
func OpenDB(t *testing.T) *gorm.DB {
	t.Helper()

	// One shared-cache memory DB per test so connections see the same data.
	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	if err := db.AutoMigrate(&accounts.Account{}, &content.Record{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	prev := database.DB
	database.DB = db
	t.Cleanup(func() {
		database.DB = prev
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// NewConfig returns a non-production config with a throwaway upload root.
func NewConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Port:      "3000",
		AppEnv:    "test",
		JWTSecret: "test-secret",
		UploadDir: t.TempDir(),
	}
}

// SeedAdmin creates the default admin/admin123 account.
func SeedAdmin(t *testing.T, db *gorm.DB) {
	t.Helper()
	if _, err := accounts.Seed(db, "admin", "admin123", "admin"); err != nil {
		t.Fatalf("seed admin: %v", err)
	}
}
