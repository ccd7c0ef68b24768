package gormrepo

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	dbinfra "multisuministros-codes/internal/infrastructure/db"
)

// openTestDB returns a fresh in-memory database with the full schema.
// A single connection keeps every statement on the same :memory: instance.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := dbinfra.Migrate(db); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
