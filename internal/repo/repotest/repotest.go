// Package repotest opens throwaway in-memory databases for tests.
package repotest

import (
	"testing"

	"gorm.io/gorm"

	"fitclub-admin/internal/core/database"
	"fitclub-admin/internal/repo"
)

// NewDB returns a migrated in-memory SQLite database. One connection keeps
// every query on the same memory database.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()
	db, err := database.NewGorm(database.Opts{
		Driver:       "sqlite",
		DSN:          ":memory:",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		LogLevel:     "silent",
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := repo.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func NewStore(t testing.TB) *repo.Store {
	t.Helper()
	return repo.NewStore(NewDB(t))
}
