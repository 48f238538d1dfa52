// Package testutil builds throwaway league stores for tests.
package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"foosball-league/packages/core/store"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenDB opens an empty sqlite file under the test's temp dir.
func OpenDB(t testing.TB) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "league.db")
	db, err := store.Open(store.DriverSQLite, path, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// NewStore returns a store with the league schema already created.
func NewStore(t testing.TB) *store.Store {
	t.Helper()

	s := store.New(OpenDB(t))
	if err := s.Initialize(context.Background(), false); err != nil {
		t.Fatalf("initialize test schema: %v", err)
	}
	return s
}
