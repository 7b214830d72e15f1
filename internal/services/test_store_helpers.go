package services

import (
	"path/filepath"
	"testing"

	"github.com/Iceton3000/cardinal-crm/internal/db"
)

func newTestRepositories(t *testing.T) *db.Repositories {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "cardinal-crm-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return db.NewRepositories(database)
}
