package testutil

import (
	"database/sql"
	"testing"

	"github.com/igorvolkov/taskmaster/internal/db"
)

// NewTestDB opens a fresh in-memory SQLite database with the full schema
// applied and ties its lifetime to the test.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("opening in-memory database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })
	return database
}

// NewTestUoW wraps the test database in a real transactional UnitOfWork.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}
