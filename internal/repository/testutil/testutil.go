// Package testutil provides database helpers for repository tests.
package testutil

import (
	"database/sql"
	"path/filepath"
	"sync"
	"testing"

	"lingua/backend/internal/db"
	"lingua/backend/internal/snowflake"
)

var snowflakeOnce sync.Once

// NewTestDB opens a fresh migrated database in a temp directory. The
// connection closes with the test.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	snowflakeOnce.Do(func() {
		if err := snowflake.Init(1); err != nil {
			t.Fatalf("init snowflake: %v", err)
		}
	})

	conn, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() {
		_ = conn.Close()
	})
	return conn
}
