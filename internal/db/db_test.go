package db_test

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/stretchr/testify/require"

	"lingua/backend/internal/db"
)

func TestOpen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "test.db")
	database, err := db.Open(dbPath)
	require.NoError(t, err, "Open should create missing parent directories")
	require.NotNil(t, database)
	defer database.Close()

	var name string
	err = database.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='translation_cache'").Scan(&name)
	require.NoError(t, err)
	require.Equal(t, "translation_cache", name)

	var mode string
	err = database.QueryRow("PRAGMA journal_mode").Scan(&mode)
	require.NoError(t, err)
	require.Equal(t, "wal", mode)
}

func TestOpen_Reopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	database, err := db.Open(dbPath)
	require.NoError(t, err)
	require.NoError(t, database.Close())

	// Migrations are idempotent, so reopening the same file works.
	database, err = db.Open(dbPath)
	require.NoError(t, err)
	defer database.Close()

	_, err = database.Exec(`INSERT INTO translation_cache
		(id, text_hash, source_language, target_language, translated_text, created_at)
		VALUES (1, 'hash', 'English', 'Spanish', 'hola', '2026-01-01T00:00:00Z')`)
	require.NoError(t, err)
}

func TestMigrate_ClosedDB(t *testing.T) {
	database, err := sql.Open("sqlite", "file::memory:?cache=shared")
	require.NoError(t, err)
	require.NoError(t, database.Close())

	err = db.Migrate(database)
	require.Error(t, err)
}
