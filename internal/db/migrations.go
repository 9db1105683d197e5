package db

import (
	"database/sql"
	"fmt"
)

// Base schema - uses Snowflake IDs (no AUTOINCREMENT)
const baseSchema = `
CREATE TABLE IF NOT EXISTS translation_cache (
  id INTEGER PRIMARY KEY,
  text_hash TEXT NOT NULL,
  source_language TEXT NOT NULL,
  target_language TEXT NOT NULL,
  translated_text TEXT NOT NULL,
  detected_language TEXT,
  created_at TEXT NOT NULL,
  UNIQUE(text_hash, source_language, target_language)
);

CREATE INDEX IF NOT EXISTS idx_translation_cache_lookup
  ON translation_cache(text_hash, source_language, target_language);
`

// Migrate applies the schema. Statements are idempotent so this is safe
// to run on every startup.
func Migrate(db *sql.DB) error {
	if _, err := db.Exec(baseSchema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
