package repository

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"time"

	"lingua/backend/internal/model"
	"lingua/backend/internal/snowflake"
)

// CacheRepository stores locally cached translation results so repeated
// requests skip the completion API entirely.
type CacheRepository interface {
	Get(ctx context.Context, text, sourceLanguage, targetLanguage string) (*model.CachedTranslation, error)
	Save(ctx context.Context, text, sourceLanguage, targetLanguage, translatedText, detectedLanguage string) error
	DeleteAll(ctx context.Context) (int64, error)
}

type cacheRepository struct {
	db dbtx
}

func NewCacheRepository(db dbtx) CacheRepository {
	return &cacheRepository{db: db}
}

// HashText returns the cache key component for a source text.
func HashText(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

func (r *cacheRepository) Get(ctx context.Context, text, sourceLanguage, targetLanguage string) (*model.CachedTranslation, error) {
	row := r.db.QueryRowContext(
		ctx,
		`SELECT id, text_hash, source_language, target_language, translated_text, detected_language, created_at
		 FROM translation_cache WHERE text_hash = ? AND source_language = ? AND target_language = ?`,
		HashText(text), sourceLanguage, targetLanguage,
	)

	var c model.CachedTranslation
	var detected sql.NullString
	var createdAt string

	err := row.Scan(&c.ID, &c.TextHash, &c.SourceLanguage, &c.TargetLanguage, &c.TranslatedText, &detected, &createdAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	c.DetectedLanguage = detected.String
	c.CreatedAt, _ = parseTime(createdAt)

	return &c, nil
}

func (r *cacheRepository) Save(ctx context.Context, text, sourceLanguage, targetLanguage, translatedText, detectedLanguage string) error {
	id := snowflake.NextID()
	now := formatTime(time.Now())

	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO translation_cache (id, text_hash, source_language, target_language, translated_text, detected_language, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(text_hash, source_language, target_language) DO UPDATE SET
		   translated_text = excluded.translated_text,
		   detected_language = excluded.detected_language,
		   created_at = excluded.created_at`,
		id, HashText(text), sourceLanguage, targetLanguage, translatedText, detectedLanguage, now,
	)
	return err
}

func (r *cacheRepository) DeleteAll(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM translation_cache`)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
