package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"

	"lingua/backend/internal/model"
	"lingua/backend/internal/objectstore"
)

const translationType = "translations"

// TranslationRepository persists translation records in the remote
// object store.
type TranslationRepository interface {
	Store(ctx context.Context, t model.Translation) (model.Translation, error)
	List(ctx context.Context, userID string, limit int) ([]model.Translation, error)
	// Delete is idempotent: removing a record that is already gone
	// succeeds.
	Delete(ctx context.Context, id string) error
}

type translationRepository struct {
	store *objectstore.Client
}

func NewTranslationRepository(store *objectstore.Client) TranslationRepository {
	return &translationRepository{store: store}
}

func (r *translationRepository) Store(ctx context.Context, t model.Translation) (model.Translation, error) {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	if t.Method == "" {
		t.Method = model.MethodText
	}

	obj := objectstore.Object{
		Type:  translationType,
		Title: truncateTitle(t.SourceText),
		Metadata: map[string]any{
			"record_id":       t.ID,
			"source_text":     t.SourceText,
			"translated_text": t.TranslatedText,
			"source_language": t.SourceLanguage,
			"target_language": t.TargetLanguage,
			"method":          t.Method,
			"confidence":      t.Confidence,
			"user_id":         t.UserID,
			"session_id":      t.SessionID,
			"created_at":      t.CreatedAt.Format(time.RFC3339),
		},
	}

	stored, err := r.store.Insert(ctx, obj)
	if err != nil {
		return model.Translation{}, err
	}
	if stored.ID != "" {
		t.ID = stored.ID
	}
	return t, nil
}

func (r *translationRepository) List(ctx context.Context, userID string, limit int) ([]model.Translation, error) {
	q := objectstore.Query{
		Type:  translationType,
		Sort:  "-created_at",
		Limit: limit,
	}
	if userID != "" {
		q.Metadata = map[string]any{"user_id": userID}
	}

	objects, err := r.store.Find(ctx, q)
	if err != nil {
		return nil, err
	}

	translations := make([]model.Translation, 0, len(objects))
	for _, obj := range objects {
		translations = append(translations, translationFromObject(obj))
	}

	// The store is asked to sort, but stubbed or misconfigured buckets
	// may not honor it.
	sort.Slice(translations, func(i, j int) bool {
		return translations[i].CreatedAt.After(translations[j].CreatedAt)
	})

	return translations, nil
}

func (r *translationRepository) Delete(ctx context.Context, id string) error {
	err := r.store.Delete(ctx, id)
	if errors.Is(err, objectstore.ErrNotFound) {
		return nil
	}
	return err
}

func translationFromObject(obj objectstore.Object) model.Translation {
	m := obj.Metadata
	t := model.Translation{
		ID:             obj.ID,
		SourceText:     metaString(m, "source_text"),
		TranslatedText: metaString(m, "translated_text"),
		SourceLanguage: metaString(m, "source_language"),
		TargetLanguage: metaString(m, "target_language"),
		Method:         metaString(m, "method"),
		Confidence:     metaFloat(m, "confidence"),
		UserID:         metaString(m, "user_id"),
		SessionID:      metaString(m, "session_id"),
		CreatedAt:      obj.CreatedAt,
	}
	if ts := metaString(m, "created_at"); ts != "" {
		if parsed, err := time.Parse(time.RFC3339, ts); err == nil {
			t.CreatedAt = parsed
		}
	}
	return t
}

func truncateTitle(text string) string {
	const maxTitle = 80
	runes := []rune(text)
	if len(runes) <= maxTitle {
		return text
	}
	return string(runes[:maxTitle])
}

func metaString(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

func metaFloat(m map[string]any, key string) float64 {
	if m == nil {
		return 0
	}
	switch v := m[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return 0
}

func metaBool(m map[string]any, key string) bool {
	if m == nil {
		return false
	}
	if v, ok := m[key].(bool); ok {
		return v
	}
	return false
}

func metaInt(m map[string]any, key string) int {
	return int(metaFloat(m, key))
}
