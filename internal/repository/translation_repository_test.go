package repository_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"lingua/backend/internal/config"
	"lingua/backend/internal/model"
	"lingua/backend/internal/network"
	"lingua/backend/internal/objectstore"
	"lingua/backend/internal/repository"
)

func newTestStore(t *testing.T, handler http.HandlerFunc) *objectstore.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := config.StoreConfig{
		BaseURL:    srv.URL,
		BucketSlug: "test-bucket",
		ReadKey:    "read-key",
		WriteKey:   "write-key",
		Timeout:    5 * time.Second,
	}
	return objectstore.New(cfg, network.NewClientFactoryForTest(srv.Client()))
}

func TestTranslationRepository_Store(t *testing.T) {
	var inserted objectstore.Object
	store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&inserted))
		inserted.ID = "obj-1"
		_ = json.NewEncoder(w).Encode(map[string]any{"object": inserted})
	})
	repo := repository.NewTranslationRepository(store)

	saved, err := repo.Store(context.Background(), model.Translation{
		SourceText:     "Hello, world",
		TranslatedText: "Hola, mundo",
		SourceLanguage: "English",
		TargetLanguage: "Spanish",
		Confidence:     0.95,
		UserID:         "user-1",
	})
	require.NoError(t, err)
	require.Equal(t, "obj-1", saved.ID, "the store's assigned id wins")
	require.False(t, saved.CreatedAt.IsZero())
	require.Equal(t, model.MethodText, saved.Method, "method defaults to text")

	require.Equal(t, "translations", inserted.Type)
	require.Equal(t, "Hello, world", inserted.Title)
	require.Equal(t, "Hola, mundo", inserted.Metadata["translated_text"])
	require.Equal(t, "English", inserted.Metadata["source_language"])
	require.Equal(t, "user-1", inserted.Metadata["user_id"])
}

func TestTranslationRepository_Store_TruncatesTitle(t *testing.T) {
	var inserted objectstore.Object
	store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&inserted))
		_ = json.NewEncoder(w).Encode(map[string]any{"object": inserted})
	})
	repo := repository.NewTranslationRepository(store)

	long := ""
	for i := 0; i < 30; i++ {
		long += "lorem"
	}
	_, err := repo.Store(context.Background(), model.Translation{
		SourceText:     long,
		TranslatedText: "x",
		SourceLanguage: "English",
		TargetLanguage: "Spanish",
	})
	require.NoError(t, err)
	require.Len(t, []rune(inserted.Title), 80)
	require.Equal(t, long, inserted.Metadata["source_text"], "the full text survives in metadata")
}

func TestTranslationRepository_List_SortsNewestFirst(t *testing.T) {
	store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"objects": []map[string]any{
				{
					"id": "old", "type": "translations", "title": "old",
					"metadata": map[string]any{"created_at": "2026-01-01T00:00:00Z"},
				},
				{
					"id": "new", "type": "translations", "title": "new",
					"metadata": map[string]any{"created_at": "2026-06-01T00:00:00Z"},
				},
			},
		})
	})
	repo := repository.NewTranslationRepository(store)

	translations, err := repo.List(context.Background(), "", 100)
	require.NoError(t, err)
	require.Len(t, translations, 2)
	require.Equal(t, "new", translations[0].ID)
	require.Equal(t, "old", translations[1].ID)
}

func TestTranslationRepository_List_Empty(t *testing.T) {
	store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"No objects found"}`, http.StatusNotFound)
	})
	repo := repository.NewTranslationRepository(store)

	translations, err := repo.List(context.Background(), "user-1", 100)
	require.NoError(t, err)
	require.NotNil(t, translations)
	require.Empty(t, translations)
}

func TestTranslationRepository_Delete_Idempotent(t *testing.T) {
	store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"not found"}`, http.StatusNotFound)
	})
	repo := repository.NewTranslationRepository(store)

	err := repo.Delete(context.Background(), "already-gone")
	require.NoError(t, err, "deleting a missing record succeeds")
}
