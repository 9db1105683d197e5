package objectstore_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"lingua/backend/internal/config"
	"lingua/backend/internal/network"
	"lingua/backend/internal/objectstore"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *objectstore.Client {
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

func TestClient_Configured(t *testing.T) {
	client := objectstore.New(config.StoreConfig{}, network.NewClientFactoryForTest(http.DefaultClient))
	require.False(t, client.Configured())

	_, err := client.Find(context.Background(), objectstore.Query{Type: "translations"})
	require.ErrorIs(t, err, objectstore.ErrNotConfigured)

	_, err = client.Insert(context.Background(), objectstore.Object{Type: "translations"})
	require.ErrorIs(t, err, objectstore.ErrNotConfigured)

	err = client.Delete(context.Background(), "id")
	require.ErrorIs(t, err, objectstore.ErrNotConfigured)
}

func TestClient_Find(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/buckets/test-bucket/objects", r.URL.Path)
		require.Equal(t, "read-key", r.URL.Query().Get("read_key"))
		require.Equal(t, "-created_at", r.URL.Query().Get("sort"))
		require.Equal(t, "10", r.URL.Query().Get("limit"))

		var filter map[string]any
		require.NoError(t, json.Unmarshal([]byte(r.URL.Query().Get("query")), &filter))
		require.Equal(t, "translations", filter["type"])
		require.Equal(t, "user-1", filter["metadata.user_id"])

		_ = json.NewEncoder(w).Encode(map[string]any{
			"objects": []map[string]any{
				{"id": "obj-1", "type": "translations", "title": "hello"},
				{"id": "obj-2", "type": "translations", "title": "bye"},
			},
		})
	})

	objects, err := client.Find(context.Background(), objectstore.Query{
		Type:     "translations",
		Metadata: map[string]any{"user_id": "user-1"},
		Sort:     "-created_at",
		Limit:    10,
	})
	require.NoError(t, err)
	require.Len(t, objects, 2)
	require.Equal(t, "obj-1", objects[0].ID)
}

func TestClient_Find_NotFoundMeansEmpty(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"No objects found"}`, http.StatusNotFound)
	})

	objects, err := client.Find(context.Background(), objectstore.Query{Type: "translations"})
	require.NoError(t, err, "an empty bucket is not an error")
	require.NotNil(t, objects)
	require.Empty(t, objects)
}

func TestClient_Find_ServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"bucket on fire"}`, http.StatusInternalServerError)
	})

	_, err := client.Find(context.Background(), objectstore.Query{Type: "translations"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "bucket on fire")
}

func TestClient_Insert(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/buckets/test-bucket/objects", r.URL.Path)
		require.Equal(t, "Bearer write-key", r.Header.Get("Authorization"))
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var obj objectstore.Object
		require.NoError(t, json.NewDecoder(r.Body).Decode(&obj))
		require.Equal(t, "translations", obj.Type)
		require.Equal(t, "hello", obj.Title)

		obj.ID = "obj-99"
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{"object": obj})
	})

	stored, err := client.Insert(context.Background(), objectstore.Object{
		Type:     "translations",
		Title:    "hello",
		Metadata: map[string]any{"source_text": "hello"},
	})
	require.NoError(t, err)
	require.Equal(t, "obj-99", stored.ID)
}

func TestClient_Delete(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/buckets/test-bucket/objects/obj-1", r.URL.Path)
		require.Equal(t, "Bearer write-key", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, client.Delete(context.Background(), "obj-1"))
}

func TestClient_Delete_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"not found"}`, http.StatusNotFound)
	})

	err := client.Delete(context.Background(), "missing")
	require.ErrorIs(t, err, objectstore.ErrNotFound)
}
