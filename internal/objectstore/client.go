// Package objectstore is a thin client for the remote headless CMS that
// persists languages, translations and conversation sessions as typed
// objects inside a single bucket.
package objectstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"lingua/backend/internal/config"
	"lingua/backend/internal/network"
)

var (
	ErrNotFound      = errors.New("object not found")
	ErrNotConfigured = errors.New("object store is not configured")
)

// Object is a typed record in the bucket. Domain fields live in Metadata.
type Object struct {
	ID        string         `json:"id,omitempty"`
	Type      string         `json:"type"`
	Title     string         `json:"title"`
	Metadata  map[string]any `json:"metadata"`
	CreatedAt time.Time      `json:"created_at,omitempty"`
}

// Query restricts a Find call. Fields map to metadata filters.
type Query struct {
	Type     string
	Metadata map[string]any
	Sort     string
	Limit    int
}

// Client talks to the bucket's REST API.
type Client struct {
	baseURL  string
	bucket   string
	readKey  string
	writeKey string
	http     *http.Client
}

// New creates a client. The http.Client comes from the network factory
// so proxying and test injection work the same way everywhere.
func New(cfg config.StoreConfig, factory *network.ClientFactory) *Client {
	return &Client{
		baseURL:  cfg.BaseURL,
		bucket:   cfg.BucketSlug,
		readKey:  cfg.ReadKey,
		writeKey: cfg.WriteKey,
		http:     factory.NewHTTPClient(cfg.Timeout),
	}
}

// Configured reports whether the client has a bucket to talk to.
func (c *Client) Configured() bool {
	return c.bucket != "" && c.readKey != ""
}

// Find returns objects matching the query, newest first when the query
// asks for it. A bucket with no matching objects yields an empty slice,
// not an error.
func (c *Client) Find(ctx context.Context, q Query) ([]Object, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	filter := map[string]any{"type": q.Type}
	for k, v := range q.Metadata {
		filter["metadata."+k] = v
	}
	filterJSON, err := json.Marshal(filter)
	if err != nil {
		return nil, fmt.Errorf("encode query: %w", err)
	}

	params := url.Values{}
	params.Set("read_key", c.readKey)
	params.Set("query", string(filterJSON))
	if q.Sort != "" {
		params.Set("sort", q.Sort)
	}
	if q.Limit > 0 {
		params.Set("limit", fmt.Sprintf("%d", q.Limit))
	}

	endpoint := fmt.Sprintf("%s/buckets/%s/objects?%s", c.baseURL, c.bucket, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("find objects: %w", err)
	}
	defer resp.Body.Close()

	// The store answers 404 for an empty result set.
	if resp.StatusCode == http.StatusNotFound {
		return []Object{}, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("find objects: %s", readError(resp))
	}

	var body struct {
		Objects []Object `json:"objects"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode objects: %w", err)
	}
	if body.Objects == nil {
		body.Objects = []Object{}
	}
	return body.Objects, nil
}

// Insert creates a new object and returns it with its assigned id.
func (c *Client) Insert(ctx context.Context, obj Object) (Object, error) {
	if !c.Configured() || c.writeKey == "" {
		return Object{}, ErrNotConfigured
	}

	payload, err := json.Marshal(obj)
	if err != nil {
		return Object{}, fmt.Errorf("encode object: %w", err)
	}

	endpoint := fmt.Sprintf("%s/buckets/%s/objects", c.baseURL, c.bucket)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return Object{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.writeKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return Object{}, fmt.Errorf("insert object: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return Object{}, fmt.Errorf("insert object: %s", readError(resp))
	}

	var body struct {
		Object Object `json:"object"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Object{}, fmt.Errorf("decode object: %w", err)
	}
	return body.Object, nil
}

// Delete removes an object by id. A missing object returns ErrNotFound;
// callers that want idempotent semantics treat that as success.
func (c *Client) Delete(ctx context.Context, id string) error {
	if !c.Configured() || c.writeKey == "" {
		return ErrNotConfigured
	}

	endpoint := fmt.Sprintf("%s/buckets/%s/objects/%s", c.baseURL, c.bucket, url.PathEscape(id))
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.writeKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("delete object: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("delete object: %s", readError(resp))
	}
	return nil
}

func readError(resp *http.Response) string {
	data, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil || len(data) == 0 {
		return resp.Status
	}
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err == nil && body.Message != "" {
		return fmt.Sprintf("%s: %s", resp.Status, body.Message)
	}
	return resp.Status
}
