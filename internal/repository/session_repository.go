package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"lingua/backend/internal/model"
	"lingua/backend/internal/objectstore"
)

const sessionType = "conversation-sessions"

// SessionRepository persists completed conversation sessions in the
// remote object store.
type SessionRepository interface {
	Store(ctx context.Context, s model.ConversationSession) (model.ConversationSession, error)
	List(ctx context.Context, userID string, limit int) ([]model.ConversationSession, error)
	Delete(ctx context.Context, id string) error
}

type sessionRepository struct {
	store *objectstore.Client
}

func NewSessionRepository(store *objectstore.Client) SessionRepository {
	return &sessionRepository{store: store}
}

func (r *sessionRepository) Store(ctx context.Context, s model.ConversationSession) (model.ConversationSession, error) {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}

	messages, err := json.Marshal(s.Messages)
	if err != nil {
		return model.ConversationSession{}, fmt.Errorf("encode messages: %w", err)
	}

	obj := objectstore.Object{
		Type:  sessionType,
		Title: fmt.Sprintf("%s ↔ %s", s.LanguageA, s.LanguageB),
		Metadata: map[string]any{
			"record_id":        s.ID,
			"user_id":          s.UserID,
			"language_a":       s.LanguageA,
			"language_b":       s.LanguageB,
			"messages":         string(messages),
			"duration_seconds": s.DurationSeconds,
			"created_at":       s.CreatedAt.Format(time.RFC3339),
		},
	}

	stored, err := r.store.Insert(ctx, obj)
	if err != nil {
		return model.ConversationSession{}, err
	}
	if stored.ID != "" {
		s.ID = stored.ID
	}
	return s, nil
}

func (r *sessionRepository) List(ctx context.Context, userID string, limit int) ([]model.ConversationSession, error) {
	q := objectstore.Query{
		Type:  sessionType,
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

	sessions := make([]model.ConversationSession, 0, len(objects))
	for _, obj := range objects {
		sessions = append(sessions, sessionFromObject(obj))
	}

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].CreatedAt.After(sessions[j].CreatedAt)
	})

	return sessions, nil
}

func (r *sessionRepository) Delete(ctx context.Context, id string) error {
	err := r.store.Delete(ctx, id)
	if errors.Is(err, objectstore.ErrNotFound) {
		return nil
	}
	return err
}

func sessionFromObject(obj objectstore.Object) model.ConversationSession {
	m := obj.Metadata
	s := model.ConversationSession{
		ID:              obj.ID,
		UserID:          metaString(m, "user_id"),
		LanguageA:       metaString(m, "language_a"),
		LanguageB:       metaString(m, "language_b"),
		DurationSeconds: metaInt(m, "duration_seconds"),
		CreatedAt:       obj.CreatedAt,
	}
	if ts := metaString(m, "created_at"); ts != "" {
		if parsed, err := time.Parse(time.RFC3339, ts); err == nil {
			s.CreatedAt = parsed
		}
	}
	if raw := metaString(m, "messages"); raw != "" {
		// Malformed message payloads leave the session listed with an
		// empty transcript rather than failing the whole listing.
		_ = json.Unmarshal([]byte(raw), &s.Messages)
	}
	if s.Messages == nil {
		s.Messages = []model.SessionMessage{}
	}
	return s
}
