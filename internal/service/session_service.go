package service

import (
	"context"
	"errors"
	"fmt"

	"lingua/backend/internal/logger"
	"lingua/backend/internal/model"
	"lingua/backend/internal/objectstore"
	"lingua/backend/internal/repository"
)

// SessionService persists completed conversation sessions.
type SessionService interface {
	Save(ctx context.Context, session model.ConversationSession) (model.ConversationSession, error)
	List(ctx context.Context, userID string) ([]model.ConversationSession, error)
	Delete(ctx context.Context, id string) error
}

type sessionService struct {
	repo repository.SessionRepository
}

func NewSessionService(repo repository.SessionRepository) SessionService {
	return &sessionService{repo: repo}
}

func (s *sessionService) Save(ctx context.Context, session model.ConversationSession) (model.ConversationSession, error) {
	if session.LanguageA == "" || session.LanguageB == "" {
		return model.ConversationSession{}, invalid("both participant languages are required")
	}
	if s.repo == nil {
		return model.ConversationSession{}, fmt.Errorf("%w: no object store configured", ErrStoreSave)
	}

	saved, err := s.repo.Store(ctx, session)
	if err != nil {
		logger.Warn("session save failed", "module", "service", "action", "save", "resource", "store", "result", "failed", "error", err)
		return model.ConversationSession{}, fmt.Errorf("%w: conversation session", ErrStoreSave)
	}
	logger.Info("session saved", "module", "service", "action", "save", "resource", "store", "result", "ok", "id", saved.ID, "messages", len(saved.Messages))
	return saved, nil
}

func (s *sessionService) List(ctx context.Context, userID string) ([]model.ConversationSession, error) {
	if s.repo == nil {
		return []model.ConversationSession{}, nil
	}
	sessions, err := s.repo.List(ctx, userID, DefaultHistoryLimit)
	if errors.Is(err, objectstore.ErrNotConfigured) {
		return []model.ConversationSession{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, nil
}

func (s *sessionService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return invalid("id is required")
	}
	if s.repo == nil {
		return fmt.Errorf("%w: no object store configured", ErrStoreSave)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
