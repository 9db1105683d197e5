package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"lingua/backend/internal/logger"
	"lingua/backend/internal/model"
	"lingua/backend/internal/objectstore"
	"lingua/backend/internal/repository"
)

// DefaultHistoryLimit caps a single history listing.
const DefaultHistoryLimit = 100

// UserExport bundles everything stored for one user.
type UserExport struct {
	Translations []model.Translation         `json:"translations"`
	Sessions     []model.ConversationSession `json:"sessions"`
}

// HistoryService lists and deletes stored translation records.
type HistoryService interface {
	List(ctx context.Context, userID string) ([]model.Translation, error)
	Delete(ctx context.Context, id string) error
	Export(ctx context.Context, userID string) (*UserExport, error)
}

type historyService struct {
	translations repository.TranslationRepository
	sessions     repository.SessionRepository
}

func NewHistoryService(translations repository.TranslationRepository, sessions repository.SessionRepository) HistoryService {
	return &historyService{translations: translations, sessions: sessions}
}

func (s *historyService) List(ctx context.Context, userID string) ([]model.Translation, error) {
	if s.translations == nil {
		return []model.Translation{}, nil
	}
	translations, err := s.translations.List(ctx, userID, DefaultHistoryLimit)
	if errors.Is(err, objectstore.ErrNotConfigured) {
		return []model.Translation{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	return translations, nil
}

func (s *historyService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return invalid("id is required")
	}
	if s.translations == nil {
		return fmt.Errorf("%w: no object store configured", ErrStoreSave)
	}
	if err := s.translations.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete history record: %w", err)
	}
	logger.Info("history record deleted", "module", "service", "action", "delete", "resource", "store", "result", "ok", "id", id)
	return nil
}

// Export fetches a user's translations and conversation sessions. The
// two listings are independent, so they run concurrently.
func (s *historyService) Export(ctx context.Context, userID string) (*UserExport, error) {
	export := &UserExport{
		Translations: []model.Translation{},
		Sessions:     []model.ConversationSession{},
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		translations, err := s.List(ctx, userID)
		if err != nil {
			return err
		}
		export.Translations = translations
		return nil
	})
	g.Go(func() error {
		if s.sessions == nil {
			return nil
		}
		sessions, err := s.sessions.List(ctx, userID, DefaultHistoryLimit)
		if errors.Is(err, objectstore.ErrNotConfigured) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("list sessions: %w", err)
		}
		export.Sessions = sessions
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return export, nil
}
