package service

import (
	"context"

	"lingua/backend/internal/logger"
	"lingua/backend/internal/model"
	"lingua/backend/internal/repository"
)

// LanguageService serves the language catalog, falling back to the
// hardcoded reference list when the object store is empty or unreachable.
type LanguageService interface {
	List(ctx context.Context) []model.Language
}

type languageService struct {
	repo repository.LanguageRepository
}

// NewLanguageService creates a language service. repo may be nil when no
// object store is configured; the fallback list is served then.
func NewLanguageService(repo repository.LanguageRepository) LanguageService {
	return &languageService{repo: repo}
}

func (s *languageService) List(ctx context.Context) []model.Language {
	if s.repo == nil {
		return model.DefaultLanguages
	}

	languages, err := s.repo.List(ctx)
	if err != nil {
		logger.Warn("language list fetch failed", "module", "service", "action", "fetch", "resource", "store", "result", "failed", "error", err)
		return model.DefaultLanguages
	}
	if len(languages) == 0 {
		return model.DefaultLanguages
	}
	return languages
}
