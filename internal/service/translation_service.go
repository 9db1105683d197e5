package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"lingua/backend/internal/logger"
	"lingua/backend/internal/model"
	"lingua/backend/internal/repository"
	"lingua/backend/internal/service/ai"
)

const (
	// MaxTextLength is the hard cap on translatable input, in characters.
	MaxTextLength = 5000
	// DetectMinLength is the minimum trimmed length before auto-detection
	// is worth a provider call.
	DetectMinLength = 3
	// DefaultConfidence is attached to provider translations. The
	// provider exposes no calibrated confidence signal, so this is a
	// constant by contract.
	DefaultConfidence = 0.95
	// IdentityConfidence is attached when source and target match and
	// the text passes through unchanged.
	IdentityConfidence = 1.0

	// DetectUnknown is the provider's answer when it cannot identify
	// the input language.
	DetectUnknown = "Unknown"
)

// TranslateRequest is a single translation pipeline invocation.
type TranslateRequest struct {
	Text           string
	SourceLanguage string
	TargetLanguage string
	AutoDetect     bool
	Method         string
	UserID         string
	SessionID      string
}

// TranslateResult is the pipeline output.
type TranslateResult struct {
	TranslatedText   string
	SourceLanguage   string
	TargetLanguage   string
	DetectedLanguage string // set only when detection overrode the caller's source
	Confidence       float64
	Alternatives     []string
	Cached           bool
	Saved            bool
}

// TranslateStatus reports whether the pipeline is usable.
type TranslateStatus struct {
	Status     string `json:"status"`
	Configured bool   `json:"configured"`
	Message    string `json:"message"`
}

// ProviderFactory builds a completion provider from config. Injected so
// tests can count and fake provider calls.
type ProviderFactory func(ai.Config) (ai.Provider, error)

// TranslationService runs the translate pipeline: validate, short-circuit,
// optionally detect, translate, cache and persist.
type TranslationService interface {
	Translate(ctx context.Context, req TranslateRequest) (*TranslateResult, error)
	Status(ctx context.Context) TranslateStatus
	ClearCache(ctx context.Context) (int64, error)
}

type translationService struct {
	cfg     ai.Config
	factory ProviderFactory
	limiter *ai.RateLimiter
	breaker *ai.Breaker
	cache   repository.CacheRepository
	history repository.TranslationRepository
}

// NewTranslationService creates the pipeline. history may be nil when no
// object store is configured; translations then succeed without being
// persisted.
func NewTranslationService(
	cfg ai.Config,
	factory ProviderFactory,
	limiter *ai.RateLimiter,
	breaker *ai.Breaker,
	cache repository.CacheRepository,
	history repository.TranslationRepository,
) TranslationService {
	return &translationService{
		cfg:     cfg,
		factory: factory,
		limiter: limiter,
		breaker: breaker,
		cache:   cache,
		history: history,
	}
}

func (s *translationService) Translate(ctx context.Context, req TranslateRequest) (*TranslateResult, error) {
	trimmed := strings.TrimSpace(req.Text)
	if trimmed == "" {
		return nil, invalid("text is required")
	}
	if utf8.RuneCountInString(req.Text) > MaxTextLength {
		return nil, invalid(fmt.Sprintf("text exceeds the maximum length of %d characters", MaxTextLength))
	}
	if req.SourceLanguage == "" || req.TargetLanguage == "" {
		return nil, invalid("source and target languages are required")
	}

	// Same language in and out: no provider call, full confidence.
	if strings.EqualFold(req.SourceLanguage, req.TargetLanguage) {
		return s.identityResult(req, ""), nil
	}

	if cached := s.cacheLookup(ctx, trimmed, req); cached != nil {
		return cached, nil
	}

	if err := ai.ValidateConfig(s.cfg); err != nil {
		logger.Warn("translate config invalid", "module", "service", "action", "translate", "resource", "ai", "result", "failed", "error", err)
		return nil, err
	}

	provider, err := s.factory(s.cfg)
	if err != nil {
		return nil, fmt.Errorf("create provider: %w", err)
	}

	source := req.SourceLanguage
	detected := ""
	if req.AutoDetect && utf8.RuneCountInString(trimmed) > DetectMinLength {
		if lang := s.detectLanguage(ctx, provider, trimmed); lang != "" && !strings.EqualFold(lang, source) {
			source = lang
			detected = lang
		}
	}

	// Detection may resolve the source to the target language, which
	// re-triggers the identity short-circuit.
	if strings.EqualFold(source, req.TargetLanguage) {
		return s.identityResult(req, detected), nil
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	systemPrompt := ai.GetTranslatePrompt(source, req.TargetLanguage)
	raw, err := s.breaker.Complete(ctx, provider, systemPrompt, trimmed)
	if err != nil {
		classified := ai.Classify(err)
		logger.Warn("translate failed", "module", "service", "action", "translate", "resource", "ai", "result", "failed", "provider", s.cfg.Provider, "model", s.cfg.Model, "error", classified)
		return nil, classified
	}

	translatedText := strings.TrimSpace(raw)
	if translatedText == "" {
		return nil, fmt.Errorf("empty translation response")
	}

	result := &TranslateResult{
		TranslatedText:   translatedText,
		SourceLanguage:   source,
		TargetLanguage:   req.TargetLanguage,
		DetectedLanguage: detected,
		Confidence:       DefaultConfidence,
		Alternatives:     []string{},
	}
	logger.Info("translate ok", "module", "service", "action", "translate", "resource", "ai", "result", "ok", "source", source, "target", req.TargetLanguage, "provider", s.cfg.Provider, "chars", utf8.RuneCountInString(trimmed))

	s.cacheSave(ctx, trimmed, req, result)
	result.Saved = s.persist(ctx, req, result)

	return result, nil
}

func (s *translationService) identityResult(req TranslateRequest, detected string) *TranslateResult {
	return &TranslateResult{
		TranslatedText:   req.Text,
		SourceLanguage:   req.SourceLanguage,
		TargetLanguage:   req.TargetLanguage,
		DetectedLanguage: detected,
		Confidence:       IdentityConfidence,
		Alternatives:     []string{},
	}
}

// detectLanguage issues one detection completion. Any failure or an
// Unknown answer silently falls back to the caller-supplied source
// language; detection is never fatal to the overall request.
func (s *translationService) detectLanguage(ctx context.Context, provider ai.Provider, text string) string {
	if err := s.limiter.Wait(ctx); err != nil {
		logger.Warn("detect rate limit wait failed", "module", "service", "action", "detect", "resource", "ai", "result", "failed", "error", err)
		return ""
	}

	raw, err := s.breaker.Complete(ctx, provider, ai.GetDetectPrompt(), text)
	if err != nil {
		logger.Warn("detect failed", "module", "service", "action", "detect", "resource", "ai", "result", "failed", "error", ai.Classify(err))
		return ""
	}

	detected := strings.TrimSpace(raw)
	if detected == "" || strings.EqualFold(detected, DetectUnknown) {
		return ""
	}
	logger.Debug("detect ok", "module", "service", "action", "detect", "resource", "ai", "result", "ok", "language", detected)
	return detected
}

// Cache is keyed by the caller-supplied language pair so a hit avoids
// the detection call as well as the translation call.
func (s *translationService) cacheLookup(ctx context.Context, trimmed string, req TranslateRequest) *TranslateResult {
	if s.cache == nil {
		return nil
	}
	cached, err := s.cache.Get(ctx, trimmed, req.SourceLanguage, req.TargetLanguage)
	if err != nil {
		logger.Warn("translate cache lookup failed", "module", "service", "action", "fetch", "resource", "cache", "result", "failed", "error", err)
		return nil
	}
	if cached == nil {
		return nil
	}
	logger.Debug("translate cache hit", "module", "service", "action", "fetch", "resource", "cache", "result", "ok", "cache", "hit")
	return &TranslateResult{
		TranslatedText:   cached.TranslatedText,
		SourceLanguage:   req.SourceLanguage,
		TargetLanguage:   req.TargetLanguage,
		DetectedLanguage: cached.DetectedLanguage,
		Confidence:       DefaultConfidence,
		Alternatives:     []string{},
		Cached:           true,
	}
}

func (s *translationService) cacheSave(ctx context.Context, trimmed string, req TranslateRequest, result *TranslateResult) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Save(ctx, trimmed, req.SourceLanguage, req.TargetLanguage, result.TranslatedText, result.DetectedLanguage); err != nil {
		logger.Warn("translate cache save failed", "module", "service", "action", "save", "resource", "cache", "result", "failed", "error", err)
	}
}

// persist stores the finished translation in the object store. Failures
// are reported via the Saved flag but never invalidate the translation.
func (s *translationService) persist(ctx context.Context, req TranslateRequest, result *TranslateResult) bool {
	if s.history == nil {
		return false
	}
	record := model.Translation{
		SourceText:     req.Text,
		TranslatedText: result.TranslatedText,
		SourceLanguage: result.SourceLanguage,
		TargetLanguage: result.TargetLanguage,
		Method:         req.Method,
		Confidence:     result.Confidence,
		UserID:         req.UserID,
		SessionID:      req.SessionID,
	}
	if _, err := s.history.Store(ctx, record); err != nil {
		logger.Warn("translation history save failed", "module", "service", "action", "save", "resource", "store", "result", "failed", "error", err)
		return false
	}
	return true
}

func (s *translationService) Status(ctx context.Context) TranslateStatus {
	if err := ai.ValidateConfig(s.cfg); err != nil {
		return TranslateStatus{
			Status:     "error",
			Configured: false,
			Message:    err.Error(),
		}
	}
	return TranslateStatus{
		Status:     "ok",
		Configured: true,
		Message:    "translation service ready",
	}
}

func (s *translationService) ClearCache(ctx context.Context) (int64, error) {
	if s.cache == nil {
		return 0, nil
	}
	deleted, err := s.cache.DeleteAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("clear translation cache: %w", err)
	}
	logger.Info("translation cache cleared", "module", "service", "action", "clear", "resource", "cache", "result", "ok", "deleted", deleted)
	return deleted, nil
}
