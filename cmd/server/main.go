package main

import (
	"log"

	"lingua/backend/internal/config"
	"lingua/backend/internal/db"
	"lingua/backend/internal/handler"
	transport "lingua/backend/internal/http"
	"lingua/backend/internal/logger"
	"lingua/backend/internal/network"
	"lingua/backend/internal/objectstore"
	"lingua/backend/internal/repository"
	"lingua/backend/internal/service"
	"lingua/backend/internal/service/ai"
	"lingua/backend/internal/snowflake"
	"lingua/backend/internal/speech"
)

func main() {
	cfg := config.Load()
	logger.Init(logger.ParseLevel(cfg.LogLevel))

	if err := snowflake.Init(0); err != nil {
		log.Fatalf("init snowflake: %v", err)
	}

	dbConn, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer dbConn.Close()

	clientFactory := network.NewClientFactory(cfg.Store.ProxyURL)
	store := objectstore.New(cfg.Store, clientFactory)

	cacheRepo := repository.NewCacheRepository(dbConn)
	var translationRepo repository.TranslationRepository
	var sessionRepo repository.SessionRepository
	var languageRepo repository.LanguageRepository
	if store.Configured() {
		translationRepo = repository.NewTranslationRepository(store)
		sessionRepo = repository.NewSessionRepository(store)
		languageRepo = repository.NewLanguageRepository(store)
	} else {
		logger.Warn("object store not configured, history persistence disabled", "module", "main", "action", "init", "resource", "store", "result", "failed")
	}

	aiCfg := ai.Config{
		Provider: cfg.AI.Provider,
		APIKey:   cfg.AI.APIKey,
		BaseURL:  cfg.AI.BaseURL,
		Model:    cfg.AI.Model,
	}
	limiter := ai.NewRateLimiter(cfg.AI.RateLimit)
	breaker := ai.NewBreaker()

	translationService := service.NewTranslationService(aiCfg, ai.NewProvider, limiter, breaker, cacheRepo, translationRepo)
	languageService := service.NewLanguageService(languageRepo)
	historyService := service.NewHistoryService(translationRepo, sessionRepo)
	sessionService := service.NewSessionService(sessionRepo)

	synthesizer := speech.NewOpenAISynthesizer(cfg.AI.APIKey)
	var speechSynth speech.Synthesizer
	if synthesizer != nil {
		speechSynth = synthesizer
	}
	capabilities := speech.Capabilities{Synthesis: speechSynth != nil}

	translateHandler := handler.NewTranslateHandler(translationService)
	languageHandler := handler.NewLanguageHandler(languageService)
	historyHandler := handler.NewHistoryHandler(historyService)
	sessionHandler := handler.NewSessionHandler(sessionService)
	speechHandler := handler.NewSpeechHandler(capabilities, speechSynth)

	router := transport.NewRouter(translateHandler, languageHandler, historyHandler, sessionHandler, speechHandler)

	logger.Info("server starting", "module", "main", "action", "start", "resource", "http", "result", "ok", "addr", cfg.Addr)
	if err := router.Start(cfg.Addr); err != nil {
		log.Fatalf("start server: %v", err)
	}
}
