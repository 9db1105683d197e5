package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	AppName    = "Lingua"
	AppVersion = "1.0.0"
)

// Defaults applied when the environment leaves a knob unset.
const (
	DefaultAddr        = ":8080"
	DefaultModel       = "gpt-4o-mini"
	DefaultRateLimit   = 10
	DefaultHTTPTimeout = 30 * time.Second
)

type Config struct {
	Addr     string
	DBPath   string
	DataDir  string
	LogLevel string

	AI    AIConfig
	Store StoreConfig
}

// AIConfig configures the completion API used for translation and
// language detection.
type AIConfig struct {
	Provider  string // openai, anthropic, compatible
	APIKey    string
	BaseURL   string
	Model     string
	RateLimit int // requests per second against the provider
}

// StoreConfig identifies the remote object store bucket used for
// translation history, languages and conversation sessions.
type StoreConfig struct {
	BaseURL    string
	BucketSlug string
	ReadKey    string
	WriteKey   string
	ProxyURL   string
	Timeout    time.Duration
}

func Load() Config {
	// A missing .env file is fine; the environment may be set directly.
	_ = godotenv.Load()

	addr := os.Getenv("LINGUA_ADDR")
	if addr == "" {
		addr = DefaultAddr
	}
	dataDir := os.Getenv("LINGUA_DATA_DIR")
	if dataDir == "" {
		dataDir = "./data"
	}
	dbPath := os.Getenv("LINGUA_DB_PATH")
	if dbPath == "" {
		dbPath = filepath.Join(dataDir, "lingua.db")
	}
	logLevel := os.Getenv("LINGUA_LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	provider := os.Getenv("AI_PROVIDER")
	if provider == "" {
		provider = "openai"
	}
	model := os.Getenv("AI_MODEL")
	if model == "" {
		model = DefaultModel
	}
	rateLimit := DefaultRateLimit
	if v := os.Getenv("AI_RATE_LIMIT"); v != "" {
		if qps, err := strconv.Atoi(v); err == nil && qps > 0 {
			rateLimit = qps
		}
	}

	timeout := DefaultHTTPTimeout
	if v := os.Getenv("STORE_TIMEOUT_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			timeout = time.Duration(secs) * time.Second
		}
	}
	storeURL := os.Getenv("STORE_BASE_URL")
	if storeURL == "" {
		storeURL = "https://api.cosmicjs.com/v3"
	}

	return Config{
		Addr:     addr,
		DBPath:   filepath.Clean(dbPath),
		DataDir:  filepath.Clean(dataDir),
		LogLevel: logLevel,
		AI: AIConfig{
			Provider:  provider,
			APIKey:    os.Getenv("OPENAI_API_KEY"),
			BaseURL:   os.Getenv("AI_BASE_URL"),
			Model:     model,
			RateLimit: rateLimit,
		},
		Store: StoreConfig{
			BaseURL:    storeURL,
			BucketSlug: os.Getenv("COSMIC_BUCKET_SLUG"),
			ReadKey:    os.Getenv("COSMIC_READ_KEY"),
			WriteKey:   os.Getenv("COSMIC_WRITE_KEY"),
			ProxyURL:   os.Getenv("LINGUA_PROXY_URL"),
			Timeout:    timeout,
		},
	}
}
