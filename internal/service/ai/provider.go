package ai

import (
	"context"
	"errors"
	"strings"
)

// Provider defines the interface for completion API providers.
type Provider interface {
	// Complete generates a response for the given prompt pair.
	Complete(ctx context.Context, systemPrompt, content string) (string, error)
	// Name returns the provider name.
	Name() string
}

// Config holds the configuration for a completion provider.
type Config struct {
	Provider string // openai, anthropic, compatible
	APIKey   string
	BaseURL  string // optional for openai, required for compatible
	Model    string
}

// ProviderType constants
const (
	ProviderOpenAI     = "openai"
	ProviderAnthropic  = "anthropic"
	ProviderCompatible = "compatible"
)

// Credential prefixes enforced per provider. A key that is present but
// carries the wrong prefix is malformed, which is a distinct failure
// from a missing key.
const (
	openAIKeyPrefix    = "sk-"
	anthropicKeyPrefix = "sk-ant-"
)

var (
	ErrInvalidProvider = errors.New("invalid provider")
	ErrMissingAPIKey   = errors.New("API key is required")
	ErrInvalidAPIKey   = errors.New("API key is malformed")
	ErrMissingBaseURL  = errors.New("base URL is required for compatible provider")
	ErrMissingModel    = errors.New("model is required")
)

// ValidateConfig checks the credential and model without performing any
// network call. The translate endpoint's status check uses this too.
func ValidateConfig(cfg Config) error {
	if cfg.APIKey == "" {
		return ErrMissingAPIKey
	}
	if cfg.Model == "" {
		return ErrMissingModel
	}
	switch cfg.Provider {
	case ProviderOpenAI:
		if !strings.HasPrefix(cfg.APIKey, openAIKeyPrefix) {
			return ErrInvalidAPIKey
		}
	case ProviderAnthropic:
		if !strings.HasPrefix(cfg.APIKey, anthropicKeyPrefix) {
			return ErrInvalidAPIKey
		}
	case ProviderCompatible:
		if cfg.BaseURL == "" {
			return ErrMissingBaseURL
		}
	default:
		return ErrInvalidProvider
	}
	return nil
}

// NewProvider creates a new completion provider based on the config.
func NewProvider(cfg Config) (Provider, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}

	switch cfg.Provider {
	case ProviderOpenAI:
		return NewOpenAIProvider(cfg.APIKey, cfg.BaseURL, cfg.Model)
	case ProviderAnthropic:
		return NewAnthropicProvider(cfg.APIKey, cfg.BaseURL, cfg.Model)
	case ProviderCompatible:
		return NewCompatibleProvider(cfg.APIKey, cfg.BaseURL, cfg.Model)
	default:
		return nil, ErrInvalidProvider
	}
}
