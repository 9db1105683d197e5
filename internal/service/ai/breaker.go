package ai

import (
	"context"
	"time"

	"github.com/sony/gobreaker"

	"lingua/backend/internal/logger"
)

// Breaker shields the completion API behind a circuit breaker. While the
// circuit is open, calls fail immediately and surface as upstream
// unavailability instead of stacking up timeouts.
type Breaker struct {
	cb *gobreaker.CircuitBreaker
}

// NewBreaker creates a breaker tuned for the completion API: trip after
// five consecutive failures, probe again after 30 seconds.
func NewBreaker() *Breaker {
	settings := gobreaker.Settings{
		Name:    "completion-api",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("ai breaker state change", "module", "ai", "action", "update", "resource", "ai", "result", "ok", "breaker", name, "from", from.String(), "to", to.String())
		},
	}
	return &Breaker{cb: gobreaker.NewCircuitBreaker(settings)}
}

// Complete runs a provider completion through the breaker.
func (b *Breaker) Complete(ctx context.Context, provider Provider, systemPrompt, content string) (string, error) {
	result, err := b.cb.Execute(func() (interface{}, error) {
		return provider.Complete(ctx, systemPrompt, content)
	})
	if err != nil {
		return "", err
	}
	text, _ := result.(string)
	return text, nil
}
