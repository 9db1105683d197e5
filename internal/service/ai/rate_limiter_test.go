package ai_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"lingua/backend/internal/service/ai"
)

func TestRateLimiter_Defaults(t *testing.T) {
	limiter := ai.NewRateLimiter(0)
	require.Equal(t, ai.DefaultRateLimit, limiter.GetLimit())

	limiter = ai.NewRateLimiter(-3)
	require.Equal(t, ai.DefaultRateLimit, limiter.GetLimit())
}

func TestRateLimiter_SetLimit(t *testing.T) {
	limiter := ai.NewRateLimiter(5)
	require.Equal(t, 5, limiter.GetLimit())

	limiter.SetLimit(20)
	require.Equal(t, 20, limiter.GetLimit())

	limiter.SetLimit(0)
	require.Equal(t, ai.DefaultRateLimit, limiter.GetLimit())
}

func TestRateLimiter_WaitCancelled(t *testing.T) {
	// Burst 1: the first wait consumes the token, the second blocks and
	// must observe the cancelled context.
	limiter := ai.NewRateLimiter(1)
	require.NoError(t, limiter.Wait(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.Error(t, limiter.Wait(ctx))
}
