package ai

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/openai/openai-go"
	"github.com/sony/gobreaker"
)

// Provider failure taxonomy. Every provider error collapses into exactly
// one of these; none are retried automatically.
var (
	ErrAuthFailed  = errors.New("authentication rejected by provider")
	ErrRateLimited = errors.New("provider rate limit exceeded")
	ErrUnavailable = errors.New("provider unavailable")
	ErrTimeout     = errors.New("provider request timed out")
	ErrNetwork     = errors.New("network failure reaching provider")
)

// Classify maps a raw provider error onto the failure taxonomy. Errors
// that fit no category pass through unchanged and are treated as generic
// translation failures by the caller.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if code, ok := statusCode(err); ok {
		switch {
		case code == 401 || code == 403:
			return fmt.Errorf("%w: %v", ErrAuthFailed, err)
		case code == 429:
			return fmt.Errorf("%w: %v", ErrRateLimited, err)
		case code == 408 || code == 504:
			return fmt.Errorf("%w: %v", ErrTimeout, err)
		case code >= 500:
			return fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	return err
}

func statusCode(err error) (int, bool) {
	var openaiErr *openai.Error
	if errors.As(err, &openaiErr) {
		return openaiErr.StatusCode, true
	}
	var anthropicErr *anthropic.Error
	if errors.As(err, &anthropicErr) {
		return anthropicErr.StatusCode, true
	}
	return 0, false
}
