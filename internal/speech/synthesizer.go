package speech

import (
	"context"
	"time"
)

// SpeakTimeout bounds a synthesis call. Some engines never signal
// completion; the timeout guarantees Speak resolves regardless.
const SpeakTimeout = 30 * time.Second

// Synthesizer renders text in the given language to audio bytes.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, language string) ([]byte, error)
}

// Speak runs a synthesis and resolves when it completes or when the
// timeout elapses, whichever comes first. A timed-out synthesis resolves
// with no audio and no error, matching the playback-fallback contract.
func Speak(ctx context.Context, synthesizer Synthesizer, text, language string, timeout time.Duration) ([]byte, error) {
	if synthesizer == nil {
		return nil, ErrNotSupported
	}
	if timeout <= 0 {
		timeout = SpeakTimeout
	}

	type outcome struct {
		audio []byte
		err   error
	}
	done := make(chan outcome, 1)

	go func() {
		audio, err := synthesizer.Synthesize(ctx, text, language)
		done <- outcome{audio: audio, err: err}
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case result := <-done:
		return result.audio, result.err
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.C:
		return nil, nil
	}
}
