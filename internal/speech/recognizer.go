package speech

import (
	"context"
	"sync"
)

// Transcript is one recognition result. A session emits a sequence of
// partial transcripts culminating in exactly one with IsFinal set.
type Transcript struct {
	Text    string `json:"text"`
	IsFinal bool   `json:"isFinal"`
}

// Recognizer transcribes a speech session into transcripts. The channel
// closes after the final transcript or when the session is stopped.
type Recognizer interface {
	Start(ctx context.Context, locale string) (<-chan Transcript, error)
	Stop()
}

// Manager enforces the single-session rule: starting a new recognition
// session implicitly stops any prior session.
type Manager struct {
	recognizer Recognizer

	mu     sync.Mutex
	active bool
	stop   func()
}

func NewManager(recognizer Recognizer) *Manager {
	return &Manager{recognizer: recognizer}
}

// Supported reports whether recognition is available at all.
func (m *Manager) Supported() bool {
	return m.recognizer != nil
}

// Start begins a recognition session for the given language, stopping
// any session already in flight.
func (m *Manager) Start(ctx context.Context, language string) (<-chan Transcript, error) {
	if m.recognizer == nil {
		return nil, ErrNotSupported
	}

	m.mu.Lock()
	if m.active && m.stop != nil {
		m.stop()
	}

	transcripts, err := m.recognizer.Start(ctx, LocaleFor(language))
	if err != nil {
		m.active = false
		m.stop = nil
		m.mu.Unlock()
		return nil, err
	}
	m.active = true
	m.stop = m.recognizer.Stop
	m.mu.Unlock()

	return transcripts, nil
}

// Stop ends the active session, if any.
func (m *Manager) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.active && m.stop != nil {
		m.stop()
	}
	m.active = false
	m.stop = nil
}
