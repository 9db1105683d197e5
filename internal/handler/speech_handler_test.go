package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"lingua/backend/internal/handler"
	"lingua/backend/internal/speech"
)

type synthesizerStub struct {
	audio []byte
	err   error
}

func (s *synthesizerStub) Synthesize(ctx context.Context, text, language string) ([]byte, error) {
	return s.audio, s.err
}

func TestSpeechHandler_Capabilities(t *testing.T) {
	h := handler.NewSpeechHandler(speech.Capabilities{Synthesis: true}, &synthesizerStub{})

	c, rec := get(t, "/api/speech/capabilities")
	require.NoError(t, h.Capabilities(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var caps speech.Capabilities
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &caps))
	require.True(t, caps.Synthesis)
	require.False(t, caps.Recognition)
}

func TestSpeechHandler_Synthesize(t *testing.T) {
	h := handler.NewSpeechHandler(
		speech.Capabilities{Synthesis: true},
		&synthesizerStub{audio: []byte("mp3-bytes")},
	)

	c, rec := postJSON(t, "/api/speech/synthesize", `{"text":"hello","language":"English"}`)
	require.NoError(t, h.Synthesize(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "audio/mpeg", rec.Header().Get(echo.HeaderContentType))
	require.Equal(t, "mp3-bytes", rec.Body.String())
}

func TestSpeechHandler_Synthesize_NotSupported(t *testing.T) {
	h := handler.NewSpeechHandler(speech.Capabilities{}, nil)

	c, rec := postJSON(t, "/api/speech/synthesize", `{"text":"hello","language":"English"}`)
	require.NoError(t, h.Synthesize(c))
	require.Equal(t, http.StatusNotImplemented, rec.Code)
}

func TestSpeechHandler_Synthesize_MissingText(t *testing.T) {
	h := handler.NewSpeechHandler(speech.Capabilities{Synthesis: true}, &synthesizerStub{})

	c, rec := postJSON(t, "/api/speech/synthesize", `{"language":"English"}`)
	require.NoError(t, h.Synthesize(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSpeechHandler_Synthesize_EmptyAudio(t *testing.T) {
	h := handler.NewSpeechHandler(speech.Capabilities{Synthesis: true}, &synthesizerStub{})

	c, rec := postJSON(t, "/api/speech/synthesize", `{"text":"hello","language":"English"}`)
	require.NoError(t, h.Synthesize(c))
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Empty(t, rec.Body.String())
}

func TestSpeechHandler_Synthesize_BadBody(t *testing.T) {
	h := handler.NewSpeechHandler(speech.Capabilities{Synthesis: true}, &synthesizerStub{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/speech/synthesize", strings.NewReader("{broken"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Synthesize(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
