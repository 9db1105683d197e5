package speech

import (
	"context"
	"fmt"
	"io"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAISynthesizer renders speech through the OpenAI audio API.
type OpenAISynthesizer struct {
	client openai.Client
	model  string
	voice  openai.AudioSpeechNewParamsVoice
}

// NewOpenAISynthesizer creates a synthesizer. Returns nil when no API
// key is configured so capability negotiation reports synthesis as
// unsupported instead of failing at call time.
func NewOpenAISynthesizer(apiKey string) *OpenAISynthesizer {
	if apiKey == "" {
		return nil
	}
	return &OpenAISynthesizer{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		model:  "tts-1",
		voice:  openai.AudioSpeechNewParamsVoiceAlloy,
	}
}

// Synthesize renders text as MP3 audio. The language steers the voice
// instructions only; the engine detects pronunciation from the text.
func (s *OpenAISynthesizer) Synthesize(ctx context.Context, text, language string) ([]byte, error) {
	if text == "" {
		return nil, fmt.Errorf("text is required")
	}

	resp, err := s.client.Audio.Speech.New(ctx, openai.AudioSpeechNewParams{
		Model:          openai.SpeechModel(s.model),
		Input:          text,
		Voice:          s.voice,
		ResponseFormat: openai.AudioSpeechNewParamsResponseFormatMP3,
	})
	if err != nil {
		return nil, fmt.Errorf("synthesize speech: %w", err)
	}
	defer resp.Body.Close()

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read audio: %w", err)
	}
	return audio, nil
}
