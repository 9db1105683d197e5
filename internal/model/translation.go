package model

import "time"

// Translation methods. Free-form strings matched against these constants
// when records come back from the object store.
const (
	MethodText     = "text"
	MethodVoice    = "voice"
	MethodDocument = "document"
)

// Translation is a single completed translation, immutable once stored
// except for deletion.
type Translation struct {
	ID             string    `json:"id"`
	SourceText     string    `json:"sourceText"`
	TranslatedText string    `json:"translatedText"`
	SourceLanguage string    `json:"sourceLanguage"`
	TargetLanguage string    `json:"targetLanguage"`
	Method         string    `json:"method"`
	Confidence     float64   `json:"confidence"`
	UserID         string    `json:"userId,omitempty"`
	SessionID      string    `json:"sessionId,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// CachedTranslation is a locally cached translation result keyed by the
// source text hash and language pair.
type CachedTranslation struct {
	ID               int64
	TextHash         string
	SourceLanguage   string
	TargetLanguage   string
	TranslatedText   string
	DetectedLanguage string
	CreatedAt        time.Time
}
