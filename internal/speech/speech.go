// Package speech adapts speech recognition and synthesis engines to the
// translation pipeline's plain-string interface. Engines are optional
// capabilities: callers check Capabilities before use, and using an
// absent capability returns ErrNotSupported rather than panicking.
package speech

import "errors"

var ErrNotSupported = errors.New("speech capability not supported")

// Capabilities reports which speech features are available. Negotiated
// once at startup and consulted by callers before each use.
type Capabilities struct {
	Recognition bool `json:"recognition"`
	Synthesis   bool `json:"synthesis"`
}

// Negotiate derives the capability pair from the configured engines.
func Negotiate(recognizer Recognizer, synthesizer Synthesizer) Capabilities {
	return Capabilities{
		Recognition: recognizer != nil,
		Synthesis:   synthesizer != nil,
	}
}

// DefaultLocale is used when a language name has no locale mapping.
const DefaultLocale = "en-US"

// localeTable maps language display names to BCP-47 locale tags for the
// synthesis engine. Names match the reference language catalog.
var localeTable = map[string]string{
	"English":    "en-US",
	"Spanish":    "es-ES",
	"French":     "fr-FR",
	"German":     "de-DE",
	"Italian":    "it-IT",
	"Portuguese": "pt-PT",
	"Russian":    "ru-RU",
	"Japanese":   "ja-JP",
	"Korean":     "ko-KR",
	"Chinese":    "zh-CN",
	"Arabic":     "ar-SA",
	"Hindi":      "hi-IN",
	"Dutch":      "nl-NL",
	"Turkish":    "tr-TR",
}

// LocaleFor maps a language display name to its locale tag, falling back
// to DefaultLocale for unmapped names.
func LocaleFor(language string) string {
	if tag, ok := localeTable[language]; ok {
		return tag
	}
	return DefaultLocale
}
