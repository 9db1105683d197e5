package model

// Language is static reference data describing a supported language.
// Names are used as informal join keys throughout the system; there is
// no referential enforcement against translation records.
type Language struct {
	Name       string `json:"name"`
	Code       string `json:"code"`
	NativeName string `json:"nativeName"`
	Flag       string `json:"flag"`
	Voice      bool   `json:"voiceSupported"`
	Quality    string `json:"quality"`
}

// DefaultLanguages is the hardcoded fallback catalog served when the
// object store holds no language objects.
var DefaultLanguages = []Language{
	{Name: "English", Code: "en", NativeName: "English", Flag: "🇬🇧", Voice: true, Quality: "excellent"},
	{Name: "Spanish", Code: "es", NativeName: "Español", Flag: "🇪🇸", Voice: true, Quality: "excellent"},
	{Name: "French", Code: "fr", NativeName: "Français", Flag: "🇫🇷", Voice: true, Quality: "excellent"},
	{Name: "German", Code: "de", NativeName: "Deutsch", Flag: "🇩🇪", Voice: true, Quality: "excellent"},
	{Name: "Italian", Code: "it", NativeName: "Italiano", Flag: "🇮🇹", Voice: true, Quality: "good"},
	{Name: "Portuguese", Code: "pt", NativeName: "Português", Flag: "🇵🇹", Voice: true, Quality: "good"},
	{Name: "Russian", Code: "ru", NativeName: "Русский", Flag: "🇷🇺", Voice: true, Quality: "good"},
	{Name: "Japanese", Code: "ja", NativeName: "日本語", Flag: "🇯🇵", Voice: true, Quality: "good"},
	{Name: "Korean", Code: "ko", NativeName: "한국어", Flag: "🇰🇷", Voice: true, Quality: "good"},
	{Name: "Chinese", Code: "zh", NativeName: "中文", Flag: "🇨🇳", Voice: true, Quality: "good"},
	{Name: "Arabic", Code: "ar", NativeName: "العربية", Flag: "🇸🇦", Voice: false, Quality: "fair"},
	{Name: "Hindi", Code: "hi", NativeName: "हिन्दी", Flag: "🇮🇳", Voice: false, Quality: "fair"},
	{Name: "Dutch", Code: "nl", NativeName: "Nederlands", Flag: "🇳🇱", Voice: true, Quality: "good"},
	{Name: "Turkish", Code: "tr", NativeName: "Türkçe", Flag: "🇹🇷", Voice: false, Quality: "fair"},
}
