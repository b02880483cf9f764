package constants

import "strings"

const DefaultLanguage = "en"

// SupportedLanguages adalah daftar bahasa yang dipakai varian artikel blog.
var SupportedLanguages = []string{"en", "de", "ar", "nl", "zh", "fr", "ja"}

func IsSupportedLanguage(lang string) bool {
	lang = strings.ToLower(strings.TrimSpace(lang))
	for _, l := range SupportedLanguages {
		if l == lang {
			return true
		}
	}
	return false
}

// NormalizeLanguage: lower-case + fallback ke DefaultLanguage kalau kosong.
func NormalizeLanguage(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "" {
		return DefaultLanguage
	}
	return lang
}
