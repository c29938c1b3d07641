package content

import (
	"fmt"
	"strings"
)

// Language identifies one of the site's supported languages.
type Language string

const (
	LanguageEN Language = "en"
	LanguageFR Language = "fr"
	LanguageAR Language = "ar"
)

// Languages lists every supported language. Localized content must be
// populated for all of them.
var Languages = []Language{LanguageEN, LanguageFR, LanguageAR}

func ParseLanguage(s string) (Language, error) {
	switch Language(strings.ToLower(strings.TrimSpace(s))) {
	case LanguageEN:
		return LanguageEN, nil
	case LanguageFR:
		return LanguageFR, nil
	case LanguageAR:
		return LanguageAR, nil
	}
	return "", fmt.Errorf("unsupported language %q", s)
}

func (l Language) Valid() bool {
	switch l {
	case LanguageEN, LanguageFR, LanguageAR:
		return true
	}
	return false
}

// LocalizedText carries one string per supported language. A field per
// language (instead of a map keyed by tag) makes a missing translation a
// construction-time error rather than a silent runtime fallback.
type LocalizedText struct {
	EN string `json:"en"`
	FR string `json:"fr"`
	AR string `json:"ar"`
}

// ForLanguage resolves the text for the given language.
func (t LocalizedText) ForLanguage(l Language) string {
	switch l {
	case LanguageFR:
		return t.FR
	case LanguageAR:
		return t.AR
	default:
		return t.EN
	}
}

// Validate checks that every supported language is populated.
func (t LocalizedText) Validate() error {
	for _, l := range Languages {
		if strings.TrimSpace(t.ForLanguage(l)) == "" {
			return fmt.Errorf("missing %s text", l)
		}
	}
	return nil
}
