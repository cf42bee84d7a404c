// Package l10n provides the localized texts of the user interface.
package l10n

import (
	"log/slog"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/flinesoft/prayer/internal/app"
)

// Localizer returns texts for one interface language.
type Localizer struct {
	code string
	p    *message.Printer
}

// New returns a localizer for a language code.
// Unsupported codes fall back to the default language.
func New(code string) *Localizer {
	if !app.AvailableLanguageCodes.Contains(code) {
		code = app.LanguageCodeDefault
	}
	l := &Localizer{
		code: code,
		p:    message.NewPrinter(language.Make(code), message.Catalog(texts)),
	}
	return l
}

// LanguageCode returns the code of the language of l.
func (l *Localizer) LanguageCode() string {
	return l.code
}

// T returns the text for key.
func (l *Localizer) T(key Key) string {
	return l.p.Sprintf(string(key))
}

// Tf returns the text for key with args inserted. Texts use fmt verbs.
func (l *Localizer) Tf(key Key, args ...any) string {
	return l.p.Sprintf(string(key), args...)
}

// LanguageName returns the name of a language in that language, e.g. "Deutsch" for "de".
func LanguageName(code string) string {
	t, err := language.Parse(code)
	if err != nil {
		return code
	}
	return display.Self.Name(t)
}

var texts = buildCatalog()

func buildCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.Make(app.LanguageCodeDefault)))
	for key, m := range translations {
		for code, text := range m {
			if err := b.SetString(language.Make(code), string(key), text); err != nil {
				slog.Error("l10n: failed to add text", "key", key, "language", code, "error", err)
			}
		}
	}
	return b
}

// Missing returns the keys which have no text for a language. Used for testing.
func Missing(code string) []string {
	var keys []string
	for key, m := range translations {
		if _, ok := m[code]; !ok {
			keys = append(keys, string(key))
		}
	}
	return keys
}
