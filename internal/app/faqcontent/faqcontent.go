// Package faqcontent provides the FAQ entries shipped with the app.
package faqcontent

import (
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"path"

	"github.com/goccy/go-yaml"

	"github.com/flinesoft/prayer/internal/app"
)

//go:embed content/*.yaml
var embedContent embed.FS

var ErrUnknownLanguage = errors.New("unknown language")

// Load returns the FAQ entries for a language.
// Languages without own entries fall back to the entries of the default language.
func Load(code string) ([]app.FAQEntry, error) {
	entries, err := load(code)
	if errors.Is(err, ErrUnknownLanguage) && code != app.LanguageCodeDefault {
		slog.Info("No FAQ for language. Using fallback", "language", code, "fallback", app.LanguageCodeDefault)
		return load(app.LanguageCodeDefault)
	}
	return entries, err
}

func load(code string) ([]app.FAQEntry, error) {
	if !app.AvailableLanguageCodes.Contains(code) {
		return nil, fmt.Errorf("load FAQ for %q: %w", code, ErrUnknownLanguage)
	}
	data, err := embedContent.ReadFile(path.Join("content", fmt.Sprintf("faq_%s.yaml", code)))
	if err != nil {
		return nil, fmt.Errorf("load FAQ for %q: %w", code, ErrUnknownLanguage)
	}
	entries, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("load FAQ for %q: %w", code, err)
	}
	return entries, nil
}

func parse(data []byte) ([]app.FAQEntry, error) {
	var entries []app.FAQEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	for i, e := range entries {
		if e.Question == "" {
			return nil, fmt.Errorf("entry %d: missing question", i)
		}
	}
	return entries, nil
}
