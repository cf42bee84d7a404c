// Package ui implements the screens of the app and the coordinator, which acts on their actions.
package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/flinesoft/prayer/internal/app"
	"github.com/flinesoft/prayer/internal/faqlayout"
)

// SlogReporter reports anomalies to the default logger.
type SlogReporter struct{}

var _ app.Reporter = (*SlogReporter)(nil)

func (SlogReporter) Report(message string) {
	slog.Warn("UI anomaly", "message", message)
}

// FAQStyle defines how the FAQ entries are rendered.
type FAQStyle struct {
	QuestionFont faqlayout.Font
	AnswerFont   faqlayout.Font
	Insets       faqlayout.Insets
}

// DefaultFAQStyle returns the FAQ style derived from the current theme.
func DefaultFAQStyle() FAQStyle {
	p := theme.Padding()
	return FAQStyle{
		QuestionFont: faqlayout.Font{
			Size:  theme.Size(theme.SizeNameSubHeadingText),
			Style: fyne.TextStyle{Bold: true},
		},
		AnswerFont: faqlayout.Font{
			Size: theme.TextSize(),
		},
		Insets: faqlayout.Insets{
			Top:         2 * p,
			Bottom:      2 * p,
			Left:        3 * p,
			Right:       3 * p,
			Spacing:     p,
			ItemSpacing: 2 * p,
		},
	}
}
