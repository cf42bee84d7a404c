package ui

import (
	"fmt"

	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/dustin/go-humanize"

	"github.com/flinesoft/prayer/internal/app"
	"github.com/flinesoft/prayer/internal/l10n"
	iwidget "github.com/flinesoft/prayer/internal/widget"
)

// newSettingsScene returns a page with the settings screen.
func newSettingsScene(s *SettingsScreen) *iwidget.AppBar {
	return iwidget.NewAppBar(s.l.T(l10n.SettingsTitle), s, s.TrailingItems()...)
}

// newFAQScene returns a page with the FAQ screen.
// The done button of the screen replaces the back button.
func newFAQScene(s *FAQScreen, l *l10n.Localizer) *iwidget.AppBar {
	ab := iwidget.NewAppBar(l.T(l10n.FAQTitle), s)
	ab.Leading = s.DoneButton()
	return ab
}

// newPrayerSummaryScene returns a page which shows the settings the prayer is started with.
func newPrayerSummaryScene(s app.SettingsSnapshot, l *l10n.Localizer) *iwidget.AppBar {
	instrument := app.Titler.String(s.MovementSoundInstrument)
	if s.MovementSoundInstrument == "none" {
		instrument = l.T(l10n.MovementSoundInstrumentValueNone)
	}
	var changingTextName string
	if s.ShowChangingTextName {
		changingTextName = l.T(l10n.ShowChangingTextNameValueOn)
	} else {
		changingTextName = l.T(l10n.ShowChangingTextNameValueOff)
	}
	f := widget.NewForm(
		widget.NewFormItem(l.T(l10n.RakatCountTitle), widget.NewLabel(humanize.Comma(int64(s.RakatCount)))),
		widget.NewFormItem(l.T(l10n.FixedTextsTitle), widget.NewLabel(formatSpeedFactor(s.FixedTextsSpeedFactor, l))),
		widget.NewFormItem(l.T(l10n.ChangingTextTitle), widget.NewLabel(formatSpeedFactor(s.ChangingTextSpeedFactor, l))),
		widget.NewFormItem(l.T(l10n.ChangingTextNameTitle), widget.NewLabel(changingTextName)),
		widget.NewFormItem(l.T(l10n.MovementSoundInstrumentTitle), widget.NewLabel(instrument)),
		widget.NewFormItem(l.T(l10n.InterfaceLanguageTitle), widget.NewLabel(l10n.LanguageName(s.InterfaceLanguageCode))),
	)
	return iwidget.NewAppBar(l.T(l10n.PrayerSummaryTitle), container.NewVScroll(f))
}

// formatSpeedFactor returns a speed factor for display, e.g. "1.25×".
func formatSpeedFactor(v float64, l *l10n.Localizer) string {
	return l.Tf(l10n.SpeedFactorValue, humanize.FtoaWithDigits(v, 2))
}

// makeWindowTitle returns the title of the main window.
func makeWindowTitle(appName string, l *l10n.Localizer) string {
	if appName == "" {
		return l.T(l10n.SettingsTitle)
	}
	return fmt.Sprintf("%s - %s", appName, l.T(l10n.SettingsTitle))
}
