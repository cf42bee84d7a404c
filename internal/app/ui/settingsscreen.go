package ui

import (
	"fmt"
	"slices"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	kxwidget "github.com/ErikKalkoken/fyne-kx/widget"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"

	"github.com/flinesoft/prayer/internal/app"
	"github.com/flinesoft/prayer/internal/l10n"
	iwidget "github.com/flinesoft/prayer/internal/widget"
)

// SettingsScreenParams are the parameters for creating a new settings screen.
type SettingsScreenParams struct {
	Coordinate func(app.SettingsAction) // required
	Localizer  *l10n.Localizer          // defaults to the default language
	Reporter   app.Reporter             // defaults to SlogReporter
	ViewModel  app.SettingsViewModel    // required
	Window     fyne.Window              // required
}

// SettingsScreen is a form for the prayer settings.
//
// The screen never changes settings itself.
// Every user interaction is reported as action through its coordinate callback.
type SettingsScreen struct {
	widget.BaseWidget

	changingTextName  *kxwidget.Switch
	changingTextSpeed *kxwidget.Slider
	coordinate        func(app.SettingsAction)
	faqButton         *ttwidget.Button
	feedbackButton    *ttwidget.Button
	fixedTextsSpeed   *kxwidget.Slider
	form              *iwidget.SettingForm
	instrument        *iwidget.OptionSelect
	l                 *l10n.Localizer
	language          *iwidget.OptionSelect
	rakat             *iwidget.IntEntry
	reporter          app.Reporter
	startButton       *widget.Button
	updating          bool
	vm                app.SettingsViewModel
	window            fyne.Window
}

// NewSettingsScreen returns a new settings screen. It panics when a required parameter is missing.
func NewSettingsScreen(arg SettingsScreenParams) *SettingsScreen {
	if arg.Coordinate == nil {
		panic("settings screen: coordinate must not be nil")
	}
	if arg.ViewModel == nil {
		panic("settings screen: view model must not be nil")
	}
	if arg.Window == nil {
		panic("settings screen: window must not be nil")
	}
	if arg.Localizer == nil {
		arg.Localizer = l10n.New(app.LanguageCodeDefault)
	}
	if arg.Reporter == nil {
		arg.Reporter = SlogReporter{}
	}
	a := &SettingsScreen{
		coordinate: arg.Coordinate,
		l:          arg.Localizer,
		reporter:   arg.Reporter,
		vm:         arg.ViewModel,
		window:     arg.Window,
	}
	a.ExtendBaseWidget(a)
	l := a.l

	a.language = iwidget.NewOptionSelect(languageOptions(), a.vm.InterfaceLanguageCode(), func(code string) {
		a.emit(app.ChangeLanguage{Code: code})
	})
	a.language.OnMissing = func(label string) {
		a.reporter.Report(fmt.Sprintf("interface language: no language for %q", label))
	}

	a.rakat = iwidget.NewIntEntry(a.vm.RakatCount())
	a.rakat.OnCommitted = func(v int) {
		a.emit(app.SetRakat{Count: v})
	}
	a.rakat.OnInvalid = func(text string) {
		a.reporter.Report(fmt.Sprintf("rakat count: invalid input %q", text))
	}

	a.fixedTextsSpeed = a.makeSpeedSlider(a.vm.FixedTextsSpeedFactor(), func(v float64) app.SettingsAction {
		return app.SetFixedPartSpeed{Factor: v}
	})
	a.changingTextSpeed = a.makeSpeedSlider(a.vm.ChangingTextSpeedFactor(), func(v float64) app.SettingsAction {
		return app.SetChangingPartSpeed{Factor: v}
	})

	a.changingTextName = kxwidget.NewSwitch(nil)
	a.changingTextName.On = a.vm.ShowChangingTextName()
	a.changingTextName.OnChanged = func(on bool) {
		a.emit(app.SetShowChangingTextName{Show: on})
	}

	a.instrument = iwidget.NewOptionSelect(instrumentOptions(l), a.vm.MovementSoundInstrument(), func(v string) {
		a.emit(app.ChooseInstrument{Instrument: v})
	})
	a.instrument.OnMissing = func(label string) {
		a.reporter.Report(fmt.Sprintf("movement sound instrument: no instrument for %q", label))
	}

	a.startButton = widget.NewButtonWithIcon(l.T(l10n.StartButtonTitle), theme.MediaPlayIcon(), func() {
		a.emit(app.StartPrayer{})
	})
	a.startButton.Importance = widget.HighImportance

	a.faqButton = ttwidget.NewButtonWithIcon(l.T(l10n.FAQButtonTitle), theme.QuestionIcon(), func() {
		a.emit(app.DidPressFAQButton{})
	})
	a.faqButton.SetToolTip(l.T(l10n.FAQButtonTooltip))
	a.feedbackButton = ttwidget.NewButtonWithIcon(l.T(l10n.FeedbackButtonTitle), theme.MailComposeIcon(), func() {
		a.emit(app.DidPressFeedbackButton{})
	})
	a.feedbackButton.SetToolTip(l.T(l10n.FeedbackButtonTooltip))

	a.form = iwidget.NewSettingForm(
		iwidget.SettingSection{
			Title: l.T(l10n.AppSectionTitle),
			Rows: []iwidget.SettingRow{{
				Label:  l.T(l10n.InterfaceLanguageTitle),
				Hint:   l.T(l10n.InterfaceLanguageHint),
				Widget: a.language,
			}},
		},
		iwidget.SettingSection{
			Title: l.T(l10n.PrayerSectionTitle),
			Rows: []iwidget.SettingRow{
				{
					Label:  l.T(l10n.RakatCountTitle),
					Hint:   l.T(l10n.RakatCountHint),
					Widget: a.rakat,
				},
				{
					Label:  l.T(l10n.FixedTextsTitle),
					Hint:   l.T(l10n.FixedTextsHint),
					Widget: a.fixedTextsSpeed,
				},
				{
					Label:  l.T(l10n.ChangingTextTitle),
					Hint:   l.T(l10n.ChangingTextHint),
					Widget: a.changingTextSpeed,
				},
				{
					Label:  l.T(l10n.ChangingTextNameTitle),
					Hint:   l.T(l10n.ChangingTextNameHint),
					Widget: a.changingTextName,
				},
				{
					Label:  l.T(l10n.MovementSoundInstrumentTitle),
					Hint:   l.T(l10n.MovementSoundInstrumentHint),
					Widget: a.instrument,
				},
			},
		},
	)
	return a
}

// emit reports an action to the coordinator.
// Nothing is emitted while the controls are updated from the view model.
func (a *SettingsScreen) emit(x app.SettingsAction) {
	if a.updating {
		return
	}
	a.coordinate(x)
}

// Update shows the current state of the view model in all controls.
func (a *SettingsScreen) Update() {
	a.updating = true
	defer func() {
		a.updating = false
	}()
	a.language.SetValue(a.vm.InterfaceLanguageCode())
	a.rakat.SetValue(a.vm.RakatCount())
	a.fixedTextsSpeed.SetValue(app.SnapSpeedFactor(a.vm.FixedTextsSpeedFactor()))
	a.changingTextSpeed.SetValue(app.SnapSpeedFactor(a.vm.ChangingTextSpeedFactor()))
	a.changingTextName.On = a.vm.ShowChangingTextName()
	a.changingTextName.Refresh()
	a.instrument.SetValue(a.vm.MovementSoundInstrument())
}

// makeSpeedSlider returns a slider, which emits the snapped speed factor when a change ended.
func (a *SettingsScreen) makeSpeedSlider(v float64, makeAction func(float64) app.SettingsAction) *kxwidget.Slider {
	sl := kxwidget.NewSlider(app.SpeedFactorMin, app.SpeedFactorMax)
	sl.SetStep(app.SpeedFactorStep)
	sl.SetValue(app.SnapSpeedFactor(v))
	sl.OnChangeEnded = func(v float64) {
		a.emit(makeAction(app.SnapSpeedFactor(v)))
	}
	return sl
}

// TrailingItems returns the items to be shown in the app bar of this screen.
func (a *SettingsScreen) TrailingItems() []fyne.CanvasObject {
	return []fyne.CanvasObject{a.faqButton, a.feedbackButton}
}

// ShowRestartConfirmDialog asks the user to confirm restarting the interface.
func (a *SettingsScreen) ShowRestartConfirmDialog() {
	d := NewConfirmDialog(
		a.l.T(l10n.ConfirmAlertTitle),
		a.l.T(l10n.ConfirmAlertMessage),
		a.l.T(l10n.ConfirmAlertConfirm),
		a.l.T(l10n.ConfirmAlertLater),
		a.onRestartConfirmed,
		a.window,
	)
	d.Show()
}

func (a *SettingsScreen) onRestartConfirmed(confirmed bool) {
	if !confirmed {
		return
	}
	a.emit(app.ConfirmRestart{})
}

func (a *SettingsScreen) CreateRenderer() fyne.WidgetRenderer {
	c := container.NewBorder(
		nil,
		container.NewPadded(a.startButton),
		nil,
		nil,
		container.NewVScroll(a.form),
	)
	return widget.NewSimpleRenderer(c)
}

// languageOptions returns the available languages named in their own language.
func languageOptions() []iwidget.Option {
	var options []iwidget.Option
	for _, code := range slices.Sorted(app.AvailableLanguageCodes.All()) {
		options = append(options, iwidget.Option{Value: code, Label: l10n.LanguageName(code)})
	}
	return options
}

// instrumentOptions returns the available instruments. Playing no sound comes first.
func instrumentOptions(l *l10n.Localizer) []iwidget.Option {
	const none = "none"
	var options []iwidget.Option
	if app.AvailableMovementSoundInstruments.Contains(none) {
		options = append(options, iwidget.Option{Value: none, Label: l.T(l10n.MovementSoundInstrumentValueNone)})
	}
	for _, v := range slices.Sorted(app.AvailableMovementSoundInstruments.All()) {
		if v == none {
			continue
		}
		options = append(options, iwidget.Option{Value: v, Label: app.Titler.String(v)})
	}
	return options
}
