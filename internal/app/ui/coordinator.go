package ui

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"fyne.io/fyne/v2"
	"github.com/hashicorp/go-version"
	"github.com/maniartech/signals"

	"github.com/flinesoft/prayer/internal/app"
	"github.com/flinesoft/prayer/internal/app/faqcontent"
	"github.com/flinesoft/prayer/internal/app/settings"
	"github.com/flinesoft/prayer/internal/l10n"
	iwidget "github.com/flinesoft/prayer/internal/widget"
)

// CoordinatorParams are the parameters for creating a new coordinator.
type CoordinatorParams struct {
	App             fyne.App // required
	FeedbackAddress string   // mail address for feedback
	// LoadFAQ returns the FAQ entries for a language. Defaults to faqcontent.Load.
	LoadFAQ  func(code string) ([]app.FAQEntry, error)
	Reporter app.Reporter       // defaults to SlogReporter
	Settings *settings.Settings // required
	Version  string             // app version, e.g. "1.2.3"
	Window   fyne.Window        // required
}

// Coordinator handles the actions of all screens.
//
// It updates the settings and decides which screen is shown.
type Coordinator struct {
	// SettingsChanged is emitted after a setting has been changed.
	SettingsChanged signals.Signal[app.SettingsSnapshot]

	fyneApp         fyne.App
	faqScreen       *FAQScreen
	feedbackAddress string
	l               *l10n.Localizer
	loadFAQ         func(code string) ([]app.FAQEntry, error)
	nav             *iwidget.Navigator
	openURL         func(*url.URL) error
	reporter        app.Reporter
	settings        *settings.Settings
	settingsScreen  *SettingsScreen
	version         *version.Version
	window          fyne.Window
}

// NewCoordinator returns a new coordinator and creates the settings screen as root page.
func NewCoordinator(arg CoordinatorParams) (*Coordinator, error) {
	if arg.App == nil || arg.Settings == nil || arg.Window == nil {
		panic("coordinator: missing required parameters")
	}
	v, err := version.NewVersion(arg.Version)
	if err != nil {
		return nil, fmt.Errorf("new coordinator: %w", err)
	}
	if arg.LoadFAQ == nil {
		arg.LoadFAQ = faqcontent.Load
	}
	if arg.Reporter == nil {
		arg.Reporter = SlogReporter{}
	}
	c := &Coordinator{
		SettingsChanged: signals.NewSync[app.SettingsSnapshot](),
		feedbackAddress: arg.FeedbackAddress,
		fyneApp:         arg.App,
		loadFAQ:         arg.LoadFAQ,
		openURL:         arg.App.OpenURL,
		reporter:        arg.Reporter,
		settings:        arg.Settings,
		version:         v,
		window:          arg.Window,
	}
	c.l = l10n.New(c.settings.InterfaceLanguageCode())
	c.nav = iwidget.NewNavigator(c.makeSettingsScene())
	c.nav.OnPopped = func(ab *iwidget.AppBar) {
		if c.faqScreen != nil && ab.Body() == c.faqScreen {
			c.faqScreen = nil
		}
	}
	c.updateWindowTitle()
	return c, nil
}

// Content returns the root object of the UI.
func (c *Coordinator) Content() fyne.CanvasObject {
	return c.nav
}

// Localizer returns the localizer for the current interface language.
func (c *Coordinator) Localizer() *l10n.Localizer {
	return c.l
}

// HandleSettingsAction acts on an action of the settings screen.
func (c *Coordinator) HandleSettingsAction(a app.SettingsAction) {
	slog.Debug("Settings action", "action", a)
	switch x := a.(type) {
	case app.SetRakat:
		c.settings.SetRakatCount(x.Count)
		c.notifySettingsChanged()
	case app.SetFixedPartSpeed:
		c.settings.SetFixedTextsSpeedFactor(x.Factor)
		c.notifySettingsChanged()
	case app.SetChangingPartSpeed:
		c.settings.SetChangingTextSpeedFactor(x.Factor)
		c.notifySettingsChanged()
	case app.SetShowChangingTextName:
		c.settings.SetShowChangingTextName(x.Show)
		c.notifySettingsChanged()
	case app.ChooseInstrument:
		if !c.settings.SetMovementSoundInstrument(x.Instrument) {
			c.reporter.Report(fmt.Sprintf("unsupported movement sound instrument: %q", x.Instrument))
			c.settingsScreen.Update()
			return
		}
		c.notifySettingsChanged()
	case app.ChangeLanguage:
		if !c.settings.SetInterfaceLanguageCode(x.Code) {
			c.reporter.Report(fmt.Sprintf("unsupported interface language: %q", x.Code))
			c.settingsScreen.Update()
			return
		}
		c.notifySettingsChanged()
		if x.Code != c.l.LanguageCode() {
			c.settingsScreen.ShowRestartConfirmDialog()
		}
	case app.ConfirmRestart:
		c.restart()
	case app.StartPrayer:
		c.nav.Push(newPrayerSummaryScene(c.settings.Snapshot(), c.l))
	case app.DidPressFAQButton:
		c.showFAQ()
	case app.DidPressFeedbackButton:
		c.openFeedbackMail()
	default:
		panic(fmt.Sprintf("coordinator: unhandled settings action: %T", a))
	}
}

// HandleFAQAction acts on an action of the FAQ screen.
func (c *Coordinator) HandleFAQAction(a app.FAQAction) {
	slog.Debug("FAQ action", "action", a)
	switch a.(type) {
	case app.FAQDoneButtonPressed:
		c.nav.Pop()
	default:
		panic(fmt.Sprintf("coordinator: unhandled FAQ action: %T", a))
	}
}

// notifySettingsChanged shows the stored settings, which may differ from the requested ones,
// and informs all listeners.
func (c *Coordinator) notifySettingsChanged() {
	c.settingsScreen.Update()
	c.SettingsChanged.Emit(context.Background(), c.settings.Snapshot())
}

func (c *Coordinator) makeSettingsScene() *iwidget.AppBar {
	c.settingsScreen = NewSettingsScreen(SettingsScreenParams{
		Coordinate: c.HandleSettingsAction,
		Localizer:  c.l,
		Reporter:   c.reporter,
		ViewModel:  c.settings,
		Window:     c.window,
	})
	return newSettingsScene(c.settingsScreen)
}

// restart rebuilds the UI in the current interface language.
func (c *Coordinator) restart() {
	c.l = l10n.New(c.settings.InterfaceLanguageCode())
	c.faqScreen = nil
	c.nav.Set(c.makeSettingsScene())
	c.updateWindowTitle()
	slog.Info("Restarted UI", "language", c.l.LanguageCode())
}

func (c *Coordinator) updateWindowTitle() {
	c.window.SetTitle(makeWindowTitle(c.fyneApp.Metadata().Name, c.l))
}

func (c *Coordinator) showFAQ() {
	entries, err := c.loadFAQ(c.l.LanguageCode())
	if err != nil {
		slog.Error("Failed to load FAQ", "language", c.l.LanguageCode(), "error", err)
		NewErrorDialog(c.l.T(l10n.FAQLoadError), err, c.window).Show()
		return
	}
	c.faqScreen = NewFAQScreen(FAQScreenParams{
		Coordinate: c.HandleFAQAction,
		Localizer:  c.l,
		ViewModel:  app.FAQViewModel{Entries: entries},
	})
	c.nav.Push(newFAQScene(c.faqScreen, c.l))
}

// feedbackURL returns a mailto URL for sending feedback about this version of the app.
func (c *Coordinator) feedbackURL() *url.URL {
	subject := c.l.Tf(l10n.FeedbackSubject, c.version.String())
	return &url.URL{
		Scheme:   "mailto",
		Opaque:   c.feedbackAddress,
		RawQuery: "subject=" + strings.ReplaceAll(url.QueryEscape(subject), "+", "%20"),
	}
}

func (c *Coordinator) openFeedbackMail() {
	u := c.feedbackURL()
	if err := c.openURL(u); err != nil {
		slog.Error("Failed to open feedback mail", "url", u, "error", err)
		NewErrorDialog(c.l.T(l10n.FeedbackMailError), err, c.window).Show()
	}
}
