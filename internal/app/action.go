package app

import "fmt"

// SettingsAction is an intent emitted by the settings screen.
// The set of actions is closed: only the types in this file implement it.
type SettingsAction interface {
	fmt.Stringer
	settingsAction()
}

// SetRakat requests a new rakat count.
type SetRakat struct {
	Count int
}

// SetFixedPartSpeed requests a new speech speed factor for the fixed texts.
type SetFixedPartSpeed struct {
	Factor float64
}

// SetChangingPartSpeed requests a new speech speed factor for the changing text.
type SetChangingPartSpeed struct {
	Factor float64
}

// SetShowChangingTextName requests to show or hide the name of the changing text.
type SetShowChangingTextName struct {
	Show bool
}

// ChangeLanguage requests a new interface language.
type ChangeLanguage struct {
	Code string
}

// ConfirmRestart is emitted when the user confirmed restarting the interface.
type ConfirmRestart struct{}

// ChooseInstrument requests a new movement sound instrument.
type ChooseInstrument struct {
	Instrument string
}

// StartPrayer requests to start the prayer.
type StartPrayer struct{}

// DidPressFAQButton is emitted when the FAQ button was pressed.
type DidPressFAQButton struct{}

// DidPressFeedbackButton is emitted when the feedback button was pressed.
type DidPressFeedbackButton struct{}

func (SetRakat) settingsAction()                {}
func (SetFixedPartSpeed) settingsAction()       {}
func (SetChangingPartSpeed) settingsAction()    {}
func (SetShowChangingTextName) settingsAction() {}
func (ChangeLanguage) settingsAction()          {}
func (ConfirmRestart) settingsAction()          {}
func (ChooseInstrument) settingsAction()        {}
func (StartPrayer) settingsAction()             {}
func (DidPressFAQButton) settingsAction()       {}
func (DidPressFeedbackButton) settingsAction()  {}

func (a SetRakat) String() string {
	return fmt.Sprintf("setRakat(%d)", a.Count)
}

func (a SetFixedPartSpeed) String() string {
	return fmt.Sprintf("setFixedPartSpeed(%g)", a.Factor)
}

func (a SetChangingPartSpeed) String() string {
	return fmt.Sprintf("setChangingPartSpeed(%g)", a.Factor)
}

func (a SetShowChangingTextName) String() string {
	return fmt.Sprintf("setShowChangingTextName(%t)", a.Show)
}

func (a ChangeLanguage) String() string {
	return fmt.Sprintf("changeLanguage(%s)", a.Code)
}

func (ConfirmRestart) String() string {
	return "confirmRestart"
}

func (a ChooseInstrument) String() string {
	return fmt.Sprintf("chooseInstrument(%s)", a.Instrument)
}

func (StartPrayer) String() string {
	return "startPrayer"
}

func (DidPressFAQButton) String() string {
	return "didPressFAQButton"
}

func (DidPressFeedbackButton) String() string {
	return "didPressFeedbackButton"
}

// FAQAction is an intent emitted by the FAQ screen.
type FAQAction interface {
	fmt.Stringer
	faqAction()
}

// FAQDoneButtonPressed is emitted when the user is done reading the FAQ.
type FAQDoneButtonPressed struct{}

func (FAQDoneButtonPressed) faqAction() {}

func (FAQDoneButtonPressed) String() string {
	return "doneButtonPressed"
}
