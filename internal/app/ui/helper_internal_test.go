package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/icrowley/fake"

	"github.com/flinesoft/prayer/internal/app"
)

// recorder records emitted actions.
type recorder[T any] struct {
	actions []T
}

func (r *recorder[T]) coordinate(a T) {
	r.actions = append(r.actions, a)
}

// fakeReporter records reported messages.
type fakeReporter struct {
	messages []string
}

func (r *fakeReporter) Report(message string) {
	r.messages = append(r.messages, message)
}

// monospace measures text as if every rune had a width of half the text size.
func monospace(text string, size float32, _ fyne.TextStyle) fyne.Size {
	return fyne.NewSize(float32(len([]rune(text)))*size/2, size)
}

func makeFAQEntries(n int) []app.FAQEntry {
	entries := make([]app.FAQEntry, n)
	for i := range n {
		entries[i] = app.FAQEntry{Question: fake.Sentence(), Answer: fake.Paragraph()}
	}
	return entries
}

func newTestWindow(t *testing.T, content fyne.CanvasObject) fyne.Window {
	t.Helper()
	if content == nil {
		content = widget.NewLabel("")
	}
	w := test.NewWindow(content)
	w.Resize(fyne.NewSize(600, 800))
	t.Cleanup(w.Close)
	return w
}

type snapshotVM struct {
	s app.SettingsSnapshot
}

func (vm snapshotVM) RakatCount() int                  { return vm.s.RakatCount }
func (vm snapshotVM) FixedTextsSpeedFactor() float64   { return vm.s.FixedTextsSpeedFactor }
func (vm snapshotVM) ChangingTextSpeedFactor() float64 { return vm.s.ChangingTextSpeedFactor }
func (vm snapshotVM) ShowChangingTextName() bool       { return vm.s.ShowChangingTextName }
func (vm snapshotVM) InterfaceLanguageCode() string    { return vm.s.InterfaceLanguageCode }
func (vm snapshotVM) MovementSoundInstrument() string  { return vm.s.MovementSoundInstrument }

func defaultSnapshot() app.SettingsSnapshot {
	return app.SettingsSnapshot{
		RakatCount:              app.RakatCountDefault,
		FixedTextsSpeedFactor:   app.SpeedFactorDefault,
		ChangingTextSpeedFactor: app.SpeedFactorDefault,
		ShowChangingTextName:    app.ShowChangingTextNameDefault,
		InterfaceLanguageCode:   app.LanguageCodeDefault,
		MovementSoundInstrument: app.MovementSoundInstrumentDefault,
	}
}
