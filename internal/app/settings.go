package app

import (
	"math"

	"github.com/ErikKalkoken/go-set"
)

// Speed factors for the speech of the prayer texts.
const (
	SpeedFactorDefault = 1.0
	SpeedFactorMax     = 2.0
	SpeedFactorMin     = 0.5
	SpeedFactorStep    = 0.05
)

// Defaults for the remaining prayer settings.
const (
	RakatCountDefault              = 2
	ShowChangingTextNameDefault    = true
	LanguageCodeDefault            = "en"
	MovementSoundInstrumentDefault = "piano"
)

// Interface languages supported by the app.
var AvailableLanguageCodes = set.Of("en", "de", "tr")

// Instruments which can be played to signal a movement.
var AvailableMovementSoundInstruments = set.Of("none", "bell", "drum", "flute", "piano")

// SettingsViewModel provides the state rendered by the settings screen.
type SettingsViewModel interface {
	RakatCount() int
	FixedTextsSpeedFactor() float64
	ChangingTextSpeedFactor() float64
	ShowChangingTextName() bool
	InterfaceLanguageCode() string
	MovementSoundInstrument() string
}

// SettingsSnapshot is an immutable copy of the prayer settings.
type SettingsSnapshot struct {
	RakatCount              int
	FixedTextsSpeedFactor   float64
	ChangingTextSpeedFactor float64
	ShowChangingTextName    bool
	InterfaceLanguageCode   string
	MovementSoundInstrument string
}

// Snapshot returns a snapshot of the current state of vm.
func Snapshot(vm SettingsViewModel) SettingsSnapshot {
	return SettingsSnapshot{
		RakatCount:              vm.RakatCount(),
		FixedTextsSpeedFactor:   vm.FixedTextsSpeedFactor(),
		ChangingTextSpeedFactor: vm.ChangingTextSpeedFactor(),
		ShowChangingTextName:    vm.ShowChangingTextName(),
		InterfaceLanguageCode:   vm.InterfaceLanguageCode(),
		MovementSoundInstrument: vm.MovementSoundInstrument(),
	}
}

// SnapSpeedFactor returns the valid speed factor closest to v.
func SnapSpeedFactor(v float64) float64 {
	if math.IsNaN(v) {
		return SpeedFactorDefault
	}
	v = min(max(v, SpeedFactorMin), SpeedFactorMax)
	steps := math.Round((v - SpeedFactorMin) / SpeedFactorStep)
	x := SpeedFactorMin + steps*SpeedFactorStep
	return math.Round(x*100) / 100 // removes float residue from the multiplication
}

// IsValidSpeedFactor reports whether v is within range and a multiple of the step.
func IsValidSpeedFactor(v float64) bool {
	if v < SpeedFactorMin || v > SpeedFactorMax {
		return false
	}
	return math.Abs(SnapSpeedFactor(v)-v) < 1e-9
}
