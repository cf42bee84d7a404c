// Package settings provides the prayer settings, persisted in the fyne preferences.
package settings

import (
	"fyne.io/fyne/v2"

	"github.com/flinesoft/prayer/internal/app"
)

// Setting keys
const (
	settingChangingTextSpeedFactor = "changing-text-speed-factor"
	settingFixedTextsSpeedFactor   = "fixed-texts-speed-factor"
	settingInterfaceLanguageCode   = "interface-language-code"
	settingMovementSoundInstrument = "movement-sound-instrument"
	settingRakatCount              = "rakat-count"
	settingRakatCountMax           = 99
	settingShowChangingTextName    = "show-changing-text-name"
)

// Keys returns all setting keys. Mostly used for testing.
func Keys() []string {
	return []string{
		settingChangingTextSpeedFactor,
		settingFixedTextsSpeedFactor,
		settingInterfaceLanguageCode,
		settingMovementSoundInstrument,
		settingRakatCount,
		settingShowChangingTextName,
	}
}

// Settings represents the user's prayer settings.
// Invalid stored values are replaced by their defaults when read.
type Settings struct {
	p fyne.Preferences

	languageFallback string
}

var _ app.SettingsViewModel = (*Settings)(nil)

// New returns new settings backed by p.
func New(p fyne.Preferences) *Settings {
	s := &Settings{p: p, languageFallback: app.LanguageCodeDefault}
	return s
}

// SetLanguageFallback sets the language used when none has been chosen yet,
// e.g. the language of the system locale.
// Unsupported languages are ignored.
func (s *Settings) SetLanguageFallback(code string) {
	if !app.AvailableLanguageCodes.Contains(code) {
		return
	}
	s.languageFallback = code
}

func (s *Settings) RakatCount() int {
	v := s.p.IntWithFallback(settingRakatCount, app.RakatCountDefault)
	if v < 0 || v > settingRakatCountMax {
		return app.RakatCountDefault
	}
	return v
}

// SetRakatCount sets the rakat count. The value is clamped to the valid range.
func (s *Settings) SetRakatCount(v int) {
	s.p.SetInt(settingRakatCount, min(max(v, 0), settingRakatCountMax))
}

func (s *Settings) FixedTextsSpeedFactor() float64 {
	return s.speedFactor(settingFixedTextsSpeedFactor)
}

func (s *Settings) SetFixedTextsSpeedFactor(v float64) {
	s.p.SetFloat(settingFixedTextsSpeedFactor, app.SnapSpeedFactor(v))
}

func (s *Settings) ChangingTextSpeedFactor() float64 {
	return s.speedFactor(settingChangingTextSpeedFactor)
}

func (s *Settings) SetChangingTextSpeedFactor(v float64) {
	s.p.SetFloat(settingChangingTextSpeedFactor, app.SnapSpeedFactor(v))
}

func (s *Settings) speedFactor(key string) float64 {
	v := s.p.FloatWithFallback(key, app.SpeedFactorDefault)
	if !app.IsValidSpeedFactor(v) {
		return app.SpeedFactorDefault
	}
	return v
}

func (s *Settings) ShowChangingTextName() bool {
	return s.p.BoolWithFallback(settingShowChangingTextName, app.ShowChangingTextNameDefault)
}

func (s *Settings) SetShowChangingTextName(v bool) {
	s.p.SetBool(settingShowChangingTextName, v)
}

func (s *Settings) InterfaceLanguageCode() string {
	v := s.p.StringWithFallback(settingInterfaceLanguageCode, s.languageFallback)
	if !app.AvailableLanguageCodes.Contains(v) {
		return s.languageFallback
	}
	return v
}

// SetInterfaceLanguageCode sets the interface language.
// It reports whether the code is supported. Unsupported codes are not stored.
func (s *Settings) SetInterfaceLanguageCode(code string) bool {
	if !app.AvailableLanguageCodes.Contains(code) {
		return false
	}
	s.p.SetString(settingInterfaceLanguageCode, code)
	return true
}

func (s *Settings) MovementSoundInstrument() string {
	v := s.p.StringWithFallback(settingMovementSoundInstrument, app.MovementSoundInstrumentDefault)
	if !app.AvailableMovementSoundInstruments.Contains(v) {
		return app.MovementSoundInstrumentDefault
	}
	return v
}

// SetMovementSoundInstrument sets the movement sound instrument.
// It reports whether the instrument is supported. Unsupported instruments are not stored.
func (s *Settings) SetMovementSoundInstrument(instrument string) bool {
	if !app.AvailableMovementSoundInstruments.Contains(instrument) {
		return false
	}
	s.p.SetString(settingMovementSoundInstrument, instrument)
	return true
}

// Snapshot returns a copy of the current settings.
func (s *Settings) Snapshot() app.SettingsSnapshot {
	return app.Snapshot(s)
}

// Reset removes all stored settings, so that the defaults apply again.
func (s *Settings) Reset() {
	for _, k := range Keys() {
		s.p.RemoveValue(k)
	}
}
