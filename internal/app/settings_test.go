package app_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flinesoft/prayer/internal/app"
)

func TestSnapSpeedFactor(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{1.0, 1.0},
		{0.5, 0.5},
		{2.0, 2.0},
		{1.2345, 1.25},
		{1.224, 1.2},
		{0.1, 0.5},
		{3.7, 2.0},
		{-1, 0.5},
		{math.NaN(), 1.0},
		{0.55000001, 0.55},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprint(tc.in), func(t *testing.T) {
			got := app.SnapSpeedFactor(tc.in)
			assert.Equal(t, tc.want, got)
			assert.True(t, app.IsValidSpeedFactor(got))
		})
	}
}

func TestIsValidSpeedFactor(t *testing.T) {
	assert.True(t, app.IsValidSpeedFactor(0.75))
	assert.True(t, app.IsValidSpeedFactor(1.95))
	assert.False(t, app.IsValidSpeedFactor(1.96))
	assert.False(t, app.IsValidSpeedFactor(0.45))
	assert.False(t, app.IsValidSpeedFactor(2.05))
}

func TestSnapSpeedFactorCoversAllSteps(t *testing.T) {
	n := int(math.Round((app.SpeedFactorMax - app.SpeedFactorMin) / app.SpeedFactorStep))
	for i := range n + 1 {
		v := app.SpeedFactorMin + float64(i)*app.SpeedFactorStep
		got := app.SnapSpeedFactor(v)
		assert.InDelta(t, v, got, 1e-9)
	}
}

func TestActionStrings(t *testing.T) {
	assert.Equal(t, "setRakat(3)", app.SetRakat{Count: 3}.String())
	assert.Equal(t, "setFixedPartSpeed(1.25)", app.SetFixedPartSpeed{Factor: 1.25}.String())
	assert.Equal(t, "changeLanguage(de)", app.ChangeLanguage{Code: "de"}.String())
	assert.Equal(t, "doneButtonPressed", app.FAQDoneButtonPressed{}.String())
}

func TestDefaultsAreAvailable(t *testing.T) {
	assert.True(t, app.AvailableLanguageCodes.Contains(app.LanguageCodeDefault))
	assert.True(t, app.AvailableMovementSoundInstruments.Contains(app.MovementSoundInstrumentDefault))
	assert.True(t, app.IsValidSpeedFactor(app.SpeedFactorDefault))
}
