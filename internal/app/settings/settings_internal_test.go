package settings

import (
	"testing"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"
)

// myPreferences represents a stub for replacing fyne.Preferences in tests.
type myPreferences struct {
	fyne.Preferences

	data map[string]any
}

func NewMyPref() myPreferences {
	p := myPreferences{data: map[string]any{}}
	return p
}

func (p myPreferences) Bool(key string) bool {
	return getAny[bool](p, key)
}

func (p myPreferences) BoolWithFallback(key string, fallback bool) bool {
	return getAnyWithFallback(p, key, fallback)
}

func (p myPreferences) SetBool(k string, v bool) {
	setAny(p, k, v)
}

func (p myPreferences) Float(key string) float64 {
	return getAny[float64](p, key)
}

func (p myPreferences) FloatWithFallback(key string, fallback float64) float64 {
	return getAnyWithFallback(p, key, fallback)
}

func (p myPreferences) SetFloat(k string, v float64) {
	setAny(p, k, v)
}

func (p myPreferences) Int(key string) int {
	return getAny[int](p, key)
}

func (p myPreferences) IntWithFallback(key string, fallback int) int {
	return getAnyWithFallback(p, key, fallback)
}

func (p myPreferences) SetInt(k string, v int) {
	setAny(p, k, v)
}

func (p myPreferences) String(key string) string {
	return getAny[string](p, key)
}

func (p myPreferences) StringWithFallback(key string, fallback string) string {
	return getAnyWithFallback(p, key, fallback)
}

func (p myPreferences) SetString(k string, v string) {
	setAny(p, k, v)
}

func (p myPreferences) RemoveValue(k string) {
	delete(p.data, k)
}

// Set stores a raw value. Used to simulate corrupted preferences.
func (p myPreferences) Set(k string, v any) {
	setAny(p, k, v)
}

// Has reports whether a value is stored for key k.
func (p myPreferences) Has(k string) bool {
	_, ok := p.data[k]
	return ok
}

func getAny[T any](p myPreferences, k string) T {
	var z T
	return getAnyWithFallback(p, k, z)
}

func getAnyWithFallback[T any](p myPreferences, key string, fallback T) T {
	x, ok := p.data[key]
	if !ok {
		return fallback
	}
	v, ok := x.(T)
	if !ok {
		return fallback
	}
	return v
}

func setAny(p myPreferences, k string, v any) {
	p.data[k] = v
}

func TestSettingsStoreClampedValues(t *testing.T) {
	t.Run("rakat count is clamped on write", func(t *testing.T) {
		p := NewMyPref()
		s := New(p)
		s.SetRakatCount(-3)
		assert.Equal(t, 0, p.data[settingRakatCount])
		s.SetRakatCount(1_000)
		assert.Equal(t, settingRakatCountMax, p.data[settingRakatCount])
	})
	t.Run("speed factor is snapped on write", func(t *testing.T) {
		p := NewMyPref()
		s := New(p)
		s.SetFixedTextsSpeedFactor(1.234)
		assert.Equal(t, 1.25, p.data[settingFixedTextsSpeedFactor])
	})
}
