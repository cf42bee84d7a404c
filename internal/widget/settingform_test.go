package widget_test

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"

	iwidget "github.com/flinesoft/prayer/internal/widget"
)

func TestSettingForm(t *testing.T) {
	test.NewTempApp(t)
	alpha := widget.NewLabel("alpha")
	bravo := widget.NewLabel("bravo")
	f := iwidget.NewSettingForm(
		iwidget.SettingSection{
			Title: "First",
			Rows:  []iwidget.SettingRow{{Label: "Alpha", Hint: "hint", Widget: alpha}},
		},
		iwidget.SettingSection{
			Title: "Second",
			Rows:  []iwidget.SettingRow{{Label: "Bravo", Widget: bravo}},
		},
	)
	w := test.NewWindow(f)
	defer w.Close()

	t.Run("keeps order of sections", func(t *testing.T) {
		s := f.Sections()
		if assert.Len(t, s, 2) {
			assert.Equal(t, "First", s[0].Title)
			assert.Equal(t, "Second", s[1].Title)
		}
	})
	t.Run("can find row by label", func(t *testing.T) {
		r, ok := f.Row("Bravo")
		assert.True(t, ok)
		assert.Same(t, bravo, r.Widget)
	})
	t.Run("reports unknown row", func(t *testing.T) {
		_, ok := f.Row("Charlie")
		assert.False(t, ok)
	})
	t.Run("has size", func(t *testing.T) {
		assert.Positive(t, f.MinSize().Height)
	})
}
