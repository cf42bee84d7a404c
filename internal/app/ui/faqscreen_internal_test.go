package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flinesoft/prayer/internal/app"
	"github.com/flinesoft/prayer/internal/faqlayout"
	"github.com/flinesoft/prayer/internal/l10n"
)

func TestFAQScreen_Reload(t *testing.T) {
	t.Run("reloads once when rendered for the first time", func(t *testing.T) {
		test.NewTempApp(t)
		rec := &recorder[app.FAQAction]{}
		a := NewFAQScreen(FAQScreenParams{
			Coordinate: rec.coordinate,
			Measure:    monospace,
			ViewModel:  app.FAQViewModel{Entries: makeFAQEntries(5)},
		})
		assert.Equal(t, 0, a.reloads)
		newTestWindow(t, a)
		assert.Equal(t, 1, a.reloads)
		assert.Equal(t, 5, a.Count())
		assert.Len(t, a.list.Objects, 5)
		assert.Empty(t, rec.actions)
	})
	t.Run("replacing the view model before rendering does not reload", func(t *testing.T) {
		test.NewTempApp(t)
		a := NewFAQScreen(FAQScreenParams{
			Coordinate: func(app.FAQAction) {},
			Measure:    monospace,
			ViewModel:  app.FAQViewModel{Entries: makeFAQEntries(5)},
		})
		a.SetViewModel(app.FAQViewModel{Entries: makeFAQEntries(3)})
		assert.Equal(t, 0, a.reloads)
		newTestWindow(t, a)
		assert.Equal(t, 1, a.reloads)
		assert.Len(t, a.list.Objects, 3)
	})
	t.Run("replacing the view model reloads exactly once", func(t *testing.T) {
		test.NewTempApp(t)
		a := NewFAQScreen(FAQScreenParams{
			Coordinate: func(app.FAQAction) {},
			Measure:    monospace,
			ViewModel:  app.FAQViewModel{Entries: makeFAQEntries(5)},
		})
		newTestWindow(t, a)
		entries := makeFAQEntries(2)
		a.SetViewModel(app.FAQViewModel{Entries: entries})
		assert.Equal(t, 2, a.reloads)
		assert.Equal(t, 2, a.Count())
		assert.Len(t, a.list.Objects, 2)
		assert.Equal(t, entries, a.ViewModel().Entries)
	})
	t.Run("can show an empty list", func(t *testing.T) {
		test.NewTempApp(t)
		a := NewFAQScreen(FAQScreenParams{
			Coordinate: func(app.FAQAction) {},
			Measure:    monospace,
		})
		newTestWindow(t, a)
		assert.Equal(t, 0, a.Count())
		assert.Empty(t, a.list.Objects)
	})
}

func TestFAQScreen_Delegate(t *testing.T) {
	test.NewTempApp(t)
	entries := []app.FAQEntry{
		{Question: "first question", Answer: "first answer"},
		{Question: "second question", Answer: "second answer"},
	}
	a := NewFAQScreen(FAQScreenParams{
		Coordinate: func(app.FAQAction) {},
		ViewModel:  app.FAQViewModel{Entries: entries},
	})
	t.Run("returns texts in display order", func(t *testing.T) {
		assert.Equal(t, 2, a.Count())
		assert.Equal(t, "first question", a.QuestionText(0))
		assert.Equal(t, "second answer", a.AnswerText(1))
	})
	t.Run("panics for index out of range", func(t *testing.T) {
		assert.Panics(t, func() {
			a.QuestionText(2)
		})
		assert.Panics(t, func() {
			a.AnswerText(-1)
		})
	})
}

func TestFAQScreen_DoneButton(t *testing.T) {
	test.NewTempApp(t)
	rec := &recorder[app.FAQAction]{}
	a := NewFAQScreen(FAQScreenParams{
		Coordinate: rec.coordinate,
		Localizer:  l10n.New("de"),
		Measure:    monospace,
	})
	newTestWindow(t, a)
	assert.Equal(t, "Fertig", a.DoneButton().Text)
	test.Tap(a.DoneButton())
	assert.Equal(t, []app.FAQAction{app.FAQDoneButtonPressed{}}, rec.actions)
}

func TestFAQScreen_PanicsWithoutCoordinate(t *testing.T) {
	test.NewTempApp(t)
	assert.Panics(t, func() {
		NewFAQScreen(FAQScreenParams{})
	})
}

func TestFAQScreen_CellsMatchTheirTexts(t *testing.T) {
	test.NewTempApp(t)
	style := FAQStyle{
		QuestionFont: faqlayout.Font{Size: 10, Style: fyne.TextStyle{Bold: true}},
		AnswerFont:   faqlayout.Font{Size: 10},
		Insets:       faqlayout.Insets{Spacing: 4, ItemSpacing: 8},
	}
	a := NewFAQScreen(FAQScreenParams{
		Coordinate: func(app.FAQAction) {},
		Measure:    monospace,
		Style:      &style,
		ViewModel: app.FAQViewModel{Entries: []app.FAQEntry{
			{Question: "Why?", Answer: "Because it is so"},
			{Question: "How long is this question?", Answer: "Short"},
		}},
	})
	attrs := a.layout.Attributes(100)
	require.Len(t, attrs, 2)
	// 20 chars per line at a width of 100
	assert.Equal(t, float32(24), attrs[0].Size.Height)
	assert.Equal(t, float32(0), attrs[0].Position.Y)
	assert.Equal(t, float32(34), attrs[1].Size.Height)
	assert.Equal(t, float32(32), attrs[1].Position.Y)
	c := a.layout.Cell(1)
	require.Len(t, c.Lines, 3)
	assert.Equal(t, "How long is this", c.Lines[0].Text)
	assert.Equal(t, "question?", c.Lines[1].Text)
	assert.Equal(t, "Short", c.Lines[2].Text)
	assert.Equal(t, float32(24), c.Lines[2].Position.Y)
}

func TestDefaultFAQStyle(t *testing.T) {
	test.NewTempApp(t)
	s := DefaultFAQStyle()
	assert.True(t, s.QuestionFont.Style.Bold)
	assert.Greater(t, s.QuestionFont.Size, s.AnswerFont.Size)
	assert.Greater(t, s.Insets.ItemSpacing, float32(0))
}
