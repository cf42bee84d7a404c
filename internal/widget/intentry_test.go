package widget_test

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	iwidget "github.com/flinesoft/prayer/internal/widget"
)

func TestIntEntry(t *testing.T) {
	newEntry := func(t *testing.T, value int) (*iwidget.IntEntry, fyne.Window, *[]int, *[]string) {
		t.Helper()
		test.NewTempApp(t)
		e := iwidget.NewIntEntry(value)
		var committed []int
		var invalid []string
		e.OnCommitted = func(v int) {
			committed = append(committed, v)
		}
		e.OnInvalid = func(s string) {
			invalid = append(invalid, s)
		}
		w := test.NewWindow(e)
		t.Cleanup(w.Close)
		return e, w, &committed, &invalid
	}
	t.Run("shows initial value", func(t *testing.T) {
		e, _, _, _ := newEntry(t, 4)
		assert.Equal(t, "4", e.Text)
		assert.Equal(t, 4, e.Value())
	})
	t.Run("clears text when focused", func(t *testing.T) {
		e, w, committed, _ := newEntry(t, 4)
		w.Canvas().Focus(e)
		assert.Equal(t, "", e.Text)
		assert.Empty(t, *committed)
	})
	t.Run("commits once on submit and focus loss", func(t *testing.T) {
		e, w, committed, _ := newEntry(t, 2)
		w.Canvas().Focus(e)
		test.Type(e, "3")
		e.OnSubmitted(e.Text)
		w.Canvas().Unfocus()
		assert.Equal(t, []int{3}, *committed)
		assert.Equal(t, 3, e.Value())
		assert.Equal(t, "3", e.Text)
	})
	t.Run("commits on focus loss", func(t *testing.T) {
		e, w, committed, _ := newEntry(t, 2)
		w.Canvas().Focus(e)
		test.Type(e, "12")
		w.Canvas().Unfocus()
		assert.Equal(t, []int{12}, *committed)
	})
	t.Run("restores value when left empty", func(t *testing.T) {
		e, w, committed, invalid := newEntry(t, 2)
		w.Canvas().Focus(e)
		w.Canvas().Unfocus()
		assert.Empty(t, *committed)
		assert.Empty(t, *invalid)
		assert.Equal(t, "2", e.Text)
		assert.Equal(t, 2, e.Value())
	})
	t.Run("reports non numeric text", func(t *testing.T) {
		e, w, committed, invalid := newEntry(t, 2)
		w.Canvas().Focus(e)
		test.Type(e, "x1")
		w.Canvas().Unfocus()
		assert.Empty(t, *committed)
		assert.Equal(t, []string{"x1"}, *invalid)
		assert.Equal(t, "2", e.Text)
	})
	t.Run("reports negative numbers", func(t *testing.T) {
		e, w, committed, invalid := newEntry(t, 2)
		w.Canvas().Focus(e)
		test.Type(e, "-1")
		w.Canvas().Unfocus()
		assert.Empty(t, *committed)
		assert.Equal(t, []string{"-1"}, *invalid)
	})
	t.Run("normalizes committed text", func(t *testing.T) {
		e, w, committed, _ := newEntry(t, 2)
		w.Canvas().Focus(e)
		test.Type(e, "007")
		w.Canvas().Unfocus()
		assert.Equal(t, []int{7}, *committed)
		assert.Equal(t, "7", e.Text)
	})
	t.Run("can set value without commit", func(t *testing.T) {
		e, _, committed, _ := newEntry(t, 2)
		e.SetValue(5)
		assert.Equal(t, "5", e.Text)
		assert.Empty(t, *committed)
	})
}
