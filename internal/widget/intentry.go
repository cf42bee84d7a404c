package widget

import (
	"strconv"
	"strings"

	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// IntEntry is an entry for non-negative integers.
//
// The entry is cleared when it gains focus and the edit is committed
// when the user submits or the entry loses focus.
// A committed empty text restores the last value.
// IntEntry uses the OnChanged and OnSubmitted callbacks of the embedded entry internally.
type IntEntry struct {
	widget.Entry

	// OnCommitted is called with the new value after a valid edit was committed.
	OnCommitted func(v int)

	// OnInvalid is called with the text of an edit which is not a non-negative integer.
	OnInvalid func(text string)

	dirty bool
	value int
}

// NewIntEntry returns a new IntEntry showing value.
func NewIntEntry(value int) *IntEntry {
	w := &IntEntry{}
	w.ExtendBaseWidget(w)
	w.OnChanged = func(string) {
		w.dirty = true
	}
	w.OnSubmitted = func(string) {
		w.commit()
	}
	w.SetValue(value)
	return w
}

// Value returns the last committed value.
func (w *IntEntry) Value() int {
	return w.value
}

// SetValue sets the value without calling OnCommitted.
func (w *IntEntry) SetValue(v int) {
	w.value = max(v, 0)
	w.restore()
}

// FocusGained clears the entry, so the user can type a new value right away.
func (w *IntEntry) FocusGained() {
	w.SetText("")
	w.Entry.FocusGained()
}

func (w *IntEntry) FocusLost() {
	w.commit()
	w.Entry.FocusLost()
}

// Keyboard returns the keyboard type for mobile devices.
func (w *IntEntry) Keyboard() mobile.KeyboardType {
	return mobile.NumberKeyboard
}

// commit takes over an edit. It does nothing when there was no edit since the last commit.
func (w *IntEntry) commit() {
	if !w.dirty {
		return
	}
	s := strings.TrimSpace(w.Text)
	if s == "" {
		w.restore()
		return
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		if w.OnInvalid != nil {
			w.OnInvalid(s)
		}
		w.restore()
		return
	}
	w.value = v
	w.restore()
	if w.OnCommitted != nil {
		w.OnCommitted(v)
	}
}

// restore shows the current value and clears the edit.
func (w *IntEntry) restore() {
	w.SetText(strconv.Itoa(w.value))
	w.dirty = false
}
