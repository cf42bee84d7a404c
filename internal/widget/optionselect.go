package widget

import (
	"fyne.io/fyne/v2/widget"
)

// Option is a selectable value with a label for display.
type Option struct {
	Value string
	Label string
}

// OptionSelect is a select widget which shows labels, but reports values.
type OptionSelect struct {
	widget.Select

	// OnSelected is called with the value of the selected option.
	OnSelected func(value string)

	// OnMissing is called when the select settled on a label without an option, e.g. after clearing.
	OnMissing func(label string)

	options []Option
}

// NewOptionSelect returns a new OptionSelect with value selected.
// The initial selection does not call OnSelected.
func NewOptionSelect(options []Option, value string, onSelected func(value string)) *OptionSelect {
	labels := make([]string, len(options))
	for i, o := range options {
		labels[i] = o.Label
	}
	w := &OptionSelect{
		OnSelected: onSelected,
		options:    options,
	}
	w.ExtendBaseWidget(w)
	w.Options = labels
	w.Selected = w.labelFor(value)
	w.OnChanged = func(label string) {
		v, ok := w.valueFor(label)
		if !ok {
			if w.OnMissing != nil {
				w.OnMissing(label)
			}
			return
		}
		if w.OnSelected != nil {
			w.OnSelected(v)
		}
	}
	return w
}

// Value returns the value of the selected option and reports whether an option is selected.
func (w *OptionSelect) Value() (string, bool) {
	return w.valueFor(w.Selected)
}

// SetValue selects the option with value without calling OnSelected.
// An unknown value clears the selection.
func (w *OptionSelect) SetValue(value string) {
	w.Selected = w.labelFor(value)
	w.Refresh()
}

// SetOption selects the option with value as if the user had selected it.
func (w *OptionSelect) SetOption(value string) {
	w.SetSelected(w.labelFor(value))
}

func (w *OptionSelect) labelFor(value string) string {
	for _, o := range w.options {
		if o.Value == value {
			return o.Label
		}
	}
	return ""
}

func (w *OptionSelect) valueFor(label string) (string, bool) {
	if label == "" {
		return "", false
	}
	for _, o := range w.options {
		if o.Label == label {
			return o.Value, true
		}
	}
	return "", false
}
