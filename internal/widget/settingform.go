package widget

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// SettingRow describes a row of a [SettingForm].
//
// The widget of a row is expected to have its change handler wired already.
type SettingRow struct {
	Label  string
	Hint   string // optional hint text
	Widget fyne.CanvasObject
}

// SettingSection is a titled group of rows in a [SettingForm].
type SettingSection struct {
	Title string
	Rows  []SettingRow
}

// SettingForm is a vertical list of setting sections.
// Each section is rendered as a heading followed by a form.
type SettingForm struct {
	widget.BaseWidget

	sections []SettingSection
}

// NewSettingForm returns a new setting form for the given sections.
// Sections and rows are shown in the given order.
func NewSettingForm(sections ...SettingSection) *SettingForm {
	w := &SettingForm{sections: sections}
	w.ExtendBaseWidget(w)
	return w
}

// Sections returns the sections of this form.
func (w *SettingForm) Sections() []SettingSection {
	return w.sections
}

// Row returns the first row with the given label and reports whether it was found.
func (w *SettingForm) Row(label string) (SettingRow, bool) {
	for _, s := range w.sections {
		for _, r := range s.Rows {
			if r.Label == label {
				return r, true
			}
		}
	}
	return SettingRow{}, false
}

func (w *SettingForm) CreateRenderer() fyne.WidgetRenderer {
	c := container.NewVBox()
	for i, s := range w.sections {
		if i > 0 {
			c.Add(widget.NewSeparator())
		}
		if s.Title != "" {
			l := widget.NewLabel(s.Title)
			l.Importance = widget.HighImportance
			l.TextStyle.Bold = true
			c.Add(l)
		}
		f := widget.NewForm()
		for _, r := range s.Rows {
			f.AppendItem(&widget.FormItem{
				Text:     r.Label,
				Widget:   r.Widget,
				HintText: r.Hint,
			})
		}
		c.Add(f)
	}
	return widget.NewSimpleRenderer(c)
}
