package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/flinesoft/prayer/internal/app"
	"github.com/flinesoft/prayer/internal/faqlayout"
	"github.com/flinesoft/prayer/internal/l10n"
)

// FAQScreenParams are the parameters for creating a new FAQ screen.
type FAQScreenParams struct {
	Coordinate func(app.FAQAction) // required
	Localizer  *l10n.Localizer     // defaults to the default language
	Measure    faqlayout.MeasureFunc
	Style      *FAQStyle // defaults to DefaultFAQStyle
	ViewModel  app.FAQViewModel
}

// FAQScreen shows a read-only list of questions and their answers.
//
// Every cell is sized to fit its texts at the current width.
type FAQScreen struct {
	widget.BaseWidget

	attached   bool
	coordinate func(app.FAQAction)
	doneButton *widget.Button
	layout     *faqlayout.Layout
	list       *fyne.Container
	reloads    int
	scroll     *container.Scroll
	vm         app.FAQViewModel
}

var _ faqlayout.Delegate = (*FAQScreen)(nil)

// NewFAQScreen returns a new FAQ screen. It panics when the coordinate callback is missing.
func NewFAQScreen(arg FAQScreenParams) *FAQScreen {
	if arg.Coordinate == nil {
		panic("FAQ screen: coordinate must not be nil")
	}
	if arg.Localizer == nil {
		arg.Localizer = l10n.New(app.LanguageCodeDefault)
	}
	var style FAQStyle
	if arg.Style != nil {
		style = *arg.Style
	} else {
		style = DefaultFAQStyle()
	}
	a := &FAQScreen{
		coordinate: arg.Coordinate,
		vm:         arg.ViewModel,
	}
	a.ExtendBaseWidget(a)
	a.layout = faqlayout.New(a, faqlayout.Params{
		QuestionFont: style.QuestionFont,
		AnswerFont:   style.AnswerFont,
		Insets:       style.Insets,
		Measure:      arg.Measure,
	})
	a.list = container.New(a.layout)
	a.scroll = container.NewVScroll(a.list)
	a.layout.OnWidthChanged = func(_ float32) {
		fyne.Do(func() {
			a.scroll.Refresh()
		})
	}
	a.doneButton = widget.NewButton(arg.Localizer.T(l10n.FAQDoneButton), func() {
		a.coordinate(app.FAQDoneButtonPressed{})
	})
	return a
}

// Count returns the number of entries. Implements [faqlayout.Delegate].
func (a *FAQScreen) Count() int {
	return len(a.vm.Entries)
}

// QuestionText returns the question of an entry. Implements [faqlayout.Delegate].
func (a *FAQScreen) QuestionText(index int) string {
	return a.entry(index).Question
}

// AnswerText returns the answer of an entry. Implements [faqlayout.Delegate].
func (a *FAQScreen) AnswerText(index int) string {
	return a.entry(index).Answer
}

func (a *FAQScreen) entry(index int) app.FAQEntry {
	if n := len(a.vm.Entries); index < 0 || index >= n {
		panic(fmt.Sprintf("FAQ screen: index %d out of range [0:%d]", index, n))
	}
	return a.vm.Entries[index]
}

// DoneButton returns the button for leaving this screen.
func (a *FAQScreen) DoneButton() *widget.Button {
	return a.doneButton
}

// ViewModel returns the current view model.
func (a *FAQScreen) ViewModel() app.FAQViewModel {
	return a.vm
}

// SetViewModel replaces the view model.
// The list is reloaded right away when the screen is already shown,
// otherwise when it is rendered for the first time.
func (a *FAQScreen) SetViewModel(vm app.FAQViewModel) {
	a.vm = vm
	if !a.attached {
		return
	}
	a.reload()
}

// reload replaces all cells.
func (a *FAQScreen) reload() {
	a.reloads++
	a.layout.InvalidateAll()
	cells := make([]fyne.CanvasObject, a.Count())
	for i := range cells {
		cells[i] = newFAQCell(a.layout, i)
	}
	a.list.Objects = cells
	a.list.Refresh()
	a.scroll.ScrollToTop()
}

func (a *FAQScreen) CreateRenderer() fyne.WidgetRenderer {
	a.attached = true
	a.reload()
	return widget.NewSimpleRenderer(a.scroll)
}

// faqCell renders the wrapped texts of an entry as computed by the layout.
type faqCell struct {
	widget.BaseWidget

	index  int
	layout *faqlayout.Layout
}

func newFAQCell(l *faqlayout.Layout, index int) *faqCell {
	w := &faqCell{index: index, layout: l}
	w.ExtendBaseWidget(w)
	return w
}

func (w *faqCell) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(theme.Color(theme.ColorNameInputBackground))
	bg.CornerRadius = theme.Size(theme.SizeNameInputRadius)
	return &faqCellRenderer{w: w, bg: bg}
}

type faqCellRenderer struct {
	bg    *canvas.Rectangle
	texts []*canvas.Text
	w     *faqCell
}

func (r *faqCellRenderer) Destroy() {}

func (r *faqCellRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)
	r.update()
}

// MinSize returns zero, because the size of a cell is decided by the layout.
func (r *faqCellRenderer) MinSize() fyne.Size {
	return fyne.NewSize(0, 0)
}

func (r *faqCellRenderer) Objects() []fyne.CanvasObject {
	objs := make([]fyne.CanvasObject, 0, len(r.texts)+1)
	objs = append(objs, r.bg)
	for _, t := range r.texts {
		objs = append(objs, t)
	}
	return objs
}

func (r *faqCellRenderer) Refresh() {
	th := r.w.Theme()
	v := fyne.CurrentApp().Settings().ThemeVariant()
	r.bg.FillColor = th.Color(theme.ColorNameInputBackground, v)
	r.bg.Refresh()
	r.update()
}

// update shows the lines of the cell at their positions.
func (r *faqCellRenderer) update() {
	if r.w.layout.Width() <= 0 {
		for _, t := range r.texts {
			t.Hide()
		}
		return
	}
	c := r.w.layout.Cell(r.w.index)
	for len(r.texts) < len(c.Lines) {
		r.texts = append(r.texts, canvas.NewText("", nil))
	}
	th := r.w.Theme()
	v := fyne.CurrentApp().Settings().ThemeVariant()
	for i, t := range r.texts {
		if i >= len(c.Lines) {
			t.Hide()
			continue
		}
		ln := c.Lines[i]
		t.Text = ln.Text
		t.TextSize = ln.Font.Size
		t.TextStyle = ln.Font.Style
		t.Color = th.Color(theme.ColorNameForeground, v)
		t.Move(ln.Position)
		t.Resize(fyne.NewSize(c.Size.Width, t.MinSize().Height))
		t.Show()
		t.Refresh()
	}
}
