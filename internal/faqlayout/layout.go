// Package faqlayout provides a self-sizing layout for a list of question and answer cells.
//
// The height of each cell is computed from its wrapped texts at the current width.
// Computed geometries are cached per item and dropped whenever the width, the fonts
// or the texts of an item change.
//
// The layout only measures and positions. Where the texts come from is up to the [Delegate].
package faqlayout

import (
	"fmt"

	"fyne.io/fyne/v2"
)

// MeasureFunc returns the size of a single line of text. The signature matches [fyne.MeasureText].
type MeasureFunc func(text string, size float32, style fyne.TextStyle) fyne.Size

// Delegate provides the texts of the items.
// Implementations are expected to panic for indices outside [0, Count).
type Delegate interface {
	Count() int
	QuestionText(index int) string
	AnswerText(index int) string
}

// Font describes how a text is rendered.
type Font struct {
	Size  float32
	Style fyne.TextStyle
}

// Insets are the fixed paddings of a cell.
type Insets struct {
	Top         float32 // space above the question
	Bottom      float32 // space below the answer
	Left        float32
	Right       float32
	Spacing     float32 // space between question and answer
	ItemSpacing float32 // space between two cells
}

// Attribute is the frame of an item.
type Attribute struct {
	Index    int
	Position fyne.Position
	Size     fyne.Size
}

// Line is a wrapped line of text, positioned relative to its cell.
type Line struct {
	Text     string
	Font     Font
	Position fyne.Position
}

// Cell is the content of an item as it must be rendered to match its measured size.
type Cell struct {
	Lines []Line
	Size  fyne.Size
}

// Params are the parameters for creating a new layout.
type Params struct {
	QuestionFont Font
	AnswerFont   Font
	Insets       Insets
	Measure      MeasureFunc // defaults to fyne.MeasureText
}

// Layout is a single column layout, which sizes every cell to its question and answer.
//
// Layout implements [fyne.Layout]. The objects of the container are the cells,
// one for each item in index order.
type Layout struct {
	// OnWidthChanged is called when the container width changed during a layout pass.
	// The minimum size of the container is likely to have changed too.
	OnWidthChanged func(width float32)

	answerFont   Font
	cache        map[int]geometry
	delegate     Delegate
	insets       Insets
	measure      MeasureFunc
	questionFont Font
	width        float32
}

type geometry struct {
	answer        string
	answerLines   []string
	height        float32
	question      string
	questionLines []string
}

var _ fyne.Layout = (*Layout)(nil)

// New returns a new layout for the items provided by d.
func New(d Delegate, arg Params) *Layout {
	if d == nil {
		panic("faqlayout: delegate must not be nil")
	}
	l := &Layout{
		answerFont:   arg.AnswerFont,
		cache:        make(map[int]geometry),
		delegate:     d,
		insets:       arg.Insets,
		measure:      arg.Measure,
		questionFont: arg.QuestionFont,
	}
	if l.measure == nil {
		l.measure = fyne.MeasureText
	}
	return l
}

// Width returns the width the cached geometries have been computed for.
func (l *Layout) Width() float32 {
	return l.width
}

// SetWidth sets the available width. A different width invalidates all cached geometries.
func (l *Layout) SetWidth(width float32) {
	if width == l.width {
		return
	}
	l.width = width
	l.InvalidateAll()
}

// QuestionFont returns the font for rendering questions.
func (l *Layout) QuestionFont() Font {
	return l.questionFont
}

// AnswerFont returns the font for rendering answers.
func (l *Layout) AnswerFont() Font {
	return l.answerFont
}

// SetFonts replaces the fonts and invalidates all cached geometries.
func (l *Layout) SetFonts(question, answer Font) {
	l.questionFont = question
	l.answerFont = answer
	l.InvalidateAll()
}

// Invalidate drops the cached geometries of the given items.
func (l *Layout) Invalidate(indices ...int) {
	for _, i := range indices {
		delete(l.cache, i)
	}
}

// InvalidateAll drops all cached geometries.
func (l *Layout) InvalidateAll() {
	clear(l.cache)
}

// Measure returns the height of the cell for an item at the current width.
// It panics if index is out of range.
func (l *Layout) Measure(index int) float32 {
	return l.geometry(index).height
}

// Cell returns the wrapped and positioned lines of the cell for an item.
// It panics if index is out of range.
func (l *Layout) Cell(index int) Cell {
	g := l.geometry(index)
	var lines []Line
	x := l.insets.Left
	y := l.insets.Top
	add := func(texts []string, f Font) {
		lh := l.lineHeight(f)
		for _, t := range texts {
			lines = append(lines, Line{Text: t, Font: f, Position: fyne.NewPos(x, y)})
			y += lh
		}
	}
	add(g.questionLines, l.questionFont)
	if len(g.questionLines) > 0 && len(g.answerLines) > 0 {
		y += l.insets.Spacing
	}
	add(g.answerLines, l.answerFont)
	return Cell{Lines: lines, Size: fyne.NewSize(l.width, g.height)}
}

// Attributes returns the frames of all items for the given width in index order.
// Frames are stacked from top to bottom with the item spacing between them.
func (l *Layout) Attributes(width float32) []Attribute {
	l.SetWidth(width)
	n := l.delegate.Count()
	l.prune(n)
	attrs := make([]Attribute, 0, n)
	var y float32
	for i := range n {
		h := l.Measure(i)
		attrs = append(attrs, Attribute{
			Index:    i,
			Position: fyne.NewPos(0, y),
			Size:     fyne.NewSize(width, h),
		})
		y += h + l.insets.ItemSpacing
	}
	return attrs
}

// ContentHeight returns the total height of all cells at the current width.
func (l *Layout) ContentHeight() float32 {
	n := l.delegate.Count()
	if n == 0 {
		return 0
	}
	var h float32
	for i := range n {
		h += l.Measure(i)
	}
	return h + float32(n-1)*l.insets.ItemSpacing
}

// Layout positions the cells of a container. Implements [fyne.Layout].
func (l *Layout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if size.Width <= 0 {
		return
	}
	changed := size.Width != l.width
	attrs := l.Attributes(size.Width)
	for i, o := range objects {
		if i >= len(attrs) {
			o.Hide()
			continue
		}
		a := attrs[i]
		o.Move(a.Position)
		o.Resize(a.Size)
	}
	if changed && l.OnWidthChanged != nil {
		l.OnWidthChanged(size.Width)
	}
}

// MinSize returns the size needed to show all cells at the current width.
// Returns a zero size as long as the width is not known. Implements [fyne.Layout].
func (l *Layout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	if l.width <= 0 {
		return fyne.NewSize(0, 0)
	}
	return fyne.NewSize(0, l.ContentHeight())
}

func (l *Layout) geometry(index int) geometry {
	if n := l.delegate.Count(); index < 0 || index >= n {
		panic(fmt.Sprintf("faqlayout: index %d out of range [0:%d]", index, n))
	}
	q := l.delegate.QuestionText(index)
	a := l.delegate.AnswerText(index)
	g, ok := l.cache[index]
	if ok && g.question == q && g.answer == a {
		return g
	}
	g = l.compute(q, a)
	l.cache[index] = g
	return g
}

func (l *Layout) compute(question, answer string) geometry {
	w := max(l.width-l.insets.Left-l.insets.Right, 0)
	g := geometry{
		question:      question,
		answer:        answer,
		questionLines: wrap(question, w, l.questionFont, l.measure),
		answerLines:   wrap(answer, w, l.answerFont, l.measure),
	}
	h := l.insets.Top + l.insets.Bottom
	h += float32(len(g.questionLines)) * l.lineHeight(l.questionFont)
	h += float32(len(g.answerLines)) * l.lineHeight(l.answerFont)
	if len(g.questionLines) > 0 && len(g.answerLines) > 0 {
		h += l.insets.Spacing
	}
	g.height = h
	return g
}

func (l *Layout) lineHeight(f Font) float32 {
	return l.measure("M", f.Size, f.Style).Height
}

// prune drops geometries of items which no longer exist.
func (l *Layout) prune(count int) {
	for i := range l.cache {
		if i >= count {
			delete(l.cache, i)
		}
	}
}
