package widget

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Navigator is a container that allows the user to navigate to a new page
// and return back to the previous one.
type Navigator struct {
	widget.BaseWidget

	// OnPopped is called after a page has been removed. Optional.
	OnPopped func(ab *AppBar)

	pages *fyne.Container // stack of pages. First object is the root page.
}

// NewNavigator returns a new Navigator and defines the root page.
func NewNavigator(ab *AppBar) *Navigator {
	if ab == nil {
		panic("must provide an AppBar")
	}
	n := &Navigator{
		pages: container.NewStack(),
	}
	n.ExtendBaseWidget(n)
	n.pages.Add(ab)
	return n
}

// Push adds a new page and shows it.
func (n *Navigator) Push(ab *AppBar) {
	ab.Navigator = n
	previous := n.Top()
	n.pages.Add(ab)
	previous.Hide()
}

// Set replaces all pages with a new root page.
func (n *Navigator) Set(ab *AppBar) {
	n.pages.RemoveAll()
	n.pages.Add(ab)
	n.Refresh()
}

// Depth returns the number of pages.
func (n *Navigator) Depth() int {
	return len(n.pages.Objects)
}

// Pop removes the current page and shows the previous page.
// Does nothing when the root page is shown.
func (n *Navigator) Pop() {
	if len(n.pages.Objects) < 2 {
		return
	}
	top := n.Top()
	n.pages.Remove(top)
	n.Top().Show()
	if n.OnPopped != nil {
		n.OnPopped(top)
	}
}

// PopAll removes all additional pages and shows the root page.
// Does nothing when the root page is shown.
func (n *Navigator) PopAll() {
	for len(n.pages.Objects) > 1 {
		n.Pop()
	}
}

// Top returns the page currently shown.
func (n *Navigator) Top() *AppBar {
	return n.pages.Objects[len(n.pages.Objects)-1].(*AppBar)
}

func (n *Navigator) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(n.pages)
}
