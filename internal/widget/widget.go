// Package widget contains generic Fyne widgets.
package widget

import (
	"fyne.io/fyne/v2/theme"
)

const (
	colorBarBackground = theme.ColorNameMenuBackground
)
