// Package app is the root package of all domain related packages.
//
// All entity types and the actions emitted by the screens are defined in this package.
package app

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Titler converts a string into a title for display.
var Titler = cases.Title(language.Und)

// Reporter receives diagnostics about anomalies which are not worth crashing for,
// e.g. a settled control which reports no value.
type Reporter interface {
	Report(message string)
}
