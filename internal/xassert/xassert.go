// Package xassert extends the testify assert package with additional test helpers.
package xassert

import (
	"testing"

	"github.com/ErikKalkoken/go-set"
	"github.com/stretchr/testify/assert"
)

// EqualSet asserts that two sets are equal.
func EqualSet[T comparable](t *testing.T, want, got set.Set[T]) {
	t.Helper()
	assert.Truef(t, got.Equal(want), "Not equal:\nexpected: %s\nactual  : %s", want, got)
}

// Equal asserts that two objects are equal.
// This variant is type safe.
func Equal[T any](t *testing.T, want, got T) {
	t.Helper()
	assert.Equal(t, want, got)
}
