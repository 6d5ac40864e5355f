package testing

import (
	"reflect"
	"testing"
)

// Equal asserts that values are deeply equal.
func Equal[T any](t testing.TB, a, b T) {
	t.Helper()

	if !reflect.DeepEqual(a, b) {
		t.Fatalf("expected '%v' to be equal to '%v'", a, b)
	}
}

// True asserts that the condition holds.
func True(t testing.TB, ok bool) {
	t.Helper()

	if !ok {
		t.Fatalf("expected condition to be true")
	}
}
