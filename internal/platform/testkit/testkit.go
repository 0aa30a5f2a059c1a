// Package testkit holds small assertions and seam helpers shared by tests
package testkit

import (
	"strings"
	"sync"
	"testing"
)

// MustPanic fails t unless fn panics
func MustPanic(t testing.TB, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic")
		}
	}()
	fn()
}

// MustContain fails t unless every needle appears in haystack
func MustContain(t testing.TB, haystack string, needles ...string) {
	t.Helper()
	for _, n := range needles {
		if !strings.Contains(haystack, n) {
			t.Fatalf("missing %q in:\n%s", n, haystack)
		}
	}
}

// seams guards package level function variables replaced by Swap
var seams sync.Mutex

// Serial holds the seam lock until t ends; tests calling it must not be parallel
func Serial(t testing.TB) {
	t.Helper()
	seams.Lock()
	t.Cleanup(seams.Unlock)
}

// Swap replaces *target with v until t ends
func Swap[T any](t testing.TB, target *T, v T) {
	t.Helper()
	old := *target
	*target = v
	t.Cleanup(func() { *target = old })
}
