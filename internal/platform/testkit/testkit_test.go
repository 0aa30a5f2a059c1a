package testkit

import (
	"testing"
)

var greet = func() string { return "olá" }

func TestSwapRestores(t *testing.T) {
	t.Run("swapped", func(t *testing.T) {
		Serial(t)
		Swap(t, &greet, func() string { return "oi" })
		if greet() != "oi" {
			t.Fatalf("swap not applied")
		}
	})
	if greet() != "olá" {
		t.Fatalf("swap not restored")
	}
}

func TestSerialReleases(t *testing.T) {
	t.Run("first", func(t *testing.T) { Serial(t) })
	t.Run("second", func(t *testing.T) { Serial(t) })
}

func TestMustPanic(t *testing.T) {
	t.Parallel()
	MustPanic(t, func() { panic("boom") })
}

func TestMustContain(t *testing.T) {
	t.Parallel()
	MustContain(t, `{"level":"warn","component":"pg"}`, `"level":"warn"`, `"component":"pg"`)
}
