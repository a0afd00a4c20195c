package logging

import (
	"log/slog"
	"testing"
)

func TestSetLevelFromString(t *testing.T) {
	cases := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"ERROR", slog.LevelError},
	}
	for _, tc := range cases {
		SetLevelFromString(tc.in)
		if got := logLevel.Level(); got != tc.want {
			t.Fatalf("level %q: expected %v, got %v", tc.in, tc.want, got)
		}
	}

	// Unknown values leave the level untouched.
	SetLevelFromString("error")
	SetLevelFromString("nope")
	if got := logLevel.Level(); got != slog.LevelError {
		t.Fatalf("expected unknown level string to be ignored, got %v", got)
	}
}

func TestInitStructuredSwapsLogger(t *testing.T) {
	before := Op()
	InitStructured("json", "debug")
	after := Op()
	if before == after {
		t.Fatal("expected InitStructured to install a fresh logger")
	}
	if !after.Enabled(nil, slog.LevelDebug) {
		t.Fatal("expected debug level to be enabled")
	}
	InitStructured("text", "info")
}

func TestWithRequestID(t *testing.T) {
	if WithRequestID("") != Op() {
		t.Fatal("expected empty request id to return the base logger")
	}
	if WithRequestID("abc") == Op() {
		t.Fatal("expected request id to derive a child logger")
	}
}
