package input

import (
	"errors"
	"testing"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		name   string
		expect Key
	}{
		{"escape", KeyEscape},
		{"ESC", KeyEscape},
		{"page_down", KeyPageDown},
		{"shift_tab", KeyBacktab},
		{"space", RuneKey(' ')},
		{"hash", RuneKey('#')},
		{"q", RuneKey('q')},
		{"Q", RuneKey('q')},
		{"f12", KeyF12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, err := ParseKey(tt.name)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if k != tt.expect {
				t.Errorf("Expected %v, got %v", tt.expect, k)
			}
		})
	}

	if _, err := ParseKey("hyper_space"); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("Expected ErrUnknownKey, got %v", err)
	}
}

func TestKeyPrintable(t *testing.T) {
	if !RuneKey('x').IsPrintable() {
		t.Error("Expected rune key to be printable")
	}
	if KeyEnter.IsPrintable() {
		t.Error("Expected Enter to be non-printable")
	}
	if RuneKey('\x07').IsPrintable() {
		t.Error("Expected control rune to be non-printable")
	}
	if RuneKey('A') != RuneKey('a') {
		t.Error("Expected letter keys to fold case")
	}
}

func TestKeyStringRoundTrip(t *testing.T) {
	for _, k := range []Key{KeyEscape, KeyF3, RuneKey('j'), RuneKey(' ')} {
		parsed, err := ParseKey(k.String())
		if err != nil {
			t.Fatalf("ParseKey(%q): %v", k.String(), err)
		}
		if parsed != k {
			t.Errorf("Expected %v after round trip, got %v", k, parsed)
		}
	}
}
