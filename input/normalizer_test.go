package input

import (
	"reflect"
	"testing"
)

func keySig(code Key, char rune, pressed bool) RawSignal {
	return RawSignal{Kind: SignalKey, Code: code, Char: char, Pressed: pressed}
}

func types(events []Event) []EventType {
	out := make([]EventType, len(events))
	for i, e := range events {
		out[i] = e.Type
	}
	return out
}

// TestNormalizerTapSequence walks the first press / repeat / release example
func TestNormalizerTapSequence(t *testing.T) {
	a := RuneKey('a')
	n := NewNormalizer(nil, NewHeldKeys())

	first := n.Normalize([]RawSignal{keySig(a, 'a', true)})
	if got := types(first); !reflect.DeepEqual(got, []EventType{EventKeyDown}) {
		t.Fatalf("First press: expected [key_down], got %v", got)
	}
	if !n.Keys().IsHeld(a) {
		t.Error("Expected key to be held after first press")
	}

	repeat := n.Normalize([]RawSignal{keySig(a, 'a', true)})
	if got := types(repeat); !reflect.DeepEqual(got, []EventType{EventKeyDown, EventKeyPress}) {
		t.Fatalf("Repeat press: expected [key_down key_press], got %v", got)
	}

	release := n.Normalize([]RawSignal{keySig(a, 'a', false)})
	if got := types(release); !reflect.DeepEqual(got, []EventType{EventKeyUp, EventKeyPress}) {
		t.Fatalf("Release: expected [key_up key_press], got %v", got)
	}
	if n.Keys().IsHeld(a) {
		t.Error("Expected key to be released")
	}

	for _, e := range append(repeat, release...) {
		if e.Code != a {
			t.Errorf("Expected code %v, got %v", a, e.Code)
		}
		if c, ok := e.Character(); !ok || c != 'a' {
			t.Errorf("Expected character 'a', got %q (present=%v)", c, ok)
		}
	}
}

func TestNormalizerReleaseWithoutPress(t *testing.T) {
	keys := NewHeldKeys()
	n := NewNormalizer(nil, keys)

	events := n.Normalize([]RawSignal{keySig(KeyEnter, 0, false)})
	if got := types(events); !reflect.DeepEqual(got, []EventType{EventKeyUp, EventKeyPress}) {
		t.Fatalf("Expected [key_up key_press], got %v", got)
	}
	if keys.Len() != 0 {
		t.Errorf("Expected empty key table, got %d entries", keys.Len())
	}
}

func TestNormalizerModifiersAndCharacter(t *testing.T) {
	n := NewNormalizer(nil, nil)

	events := n.Normalize([]RawSignal{
		{Kind: SignalKey, Code: RuneKey('A'), Char: 'A', Pressed: false, Shift: true, Ctrl: true},
		{Kind: SignalKey, Code: KeyUp, Char: 'x', Pressed: false, Alt: true},
	})
	if len(events) != 4 {
		t.Fatalf("Expected 4 events, got %d", len(events))
	}

	shifted := events[0]
	if shifted.Mods != (Modifiers{Shift: true, Ctrl: true}) {
		t.Errorf("Expected shift+ctrl, got %+v", shifted.Mods)
	}
	if c, ok := shifted.Character(); !ok || c != 'A' {
		t.Errorf("Expected character 'A', got %q", c)
	}
	if events[1].Mods != shifted.Mods || events[1].Char != shifted.Char {
		t.Error("Expected synthetic press to carry the same character and modifiers")
	}

	// Non-printable keys never carry a character, whatever the raw signal says
	arrow := events[2]
	if _, ok := arrow.Character(); ok {
		t.Error("Expected no character for arrow key")
	}
	if !arrow.Mods.Alt {
		t.Error("Expected alt modifier on arrow key")
	}
}

func TestNormalizerPreservesOrder(t *testing.T) {
	n := NewNormalizer(nil, nil)
	a, b := RuneKey('a'), RuneKey('b')

	events := n.Normalize([]RawSignal{
		keySig(a, 'a', true),
		{Kind: SignalMouse},
		keySig(b, 'b', true),
		keySig(a, 'a', false),
		keySig(b, 'b', true),
	})

	expected := []struct {
		typ  EventType
		code Key
	}{
		{EventKeyDown, a},
		{EventMouse, KeyNone},
		{EventKeyDown, b},
		{EventKeyUp, a},
		{EventKeyPress, a},
		{EventKeyDown, b},
		{EventKeyPress, b},
	}
	if len(events) != len(expected) {
		t.Fatalf("Expected %d events, got %d: %v", len(expected), len(events), types(events))
	}
	for i, want := range expected {
		if events[i].Type != want.typ || events[i].Code != want.code {
			t.Errorf("Event %d: expected %s/%v, got %s/%v", i, want.typ, want.code, events[i].Type, events[i].Code)
		}
	}
}

// TestNormalizerKeyDownProperty checks every press after a press emits KeyDown+KeyPress
func TestNormalizerKeyDownProperty(t *testing.T) {
	codes := []Key{KeyUp, KeyEscape, RuneKey('z'), RuneKey(' '), KeyF5}
	for _, code := range codes {
		t.Run(code.String(), func(t *testing.T) {
			n := NewNormalizer(nil, nil)
			if got := types(n.Normalize([]RawSignal{keySig(code, 0, true)})); !reflect.DeepEqual(got, []EventType{EventKeyDown}) {
				t.Fatalf("First press: expected [key_down], got %v", got)
			}
			for i := 0; i < 3; i++ {
				got := types(n.Normalize([]RawSignal{keySig(code, 0, true)}))
				if !reflect.DeepEqual(got, []EventType{EventKeyDown, EventKeyPress}) {
					t.Fatalf("Repeat %d: expected [key_down key_press], got %v", i, got)
				}
			}
			n.Normalize([]RawSignal{keySig(code, 0, false)})
			if n.Keys().IsHeld(code) {
				t.Error("Expected key released after key up")
			}
		})
	}
}

func TestNormalizerPollDrainsSource(t *testing.T) {
	batches := [][]RawSignal{
		{keySig(KeyLeft, 0, true), keySig(KeyLeft, 0, false)},
		nil,
	}
	calls := 0
	src := SourceFunc(func() []RawSignal {
		b := batches[calls]
		calls++
		return b
	})

	n := NewNormalizer(src, nil)
	if got := len(n.Poll()); got != 3 {
		t.Errorf("Expected 3 events from first poll, got %d", got)
	}
	if got := len(n.Poll()); got != 0 {
		t.Errorf("Expected 0 events from empty poll, got %d", got)
	}
	if calls != 2 {
		t.Errorf("Expected source to be drained once per poll, got %d calls", calls)
	}
}

func TestDetectKeyPressPanicsOnSyntheticEvent(t *testing.T) {
	for _, typ := range []EventType{EventKeyPress, EventMouse, EventNone} {
		t.Run(typ.String(), func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("Expected panic for %s event", typ)
				}
			}()
			n := NewNormalizer(nil, nil)
			n.detectKeyPress(Event{Type: typ, Code: KeyEnter})
		})
	}
}
