package terminal

import (
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/zbuffer/input"
	"github.com/lixenwraith/zbuffer/render"
)

func newSimScreen(t *testing.T) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	s, err := NewWithScreen(sim)
	if err != nil {
		t.Fatalf("NewWithScreen: %v", err)
	}
	t.Cleanup(s.Fini)
	return s, sim
}

// waitSignals drains the screen until at least n signals arrived or the deadline passed
func waitSignals(t *testing.T, s *Screen, n int) []input.RawSignal {
	t.Helper()
	var got []input.RawSignal
	deadline := time.Now().Add(time.Second)
	for len(got) < n && time.Now().Before(deadline) {
		got = append(got, s.Signals()...)
		time.Sleep(time.Millisecond)
	}
	if len(got) < n {
		t.Fatalf("Expected %d signals, got %d", n, len(got))
	}
	return got
}

func TestKeyEventBecomesPressAndRelease(t *testing.T) {
	tests := []struct {
		name     string
		key      tcell.Key
		r        rune
		mod      tcell.ModMask
		wantCode input.Key
		wantChar rune
		wantCtrl bool
	}{
		{"rune", tcell.KeyRune, 'a', tcell.ModNone, input.RuneKey('a'), 'a', false},
		{"shifted rune", tcell.KeyRune, 'A', tcell.ModNone, input.RuneKey('a'), 'A', false},
		{"arrow", tcell.KeyUp, 0, tcell.ModNone, input.KeyUp, 0, false},
		{"enter", tcell.KeyEnter, 0, tcell.ModNone, input.KeyEnter, 0, false},
		{"page down", tcell.KeyPgDn, 0, tcell.ModNone, input.KeyPageDown, 0, false},
		{"ctrl letter", tcell.KeyCtrlX, 0, tcell.ModCtrl, input.RuneKey('x'), 'x', true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, sim := newSimScreen(t)
			sim.InjectKey(tt.key, tt.r, tt.mod)

			got := waitSignals(t, s, 2)
			if len(got) != 2 {
				t.Fatalf("Expected press and release, got %d signals", len(got))
			}
			for i, wantPressed := range []bool{true, false} {
				sig := got[i]
				if sig.Kind != input.SignalKey {
					t.Errorf("Signal %d: expected key signal, got %v", i, sig.Kind)
				}
				if sig.Pressed != wantPressed {
					t.Errorf("Signal %d: expected pressed=%v, got %v", i, wantPressed, sig.Pressed)
				}
				if sig.Code != tt.wantCode {
					t.Errorf("Signal %d: expected code %v, got %v", i, tt.wantCode, sig.Code)
				}
				if sig.Char != tt.wantChar {
					t.Errorf("Signal %d: expected char %q, got %q", i, tt.wantChar, sig.Char)
				}
				if sig.Ctrl != tt.wantCtrl {
					t.Errorf("Signal %d: expected ctrl=%v, got %v", i, tt.wantCtrl, sig.Ctrl)
				}
			}
		})
	}
}

func TestNormalizedKeystroke(t *testing.T) {
	s, sim := newSimScreen(t)
	n := input.NewNormalizer(s, input.NewHeldKeys())

	sim.InjectKey(tcell.KeyRune, 'a', tcell.ModNone)
	pollEvents := func() []input.Event {
		deadline := time.Now().Add(time.Second)
		for time.Now().Before(deadline) {
			if events := n.Poll(); len(events) > 0 {
				return events
			}
			time.Sleep(time.Millisecond)
		}
		return nil
	}
	events := pollEvents()

	want := []input.EventType{input.EventKeyDown, input.EventKeyUp, input.EventKeyPress}
	if len(events) != len(want) {
		t.Fatalf("Expected %d events, got %d", len(want), len(events))
	}
	for i, typ := range want {
		if events[i].Type != typ {
			t.Errorf("Event %d: expected %v, got %v", i, typ, events[i].Type)
		}
		if r, ok := events[i].Character(); !ok || r != 'a' {
			t.Errorf("Event %d: expected character 'a', got %q (%v)", i, r, ok)
		}
	}
	if n.Keys().IsHeld(input.RuneKey('a')) {
		t.Error("Expected key released after the keystroke")
	}
}

func TestCtrlCStopsScreen(t *testing.T) {
	s, sim := newSimScreen(t)
	if !s.Running() {
		t.Fatal("Expected new screen to be running")
	}

	sim.InjectKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)
	deadline := time.Now().Add(time.Second)
	for s.Running() && time.Now().Before(deadline) {
		if sigs := s.Signals(); len(sigs) > 0 {
			t.Errorf("Expected Ctrl+C to produce no signals, got %d", len(sigs))
		}
		time.Sleep(time.Millisecond)
	}
	if s.Running() {
		t.Error("Expected screen stopped after Ctrl+C")
	}
}

func TestMouseSignal(t *testing.T) {
	s, sim := newSimScreen(t)
	sim.InjectMouse(3, 2, tcell.Button1, tcell.ModShift)

	got := waitSignals(t, s, 1)
	if got[0].Kind != input.SignalMouse {
		t.Errorf("Expected mouse signal, got %v", got[0].Kind)
	}
	if !got[0].Shift {
		t.Error("Expected shift modifier on mouse signal")
	}
}

func TestPresent(t *testing.T) {
	s, sim := newSimScreen(t)
	sim.SetSize(6, 2)

	buf := render.NewBuffer(8, 3)
	buf.Print(0, 0, "hello!!!", tcell.StyleDefault)
	buf.Print(0, 1, "ab", tcell.StyleDefault.Bold(true))
	if err := s.Present(buf); err != nil {
		t.Fatalf("Present: %v", err)
	}

	cells, w, h := sim.GetContents()
	if w != 6 || h != 2 {
		t.Fatalf("Expected 6x2 screen, got %dx%d", w, h)
	}
	row := func(y int) string {
		var out []rune
		for x := 0; x < w; x++ {
			out = append(out, cells[y*w+x].Runes...)
		}
		return string(out)
	}
	if got := row(0); got != "hello!" {
		t.Errorf("Expected clipped first row %q, got %q", "hello!", got)
	}
	if got := row(1); got != "ab    " {
		t.Errorf("Expected second row %q, got %q", "ab    ", got)
	}
}

func TestPresentAfterFini(t *testing.T) {
	s, _ := newSimScreen(t)
	s.Fini()
	s.Fini()

	if err := s.Present(render.NewBuffer(1, 1)); !errors.Is(err, ErrClosed) {
		t.Errorf("Expected ErrClosed, got %v", err)
	}
	if s.Running() {
		t.Error("Expected finalized screen not running")
	}
}
