package terminal

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/zbuffer/input"
	"github.com/lixenwraith/zbuffer/render"
)

// ErrClosed is returned when presenting to a finalized screen
var ErrClosed = errors.New("terminal closed")

const eventBufferSize = 256

// Screen wraps a tcell screen as raw input source and frame sink
type Screen struct {
	screen tcell.Screen
	events chan tcell.Event
	stopCh chan struct{}
	doneCh chan struct{}

	running  atomic.Bool
	closed   atomic.Bool
	finiOnce sync.Once
}

// New initializes the process terminal
func New() (*Screen, error) {
	sc, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return NewWithScreen(sc)
}

// NewWithScreen initializes sc and starts polling it
func NewWithScreen(sc tcell.Screen) (*Screen, error) {
	if err := sc.Init(); err != nil {
		return nil, fmt.Errorf("terminal init: %w", err)
	}
	sc.EnableMouse()
	sc.HideCursor()
	sc.Clear()

	s := &Screen{
		screen: sc,
		events: make(chan tcell.Event, eventBufferSize),
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}
	s.running.Store(true)
	Go(s.pollLoop)
	return s, nil
}

// pollLoop forwards tcell events until the screen is finalized
func (s *Screen) pollLoop() {
	defer close(s.doneCh)

	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case s.events <- ev:
		case <-s.stopCh:
			return
		}
	}
}

// Signals drains pending events without blocking
// Each key event yields a press followed by a release
func (s *Screen) Signals() []input.RawSignal {
	var out []input.RawSignal
	for {
		select {
		case ev := <-s.events:
			out = s.translate(out, ev)
		default:
			return out
		}
	}
}

func (s *Screen) translate(out []input.RawSignal, ev tcell.Event) []input.RawSignal {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			log.Printf("terminal: interrupt requested")
			s.Stop()
			return out
		}
		sig, ok := translateKey(ev)
		if !ok {
			return out
		}
		sig.Pressed = true
		out = append(out, sig)
		sig.Pressed = false
		return append(out, sig)

	case *tcell.EventMouse:
		mods := ev.Modifiers()
		return append(out, input.RawSignal{
			Kind:  input.SignalMouse,
			Shift: mods&tcell.ModShift != 0,
			Alt:   mods&tcell.ModAlt != 0,
			Ctrl:  mods&tcell.ModCtrl != 0,
		})

	case *tcell.EventResize:
		s.screen.Sync()
	}
	return out
}

// Present copies buf to the screen, clipped to the terminal size, and shows it
func (s *Screen) Present(buf *render.Buffer) error {
	if s.closed.Load() {
		return ErrClosed
	}

	sw, sh := s.screen.Size()
	w, h := min(sw, buf.Width()), min(sh, buf.Height())
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c, _ := buf.Get(x, y)
			if c.Rune == 0 {
				continue
			}
			s.screen.SetContent(x, y, c.Rune, nil, c.Style)
		}
	}
	s.screen.Show()
	return nil
}

// Running reports whether the user has not asked to quit
func (s *Screen) Running() bool {
	return s.running.Load()
}

// Stop marks the screen as no longer running
func (s *Screen) Stop() {
	s.running.Store(false)
}

// Size returns the current terminal size
func (s *Screen) Size() (int, int) {
	return s.screen.Size()
}

// SetTitle sets the terminal window title where supported
func (s *Screen) SetTitle(title string) {
	s.screen.SetTitle(title)
}

// Fini stops polling and restores the terminal, safe to call more than once
func (s *Screen) Fini() {
	s.finiOnce.Do(func() {
		s.Stop()
		s.closed.Store(true)
		close(s.stopCh)
		s.screen.Fini()
		<-s.doneCh
	})
}
