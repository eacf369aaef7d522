// Package game drives the frame loop: clock, input, stage, renderer, presentation.
package game

import (
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/lixenwraith/zbuffer/constants"
	"github.com/lixenwraith/zbuffer/engine"
	"github.com/lixenwraith/zbuffer/input"
	"github.com/lixenwraith/zbuffer/render"
	"github.com/lixenwraith/zbuffer/stage"
)

var (
	// ErrClockRegressed is returned when the time source goes backwards
	ErrClockRegressed = errors.New("clock regressed")

	// ErrNoSink is returned by New without a presentation sink
	ErrNoSink = errors.New("no presentation sink")
)

// Sink receives composed frames and decides when the loop stops
type Sink interface {
	Present(buf *render.Buffer) error
	Running() bool
}

// Options configures a Game
type Options struct {
	Width  int
	Height int
	Layout render.Layout
	MaxFPS int
	Stage  stage.Config

	Source input.Source
	Keys   *input.HeldKeys
	Sink   Sink
	Clock  engine.TimeProvider
}

// Game owns the live stage, the renderer cache and the input state for one loop
type Game struct {
	normalizer *input.Normalizer
	current    stage.Stage
	cache      *render.Cache
	clock      engine.TimeProvider
	sink       Sink
	interval   time.Duration

	last   time.Time
	delta  uint32
	frames uint64
}

// New validates the frame size and creates a game on the initial menu
func New(opts Options) (*Game, error) {
	if _, _, err := render.ViewportSize(opts.Width, opts.Height, opts.Layout); err != nil {
		return nil, fmt.Errorf("frame size: %w", err)
	}
	if opts.Sink == nil {
		return nil, ErrNoSink
	}
	clock := opts.Clock
	if clock == nil {
		clock = engine.NewMonotonicTimeProvider()
	}

	g := &Game{
		normalizer: input.NewNormalizer(opts.Source, opts.Keys),
		current:    stage.New(opts.Stage),
		cache:      render.NewCache(render.DefaultFactory(opts.Width, opts.Height, opts.Layout)),
		clock:      clock,
		sink:       opts.Sink,
		interval:   constants.FrameInterval(opts.MaxFPS),
		last:       clock.Now(),
	}
	log.Printf("game: %dx%d frame, %s per frame", opts.Width, opts.Height, g.interval)
	return g, nil
}

// Step runs one tick: clock, poll, stage tick, transition, render, present
// A failed stage switch leaves the current stage in place
func (g *Game) Step() error {
	now := g.clock.Now()
	if now.Before(g.last) {
		return fmt.Errorf("%w: by %s", ErrClockRegressed, g.last.Sub(now))
	}
	g.delta = clampMillis(now.Sub(g.last))
	g.last = now

	events := g.normalizer.Poll()

	tr, err := g.current.Tick(g.delta, events)
	if err != nil {
		return fmt.Errorf("%s tick: %w", g.current.Kind(), err)
	}
	if next, ok := tr.Next(); ok {
		g.current = next
	}

	frame, err := g.cache.Render(g.current)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err := g.sink.Present(frame); err != nil {
		return fmt.Errorf("present: %w", err)
	}
	g.frames++
	return nil
}

// Run steps once per frame interval until the sink stops running or a step fails
func (g *Game) Run() error {
	ticker := time.NewTicker(g.interval)
	defer ticker.Stop()

	for g.sink.Running() {
		if err := g.Step(); err != nil {
			return err
		}
		<-ticker.C
	}
	log.Printf("game: stopped after %d frames", g.frames)
	return nil
}

// Stage returns the live stage
func (g *Game) Stage() stage.Stage {
	return g.current
}

// DeltaMillis returns the elapsed milliseconds fed to the last tick
func (g *Game) DeltaMillis() uint32 {
	return g.delta
}

// Frames returns how many frames were presented
func (g *Game) Frames() uint64 {
	return g.frames
}

// Rebuilds returns how many renderers were built
func (g *Game) Rebuilds() int {
	return g.cache.Rebuilds()
}

func clampMillis(d time.Duration) uint32 {
	ms := d.Milliseconds()
	if ms > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(ms)
}
