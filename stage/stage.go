// Package stage holds the top-level mode state machine: Menu or Play
package stage

import (
	"github.com/lixenwraith/zbuffer/constants"
	"github.com/lixenwraith/zbuffer/input"
)

// Kind is the discriminant of a Stage, independent of its payload
type Kind uint8

const (
	KindNone Kind = iota
	KindMenu
	KindPlay
)

func (k Kind) String() string {
	switch k {
	case KindMenu:
		return "menu"
	case KindPlay:
		return "play"
	}
	return "none"
}

// Stage is one of *Menu or *Play; the set is closed
type Stage interface {
	Kind() Kind

	// Tick advances the stage by elapsedMs with this frame's events
	// A non-nil error means the stage could not build its successor and is left unchanged
	Tick(elapsedMs uint32, events []input.Event) (Transition, error)

	sealed()
}

// Transition is the result of a tick: stay, or replace the stage
type Transition struct {
	next Stage
}

// Continue keeps the current stage
func Continue() Transition {
	return Transition{}
}

// SwitchTo replaces the current stage with next
func SwitchTo(next Stage) Transition {
	if next == nil {
		panic("stage: switch to nil stage")
	}
	return Transition{next: next}
}

// Next returns the replacement stage, if any
func (t Transition) Next() (Stage, bool) {
	return t.next, t.next != nil
}

// Config is what stages need to construct each other
type Config struct {
	Keys        *input.KeyTable
	Title       string
	WorldWidth  int
	WorldHeight int
	Seed        int64
	LogCapacity int

	// Populate fills new worlds with generated terrain; off gives an empty world
	Populate bool
}

// DefaultConfig returns the compiled-in configuration
func DefaultConfig() Config {
	return Config{
		Keys:        input.DefaultKeyTable(),
		Title:       constants.WindowTitle,
		WorldWidth:  constants.DefaultWorldWidth,
		WorldHeight: constants.DefaultWorldHeight,
		Seed:        constants.DefaultSeed,
		LogCapacity: constants.LogCapacity,
		Populate:    true,
	}
}

// New returns the initial stage
func New(cfg Config) Stage {
	return NewMenu(cfg)
}

func (c Config) keys() *input.KeyTable {
	if c.Keys == nil {
		return input.DefaultKeyTable()
	}
	return c.Keys
}
