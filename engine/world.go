package engine

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"

	"github.com/lixenwraith/zbuffer/core"
)

// ErrInvalidWorldSize is returned for non-positive world dimensions
var ErrInvalidWorldSize = errors.New("invalid world size")

// World is the entity store for one play session
// Entities with Location and Renderable are what the scene builder sees
type World struct {
	ecs    donburi.World
	bounds core.Rectangle
	rng    *rand.Rand
	log    *GameLog

	cursor  core.Location
	elapsed core.GameTime

	located     *donburi.Query
	renderables *donburi.Query
	wanderers   *donburi.Query

	// Milliseconds accumulated toward the next wander tick
	wanderAccum uint32
}

// NewWorld creates an empty width x height world with the cursor at its center
func NewWorld(width, height int, seed int64) (*World, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidWorldSize, width, height)
	}

	ecs := donburi.NewWorld()
	w := &World{
		ecs:         ecs,
		bounds:      core.Rectangle{MinX: 0, MinY: 0, MaxX: width - 1, MaxY: height - 1},
		rng:         rand.New(rand.NewSource(seed)),
		log:         NewGameLog(ecs),
		cursor:      core.Location{X: width / 2, Y: height / 2},
		located:     donburi.NewQuery(filter.Contains(Location)),
		renderables: donburi.NewQuery(filter.Contains(Location, Renderable)),
		wanderers:   donburi.NewQuery(filter.Contains(Location, Wanderer)),
	}
	return w, nil
}

// Bounds returns the world extent
func (w *World) Bounds() core.Rectangle {
	return w.bounds
}

// Len returns the number of placed entities; event bookkeeping entities are not counted
func (w *World) Len() int {
	return w.located.Count(w.ecs)
}

// Spawn creates a drawable entity at loc
func (w *World) Spawn(loc core.Location, obj core.VisibleObject, z int) donburi.Entity {
	e := w.ecs.Create(Location, Renderable)
	entry := w.ecs.Entry(e)
	Location.SetValue(entry, loc)
	Renderable.SetValue(entry, RenderableData{Object: obj, ZIndex: z})
	return e
}

// SpawnWanderer creates a drawable entity that moves every stride wander ticks
func (w *World) SpawnWanderer(loc core.Location, obj core.VisibleObject, stride int) donburi.Entity {
	e := w.ecs.Create(Location, Renderable, Wanderer)
	entry := w.ecs.Entry(e)
	Location.SetValue(entry, loc)
	Renderable.SetValue(entry, RenderableData{Object: obj, ZIndex: ZIndexCreature})
	Wanderer.SetValue(entry, WandererData{Stride: max(stride, 1)})
	return e
}

// Despawn removes an entity
func (w *World) Despawn(e donburi.Entity) {
	if w.ecs.Valid(e) {
		w.ecs.Remove(e)
	}
}

// LocationOf returns an entity's location
func (w *World) LocationOf(e donburi.Entity) (core.Location, bool) {
	if !w.ecs.Valid(e) {
		return core.Location{}, false
	}
	entry := w.ecs.Entry(e)
	if !entry.HasComponent(Location) {
		return core.Location{}, false
	}
	return *Location.Get(entry), true
}

// EachRenderable visits every entity having both Location and Renderable
// Visit order is the store's iteration order and carries no draw meaning
func (w *World) EachRenderable(fn func(loc core.Location, obj core.VisibleObject, z int)) {
	w.renderables.Each(w.ecs, func(entry *donburi.Entry) {
		r := Renderable.Get(entry)
		fn(*Location.Get(entry), r.Object, r.ZIndex)
	})
}

// Cursor returns the cursor location
func (w *World) Cursor() core.Location {
	return w.cursor
}

// SetCursor moves the cursor, clamped to the world
func (w *World) SetCursor(loc core.Location) {
	w.cursor = w.bounds.Clamp(loc)
}

// ElapsedMillis returns accumulated game time
func (w *World) ElapsedMillis() uint64 {
	return w.elapsed.Millis()
}

// Logf publishes a log line stamped with the current game time
// Lines reach the log on the next ProcessEvents
func (w *World) Logf(format string, args ...any) {
	LogEventType.Publish(w.ecs, core.LogEntry{
		Text: fmt.Sprintf(format, args...),
		At:   w.elapsed,
	})
}

// ProcessEvents delivers queued events to subscribers
func (w *World) ProcessEvents() {
	LogEventType.ProcessEvents(w.ecs)
}

// TakeLog drains delivered log lines; once taken they are gone
func (w *World) TakeLog() []core.LogEntry {
	return w.log.Take()
}
