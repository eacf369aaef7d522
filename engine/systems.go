package engine

import (
	"github.com/yohamta/donburi"

	"github.com/lixenwraith/zbuffer/core"
)

// WanderIntervalMs is the period of one wander tick
const WanderIntervalMs = 250

var wanderSteps = [...]core.Location{
	{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0},
}

// MoveCursor steps the cursor by (dx, dy) and reports whether it moved
// Notable objects under the new position are logged
func (w *World) MoveCursor(dx, dy int) bool {
	next := w.bounds.Clamp(w.cursor.Offset(dx, dy))
	if next == w.cursor {
		return false
	}
	w.cursor = next
	w.inspect(next)
	return true
}

// Advance accumulates game time and runs time-driven systems
func (w *World) Advance(dtMs uint32) {
	w.elapsed += core.GameTime(dtMs)

	w.wanderAccum += dtMs
	for w.wanderAccum >= WanderIntervalMs {
		w.wanderAccum -= WanderIntervalMs
		w.wander()
	}
}

// Top returns the highest z-index object at loc
// Among equal z the last one visited wins, the same object the scene draws last
func (w *World) Top(loc core.Location) (core.VisibleObject, int, bool) {
	var (
		obj   core.VisibleObject
		z     int
		found bool
	)
	w.renderables.Each(w.ecs, func(entry *donburi.Entry) {
		if *Location.Get(entry) != loc {
			return
		}
		r := Renderable.Get(entry)
		if !found || r.ZIndex >= z {
			obj, z, found = r.Object, r.ZIndex, true
		}
	})
	return obj, z, found
}

// inspect logs the topmost notable object at loc
func (w *World) inspect(loc core.Location) {
	obj, z, ok := w.Top(loc)
	if !ok || !IsNotable(z) {
		return
	}
	w.Logf("You see a %s at %d:%d.", obj, loc.X, loc.Y)
}

// wander moves each wanderer whose stride elapsed one step in a random direction
func (w *World) wander() {
	w.wanderers.Each(w.ecs, func(entry *donburi.Entry) {
		wd := Wanderer.Get(entry)
		if wd.wait > 0 {
			wd.wait--
			return
		}
		wd.wait = wd.Stride - 1

		loc := Location.Get(entry)
		step := wanderSteps[w.rng.Intn(len(wanderSteps))]
		next := loc.Offset(step.X, step.Y)
		if !w.bounds.Contains(next) {
			return
		}
		*loc = next

		if next == w.cursor {
			obj := Renderable.Get(entry).Object
			w.Logf("A %s wanders under the cursor.", obj)
		}
	})
}
