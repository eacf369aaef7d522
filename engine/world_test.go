package engine

import (
	"errors"
	"strings"
	"testing"

	"github.com/lixenwraith/zbuffer/core"
)

func newTestWorld(t *testing.T, w, h int) *World {
	t.Helper()
	world, err := NewWorld(w, h, 42)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	return world
}

func TestNewWorldRejectsInvalidSize(t *testing.T) {
	for _, size := range [][2]int{{0, 10}, {10, 0}, {-1, -1}} {
		if _, err := NewWorld(size[0], size[1], 1); !errors.Is(err, ErrInvalidWorldSize) {
			t.Errorf("Size %v: expected ErrInvalidWorldSize, got %v", size, err)
		}
	}
}

func TestEachRenderableSkipsNonRenderable(t *testing.T) {
	w := newTestWorld(t, 10, 10)
	if w.Len() != 0 {
		t.Fatalf("Expected fresh world to hold no entities, got %d", w.Len())
	}
	w.Spawn(core.Location{X: 1, Y: 1}, core.ObjectTree, ZIndexFeature)
	w.Spawn(core.Location{X: 2, Y: 2}, core.ObjectGrass, ZIndexTerrain)

	// Location without Renderable must not be visited
	w.ecs.Create(Location)

	seen := 0
	w.EachRenderable(func(loc core.Location, obj core.VisibleObject, z int) {
		seen++
		if obj == core.ObjectTree && (loc != core.Location{X: 1, Y: 1} || z != ZIndexFeature) {
			t.Errorf("Unexpected tree placement %v z=%d", loc, z)
		}
	})
	if seen != 2 {
		t.Errorf("Expected 2 renderables, got %d", seen)
	}
	if w.Len() != 3 {
		t.Errorf("Expected 3 entities, got %d", w.Len())
	}
}

func TestMoveCursorClampsAndLogs(t *testing.T) {
	w := newTestWorld(t, 5, 5)
	w.SetCursor(core.Location{X: 0, Y: 0})
	w.Spawn(core.Location{X: 1, Y: 0}, core.ObjectGrass, ZIndexTerrain)
	w.Spawn(core.Location{X: 1, Y: 0}, core.ObjectTree, ZIndexFeature)

	if w.MoveCursor(-1, 0) {
		t.Error("Expected move past the edge to be rejected")
	}
	if !w.MoveCursor(1, 0) {
		t.Fatal("Expected move right to succeed")
	}
	if w.Cursor() != (core.Location{X: 1, Y: 0}) {
		t.Errorf("Expected cursor at (1,0), got %v", w.Cursor())
	}

	// Published but not yet delivered
	if got := len(w.TakeLog()); got != 0 {
		t.Errorf("Expected no log lines before ProcessEvents, got %d", got)
	}
	w.ProcessEvents()

	lines := w.TakeLog()
	if len(lines) != 1 || !strings.Contains(lines[0].Text, "Tree") {
		t.Fatalf("Expected one line mentioning the tree, got %+v", lines)
	}
	if got := len(w.TakeLog()); got != 0 {
		t.Errorf("Expected log to be empty after take, got %d", got)
	}
}

func TestTopPrefersHighestZ(t *testing.T) {
	w := newTestWorld(t, 3, 3)
	loc := core.Location{X: 1, Y: 1}
	w.Spawn(loc, core.ObjectMushroom, ZIndexItem)
	w.Spawn(loc, core.ObjectGrass, ZIndexTerrain)

	obj, z, ok := w.Top(loc)
	if !ok || obj != core.ObjectMushroom || z != ZIndexItem {
		t.Errorf("Expected mushroom on top, got %v z=%d ok=%v", obj, z, ok)
	}

	// Equal z: the object visited last is the one drawn on top
	w.SpawnWanderer(loc, core.ObjectRabbit, 1)
	w.SpawnWanderer(loc, core.ObjectFox, 1)
	var last core.VisibleObject
	w.EachRenderable(func(l core.Location, o core.VisibleObject, z int) {
		if l == loc && z == ZIndexCreature {
			last = o
		}
	})
	if last != core.ObjectFox {
		t.Fatalf("Expected fox visited last, got %v", last)
	}
	if obj, _, _ := w.Top(loc); obj != last {
		t.Errorf("Expected %v on top, got %v", last, obj)
	}

	if _, _, ok := w.Top(core.Location{X: 0, Y: 0}); ok {
		t.Error("Expected empty location to have no top object")
	}
}

func TestAdvanceMovesWanderersInBounds(t *testing.T) {
	w := newTestWorld(t, 4, 4)
	e := w.SpawnWanderer(core.Location{X: 0, Y: 0}, core.ObjectRabbit, 1)

	start, _ := w.LocationOf(e)
	moved := false
	for i := 0; i < 40; i++ {
		w.Advance(WanderIntervalMs)
		loc, ok := w.LocationOf(e)
		if !ok {
			t.Fatal("Expected wanderer to keep its location")
		}
		if !w.Bounds().Contains(loc) {
			t.Fatalf("Wanderer left the world: %v", loc)
		}
		if loc != start {
			moved = true
		}
	}
	if !moved {
		t.Error("Expected wanderer to move at least once in 40 ticks")
	}
	if got := w.ElapsedMillis(); got != 40*WanderIntervalMs {
		t.Errorf("Expected elapsed %d, got %d", 40*WanderIntervalMs, got)
	}
}

func TestPopulateIsDeterministic(t *testing.T) {
	collect := func() map[core.Location][]core.VisibleObject {
		w := newTestWorld(t, 24, 12)
		w.Populate()
		out := make(map[core.Location][]core.VisibleObject)
		w.EachRenderable(func(loc core.Location, obj core.VisibleObject, z int) {
			if z == ZIndexCreature {
				return
			}
			out[loc] = append(out[loc], obj)
		})
		return out
	}

	a, b := collect(), collect()
	if len(a) != 24*12 {
		t.Errorf("Expected every cell to have terrain, got %d cells", len(a))
	}
	for loc, objs := range a {
		if len(b[loc]) != len(objs) {
			t.Fatalf("Expected same population at %v, got %v vs %v", loc, objs, b[loc])
		}
	}
}
