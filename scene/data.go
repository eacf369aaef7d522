package scene

import (
	"github.com/lixenwraith/zbuffer/core"
)

// Placement is one visible object at a location
type Placement struct {
	Object core.VisibleObject
	ZIndex int
}

// Data is the per-frame visual state consumed by renderers
// The object mapping is rebuilt from scratch by every Builder pass
type Data struct {
	objects map[core.Location][]Placement
	count   int

	cursor  core.Location
	log     *LogBuffer
	elapsed core.GameTime
}

// NewData creates empty scene data keeping logLimit log entries
func NewData(logLimit int) *Data {
	return &Data{
		objects: make(map[core.Location][]Placement),
		log:     NewLogBuffer(logLimit),
	}
}

// Clear removes every object placement; cursor, log and time are kept
func (d *Data) Clear() {
	clear(d.objects)
	d.count = 0
}

// Add places obj at loc keeping the location's sequence sorted by z ascending
// Equal z keeps insertion order
func (d *Data) Add(loc core.Location, obj core.VisibleObject, z int) {
	seq := d.objects[loc]

	// Insert after the last element with ZIndex <= z; scanning from the end keeps the common
	// ascending-insert case O(1)
	pos := len(seq)
	for pos > 0 && seq[pos-1].ZIndex > z {
		pos--
	}
	seq = append(seq, Placement{})
	copy(seq[pos+1:], seq[pos:])
	seq[pos] = Placement{Object: obj, ZIndex: z}

	d.objects[loc] = seq
	d.count++
}

// Update sets the cursor, appends taken log entries and stamps the time
func (d *Data) Update(cursor core.Location, entries []core.LogEntry, elapsedMs uint64) {
	d.cursor = cursor
	d.log.Push(entries...)
	d.elapsed = core.GameTime(elapsedMs)
}

// Len returns the number of placements this frame
func (d *Data) Len() int {
	return d.count
}

// Locations returns the number of occupied locations
func (d *Data) Locations() int {
	return len(d.objects)
}

// Cursor returns the cursor location
func (d *Data) Cursor() core.Location {
	return d.cursor
}

// ElapsedMillis returns the stamped game time in milliseconds
func (d *Data) ElapsedMillis() uint64 {
	return d.elapsed.Millis()
}

// GameTime returns the stamped game time
func (d *Data) GameTime() core.GameTime {
	return d.elapsed
}

// ObjectsAt returns the placements at loc in draw order
// The slice is owned by the scene and valid until the next Clear
func (d *Data) ObjectsAt(loc core.Location) []Placement {
	return d.objects[loc]
}

// Top returns the last drawn placement at loc
func (d *Data) Top(loc core.Location) (Placement, bool) {
	seq := d.objects[loc]
	if len(seq) == 0 {
		return Placement{}, false
	}
	return seq[len(seq)-1], true
}

// ForEachInRect visits occupied locations inside r, in no particular order
func (d *Data) ForEachInRect(r core.Rectangle, fn func(loc core.Location, objects []Placement)) {
	// Walk whichever side is smaller
	if r.Width()*r.Height() < len(d.objects) {
		for y := r.MinY; y <= r.MaxY; y++ {
			for x := r.MinX; x <= r.MaxX; x++ {
				loc := core.Location{X: x, Y: y}
				if seq := d.objects[loc]; len(seq) > 0 {
					fn(loc, seq)
				}
			}
		}
		return
	}

	for loc, seq := range d.objects {
		if len(seq) > 0 && r.Contains(loc) {
			fn(loc, seq)
		}
	}
}

// Log returns the log buffer
func (d *Data) Log() *LogBuffer {
	return d.log
}

// RecentLog returns up to n log entries, newest first
func (d *Data) RecentLog(n int) []core.LogEntry {
	return d.log.Recent(n)
}
