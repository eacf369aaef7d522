package scene

import "github.com/lixenwraith/zbuffer/core"

// Source is the read side of the world the builder consumes
type Source interface {
	EachRenderable(fn func(loc core.Location, obj core.VisibleObject, z int))
	Cursor() core.Location
	// TakeLog drains pending entries; the source must not return them again
	TakeLog() []core.LogEntry
	ElapsedMillis() uint64
}

// Builder rebuilds scene data from the world once per frame
// Run it after all world updates for the frame are final
type Builder struct {
	passes uint64
}

// Run clears and repopulates d from src
func (b *Builder) Run(src Source, d *Data) {
	d.Clear()
	src.EachRenderable(d.Add)
	d.Update(src.Cursor(), src.TakeLog(), src.ElapsedMillis())
	b.passes++
}

// Passes returns how many times Run was called
func (b *Builder) Passes() uint64 {
	return b.passes
}
