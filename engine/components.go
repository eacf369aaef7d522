package engine

import (
	"github.com/yohamta/donburi"

	"github.com/lixenwraith/zbuffer/core"
)

// RenderableData marks an entity as drawable
type RenderableData struct {
	Object core.VisibleObject
	ZIndex int
}

// WandererData lets an entity roam on its own
type WandererData struct {
	// Stride is the number of wander ticks between steps
	Stride int
	wait   int
}

var (
	Location   = donburi.NewComponentType[core.Location]()
	Renderable = donburi.NewComponentType[RenderableData]()
	Wanderer   = donburi.NewComponentType[WandererData]()
)
