package engine

import (
	"github.com/lixenwraith/zbuffer/core"
)

// Terrain generation densities, per mille
const (
	waterSeedPerMille    = 6
	rockPerMille         = 25
	treePerMille         = 90
	mushroomPerMille     = 8
	creaturesPerThousand = 3 // per thousand cells
	waterPoolRadius      = 3
)

// Populate fills the world with terrain, features and a few wanderers
// Output depends only on the world seed and size
func (w *World) Populate() {
	width, height := w.bounds.Width(), w.bounds.Height()

	water := make(map[core.Location]bool)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if w.rng.Intn(1000) < waterSeedPerMille {
				w.pool(core.Location{X: x, Y: y}, water)
			}
		}
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			loc := core.Location{X: x, Y: y}
			if water[loc] {
				w.Spawn(loc, core.ObjectWater, ZIndexTerrain)
				continue
			}

			ground := core.ObjectGrass
			if w.rng.Intn(4) == 0 {
				ground = core.ObjectDirt
			}
			w.Spawn(loc, ground, ZIndexTerrain)

			roll := w.rng.Intn(1000)
			switch {
			case roll < rockPerMille:
				w.Spawn(loc, core.ObjectRock, ZIndexFeature)
			case roll < rockPerMille+treePerMille:
				w.Spawn(loc, core.ObjectTree, ZIndexFeature)
			case roll < rockPerMille+treePerMille+mushroomPerMille:
				w.Spawn(loc, core.ObjectMushroom, ZIndexItem)
			}
		}
	}

	creatures := max(1, width*height*creaturesPerThousand/1000)
	for i := 0; i < creatures; i++ {
		loc := core.Location{X: w.rng.Intn(width), Y: w.rng.Intn(height)}
		if i%3 == 2 {
			w.SpawnWanderer(loc, core.ObjectFox, 2)
		} else {
			w.SpawnWanderer(loc, core.ObjectRabbit, 1)
		}
	}
}

// pool marks a roughly circular patch of water around center
func (w *World) pool(center core.Location, water map[core.Location]bool) {
	r := waterPoolRadius
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy > r*r {
				continue
			}
			loc := center.Offset(dx, dy)
			if w.bounds.Contains(loc) {
				water[loc] = true
			}
		}
	}
}
