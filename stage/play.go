package stage

import (
	"fmt"
	"log"

	"github.com/lixenwraith/zbuffer/engine"
	"github.com/lixenwraith/zbuffer/input"
	"github.com/lixenwraith/zbuffer/scene"
)

// Play is the active play stage; it owns the world and its scene
type Play struct {
	keys    *input.KeyTable
	cfg     Config
	world   *engine.World
	scene   *scene.Data
	builder scene.Builder
}

// NewPlay creates a fresh world and builds its first scene
func NewPlay(cfg Config) (*Play, error) {
	world, err := engine.NewWorld(cfg.WorldWidth, cfg.WorldHeight, cfg.Seed)
	if err != nil {
		return nil, fmt.Errorf("create world: %w", err)
	}
	if cfg.Populate {
		world.Populate()
	}
	world.Logf("Welcome. Move with the arrow keys, ESC for the menu.")

	p := &Play{
		keys:  cfg.keys(),
		cfg:   cfg,
		world: world,
		scene: scene.NewData(cfg.LogCapacity),
	}
	world.ProcessEvents()
	p.builder.Run(world, p.scene)
	return p, nil
}

func (p *Play) sealed() {}

// Kind implements Stage
func (p *Play) Kind() Kind {
	return KindPlay
}

// Tick implements Stage: intents, then time systems, then the scene pass
func (p *Play) Tick(elapsedMs uint32, events []input.Event) (Transition, error) {
	for _, intent := range p.keys.ResolveAll(events) {
		switch {
		case intent == input.IntentBack:
			log.Printf("stage: play -> menu after %s", p.scene.GameTime())
			return SwitchTo(NewMenu(p.cfg)), nil
		case intent == input.IntentWait:
			p.world.Logf("You wait.")
		case intent.IsMove():
			dx, dy := intent.Delta()
			p.world.MoveCursor(dx, dy)
		}
	}

	p.world.Advance(elapsedMs)
	p.world.ProcessEvents()
	p.builder.Run(p.world, p.scene)

	return Continue(), nil
}

// Scene returns the scene built by the last tick
func (p *Play) Scene() *scene.Data {
	return p.scene
}

// World returns the play world
func (p *Play) World() *engine.World {
	return p.world
}
