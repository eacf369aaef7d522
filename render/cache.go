package render

import (
	"fmt"
	"log"

	"github.com/lixenwraith/zbuffer/stage"
)

// Factory builds the renderer for a stage kind
type Factory func(kind stage.Kind) (Renderer, error)

// DefaultFactory builds play and menu renderers for a width x height frame
func DefaultFactory(width, height int, layout Layout) Factory {
	return func(kind stage.Kind) (Renderer, error) {
		switch kind {
		case stage.KindMenu:
			return NewMenuRenderer(width, height), nil
		case stage.KindPlay:
			return NewPlayRenderer(width, height, layout)
		}
		return nil, fmt.Errorf("no renderer for %s stage", kind)
	}
}

// Cache keeps the renderer of the current stage kind and rebuilds it only when the kind changes
type Cache struct {
	factory  Factory
	kind     stage.Kind
	renderer Renderer
	rebuilds int
}

// NewCache creates an empty cache
func NewCache(factory Factory) *Cache {
	return &Cache{factory: factory}
}

// Select returns the renderer for s, building one if the cache is empty or holds another kind
// On a build error the cache is left unchanged
func (c *Cache) Select(s stage.Stage) (Renderer, error) {
	kind := s.Kind()

	if c.renderer != nil && c.kind == kind {
		if c.renderer.Kind() != c.kind {
			panic(fmt.Sprintf("render: cached %s renderer tagged %s", c.renderer.Kind(), c.kind))
		}
		return c.renderer, nil
	}

	r, err := c.factory(kind)
	if err != nil {
		return nil, fmt.Errorf("build %s renderer: %w", kind, err)
	}
	if r.Kind() != kind {
		panic(fmt.Sprintf("render: factory built %s renderer for %s stage", r.Kind(), kind))
	}

	c.kind, c.renderer = kind, r
	c.rebuilds++
	log.Printf("render: renderer rebuilt for %s", kind)
	return r, nil
}

// Render selects the renderer for s and draws it
func (c *Cache) Render(s stage.Stage) (*Buffer, error) {
	r, err := c.Select(s)
	if err != nil {
		return nil, err
	}
	return r.Draw(s), nil
}

// Kind returns the kind of the cached renderer, KindNone when empty
func (c *Cache) Kind() stage.Kind {
	return c.kind
}

// Rebuilds returns how many renderers have been built
func (c *Cache) Rebuilds() int {
	return c.rebuilds
}
