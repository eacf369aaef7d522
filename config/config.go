// Package config loads runtime settings from a YAML file over compiled-in defaults.
package config

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/zbuffer/constants"
	"github.com/lixenwraith/zbuffer/input"
	"github.com/lixenwraith/zbuffer/render"
	"github.com/lixenwraith/zbuffer/stage"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// Config is the full runtime configuration
type Config struct {
	Window WindowConfig      `yaml:"window"`
	Layout LayoutConfig      `yaml:"layout"`
	World  WorldConfig       `yaml:"world"`
	Keys   map[string]string `yaml:"keys"`
	Debug  bool              `yaml:"debug"`
}

// WindowConfig sizes the frame; zero width or height means the terminal size at startup
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	MaxFPS int    `yaml:"max_fps"`
}

// LayoutConfig is the play screen panel geometry
type LayoutConfig struct {
	SidePanelWidth    int `yaml:"side_panel_width"`
	BottomPanelHeight int `yaml:"bottom_panel_height"`
	MapMinWidth       int `yaml:"map_min_width"`
	MapMinHeight      int `yaml:"map_min_height"`
}

// WorldConfig sizes and seeds new play worlds
type WorldConfig struct {
	Width  int   `yaml:"width"`
	Height int   `yaml:"height"`
	Seed   int64 `yaml:"seed"`
}

// Default returns the compiled-in configuration
func Default() Config {
	return Config{
		Window: WindowConfig{
			Title:  constants.WindowTitle,
			MaxFPS: constants.MaxFPS,
		},
		Layout: LayoutConfig{
			SidePanelWidth:    constants.SidePanelWidth,
			BottomPanelHeight: constants.BottomPanelHeight,
			MapMinWidth:       constants.MapMinWidth,
			MapMinHeight:      constants.MapMinHeight,
		},
		World: WorldConfig{
			Width:  constants.DefaultWorldWidth,
			Height: constants.DefaultWorldHeight,
			Seed:   constants.DefaultSeed,
		},
	}
}

// Load reads path over the defaults and validates the result
// A missing file yields the defaults
func Load(path string) (Config, error) {
	cfg := Default()

	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		log.Printf("config: %s not found, using defaults", path)
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	if err := Decode(f, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	log.Printf("config: loaded %s", path)
	return cfg, nil
}

// Decode reads YAML from r into cfg, rejecting unknown fields, then validates cfg
// Fields absent from the document keep their current value
func Decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse config: %w", err)
	}
	return cfg.Validate()
}

// Validate checks every numeric field and the keymap names
func (c Config) Validate() error {
	checks := []struct {
		name string
		v    int
		min  int
	}{
		{"window.width", c.Window.Width, 0},
		{"window.height", c.Window.Height, 0},
		{"window.max_fps", c.Window.MaxFPS, 1},
		{"layout.side_panel_width", c.Layout.SidePanelWidth, 0},
		{"layout.bottom_panel_height", c.Layout.BottomPanelHeight, 0},
		{"layout.map_min_width", c.Layout.MapMinWidth, 1},
		{"layout.map_min_height", c.Layout.MapMinHeight, 1},
		{"world.width", c.World.Width, 1},
		{"world.height", c.World.Height, 1},
	}
	for _, chk := range checks {
		if chk.v < chk.min {
			return fmt.Errorf("%w: %s must be at least %d, got %d", ErrInvalid, chk.name, chk.min, chk.v)
		}
	}

	if _, err := c.KeyTable(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// KeyTable returns the default bindings with the configured overrides applied
func (c Config) KeyTable() (*input.KeyTable, error) {
	keys := input.DefaultKeyTable()
	if err := keys.Override(c.Keys); err != nil {
		return nil, err
	}
	return keys, nil
}

// RenderLayout converts the layout section
func (c Config) RenderLayout() render.Layout {
	return render.Layout{
		SidePanelWidth:    c.Layout.SidePanelWidth,
		BottomPanelHeight: c.Layout.BottomPanelHeight,
		MapMinWidth:       c.Layout.MapMinWidth,
		MapMinHeight:      c.Layout.MapMinHeight,
	}
}

// StageConfig builds the stage configuration with keys as the binding table
func (c Config) StageConfig(keys *input.KeyTable) stage.Config {
	sc := stage.DefaultConfig()
	sc.Keys = keys
	sc.Title = c.Window.Title
	sc.WorldWidth = c.World.Width
	sc.WorldHeight = c.World.Height
	sc.Seed = c.World.Seed
	return sc
}

// FrameSize resolves the frame size, filling zero dimensions from the terminal size
func (c Config) FrameSize(termWidth, termHeight int) (int, int) {
	w, h := c.Window.Width, c.Window.Height
	if w == 0 {
		w = termWidth
	}
	if h == 0 {
		h = termHeight
	}
	return w, h
}
