package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/lixenwraith/zbuffer/config"
	"github.com/lixenwraith/zbuffer/engine"
	"github.com/lixenwraith/zbuffer/game"
	"github.com/lixenwraith/zbuffer/input"
	"github.com/lixenwraith/zbuffer/terminal"
)

var (
	configFlag = flag.String("config", "zbuffer.yaml", "Path to the YAML config file")
	debugFlag  = flag.Bool("debug", false, "Write debug logs to logs/zbuffer.log")
	widthFlag  = flag.Int("width", -1, "Frame width, 0 for the terminal width (overrides config)")
	heightFlag = flag.Int("height", -1, "Frame height, 0 for the terminal height (overrides config)")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.HandleCrash(r)
		}
	}()

	flag.Parse()
	// Quiet until setupLogging knows whether debug is on
	log.SetOutput(io.Discard)

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "zbuffer: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logFile := setupLogging(*debugFlag || cfg.Debug)
	if logFile != nil {
		defer logFile.Close()
	}

	keys, err := cfg.KeyTable()
	if err != nil {
		return err
	}

	scr, err := terminal.New()
	if err != nil {
		return err
	}
	terminal.RegisterCrashScreen(scr)
	// Normal exit terminal cleanup
	defer scr.Fini()
	scr.SetTitle(cfg.Window.Title)

	width, height := cfg.FrameSize(scr.Size())
	g, err := game.New(game.Options{
		Width:  width,
		Height: height,
		Layout: cfg.RenderLayout(),
		MaxFPS: cfg.Window.MaxFPS,
		Stage:  cfg.StageConfig(keys),
		Source: scr,
		Keys:   input.NewHeldKeys(),
		Sink:   scr,
		Clock:  engine.NewMonotonicTimeProvider(),
	})
	if err != nil {
		return err
	}

	log.Printf("zbuffer: config %s, starting at %dx%d", *configFlag, width, height)
	return g.Run()
}

// loadConfig reads the config file and applies command-line overrides
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return cfg, err
	}
	if *widthFlag >= 0 {
		cfg.Window.Width = *widthFlag
	}
	if *heightFlag >= 0 {
		cfg.Window.Height = *heightFlag
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
