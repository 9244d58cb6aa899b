// Package demo holds the shared setup for the example programs: environment
// configuration, logging and a small drawing palette.
package demo

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/phanxgames/hitgraph"
)

// Config is read from HITGRAPH_* environment variables.
type Config struct {
	Width       int           `env:"HITGRAPH_WIDTH"        envDefault:"640"`
	Height      int           `env:"HITGRAPH_HEIGHT"       envDefault:"480"`
	ShowFPS     bool          `env:"HITGRAPH_SHOW_FPS"     envDefault:"true"`
	Debug       bool          `env:"HITGRAPH_DEBUG"        envDefault:"false"`
	LogLevel    slog.Level    `env:"HITGRAPH_LOG_LEVEL"    envDefault:"info"`
	DoubleClick time.Duration `env:"HITGRAPH_DOUBLE_CLICK" envDefault:"500ms"`
	// Script is the path of a JSON input script to replay on start.
	Script string `env:"HITGRAPH_SCRIPT"`
}

// LoadConfig parses the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return Config{}, fmt.Errorf("parse env: window size %dx%d must be positive", cfg.Width, cfg.Height)
	}
	return cfg, nil
}

// Surface returns the dispatch surface for an Ebitengine window of the
// configured size.
func (c Config) Surface() hitgraph.Rect {
	return hitgraph.Rect{Width: float64(c.Width), Height: float64(c.Height)}
}

// InstallLogger routes hitgraph diagnostics to stderr at the configured
// level. Debug dispatch timing is only visible at LogLevel=debug.
func (c Config) InstallLogger() *slog.Logger {
	l := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: c.LogLevel}))
	hitgraph.SetLogger(l)
	return l
}

// NewInput wires a registry, dispatcher and gesture recognizer for the
// configured surface.
func (c Config) NewInput() (*hitgraph.Registry, *hitgraph.Input) {
	reg := hitgraph.NewRegistry()
	d := hitgraph.NewDispatcher(reg, c.Surface())
	d.SetDebugMode(c.Debug)
	in := hitgraph.NewInput(d)
	in.DoubleClickInterval = c.DoubleClick
	return reg, in
}

// LoadScript reads the configured input script. It returns nil when no
// script is configured.
func (c Config) LoadScript() (*hitgraph.TestRunner, error) {
	if c.Script == "" {
		return nil, nil
	}
	data, err := os.ReadFile(c.Script)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	runner, err := hitgraph.LoadTestScript(data)
	if err != nil {
		return nil, fmt.Errorf("load script %s: %w", c.Script, err)
	}
	return runner, nil
}
