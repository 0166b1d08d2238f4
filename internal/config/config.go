package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/san-kum/cfdsteps/internal/viz"
	"gopkg.in/yaml.v3"
)

const (
	DefaultScheme   = "1"
	DefaultFrontend = "gui"
	DefaultFPS      = 60
	DefaultWidth    = 800
	DefaultHeight   = 600
	DefaultPalette  = "viridis"
)

var (
	ErrUnknownScheme   = errors.New("config: unknown scheme")
	ErrUnknownFrontend = errors.New("config: unknown frontend")
	ErrInvalidWindow   = errors.New("config: fps and window size must be positive")
)

// Config holds host settings. Physics constants are fixed per scheme and do
// not appear here.
type Config struct {
	Scheme   string `yaml:"scheme" env:"CFDSTEPS_SCHEME"`
	Frontend string `yaml:"frontend" env:"CFDSTEPS_FRONTEND"`
	FPS      int    `yaml:"fps" env:"CFDSTEPS_FPS"`
	Width    int    `yaml:"width" env:"CFDSTEPS_WIDTH"`
	Height   int    `yaml:"height" env:"CFDSTEPS_HEIGHT"`
	Palette  string `yaml:"palette" env:"CFDSTEPS_PALETTE"`
}

func DefaultConfig() *Config {
	return &Config{
		Scheme:   DefaultScheme,
		Frontend: DefaultFrontend,
		FPS:      DefaultFPS,
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		Palette:  DefaultPalette,
	}
}

// Load reads path over the defaults, then applies CFDSTEPS_* environment
// overrides. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

// ApplyEnv overwrites fields whose environment variable is set.
func ApplyEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if _, err := ResolveScheme(c.Scheme); err != nil {
		return err
	}
	if c.Frontend != "gui" && c.Frontend != "tui" {
		return fmt.Errorf("%w: %q", ErrUnknownFrontend, c.Frontend)
	}
	if c.FPS <= 0 || c.Width <= 0 || c.Height <= 0 {
		return ErrInvalidWindow
	}
	if _, err := viz.NewPalette(c.Palette); err != nil {
		return err
	}
	return nil
}
