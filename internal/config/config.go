package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth       = 40
	DefaultHeight      = 20
	DefaultTickMs      = 100
	DefaultGenerations = 200
	DefaultDensity     = 0.35
)

// ErrInvalidConfig indicates a configuration that fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config describes a board setup and how a driver should run it.
type Config struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	TickMs      int     `yaml:"tick_ms"`
	Pattern     string  `yaml:"pattern"`
	Seed        int64   `yaml:"seed"`
	Generations int     `yaml:"generations"`
	Density     float64 `yaml:"density"`
}

func DefaultConfig() *Config {
	return &Config{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		TickMs:      DefaultTickMs,
		Generations: DefaultGenerations,
		Density:     DefaultDensity,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks invariants the engine and drivers rely on.
func (c *Config) Validate() error {
	if c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("%w: board %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.TickMs < 1 {
		return fmt.Errorf("%w: tick_ms %d", ErrInvalidConfig, c.TickMs)
	}
	if c.Generations < 0 {
		return fmt.Errorf("%w: generations %d", ErrInvalidConfig, c.Generations)
	}
	if c.Density < 0 || c.Density > 1 {
		return fmt.Errorf("%w: density %g", ErrInvalidConfig, c.Density)
	}
	return nil
}
