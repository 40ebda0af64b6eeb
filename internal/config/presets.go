package config

import "sort"

var Presets = map[string]*Config{
	"small": {
		Width: 20, Height: 12, TickMs: 100, Generations: 100, Density: 0.35,
	},
	"standard": {
		Width: 40, Height: 20, TickMs: 100, Generations: 200, Density: 0.35,
	},
	"large": {
		Width: 120, Height: 48, TickMs: 50, Generations: 500, Density: 0.3,
	},
	"glider": {
		Width: 24, Height: 16, TickMs: 80, Generations: 200, Pattern: "glider",
	},
	"pulsar": {
		Width: 21, Height: 21, TickMs: 150, Generations: 60, Pattern: "pulsar",
	},
	"soup": {
		Width: 60, Height: 30, TickMs: 60, Generations: 1000, Density: 0.45,
	},
}

// GetPreset returns a copy of the named preset, or nil when unknown.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *p
	if c.TickMs == 0 {
		c.TickMs = DefaultTickMs
	}
	return &c
}

// ListPresets returns the preset names, sorted.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
