package config

import (
	"math"
	"sort"
)

// Presets are overlays on DefaultConfig, grouped by sketch.
var Presets = map[string]map[string]func(*Config){
	"pendulums": {
		"wide": func(c *Config) {
			c.Pendulum.Count = 6
			c.Pendulum.Spread = 0.25
		},
		"calm": func(c *Config) {
			c.Pendulum.Theta1 = 0.2
			c.Pendulum.Theta2 = 0.1
			c.Pendulum.Omega1 = 0
			c.Pendulum.Spread = 0.02
		},
		"chaos": func(c *Config) {
			c.Pendulum.Count = 6
			c.Pendulum.Theta1 = 3 * math.Pi / 4
			c.Pendulum.Theta2 = math.Pi
			c.Pendulum.Spread = 0.001
		},
		"rk4": func(c *Config) {
			c.Pendulum.Integrator = "rk4"
		},
		"classic": func(*Config) {},
	},
	"spiral": {
		"slow": func(c *Config) {
			c.Canvas.FPS = 10
		},
		"fast": func(c *Config) {
			c.Canvas.FPS = 60
			c.Output.Stride = 2
		},
	},
}

// GetPreset returns a fresh config with the named preset applied, or nil.
func GetPreset(sketch, preset string) *Config {
	group, ok := Presets[sketch]
	if !ok {
		return nil
	}
	apply, ok := group[preset]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

// FindPreset looks a preset up by name across every sketch.
func FindPreset(preset string) (*Config, string) {
	for _, sketch := range Sketches() {
		if cfg := GetPreset(sketch, preset); cfg != nil {
			return cfg, sketch
		}
	}
	return nil, ""
}

// Apply overlays the named preset onto c. It reports whether the preset exists.
func (c *Config) Apply(preset string) bool {
	for _, sketch := range Sketches() {
		if apply, ok := Presets[sketch][preset]; ok {
			apply(c)
			return true
		}
	}
	return false
}

func ListPresets(sketch string) []string {
	group, ok := Presets[sketch]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(group))
	for name := range group {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func Sketches() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
