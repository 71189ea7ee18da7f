package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/sketchlab/internal/climate"
	"github.com/san-kum/sketchlab/internal/integrators"
	"github.com/san-kum/sketchlab/internal/pendulum"
	"github.com/san-kum/sketchlab/internal/physics"
)

const (
	DefaultSize   = 600
	DefaultFPS    = 30
	DefaultFrames = 600
	DefaultStride = 1
)

type Config struct {
	Canvas   CanvasConfig   `yaml:"canvas"`
	Spiral   SpiralConfig   `yaml:"spiral"`
	Pendulum PendulumConfig `yaml:"pendulum"`
	Output   OutputConfig   `yaml:"output"`
	LogLevel string         `yaml:"log_level"`
	LogFile  string         `yaml:"log_file,omitempty"`
}

type CanvasConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	FPS    int `yaml:"fps"`
}

type SpiralConfig struct {
	Data    string  `yaml:"data"`
	Missing string  `yaml:"missing"`
	Radius  float64 `yaml:"radius"`
}

type PendulumConfig struct {
	Count      int      `yaml:"count"`
	Theta1     float64  `yaml:"theta1"`
	Spread     float64  `yaml:"spread"`
	Theta2     float64  `yaml:"theta2"`
	Omega1     float64  `yaml:"omega1"`
	Omega2     float64  `yaml:"omega2"`
	Palette    []string `yaml:"palette"`
	Dt         float64  `yaml:"dt"`
	Gravity    float64  `yaml:"gravity"`
	L1         float64  `yaml:"l1"`
	L2         float64  `yaml:"l2"`
	M1         float64  `yaml:"m1"`
	M2         float64  `yaml:"m2"`
	Integrator string   `yaml:"integrator"`
}

// OutputConfig controls headless rendering. Frames of zero means one full
// pass of the sketch where that is defined.
type OutputConfig struct {
	Frames int    `yaml:"frames"`
	Stride int    `yaml:"stride"`
	Out    string `yaml:"out"`
	PNGDir string `yaml:"png_dir,omitempty"`
}

func DefaultConfig() *Config {
	opts := pendulum.DefaultOptions()
	return &Config{
		Canvas: CanvasConfig{
			Width:  DefaultSize,
			Height: DefaultSize,
			FPS:    DefaultFPS,
		},
		Spiral: SpiralConfig{
			Missing: climate.DefaultMissing,
			Radius:  climate.DefaultRadius,
		},
		Pendulum: PendulumConfig{
			Count:      opts.Count,
			Theta1:     opts.Theta1,
			Spread:     opts.Spread,
			Theta2:     opts.Theta2,
			Omega1:     opts.Omega1,
			Omega2:     opts.Omega2,
			Palette:    append([]string(nil), opts.Palette...),
			Dt:         physics.DefaultDt,
			Gravity:    physics.DefaultGravity,
			L1:         physics.DefaultLength,
			L2:         physics.DefaultLength,
			M1:         physics.DefaultMass,
			M2:         physics.DefaultMass,
			Integrator: opts.Integrator,
		},
		Output: OutputConfig{
			Frames: DefaultFrames,
			Stride: DefaultStride,
		},
		LogLevel: "info",
	}
}

// Load reads a YAML file on top of the defaults, so a partial file only
// overrides what it names.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
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

var ErrInvalid = errors.New("invalid config")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

func (c *Config) Validate() error {
	switch {
	case c.Canvas.Width <= 0 || c.Canvas.Height <= 0:
		return invalid("canvas size must be positive, got %dx%d", c.Canvas.Width, c.Canvas.Height)
	case c.Canvas.FPS <= 0:
		return invalid("fps must be positive, got %d", c.Canvas.FPS)
	case c.Spiral.Radius <= 0:
		return invalid("spiral radius must be positive, got %g", c.Spiral.Radius)
	case c.Pendulum.Count <= 0:
		return invalid("pendulum count must be positive, got %d", c.Pendulum.Count)
	case c.Pendulum.Dt <= 0 || math.IsNaN(c.Pendulum.Dt):
		return invalid("dt must be positive, got %g", c.Pendulum.Dt)
	case c.Pendulum.L1 <= 0 || c.Pendulum.L2 <= 0:
		return invalid("arm lengths must be positive")
	case c.Pendulum.M1 <= 0 || c.Pendulum.M2 <= 0:
		return invalid("masses must be positive")
	case c.Output.Frames < 0:
		return invalid("frames must not be negative, got %d", c.Output.Frames)
	case c.Output.Stride < 1:
		return invalid("stride must be at least 1, got %d", c.Output.Stride)
	}
	if _, err := integrators.New(c.Pendulum.Integrator); err != nil {
		return invalid("%v", err)
	}
	return nil
}

// PendulumOptions converts the pendulum section into field options.
func (c *Config) PendulumOptions() pendulum.Options {
	p := c.Pendulum
	return pendulum.Options{
		Count:      p.Count,
		Theta1:     p.Theta1,
		Spread:     p.Spread,
		Theta2:     p.Theta2,
		Omega1:     p.Omega1,
		Omega2:     p.Omega2,
		Palette:    append([]string(nil), p.Palette...),
		Dt:         p.Dt,
		Gravity:    p.Gravity,
		L1:         p.L1,
		L2:         p.L2,
		M1:         p.M1,
		M2:         p.M2,
		Integrator: p.Integrator,
	}
}
