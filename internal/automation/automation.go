package automation

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/sketchlab/internal/climate"
	"github.com/san-kum/sketchlab/internal/config"
	"github.com/san-kum/sketchlab/internal/pendulum"
	"github.com/san-kum/sketchlab/internal/render"
	"github.com/san-kum/sketchlab/internal/sketch"
)

// Scenario is a scripted list of headless renders.
type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Steps       []Step `yaml:"steps"`
}

// Step renders one sketch. Preset and Params are applied on top of the base
// config in that order. Frames of zero renders one loop of a looping sketch
// and output.frames otherwise.
type Step struct {
	Sketch string             `yaml:"sketch"`
	Preset string             `yaml:"preset,omitempty"`
	Data   string             `yaml:"data,omitempty"`
	Out    string             `yaml:"out,omitempty"`
	PNGDir string             `yaml:"png_dir,omitempty"`
	Frames int                `yaml:"frames,omitempty"`
	Params map[string]float64 `yaml:"params,omitempty"`
}

var ErrEmptyScenario = errors.New("scenario has no steps")

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(scenario.Steps) == 0 {
		return nil, ErrEmptyScenario
	}
	for i, step := range scenario.Steps {
		if step.Sketch != "spiral" && step.Sketch != "pendulums" {
			return nil, fmt.Errorf("step %d: unknown sketch %q", i+1, step.Sketch)
		}
		if step.Out == "" && step.PNGDir == "" {
			return nil, fmt.Errorf("step %d: needs out or png_dir", i+1)
		}
	}
	return &scenario, nil
}

// NewSketch builds the named sketch from cfg. The spiral loads its table
// from cfg.Spiral.Data.
func NewSketch(cfg *config.Config, name string) (sketch.Sketch, error) {
	switch name {
	case "spiral":
		if cfg.Spiral.Data == "" {
			return nil, fmt.Errorf("no climate table given (pass a csv path or set spiral.data)")
		}
		table, err := climate.Open(cfg.Spiral.Data, cfg.Spiral.Missing)
		if err != nil {
			return nil, err
		}
		return climate.NewSketch(table, cfg.Spiral.Radius), nil
	case "pendulums":
		return pendulum.NewSketch(cfg.PendulumOptions()), nil
	default:
		return nil, fmt.Errorf("unknown sketch: %s (available: spiral, pendulums)", name)
	}
}

type looper interface {
	FramesPerLoop() int
}

// Render draws frames of sk onto a raster sized by cfg and writes them as an
// animated GIF at out, or as PNG frames when cfg.Output.PNGDir is set.
func Render(ctx context.Context, cfg *config.Config, sk sketch.Sketch, frames int, out string) error {
	if frames <= 0 {
		frames = cfg.Output.Frames
		if l, ok := sk.(looper); ok {
			frames = l.FramesPerLoop()
		}
	}

	host := sketch.NewHost(sk, render.NewRaster(cfg.Canvas.Width, cfg.Canvas.Height))

	var sink sketch.FrameSink
	if cfg.Output.PNGDir != "" {
		s, err := sketch.NewPNGSink(cfg.Output.PNGDir, cfg.Output.Stride)
		if err != nil {
			return err
		}
		sink = s
	} else {
		sink = sketch.NewGIFSink(out, cfg.Canvas.FPS, cfg.Output.Stride)
	}

	log.Info().
		Str("sketch", sk.Name()).
		Int("frames", frames).
		Int("width", cfg.Canvas.Width).
		Int("height", cfg.Canvas.Height).
		Msg("rendering")
	return host.Run(ctx, frames, sink)
}

// RunScenario renders every step in order and stops at the first failure.
func RunScenario(ctx context.Context, base *config.Config, scenario *Scenario) error {
	for i, step := range scenario.Steps {
		cfg, err := step.Config(base)
		if err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}

		sk, err := NewSketch(cfg, step.Sketch)
		if err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}

		log.Info().Int("step", i+1).Int("of", len(scenario.Steps)).Str("sketch", step.Sketch).Msg("scenario step")
		if err := Render(ctx, cfg, sk, step.Frames, step.Out); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return nil
}

// Config derives the step's effective config from a copy of base.
func (s Step) Config(base *config.Config) (*config.Config, error) {
	cfg := *base
	cfg.Pendulum.Palette = append([]string(nil), base.Pendulum.Palette...)

	if s.Preset != "" && !cfg.Apply(s.Preset) {
		return nil, fmt.Errorf("unknown preset: %s", s.Preset)
	}
	if s.Data != "" {
		cfg.Spiral.Data = s.Data
	}
	if s.PNGDir != "" {
		cfg.Output.PNGDir = s.PNGDir
	}

	names := make([]string, 0, len(s.Params))
	for name := range s.Params {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := setParam(&cfg, name, s.Params[name]); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setParam(cfg *config.Config, name string, v float64) error {
	p := &cfg.Pendulum
	switch name {
	case "count":
		p.Count = int(v)
	case "theta1":
		p.Theta1 = v
	case "spread":
		p.Spread = v
	case "theta2":
		p.Theta2 = v
	case "omega1":
		p.Omega1 = v
	case "omega2":
		p.Omega2 = v
	case "dt":
		p.Dt = v
	case "g", "gravity":
		p.Gravity = v
	case "l1":
		p.L1 = v
	case "l2":
		p.L2 = v
	case "m1":
		p.M1 = v
	case "m2":
		p.M2 = v
	case "radius":
		cfg.Spiral.Radius = v
	case "fps":
		cfg.Canvas.FPS = int(v)
	case "stride":
		cfg.Output.Stride = int(v)
	case "size":
		cfg.Canvas.Width, cfg.Canvas.Height = int(v), int(v)
	default:
		return fmt.Errorf("unknown parameter: %s", name)
	}
	return nil
}
