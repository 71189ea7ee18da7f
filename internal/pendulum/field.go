package pendulum

import (
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog/log"

	"github.com/san-kum/sketchlab/internal/dynamo"
	"github.com/san-kum/sketchlab/internal/integrators"
	"github.com/san-kum/sketchlab/internal/physics"
	"github.com/san-kum/sketchlab/internal/render"
)

// DefaultPalette is the pink-to-navy ramp the field colours its pendulums with.
var DefaultPalette = []string{"#f9d1d1", "#ffa4b6", "#f765a3", "#a155b9", "#165baa", "#0b1354"}

// Options seeds a field. Pendulum i starts at Theta1 + i*Spread; every other
// initial value is shared.
type Options struct {
	Count  int
	Theta1 float64
	Spread float64
	Theta2 float64
	Omega1 float64
	Omega2 float64

	Palette []string

	Dt         float64
	Gravity    float64
	L1, L2     float64
	M1, M2     float64
	Integrator string
}

func DefaultOptions() Options {
	return Options{
		Count:      4,
		Theta1:     math.Pi / 4,
		Spread:     0.1,
		Theta2:     math.Pi / 8,
		Omega1:     0.1,
		Omega2:     0,
		Palette:    DefaultPalette,
		Dt:         physics.DefaultDt,
		Gravity:    physics.DefaultGravity,
		L1:         physics.DefaultLength,
		L2:         physics.DefaultLength,
		M1:         physics.DefaultMass,
		M2:         physics.DefaultMass,
		Integrator: "euler",
	}
}

// Field owns a fixed set of independent pendulums.
type Field struct {
	Bobs   []*Bob
	frozen []bool
}

func NewField(opts Options) (*Field, error) {
	if opts.Count <= 0 {
		return nil, fmt.Errorf("pendulum count must be positive, got %d", opts.Count)
	}
	if opts.Dt <= 0 {
		return nil, fmt.Errorf("dt must be positive, got %f", opts.Dt)
	}
	if len(opts.Palette) == 0 {
		opts.Palette = DefaultPalette
	}
	palette, err := render.ParsePalette(opts.Palette)
	if err != nil {
		return nil, err
	}

	f := &Field{
		Bobs:   make([]*Bob, 0, opts.Count),
		frozen: make([]bool, opts.Count),
	}

	theta := opts.Theta1
	for i := 0; i < opts.Count; i++ {
		integ, err := integrators.New(opts.Integrator)
		if err != nil {
			return nil, err
		}
		b := NewBob(theta, opts.Theta2, opts.Omega1, opts.Omega2, palette[i%len(palette)])
		b.integ = integ
		b.dt = opts.Dt
		for name, v := range map[string]float64{"g": opts.Gravity, "l1": opts.L1, "l2": opts.L2, "m1": opts.M1, "m2": opts.M2} {
			if err := b.System.SetParam(name, v); err != nil {
				return nil, err
			}
		}
		f.Bobs = append(f.Bobs, b)
		theta += opts.Spread
	}

	return f, nil
}

// UpdateBob steps pendulum i. A pendulum whose state diverges is frozen and
// reported once.
func (f *Field) UpdateBob(i int) {
	if f.frozen[i] {
		return
	}
	if err := f.Bobs[i].Update(); err != nil {
		f.frozen[i] = true
		var se *dynamo.StepError
		if errors.As(err, &se) {
			log.Warn().Err(err).Int("pendulum", i).Int("step", se.Step).Msg("pendulum frozen")
		}
	}
}

// Update steps every pendulum once.
func (f *Field) Update() {
	for i := range f.Bobs {
		f.UpdateBob(i)
	}
}

func (f *Field) Frozen(i int) bool { return f.frozen[i] }

// Energies returns the current total energy of each pendulum.
func (f *Field) Energies() []float64 {
	out := make([]float64, len(f.Bobs))
	for i, b := range f.Bobs {
		out[i] = b.Energy()
	}
	return out
}
