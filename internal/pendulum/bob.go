package pendulum

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/sketchlab/internal/dynamo"
	"github.com/san-kum/sketchlab/internal/integrators"
	"github.com/san-kum/sketchlab/internal/physics"
	"github.com/san-kum/sketchlab/internal/render"
)

// Bob is one double pendulum with its own parameters, state and colour.
type Bob struct {
	System *physics.DoublePendulum
	State  dynamo.State
	Color  colorful.Color

	integ dynamo.Integrator
	dt    float64
	steps int
}

// NewBob builds a pendulum with the default arms and masses stepped by
// forward Euler.
func NewBob(theta1, theta2, omega1, omega2 float64, c colorful.Color) *Bob {
	return &Bob{
		System: physics.NewDoublePendulum(),
		State:  dynamo.State{theta1, theta2, omega1, omega2},
		Color:  c,
		integ:  integrators.NewEuler(),
		dt:     physics.DefaultDt,
	}
}

func (b *Bob) Steps() int { return b.steps }

func (b *Bob) Energy() float64 { return b.System.Energy(b.State) }

// Update advances the pendulum by one time step in place.
func (b *Bob) Update() error {
	if err := dynamo.CheckDim(b.System, b.State); err != nil {
		return &dynamo.StepError{Step: b.steps, State: b.State.Clone(), Wrapped: err}
	}
	next := b.integ.Step(b.System, b.State, nil, float64(b.steps)*b.dt, b.dt)
	if !next.IsValid() {
		return &dynamo.StepError{Step: b.steps, State: b.State.Clone(), Wrapped: dynamo.ErrInvalidState}
	}
	b.State = next
	b.steps++
	return nil
}

// Tip returns the outer bob position relative to the pivot.
func (b *Bob) Tip() (float64, float64) {
	_, _, x2, y2 := b.System.Positions(b.State)
	return x2, y2
}

// Draw renders both arms and bobs relative to the surface's current origin.
func (b *Bob) Draw(sf render.Surface) {
	x1, y1, x2, y2 := b.System.Positions(b.State)

	sf.Push()
	sf.Stroke(b.Color)
	sf.Fill(b.Color)

	sf.Line(0, 0, x1, y1)
	sf.Circle(x1, y1, 2*b.System.M1)

	sf.Line(x1, y1, x2, y2)
	sf.Circle(x2, y2, 2*b.System.M2)

	sf.Pop()
}
