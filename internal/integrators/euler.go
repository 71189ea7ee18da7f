package integrators

import "github.com/san-kum/sketchlab/internal/dynamo"

// Euler is the explicit forward Euler method. Every component advances with
// the derivative evaluated at the start of the step, so positions move with
// the old velocities and velocities with the old accelerations.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(dyn dynamo.System, x dynamo.State, u dynamo.Control, t float64, dt float64) dynamo.State {
	result := make(dynamo.State, len(x))
	axpy(result, x, dt, dyn.Derive(x, u, t))
	return result
}
