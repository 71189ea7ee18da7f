package analysis

import (
	"math"

	"github.com/san-kum/sketchlab/internal/dynamo"
)

// DefaultPerturbation is the initial twin offset in the first coordinate.
const DefaultPerturbation = 1e-8

// Lyapunov estimates the largest Lyapunov exponent of dyn starting at x0
// with the Benettin method: the twin trajectory is pulled back to distance
// eps after every step and the log growth averaged over time.
//
// It returns NaN when either trajectory leaves the finite range.
func Lyapunov(dyn dynamo.System, integ dynamo.Integrator, x0 dynamo.State, dt float64, steps int, eps float64) float64 {
	if len(x0) == 0 || steps <= 0 || dt <= 0 {
		return 0
	}
	if eps <= 0 {
		eps = DefaultPerturbation
	}

	x := x0.Clone()
	xp := x0.Clone()
	xp[0] += eps

	sumLog := 0.0
	for i := 0; i < steps; i++ {
		t := float64(i) * dt
		x = integ.Step(dyn, x, nil, t, dt)
		xp = integ.Step(dyn, xp, nil, t, dt)
		if !x.IsValid() || !xp.IsValid() {
			return math.NaN()
		}

		sep := distance(x, xp)
		if sep == 0 {
			// twins merged in floating point, restart the offset
			xp = x.Clone()
			xp[0] += eps
			continue
		}
		sumLog += math.Log(sep / eps)

		scale := eps / sep
		for j := range xp {
			xp[j] = x[j] + (xp[j]-x[j])*scale
		}
	}

	return sumLog / (float64(steps) * dt)
}

func distance(a, b dynamo.State) float64 {
	sum := 0.0
	for i := range a {
		d := b[i] - a[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}
