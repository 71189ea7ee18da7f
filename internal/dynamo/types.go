package dynamo

import (
	"fmt"
	"math"
)

// State is a flat vector of generalized coordinates followed by their rates.
type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// MaxAbsDiff returns the largest component-wise distance between s and other.
func (s State) MaxAbsDiff(other State) float64 {
	max := 0.0
	for i := range s {
		if i >= len(other) {
			break
		}
		if d := math.Abs(s[i] - other[i]); d > max {
			max = d
		}
	}
	return max
}

type Control []float64

type System interface {
	Derive(x State, u Control, t float64) State
	StateDim() int
	ControlDim() int
}

// CheckDim reports ErrDimensionMismatch when x does not fit dyn.
func CheckDim(dyn System, x State) error {
	if len(x) != dyn.StateDim() {
		return fmt.Errorf("%w: state has %d components, system expects %d", ErrDimensionMismatch, len(x), dyn.StateDim())
	}
	return nil
}

type Hamiltonian interface {
	Energy(x State) float64
}

type Integrator interface {
	Step(dyn System, x State, u Control, t float64, dt float64) State
}

type Configurable interface {
	GetParams() map[string]float64
	SetParam(name string, value float64) error
}
