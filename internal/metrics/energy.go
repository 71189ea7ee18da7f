package metrics

import (
	"math"

	"github.com/san-kum/sketchlab/internal/dynamo"
)

// EnergyDrift tracks the largest relative departure of a system's total
// energy from its first observed value. Systems without an energy function
// are ignored.
type EnergyDrift struct {
	name          string
	initialEnergy float64
	currentEnergy float64
	maxDrift      float64
	samples       int
	dyn           dynamo.Hamiltonian
	keep          bool
	series        []float64
}

func NewEnergyDrift(dyn dynamo.System) *EnergyDrift {
	e := &EnergyDrift{name: "energy_drift"}
	if h, ok := dyn.(dynamo.Hamiltonian); ok {
		e.dyn = h
	}
	return e
}

// KeepSeries makes the metric remember every observed energy for plotting.
func (e *EnergyDrift) KeepSeries() *EnergyDrift {
	e.keep = true
	return e
}

func (e *EnergyDrift) Name() string { return e.name }

func (e *EnergyDrift) Observe(x dynamo.State, t float64) {
	if e.dyn == nil {
		return
	}

	energy := e.dyn.Energy(x)
	if e.samples == 0 {
		e.initialEnergy = energy
	}
	e.currentEnergy = energy
	e.samples++
	if e.keep {
		e.series = append(e.series, energy)
	}

	if e.initialEnergy != 0 {
		drift := math.Abs(energy-e.initialEnergy) / math.Abs(e.initialEnergy)
		e.maxDrift = math.Max(e.maxDrift, drift)
	}
}

func (e *EnergyDrift) Value() float64 { return e.maxDrift }

func (e *EnergyDrift) Initial() float64  { return e.initialEnergy }
func (e *EnergyDrift) Current() float64  { return e.currentEnergy }
func (e *EnergyDrift) Samples() int      { return e.samples }
func (e *EnergyDrift) Series() []float64 { return e.series }

func (e *EnergyDrift) Reset() {
	e.initialEnergy = 0
	e.currentEnergy = 0
	e.maxDrift = 0
	e.samples = 0
	e.series = e.series[:0]
}
