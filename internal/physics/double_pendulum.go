package physics

import (
	"fmt"
	"math"

	"github.com/san-kum/sketchlab/internal/dynamo"
)

const (
	DefaultMass    = 10.0
	DefaultLength  = 100.0
	DefaultGravity = 10.0
	DefaultDt      = 0.1
)

// DoublePendulum is two point masses on massless rigid arms, hung in series.
// State: [theta1, theta2, omega1, omega2], angles measured from the downward
// vertical and never wrapped.
type DoublePendulum struct {
	M1, M2  float64
	L1, L2  float64
	Gravity float64
}

func NewDoublePendulum() *DoublePendulum {
	return &DoublePendulum{
		M1: DefaultMass, M2: DefaultMass,
		L1: DefaultLength, L2: DefaultLength,
		Gravity: DefaultGravity,
	}
}

func (d *DoublePendulum) StateDim() int   { return 4 }
func (d *DoublePendulum) ControlDim() int { return 0 }

// Derive returns [omega1, omega2, alpha1, alpha2]. The control vector is ignored.
func (d *DoublePendulum) Derive(x dynamo.State, _ dynamo.Control, _ float64) dynamo.State {
	t1, t2, w1, w2 := x[0], x[1], x[2], x[3]
	alpha1, alpha2 := d.Accelerations(t1, t2, w1, w2)
	return dynamo.State{w1, w2, alpha1, alpha2}
}

// Accelerations evaluates the coupled equations of motion.
func (d *DoublePendulum) Accelerations(t1, t2, w1, w2 float64) (alpha1, alpha2 float64) {
	m1, m2, l1, l2, g := d.M1, d.M2, d.L1, d.L2, d.Gravity

	den := 2*m1 + m2 - m2*math.Cos(2*t1-2*t2)
	sinD, cosD := math.Sin(t1-t2), math.Cos(t1-t2)

	alpha1 = (-g*(2*m1+m2)*math.Sin(t1) -
		m2*g*math.Sin(t1-2*t2) -
		2*sinD*m2*(w2*w2*l2+w1*w1*l1*cosD)) / (l1 * den)

	alpha2 = 2 * sinD * (w1*w1*l1*(m1+m2) +
		g*(m1+m2)*math.Cos(t1) +
		w2*w2*l2*m2*cosD) / (l2 * den)

	return alpha1, alpha2
}

// Positions returns both bob positions relative to the pivot, y pointing down.
func (d *DoublePendulum) Positions(x dynamo.State) (x1, y1, x2, y2 float64) {
	x1 = d.L1 * math.Sin(x[0])
	y1 = d.L1 * math.Cos(x[0])
	x2 = x1 + d.L2*math.Sin(x[1])
	y2 = y1 + d.L2*math.Cos(x[1])
	return
}

func (d *DoublePendulum) Energy(x dynamo.State) float64 {
	theta1, theta2, omega1, omega2 := x[0], x[1], x[2], x[3]
	m1, m2, l1, l2, g := d.M1, d.M2, d.L1, d.L2, d.Gravity

	v1sq := l1 * l1 * omega1 * omega1
	v2sq := l1*l1*omega1*omega1 + l2*l2*omega2*omega2 +
		2*l1*l2*omega1*omega2*math.Cos(theta1-theta2)

	ke := 0.5*m1*v1sq + 0.5*m2*v2sq
	y1 := -l1 * math.Cos(theta1)
	y2 := y1 - l2*math.Cos(theta2)
	pe := m1*g*y1 + m2*g*y2

	return ke + pe
}

func (d *DoublePendulum) GetParams() map[string]float64 {
	return map[string]float64{
		"m1": d.M1,
		"m2": d.M2,
		"l1": d.L1,
		"l2": d.L2,
		"g":  d.Gravity,
	}
}

// SetParam implements dynamo.Configurable. Masses and lengths must stay positive.
func (d *DoublePendulum) SetParam(name string, value float64) error {
	if name != "g" && value <= 0 {
		return fmt.Errorf("%s=%g: %w", name, value, dynamo.ErrParameterBounds)
	}
	switch name {
	case "m1":
		d.M1 = value
	case "m2":
		d.M2 = value
	case "l1":
		d.L1 = value
	case "l2":
		d.L2 = value
	case "g":
		d.Gravity = value
	default:
		return fmt.Errorf("%s: %w", name, dynamo.ErrUnknownParameter)
	}
	return nil
}
