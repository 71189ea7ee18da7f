package pendulum

import (
	"github.com/san-kum/sketchlab/internal/render"
)

// Sketch animates a Field and stamps every outer bob onto a trail layer that
// is composited over the frame.
type Sketch struct {
	opts      Options
	field     *Field
	trail     *Trail
	keepTrail bool
}

func NewSketch(opts Options) *Sketch {
	return &Sketch{opts: opts}
}

func (s *Sketch) Name() string { return "pendulums" }

// KeepTrail makes every trail built by Setup log its points for export.
func (s *Sketch) KeepTrail() *Sketch {
	s.keepTrail = true
	return s
}

// Setup builds a fresh field and an empty trail layer sized like sf.
func (s *Sketch) Setup(sf render.Surface) error {
	field, err := NewField(s.opts)
	if err != nil {
		return err
	}
	s.field = field
	s.trail = NewTrail(sf.NewLayer(), len(field.Bobs))
	if s.keepTrail {
		s.trail.KeepPoints()
	}
	return nil
}

func (s *Sketch) Field() *Field { return s.field }
func (s *Sketch) Trail() *Trail { return s.trail }

// Draw renders every pendulum in its current pose, records its tip on the
// trail, then steps it.
func (s *Sketch) Draw(sf render.Surface) {
	sf.Background(render.Black)

	cx, cy := float64(sf.Width())/2, float64(sf.Height())/2
	for i, b := range s.field.Bobs {
		sf.Push()
		sf.Translate(cx, cy)
		b.Draw(sf)
		sf.Pop()

		x, y := b.Tip()
		s.trail.Plot(i, x, y, b.Color)

		s.field.UpdateBob(i)
	}

	sf.Composite(s.trail.Layer(), 0, 0)
}

// Energies implements the live viewer's energy readout.
func (s *Sketch) Energies() []float64 {
	if s.field == nil {
		return nil
	}
	return s.field.Energies()
}
