package climate

import (
	"math"
	"strconv"

	"github.com/san-kum/sketchlab/internal/render"
)

const (
	DefaultRadius = 200.0
	labelFrac     = 1.1
	valueDisc     = 15.0
	guideGray     = 55
)

// Sketch draws the climate spiral: a full redraw of the walked polyline
// plus axes every frame, then one month of progress.
type Sketch struct {
	walker *Walker
}

func NewSketch(t *Table, radius float64) *Sketch {
	if radius <= 0 {
		radius = DefaultRadius
	}
	return &Sketch{walker: NewWalker(t, radius)}
}

func (s *Sketch) Name() string { return "spiral" }

func (s *Sketch) Walker() *Walker { return s.walker }

// Setup rewinds the walk.
func (s *Sketch) Setup(render.Surface) error {
	s.walker.Cursor = Cursor{}
	return nil
}

// FramesPerLoop is the number of frames before the walk restarts.
func (s *Sketch) FramesPerLoop() int {
	return s.walker.Table.Len() * MonthsPerYear
}

func (s *Sketch) Draw(sf render.Surface) {
	sf.Background(render.Black)

	sf.Push()
	sf.StrokeWeight(2)
	sf.Translate(float64(sf.Width())/2, float64(sf.Height())/2)

	s.drawYear(sf)
	s.drawData(sf)
	s.drawHandles(sf)

	sf.Pop()

	s.walker.Advance()
}

func (s *Sketch) drawYear(sf render.Surface) {
	year, cell := s.walker.Current()
	sf.NoStroke()
	sf.Fill(CellColor(cell))
	sf.Text(year, 0, 0)
}

func (s *Sketch) drawData(sf render.Surface) {
	for _, seg := range s.walker.Segments() {
		sf.Stroke(seg.Color)
		sf.Line(seg.X1, seg.Y1, seg.X2, seg.Y2)
	}
}

// drawHandles draws the month ring, the -1/0/+1 guide rings and their labels.
func (s *Sketch) drawHandles(sf render.Surface) {
	r := s.walker.Radius

	sf.NoFill()
	sf.Stroke(render.White)
	sf.Circle(0, 0, 2*r)

	sf.Stroke(render.Gray(guideGray))
	for k := 1; k <= 3; k++ {
		sf.Circle(0, 0, 2*r*float64(k)*innerFrac)
	}

	sf.NoStroke()
	sf.Fill(render.White)
	for i, name := range s.walker.Table.Months {
		a := Angle(i)
		sf.Push()
		sf.Translate(labelFrac*r*math.Cos(a), labelFrac*r*math.Sin(a))
		sf.Rotate(a + math.Pi/2)
		sf.Text(name, 0, 0)
		sf.Pop()
	}

	for k := 1; k <= 3; k++ {
		sf.Push()
		sf.Translate(r*float64(k)*innerFrac, 0)
		sf.Fill(render.Black)
		sf.Circle(0, 0, valueDisc)
		sf.Fill(render.White)
		sf.Text(strconv.Itoa(k-2), 0, 0)
		sf.Pop()
	}
}
