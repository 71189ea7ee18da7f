package pendulum

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/sketchlab/internal/render"
)

const trailWeight = 2

type Point struct {
	X, Y float64
}

// Trail accumulates outer bob positions on a persistent layer. It is never
// cleared while a run lasts. Plotted points are only logged per pendulum
// after KeepPoints, for export.
type Trail struct {
	layer  render.Surface
	counts []int
	points [][]Point
	keep   bool
}

func NewTrail(layer render.Surface, pendulums int) *Trail {
	layer.Clear()
	return &Trail{
		layer:  layer,
		counts: make([]int, pendulums),
		points: make([][]Point, pendulums),
	}
}

// KeepPoints starts logging every plotted point.
func (t *Trail) KeepPoints() *Trail {
	t.keep = true
	return t
}

func (t *Trail) Layer() render.Surface { return t.layer }

// Plot stamps one point for pendulum i. x and y are relative to the layer centre.
func (t *Trail) Plot(i int, x, y float64, c colorful.Color) {
	t.layer.Push()
	t.layer.Stroke(c)
	t.layer.StrokeWeight(trailWeight)
	t.layer.Translate(float64(t.layer.Width())/2, float64(t.layer.Height())/2)
	t.layer.Point(x, y)
	t.layer.Pop()

	t.counts[i]++
	if t.keep {
		t.points[i] = append(t.points[i], Point{X: x, Y: y})
	}
}

// Len is the number of points plotted for pendulum i, logged or not.
func (t *Trail) Len(i int) int { return t.counts[i] }

// Points returns the logged path of pendulum i, nil unless KeepPoints was
// called. The slice must not be modified.
func (t *Trail) Points(i int) []Point { return t.points[i] }

func (t *Trail) Pendulums() int { return len(t.counts) }

func (t *Trail) Total() int {
	n := 0
	for _, c := range t.counts {
		n += c
	}
	return n
}
