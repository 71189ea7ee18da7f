package render

import (
	"image/color"

	"github.com/fogleman/gg"
)

// pen is the style and transform state shared by every back end.
type pen struct {
	matrix gg.Matrix
	angle  float64
	stroke color.Color
	fill   color.Color
	weight float64
}

func defaultPen() pen {
	return pen{
		matrix: gg.Identity(),
		stroke: color.Black,
		fill:   color.White,
		weight: 1,
	}
}

type penStack struct {
	cur   pen
	saved []pen
}

func newPenStack() penStack {
	return penStack{cur: defaultPen()}
}

func (p *penStack) push() {
	p.saved = append(p.saved, p.cur)
}

// pop on an empty stack resets to the default pen.
func (p *penStack) pop() {
	if len(p.saved) == 0 {
		p.cur = defaultPen()
		return
	}
	p.cur = p.saved[len(p.saved)-1]
	p.saved = p.saved[:len(p.saved)-1]
}

func (p *penStack) translate(x, y float64) {
	p.cur.matrix = p.cur.matrix.Translate(x, y)
}

func (p *penStack) rotate(angle float64) {
	p.cur.matrix = p.cur.matrix.Rotate(angle)
	p.cur.angle += angle
}

func (p *penStack) apply(x, y float64) (float64, float64) {
	return p.cur.matrix.TransformPoint(x, y)
}

// visible reports whether c would leave a mark.
func visible(c color.Color) bool {
	if c == nil {
		return false
	}
	_, _, _, a := c.RGBA()
	return a != 0
}

// bright reports whether c reads as "ink" on a monochrome target.
func bright(c color.Color) bool {
	if !visible(c) {
		return false
	}
	return color.GrayModel.Convert(c).(color.Gray).Y >= 32
}
