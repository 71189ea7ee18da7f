package render

import "image/color"

type OpKind int

const (
	OpBackground OpKind = iota
	OpClear
	OpLine
	OpCircle
	OpPoint
	OpText
	OpComposite
)

func (k OpKind) String() string {
	switch k {
	case OpBackground:
		return "background"
	case OpClear:
		return "clear"
	case OpLine:
		return "line"
	case OpCircle:
		return "circle"
	case OpPoint:
		return "point"
	case OpText:
		return "text"
	case OpComposite:
		return "composite"
	default:
		return "unknown"
	}
}

// Op is one recorded primitive. Coordinates are in surface space, after the
// transform was applied.
type Op struct {
	Kind   OpKind
	X1, Y1 float64
	X2, Y2 float64
	Size   float64
	Angle  float64
	Color  color.Color
	Fill   color.Color
	Text   string
	Layer  *Recorder
}

// Recorder is a Surface that keeps every primitive instead of drawing it.
type Recorder struct {
	Ops  []Op
	w, h int
	pens penStack
}

func NewRecorder(w, h int) *Recorder {
	return &Recorder{w: w, h: h, pens: newPenStack()}
}

func (r *Recorder) Width() int  { return r.w }
func (r *Recorder) Height() int { return r.h }

// Reset drops recorded ops but keeps the pen state.
func (r *Recorder) Reset() { r.Ops = r.Ops[:0] }

// Count returns the number of recorded ops of kind k.
func (r *Recorder) Count(k OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == k {
			n++
		}
	}
	return n
}

// Filter returns the recorded ops of kind k in order.
func (r *Recorder) Filter(k OpKind) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == k {
			out = append(out, op)
		}
	}
	return out
}

func (r *Recorder) Background(c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpBackground, Color: c})
}

func (r *Recorder) Clear() { r.Ops = append(r.Ops, Op{Kind: OpClear}) }

func (r *Recorder) Push()                  { r.pens.push() }
func (r *Recorder) Pop()                   { r.pens.pop() }
func (r *Recorder) Translate(x, y float64) { r.pens.translate(x, y) }
func (r *Recorder) Rotate(angle float64)   { r.pens.rotate(angle) }

func (r *Recorder) Stroke(c color.Color)   { r.pens.cur.stroke = c }
func (r *Recorder) NoStroke()              { r.pens.cur.stroke = nil }
func (r *Recorder) Fill(c color.Color)     { r.pens.cur.fill = c }
func (r *Recorder) NoFill()                { r.pens.cur.fill = nil }
func (r *Recorder) StrokeWeight(w float64) { r.pens.cur.weight = w }

func (r *Recorder) Line(x1, y1, x2, y2 float64) {
	if !visible(r.pens.cur.stroke) {
		return
	}
	ax, ay := r.pens.apply(x1, y1)
	bx, by := r.pens.apply(x2, y2)
	r.Ops = append(r.Ops, Op{Kind: OpLine, X1: ax, Y1: ay, X2: bx, Y2: by,
		Size: r.pens.cur.weight, Color: r.pens.cur.stroke})
}

func (r *Recorder) Circle(x, y, d float64) {
	p := r.pens.cur
	if !visible(p.stroke) && !visible(p.fill) {
		return
	}
	cx, cy := r.pens.apply(x, y)
	r.Ops = append(r.Ops, Op{Kind: OpCircle, X1: cx, Y1: cy, Size: d, Color: p.stroke, Fill: p.fill})
}

func (r *Recorder) Point(x, y float64) {
	if !visible(r.pens.cur.stroke) {
		return
	}
	px, py := r.pens.apply(x, y)
	r.Ops = append(r.Ops, Op{Kind: OpPoint, X1: px, Y1: py, Size: r.pens.cur.weight, Color: r.pens.cur.stroke})
}

func (r *Recorder) Text(s string, x, y float64) {
	if !visible(r.pens.cur.fill) {
		return
	}
	tx, ty := r.pens.apply(x, y)
	r.Ops = append(r.Ops, Op{Kind: OpText, X1: tx, Y1: ty, Angle: r.pens.cur.angle, Fill: r.pens.cur.fill, Text: s})
}

func (r *Recorder) NewLayer() Surface { return NewRecorder(r.w, r.h) }

func (r *Recorder) Composite(layer Surface, x, y float64) {
	src, ok := layer.(*Recorder)
	if !ok {
		return
	}
	tx, ty := r.pens.apply(x, y)
	r.Ops = append(r.Ops, Op{Kind: OpComposite, X1: tx, Y1: ty, Layer: src})
}
