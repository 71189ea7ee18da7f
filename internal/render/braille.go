package render

import (
	"image/color"
	"math"
)

// Braille is a monochrome Surface drawn onto a terminal Canvas. Logical
// coordinates are scaled to the canvas' sub-pixel grid; any colour that is
// not near-black draws, near-black erases.
type Braille struct {
	canvas *Canvas
	w, h   int
	sx, sy float64
	pens   penStack
}

// NewBraille maps a w x h logical surface onto cols x rows terminal cells.
func NewBraille(cols, rows, w, h int) *Braille {
	return &Braille{
		canvas: NewCanvas(cols, rows),
		w:      w,
		h:      h,
		sx:     float64(cols*2) / float64(w),
		sy:     float64(rows*4) / float64(h),
		pens:   newPenStack(),
	}
}

func (b *Braille) Canvas() *Canvas { return b.canvas }
func (b *Braille) String() string  { return b.canvas.String() }

func (b *Braille) Width() int  { return b.w }
func (b *Braille) Height() int { return b.h }

func (b *Braille) Background(color.Color) { b.canvas.Clear() }
func (b *Braille) Clear()                 { b.canvas.Clear() }

func (b *Braille) Push()                  { b.pens.push() }
func (b *Braille) Pop()                   { b.pens.pop() }
func (b *Braille) Translate(x, y float64) { b.pens.translate(x, y) }
func (b *Braille) Rotate(angle float64)   { b.pens.rotate(angle) }

func (b *Braille) Stroke(c color.Color)   { b.pens.cur.stroke = c }
func (b *Braille) NoStroke()              { b.pens.cur.stroke = nil }
func (b *Braille) Fill(c color.Color)     { b.pens.cur.fill = c }
func (b *Braille) NoFill()                { b.pens.cur.fill = nil }
func (b *Braille) StrokeWeight(w float64) { b.pens.cur.weight = w }

// project maps a logical point through the transform to sub-pixels.
func (b *Braille) project(x, y float64) (int, int) {
	tx, ty := b.pens.apply(x, y)
	return int(math.Round(tx * b.sx)), int(math.Round(ty * b.sy))
}

func (b *Braille) plot(x, y int, c color.Color) {
	if bright(c) {
		b.canvas.Set(x, y)
	} else {
		b.canvas.Unset(x, y)
	}
}

func (b *Braille) Line(x1, y1, x2, y2 float64) {
	if !bright(b.pens.cur.stroke) {
		return
	}
	ax, ay := b.project(x1, y1)
	bx, by := b.project(x2, y2)
	b.canvas.DrawLine(ax, ay, bx, by)
}

func (b *Braille) Circle(x, y, d float64) {
	p := b.pens.cur
	cx, cy := b.project(x, y)
	rx, ry := d/2*b.sx, d/2*b.sy

	if visible(p.fill) {
		for dy := -int(ry); dy <= int(ry); dy++ {
			for dx := -int(rx); dx <= int(rx); dx++ {
				nx, ny := float64(dx)/math.Max(rx, 0.5), float64(dy)/math.Max(ry, 0.5)
				if nx*nx+ny*ny <= 1 {
					b.plot(cx+dx, cy+dy, p.fill)
				}
			}
		}
	}
	if !visible(p.stroke) {
		return
	}
	if rx < 1 && ry < 1 {
		b.plot(cx, cy, p.stroke)
		return
	}
	steps := int(math.Ceil(2 * math.Pi * math.Max(rx, ry)))
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		b.plot(cx+int(math.Round(rx*math.Cos(a))), cy+int(math.Round(ry*math.Sin(a))), p.stroke)
	}
}

func (b *Braille) Point(x, y float64) {
	c := b.pens.cur.stroke
	if !visible(c) {
		return
	}
	px, py := b.project(x, y)
	b.plot(px, py, c)
}

// Text writes literal characters centred on the cell row containing (x, y).
func (b *Braille) Text(s string, x, y float64) {
	if !visible(b.pens.cur.fill) {
		return
	}
	px, py := b.project(x, y)
	runes := []rune(s)
	start := px - len(runes)
	for i, r := range runes {
		b.canvas.PutRune(start+2*i, py, r)
	}
}

func (b *Braille) NewLayer() Surface {
	return NewBraille(b.canvas.Width, b.canvas.Height, b.w, b.h)
}

// Composite merges another Braille layer cell by cell. Offsets are ignored.
func (b *Braille) Composite(layer Surface, _, _ float64) {
	src, ok := layer.(*Braille)
	if !ok {
		return
	}
	b.canvas.Merge(src.canvas)
}
