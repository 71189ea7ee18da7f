package render

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

// Raster is a Surface backed by an RGBA image.
type Raster struct {
	ctx  *gg.Context
	pens penStack
}

func NewRaster(w, h int) *Raster {
	ctx := gg.NewContext(w, h)
	ctx.SetFontFace(basicfont.Face7x13)
	return &Raster{ctx: ctx, pens: newPenStack()}
}

func (r *Raster) Width() int  { return r.ctx.Width() }
func (r *Raster) Height() int { return r.ctx.Height() }

// Image exposes the backing image. It is reused across frames.
func (r *Raster) Image() image.Image { return r.ctx.Image() }

func (r *Raster) SavePNG(path string) error { return r.ctx.SavePNG(path) }

func (r *Raster) Background(c color.Color) {
	r.ctx.SetColor(c)
	r.ctx.Clear()
}

func (r *Raster) Clear() {
	r.ctx.SetColor(color.Transparent)
	r.ctx.Clear()
}

func (r *Raster) Push()                  { r.pens.push() }
func (r *Raster) Pop()                   { r.pens.pop() }
func (r *Raster) Translate(x, y float64) { r.pens.translate(x, y) }
func (r *Raster) Rotate(angle float64)   { r.pens.rotate(angle) }

func (r *Raster) Stroke(c color.Color)   { r.pens.cur.stroke = c }
func (r *Raster) NoStroke()              { r.pens.cur.stroke = nil }
func (r *Raster) Fill(c color.Color)     { r.pens.cur.fill = c }
func (r *Raster) NoFill()                { r.pens.cur.fill = nil }
func (r *Raster) StrokeWeight(w float64) { r.pens.cur.weight = w }

func (r *Raster) Line(x1, y1, x2, y2 float64) {
	p := r.pens.cur
	if !visible(p.stroke) {
		return
	}
	ax, ay := r.pens.apply(x1, y1)
	bx, by := r.pens.apply(x2, y2)
	r.ctx.SetColor(p.stroke)
	r.ctx.SetLineWidth(p.weight)
	r.ctx.DrawLine(ax, ay, bx, by)
	r.ctx.Stroke()
}

func (r *Raster) Circle(x, y, d float64) {
	p := r.pens.cur
	cx, cy := r.pens.apply(x, y)
	r.ctx.DrawCircle(cx, cy, d/2)
	if visible(p.fill) {
		r.ctx.SetColor(p.fill)
		r.ctx.FillPreserve()
	}
	if visible(p.stroke) {
		r.ctx.SetColor(p.stroke)
		r.ctx.SetLineWidth(p.weight)
		r.ctx.StrokePreserve()
	}
	r.ctx.ClearPath()
}

func (r *Raster) Point(x, y float64) {
	p := r.pens.cur
	if !visible(p.stroke) {
		return
	}
	cx, cy := r.pens.apply(x, y)
	r.ctx.SetColor(p.stroke)
	r.ctx.DrawCircle(cx, cy, p.weight/2)
	r.ctx.Fill()
}

func (r *Raster) Text(s string, x, y float64) {
	p := r.pens.cur
	if !visible(p.fill) {
		return
	}
	tx, ty := r.pens.apply(x, y)
	r.ctx.Push()
	r.ctx.Translate(tx, ty)
	r.ctx.Rotate(p.angle)
	r.ctx.SetColor(p.fill)
	r.ctx.DrawStringAnchored(s, 0, 0, 0.5, 0.5)
	r.ctx.Pop()
}

func (r *Raster) NewLayer() Surface {
	return NewRaster(r.Width(), r.Height())
}

func (r *Raster) Composite(layer Surface, x, y float64) {
	src, ok := layer.(*Raster)
	if !ok {
		return
	}
	tx, ty := r.pens.apply(x, y)
	r.ctx.DrawImage(src.ctx.Image(), int(tx), int(ty))
}
