package render

import (
	"image/color"
	"math"
	"testing"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestRecorderTransforms(t *testing.T) {
	r := NewRecorder(600, 600)
	r.Stroke(White)

	r.Push()
	r.Translate(300, 300)
	r.Line(0, 0, 10, 0)
	r.Rotate(math.Pi / 2)
	r.Point(10, 0)
	r.Pop()
	r.Point(10, 0)

	lines := r.Filter(OpLine)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if !near(lines[0].X1, 300) || !near(lines[0].Y1, 300) || !near(lines[0].X2, 310) || !near(lines[0].Y2, 300) {
		t.Errorf("unexpected translated line: %+v", lines[0])
	}

	points := r.Filter(OpPoint)
	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(points))
	}
	if !near(points[0].X1, 300) || !near(points[0].Y1, 310) {
		t.Errorf("expected rotated point at (300, 310), got (%f, %f)", points[0].X1, points[0].Y1)
	}
	if !near(points[1].X1, 10) || !near(points[1].Y1, 0) {
		t.Errorf("expected pop to restore identity, got (%f, %f)", points[1].X1, points[1].Y1)
	}
}

func TestRecorderStyleState(t *testing.T) {
	r := NewRecorder(100, 100)

	r.NoStroke()
	r.Line(0, 0, 1, 1)
	r.Point(1, 1)
	if len(r.Ops) != 0 {
		t.Errorf("expected no ops without stroke, got %d", len(r.Ops))
	}

	r.Push()
	r.Stroke(Red)
	r.StrokeWeight(3)
	r.Point(1, 1)
	r.Pop()
	r.Point(2, 2)

	if r.Count(OpPoint) != 1 {
		t.Fatalf("expected pop to restore noStroke, got %d points", r.Count(OpPoint))
	}
	if r.Ops[0].Size != 3 {
		t.Errorf("expected stroke weight 3, got %f", r.Ops[0].Size)
	}

	r.Fill(White)
	r.Rotate(0.5)
	r.Text("Jan", 5, 5)
	text := r.Filter(OpText)
	if len(text) != 1 || text[0].Text != "Jan" || !near(text[0].Angle, 0.5) {
		t.Errorf("unexpected text op: %+v", text)
	}
}

func TestRecorderComposite(t *testing.T) {
	r := NewRecorder(100, 100)
	layer := r.NewLayer()
	layer.Stroke(White)
	layer.Point(1, 1)

	r.Composite(layer, 0, 0)
	r.Composite(NewBraille(10, 10, 100, 100), 0, 0)

	ops := r.Filter(OpComposite)
	if len(ops) != 1 {
		t.Fatalf("expected 1 composite op, got %d", len(ops))
	}
	if ops[0].Layer.Count(OpPoint) != 1 {
		t.Error("expected composited layer to carry its point")
	}
}

func TestLerp(t *testing.T) {
	mid := Lerp(White, Blue, 0.5)
	if !near(mid.R, 0.5) || !near(mid.G, 0.5) || !near(mid.B, 1) {
		t.Errorf("expected (0.5, 0.5, 1), got %v", mid)
	}

	if Lerp(White, Red, 2) != Red {
		t.Errorf("expected amount above 1 to clamp to target, got %v", Lerp(White, Red, 2))
	}
	if Lerp(White, Red, -1) != White {
		t.Errorf("expected negative amount to clamp to source, got %v", Lerp(White, Red, -1))
	}
}

func TestParsePalette(t *testing.T) {
	p, err := ParsePalette([]string{"#ff0000", "#0b1354"})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(p) != 2 || p[0] != Red {
		t.Errorf("unexpected palette: %v", p)
	}

	if _, err := ParsePalette([]string{"red"}); err == nil {
		t.Error("expected error for non-hex colour")
	}
}

func TestCanvasSetUnset(t *testing.T) {
	c := NewCanvas(4, 2)

	c.Set(3, 5)
	if !c.Get(3, 5) {
		t.Error("expected pixel to be set")
	}
	if c.Count() != 1 {
		t.Errorf("expected 1 lit pixel, got %d", c.Count())
	}

	c.Set(-1, 0)
	c.Set(8, 0)
	if c.Count() != 1 {
		t.Errorf("expected out of range pixels to be ignored, got %d", c.Count())
	}

	c.Unset(3, 5)
	if c.Get(3, 5) || c.Count() != 0 {
		t.Error("expected pixel to be cleared")
	}
}

func TestCanvasDrawLine(t *testing.T) {
	c := NewCanvas(10, 4)
	c.DrawLine(0, 0, 19, 0)

	if c.Count() != 20 {
		t.Errorf("expected 20 lit pixels, got %d", c.Count())
	}
}

func TestCanvasMerge(t *testing.T) {
	a, b := NewCanvas(2, 1), NewCanvas(2, 1)
	a.Set(0, 0)
	b.Set(1, 1)
	b.PutRune(2, 0, 'x')

	a.Merge(b)

	if !a.Get(0, 0) || !a.Get(1, 1) {
		t.Error("expected dots from both canvases")
	}
	if a.Grid[0][1] != 'x' {
		t.Errorf("expected literal rune to overwrite, got %q", a.Grid[0][1])
	}
}

func TestBrailleScalesLogicalCoordinates(t *testing.T) {
	b := NewBraille(30, 15, 600, 600) // 60 x 60 sub-pixels
	b.Stroke(White)
	b.Point(300, 300)

	if !b.Canvas().Get(30, 30) {
		t.Error("expected centre point at sub-pixel (30, 30)")
	}

	b.Fill(color.Black)
	b.NoStroke()
	b.Circle(300, 300, 40)
	if b.Canvas().Get(30, 30) {
		t.Error("expected black fill to erase the centre")
	}
}

func TestBrailleComposite(t *testing.T) {
	b := NewBraille(10, 10, 100, 100)
	layer := b.NewLayer()
	layer.Stroke(White)
	layer.Line(0, 50, 99, 50)

	b.Composite(layer, 0, 0)
	if b.Canvas().Count() == 0 {
		t.Error("expected composited line on the main canvas")
	}
}

func TestRasterDraws(t *testing.T) {
	r := NewRaster(64, 64)
	r.Background(color.Black)
	r.Stroke(White)
	r.StrokeWeight(4)
	r.Translate(32, 32)
	r.Line(-10, 0, 10, 0)

	got := color.GrayModel.Convert(r.Image().At(32, 32)).(color.Gray)
	if got.Y < 200 {
		t.Errorf("expected white line pixel, got %v", got)
	}
	corner := color.GrayModel.Convert(r.Image().At(1, 1)).(color.Gray)
	if corner.Y != 0 {
		t.Errorf("expected black background, got %v", corner)
	}
}

func TestRasterComposite(t *testing.T) {
	r := NewRaster(16, 16)
	r.Background(color.Black)

	layer := r.NewLayer()
	layer.Stroke(Red)
	layer.StrokeWeight(6)
	layer.Point(8, 8)

	r.Composite(layer, 0, 0)

	cr, _, cb, _ := r.Image().At(8, 8).RGBA()
	if cr < 0xf000 || cb > 0x1000 {
		t.Errorf("expected red trail pixel, got r=%x b=%x", cr, cb)
	}
	_, _, _, a := layer.(*Raster).Image().At(0, 0).RGBA()
	if a != 0 {
		t.Error("expected new layer to start transparent")
	}
}
