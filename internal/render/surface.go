package render

import "image/color"

// Surface is an immediate-mode drawing target. Coordinates are logical
// canvas units with the origin top-left and y pointing down. Style and
// transform state behave like a sketchbook canvas: Push saves them, Pop
// restores them, and every primitive is drawn with the current state.
type Surface interface {
	Width() int
	Height() int

	// Background fills the whole surface, ignoring the transform.
	Background(c color.Color)
	// Clear resets the surface to fully transparent.
	Clear()

	Push()
	Pop()
	Translate(x, y float64)
	Rotate(angle float64)

	Stroke(c color.Color)
	NoStroke()
	Fill(c color.Color)
	NoFill()
	StrokeWeight(w float64)

	Line(x1, y1, x2, y2 float64)
	// Circle draws a circle centred on (x, y) with diameter d.
	Circle(x, y, d float64)
	// Point stamps a dot of the current stroke weight in the stroke colour.
	Point(x, y float64)
	// Text draws s centred on (x, y) in the fill colour.
	Text(s string, x, y float64)

	// NewLayer returns an off-screen surface of the same size and kind.
	NewLayer() Surface
	// Composite draws layer over this surface at (x, y). Layers from a
	// different back end are ignored.
	Composite(layer Surface, x, y float64)
}
