package climate

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/sketchlab/internal/render"
)

const (
	innerFrac = 0.25
	outerFrac = 0.75
)

// Cursor is the next (row, month) to plot.
type Cursor struct {
	Row   int
	Month int
}

// Advance moves one month forward, wrapping the month at 12 and the row at
// rows so the walk loops forever.
func (c *Cursor) Advance(rows int) {
	c.Month++
	if c.Month >= MonthsPerYear {
		c.Month = 0
		c.Row++
	}
	if c.Row >= rows {
		c.Row = 0
	}
}

// Radius maps an anomaly affinely from [-1, 1] onto [0.25, 0.75] x base.
// Values outside the domain extrapolate.
func Radius(v, base float64) float64 {
	return (innerFrac + (v+1)/2*(outerFrac-innerFrac)) * base
}

// Angle places month 0 two slots counter-clockwise of vertical, so the
// last month of the year sits at the top.
func Angle(month int) float64 {
	return float64(month-2) * math.Pi / 6
}

// Polar returns the canvas position of an anomaly relative to the centre.
func Polar(v float64, month int, base float64) (x, y float64) {
	r, a := Radius(v, base), Angle(month)
	return r * math.Cos(a), r * math.Sin(a)
}

// AnomalyColor shades negative anomalies towards blue and non-negative ones
// towards red by magnitude.
func AnomalyColor(v float64) colorful.Color {
	if v < 0 {
		return render.Lerp(render.White, render.Blue, math.Abs(v))
	}
	return render.Lerp(render.White, render.Red, v)
}

// CellColor is AnomalyColor with white for missing cells.
func CellColor(c Cell) colorful.Color {
	if c.Missing {
		return render.White
	}
	return AnomalyColor(c.Value)
}

// Index addresses a cell by row and month.
type Index struct {
	Row   int
	Month int
}

type Segment struct {
	From, To Index
	X1, Y1   float64
	X2, Y2   float64
	Color    colorful.Color
}

// Walker walks a table one month per frame.
type Walker struct {
	Table  *Table
	Radius float64
	Cursor Cursor
}

func NewWalker(t *Table, radius float64) *Walker {
	return &Walker{Table: t, Radius: radius}
}

// Current returns the year and cell under the cursor.
func (w *Walker) Current() (string, Cell) {
	row := w.Table.Rows[w.Cursor.Row]
	return row.Year, row.Cells[w.Cursor.Month]
}

// Segments rebuilds the polyline from the first cell of the table up to and
// including the cursor. Missing cells are skipped: no segment starts or ends
// on them, and the next present cell joins the previous present one. The
// first present cell has no incoming segment.
func (w *Walker) Segments() []Segment {
	segs := make([]Segment, 0, w.Cursor.Row*MonthsPerYear+w.Cursor.Month)

	var prev Index
	var px, py float64
	start := true

	for j := 0; j <= w.Cursor.Row; j++ {
		last := MonthsPerYear - 1
		if j == w.Cursor.Row {
			last = w.Cursor.Month
		}
		for i := 0; i <= last; i++ {
			c := w.Table.Rows[j].Cells[i]
			if c.Missing {
				continue
			}
			x, y := Polar(c.Value, i, w.Radius)
			if !start {
				segs = append(segs, Segment{
					From: prev, To: Index{Row: j, Month: i},
					X1: px, Y1: py, X2: x, Y2: y,
					Color: AnomalyColor(c.Value),
				})
			}
			prev, px, py = Index{Row: j, Month: i}, x, y
			start = false
		}
	}
	return segs
}

// Advance moves the cursor one month forward.
func (w *Walker) Advance() {
	w.Cursor.Advance(w.Table.Len())
}
