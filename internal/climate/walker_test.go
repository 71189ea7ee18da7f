package climate

import (
	"math"
	"strconv"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sketchlab/internal/render"
)

// fixture builds a table whose cell (r, m) holds (m - 6) / 10 + r / 100,
// with the listed cells marked missing.
func fixture(rows int, missing ...Index) *Table {
	t := &Table{Months: []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}}
	for r := 0; r < rows; r++ {
		row := Row{Year: strconv.Itoa(1900 + r)}
		for m := 0; m < MonthsPerYear; m++ {
			row.Cells[m] = Cell{Value: float64(m-6)/10 + float64(r)/100}
		}
		t.Rows = append(t.Rows, row)
	}
	for _, idx := range missing {
		t.Rows[idx.Row].Cells[idx.Month] = Cell{Missing: true}
	}
	return t
}

var _ = Describe("Radius", func() {
	const base = 200.0

	DescribeTable("maps the anomaly domain onto the inner half of the radius",
		func(v, frac float64) {
			Expect(Radius(v, base)).To(BeNumerically("~", frac*base, 1e-9))
		},
		Entry("coldest", -1.0, 0.25),
		Entry("baseline", 0.0, 0.5),
		Entry("warmest", 1.0, 0.75),
	)

	It("is affine and increasing", func() {
		for v := -1.0; v < 1.0; v += 0.125 {
			Expect(Radius(v+0.125, base)).To(BeNumerically(">", Radius(v, base)))
			Expect(Radius(v, base)).To(BeNumerically("~", 0.25*base+0.25*base*(v+1), 1e-9))
		}
	})

	It("extrapolates outside [-1, 1]", func() {
		Expect(Radius(1.5, base)).To(BeNumerically("~", 0.875*base, 1e-9))
	})
})

var _ = Describe("Angle", func() {
	It("puts March on the positive x axis and December at the top", func() {
		Expect(Angle(2)).To(BeNumerically("~", 0, 1e-12))

		x, y := Polar(0, 11, 200)
		Expect(x).To(BeNumerically("~", 0, 1e-9))
		Expect(y).To(BeNumerically("~", -100, 1e-9))
	})

	It("steps by a twelfth of a turn", func() {
		for m := 1; m < MonthsPerYear; m++ {
			Expect(Angle(m) - Angle(m-1)).To(BeNumerically("~", math.Pi/6, 1e-12))
		}
	})
})

var _ = Describe("AnomalyColor", func() {
	It("fades white to blue below zero", func() {
		c := AnomalyColor(-0.5)
		Expect(c.R).To(BeNumerically("~", 0.5, 1e-9))
		Expect(c.G).To(BeNumerically("~", 0.5, 1e-9))
		Expect(c.B).To(BeNumerically("~", 1, 1e-9))
	})

	It("fades white to red from zero up", func() {
		Expect(AnomalyColor(0)).To(Equal(render.White))
		c := AnomalyColor(0.5)
		Expect(c.R).To(BeNumerically("~", 1, 1e-9))
		Expect(c.B).To(BeNumerically("~", 0.5, 1e-9))
		Expect(AnomalyColor(1.4)).To(Equal(render.Red))
	})

	It("uses white for missing cells", func() {
		Expect(CellColor(Cell{Missing: true, Value: -1})).To(Equal(render.White))
	})
})

var _ = Describe("Cursor", func() {
	It("wraps the month after twelve advances", func() {
		c := Cursor{}
		for i := 0; i < 11; i++ {
			c.Advance(3)
		}
		Expect(c).To(Equal(Cursor{Row: 0, Month: 11}))

		c.Advance(3)
		Expect(c).To(Equal(Cursor{Row: 1, Month: 0}))
	})

	It("wraps the row past the end of the table", func() {
		c := Cursor{Row: 2, Month: 11}
		c.Advance(3)
		Expect(c).To(Equal(Cursor{}))
	})

	It("loops back to the start after a full pass", func() {
		c := Cursor{}
		for i := 0; i < 3*MonthsPerYear; i++ {
			c.Advance(3)
			Expect(c.Row).To(BeNumerically("<", 3))
			Expect(c.Month).To(BeNumerically("<", MonthsPerYear))
		}
		Expect(c).To(Equal(Cursor{}))
	})
})

var _ = Describe("Walker", func() {
	It("draws nothing for the first point", func() {
		w := NewWalker(fixture(2), 200)
		Expect(w.Segments()).To(BeEmpty())
	})

	It("connects every point up to and including the cursor", func() {
		w := NewWalker(fixture(2), 200)
		w.Cursor = Cursor{Row: 0, Month: 3}

		segs := w.Segments()
		Expect(segs).To(HaveLen(3))
		last := segs[2]
		Expect(last.From).To(Equal(Index{Row: 0, Month: 2}))
		Expect(last.To).To(Equal(Index{Row: 0, Month: 3}))

		x, y := Polar(w.Table.Cell(0, 3).Value, 3, 200)
		Expect(last.X2).To(BeNumerically("~", x, 1e-9))
		Expect(last.Y2).To(BeNumerically("~", y, 1e-9))
		Expect(last.Color).To(Equal(AnomalyColor(w.Table.Cell(0, 3).Value)))
	})

	It("continues across the year boundary", func() {
		w := NewWalker(fixture(2), 200)
		w.Cursor = Cursor{Row: 1, Month: 0}

		segs := w.Segments()
		Expect(segs).To(HaveLen(12))
		Expect(segs[11].From).To(Equal(Index{Row: 0, Month: 11}))
		Expect(segs[11].To).To(Equal(Index{Row: 1, Month: 0}))
	})

	It("never touches a missing cell but keeps walking past it", func() {
		gap := Index{Row: 0, Month: 2}
		w := NewWalker(fixture(1, gap), 200)
		w.Cursor = Cursor{Row: 0, Month: 5}

		segs := w.Segments()
		Expect(segs).To(HaveLen(4))
		for _, s := range segs {
			Expect(s.From).NotTo(Equal(gap))
			Expect(s.To).NotTo(Equal(gap))
		}
		Expect(segs[1].From).To(Equal(Index{Row: 0, Month: 1}))
		Expect(segs[1].To).To(Equal(Index{Row: 0, Month: 3}))

		w.Cursor = Cursor{Row: 0, Month: 1}
		w.Advance()
		Expect(w.Cursor).To(Equal(Cursor{Row: 0, Month: 2}))
		w.Advance()
		Expect(w.Cursor).To(Equal(Cursor{Row: 0, Month: 3}))
	})

	It("starts the polyline at the first present cell", func() {
		w := NewWalker(fixture(1, Index{Row: 0, Month: 0}), 200)
		w.Cursor = Cursor{Row: 0, Month: 1}
		Expect(w.Segments()).To(BeEmpty())
	})

	It("redraws the same polyline from scratch", func() {
		w := NewWalker(fixture(3), 200)
		w.Cursor = Cursor{Row: 2, Month: 4}
		Expect(w.Segments()).To(Equal(w.Segments()))
	})
})

var _ = Describe("Sketch", func() {
	var (
		sk  *Sketch
		rec *render.Recorder
	)

	BeforeEach(func() {
		sk = NewSketch(fixture(2, Index{Row: 0, Month: 1}), 200)
		rec = render.NewRecorder(600, 600)
		Expect(sk.Setup(rec)).To(Succeed())
	})

	It("draws the walked polyline, axes and labels each frame", func() {
		sk.Walker().Cursor = Cursor{Row: 0, Month: 4}
		sk.Draw(rec)

		Expect(rec.Ops[0].Kind).To(Equal(render.OpBackground))
		Expect(rec.Count(render.OpLine)).To(Equal(3))
		Expect(rec.Count(render.OpCircle)).To(Equal(7))
		Expect(rec.Count(render.OpText)).To(Equal(1 + 12 + 3))

		year := rec.Filter(render.OpText)[0]
		Expect(year.Text).To(Equal("1900"))
		Expect(year.X1).To(BeNumerically("~", 300, 1e-9))
		Expect(year.Y1).To(BeNumerically("~", 300, 1e-9))

		Expect(sk.Walker().Cursor).To(Equal(Cursor{Row: 0, Month: 5}))
	})

	It("labels the year in white when the current cell is missing", func() {
		sk.Walker().Cursor = Cursor{Row: 0, Month: 1}
		sk.Draw(rec)

		year := rec.Filter(render.OpText)[0]
		Expect(year.Fill).To(Equal(render.White))
	})

	It("restarts after one pass over the table", func() {
		for i := 0; i < sk.FramesPerLoop(); i++ {
			sk.Draw(rec)
		}
		Expect(sk.Walker().Cursor).To(Equal(Cursor{}))
	})
})
