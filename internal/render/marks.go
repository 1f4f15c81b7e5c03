package render

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"scatterbrush/internal/chart"
)

// marks is a scatter plotter that remembers where it drew each glyph and
// the data area it was given.
type marks struct {
	points []chart.Point
	radius []vg.Length
	colors []color.Color

	// filled in by Plot
	centers []vg.Point
	area    vg.Rectangle
	x, y    plot.Axis
}

func newMarks(points []chart.Point, radius []vg.Length, colors []color.Color) *marks {
	return &marks{points: points, radius: radius, colors: colors}
}

func (m *marks) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	m.area = c.Rectangle
	m.x, m.y = plt.X, plt.Y
	m.centers = m.centers[:0]
	for i, p := range m.points {
		pt := vg.Point{X: trX(p.X), Y: trY(p.Y)}
		m.centers = append(m.centers, pt)
		c.DrawGlyph(draw.GlyphStyle{
			Color:  m.colors[i],
			Radius: m.radius[i],
			Shape:  draw.CircleGlyph{},
		}, pt)
	}
}

func (m *marks) DataRange() (xmin, xmax, ymin, ymax float64) {
	x, ok := chart.Extent(m.points, chart.XOf)
	if !ok {
		return math.Inf(1), math.Inf(-1), math.Inf(1), math.Inf(-1)
	}
	y, _ := chart.Extent(m.points, chart.YOf)
	return x.Min, x.Max, y.Min, y.Max
}

func (m *marks) GlyphBoxes(plt *plot.Plot) []plot.GlyphBox {
	bs := make([]plot.GlyphBox, len(m.points))
	for i, p := range m.points {
		bs[i].X = plt.X.Norm(p.X)
		bs[i].Y = plt.Y.Norm(p.Y)
		r := m.radius[i]
		bs[i].Rectangle = vg.Rectangle{
			Min: vg.Point{X: -r, Y: -r},
			Max: vg.Point{X: +r, Y: +r},
		}
	}
	return bs
}

// axisScale maps data values along a gonum axis onto top-down pixels.
// lo and hi are the pixel positions of the axis minimum and maximum.
type axisScale struct {
	min, max float64
	norm     plot.Normalizer
	lo, hi   float64
}

func newAxisScale(a plot.Axis, lo, hi float64) axisScale {
	return axisScale{min: a.Min, max: a.Max, norm: a.Scale, lo: lo, hi: hi}
}

func (s axisScale) Forward(v float64) float64 {
	return s.lo + (s.hi-s.lo)*s.norm.Normalize(s.min, s.max, v)
}

// Invert is exact for linear axes, the only kind the renderer sets up.
func (s axisScale) Invert(px float64) float64 {
	if s.hi == s.lo {
		return (s.min + s.max) / 2
	}
	return s.min + (px-s.lo)/(s.hi-s.lo)*(s.max-s.min)
}

// sizes maps the size channel onto glyph radii with a square root, so that
// glyph area grows linearly with the value.
func sizes(points []chart.Point, lo, hi float64) ([]vg.Length, chart.Interval) {
	iv, _ := chart.Extent(points, chart.SizeOf)
	out := make([]vg.Length, len(points))
	for i, p := range points {
		out[i] = vg.Length(radiusOf(p.Size, iv, lo, hi))
	}
	return out, iv
}

func radiusOf(v float64, iv chart.Interval, lo, hi float64) float64 {
	if iv.Span() <= 0 || math.IsNaN(v) {
		return lo
	}
	t := min(max((v-iv.Min)/iv.Span(), 0), 1)
	return lo + (hi-lo)*math.Sqrt(t)
}
