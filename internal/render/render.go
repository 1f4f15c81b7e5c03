// Package render draws a scatter plot with gonum/plot and returns the drawn
// geometry as a surface tree: where each mark landed, how big and in what
// colour, and the axis mappings the plot used to put it there.
package render

import (
	"errors"
	"image/color"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/recorder"

	"scatterbrush/internal/chart"
	"scatterbrush/internal/surface"
)

// ErrTooSmall is returned when the margins leave no room to plot.
var ErrTooSmall = errors.New("render: canvas too small")

const (
	colorSwatches = 8
	sizeSwatches  = 3
)

// Tick is an axis label placed at Pos pixels along its axis.
type Tick struct {
	Value float64
	Pos   float64
	Label string
}

// Result is one rendering.
type Result struct {
	Root  *surface.Node
	Plane *surface.Node
	Marks []*surface.Node

	Width, Height  int
	XTicks, YTicks []Tick

	// data ranges of the size and colour channels
	Size, Color chart.Interval
}

// Render lays out points on a Width x Height pixel canvas. The tree root is
// a figure group holding the data plane and, with legends on, a colour ramp
// and a size legend next to it. Without legends the plane is the root.
func Render(cfg chart.Config, points []chart.Point) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	w, h := float64(cfg.Width), float64(cfg.Height)
	legendW := 0.0
	if cfg.Legend {
		legendW = max(10, w/6)
	}
	mg := cfg.Margin
	plotW := w - legendW
	bounds := surface.Rect{
		X: mg.Left,
		Y: mg.Top,
		W: plotW - mg.Left - mg.Right,
		H: h - mg.Top - mg.Bottom,
	}
	if bounds.W <= 0 || bounds.H <= 0 {
		return nil, ErrTooSmall
	}

	radius, sizeIv := sizes(points, cfg.MinSize(), cfg.MaxSize())
	colorIv, _ := chart.Extent(points, chart.ColorOf)
	cm, err := colorMap(cfg.ColorScheme, colorIv)
	if err != nil {
		return nil, err
	}
	colors := make([]color.Color, len(points))
	for i, p := range points {
		colors[i] = colorAt(cm, p.Color)
	}

	p := plot.New()
	p.HideAxes()
	p.BackgroundColor = color.Transparent
	m := newMarks(points, radius, colors)
	p.Add(m)

	c := draw.NewCanvas(new(recorder.Canvas), vg.Length(w), vg.Length(h))
	p.Draw(draw.Crop(c,
		vg.Length(mg.Left), -vg.Length(legendW+mg.Right),
		vg.Length(mg.Bottom), -vg.Length(mg.Top)))

	// vg grows upward, pixels grow downward
	flip := func(y vg.Length) float64 { return h - float64(y) }
	xs := newAxisScale(m.x, float64(m.area.Min.X), float64(m.area.Max.X))
	ys := newAxisScale(m.y, flip(m.area.Min.Y), flip(m.area.Max.Y))

	group := &surface.Node{Kind: surface.KindGroup, Name: "marks"}
	res := &Result{Width: cfg.Width, Height: cfg.Height, Size: sizeIv, Color: colorIv}
	for i, pt := range m.centers {
		mk := &surface.Node{
			Kind:    surface.KindMark,
			Index:   i,
			CX:      float64(pt.X),
			CY:      flip(pt.Y),
			Radius:  float64(radius[i]),
			Color:   colors[i],
			Opacity: 1,
		}
		group.Add(mk)
		res.Marks = append(res.Marks, mk)
	}
	plane := (&surface.Node{
		Kind:   surface.KindSurface,
		Name:   "plot",
		Bounds: bounds,
		XScale: xs,
		YScale: ys,
	}).Add(group)
	res.Plane = plane
	res.XTicks = placeTicks(m.x.Min, m.x.Max, xs, bounds.X, bounds.X+bounds.W)
	res.YTicks = placeTicks(m.y.Min, m.y.Max, ys, bounds.Y, bounds.Y+bounds.H)

	if !cfg.Legend {
		res.Root = plane
		return res, nil
	}
	half := bounds.H / 2
	colorLegend := surface.Rect{X: plotW, Y: bounds.Y, W: legendW, H: half}
	sizeLegend := surface.Rect{X: plotW, Y: bounds.Y + half, W: legendW, H: half}
	res.Root = (&surface.Node{Kind: surface.KindGroup, Name: "figure"}).Add(
		plane,
		rampLegend(cfg.ColorLabel, colorLegend, cm, colorIv),
		radiusLegend(cfg.SizeLabel, sizeLegend, sizeIv, cfg.MinSize(), cfg.MaxSize()),
	)
	return res, nil
}

func placeTicks(lo, hi float64, s surface.Scale, from, to float64) []Tick {
	var out []Tick
	for _, t := range Ticks(lo, hi) {
		pos := s.Forward(t.Value)
		if pos < min(from, to) || pos > max(from, to) {
			continue
		}
		out = append(out, Tick{Value: t.Value, Pos: pos, Label: t.Label})
	}
	return out
}

// Ticks returns the labelled major ticks gonum/plot would put on an axis
// spanning [lo, hi].
func Ticks(lo, hi float64) []plot.Tick {
	var out []plot.Tick
	for _, t := range (plot.DefaultTicks{}).Ticks(lo, hi) {
		if t.Label == "" {
			continue
		}
		out = append(out, t)
	}
	return out
}

func rampLegend(title string, r surface.Rect, cm palette.ColorMap, iv chart.Interval) *surface.Node {
	legend := &surface.Node{Kind: surface.KindSurface, Name: "color-legend", Bounds: r, Label: title}
	ramp := &surface.Node{Kind: surface.KindGroup, Name: "ramp"}
	step := r.H / colorSwatches
	for i := range colorSwatches {
		// top swatch is the largest value
		v := iv.Max - float64(i)/float64(colorSwatches-1)*iv.Span()
		ramp.Add(&surface.Node{
			Kind:    surface.KindSwatch,
			Index:   i,
			CX:      r.X + r.W/2,
			CY:      r.Y + step*(float64(i)+0.5),
			Radius:  step / 2,
			Color:   colorAt(cm, v),
			Opacity: 1,
			Label:   formatValue(v),
		})
	}
	return legend.Add(ramp)
}

func radiusLegend(title string, r surface.Rect, iv chart.Interval, lo, hi float64) *surface.Node {
	legend := &surface.Node{Kind: surface.KindSurface, Name: "size-legend", Bounds: r, Label: title}
	steps := &surface.Node{Kind: surface.KindGroup, Name: "sizes"}
	step := r.H / sizeSwatches
	for i := range sizeSwatches {
		v := iv.Max - float64(i)/float64(sizeSwatches-1)*iv.Span()
		steps.Add(&surface.Node{
			Kind:    surface.KindSwatch,
			Index:   i,
			CX:      r.X + r.W/2,
			CY:      r.Y + step*(float64(i)+0.5),
			Radius:  radiusOf(v, iv, lo, hi),
			Color:   color.Gray{Y: 0x80},
			Opacity: 1,
			Label:   formatValue(v),
		})
	}
	return legend.Add(steps)
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', 3, 64)
}
