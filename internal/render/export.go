package render

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"scatterbrush/internal/chart"
)

// Export saves the plot with axes and labels to path. The format follows
// the extension (.svg, .png, .pdf, ...). Points whose entry in selected is
// false are drawn at cfg.Export.Dim opacity; a nil selected draws all of
// them at full opacity.
func Export(cfg chart.Config, points []chart.Point, selected []bool, path string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	colorIv, _ := chart.Extent(points, chart.ColorOf)
	cm, err := colorMap(cfg.ColorScheme, colorIv)
	if err != nil {
		return err
	}
	radius, _ := sizes(points, cfg.MinSize(), cfg.MaxSize())
	colors := make([]color.Color, len(points))
	for i, p := range points {
		c := colorAt(cm, p.Color)
		if selected != nil && (i >= len(selected) || !selected[i]) {
			c = fade(c, cfg.Export.Dim)
		}
		colors[i] = c
	}

	p := plot.New()
	p.X.Label.Text = cfg.XLabel
	p.Y.Label.Text = cfg.YLabel
	p.Add(plotter.NewGrid())
	p.Add(newMarks(points, radius, colors))
	return p.Save(vg.Points(cfg.Export.Width), vg.Points(cfg.Export.Height), path)
}

func fade(c color.Color, alpha float64) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(float64(n.A) * alpha)
	return n
}
