package scale

import (
	"errors"

	"scatterbrush/internal/membership"
	"scatterbrush/internal/surface"
)

var (
	// ErrNoMarks means there is no rendered mark to sample the axes from.
	ErrNoMarks = errors.New("scale: no marks")
	// ErrNoNativeScale means the renderer did not expose its axis scales.
	// The mapping is never guessed: a brush drawn against the wrong
	// geometry would select the wrong points without any visible error.
	ErrNoNativeScale = errors.New("scale: renderer exposes no axis scale")
)

// Pair holds the x and y scale of one chart.
type Pair struct {
	X, Y Linear
}

// Extract derives the chart's axis scales from the pixel extent the marks
// actually occupy, read back through the renderer's own scales. The
// renderer's domains may carry padding that the marks do not; sampling the
// marks keeps the brush aligned with what is drawn.
//
// The y range is built as [maxY, minY] so that pixel y grows downward while
// data y grows upward. An axis on which every mark shares one pixel value is
// widened to the plane's bounds so the scale stays invertible.
func Extract(plane *surface.Node, pos []membership.Position) (Pair, error) {
	if plane == nil || plane.XScale == nil || plane.YScale == nil {
		return Pair{}, ErrNoNativeScale
	}
	if len(pos) == 0 {
		return Pair{}, ErrNoMarks
	}
	ext, _ := membership.FromPositions(pos).Extent()
	if ext.X0 == ext.X1 {
		ext.X0, ext.X1 = plane.Bounds.X, plane.Bounds.X+plane.Bounds.W
	}
	if ext.Y0 == ext.Y1 {
		ext.Y0, ext.Y1 = plane.Bounds.Y, plane.Bounds.Y+plane.Bounds.H
	}
	nx, ny := plane.XScale, plane.YScale
	return Pair{
		X: NewLinear(
			[2]float64{nx.Invert(ext.X0), nx.Invert(ext.X1)},
			[2]float64{ext.X0, ext.X1},
		),
		Y: NewLinear(
			[2]float64{ny.Invert(ext.Y1), ny.Invert(ext.Y0)},
			[2]float64{ext.Y1, ext.Y0},
		),
	}, nil
}
