// Package brush implements the rectangular selection tool laid over a
// rendered scatter plot: the gesture state machine, live membership of the
// cached mark positions, translation of the region into data space, and the
// reconciler that keeps controlled selections from echoing back.
package brush

import (
	"errors"
	"fmt"
	"log/slog"

	"scatterbrush/internal/chart"
	"scatterbrush/internal/membership"
	"scatterbrush/internal/scale"
	"scatterbrush/internal/surface"
)

var (
	ErrNoPlane    = errors.New("brush: no drawable surface")
	ErrNoMarks    = errors.New("brush: plane has no marks")
	ErrMisaligned = errors.New("brush: mark count differs from point count")
	ErrNotReady   = errors.New("brush: not initialized")
)

// State is the gesture state.
type State int

const (
	Idle State = iota
	Dragging
	Committed // momentary: only observed from inside the observer
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	case Committed:
		return "committed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Observer receives the selected points, in input order, and the data-space
// selection. A clear reports an empty slice and a nil selection.
type Observer func(selected []chart.Point, sel *Selection)

type gesture int

const (
	gestureCreate gesture = iota
	gestureMove
	gestureResize
)

// edges of the region grabbed by a resize gesture
const (
	edgeW = 1 << iota
	edgeE
	edgeN
	edgeS
)

// Controller owns one brush over one chart. It is not safe for concurrent
// use; every call is expected from the host's single event loop.
type Controller struct {
	// DimOpacity is written to marks outside the region.
	DimOpacity float64
	// HandleSize is how close, in pixels, a press must be to an edge of
	// the region to resize it instead of moving it.
	HandleSize float64

	observer Observer
	// setMark, bound in New; update must not allocate
	markFn func(i int, in bool)

	// mount cycle
	ready  bool
	plane  *surface.Node
	index  *membership.Index
	scales scale.Pair
	points []chart.Point

	state   State
	gesture gesture
	edges   int
	anchor  [2]float64
	start   membership.Box
	moved   bool

	region    Extent
	hasRegion bool
	selected  []bool
	count     int
}

// New returns an unmounted controller reporting to obs.
func New(obs Observer) *Controller {
	c := &Controller{
		DimOpacity: 0.2,
		HandleSize: 2,
		observer:   obs,
	}
	c.markFn = c.setMark
	return c
}

// Mount attaches the brush to a freshly rendered tree: it locates the data
// plane, rebuilds the mark position cache and extracts the axis scales.
// Any previous mount is released first and the region starts empty. On
// error the brush stays uninitialized and every gesture is a no-op; the
// chart itself is still usable as a static plot.
func (c *Controller) Mount(root *surface.Node, points []chart.Point) error {
	c.Unmount()
	log := Logger()
	plane, ok := surface.Locate(root)
	if !ok {
		log.Debug("brush skipped: no drawable surface")
		return ErrNoPlane
	}
	idx := membership.Build(plane)
	if idx.Len() == 0 {
		log.Debug("brush skipped: no marks", slog.String("plane", plane.Name))
		return ErrNoMarks
	}
	if idx.Len() != len(points) {
		log.Warn("brush not initialized", slog.Int("marks", idx.Len()), slog.Int("points", len(points)))
		return ErrMisaligned
	}
	scales, err := scale.Extract(plane, idx.Positions())
	if err != nil {
		log.Warn("brush not initialized", slog.Any("err", err))
		return err
	}
	c.ready = true
	c.plane, c.index, c.scales, c.points = plane, idx, scales, points
	c.selected = make([]bool, idx.Len())
	c.reset()
	log.Debug("brush mounted",
		slog.String("plane", plane.Name),
		slog.Int("marks", idx.Len()),
		slog.String("x", scales.X.String()),
		slog.String("y", scales.Y.String()))
	return nil
}

// Unmount releases the rendered tree and resets the brush to Idle with no
// region.
func (c *Controller) Unmount() {
	c.ready = false
	c.plane, c.index, c.points, c.selected = nil, nil, nil, nil
	c.scales = scale.Pair{}
	c.state = Idle
	c.hasRegion = false
	c.count = 0
}

// Ready reports whether the last Mount succeeded.
func (c *Controller) Ready() bool { return c.ready }

// State returns the gesture state.
func (c *Controller) State() State { return c.state }

// Count returns the number of marks inside the region. It follows the
// pointer while dragging.
func (c *Controller) Count() int { return c.count }

// Selected reports whether mark i is inside the region.
func (c *Controller) Selected(i int) bool {
	return i >= 0 && i < len(c.selected) && c.selected[i]
}

// Index returns the mark position cache of the current mount.
func (c *Controller) Index() *membership.Index { return c.index }

// Scales returns the axis scales of the current mount.
func (c *Controller) Scales() (scale.Pair, bool) { return c.scales, c.ready }

// Region returns the pixel-space region.
func (c *Controller) Region() (Extent, bool) { return c.region, c.hasRegion }

// Selection returns the region in data space, or nil without a region.
func (c *Controller) Selection() *Selection {
	if !c.ready || !c.hasRegion {
		return nil
	}
	s := c.toData(c.region)
	return &s
}

// PointerDown starts a gesture at pixel (x, y). A press on an edge or
// corner of the region resizes it, a press inside moves it, and a press
// anywhere else starts a new region.
func (c *Controller) PointerDown(x, y float64) {
	if !c.ready {
		return
	}
	x, y = c.plane.Bounds.Clamp(x, y)
	c.gesture, c.edges = gestureCreate, 0
	if c.hasRegion {
		b := c.region.Box()
		if e := c.hitEdges(b, x, y); e != 0 {
			c.gesture, c.edges = gestureResize, e
		} else if b.Contains(membership.Position{CX: x, CY: y}) {
			c.gesture = gestureMove
		}
		c.start = b
	}
	c.anchor = [2]float64{x, y}
	c.moved = false
	c.state = Dragging
}

// PointerMove updates the region while Dragging.
func (c *Controller) PointerMove(x, y float64) {
	if !c.ready || c.state != Dragging {
		return
	}
	x, y = c.plane.Bounds.Clamp(x, y)
	if x != c.anchor[0] || y != c.anchor[1] {
		c.moved = true
	}
	if !c.moved {
		return
	}
	switch c.gesture {
	case gestureCreate:
		c.region = Extent{c.anchor, {x, y}}
	case gestureMove:
		c.region = extentOf(c.translate(c.start, x-c.anchor[0], y-c.anchor[1]))
	case gestureResize:
		b := c.start
		if c.edges&edgeW != 0 {
			b.X0 = x
		}
		if c.edges&edgeE != 0 {
			b.X1 = x
		}
		if c.edges&edgeN != 0 {
			b.Y0 = y
		}
		if c.edges&edgeS != 0 {
			b.Y1 = y
		}
		c.region = Extent{{b.X0, b.Y0}, {b.X1, b.Y1}}
	}
	c.hasRegion = true
	c.update()
}

// PointerUp ends the gesture and reports the result. A click that never
// moved outside the region clears the selection; any other click leaves
// it as it was and reports nothing.
func (c *Controller) PointerUp(x, y float64) {
	if !c.ready || c.state != Dragging {
		return
	}
	c.PointerMove(x, y)
	if !c.moved {
		c.state = Idle
		if c.gesture == gestureCreate && c.hasRegion {
			c.Clear()
		}
		return
	}
	c.commit()
}

// Cancel aborts any gesture and clears the selection.
func (c *Controller) Cancel() { c.Clear() }

// Clear removes the region, restores every mark to full opacity and
// reports an empty selection.
func (c *Controller) Clear() {
	if !c.ready {
		return
	}
	c.state = Idle
	c.hasRegion = false
	c.reset()
	c.notify([]chart.Point{}, nil)
}

// SetSelection shows a data-space selection as if it had been dragged:
// the rectangle is mapped to pixels, its corners ordered, membership is
// updated and the result is reported like a finished gesture.
func (c *Controller) SetSelection(sel Selection) error {
	if !c.ready {
		Logger().Warn("programmatic selection ignored: no axis scales", slog.String("sel", sel.String()))
		return ErrNotReady
	}
	if !sel.Finite() {
		Logger().Warn("programmatic selection ignored", slog.Any("err", ErrInvalidSelection))
		return ErrInvalidSelection
	}
	xs, ys := c.scales.X, c.scales.Y
	b := membership.NewBox(xs.Forward(sel.X0), ys.Forward(sel.Y0), xs.Forward(sel.X1), ys.Forward(sel.Y1))
	c.region = extentOf(b)
	c.hasRegion = true
	c.state = Idle
	c.update()
	c.commit()
	return nil
}

// Nudge moves the region by (dx, dy) pixels, keeping it inside the plane,
// and reports the result. It does nothing while a gesture is in progress.
func (c *Controller) Nudge(dx, dy float64) {
	if !c.ready || !c.hasRegion || c.state == Dragging {
		return
	}
	c.region = extentOf(c.translate(c.region.Box(), dx, dy))
	c.update()
	c.commit()
}

// update recomputes membership for the current region from the cached
// positions and writes mark opacity in place. It runs on every pointer
// move and must not allocate.
func (c *Controller) update() {
	c.count = c.index.Within(c.region.Box(), c.markFn)
}

func (c *Controller) setMark(i int, in bool) {
	c.selected[i] = in
	if m := c.index.Mark(i); m != nil {
		if in {
			m.Opacity = 1
		} else {
			m.Opacity = c.DimOpacity
		}
	}
}

// reset marks every point unselected and fully opaque.
func (c *Controller) reset() {
	for i := range c.selected {
		c.selected[i] = false
		if m := c.index.Mark(i); m != nil {
			m.Opacity = 1
		}
	}
	c.count = 0
}

func (c *Controller) commit() {
	c.state = Committed
	sel := c.toData(c.region)
	pts := make([]chart.Point, 0, c.count)
	for i, in := range c.selected {
		if in {
			pts = append(pts, c.points[i])
		}
	}
	c.notify(pts, &sel)
	c.state = Idle
}

func (c *Controller) notify(pts []chart.Point, sel *Selection) {
	if c.observer != nil {
		c.observer(pts, sel)
	}
}

func (c *Controller) toData(e Extent) Selection {
	b := e.Box()
	xs, ys := c.scales.X, c.scales.Y
	return Selection{X0: xs.Invert(b.X0), Y0: ys.Invert(b.Y0), X1: xs.Invert(b.X1), Y1: ys.Invert(b.Y1)}
}

// translate shifts b by (dx, dy) without leaving the plane.
func (c *Controller) translate(b membership.Box, dx, dy float64) membership.Box {
	r := c.plane.Bounds
	dx = min(max(dx, r.X-b.X0), r.X+r.W-b.X1)
	dy = min(max(dy, r.Y-b.Y0), r.Y+r.H-b.Y1)
	return membership.Box{X0: b.X0 + dx, Y0: b.Y0 + dy, X1: b.X1 + dx, Y1: b.Y1 + dy}
}

// hitEdges returns the edges of b within HandleSize of (x, y). When both
// opposite edges are in reach the nearer one wins.
func (c *Controller) hitEdges(b membership.Box, x, y float64) int {
	h := c.HandleSize
	inX := x >= b.X0-h && x <= b.X1+h
	inY := y >= b.Y0-h && y <= b.Y1+h
	if !inX || !inY {
		return 0
	}
	e := 0
	dw, de := abs(x-b.X0), abs(x-b.X1)
	if dw <= h || de <= h {
		if dw <= de {
			e |= edgeW
		} else {
			e |= edgeE
		}
	}
	dn, ds := abs(y-b.Y0), abs(y-b.Y1)
	if dn <= h || ds <= h {
		if dn <= ds {
			e |= edgeN
		} else {
			e |= edgeS
		}
	}
	return e
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
