package brush

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scatterbrush/internal/chart"
	"scatterbrush/internal/scale"
	"scatterbrush/internal/surface"
)

// wideTree maps data x [0,100] to pixels [0,800] and data y [100,800] to
// pixels [800,100]. The first two marks pin the extracted scales to the
// native ones.
func wideTree() (*surface.Node, []chart.Point) {
	pos := [][2]float64{{0, 800}, {800, 100}, {400, 850}, {400, 830}, {300, 850}}
	xs := scale.NewLinear([2]float64{0, 100}, [2]float64{0, 800})
	ys := scale.NewLinear([2]float64{100, 800}, [2]float64{800, 100})
	marks := &surface.Node{Kind: surface.KindGroup}
	var pts []chart.Point
	for i, p := range pos {
		marks.Add(&surface.Node{Kind: surface.KindMark, Index: i, CX: p[0], CY: p[1], Opacity: 1})
		pts = append(pts, chart.Point{X: xs.Invert(p[0]), Y: ys.Invert(p[1])})
	}
	plane := (&surface.Node{
		Kind:   surface.KindSurface,
		Name:   "plot",
		Bounds: surface.Rect{W: 800, H: 900},
		XScale: xs,
		YScale: ys,
	}).Add(marks)
	return plane, pts
}

func reconciled(t *testing.T) (*Reconciler, *recorder) {
	t.Helper()
	rec := &recorder{}
	r := NewReconciler(New(nil), rec.observe)
	root, pts := wideTree()
	require.NoError(t, r.Mount(root, pts))
	return r, rec
}

func TestControlledScenario(t *testing.T) {
	r, rec := reconciled(t)
	c := r.Controller()

	changed, err := r.SetControlled(&Selection{X0: 40, Y0: 40, X1: 60, Y1: 60})
	require.NoError(t, err)
	assert.True(t, changed)
	assert.False(t, r.applying)

	reg, ok := c.Region()
	require.True(t, ok)
	b := reg.Box()
	assert.InDelta(t, 320, b.X0, 1e-9)
	assert.InDelta(t, 480, b.X1, 1e-9)
	assert.InDelta(t, 840, b.Y0, 1e-9)
	assert.InDelta(t, 860, b.Y1, 1e-9)

	assert.Equal(t, 1, c.Count())
	assert.True(t, c.Selected(2))
	assert.False(t, c.Selected(3))
	assert.False(t, c.Selected(4))
	assert.Empty(t, rec.calls, "controlled changes are not echoed")
}

func TestControlledIdempotent(t *testing.T) {
	r, rec := reconciled(t)
	sel := &Selection{X0: 40, Y0: 40, X1: 60, Y1: 60}
	_, err := r.SetControlled(sel)
	require.NoError(t, err)

	changed, err := r.SetControlled(&Selection{X0: 40, Y0: 40, X1: 60, Y1: 60})
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, 1, r.Controller().Count())
	assert.Empty(t, rec.calls)

	// the stored value is a copy
	sel.X0 = 0
	assert.Equal(t, 40.0, r.Controlled().X0)
}

func TestControlledClear(t *testing.T) {
	r, rec := reconciled(t)
	c := r.Controller()
	_, err := r.SetControlled(&Selection{X0: 40, Y0: 40, X1: 60, Y1: 60})
	require.NoError(t, err)

	changed, err := r.SetControlled(nil)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Nil(t, r.Controlled())
	assert.Equal(t, 0, c.Count())
	_, ok := c.Region()
	assert.False(t, ok)
	assert.Equal(t, []float64{1, 1, 1, 1, 1}, opacities(c))
	assert.Empty(t, rec.calls)

	changed, err = r.SetControlled(nil)
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestInteractiveForwarded(t *testing.T) {
	r, rec := reconciled(t)
	c := r.Controller()
	c.PointerDown(350, 845)
	c.PointerUp(450, 855)
	got := rec.last(t)
	require.Len(t, got.points, 1)
	assert.Equal(t, 50.0, got.points[0].X)

	c.Cancel()
	assert.Len(t, rec.calls, 2)
	assert.Nil(t, rec.last(t).sel)
}

func TestControlledRejectsNaN(t *testing.T) {
	r, rec := reconciled(t)
	_, err := r.SetControlled(&Selection{X0: 40, Y0: 40, X1: 60, Y1: 60})
	require.NoError(t, err)

	changed, err := r.SetControlled(&Selection{X0: math.NaN(), Y0: 1, X1: 2, Y1: 3})
	assert.ErrorIs(t, err, ErrInvalidSelection)
	assert.False(t, changed)
	assert.Equal(t, 40.0, r.Controlled().X0)
	assert.Equal(t, 1, r.Controller().Count())
	assert.Empty(t, rec.calls)
}

func TestControlledBeforeMount(t *testing.T) {
	rec := &recorder{}
	r := NewReconciler(New(nil), rec.observe)

	changed, err := r.SetControlled(&Selection{X0: 40, Y0: 40, X1: 60, Y1: 60})
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 0, r.Controller().Count())

	root, pts := wideTree()
	require.NoError(t, r.Mount(root, pts))
	assert.Equal(t, 1, r.Controller().Count())
	assert.True(t, r.Controller().Selected(2))
	assert.Empty(t, rec.calls)
}

func TestRemountReapplies(t *testing.T) {
	r, rec := reconciled(t)
	_, err := r.SetControlled(&Selection{X0: 40, Y0: 40, X1: 60, Y1: 60})
	require.NoError(t, err)

	root, pts := wideTree()
	require.NoError(t, r.Mount(root, pts))
	assert.Equal(t, 1, r.Controller().Count())
	assert.True(t, r.Controller().Selected(2))
	assert.Empty(t, rec.calls)

	// a failed mount leaves the brush inert but keeps the controlled value
	err = r.Mount(&surface.Node{Kind: surface.KindGroup}, nil)
	assert.ErrorIs(t, err, ErrNoPlane)
	assert.False(t, r.Controller().Ready())
	assert.NotNil(t, r.Controlled())
}
