package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/palette"

	"scatterbrush/internal/chart"
	"scatterbrush/internal/membership"
	"scatterbrush/internal/scale"
	"scatterbrush/internal/surface"
)

func testConfig() chart.Config {
	cfg := chart.DefaultConfig()
	cfg.Width, cfg.Height = 200, 120
	return cfg
}

func TestRenderTree(t *testing.T) {
	data := chart.Generate(60, 7)
	res, err := Render(testConfig(), data.Points)
	require.NoError(t, err)

	assert.Equal(t, surface.KindGroup, res.Root.Kind)
	plane, ok := surface.Locate(res.Root)
	require.True(t, ok)
	assert.Same(t, res.Plane, plane)
	assert.Len(t, res.Marks, len(data.Points))
	assert.Equal(t, len(data.Points), membership.Build(plane).Len())

	var swatches int
	surface.Walk(res.Root, func(n *surface.Node) bool {
		if n.Kind == surface.KindSwatch {
			swatches++
		}
		return true
	})
	assert.Equal(t, colorSwatches+sizeSwatches, swatches)
}

func TestRenderScalesMatchMarks(t *testing.T) {
	data := chart.Generate(40, 3)
	res, err := Render(testConfig(), data.Points)
	require.NoError(t, err)

	plane := res.Plane
	idx := membership.Build(plane)
	pair, err := scale.Extract(plane, idx.Positions())
	require.NoError(t, err)

	for i, m := range res.Marks {
		p := data.Points[i]
		assert.True(t, plane.Bounds.Contains(m.CX, m.CY), "mark %d outside the plane", i)
		assert.InDelta(t, p.X, plane.XScale.Invert(m.CX), 1e-6)
		assert.InDelta(t, p.Y, plane.YScale.Invert(m.CY), 1e-6)
		assert.InDelta(t, p.X, pair.X.Invert(m.CX), 1e-6)
		assert.InDelta(t, p.Y, pair.Y.Invert(m.CY), 1e-6)
	}
}

func TestRenderFlipsY(t *testing.T) {
	pts := []chart.Point{{X: 0, Y: 0}, {X: 1, Y: 10}}
	res, err := Render(testConfig(), pts)
	require.NoError(t, err)
	assert.Greater(t, res.Marks[0].CY, res.Marks[1].CY, "larger y is drawn higher")
	assert.Less(t, res.Marks[0].CX, res.Marks[1].CX)
}

func TestRenderWithoutLegend(t *testing.T) {
	cfg := testConfig()
	cfg.Legend = false
	res, err := Render(cfg, chart.Generate(10, 1).Points)
	require.NoError(t, err)
	assert.Same(t, res.Plane, res.Root)
	assert.Equal(t, float64(cfg.Width)-cfg.Margin.Left-cfg.Margin.Right, res.Plane.Bounds.W)
}

func TestRenderEmpty(t *testing.T) {
	res, err := Render(testConfig(), nil)
	require.NoError(t, err)
	assert.Empty(t, res.Marks)
	assert.Equal(t, 0, membership.Build(res.Plane).Len())
}

func TestRenderErrors(t *testing.T) {
	cfg := testConfig()
	cfg.ColorScheme = "rainbow"
	_, err := Render(cfg, nil)
	assert.ErrorContains(t, err, "rainbow")

	cfg = testConfig()
	cfg.Width, cfg.Height = 12, 3
	_, err = Render(cfg, nil)
	assert.ErrorIs(t, err, ErrTooSmall)
}

func TestRenderSizes(t *testing.T) {
	pts := []chart.Point{{Size: 0}, {X: 1, Y: 1, Size: 25}, {X: 2, Y: 2, Size: 100}}
	cfg := testConfig()
	cfg.SizeRange = []float64{1, 5}
	res, err := Render(cfg, pts)
	require.NoError(t, err)
	assert.InDelta(t, 1, res.Marks[0].Radius, 1e-9)
	assert.InDelta(t, 3, res.Marks[1].Radius, 1e-9)
	assert.InDelta(t, 5, res.Marks[2].Radius, 1e-9)
	assert.Equal(t, chart.Interval{Min: 0, Max: 100}, res.Size)

	assert.Equal(t, 2.0, radiusOf(7, chart.Interval{Min: 7, Max: 7}, 2, 6))
}

func TestTicks(t *testing.T) {
	ticks := Ticks(0, 100)
	require.NotEmpty(t, ticks)
	for _, tk := range ticks {
		assert.NotEmpty(t, tk.Label)
		assert.GreaterOrEqual(t, tk.Value, 0.0)
		assert.LessOrEqual(t, tk.Value, 100.0)
	}

	res, err := Render(testConfig(), chart.Generate(20, 2).Points)
	require.NoError(t, err)
	require.NotEmpty(t, res.XTicks)
	for _, tk := range res.XTicks {
		assert.InDelta(t, res.Plane.XScale.Forward(tk.Value), tk.Pos, 1e-9)
	}
}

func TestSchemes(t *testing.T) {
	names := Schemes()
	require.Len(t, names, len(schemes))
	seen := map[string]bool{}
	name := names[0]
	for range names {
		_, err := colorMap(name, chart.Interval{Min: 0, Max: 1})
		require.NoError(t, err, name)
		seen[name] = true
		name = NextScheme(name)
	}
	assert.Len(t, seen, len(names))
	assert.Equal(t, names[0], name)
	assert.Equal(t, names[0], NextScheme("unknown"))
	assert.Contains(t, names, "smooth-blue-red")
}

func TestExport(t *testing.T) {
	data := chart.Generate(30, 5)
	selected := make([]bool, len(data.Points))
	selected[0] = true
	path := filepath.Join(t.TempDir(), "out.svg")
	require.NoError(t, Export(testConfig(), data.Points, selected, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestFade(t *testing.T) {
	got := fade(colorAt(mustMap(t), 0), 0.5)
	r, g, b, a := got.RGBA()
	assert.NotZero(t, r+g+b)
	assert.InDelta(t, 0x7f7f, a, 0x101)
}

func mustMap(t *testing.T) palette.ColorMap {
	t.Helper()
	cm, err := colorMap("smooth-blue-red", chart.Interval{Min: 0, Max: 1})
	require.NoError(t, err)
	return cm
}
