package surface

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plane(name string, w, h float64) *Node {
	return &Node{Kind: KindSurface, Name: name, Bounds: Rect{W: w, H: h}}
}

func TestLocateRootSurface(t *testing.T) {
	root := plane("only", 10, 10)
	root.Add(plane("bigger child", 100, 100))
	got, ok := Locate(root)
	require.True(t, ok)
	assert.Same(t, root, got)
}

func TestLocateLargestArea(t *testing.T) {
	data := plane("main", 300, 200)
	ramp := plane("ramp", 20, 200)
	sizes := plane("sizes", 40, 60)
	root := (&Node{Kind: KindGroup}).Add(ramp, data, sizes)

	got, ok := Locate(root)
	require.True(t, ok)
	assert.Same(t, data, got)
}

func TestLocateTieKeepsFirst(t *testing.T) {
	a := plane("a", 50, 40)
	b := plane("b", 40, 50)
	root := (&Node{Kind: KindGroup}).Add(
		(&Node{Kind: KindGroup}).Add(a),
		b,
	)
	got, ok := Locate(root)
	require.True(t, ok)
	assert.Same(t, a, got)
}

func TestLocateNested(t *testing.T) {
	inner := plane("inner", 500, 500)
	outer := (&Node{Kind: KindGroup}).Add(plane("outer", 10, 10).Add(inner))
	got, ok := Locate(outer)
	require.True(t, ok)
	assert.Same(t, inner, got)
}

func TestLocateNone(t *testing.T) {
	_, ok := Locate(nil)
	assert.False(t, ok)

	root := (&Node{Kind: KindGroup}).Add(&Node{Kind: KindText, Label: "empty"})
	_, ok = Locate(root)
	assert.False(t, ok)
}

func TestMarkGroup(t *testing.T) {
	marks := (&Node{Kind: KindGroup, Name: "marks"}).Add(
		&Node{Kind: KindMark, Index: 0},
		&Node{Kind: KindMark, Index: 1},
	)
	legend := plane("legend", 5, 5).Add(
		(&Node{Kind: KindGroup}).Add(&Node{Kind: KindMark}),
	)
	p := plane("main", 100, 100).Add(
		legend,
		(&Node{Kind: KindGroup, Name: "axes"}).Add(&Node{Kind: KindText}),
		marks,
	)
	g, ok := MarkGroup(p)
	require.True(t, ok)
	assert.Same(t, marks, g)

	_, ok = MarkGroup(plane("bare", 1, 1))
	assert.False(t, ok)
}

func TestRectClamp(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 100, H: 50}
	x, y := r.Clamp(-5, 200)
	assert.Equal(t, 10.0, x)
	assert.Equal(t, 70.0, y)
	assert.True(t, r.Contains(110, 70))
	assert.False(t, r.Contains(111, 70))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "surface", KindSurface.String())
	assert.Equal(t, "text", KindText.String())
	assert.Equal(t, "Kind(42)", Kind(42).String())
}
