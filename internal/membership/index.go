// Package membership caches the pixel position of every rendered mark so
// that inside/outside tests during a drag never touch the rendered tree.
package membership

import (
	"cmp"
	"slices"

	"scatterbrush/internal/surface"
)

// Position is a mark's centre in pixel space.
type Position struct {
	CX, CY float64
}

// Box is a pixel rectangle with ordered corners: X0 <= X1 and Y0 <= Y1.
type Box struct {
	X0, Y0, X1, Y1 float64
}

// NewBox orders two arbitrary corners.
func NewBox(ax, ay, bx, by float64) Box {
	return Box{X0: min(ax, bx), Y0: min(ay, by), X1: max(ax, bx), Y1: max(ay, by)}
}

// Contains reports whether p lies in b, edges included.
func (b Box) Contains(p Position) bool {
	return b.X0 <= p.CX && p.CX <= b.X1 && b.Y0 <= p.CY && p.CY <= b.Y1
}

// Index is the mark position cache of one mounted plane. Position i belongs
// to the point at index i of the input sequence. An Index is never patched:
// build a new one when points, configuration or the plane change.
type Index struct {
	marks []*surface.Node
	pos   []Position
}

// Build reads the centre of every mark in plane's mark group.
// A plane without marks yields an empty Index.
func Build(plane *surface.Node) *Index {
	g, ok := surface.MarkGroup(plane)
	if !ok {
		return &Index{}
	}
	var marks []*surface.Node
	for _, c := range g.Children {
		if c.Kind == surface.KindMark {
			marks = append(marks, c)
		}
	}
	slices.SortStableFunc(marks, func(a, b *surface.Node) int {
		return cmp.Compare(a.Index, b.Index)
	})
	pos := make([]Position, len(marks))
	for i, m := range marks {
		pos[i] = Position{CX: m.CX, CY: m.CY}
	}
	return &Index{marks: marks, pos: pos}
}

// FromPositions builds an Index with no backing marks.
func FromPositions(pos []Position) *Index {
	return &Index{pos: slices.Clone(pos)}
}

// Len returns the number of cached marks.
func (x *Index) Len() int { return len(x.pos) }

// Positions returns the cache. Callers must not modify it.
func (x *Index) Positions() []Position { return x.pos }

// Mark returns the rendered node of mark i, or nil for position-only indexes.
func (x *Index) Mark(i int) *surface.Node {
	if i >= len(x.marks) {
		return nil
	}
	return x.marks[i]
}

// Extent returns the pixel bounding box of all mark centres.
func (x *Index) Extent() (Box, bool) {
	if len(x.pos) == 0 {
		return Box{}, false
	}
	b := Box{X0: x.pos[0].CX, X1: x.pos[0].CX, Y0: x.pos[0].CY, Y1: x.pos[0].CY}
	for _, p := range x.pos[1:] {
		b.X0 = min(b.X0, p.CX)
		b.X1 = max(b.X1, p.CX)
		b.Y0 = min(b.Y0, p.CY)
		b.Y1 = max(b.Y1, p.CY)
	}
	return b, true
}

// Within calls fn for every mark with its membership in b and returns the
// number of marks inside.
func (x *Index) Within(b Box, fn func(i int, in bool)) int {
	n := 0
	for i, p := range x.pos {
		in := b.Contains(p)
		if in {
			n++
		}
		fn(i, in)
	}
	return n
}

// Nearest returns the mark closest to (px, py).
func (x *Index) Nearest(px, py float64) (int, bool) {
	best, bestD := -1, 0.0
	for i, p := range x.pos {
		dx, dy := p.CX-px, p.CY-py
		if d := dx*dx + dy*dy; best == -1 || d < bestD {
			best, bestD = i, d
		}
	}
	return best, best != -1
}
