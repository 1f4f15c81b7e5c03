// Package surface models the renderer's output: a tree of drawable surfaces,
// grouping nodes and marks, and finds the main data plane inside it.
package surface

import (
	"fmt"
	"image/color"
)

// Kind tells what a Node draws.
type Kind int

const (
	KindGroup   Kind = iota // container with no drawing of its own
	KindSurface             // drawable plane with its own bounds
	KindMark                // one data glyph
	KindSwatch              // legend glyph, not data
	KindText                // label
)

func (k Kind) String() string {
	switch k {
	case KindGroup:
		return "group"
	case KindSurface:
		return "surface"
	case KindMark:
		return "mark"
	case KindSwatch:
		return "swatch"
	case KindText:
		return "text"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Rect is an axis-aligned box in pixel space, origin top-left.
type Rect struct {
	X, Y, W, H float64
}

// Area returns W*H.
func (r Rect) Area() float64 { return r.W * r.H }

// Contains reports whether (x, y) lies inside r, edges included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Clamp moves (x, y) to the nearest point inside r.
func (r Rect) Clamp(x, y float64) (float64, float64) {
	return min(max(x, r.X), r.X+r.W), min(max(y, r.Y), r.Y+r.H)
}

// Scale is a renderer-native axis mapping between data and pixel values.
type Scale interface {
	Forward(v float64) float64
	Invert(px float64) float64
}

// Node is one element of the rendered tree.
type Node struct {
	Kind     Kind
	Name     string
	Bounds   Rect
	Children []*Node

	// XScale and YScale are set on data planes whose renderer exposes its
	// axis mappings.
	XScale Scale
	YScale Scale

	// Mark and swatch attributes. Index is the position of the mark's point
	// in the input sequence.
	Index   int
	CX, CY  float64
	Radius  float64
	Color   color.Color
	Opacity float64

	Label string
}

// Add appends children and returns n.
func (n *Node) Add(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// Walk visits n and its descendants depth-first, parents before children.
// Returning false from fn skips the node's children.
func Walk(n *Node, fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range n.Children {
		Walk(c, fn)
	}
}
