package brush

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"scatterbrush/internal/membership"
)

// Extent is a pixel-space region as dragged: two corners in any order.
type Extent [2][2]float64

// Box returns e with ordered corners.
func (e Extent) Box() membership.Box {
	return membership.NewBox(e[0][0], e[0][1], e[1][0], e[1][1])
}

func extentOf(b membership.Box) Extent {
	return Extent{{b.X0, b.Y0}, {b.X1, b.Y1}}
}

// Selection is a data-space region: left, top, right, bottom. Top and
// bottom follow pixel order, so with data y growing upward Y0 > Y1.
type Selection struct {
	X0, Y0, X1, Y1 float64
}

// ErrInvalidSelection is returned for selections with NaN or infinite
// coordinates.
var ErrInvalidSelection = errors.New("brush: selection is not finite")

// Finite reports whether every coordinate is a finite number.
func (s Selection) Finite() bool {
	for _, v := range [...]float64{s.X0, s.Y0, s.X1, s.Y1} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s Selection) String() string {
	return fmt.Sprintf("x0=%.4g y0=%.4g x1=%.4g y1=%.4g", s.X0, s.Y0, s.X1, s.Y1)
}

// ParseSelection reads four numbers "x0 y0 x1 y1", separated by spaces
// and/or commas. An empty string means no selection and returns nil.
func ParseSelection(s string) (*Selection, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
	if len(parts) != 4 {
		return nil, fmt.Errorf("selection: want 4 numbers, got %d", len(parts))
	}
	var v [4]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("selection: %w", err)
		}
		v[i] = f
	}
	sel := &Selection{X0: v[0], Y0: v[1], X1: v[2], Y1: v[3]}
	if !sel.Finite() {
		return nil, ErrInvalidSelection
	}
	return sel, nil
}

func sameSelection(a, b *Selection) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
