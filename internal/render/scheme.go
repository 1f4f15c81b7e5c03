package render

import (
	"fmt"
	"image/color"
	"sort"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"

	"scatterbrush/internal/chart"
)

var schemes = map[string]func() palette.ColorMap{
	// the smooth maps are diverging; their constructors return a wider type
	"smooth-blue-red":      func() palette.ColorMap { return moreland.SmoothBlueRed() },
	"smooth-blue-tan":      func() palette.ColorMap { return moreland.SmoothBlueTan() },
	"smooth-green-purple":  func() palette.ColorMap { return moreland.SmoothGreenPurple() },
	"smooth-purple-orange": func() palette.ColorMap { return moreland.SmoothPurpleOrange() },
	"kindlmann":            moreland.Kindlmann,
	"extended-kindlmann":   moreland.ExtendedKindlmann,
	"black-body":           moreland.BlackBody,
	"extended-black-body":  moreland.ExtendedBlackBody,
}

// Schemes lists the colour scheme names in a stable order.
func Schemes() []string {
	names := make([]string, 0, len(schemes))
	for k := range schemes {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// NextScheme returns the scheme after name, wrapping around.
func NextScheme(name string) string {
	names := Schemes()
	for i, n := range names {
		if n == name {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}

// colorMap returns the named scheme spread over iv.
func colorMap(name string, iv chart.Interval) (palette.ColorMap, error) {
	mk, ok := schemes[name]
	if !ok {
		return nil, fmt.Errorf("render: unknown color scheme %q", name)
	}
	cm := mk()
	hi := iv.Max
	if hi <= iv.Min {
		hi = iv.Min + 1
	}
	cm.SetMin(iv.Min)
	cm.SetMax(hi)
	return cm, nil
}

// colorAt clamps v into the map's range.
func colorAt(cm palette.ColorMap, v float64) color.Color {
	v = min(max(v, cm.Min()), cm.Max())
	c, err := cm.At(v)
	if err != nil {
		return color.Black
	}
	return c
}
