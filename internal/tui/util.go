package tui

import (
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/lucasb-eyer/go-colorful"
)

func round(v float64) int { return int(math.Round(v)) }

func padLeft(s string, n int) string {
	return strings.Repeat(" ", max(0, n-len([]rune(s)))) + s
}

// faded blends c toward the canvas background; opacity 1 keeps c as is.
func faded(c color.Color, opacity float64) colorful.Color {
	if c == nil {
		c = color.White
	}
	cc, ok := colorful.MakeColor(c)
	if !ok {
		// fully transparent
		return canvasBg
	}
	return canvasBg.BlendRgb(cc, opacity).Clamped()
}

// fit shortens s to n runes.
func fit(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:max(n, 0)])
	}
	return string(r[:n-1]) + "…"
}

// overlay draws fg over bg starting at line row, column 0.
func overlay(bg, fg string, row int) string {
	lines := strings.Split(bg, "\n")
	for i, l := range strings.Split(fg, "\n") {
		if row+i >= len(lines) {
			break
		}
		lines[row+i] = l + ansi.TruncateLeft(lines[row+i], ansi.StringWidth(l), "")
	}
	return strings.Join(lines, "\n")
}
