package tui

import "github.com/lucasb-eyer/go-colorful"

// brailleBuf is a 2x4 micro-pixel grid per terminal cell. One micro-pixel
// is one renderer pixel. Each cell remembers the colour of the last dot
// written to it and whether it lies under the brush.
type brailleBuf struct {
	w, h  int       // in cells
	m     [][]uint8 // per-cell 8-bit mask
	fg    [][]colorful.Color
	hasFg [][]bool
	shade [][]bool
}

func newBrailleBuf(w, h int) *brailleBuf {
	b := &brailleBuf{w: w, h: h}
	b.m = make([][]uint8, h)
	b.fg = make([][]colorful.Color, h)
	b.hasFg = make([][]bool, h)
	b.shade = make([][]bool, h)
	for i := range b.m {
		b.m[i] = make([]uint8, w)
		b.fg[i] = make([]colorful.Color, w)
		b.hasFg[i] = make([]bool, w)
		b.shade[i] = make([]bool, w)
	}
	return b
}

var dotBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell)
func (b *brailleBuf) setPixel(mx, my int, c colorful.Color) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy >= b.h || cx >= b.w {
		return
	}
	b.m[cy][cx] |= dotBits[rx][ry]
	b.fg[cy][cx] = c
	b.hasFg[cy][cx] = true
}

// fillDisc sets every micro-pixel within r of (x, y). A disc smaller than
// one pixel still sets its centre.
func (b *brailleBuf) fillDisc(x, y, r float64, c colorful.Color) {
	cx, cy := round(x), round(y)
	ir := int(r)
	for dy := -ir; dy <= ir; dy++ {
		for dx := -ir; dx <= ir; dx++ {
			if float64(dx*dx+dy*dy) <= r*r {
				b.setPixel(cx+dx, cy+dy, c)
			}
		}
	}
	b.setPixel(cx, cy, c)
}

// shadeRect marks the cells covering the micro-pixel box as shaded.
func (b *brailleBuf) shadeRect(x0, y0, x1, y1 float64) {
	c0, c1 := max(0, int(x0)/2), min(b.w-1, int(x1)/2)
	r0, r1 := max(0, int(y0)/4), min(b.h-1, int(y1)/4)
	for y := r0; y <= r1; y++ {
		for x := c0; x <= c1; x++ {
			b.shade[y][x] = true
		}
	}
}

func (b *brailleBuf) glyph(x, y int) rune {
	mask := b.m[y][x]
	if mask == 0 {
		return ' '
	}
	return rune(0x2800 + int(mask))
}
