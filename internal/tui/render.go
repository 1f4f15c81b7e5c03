package tui

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"scatterbrush/internal/render"
	"scatterbrush/internal/surface"
)

// resize derives the canvas size from the window and re-renders when it
// changed.
func (m *Model) resize() {
	contentHeight := max(4, m.height-headerHeight-footerHeight)
	contentWidth := max(10, m.width)
	mapWidth := contentWidth
	if m.showSidebar {
		mapWidth -= sidebarWidth + 1
	}
	w := mapWidth - gutterWidth
	if m.cfg.Legend {
		w -= legendWidth
	}
	h := contentHeight - 1 // x tick labels
	// a configured size caps the canvas
	if m.cfg.Width > 0 {
		w = min(w, (m.cfg.Width+1)/2)
	}
	if m.cfg.Height > 0 {
		h = min(h, (m.cfg.Height+3)/4)
	}
	w, h = max(8, w), max(3, h)
	if w == m.canvasW && h == m.canvasH && m.res != nil {
		return
	}
	m.canvasW, m.canvasH = w, h
	m.rerender()
}

// rerender draws the dataset at the current canvas size and remounts the
// brush on the new geometry. The controlled selection carries over.
func (m *Model) rerender() {
	if m.canvasW == 0 || m.canvasH == 0 {
		return
	}
	cfg := m.cfg
	cfg.Width, cfg.Height = m.canvasW*2, m.canvasH*4
	res, err := render.Render(cfg, m.data.Points)
	if err != nil {
		m.res = nil
		m.ctrl.Unmount()
		m.status = "render error: " + err.Error()
		m.log.Warn("render failed", slog.Any("err", err))
		return
	}
	m.res = res
	m.hoverIdx = -1
	if err := m.rec.Mount(res.Root, m.data.Points); err != nil {
		// the plot stays visible without a brush
		m.status = "brush unavailable: " + err.Error()
		return
	}
	m.log.Debug("rendered",
		slog.Int("width", cfg.Width),
		slog.Int("height", cfg.Height),
		slog.Int("points", len(m.data.Points)))
}

// renderCanvas draws legends and marks into a braille buffer, dimmed marks
// first so the selected ones stay on top, with the brush region shaded.
func (m Model) renderCanvas() string {
	w, h := m.canvasW, m.canvasH
	br := newBrailleBuf(w, h)
	if m.res != nil {
		if r, ok := m.ctrl.Region(); ok {
			b := r.Box()
			br.shadeRect(b.X0, b.Y0, b.X1, b.Y1)
		}
		surface.Walk(m.res.Root, func(n *surface.Node) bool {
			if n.Kind == surface.KindSwatch {
				br.fillDisc(n.CX, n.CY, n.Radius, faded(n.Color, n.Opacity))
			}
			return true
		})
		for _, top := range []bool{false, true} {
			for _, mk := range m.res.Marks {
				if (mk.Opacity >= 1) == top {
					br.fillDisc(mk.CX, mk.CY, mk.Radius, faded(mk.Color, mk.Opacity))
				}
			}
		}
	}
	hx, hy := -1, -1
	if m.hovering && m.hoverIdx >= 0 && m.res != nil && m.hoverIdx < len(m.res.Marks) {
		mk := m.res.Marks[m.hoverIdx]
		hx, hy = round(mk.CX)/2, round(mk.CY)/4
	}

	lines := make([]string, h)
	for y := 0; y < h; y++ {
		var sb strings.Builder
		for x := 0; x < w; {
			if x == hx && y == hy {
				st := hoverStyle
				if br.shade[y][x] {
					st = st.Background(brushBg)
				}
				sb.WriteString(st.Render("◯"))
				x++
				continue
			}
			key := cellKey(br, x, y)
			var run []rune
			for x < w && !(x == hx && y == hy) && cellKey(br, x, y) == key {
				run = append(run, br.glyph(x, y))
				x++
			}
			sb.WriteString(key.style().Render(string(run)))
		}
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}

type styleKey struct {
	fg    string
	shade bool
}

func cellKey(br *brailleBuf, x, y int) styleKey {
	k := styleKey{shade: br.shade[y][x]}
	if br.hasFg[y][x] {
		k.fg = br.fg[y][x].Hex()
	}
	return k
}

func (k styleKey) style() lipgloss.Style {
	st := lipgloss.NewStyle()
	if k.fg != "" {
		st = st.Foreground(lipgloss.Color(k.fg))
	}
	if k.shade {
		st = st.Background(brushBg)
	}
	return st
}

// renderYAxis returns the tick label gutter, one line per canvas row.
func (m Model) renderYAxis() string {
	rows := make([]string, m.canvasH)
	if m.res != nil {
		for _, t := range m.res.YTicks {
			r := int(t.Pos) / 4
			if r < 0 || r >= len(rows) || rows[r] != "" {
				continue
			}
			rows[r] = fit(t.Label, gutterWidth-2) + " ┤"
		}
	}
	for i, r := range rows {
		rows[i] = dimStyle.Render(padLeft(r, gutterWidth))
	}
	return strings.Join(rows, "\n")
}

// renderXAxis returns the tick label row under the canvas.
func (m Model) renderXAxis() string {
	row := []rune(strings.Repeat(" ", gutterWidth+m.canvasW))
	next := 0
	if m.res != nil {
		for _, t := range m.res.XTicks {
			lbl := []rune(t.Label)
			at := gutterWidth + int(t.Pos)/2 - len(lbl)/2
			if at < next || at+len(lbl) > len(row) {
				continue
			}
			copy(row[at:], lbl)
			next = at + len(lbl) + 1
		}
	}
	return dimStyle.Render(string(row))
}

// renderLegend returns the legend labels, aligned with the swatches the
// renderer placed on the canvas.
func (m Model) renderLegend() string {
	rows := make([]string, m.canvasH)
	put := func(y float64, s string) {
		r := int(y) / 4
		if r >= 0 && r < len(rows) && rows[r] == "" {
			rows[r] = s
		}
	}
	if m.res != nil {
		surface.Walk(m.res.Root, func(n *surface.Node) bool {
			switch {
			case n.Kind == surface.KindSurface && n != m.res.Plane:
				put(n.Bounds.Y, titleStyle.Render(fit(n.Label, legendWidth-1)))
			case n.Kind == surface.KindSwatch:
				put(n.CY, dimStyle.Render(fit(n.Label, legendWidth-1)))
			}
			return true
		})
	}
	for i, r := range rows {
		rows[i] = " " + r
	}
	return lipgloss.NewStyle().Width(legendWidth).Render(strings.Join(rows, "\n"))
}
