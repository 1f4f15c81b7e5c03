package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	// Layout sizes
	sbWidth := 0
	if m.showSidebar {
		sbWidth = sidebarWidth
	}
	contentHeight := max(4, m.height-headerHeight-footerHeight)
	contentWidth := max(10, m.width)

	// Header
	name := m.data.Name
	if name == "" {
		name = "<no data>"
	}
	header := titleStyle.Render(" scatterbrush ─ terminal scatter plot ") + dimStyle.Render(" "+name)
	header = lipgloss.NewStyle().Width(contentWidth).MaxWidth(contentWidth).MaxHeight(headerHeight).Render(header)

	// Sidebar
	var sidebar string
	if m.showSidebar {
		sidebar = lipgloss.NewStyle().Width(sbWidth).Render(m.l.View())
	}

	// Plot area
	plotWidth := contentWidth - sbWidth
	if m.showSidebar {
		plotWidth--
	}
	var plotView string
	if m.showAttrs {
		colW := 0
		for _, c := range m.tbl.Columns() {
			colW += c.Width + 3
		}
		if colW == 0 {
			colW = min(60, contentWidth-6)
		}
		maxW := min(plotWidth, max(32, colW))
		m.tbl.SetWidth(maxW - 4)
		m.tbl.SetHeight(min(contentHeight-2, 20))
		attrsBox := boxStyle.Width(maxW).Render(m.tbl.View())
		plotView = lipgloss.NewStyle().MaxHeight(contentHeight).
			Render(lipgloss.Place(plotWidth, contentHeight, lipgloss.Center, lipgloss.Center, attrsBox))
	} else {
		canvas := m.zones.Mark(canvasZone, m.renderCanvas())
		row := lipgloss.JoinHorizontal(lipgloss.Top, m.renderYAxis(), canvas)
		if m.cfg.Legend {
			row = lipgloss.JoinHorizontal(lipgloss.Top, row, m.renderLegend())
		}
		plot := lipgloss.JoinVertical(lipgloss.Left, row, m.renderXAxis())
		plotView = lipgloss.NewStyle().Width(plotWidth).Height(contentHeight).MaxHeight(contentHeight).Render(plot)
	}

	var body string
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", plotView)
	} else {
		body = plotView
	}

	// Footer / help
	var left string
	if m.selectMode {
		m.ta.SetWidth(max(20, contentWidth-12))
		left = dimStyle.Render(" select: ") + m.ta.View()
	} else {
		status := dimStyle.Render(" " + m.status + " ")
		left = lipgloss.JoinHorizontal(lipgloss.Bottom, status, m.renderHelp())
	}
	// pointer position in data units at bottom-right
	coords := ""
	if m.hovering {
		if s, ok := m.ctrl.Scales(); ok {
			coords = dimStyle.Render(fmt.Sprintf("  x=%.4g y=%.4g  ", s.X.Invert(m.hoverX), s.Y.Invert(m.hoverY)))
		}
	}
	spacerW := max(0, contentWidth-lipgloss.Width(left)-lipgloss.Width(coords))
	right := lipgloss.Place(spacerW+lipgloss.Width(coords), 1, lipgloss.Right, lipgloss.Center, coords)
	footer := lipgloss.NewStyle().Width(contentWidth).Height(footerHeight).MaxHeight(footerHeight).
		Render(lipgloss.JoinHorizontal(lipgloss.Bottom, left, right))

	// The frame must not exceed the window: the renderer drops extra lines
	// from the top, which leaves the zone offsets pointing too low.
	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	out := m.zones.Scan(appStyle.Width(contentWidth).Height(m.height).MaxHeight(m.height).Render(ui))

	// Inspect popup over the top left of the body, drawn after the zones are
	// measured so it does not move them
	if m.inspectPopup != "" && !m.showAttrs {
		maxPopupW := max(20, min(48, contentWidth/2))
		out = overlay(out, boxStyle.MaxWidth(maxPopupW).Render(m.inspectPopup), headerHeight)
	}
	return out
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"drag brush",
		"Esc clear",
		"↑↓←→ nudge",
		"g select",
		"+/- size",
		"c colors",
		"l legend",
		"a table",
		"i inspect",
		"e export",
		"Tab files",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
