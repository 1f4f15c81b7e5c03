package tui

import (
	"fmt"
	"log/slog"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"scatterbrush/internal/brush"
	"scatterbrush/internal/chart"
	"scatterbrush/internal/render"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			m.l.SetSize(sidebarWidth-2, m.height-1-2-2)
		}
		m.resize()
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.selectMode {
			switch msg.String() {
			case "esc":
				m.selectMode = false
				m.ta.Blur()
				m.status = "view mode"
				return m, nil
			case "enter":
				m.applySelection(m.ta.Value())
				m.selectMode = false
				m.ta.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.ta, cmd = m.ta.Update(msg)
			return m, cmd
		}
		m.inspectPopup = ""
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc":
			m.ctrl.Cancel()
		case "g":
			m.selectMode = true
			m.ta.SetValue("")
			if s := m.ctrl.Selection(); s != nil {
				m.ta.SetValue(fmt.Sprintf("%g %g %g %g", s.X0, s.Y0, s.X1, s.Y1))
			}
			m.status = "selection entry"
			m.ta.Focus()
		case "+", "=":
			m.cfg.SizeRange = []float64{m.cfg.MinSize(), min(m.cfg.MaxSize()+1, 16)}
			m.status = fmt.Sprintf("size range: %g-%g", m.cfg.MinSize(), m.cfg.MaxSize())
			m.rerender()
		case "-", "_":
			m.cfg.SizeRange = []float64{m.cfg.MinSize(), max(m.cfg.MaxSize()-1, m.cfg.MinSize())}
			m.status = fmt.Sprintf("size range: %g-%g", m.cfg.MinSize(), m.cfg.MaxSize())
			m.rerender()
		case "c":
			m.cfg.ColorScheme = render.NextScheme(m.cfg.ColorScheme)
			m.status = "color scheme: " + m.cfg.ColorScheme
			m.rerender()
		case "l":
			m.cfg.Legend = !m.cfg.Legend
			m.status = fmt.Sprintf("legend: %v", m.cfg.Legend)
			m.canvasW = 0
			m.resize()
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshDir()
				m.l.SetSize(sidebarWidth-2, m.height-1-2-2)
			}
			m.resize()
		case "h":
			m.helpVisible = !m.helpVisible
		case "a":
			m.showAttrs = !m.showAttrs
			if m.showAttrs {
				m.refreshAttrsFromCurrent()
			}
		case "i":
			m.inspect()
		case "e":
			m.export()
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(fileItem); ok {
					m.loadPath(it.path)
				}
			}
		case "up":
			m.ctrl.Nudge(0, -4)
		case "down":
			m.ctrl.Nudge(0, 4)
		case "left":
			m.ctrl.Nudge(-2, 0)
		case "right":
			m.ctrl.Nudge(2, 0)
		}
	case tea.MouseMsg:
		m.mouse(msg)
	}
	m.syncSelection()
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

// mouse drives the brush from pointer events on the canvas. One cell is
// two pixels wide and four tall; events land on the cell centre.
func (m *Model) mouse(msg tea.MouseMsg) {
	z := m.zones.Get(canvasZone)
	if z == nil || m.showAttrs {
		m.hovering = false
		return
	}
	px := float64((msg.X-z.StartX)*2 + 1)
	py := float64((msg.Y-z.StartY)*4 + 2)
	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if !z.InBounds(msg) {
			return
		}
		m.dragging = true
		m.ctrl.PointerDown(px, py)
	case msg.Action == tea.MouseActionMotion && m.dragging:
		m.ctrl.PointerMove(px, py)
	case msg.Action == tea.MouseActionRelease && m.dragging:
		m.dragging = false
		m.ctrl.PointerUp(px, py)
	}
	m.hovering = z.InBounds(msg)
	m.hoverX, m.hoverY = px, py
	m.hoverIdx = -1
	if m.hovering && m.ctrl.Ready() {
		if i, ok := m.ctrl.Index().Nearest(px, py); ok {
			m.hoverIdx = i
		}
	}
}

// syncSelection picks up what the brush reported during this update and
// feeds it back as the controlled value, so a re-render keeps it.
func (m *Model) syncSelection() {
	last := m.last
	if !last.changed {
		return
	}
	last.changed = false
	if _, err := m.rec.SetControlled(last.sel); err != nil {
		m.log.Warn("selection not kept", slog.Any("err", err))
	}
	if last.sel == nil {
		m.status = "selection cleared"
	} else {
		m.status = fmt.Sprintf("selected %d of %d  %s", len(last.points), len(m.data.Points), last.sel)
	}
	m.log.Info("selection", slog.Int("points", len(last.points)), slog.Any("sel", last.sel))
	if m.showAttrs {
		m.refreshAttrsFromCurrent()
	}
}

// applySelection sets the controlled selection from typed text.
func (m *Model) applySelection(text string) {
	sel, err := brush.ParseSelection(strings.TrimSpace(text))
	if err != nil {
		m.status = "selection error: " + err.Error()
		return
	}
	if _, err := m.rec.SetControlled(sel); err != nil {
		m.status = "selection error: " + err.Error()
		return
	}
	// controlled changes are not reported by the brush, so read it back
	m.last.sel = m.ctrl.Selection()
	m.last.points = m.selectedPoints()
	if sel == nil {
		m.status = "selection cleared"
	} else {
		m.status = fmt.Sprintf("selected %d of %d  %s", m.ctrl.Count(), len(m.data.Points), sel)
	}
	if m.showAttrs {
		m.refreshAttrsFromCurrent()
	}
}

func (m Model) selectedPoints() []chart.Point {
	var out []chart.Point
	for i, p := range m.data.Points {
		if m.ctrl.Selected(i) {
			out = append(out, p)
		}
	}
	return out
}
