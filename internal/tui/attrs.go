package tui

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	table "github.com/charmbracelet/bubbles/table"

	"scatterbrush/internal/chart"
	"scatterbrush/internal/render"
)

// refreshAttrsFromCurrent rebuilds the table from the points inside the brush.
func (m *Model) refreshAttrsFromCurrent() {
	cols, rows := buildAttributes(m.data.Fields, m.selectedPoints())
	if len(rows) == 0 {
		// an empty table still renders its header; leave the plot up instead
		m.showAttrs = false
		m.status = "no points selected"
		return
	}
	tcols := make([]table.Column, 0, len(cols)+1)
	tcols = append(tcols, table.Column{Title: "#", Width: 4})
	maxColW := 24
	for _, c := range cols {
		w := min(max(len(c)+2, 8), maxColW)
		tcols = append(tcols, table.Column{Title: c, Width: w})
	}
	trows := make([]table.Row, 0, len(rows))
	for i, r := range rows {
		row := make([]string, 0, len(r)+1)
		row = append(row, strconv.Itoa(i+1))
		row = append(row, r...)
		trows = append(trows, table.Row(row))
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(tcols)
	m.tbl.SetRows(trows)
}

// buildAttributes returns the four channels followed by the extra fields as
// columns, one row per point.
func buildAttributes(fields []string, pts []chart.Point) ([]string, [][]string) {
	cols := append([]string{"x", "y", "size", "color"}, fields...)
	rows := make([][]string, 0, len(pts))
	for _, p := range pts {
		row := []string{num(p.X), num(p.Y), num(p.Size), num(p.Color)}
		for _, f := range fields {
			row = append(row, p.Fields[f])
		}
		rows = append(rows, row)
	}
	return cols, rows
}

func num(v float64) string { return strconv.FormatFloat(v, 'g', 6, 64) }

// inspect describes the hovered mark, or the one nearest the centre of the
// brush region when the pointer is elsewhere.
func (m *Model) inspect() {
	i := m.hoverIdx
	if i < 0 && m.ctrl.Ready() {
		if r, ok := m.ctrl.Region(); ok {
			b := r.Box()
			i, _ = m.ctrl.Index().Nearest((b.X0+b.X1)/2, (b.Y0+b.Y1)/2)
		}
	}
	if i < 0 || i >= len(m.data.Points) {
		m.inspectPopup = "no point nearby"
		m.status = m.inspectPopup
		return
	}
	p := m.data.Points[i]
	meta := []string{
		fmt.Sprintf("point: %d of %d", i+1, len(m.data.Points)),
		fmt.Sprintf("x: %s  y: %s", num(p.X), num(p.Y)),
		fmt.Sprintf("%s: %s  %s: %s", m.cfg.SizeLabel, num(p.Size), m.cfg.ColorLabel, num(p.Color)),
		fmt.Sprintf("selected: %v", m.ctrl.Selected(i)),
	}
	for _, f := range m.data.Fields {
		meta = append(meta, fmt.Sprintf("%s: %s", f, p.Fields[f]))
	}
	m.inspectPopup = strings.Join(meta, "\n")
	m.status = "inspect popup"
}

// export writes the plot with the current selection highlighted.
func (m *Model) export() {
	path := m.cfg.Export.Path
	if path == "" {
		path = "scatter.svg"
	}
	var selected []bool
	if _, ok := m.ctrl.Region(); ok {
		selected = make([]bool, len(m.data.Points))
		for i := range selected {
			selected[i] = m.ctrl.Selected(i)
		}
	}
	if err := render.Export(m.cfg, m.data.Points, selected, path); err != nil {
		m.status = "export error: " + err.Error()
		m.log.Warn("export failed", slog.String("path", path), slog.Any("err", err))
		return
	}
	m.status = "exported: " + filepath.Base(path)
	m.log.Info("exported", slog.String("path", path))
}
